// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-rules-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-rules-api/internal/domain"
)

const (
	rulesTable = "rules r"

	ruleColumns = `r.id, r.name, r.rule_type, r.campaign_id, r.marketplace, r.match_type,
		r.acos_min, r.acos_max, r.clicks_min, r.clicks_max,
		r.adjustment_type, r.adjustment_value, r.timeframe_days, r.frequency_days,
		r.enabled, r.last_run_at, r.created_at, r.updated_at`
)

type RuleRepository interface {
	InitSchema() error
	CreateRule(request *domain.CreateRuleRequest) (int, error)
	GetRule(ruleID int) (*domain.Rule, error)
	ListRules() ([]*domain.Rule, error)
	UpdateRule(request *domain.UpdateRuleRequest) error
	DeleteRule(ruleID int) error
	SetRuleEnabled(ruleID int, enabled bool) error
	GetDueRules(now time.Time) ([]*domain.Rule, error)
	UpdateRuleLastRun(ruleID int, runAt time.Time) error
}

type ruleRepository struct {
	conn *postgres.Connection
}

func NewRuleRepository(conn *postgres.Connection) RuleRepository {
	return &ruleRepository{
		conn: conn,
	}
}

// InitSchema cria as tabelas e índices se não existirem. Idempotente — é
// chamado a cada inicialização do processo.
func (r *ruleRepository) InitSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS rules (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			rule_type TEXT NOT NULL,
			campaign_id TEXT,
			marketplace TEXT,
			match_type TEXT,
			acos_min DOUBLE PRECISION,
			acos_max DOUBLE PRECISION,
			clicks_min INTEGER,
			clicks_max INTEGER,
			adjustment_type TEXT NOT NULL,
			adjustment_value DOUBLE PRECISION NOT NULL,
			timeframe_days INTEGER NOT NULL DEFAULT 30,
			frequency_days INTEGER NOT NULL,
			enabled BOOLEAN NOT NULL DEFAULT TRUE,
			last_run_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rule_executions (
			id SERIAL PRIMARY KEY,
			rule_id INTEGER NOT NULL,
			run_id TEXT NOT NULL DEFAULT '',
			run_at TIMESTAMPTZ NOT NULL,
			target_id TEXT,
			campaign_id TEXT,
			keyword_text TEXT,
			match_type TEXT,
			old_bid DOUBLE PRECISION,
			new_bid DOUBLE PRECISION,
			acos DOUBLE PRECISION,
			clicks INTEGER,
			impressions INTEGER,
			action TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rules_enabled ON rules (enabled)`,
		`CREATE INDEX IF NOT EXISTS idx_rule_exec_rule_id ON rule_executions (rule_id)`,
	}

	for _, stmt := range statements {
		if _, err := r.conn.Exec(stmt); err != nil {
			return fmt.Errorf("erro ao inicializar schema: %w", err)
		}
	}

	return nil
}

func (r *ruleRepository) CreateRule(request *domain.CreateRuleRequest) (int, error) {
	now := time.Now().UTC()

	enabled := true
	if request.Enabled != nil {
		enabled = *request.Enabled
	}

	query, args, err := squirrel.
		Insert("rules").
		Columns(
			"name",
			"rule_type",
			"campaign_id",
			"marketplace",
			"match_type",
			"acos_min",
			"acos_max",
			"clicks_min",
			"clicks_max",
			"adjustment_type",
			"adjustment_value",
			"timeframe_days",
			"frequency_days",
			"enabled",
			"created_at",
			"updated_at",
		).
		Values(
			request.Name,
			request.RuleType,
			request.CampaignID,
			request.Marketplace,
			request.MatchType,
			request.AcosMin,
			request.AcosMax,
			request.ClicksMin,
			request.ClicksMax,
			request.AdjustmentType,
			request.AdjustmentValue,
			request.TimeframeDays,
			request.FrequencyDays,
			enabled,
			now,
			now,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var ruleID int
	if err := r.conn.QueryRow(query, args...).Scan(&ruleID); err != nil {
		return 0, fmt.Errorf("erro ao inserir regra: %w", err)
	}

	return ruleID, nil
}

func (r *ruleRepository) GetRule(ruleID int) (*domain.Rule, error) {
	query, args, err := squirrel.
		Select(ruleColumns).
		From(rulesTable).
		Where(squirrel.Eq{"r.id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	rule, err := r.scanRuleRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear regra: %w", err)
	}

	return rule, nil
}

func (r *ruleRepository) ListRules() ([]*domain.Rule, error) {
	query, args, err := squirrel.
		Select(ruleColumns).
		From(rulesTable).
		OrderBy("r.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return r.collectRules(rows)
}

// UpdateRule aplica uma atualização parcial: somente os campos não-nil da
// allow-list entram no SET. Quando nenhum campo foi informado a chamada é um
// no-op e updated_at não é tocado.
func (r *ruleRepository) UpdateRule(request *domain.UpdateRuleRequest) error {
	queryBuilder := squirrel.
		Update("rules").
		Where(squirrel.Eq{"id": request.ID}).
		PlaceholderFormat(squirrel.Dollar)

	touched := false
	set := func(column string, value interface{}) {
		queryBuilder = queryBuilder.Set(column, value)
		touched = true
	}

	if request.Name != nil {
		set("name", *request.Name)
	}
	if request.RuleType != nil {
		set("rule_type", *request.RuleType)
	}
	if request.CampaignID != nil {
		set("campaign_id", *request.CampaignID)
	}
	if request.Marketplace != nil {
		set("marketplace", *request.Marketplace)
	}
	if request.MatchType != nil {
		set("match_type", *request.MatchType)
	}
	if request.AcosMin != nil {
		set("acos_min", *request.AcosMin)
	}
	if request.AcosMax != nil {
		set("acos_max", *request.AcosMax)
	}
	if request.ClicksMin != nil {
		set("clicks_min", *request.ClicksMin)
	}
	if request.ClicksMax != nil {
		set("clicks_max", *request.ClicksMax)
	}
	if request.AdjustmentType != nil {
		set("adjustment_type", *request.AdjustmentType)
	}
	if request.AdjustmentValue != nil {
		set("adjustment_value", *request.AdjustmentValue)
	}
	if request.TimeframeDays != nil {
		set("timeframe_days", *request.TimeframeDays)
	}
	if request.FrequencyDays != nil {
		set("frequency_days", *request.FrequencyDays)
	}
	if request.Enabled != nil {
		set("enabled", *request.Enabled)
	}

	if !touched {
		return nil
	}

	queryBuilder = queryBuilder.Set("updated_at", time.Now().UTC())

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao atualizar regra: %w", err)
	}

	return nil
}

// DeleteRule remove a regra por id. As execuções registradas permanecem —
// histórico é append-only e legível mesmo para regras removidas.
func (r *ruleRepository) DeleteRule(ruleID int) error {
	query, args, err := squirrel.
		Delete("rules").
		Where(squirrel.Eq{"id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover regra: %w", err)
	}

	return nil
}

func (r *ruleRepository) SetRuleEnabled(ruleID int, enabled bool) error {
	return r.UpdateRule(&domain.UpdateRuleRequest{
		ID:      ruleID,
		Enabled: &enabled,
	})
}

// GetDueRules seleciona as regras habilitadas cuja frequência já venceu:
// last_run_at nulo (nunca executou) ou tempo decorrido em dias — contagem
// contínua, com fração, não truncada por data de calendário — maior ou igual
// a frequency_days. A leitura não "reivindica" a regra: o deploy assume um
// único processo escrevendo no banco.
func (r *ruleRepository) GetDueRules(now time.Time) ([]*domain.Rule, error) {
	query, args, err := squirrel.
		Select(ruleColumns).
		From(rulesTable).
		Where(squirrel.Eq{"r.enabled": true}).
		Where(squirrel.Or{
			squirrel.Eq{"r.last_run_at": nil},
			squirrel.Expr("EXTRACT(EPOCH FROM (?::timestamptz - r.last_run_at)) / 86400.0 >= r.frequency_days", now),
		}).
		OrderBy("r.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return r.collectRules(rows)
}

func (r *ruleRepository) UpdateRuleLastRun(ruleID int, runAt time.Time) error {
	if runAt.IsZero() {
		runAt = time.Now().UTC()
	}

	query, args, err := squirrel.
		Update("rules").
		Set("last_run_at", runAt).
		Set("updated_at", runAt).
		Where(squirrel.Eq{"id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar last_run_at: %w", err)
	}

	return nil
}

func (r *ruleRepository) collectRules(rows *sql.Rows) ([]*domain.Rule, error) {
	rules := make([]*domain.Rule, 0)

	for rows.Next() {
		rule, err := r.scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regra: %w", err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}

func (r *ruleRepository) scanRule(rows *sql.Rows) (*domain.Rule, error) {
	rule := &domain.Rule{}

	err := rows.Scan(
		&rule.ID,
		&rule.Name,
		&rule.RuleType,
		&rule.CampaignID,
		&rule.Marketplace,
		&rule.MatchType,
		&rule.AcosMin,
		&rule.AcosMax,
		&rule.ClicksMin,
		&rule.ClicksMax,
		&rule.AdjustmentType,
		&rule.AdjustmentValue,
		&rule.TimeframeDays,
		&rule.FrequencyDays,
		&rule.Enabled,
		&rule.LastRunAt,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *ruleRepository) scanRuleRow(row *sql.Row) (*domain.Rule, error) {
	rule := &domain.Rule{}

	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&rule.RuleType,
		&rule.CampaignID,
		&rule.Marketplace,
		&rule.MatchType,
		&rule.AcosMin,
		&rule.AcosMax,
		&rule.ClicksMin,
		&rule.ClicksMax,
		&rule.AdjustmentType,
		&rule.AdjustmentValue,
		&rule.TimeframeDays,
		&rule.FrequencyDays,
		&rule.Enabled,
		&rule.LastRunAt,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return rule, nil
}
