package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-rules-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-rules-api/internal/domain"
)

const (
	ruleExecutionsTable = "rule_executions re"

	ruleExecutionColumns = `re.id, re.rule_id, re.run_id, re.run_at,
		re.target_id, re.campaign_id, re.keyword_text, re.match_type,
		re.old_bid, re.new_bid, re.acos, re.clicks, re.impressions,
		re.action, re.message`
)

type RuleExecutionRepository interface {
	Log(execution *domain.RuleExecution) error
	ListByRule(ruleID int, limit int) ([]*domain.RuleExecution, error)
	ListRecent(limit int) ([]*domain.RuleExecution, error)
}

type ruleExecutionRepository struct {
	conn *postgres.Connection
}

func NewRuleExecutionRepository(conn *postgres.Connection) RuleExecutionRepository {
	return &ruleExecutionRepository{
		conn: conn,
	}
}

// Log grava um registro de execução. É o artefato primário de auditoria:
// qualquer falha aqui propaga para o chamador, nunca é engolida.
func (r *ruleExecutionRepository) Log(execution *domain.RuleExecution) error {
	query, args, err := squirrel.
		Insert("rule_executions").
		Columns(
			"rule_id",
			"run_id",
			"run_at",
			"target_id",
			"campaign_id",
			"keyword_text",
			"match_type",
			"old_bid",
			"new_bid",
			"acos",
			"clicks",
			"impressions",
			"action",
			"message",
		).
		Values(
			execution.RuleID,
			execution.RunID,
			execution.RunAt,
			execution.TargetID,
			execution.CampaignID,
			execution.KeywordText,
			execution.MatchType,
			execution.OldBid,
			execution.NewBid,
			execution.Acos,
			execution.Clicks,
			execution.Impressions,
			execution.Action,
			execution.Message,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar execução de regra: %w", err)
	}

	return nil
}

func (r *ruleExecutionRepository) ListByRule(ruleID int, limit int) ([]*domain.RuleExecution, error) {
	queryBuilder := squirrel.
		Select(ruleExecutionColumns).
		From(ruleExecutionsTable).
		Where(squirrel.Eq{"re.rule_id": ruleID}).
		OrderBy("re.run_at DESC", "re.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return r.collectExecutions(rows)
}

func (r *ruleExecutionRepository) ListRecent(limit int) ([]*domain.RuleExecution, error) {
	if limit <= 0 {
		limit = 100
	}

	query, args, err := squirrel.
		Select(ruleExecutionColumns).
		From(ruleExecutionsTable).
		OrderBy("re.run_at DESC", "re.id DESC").
		Limit(uint64(limit)).
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

	return r.collectExecutions(rows)
}

func (r *ruleExecutionRepository) collectExecutions(rows *sql.Rows) ([]*domain.RuleExecution, error) {
	executions := make([]*domain.RuleExecution, 0)

	for rows.Next() {
		execution, err := r.scanExecution(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		executions = append(executions, execution)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return executions, nil
}

func (r *ruleExecutionRepository) scanExecution(rows *sql.Rows) (*domain.RuleExecution, error) {
	execution := &domain.RuleExecution{}

	err := rows.Scan(
		&execution.ID,
		&execution.RuleID,
		&execution.RunID,
		&execution.RunAt,
		&execution.TargetID,
		&execution.CampaignID,
		&execution.KeywordText,
		&execution.MatchType,
		&execution.OldBid,
		&execution.NewBid,
		&execution.Acos,
		&execution.Clicks,
		&execution.Impressions,
		&execution.Action,
		&execution.Message,
	)
	if err != nil {
		return nil, err
	}

	return execution, nil
}
