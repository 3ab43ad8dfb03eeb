package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-rules-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-rules-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func ruleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "rule_type", "campaign_id", "marketplace", "match_type",
		"acos_min", "acos_max", "clicks_min", "clicks_max",
		"adjustment_type", "adjustment_value", "timeframe_days", "frequency_days",
		"enabled", "last_run_at", "created_at", "updated_at",
	})
}

func TestRuleRepository_CreateRule(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleRepository(conn)

	mock.ExpectQuery(`INSERT INTO rules`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	ruleID, err := repo.CreateRule(&domain.CreateRuleRequest{
		Name:            "ACOS alto reduz bid",
		RuleType:        domain.RuleTypeAcosBand,
		AdjustmentType:  domain.AdjustmentTypePct,
		AdjustmentValue: -10,
		TimeframeDays:   30,
		FrequencyDays:   3,
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, ruleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleRepository_GetRule_NotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleRepository(conn)

	mock.ExpectQuery(`SELECT .+ FROM rules r WHERE r.id = \$1`).
		WithArgs(99).
		WillReturnRows(ruleRows())

	rule, err := repo.GetRule(99)

	// Ausência não é erro: a convenção do repositório é (nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, rule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleRepository_GetDueRules(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleRepository(conn)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	lastRun := now.AddDate(0, 0, -5)
	created := now.AddDate(0, -1, 0)

	// O predicado compara o tempo decorrido em dias corridos (contínuo,
	// EPOCH/86400) com frequency_days, além de aceitar last_run_at nulo
	mock.ExpectQuery(`SELECT .+ FROM rules r WHERE r\.enabled = \$1 AND \(r\.last_run_at IS NULL OR EXTRACT\(EPOCH FROM \(\$2::timestamptz - r\.last_run_at\)\) / 86400\.0 >= r\.frequency_days\) ORDER BY r\.id ASC`).
		WithArgs(true, now).
		WillReturnRows(ruleRows().
			AddRow(1, "nunca executada", "ACOS_BAND", nil, nil, nil, 20.0, 30.0, nil, nil, "ABS", 0.05, 30, 3, true, nil, created, created).
			AddRow(2, "vencida", "LOW_TRAFFIC", nil, "US", nil, nil, nil, 0, 10, "ABS", 0.02, 14, 3, true, lastRun, created, created))

	rules, err := repo.GetDueRules(now)

	assert.NoError(t, err)
	assert.Len(t, rules, 2)
	assert.Equal(t, 1, rules[0].ID)
	assert.Nil(t, rules[0].LastRunAt)
	assert.Equal(t, 2, rules[1].ID)
	assert.Equal(t, "US", *rules[1].Marketplace)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleRepository_UpdateRule_NoFieldsIsNoop(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleRepository(conn)

	// Nenhuma expectativa registrada: com a allow-list vazia o repositório
	// não deve tocar o banco nem restampar updated_at
	err := repo.UpdateRule(&domain.UpdateRuleRequest{ID: 1})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleRepository_UpdateRule_SetsOnlyProvidedFields(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleRepository(conn)

	mock.ExpectExec(`UPDATE rules SET acos_max = \$1, updated_at = \$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	acosMax := 35.0
	err := repo.UpdateRule(&domain.UpdateRuleRequest{ID: 3, AcosMax: &acosMax})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleRepository_SetRuleEnabled(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleRepository(conn)

	mock.ExpectExec(`UPDATE rules SET enabled = \$1, updated_at = \$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetRuleEnabled(4, false)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleRepository_UpdateRuleLastRun(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleRepository(conn)

	runAt := time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE rules SET last_run_at = \$1, updated_at = \$2 WHERE id = \$3`).
		WithArgs(runAt, runAt, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRuleLastRun(5, runAt)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleRepository_DeleteRule(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleRepository(conn)

	// Sem cascade: as execuções da regra permanecem no histórico
	mock.ExpectExec(`DELETE FROM rules WHERE id = \$1`).
		WithArgs(6).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteRule(6)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
