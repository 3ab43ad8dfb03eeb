package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-rules-api/internal/domain"
)

func TestRuleExecutionRepository_Log(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleExecutionRepository(conn)

	mock.ExpectExec(`INSERT INTO rule_executions`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Log(&domain.RuleExecution{
		RuleID: 1,
		RunID:  "r8z3kq1m",
		RunAt:  time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC),
		OldBid: 0.50,
		NewBid: 0.55,
		Action: domain.ActionIncrease,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleExecutionRepository_Log_PropagatesError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleExecutionRepository(conn)

	// A trilha de auditoria é obrigatória: falha na escrita deve subir para o
	// chamador, nunca ser engolida
	mock.ExpectExec(`INSERT INTO rule_executions`).
		WillReturnError(errors.New("connection reset"))

	err := repo.Log(&domain.RuleExecution{
		RuleID: 1,
		RunAt:  time.Now().UTC(),
		Action: domain.ActionNoAction,
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleExecutionRepository_ListByRule(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleExecutionRepository(conn)

	runAt := time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM rule_executions re WHERE re\.rule_id = \$1 ORDER BY re\.run_at DESC, re\.id DESC LIMIT 50`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "rule_id", "run_id", "run_at",
			"target_id", "campaign_id", "keyword_text", "match_type",
			"old_bid", "new_bid", "acos", "clicks", "impressions",
			"action", "message",
		}).AddRow(10, 3, "r8z3kq1m", runAt, "t-1", "c-1", "tenis corrida", "EXACT", 0.50, 0.55, 25.0, 12, 900, "INCREASE", ""))

	executions, err := repo.ListByRule(3, 50)

	assert.NoError(t, err)
	assert.Len(t, executions, 1)
	assert.Equal(t, "r8z3kq1m", executions[0].RunID)
	assert.Equal(t, domain.ActionIncrease, executions[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRuleExecutionRepository_ListRecent_DefaultLimit(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRuleExecutionRepository(conn)

	mock.ExpectQuery(`SELECT .+ FROM rule_executions re ORDER BY re\.run_at DESC, re\.id DESC LIMIT 100`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "rule_id", "run_id", "run_at",
			"target_id", "campaign_id", "keyword_text", "match_type",
			"old_bid", "new_bid", "acos", "clicks", "impressions",
			"action", "message",
		}))

	executions, err := repo.ListRecent(0)

	assert.NoError(t, err)
	assert.Empty(t, executions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
