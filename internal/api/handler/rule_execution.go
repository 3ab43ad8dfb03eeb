package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-rules-api/internal/usecases/ruling"
	"github.com/vfg2006/ads-rules-api/pkg/apiErrors"
)

// ListRuleExecutions retorna o histórico de execuções de uma regra, da mais
// recente para a mais antiga
func ListRuleExecutions(service ruling.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ruleID, ok := ruleIDFromRequest(w, r)
		if !ok {
			return
		}

		executions, err := service.ListExecutionsByRule(ruleID, limitFromQuery(r))
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(executions); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListRecentExecutions retorna as execuções mais recentes de todas as regras
func ListRecentExecutions(service ruling.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		executions, err := service.ListRecentExecutions(limitFromQuery(r))
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(executions); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// limitFromQuery lê o parâmetro opcional ?limit=. Zero delega o padrão ao
// repositório.
func limitFromQuery(r *http.Request) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
