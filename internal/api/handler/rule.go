package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-rules-api/internal/domain"
	"github.com/vfg2006/ads-rules-api/internal/usecases/ruling"
	"github.com/vfg2006/ads-rules-api/pkg/apiErrors"
)

type SimulateRulesRequest struct {
	Snapshot domain.TargetSnapshot `json:"snapshot"`
	RuleIDs  []int                 `json:"rule_ids"`
}

type SimulateRulesResponse struct {
	FinalBid float64              `json:"final_bid"`
	Steps    []domain.RuleStepLog `json:"steps"`
}

// CreateRule cria uma nova regra de ajuste de bid
func CreateRule(service ruling.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateRule")

		var req domain.CreateRuleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		rule, err := service.CreateRule(&req)
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(rule); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListRules lista todas as regras cadastradas
func ListRules(service ruling.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules, err := service.ListRules()
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rules); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetRule retorna uma regra por ID
func GetRule(service ruling.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ruleID, ok := ruleIDFromRequest(w, r)
		if !ok {
			return
		}

		rule, err := service.GetRule(ruleID)
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rule); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateRule aplica uma atualização parcial a uma regra. Somente os campos
// presentes no corpo são alterados.
func UpdateRule(service ruling.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateRule")

		ruleID, ok := ruleIDFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.UpdateRuleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = ruleID

		rule, err := service.UpdateRule(&req)
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rule); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteRule remove uma regra. O histórico de execuções é preservado.
func DeleteRule(service ruling.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteRule")

		ruleID, ok := ruleIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteRule(ruleID); err != nil {
			handleRuleError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SetRuleEnabled habilita ou desabilita uma regra conforme o sufixo da rota
func SetRuleEnabled(service ruling.RuleService, enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ruleID, ok := ruleIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.SetRuleEnabled(ruleID, enabled); err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"rule_id": ruleID,
			"enabled": enabled,
		})
	}
}

// SimulateRules aplica uma cadeia de regras a um snapshot sem persistir nada:
// pré-visualização do efeito combinado antes de habilitar as regras
func SimulateRules(service ruling.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SimulateRulesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if len(req.RuleIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ao menos uma regra para simular", nil)
			return
		}

		finalBid, steps, err := service.SimulateRules(req.Snapshot, req.RuleIDs)
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SimulateRulesResponse{
			FinalBid: finalBid,
			Steps:    steps,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ruleIDFromRequest extrai e valida o parâmetro :id da rota
func ruleIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da regra inválido", nil)
		return 0, false
	}

	return id, true
}

// handleRuleError converte erros do serviço de regras em respostas padronizadas
func handleRuleError(w http.ResponseWriter, err error) {
	var ruleErr *ruling.RuleError
	if errors.As(err, &ruleErr) {
		apiErrors.WriteError(w, ruleErr.Code, ruleErr.Error(), map[string]any{
			"rule_id": ruleErr.RuleID,
		})
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar regra", nil)
}
