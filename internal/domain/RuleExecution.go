package domain

import (
	"time"
)

type RuleAction string

const (
	ActionIncrease      RuleAction = "INCREASE"
	ActionDecrease      RuleAction = "DECREASE"
	ActionNoAction      RuleAction = "NO_ACTION"
	ActionSkipFilter    RuleAction = "SKIP_FILTER"
	ActionSkipCondition RuleAction = "SKIP_CONDITION"
)

// RuleExecution é o registro imutável de auditoria de uma avaliação
// (regra, snapshot). É gravado exatamente uma vez por snapshot avaliado em
// cada passagem do scheduler, independente do resultado, e nunca é alterado.
// RuleID é uma referência fraca: a regra pode ter sido removida e o
// histórico continua legível.
type RuleExecution struct {
	ID          int        `json:"id"`
	RuleID      int        `json:"rule_id"`
	RunID       string     `json:"run_id"`
	RunAt       time.Time  `json:"run_at"`
	TargetID    string     `json:"target_id"`
	CampaignID  string     `json:"campaign_id"`
	KeywordText string     `json:"keyword_text"`
	MatchType   string     `json:"match_type"`
	OldBid      float64    `json:"old_bid"`
	NewBid      float64    `json:"new_bid"`
	Acos        *float64   `json:"acos"`
	Clicks      *int       `json:"clicks"`
	Impressions *int       `json:"impressions"`
	Action      RuleAction `json:"action"`
	Message     string     `json:"message"`
}

// RuleStepLog é o resultado de um passo na aplicação sequencial de várias
// regras sobre o mesmo target (uma entrada por regra, qualquer que seja a
// ação).
type RuleStepLog struct {
	RuleID int        `json:"rule_id"`
	OldBid float64    `json:"old_bid"`
	NewBid float64    `json:"new_bid"`
	Action RuleAction `json:"action"`
}
