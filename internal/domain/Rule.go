package domain

import (
	"time"
)

type RuleType string

const (
	RuleTypeAcosBand   RuleType = "ACOS_BAND"
	RuleTypeLowTraffic RuleType = "LOW_TRAFFIC"
)

type AdjustmentType string

const (
	AdjustmentTypeAbs AdjustmentType = "ABS"
	AdjustmentTypePct AdjustmentType = "PCT"
)

// TimeframeLifetime indica que a regra analisa o histórico completo do target,
// sem janela de lookback
const TimeframeLifetime = -1

// Rule representa uma regra de automação de bid criada pelo usuário.
// Os filtros de escopo (campaign_id, marketplace, match_type) são opcionais:
// nil significa "todas". Apenas o par de condições correspondente ao rule_type
// é considerado pelo motor; o outro par é ignorado.
type Rule struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	RuleType        RuleType       `json:"rule_type"`
	CampaignID      *string        `json:"campaign_id"`
	Marketplace     *string        `json:"marketplace"`
	MatchType       *string        `json:"match_type"`
	AcosMin         *float64       `json:"acos_min"`
	AcosMax         *float64       `json:"acos_max"`
	ClicksMin       *int           `json:"clicks_min"`
	ClicksMax       *int           `json:"clicks_max"`
	AdjustmentType  AdjustmentType `json:"adjustment_type"`
	AdjustmentValue float64        `json:"adjustment_value"`
	TimeframeDays   int            `json:"timeframe_days"`
	FrequencyDays   int            `json:"frequency_days"`
	Enabled         bool           `json:"enabled"`
	LastRunAt       *time.Time     `json:"last_run_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// CreateRuleRequest define os campos aceitos na criação de uma regra.
// id, last_run_at, created_at e updated_at são atribuídos pelo repositório.
type CreateRuleRequest struct {
	Name            string         `json:"name"`
	RuleType        RuleType       `json:"rule_type"`
	CampaignID      *string        `json:"campaign_id"`
	Marketplace     *string        `json:"marketplace"`
	MatchType       *string        `json:"match_type"`
	AcosMin         *float64       `json:"acos_min"`
	AcosMax         *float64       `json:"acos_max"`
	ClicksMin       *int           `json:"clicks_min"`
	ClicksMax       *int           `json:"clicks_max"`
	AdjustmentType  AdjustmentType `json:"adjustment_type"`
	AdjustmentValue float64        `json:"adjustment_value"`
	TimeframeDays   int            `json:"timeframe_days"`
	FrequencyDays   int            `json:"frequency_days"`
	Enabled         *bool          `json:"enabled"`
}

// UpdateRuleRequest define a lista de campos mutáveis de uma regra.
// Campos nil não são tocados. id e created_at são imutáveis.
type UpdateRuleRequest struct {
	ID              int             `json:"id"`
	Name            *string         `json:"name"`
	RuleType        *RuleType       `json:"rule_type"`
	CampaignID      *string         `json:"campaign_id"`
	Marketplace     *string         `json:"marketplace"`
	MatchType       *string         `json:"match_type"`
	AcosMin         *float64        `json:"acos_min"`
	AcosMax         *float64        `json:"acos_max"`
	ClicksMin       *int            `json:"clicks_min"`
	ClicksMax       *int            `json:"clicks_max"`
	AdjustmentType  *AdjustmentType `json:"adjustment_type"`
	AdjustmentValue *float64        `json:"adjustment_value"`
	TimeframeDays   *int            `json:"timeframe_days"`
	FrequencyDays   *int            `json:"frequency_days"`
	Enabled         *bool           `json:"enabled"`
}
