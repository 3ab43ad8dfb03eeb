// Package ruling contém o motor de avaliação de regras e o usecase de
// gerenciamento de regras. O motor é puro: sem I/O, determinístico para um
// mesmo par (snapshot, regra).
package ruling

import (
	"github.com/vfg2006/ads-rules-api/internal/domain"
	"github.com/vfg2006/ads-rules-api/pkg/utils"
)

// MatchesFilters verifica os filtros de escopo da regra: campaign_id,
// marketplace e match_type. Cada filtro é um predicado de igualdade opcional
// e independente; nil sempre casa. Não há matching parcial.
func MatchesFilters(snapshot domain.TargetSnapshot, rule *domain.Rule) bool {
	if rule.CampaignID != nil && snapshot.CampaignID != *rule.CampaignID {
		return false
	}

	if rule.Marketplace != nil && snapshot.Marketplace != *rule.Marketplace {
		return false
	}

	if rule.MatchType != nil && snapshot.MatchType != *rule.MatchType {
		return false
	}

	return true
}

// ConditionMatches verifica a condição específica do tipo da regra.
//
// ACOS_BAND: falha se o snapshot não tem ACOS; limites inclusivos nas duas
// pontas, cada um opcional.
//
// LOW_TRAFFIC: falha se o snapshot não tem clicks; limite inferior inclusivo
// (default 0), limite superior EXCLUSIVO — "menos de N cliques", como a regra
// é redigida pelo usuário. A assimetria com ACOS_BAND é intencional.
func ConditionMatches(snapshot domain.TargetSnapshot, rule *domain.Rule) bool {
	switch rule.RuleType {
	case domain.RuleTypeAcosBand:
		if snapshot.Acos == nil {
			return false
		}

		if rule.AcosMin != nil && *snapshot.Acos < *rule.AcosMin {
			return false
		}
		if rule.AcosMax != nil && *snapshot.Acos > *rule.AcosMax {
			return false
		}

		return true

	case domain.RuleTypeLowTraffic:
		if snapshot.Clicks == nil {
			return false
		}

		clicksMin := 0
		if rule.ClicksMin != nil {
			clicksMin = *rule.ClicksMin
		}

		if *snapshot.Clicks < clicksMin {
			return false
		}
		if rule.ClicksMax != nil && *snapshot.Clicks >= *rule.ClicksMax {
			return false
		}

		return true
	}

	// Tipo não reconhecido: por segurança, não aplicar
	return false
}

// ComputeDelta calcula a variação de bid da regra. ABS usa o valor em moeda
// como está (pode ser negativo); PCT é percentual do bid atual. Tipo
// desconhecido resulta em delta zero.
func ComputeDelta(currentBid float64, rule *domain.Rule) float64 {
	switch rule.AdjustmentType {
	case domain.AdjustmentTypeAbs:
		return rule.AdjustmentValue
	case domain.AdjustmentTypePct:
		return currentBid * rule.AdjustmentValue / 100.0
	}

	return 0
}

// ApplyRuleToTarget aplica uma única regra a um snapshot. A ordem de
// avaliação é estrita e com curto-circuito: filtros, condição, delta zero,
// clamp em [minBid, maxBid] (cada limite opcional), arredondamento a
// centavos. A ação final é derivada do resultado já clampado e arredondado
// comparado ao bid original — um delta empurrado de volta pelo teto vira
// NO_ACTION.
func ApplyRuleToTarget(
	snapshot domain.TargetSnapshot,
	rule *domain.Rule,
	minBid *float64,
	maxBid *float64,
) (float64, domain.RuleAction) {
	if !MatchesFilters(snapshot, rule) {
		return snapshot.Bid, domain.ActionSkipFilter
	}

	if !ConditionMatches(snapshot, rule) {
		return snapshot.Bid, domain.ActionSkipCondition
	}

	currentBid := snapshot.Bid

	delta := ComputeDelta(currentBid, rule)
	if delta == 0 {
		return currentBid, domain.ActionNoAction
	}

	newBid := currentBid + delta

	if minBid != nil && newBid < *minBid {
		newBid = *minBid
	}
	if maxBid != nil && newBid > *maxBid {
		newBid = *maxBid
	}

	newBid = utils.RoundWithTwoDecimalPlace(newBid)

	switch {
	case newBid > currentBid:
		return newBid, domain.ActionIncrease
	case newBid < currentBid:
		return newBid, domain.ActionDecrease
	default:
		return newBid, domain.ActionNoAction
	}
}

// ApplyRulesToTarget aplica várias regras em sequência ao mesmo target: o
// bid de saída de cada regra alimenta a entrada da próxima, e cada regra
// gera exatamente uma entrada de log, qualquer que seja o resultado.
func ApplyRulesToTarget(
	snapshot domain.TargetSnapshot,
	rules []*domain.Rule,
	minBid *float64,
	maxBid *float64,
) (float64, []domain.RuleStepLog) {
	bid := snapshot.Bid
	logs := make([]domain.RuleStepLog, 0, len(rules))

	for _, rule := range rules {
		newBid, action := ApplyRuleToTarget(snapshot.WithBid(bid), rule, minBid, maxBid)

		logs = append(logs, domain.RuleStepLog{
			RuleID: rule.ID,
			OldBid: bid,
			NewBid: newBid,
			Action: action,
		})

		bid = newBid
	}

	return bid, logs
}
