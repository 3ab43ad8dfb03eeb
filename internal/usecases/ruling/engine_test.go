package ruling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-rules-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func stringPtr(s string) *string  { return &s }

// Snapshot de referência usado na maioria dos cenários:
// bid 0.50, ACOS 25%, 5 cliques.
func baseSnapshot() domain.TargetSnapshot {
	return domain.TargetSnapshot{
		TargetID:    "T123",
		CampaignID:  "C456",
		KeywordText: "example keyword",
		MatchType:   "exact",
		Marketplace: "US",
		Bid:         0.50,
		Acos:        floatPtr(25.0),
		Clicks:      intPtr(5),
		Impressions: intPtr(1234),
	}
}

func acosBandRule() *domain.Rule {
	return &domain.Rule{
		ID:              1,
		RuleType:        domain.RuleTypeAcosBand,
		AcosMin:         floatPtr(20.0),
		AcosMax:         floatPtr(30.0),
		AdjustmentType:  domain.AdjustmentTypeAbs,
		AdjustmentValue: 0.05,
	}
}

func lowTrafficRule() *domain.Rule {
	return &domain.Rule{
		ID:              2,
		RuleType:        domain.RuleTypeLowTraffic,
		ClicksMin:       intPtr(0),
		ClicksMax:       intPtr(10),
		AdjustmentType:  domain.AdjustmentTypeAbs,
		AdjustmentValue: 0.02,
	}
}

func TestMatchesFilters(t *testing.T) {
	snapshot := baseSnapshot()

	tests := []struct {
		name     string
		rule     *domain.Rule
		expected bool
	}{
		{
			name:     "sem filtros casa qualquer target",
			rule:     &domain.Rule{},
			expected: true,
		},
		{
			name:     "todos os filtros iguais",
			rule:     &domain.Rule{CampaignID: stringPtr("C456"), Marketplace: stringPtr("US"), MatchType: stringPtr("exact")},
			expected: true,
		},
		{
			name:     "campaign_id diferente",
			rule:     &domain.Rule{CampaignID: stringPtr("C999")},
			expected: false,
		},
		{
			name:     "marketplace diferente",
			rule:     &domain.Rule{Marketplace: stringPtr("IT")},
			expected: false,
		},
		{
			name:     "match_type diferente",
			rule:     &domain.Rule{MatchType: stringPtr("broad")},
			expected: false,
		},
		{
			name:     "um filtro casa e outro não",
			rule:     &domain.Rule{CampaignID: stringPtr("C456"), MatchType: stringPtr("phrase")},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesFilters(snapshot, tt.rule))
		})
	}
}

func TestConditionMatches_AcosBand(t *testing.T) {
	tests := []struct {
		name     string
		acos     *float64
		acosMin  *float64
		acosMax  *float64
		expected bool
	}{
		{name: "dentro da banda", acos: floatPtr(25.0), acosMin: floatPtr(20.0), acosMax: floatPtr(30.0), expected: true},
		{name: "acos ausente falha", acos: nil, acosMin: floatPtr(20.0), acosMax: floatPtr(30.0), expected: false},
		{name: "abaixo do mínimo", acos: floatPtr(19.9), acosMin: floatPtr(20.0), acosMax: floatPtr(30.0), expected: false},
		{name: "acima do máximo", acos: floatPtr(30.1), acosMin: floatPtr(20.0), acosMax: floatPtr(30.0), expected: false},
		{name: "mínimo inclusivo", acos: floatPtr(20.0), acosMin: floatPtr(20.0), acosMax: floatPtr(30.0), expected: true},
		{name: "máximo inclusivo", acos: floatPtr(30.0), acosMin: floatPtr(20.0), acosMax: floatPtr(30.0), expected: true},
		{name: "sem mínimo", acos: floatPtr(5.0), acosMin: nil, acosMax: floatPtr(30.0), expected: true},
		{name: "sem máximo", acos: floatPtr(90.0), acosMin: floatPtr(20.0), acosMax: nil, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := baseSnapshot()
			snapshot.Acos = tt.acos

			rule := &domain.Rule{
				RuleType: domain.RuleTypeAcosBand,
				AcosMin:  tt.acosMin,
				AcosMax:  tt.acosMax,
			}

			assert.Equal(t, tt.expected, ConditionMatches(snapshot, rule))
		})
	}
}

func TestConditionMatches_LowTraffic(t *testing.T) {
	tests := []struct {
		name      string
		clicks    *int
		clicksMin *int
		clicksMax *int
		expected  bool
	}{
		{name: "dentro do intervalo", clicks: intPtr(5), clicksMin: intPtr(0), clicksMax: intPtr(10), expected: true},
		{name: "clicks ausente falha", clicks: nil, clicksMin: intPtr(0), clicksMax: intPtr(10), expected: false},
		{name: "limite inferior inclusivo", clicks: intPtr(0), clicksMin: intPtr(0), clicksMax: intPtr(10), expected: true},
		// intervalo [0, 10): 10 cliques NÃO casa — "menos de 10 cliques"
		{name: "limite superior exclusivo", clicks: intPtr(10), clicksMin: intPtr(0), clicksMax: intPtr(10), expected: false},
		{name: "abaixo do mínimo", clicks: intPtr(2), clicksMin: intPtr(3), clicksMax: nil, expected: false},
		{name: "mínimo ausente vale zero", clicks: intPtr(0), clicksMin: nil, clicksMax: intPtr(10), expected: true},
		{name: "sem máximo aceita qualquer volume", clicks: intPtr(5000), clicksMin: intPtr(0), clicksMax: nil, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := baseSnapshot()
			snapshot.Clicks = tt.clicks

			rule := &domain.Rule{
				RuleType:  domain.RuleTypeLowTraffic,
				ClicksMin: tt.clicksMin,
				ClicksMax: tt.clicksMax,
			}

			assert.Equal(t, tt.expected, ConditionMatches(snapshot, rule))
		})
	}
}

func TestConditionMatches_UnknownRuleType(t *testing.T) {
	rule := &domain.Rule{RuleType: "SOMETHING_ELSE"}
	assert.False(t, ConditionMatches(baseSnapshot(), rule))
}

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name            string
		adjustmentType  domain.AdjustmentType
		adjustmentValue float64
		currentBid      float64
		expected        float64
	}{
		{name: "ABS positivo", adjustmentType: domain.AdjustmentTypeAbs, adjustmentValue: 0.05, currentBid: 0.50, expected: 0.05},
		{name: "ABS negativo", adjustmentType: domain.AdjustmentTypeAbs, adjustmentValue: -0.02, currentBid: 0.50, expected: -0.02},
		{name: "PCT positivo", adjustmentType: domain.AdjustmentTypePct, adjustmentValue: 10, currentBid: 0.50, expected: 0.05},
		{name: "PCT negativo", adjustmentType: domain.AdjustmentTypePct, adjustmentValue: -5, currentBid: 1.00, expected: -0.05},
		{name: "tipo desconhecido vale zero", adjustmentType: "FIXED", adjustmentValue: 1.0, currentBid: 0.50, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &domain.Rule{AdjustmentType: tt.adjustmentType, AdjustmentValue: tt.adjustmentValue}
			assert.InDelta(t, tt.expected, ComputeDelta(tt.currentBid, rule), 1e-9)
		})
	}
}

func TestApplyRuleToTarget(t *testing.T) {
	tests := []struct {
		name           string
		snapshot       func() domain.TargetSnapshot
		rule           func() *domain.Rule
		minBid         *float64
		maxBid         *float64
		expectedBid    float64
		expectedAction domain.RuleAction
	}{
		{
			// Cenário A: ACOS_BAND [20,30] ABS +0.05
			name:           "banda de ACOS com ajuste absoluto",
			snapshot:       baseSnapshot,
			rule:           acosBandRule,
			expectedBid:    0.55,
			expectedAction: domain.ActionIncrease,
		},
		{
			// Cenário B: ACOS_BAND [20,30] PCT +10
			name:     "banda de ACOS com ajuste percentual",
			snapshot: baseSnapshot,
			rule: func() *domain.Rule {
				r := acosBandRule()
				r.AdjustmentType = domain.AdjustmentTypePct
				r.AdjustmentValue = 10
				return r
			},
			expectedBid:    0.55,
			expectedAction: domain.ActionIncrease,
		},
		{
			// Cenário C: LOW_TRAFFIC [0,10) ABS +0.02, 5 cliques
			name:           "baixo tráfego com ajuste absoluto",
			snapshot:       baseSnapshot,
			rule:           lowTrafficRule,
			expectedBid:    0.52,
			expectedAction: domain.ActionIncrease,
		},
		{
			name:     "filtro não casa mantém o bid",
			snapshot: baseSnapshot,
			rule: func() *domain.Rule {
				r := acosBandRule()
				r.CampaignID = stringPtr("C999")
				return r
			},
			expectedBid:    0.50,
			expectedAction: domain.ActionSkipFilter,
		},
		{
			name: "condição não casa mantém o bid",
			snapshot: func() domain.TargetSnapshot {
				s := baseSnapshot()
				s.Acos = floatPtr(55.0)
				return s
			},
			rule:           acosBandRule,
			expectedBid:    0.50,
			expectedAction: domain.ActionSkipCondition,
		},
		{
			name:     "delta zero é NO_ACTION",
			snapshot: baseSnapshot,
			rule: func() *domain.Rule {
				r := acosBandRule()
				r.AdjustmentValue = 0
				return r
			},
			expectedBid:    0.50,
			expectedAction: domain.ActionNoAction,
		},
		{
			name:     "tipo de ajuste desconhecido é NO_ACTION",
			snapshot: baseSnapshot,
			rule: func() *domain.Rule {
				r := acosBandRule()
				r.AdjustmentType = "FIXED"
				return r
			},
			expectedBid:    0.50,
			expectedAction: domain.ActionNoAction,
		},
		{
			name:     "redução clampada no piso",
			snapshot: baseSnapshot,
			rule: func() *domain.Rule {
				r := acosBandRule()
				r.AdjustmentValue = -0.60
				return r
			},
			minBid:         floatPtr(0.02),
			expectedBid:    0.02,
			expectedAction: domain.ActionDecrease,
		},
		{
			name:           "aumento clampado no teto",
			snapshot:       baseSnapshot,
			rule:           acosBandRule,
			maxBid:         floatPtr(0.52),
			expectedBid:    0.52,
			expectedAction: domain.ActionIncrease,
		},
		{
			// Teto igual ao bid atual: o delta é anulado pelo clamp
			name:           "teto igual ao bid atual vira NO_ACTION",
			snapshot:       baseSnapshot,
			rule:           acosBandRule,
			maxBid:         floatPtr(0.50),
			expectedBid:    0.50,
			expectedAction: domain.ActionNoAction,
		},
		{
			name:     "ajuste negativo gera DECREASE",
			snapshot: baseSnapshot,
			rule: func() *domain.Rule {
				r := acosBandRule()
				r.AdjustmentValue = -0.05
				return r
			},
			expectedBid:    0.45,
			expectedAction: domain.ActionDecrease,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newBid, action := ApplyRuleToTarget(tt.snapshot(), tt.rule(), tt.minBid, tt.maxBid)

			assert.InDelta(t, tt.expectedBid, newBid, 1e-9)
			assert.Equal(t, tt.expectedAction, action)
		})
	}
}

// Reavaliar o mesmo snapshot com a mesma regra sempre produz o mesmo
// resultado — o motor é determinístico e SKIP não altera nada.
func TestApplyRuleToTarget_Deterministic(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Acos = floatPtr(55.0) // fora da banda

	rule := acosBandRule()

	for i := 0; i < 3; i++ {
		newBid, action := ApplyRuleToTarget(snapshot, rule, nil, nil)
		assert.Equal(t, 0.50, newBid)
		assert.Equal(t, domain.ActionSkipCondition, action)
	}
}

func TestApplyRulesToTarget_Chain(t *testing.T) {
	// Cenário D: A (ACOS_BAND +0.05) seguido de C (LOW_TRAFFIC +0.02) sobre
	// bid 0.50. O bid intermediário 0.55 alimenta a segunda regra; os
	// cliques não mudam entre passos.
	snapshot := baseSnapshot()
	rules := []*domain.Rule{acosBandRule(), lowTrafficRule()}

	finalBid, logs := ApplyRulesToTarget(snapshot, rules, nil, nil)

	assert.InDelta(t, 0.57, finalBid, 1e-9)
	assert.Len(t, logs, 2)

	assert.Equal(t, 1, logs[0].RuleID)
	assert.InDelta(t, 0.50, logs[0].OldBid, 1e-9)
	assert.InDelta(t, 0.55, logs[0].NewBid, 1e-9)
	assert.Equal(t, domain.ActionIncrease, logs[0].Action)

	assert.Equal(t, 2, logs[1].RuleID)
	assert.InDelta(t, 0.55, logs[1].OldBid, 1e-9)
	assert.InDelta(t, 0.57, logs[1].NewBid, 1e-9)
	assert.Equal(t, domain.ActionIncrease, logs[1].Action)
}

// A cadeia equivale à composição passo a passo de ApplyRuleToTarget.
func TestApplyRulesToTarget_ComposesSequentially(t *testing.T) {
	snapshot := baseSnapshot()
	r1 := acosBandRule()
	r2 := lowTrafficRule()

	step1, _ := ApplyRuleToTarget(snapshot, r1, nil, nil)
	step2, _ := ApplyRuleToTarget(snapshot.WithBid(step1), r2, nil, nil)

	chained, logs := ApplyRulesToTarget(snapshot, []*domain.Rule{r1, r2}, nil, nil)

	assert.InDelta(t, step2, chained, 1e-9)
	assert.Len(t, logs, 2)
}

// Uma regra que não casa no meio da cadeia gera log e não altera o bid.
func TestApplyRulesToTarget_SkipStepKeepsBid(t *testing.T) {
	snapshot := baseSnapshot()

	skipped := acosBandRule()
	skipped.CampaignID = stringPtr("C999")

	finalBid, logs := ApplyRulesToTarget(snapshot, []*domain.Rule{skipped, lowTrafficRule()}, nil, nil)

	assert.InDelta(t, 0.52, finalBid, 1e-9)
	assert.Len(t, logs, 2)
	assert.Equal(t, domain.ActionSkipFilter, logs[0].Action)
	assert.InDelta(t, 0.50, logs[0].NewBid, 1e-9)
	assert.Equal(t, domain.ActionIncrease, logs[1].Action)
}
