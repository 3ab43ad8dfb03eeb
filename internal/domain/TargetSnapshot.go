package domain

// TargetSnapshot é uma leitura pontual de performance de um target
// (keyword, produto ou segmentação automática), fornecida pelo integrador.
// Nunca é persistida diretamente — apenas os campos relevantes vão para o
// log de execuções. Métricas ausentes no período ficam nil.
type TargetSnapshot struct {
	TargetID    string   `json:"target_id"`
	CampaignID  string   `json:"campaign_id"`
	KeywordText string   `json:"keyword_text"`
	MatchType   string   `json:"match_type"`
	Marketplace string   `json:"marketplace"`
	Bid         float64  `json:"bid"`
	Acos        *float64 `json:"acos"`
	Clicks      *int     `json:"clicks"`
	Impressions *int     `json:"impressions"`
}

// WithBid retorna uma cópia do snapshot com o bid substituído. Usado na
// aplicação sequencial de regras, onde o bid de saída de uma regra alimenta
// a próxima.
func (t TargetSnapshot) WithBid(bid float64) TargetSnapshot {
	t.Bid = bid
	return t
}
