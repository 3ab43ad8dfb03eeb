package amazondomain

// Target representa um target retornado pela Amazon Ads API (keyword,
// produto ou segmentação automática). O endpoint de consulta é puramente
// configurativo: métricas de performance vêm do relatório spTargeting, que
// aceita a janela de datas da regra.
type Target struct {
	TargetID      string         `json:"targetId"`
	CampaignID    string         `json:"campaignId"`
	TargetType    string         `json:"targetType"`
	State         string         `json:"state"`
	Bid           *TargetBid     `json:"bid,omitempty"`
	TargetDetails *TargetDetails `json:"targetDetails,omitempty"`
}

type TargetBid struct {
	Bid          float64 `json:"bid"`
	CurrencyCode string  `json:"currencyCode,omitempty"`
}

type TargetDetails struct {
	KeywordTarget *KeywordTarget `json:"keywordTarget,omitempty"`
}

type KeywordTarget struct {
	Keyword   string `json:"keyword"`
	MatchType string `json:"matchType"`
}

// TargetReportMetrics agrega as métricas de um target na janela do relatório
// spTargeting. Acos é percentual (custo/vendas * 100) e fica nulo quando não
// houve custo ou venda no período.
type TargetReportMetrics struct {
	Impressions int
	Clicks      int
	Cost        float64
	Orders      int
	Sales       float64
	Acos        *float64
}

// Profile é um perfil de anunciante retornado por GET /v2/profiles.
type Profile struct {
	ProfileID    int64  `json:"profileId"`
	CountryCode  string `json:"countryCode"`
	CurrencyCode string `json:"currencyCode"`
	AccountInfo  struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"accountInfo"`
}

// QueryTargetsResponse é a resposta paginada de POST /adsApi/v1/query/targets.
type QueryTargetsResponse struct {
	Targets   []Target `json:"targets"`
	NextToken string   `json:"nextToken,omitempty"`
}

// TargetBidUpdate é uma entrada do payload de atualização de bids.
type TargetBidUpdate struct {
	TargetID string    `json:"targetId"`
	Bid      TargetBid `json:"bid"`
}

type UpdateTargetsRequest struct {
	Targets []TargetBidUpdate `json:"targets"`
}

type UpdateTargetsResponse struct {
	Success []UpdateTargetResult `json:"success,omitempty"`
	Error   []UpdateTargetResult `json:"error,omitempty"`
}

type UpdateTargetResult struct {
	TargetID string `json:"targetId"`
	Index    int    `json:"index"`
	Message  string `json:"message,omitempty"`
}
