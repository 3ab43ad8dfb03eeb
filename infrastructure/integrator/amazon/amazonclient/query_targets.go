package amazonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	amazondomain "github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/domain"
)

const maxResultsPerPage = 1000

// TargetFilter restringe a consulta de targets. CampaignID vazio consulta
// todas as campanhas Sponsored Products do perfil. A consulta é configurativa;
// métricas por janela vêm de GetTargetMetrics.
type TargetFilter struct {
	CampaignID string
}

type queryTargetsPayload struct {
	AdProductFilter  includeFilter `json:"adProductFilter"`
	CampaignIDFilter includeFilter `json:"campaignIdFilter,omitempty"`
	StateFilter      includeFilter `json:"stateFilter"`
	MaxResults       int           `json:"maxResults"`
	NextToken        string        `json:"nextToken,omitempty"`
}

type includeFilter struct {
	Include []string `json:"include,omitempty"`
}

// QueryTargets busca todos os targets do perfil via POST
// /adsApi/v1/query/targets, seguindo a paginação por nextToken. Targets de
// keyword, produto e auto são retornados indistintamente.
func (c *AmazonClient) QueryTargets(filter *TargetFilter) ([]amazondomain.Target, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	payload := queryTargetsPayload{
		AdProductFilter: includeFilter{Include: []string{"SPONSORED_PRODUCTS"}},
		StateFilter:     includeFilter{Include: []string{"ENABLED", "PAUSED"}},
		MaxResults:      maxResultsPerPage,
	}
	if filter != nil && filter.CampaignID != "" {
		payload.CampaignIDFilter = includeFilter{Include: []string{filter.CampaignID}}
	}

	targets := make([]amazondomain.Target, 0)
	for {
		page, nextToken, err := c.queryTargetsPage(payload)
		if err != nil {
			return nil, err
		}

		targets = append(targets, page...)

		if nextToken == "" {
			break
		}
		payload.NextToken = nextToken
	}

	logrus.WithField("total_targets", len(targets)).Debug("amazon: targets carregados")

	return targets, nil
}

func (c *AmazonClient) queryTargetsPage(payload queryTargetsPayload) ([]amazondomain.Target, string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao serializar payload: %w", err)
	}

	url := fmt.Sprintf("%s/adsApi/v1/query/targets", c.Cfg.AmazonAds.APIBaseURL)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, "", err
	}
	c.setAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, "", err
	}
	defer resp.Body.Close()

	respBody, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.queryTargetsPage(payload)
		}
		return nil, "", err
	}

	var response amazondomain.QueryTargetsResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, "", err
	}

	return response.Targets, response.NextToken, nil
}
