package amazonclient

import (
	"fmt"
	"io"
	"net/http"

	amazondomain "github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/ads-rules-api/internal/config"
)

type Client interface {
	QueryTargets(filter *TargetFilter) ([]amazondomain.Target, error)
	GetTargetMetrics(campaignID string, timeframeDays int) (map[string]amazondomain.TargetReportMetrics, error)
	UpdateTargetBids(updates []amazondomain.TargetBidUpdate) (*amazondomain.UpdateTargetsResponse, error)
	GetProfiles() ([]amazondomain.Profile, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type AmazonClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	HTTPClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &AmazonClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		HTTPClient:   &http.Client{},
	}
	return client
}

// RefreshToken força a renovação do access token LWA
func (c *AmazonClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *AmazonClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// setAuthHeaders preenche os cabeçalhos exigidos pela Amazon Ads API.
// Amazon-Ads-CustomerId e Amazon-Advertising-API-Scope recebem o mesmo
// profile id; a API exige ambos dependendo do endpoint.
func (c *AmazonClient) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.TokenManager.AccessToken())
	req.Header.Set("Amazon-Ads-ClientId", c.Cfg.AmazonAds.ClientID)
	req.Header.Set("Amazon-Ads-CustomerId", c.Cfg.AmazonAds.ProfileID)
	req.Header.Set("Amazon-Advertising-API-Scope", c.Cfg.AmazonAds.ProfileID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// HandleResponse lê o corpo e devolve erro com status e corpo quando a
// resposta não for 2xx. Um 401 derruba o token em memória para que a
// próxima chamada renove.
func (c *AmazonClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if refreshErr := c.RefreshToken(); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}
		return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}
