package amazonclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	amazondomain "github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/domain"
)

// GetProfiles lista os perfis de anunciante acessíveis pelas credenciais,
// via GET /v2/profiles. Usado para descobrir o marketplace do perfil
// configurado.
func (c *AmazonClient) GetProfiles() ([]amazondomain.Profile, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	url := fmt.Sprintf("%s/v2/profiles", c.Cfg.AmazonAds.APIBaseURL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	c.setAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetProfiles()
		}
		return nil, err
	}

	var profiles []amazondomain.Profile
	if err := json.Unmarshal(body, &profiles); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return profiles, nil
}
