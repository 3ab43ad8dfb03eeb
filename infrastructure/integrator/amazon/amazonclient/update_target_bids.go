package amazonclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	amazondomain "github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/domain"
)

// UpdateTargetBids atualiza os bids dos targets informados via POST
// /adsApi/v1/update/targets. A API aceita sucesso parcial: resultados por
// target vêm nas listas success e error da resposta.
func (c *AmazonClient) UpdateTargetBids(updates []amazondomain.TargetBidUpdate) (*amazondomain.UpdateTargetsResponse, error) {
	if len(updates) == 0 {
		return nil, errors.New("nenhum target para atualizar")
	}

	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	body, err := json.Marshal(amazondomain.UpdateTargetsRequest{Targets: updates})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar payload: %w", err)
	}

	url := fmt.Sprintf("%s/adsApi/v1/update/targets", c.Cfg.AmazonAds.APIBaseURL)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
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

	respBody, err := c.HandleResponse(resp)
	if err != nil {
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.UpdateTargetBids(updates)
		}
		return nil, err
	}

	var response amazondomain.UpdateTargetsResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	for _, failure := range response.Error {
		logrus.WithFields(logrus.Fields{
			"target_id": failure.TargetID,
			"message":   failure.Message,
		}).Warn("amazon: falha ao atualizar bid do target")
	}

	return &response, nil
}
