package amazonclient

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	amazondomain "github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/domain"
)

const (
	reportPollInterval = 5 * time.Second
	reportPollTimeout  = 5 * time.Minute
)

type createReportPayload struct {
	Name          string              `json:"name"`
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate"`
	Configuration reportConfiguration `json:"configuration"`
}

type reportConfiguration struct {
	AdProduct    string         `json:"adProduct"`
	ReportTypeID string         `json:"reportTypeId"`
	TimeUnit     string         `json:"timeUnit"`
	Format       string         `json:"format"`
	Columns      []string       `json:"columns"`
	GroupBy      []string       `json:"groupBy"`
	Filters      []reportFilter `json:"filters,omitempty"`
}

type reportFilter struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}

type reportStatusResponse struct {
	ReportID      string `json:"reportId"`
	Status        string `json:"status"`
	Location      string `json:"location,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`
}

// reportRow é uma linha do relatório spTargeting. Os nomes de conversão e
// venda variam entre versões da API, por isso os dois pares de colunas.
type reportRow struct {
	TargetID           json.Number `json:"targetId"`
	Impressions        int         `json:"impressions"`
	Clicks             int         `json:"clicks"`
	Cost               float64     `json:"cost"`
	Purchases14d       *int        `json:"purchases14d,omitempty"`
	Conversions14d     *int        `json:"attributedConversions14d,omitempty"`
	Sales14d           *float64    `json:"sales14d,omitempty"`
	AttributedSales14d *float64    `json:"attributedSales14d,omitempty"`
}

// GetTargetMetrics gera um relatório spTargeting cobrindo os últimos
// timeframeDays dias e devolve as métricas agregadas indexadas por targetId.
// A janela termina ontem: a atribuição do dia corrente ainda está incompleta.
// Targets sem linha no relatório não tiveram tráfego no período.
func (c *AmazonClient) GetTargetMetrics(campaignID string, timeframeDays int) (map[string]amazondomain.TargetReportMetrics, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if timeframeDays < 1 {
		timeframeDays = 1
	}

	end := time.Now().UTC().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(timeframeDays - 1))

	reportID, err := c.createTargetingReport(start, end, campaignID)
	if err != nil {
		return nil, err
	}

	location, err := c.waitForReport(reportID)
	if err != nil {
		return nil, err
	}

	rows, err := c.downloadReportRows(location)
	if err != nil {
		return nil, err
	}

	metrics := metricsByTarget(rows)

	logrus.WithFields(logrus.Fields{
		"report_id":      reportID,
		"timeframe_days": timeframeDays,
		"targets":        len(metrics),
	}).Debug("amazon: métricas do relatório carregadas")

	return metrics, nil
}

func (c *AmazonClient) createTargetingReport(start, end time.Time, campaignID string) (string, error) {
	configuration := reportConfiguration{
		AdProduct:    "SPONSORED_PRODUCTS",
		ReportTypeID: "spTargeting",
		TimeUnit:     "SUMMARY",
		Format:       "GZIP_JSON",
		Columns: []string{
			"campaignId",
			"adGroupId",
			"targetId",
			"impressions",
			"clicks",
			"cost",
			"purchases14d",
			"sales14d",
		},
		GroupBy: []string{"targeting"},
	}
	if campaignID != "" {
		configuration.Filters = []reportFilter{
			{Field: "campaignId", Values: []string{campaignID}},
		}
	}

	payload := createReportPayload{
		Name:          "sp-targeting-window",
		StartDate:     start.Format("2006-01-02"),
		EndDate:       end.Format("2006-01-02"),
		Configuration: configuration,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar payload do relatório: %w", err)
	}

	url := fmt.Sprintf("%s/reporting/reports", c.Cfg.AmazonAds.APIBaseURL)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}
	c.setAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.createTargetingReport(start, end, campaignID)
		}
		return "", err
	}

	var response reportStatusResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	if response.ReportID == "" {
		return "", fmt.Errorf("resposta de criação de relatório sem reportId")
	}

	return response.ReportID, nil
}

// waitForReport consulta o status do relatório até SUCCESS ou timeout.
func (c *AmazonClient) waitForReport(reportID string) (string, error) {
	url := fmt.Sprintf("%s/reporting/reports/%s", c.Cfg.AmazonAds.APIBaseURL, reportID)
	deadline := time.Now().Add(reportPollTimeout)

	for {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}
		c.setAuthHeaders(req)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return "", err
		}

		respBody, err := c.HandleResponse(resp)
		resp.Body.Close()
		if err != nil {
			if err.Error() == "token expirado e renovado, por favor tente novamente" {
				continue
			}
			return "", err
		}

		var status reportStatusResponse
		if err := json.Unmarshal(respBody, &status); err != nil {
			return "", err
		}

		switch status.Status {
		case "SUCCESS":
			if status.Location == "" {
				return "", fmt.Errorf("relatório %s pronto sem location para download", reportID)
			}
			return status.Location, nil
		case "FAILURE", "CANCELLED":
			return "", fmt.Errorf("relatório %s falhou com status %s: %s", reportID, status.Status, status.FailureReason)
		}

		if time.Now().After(deadline) {
			return "", fmt.Errorf("timeout aguardando o relatório %s, último status: %s", reportID, status.Status)
		}

		time.Sleep(reportPollInterval)
	}
}

// downloadReportRows baixa o arquivo do relatório. A location é uma URL
// pré-assinada, sem cabeçalhos de autenticação.
func (c *AmazonClient) downloadReportRows(location string) ([]reportRow, error) {
	resp, err := c.HTTPClient.Get(location)
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar relatório: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao baixar relatório. Status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler relatório: %w", err)
	}

	return decodeReportRows(raw)
}

// decodeReportRows descomprime o GZIP e decodifica o JSON em linhas.
func decodeReportRows(raw []byte) ([]reportRow, error) {
	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("erro ao descomprimir relatório: %w", err)
	}
	defer gz.Close()

	content, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("erro ao descomprimir relatório: %w", err)
	}

	rows := make([]reportRow, 0)
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var row reportRow
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("erro ao decodificar linha do relatório: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// metricsByTarget agrega as linhas por targetId. O ACOS só é calculável
// quando houve custo e venda no período.
func metricsByTarget(rows []reportRow) map[string]amazondomain.TargetReportMetrics {
	metrics := make(map[string]amazondomain.TargetReportMetrics, len(rows))

	for _, row := range rows {
		targetID := row.TargetID.String()
		if targetID == "" {
			continue
		}

		orders := 0
		if row.Purchases14d != nil {
			orders = *row.Purchases14d
		} else if row.Conversions14d != nil {
			orders = *row.Conversions14d
		}

		sales := 0.0
		if row.Sales14d != nil {
			sales = *row.Sales14d
		} else if row.AttributedSales14d != nil {
			sales = *row.AttributedSales14d
		}

		entry := amazondomain.TargetReportMetrics{
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Cost:        row.Cost,
			Orders:      orders,
			Sales:       sales,
		}

		if sales > 0 && row.Cost > 0 {
			acos := (row.Cost / sales) * 100.0
			entry.Acos = &acos
		}

		metrics[targetID] = entry
	}

	return metrics
}
