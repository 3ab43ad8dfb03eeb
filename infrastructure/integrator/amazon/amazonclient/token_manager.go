package amazonclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-rules-api/internal/config"
)

// expirationMargin antecipa a renovação para nunca usar um token no limite
const expirationMargin = 5 * time.Minute

// TokenManager gerencia o access token LWA da Amazon Ads API. O refresh
// token é de longa duração e vem da configuração; o access token é
// renovado sob demanda via grant refresh_token e mantido apenas em memória.
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex

	accessToken    string
	tokenExpiresAt time.Time
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
	}
}

// AccessToken retorna o token atual. Chame EnsureValidToken antes.
func (tm *TokenManager) AccessToken() string {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	return tm.accessToken
}

// EnsureValidToken garante um access token válido, renovando quando ausente
// ou a menos de cinco minutos da expiração.
func (tm *TokenManager) EnsureValidToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	if tm.accessToken != "" && time.Until(tm.tokenExpiresAt) > expirationMargin {
		return nil
	}

	return tm.refreshTokenInternal()
}

// RefreshToken força a renovação do access token descartando o atual
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	tm.accessToken = ""

	return tm.refreshTokenInternal()
}

// refreshTokenInternal executa o grant refresh_token contra o endpoint LWA.
// Chamador deve segurar TokenRefreshMutex.
func (tm *TokenManager) refreshTokenInternal() error {
	if tm.cfg.AmazonAds.RefreshToken == "" {
		return fmt.Errorf("refresh token da Amazon Ads não configurado")
	}

	logrus.Info("Renovando access token da Amazon Ads...")

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", tm.cfg.AmazonAds.RefreshToken)
	form.Set("client_id", tm.cfg.AmazonAds.ClientID)
	form.Set("client_secret", tm.cfg.AmazonAds.ClientSecret)

	resp, err := http.Post(
		tm.cfg.AmazonAds.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("erro ao requisitar novo access token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta do endpoint de token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("erro na renovação do token. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do token: %w", err)
	}

	if token.AccessToken == "" {
		return fmt.Errorf("endpoint de token não retornou access_token")
	}

	tm.accessToken = token.AccessToken
	tm.tokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	logrus.Infof("Access token da Amazon Ads renovado com sucesso. Expira em: %s",
		tm.tokenExpiresAt.Format(time.RFC3339))

	return nil
}
