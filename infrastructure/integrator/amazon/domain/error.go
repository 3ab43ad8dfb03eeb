package amazondomain

import "errors"

// ErrNotConfigured indica que as credenciais da Amazon Ads API não foram
// fornecidas. É uma condição permanente, diferente de uma falha transitória
// de rede: o scheduler pula as regras sem marcá-las como executadas e loga
// um aviso de configuração.
var ErrNotConfigured = errors.New("integração com a Amazon Ads não configurada")

// ErrorResponse representa a estrutura de erro da Amazon Ads API.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}
