package ruling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de regras
var (
	// Erros de validação
	ErrRuleIDRequired        = errors.New("rule ID is required")
	ErrRuleNotFound          = errors.New("rule not found")
	ErrRuleNameRequired      = errors.New("rule name is required")
	ErrInvalidRuleType       = errors.New("invalid rule type")
	ErrInvalidAdjustmentType = errors.New("invalid adjustment type")
	ErrInvalidFrequency      = errors.New("frequency_days must be greater than zero")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchRules        = errors.New("error fetching rules from database")
	ErrFetchExecutions   = errors.New("error fetching rule executions from database")
)

// RuleError é um erro com contexto adicional para regras
type RuleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	RuleID  int    // ID da regra envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RuleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RuleError) Unwrap() error {
	return e.Err
}

// NewRuleError cria um novo RuleError
func NewRuleError(err error, code string, details string) *RuleError {
	return &RuleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewRuleErrorWithID cria um novo RuleError com o ID da regra
func NewRuleErrorWithID(err error, code string, ruleID int, details string) *RuleError {
	return &RuleError{
		Err:     err,
		Code:    code,
		RuleID:  ruleID,
		Details: details,
	}
}
