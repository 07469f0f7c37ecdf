package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de métricas de visitantes
var (
	// Erros de validação
	ErrVisitorKeyRequired = errors.New("visitor key is required")
	ErrPathRequired       = errors.New("path is required")
	ErrInvalidReadTime    = errors.New("invalid read time")
	ErrMissingDates       = errors.New("start and end dates are required")
	ErrInvalidDateRange   = errors.New("invalid date range")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// VisitorError é um erro com contexto adicional para métricas de visitantes
type VisitorError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *VisitorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *VisitorError) Unwrap() error {
	return e.Err
}

// NewVisitorError cria um novo VisitorError
func NewVisitorError(err error, code string, details string) *VisitorError {
	return &VisitorError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
