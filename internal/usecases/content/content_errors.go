package content

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conteúdo do site
var (
	// Erros de validação
	ErrUnsupportedLocale  = errors.New("unsupported locale")
	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrContentNotFound    = errors.New("content not found")
	ErrFileContentMissing = errors.New("file content is required")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("storage operation error")
)

// ContentError é um erro com contexto adicional para conteúdo do site
type ContentError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ContentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ContentError) Unwrap() error {
	return e.Err
}

// NewContentError cria um novo ContentError
func NewContentError(err error, code string, details string) *ContentError {
	return &ContentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
