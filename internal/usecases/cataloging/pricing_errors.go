package cataloging

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de serviços e pacotes de preço
var (
	// Erros de validação
	ErrNameRequired        = errors.New("name is required")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrUnsupportedLocale   = errors.New("unsupported locale")
	ErrUnknownPackageItems = errors.New("unknown package items")
	ErrServiceNotFound     = errors.New("service not found")
	ErrPackageNotFound     = errors.New("package not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("storage operation error")
)

// CatalogError é um erro com contexto adicional para o catálogo de serviços
type CatalogError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ResourceID int    // ID do recurso envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError cria um novo CatalogError
func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewCatalogErrorWithID cria um novo CatalogError com ID do recurso
func NewCatalogErrorWithID(err error, code string, resourceID int, details string) *CatalogError {
	return &CatalogError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}
