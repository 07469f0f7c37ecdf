package showcasing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de projetos e tecnologias
var (
	// Erros de validação
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidURL         = errors.New("invalid URL")
	ErrInvalidProficiency = errors.New("invalid proficiency")
	ErrUnsupportedLocale  = errors.New("unsupported locale")
	ErrUnknownTechStacks  = errors.New("unknown tech stacks")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTechStackNotFound  = errors.New("tech stack not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("storage operation error")
)

// ShowcaseError é um erro com contexto adicional para projetos e tecnologias
type ShowcaseError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ResourceID int    // ID do recurso envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ShowcaseError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ShowcaseError) Unwrap() error {
	return e.Err
}

// NewShowcaseError cria um novo ShowcaseError
func NewShowcaseError(err error, code string, details string) *ShowcaseError {
	return &ShowcaseError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewShowcaseErrorWithID cria um novo ShowcaseError com ID do recurso
func NewShowcaseErrorWithID(err error, code string, resourceID int, details string) *ShowcaseError {
	return &ShowcaseError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}
