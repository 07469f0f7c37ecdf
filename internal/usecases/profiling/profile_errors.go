package profiling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de experiências e depoimentos
var (
	// Erros de validação
	ErrRoleRequired        = errors.New("role is required")
	ErrCompanyRequired     = errors.New("company is required")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrAuthorNameRequired  = errors.New("author name is required")
	ErrQuoteRequired       = errors.New("quote is required")
	ErrInvalidRating       = errors.New("invalid rating")
	ErrUnsupportedLocale   = errors.New("unsupported locale")
	ErrExperienceNotFound  = errors.New("experience not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("storage operation error")
)

// ProfileError é um erro com contexto adicional para o perfil profissional
type ProfileError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ResourceID int    // ID do recurso envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProfileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError cria um novo ProfileError
func NewProfileError(err error, code string, details string) *ProfileError {
	return &ProfileError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewProfileErrorWithID cria um novo ProfileError com ID do recurso
func NewProfileErrorWithID(err error, code string, resourceID int, details string) *ProfileError {
	return &ProfileError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}
