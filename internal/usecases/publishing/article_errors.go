package publishing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de artigos
var (
	// Erros de validação
	ErrSlugRequired        = errors.New("article slug is required")
	ErrSlugAlreadyInUse    = errors.New("article slug already in use")
	ErrTitleRequired       = errors.New("article title is required")
	ErrInvalidReadDuration = errors.New("invalid read duration")
	ErrUnsupportedLocale   = errors.New("unsupported locale")
	ErrArticleNotFound     = errors.New("article not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("storage operation error")
)

// ArticleError é um erro com contexto adicional para artigos
type ArticleError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ArticleID int    // ID do artigo envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ArticleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ArticleError) Unwrap() error {
	return e.Err
}

// NewArticleError cria um novo ArticleError
func NewArticleError(err error, code string, details string) *ArticleError {
	return &ArticleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewArticleErrorWithID cria um novo ArticleError com ID do artigo
func NewArticleErrorWithID(err error, code string, articleID int, details string) *ArticleError {
	return &ArticleError{
		Err:       err,
		Code:      code,
		ArticleID: articleID,
		Details:   details,
	}
}
