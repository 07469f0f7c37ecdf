package domain

import "time"

// Article representa um artigo do blog do site
type Article struct {
	ID            int              `json:"id"`
	Slug          string           `json:"slug"`
	Title         MultilingualText `json:"title"`
	Summary       MultilingualText `json:"summary"`
	Content       MultilingualText `json:"content"`
	ThumbnailPath *string          `json:"thumbnail_path"`
	ReadDuration  int              `json:"read_duration"` // duração estimada de leitura em minutos
	Published     bool             `json:"published"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ArticleFilters define filtros de listagem de artigos
type ArticleFilters struct {
	Search    *string `json:"search"` // busca textual nos campos multilíngues
	Published *bool   `json:"published"`
	Limit     int     `json:"limit"`
	Offset    int     `json:"offset"`
}

// CreateArticleRequest contém os dados de criação de um artigo
type CreateArticleRequest struct {
	Slug          string           `json:"slug"`
	Title         MultilingualText `json:"title"`
	Summary       MultilingualText `json:"summary"`
	Content       MultilingualText `json:"content"`
	ThumbnailPath *string          `json:"thumbnail_path"`
	ReadDuration  int              `json:"read_duration"`
	Published     bool             `json:"published"`
}

// UpdateArticleRequest contém os campos opcionais de atualização de um artigo
type UpdateArticleRequest struct {
	Slug          *string          `json:"slug,omitempty"`
	Title         MultilingualText `json:"title,omitempty"`
	Summary       MultilingualText `json:"summary,omitempty"`
	Content       MultilingualText `json:"content,omitempty"`
	ThumbnailPath *string          `json:"thumbnail_path,omitempty"`
	ReadDuration  *int             `json:"read_duration,omitempty"`
	Published     *bool            `json:"published,omitempty"`
}

// ArticleList é a resposta paginada de listagem de artigos
type ArticleList struct {
	Items      []*Article `json:"items"`
	TotalCount int        `json:"total_count"`
}
