package domain

import "time"

// Project representa um projeto do portfólio
type Project struct {
	ID          int              `json:"id"`
	Name        MultilingualText `json:"name"`
	Description MultilingualText `json:"description"`
	RepoURL     *string          `json:"repo_url"`
	DemoURL     *string          `json:"demo_url"`
	ImagePath   *string          `json:"image_path"`
	Featured    bool             `json:"featured"`
	TechStacks  []*TechStack     `json:"tech_stacks,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProjectFilters define filtros de listagem de projetos
type ProjectFilters struct {
	Search   *string `json:"search"`
	Featured *bool   `json:"featured"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}

// CreateProjectRequest contém os dados de criação de um projeto.
// TechStackIDs é o conjunto de tecnologias vinculadas via tabela de junção.
type CreateProjectRequest struct {
	Name         MultilingualText `json:"name"`
	Description  MultilingualText `json:"description"`
	RepoURL      *string          `json:"repo_url"`
	DemoURL      *string          `json:"demo_url"`
	ImagePath    *string          `json:"image_path"`
	Featured     bool             `json:"featured"`
	TechStackIDs []int            `json:"tech_stack_ids"`
}

// UpdateProjectRequest contém os campos opcionais de atualização de um projeto.
// TechStackIDs nulo mantém os vínculos atuais; não nulo substitui o conjunto inteiro.
type UpdateProjectRequest struct {
	Name         MultilingualText `json:"name,omitempty"`
	Description  MultilingualText `json:"description,omitempty"`
	RepoURL      *string          `json:"repo_url,omitempty"`
	DemoURL      *string          `json:"demo_url,omitempty"`
	ImagePath    *string          `json:"image_path,omitempty"`
	Featured     *bool            `json:"featured,omitempty"`
	TechStackIDs []int            `json:"tech_stack_ids,omitempty"`
}

// ProjectList é a resposta paginada de listagem de projetos
type ProjectList struct {
	Items      []*Project `json:"items"`
	TotalCount int        `json:"total_count"`
}
