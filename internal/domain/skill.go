package domain

import "time"

// TechStack representa uma tecnologia/habilidade exibida no site
type TechStack struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    *string   `json:"category"`
	IconPath    *string   `json:"icon_path"`
	Proficiency int       `json:"proficiency"` // percentual de domínio, 0-100
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTechStackRequest contém os dados de criação de uma tecnologia
type CreateTechStackRequest struct {
	Name        string  `json:"name"`
	Category    *string `json:"category"`
	IconPath    *string `json:"icon_path"`
	Proficiency int     `json:"proficiency"`
}

// UpdateTechStackRequest contém os campos opcionais de atualização de uma tecnologia
type UpdateTechStackRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	IconPath    *string `json:"icon_path,omitempty"`
	Proficiency *int    `json:"proficiency,omitempty"`
}
