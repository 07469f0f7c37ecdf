package domain

import "time"

// About é o conteúdo singleton da página "sobre"
type About struct {
	ID          int              `json:"id"`
	Title       MultilingualText `json:"title"`
	Description MultilingualText `json:"description"`
	ImagePath   *string          `json:"image_path"`
	ResumePath  *string          `json:"resume_path"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// HomeHero é o conteúdo singleton do banner principal da home
type HomeHero struct {
	ID        int              `json:"id"`
	Greeting  MultilingualText `json:"greeting"`
	Headline  MultilingualText `json:"headline"`
	Tagline   MultilingualText `json:"tagline"`
	ImagePath *string          `json:"image_path"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UpdateAboutRequest contém os campos opcionais de atualização da página "sobre".
// Campos nulos são mantidos como estão no banco.
type UpdateAboutRequest struct {
	Title       MultilingualText `json:"title,omitempty"`
	Description MultilingualText `json:"description,omitempty"`
	ImagePath   *string          `json:"image_path,omitempty"`
	ResumePath  *string          `json:"resume_path,omitempty"`
}

// UpdateHomeHeroRequest contém os campos opcionais de atualização do banner da home
type UpdateHomeHeroRequest struct {
	Greeting  MultilingualText `json:"greeting,omitempty"`
	Headline  MultilingualText `json:"headline,omitempty"`
	Tagline   MultilingualText `json:"tagline,omitempty"`
	ImagePath *string          `json:"image_path,omitempty"`
}
