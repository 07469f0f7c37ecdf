package domain

import "time"

// Experience representa uma experiência profissional do portfólio
type Experience struct {
	ID          int              `json:"id"`
	Role        MultilingualText `json:"role"`
	Company     string           `json:"company"`
	Location    *string          `json:"location"`
	Description MultilingualText `json:"description"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"` // nulo enquanto for a posição atual
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CreateExperienceRequest contém os dados de criação de uma experiência
type CreateExperienceRequest struct {
	Role        MultilingualText `json:"role"`
	Company     string           `json:"company"`
	Location    *string          `json:"location"`
	Description MultilingualText `json:"description"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
}

// UpdateExperienceRequest contém os campos opcionais de atualização de uma experiência
type UpdateExperienceRequest struct {
	Role        MultilingualText `json:"role,omitempty"`
	Company     *string          `json:"company,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Description MultilingualText `json:"description,omitempty"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
}

// Testimonial representa um depoimento de cliente exibido no site
type Testimonial struct {
	ID         int              `json:"id"`
	AuthorName string           `json:"author_name"`
	AuthorRole *string          `json:"author_role"`
	Quote      MultilingualText `json:"quote"`
	Rating     int              `json:"rating"` // de 1 a 5
	PhotoPath  *string          `json:"photo_path"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CreateTestimonialRequest contém os dados de criação de um depoimento
type CreateTestimonialRequest struct {
	AuthorName string           `json:"author_name"`
	AuthorRole *string          `json:"author_role"`
	Quote      MultilingualText `json:"quote"`
	Rating     int              `json:"rating"`
	PhotoPath  *string          `json:"photo_path"`
}

// UpdateTestimonialRequest contém os campos opcionais de atualização de um depoimento
type UpdateTestimonialRequest struct {
	AuthorName *string          `json:"author_name,omitempty"`
	AuthorRole *string          `json:"author_role,omitempty"`
	Quote      MultilingualText `json:"quote,omitempty"`
	Rating     *int             `json:"rating,omitempty"`
	PhotoPath  *string          `json:"photo_path,omitempty"`
}
