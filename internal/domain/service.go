package domain

import "time"

// Service representa um serviço oferecido no site
type Service struct {
	ID          int              `json:"id"`
	Name        MultilingualText `json:"name"`
	Description MultilingualText `json:"description"`
	IconPath    *string          `json:"icon_path"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PackageItem é um item reutilizável vinculado a pacotes de preço
// como benefício ou exclusão via tabelas de junção
type PackageItem struct {
	ID    int              `json:"id"`
	Label MultilingualText `json:"label"`
}

// PackagePricing representa um pacote de preço de um serviço.
// Benefits e Exclusions são carregados a partir das tabelas de junção.
type PackagePricing struct {
	ID           int              `json:"id"`
	ServiceID    int              `json:"service_id"`
	Name         MultilingualText `json:"name"`
	Price        float64          `json:"price"`
	Currency     string           `json:"currency"`
	DurationDays int              `json:"duration_days"` // prazo de entrega em dias
	Benefits     []*PackageItem   `json:"benefits,omitempty"`
	Exclusions   []*PackageItem   `json:"exclusions,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// CreateServiceRequest contém os dados de criação de um serviço
type CreateServiceRequest struct {
	Name        MultilingualText `json:"name"`
	Description MultilingualText `json:"description"`
	IconPath    *string          `json:"icon_path"`
}

// UpdateServiceRequest contém os campos opcionais de atualização de um serviço
type UpdateServiceRequest struct {
	Name        MultilingualText `json:"name,omitempty"`
	Description MultilingualText `json:"description,omitempty"`
	IconPath    *string          `json:"icon_path,omitempty"`
}

// CreatePackagePricingRequest contém os dados de criação de um pacote de preço.
// BenefitIDs e ExclusionIDs são os conjuntos de itens vinculados via junção.
type CreatePackagePricingRequest struct {
	ServiceID    int              `json:"service_id"`
	Name         MultilingualText `json:"name"`
	Price        float64          `json:"price"`
	Currency     string           `json:"currency"`
	DurationDays int              `json:"duration_days"`
	BenefitIDs   []int            `json:"benefit_ids"`
	ExclusionIDs []int            `json:"exclusion_ids"`
}

// UpdatePackagePricingRequest contém os campos opcionais de atualização de um pacote.
// Conjuntos de vínculo nulos mantêm os vínculos atuais; não nulos substituem o conjunto inteiro.
type UpdatePackagePricingRequest struct {
	Name         MultilingualText `json:"name,omitempty"`
	Price        *float64         `json:"price,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
	DurationDays *int             `json:"duration_days,omitempty"`
	BenefitIDs   []int            `json:"benefit_ids,omitempty"`
	ExclusionIDs []int            `json:"exclusion_ids,omitempty"`
}
