package profiling

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/storage"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

const (
	testimonialFolder = "testimonials"
	minRating         = 1
	maxRating         = 5
)

// ProfileService expõe as operações administrativas sobre as experiências
// profissionais e os depoimentos exibidos no site
type ProfileService interface {
	ListExperiences() ([]*domain.Experience, error)
	GetExperienceByID(id int) (*domain.Experience, error)
	CreateExperience(req *domain.CreateExperienceRequest) (*domain.Experience, error)
	UpdateExperience(id int, req *domain.UpdateExperienceRequest) (*domain.Experience, error)
	DeleteExperience(id int) error

	ListTestimonials() ([]*domain.Testimonial, error)
	GetTestimonialByID(id int) (*domain.Testimonial, error)
	CreateTestimonial(req *domain.CreateTestimonialRequest) (*domain.Testimonial, error)
	UpdateTestimonial(id int, req *domain.UpdateTestimonialRequest) (*domain.Testimonial, error)
	UploadTestimonialPhoto(id int, filename string, content io.Reader) (*domain.Testimonial, error)
	DeleteTestimonial(id int) error
}

type Service struct {
	experienceRepository  repository.ExperienceRepository
	testimonialRepository repository.TestimonialRepository
	storageService        storage.Service
}

func NewService(
	experienceRepository repository.ExperienceRepository,
	testimonialRepository repository.TestimonialRepository,
	storageService storage.Service,
) ProfileService {
	return &Service{
		experienceRepository:  experienceRepository,
		testimonialRepository: testimonialRepository,
		storageService:        storageService,
	}
}

func (s *Service) ListExperiences() ([]*domain.Experience, error) {
	experiences, err := s.experienceRepository.List()
	if err != nil {
		logrus.Error("Error listing experiences from the repository:", err)
		return nil, NewProfileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar experiências no banco de dados")
	}

	return experiences, nil
}

func (s *Service) GetExperienceByID(id int) (*domain.Experience, error) {
	experience, err := s.experienceRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting experience by id on the repository:", err)
		return nil, NewProfileErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar experiência no banco de dados")
	}

	if experience == nil {
		return nil, NewProfileErrorWithID(ErrExperienceNotFound, apiErrors.ErrResourceNotFound, id, "Experiência não encontrada")
	}

	return experience, nil
}

func (s *Service) CreateExperience(req *domain.CreateExperienceRequest) (*domain.Experience, error) {
	if req.Role.IsEmpty() {
		return nil, NewProfileError(ErrRoleRequired, apiErrors.ErrMissingRequiredData, "Cargo é obrigatório em ao menos um idioma")
	}

	if req.Company == "" {
		return nil, NewProfileError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, "Empresa é obrigatória")
	}

	// Data final nula significa posição atual
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, NewProfileError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "Data final não pode ser anterior à data inicial")
	}

	if err := s.validateLocales(req.Role, req.Description); err != nil {
		return nil, err
	}

	experience, err := s.experienceRepository.Create(req)
	if err != nil {
		logrus.Error("Error creating experience on the repository:", err)
		return nil, NewProfileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar experiência no banco de dados")
	}

	return experience, nil
}

func (s *Service) UpdateExperience(id int, req *domain.UpdateExperienceRequest) (*domain.Experience, error) {
	if req.Company != nil && *req.Company == "" {
		return nil, NewProfileErrorWithID(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, id, "Empresa não pode ficar vazia")
	}

	if err := s.validateLocales(req.Role, req.Description); err != nil {
		return nil, err
	}

	current, err := s.GetExperienceByID(id)
	if err != nil {
		return nil, err
	}

	// Valida o intervalo resultante combinando os valores novos com os atuais
	startDate := current.StartDate
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	endDate := current.EndDate
	if req.EndDate != nil {
		endDate = req.EndDate
	}

	if endDate != nil && endDate.Before(startDate) {
		return nil, NewProfileErrorWithID(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, id, "Data final não pode ser anterior à data inicial")
	}

	if err := s.experienceRepository.Update(id, req); err != nil {
		logrus.Error("Error updating experience on the repository:", err)
		return nil, NewProfileErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar experiência no banco de dados")
	}

	return s.GetExperienceByID(id)
}

func (s *Service) DeleteExperience(id int) error {
	if _, err := s.GetExperienceByID(id); err != nil {
		return err
	}

	if err := s.experienceRepository.Delete(id); err != nil {
		logrus.Error("Error deleting experience on the repository:", err)
		return NewProfileErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir experiência no banco de dados")
	}

	return nil
}

func (s *Service) ListTestimonials() ([]*domain.Testimonial, error) {
	testimonials, err := s.testimonialRepository.List()
	if err != nil {
		logrus.Error("Error listing testimonials from the repository:", err)
		return nil, NewProfileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar depoimentos no banco de dados")
	}

	return testimonials, nil
}

func (s *Service) GetTestimonialByID(id int) (*domain.Testimonial, error) {
	testimonial, err := s.testimonialRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting testimonial by id on the repository:", err)
		return nil, NewProfileErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar depoimento no banco de dados")
	}

	if testimonial == nil {
		return nil, NewProfileErrorWithID(ErrTestimonialNotFound, apiErrors.ErrResourceNotFound, id, "Depoimento não encontrado")
	}

	return testimonial, nil
}

func (s *Service) CreateTestimonial(req *domain.CreateTestimonialRequest) (*domain.Testimonial, error) {
	if req.AuthorName == "" {
		return nil, NewProfileError(ErrAuthorNameRequired, apiErrors.ErrMissingRequiredData, "Nome do autor é obrigatório")
	}

	if req.Quote.IsEmpty() {
		return nil, NewProfileError(ErrQuoteRequired, apiErrors.ErrMissingRequiredData, "Depoimento é obrigatório em ao menos um idioma")
	}

	if req.Rating < minRating || req.Rating > maxRating {
		return nil, NewProfileError(ErrInvalidRating, apiErrors.ErrOutOfRange, "Avaliação deve estar entre 1 e 5")
	}

	if err := s.validateLocales(req.Quote); err != nil {
		return nil, err
	}

	testimonial, err := s.testimonialRepository.Create(req)
	if err != nil {
		logrus.Error("Error creating testimonial on the repository:", err)
		return nil, NewProfileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar depoimento no banco de dados")
	}

	return testimonial, nil
}

func (s *Service) UpdateTestimonial(id int, req *domain.UpdateTestimonialRequest) (*domain.Testimonial, error) {
	if req.AuthorName != nil && *req.AuthorName == "" {
		return nil, NewProfileErrorWithID(ErrAuthorNameRequired, apiErrors.ErrMissingRequiredData, id, "Nome do autor não pode ficar vazio")
	}

	if req.Rating != nil && (*req.Rating < minRating || *req.Rating > maxRating) {
		return nil, NewProfileErrorWithID(ErrInvalidRating, apiErrors.ErrOutOfRange, id, "Avaliação deve estar entre 1 e 5")
	}

	if err := s.validateLocales(req.Quote); err != nil {
		return nil, err
	}

	if _, err := s.GetTestimonialByID(id); err != nil {
		return nil, err
	}

	if err := s.testimonialRepository.Update(id, req); err != nil {
		logrus.Error("Error updating testimonial on the repository:", err)
		return nil, NewProfileErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar depoimento no banco de dados")
	}

	return s.GetTestimonialByID(id)
}

// UploadTestimonialPhoto envia a nova foto do autor e atualiza o caminho
// persistido. A foto anterior é removida em modo melhor-esforço.
func (s *Service) UploadTestimonialPhoto(id int, filename string, content io.Reader) (*domain.Testimonial, error) {
	testimonial, err := s.GetTestimonialByID(id)
	if err != nil {
		return nil, err
	}

	opts := storage.SaveOptions{Folder: testimonialFolder}
	if testimonial.PhotoPath != nil {
		opts.DeletePrevious = *testimonial.PhotoPath
	}

	objectPath, err := s.storageService.SaveImage(filename, content, opts)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return nil, NewProfileErrorWithID(ErrStorageOperation, apiErrors.ErrInvalidFormat, id, err.Error())
		}
		logrus.Error("Error uploading testimonial photo to storage:", err)
		return nil, NewProfileErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, id, "Falha ao enviar foto para o storage")
	}

	return s.UpdateTestimonial(id, &domain.UpdateTestimonialRequest{PhotoPath: &objectPath})
}

// DeleteTestimonial remove o depoimento e a foto associada
func (s *Service) DeleteTestimonial(id int) error {
	testimonial, err := s.GetTestimonialByID(id)
	if err != nil {
		return err
	}

	if testimonial.PhotoPath != nil {
		if err := s.storageService.DeleteFile(*testimonial.PhotoPath); err != nil {
			logrus.WithError(err).WithField("testimonial_id", id).
				Warn("Erro ao remover foto do depoimento do storage")
		}
	}

	if err := s.testimonialRepository.Delete(id); err != nil {
		logrus.Error("Error deleting testimonial on the repository:", err)
		return NewProfileErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir depoimento no banco de dados")
	}

	return nil
}

func (s *Service) validateLocales(texts ...domain.MultilingualText) error {
	if locale, found := domain.FirstUnsupportedLocale(texts...); found {
		return NewProfileError(ErrUnsupportedLocale, apiErrors.ErrInvalidFormat, fmt.Sprintf("Idioma não suportado: %s", locale))
	}
	return nil
}
