package content

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
	aboutFolder = "about"
	heroFolder  = "hero"
)

// ContentService expõe as operações de conteúdo singleton do site:
// a página "sobre" e o banner principal da home
type ContentService interface {
	GetAbout() (*domain.About, error)
	UpdateAbout(req *domain.UpdateAboutRequest) (*domain.About, error)
	UploadAboutImage(filename string, content io.Reader) (*domain.About, error)
	UploadResume(filename string, content io.Reader) (*domain.About, error)

	GetHomeHero() (*domain.HomeHero, error)
	UpdateHomeHero(req *domain.UpdateHomeHeroRequest) (*domain.HomeHero, error)
	UploadHeroImage(filename string, content io.Reader) (*domain.HomeHero, error)
}

type Service struct {
	contentRepository repository.ContentRepository
	storageService    storage.Service
}

func NewService(
	contentRepository repository.ContentRepository,
	storageService storage.Service,
) ContentService {
	return &Service{
		contentRepository: contentRepository,
		storageService:    storageService,
	}
}

func (s *Service) GetAbout() (*domain.About, error) {
	about, err := s.contentRepository.GetAbout()
	if err != nil {
		logrus.Error("Error getting about content from the repository:", err)
		return nil, NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conteúdo da página sobre")
	}

	if about == nil {
		return nil, NewContentError(ErrContentNotFound, apiErrors.ErrResourceNotFound, "Conteúdo da página sobre não encontrado")
	}

	return about, nil
}

func (s *Service) UpdateAbout(req *domain.UpdateAboutRequest) (*domain.About, error) {
	if err := validateLocales(req.Title, req.Description); err != nil {
		return nil, err
	}

	about, err := s.contentRepository.UpdateAbout(req)
	if err != nil {
		logrus.Error("Error updating about content on the repository:", err)
		return nil, NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar conteúdo da página sobre")
	}

	return about, nil
}

// UploadAboutImage envia a nova imagem da página sobre e atualiza o caminho
// persistido. A imagem anterior é removida em modo melhor-esforço.
func (s *Service) UploadAboutImage(filename string, content io.Reader) (*domain.About, error) {
	if content == nil {
		return nil, NewContentError(ErrFileContentMissing, apiErrors.ErrMissingRequiredData, "Conteúdo da imagem não informado")
	}

	about, err := s.GetAbout()
	if err != nil {
		return nil, err
	}

	opts := storage.SaveOptions{Folder: aboutFolder}
	if about.ImagePath != nil {
		opts.DeletePrevious = *about.ImagePath
	}

	objectPath, err := s.storageService.SaveImage(filename, content, opts)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return nil, NewContentError(ErrUnsupportedImage, apiErrors.ErrInvalidFormat, err.Error())
		}
		logrus.Error("Error uploading about image to storage:", err)
		return nil, NewContentError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao enviar imagem para o storage")
	}

	return s.contentRepository.UpdateAbout(&domain.UpdateAboutRequest{ImagePath: &objectPath})
}

// UploadResume envia o novo currículo e atualiza o caminho persistido
func (s *Service) UploadResume(filename string, content io.Reader) (*domain.About, error) {
	if content == nil {
		return nil, NewContentError(ErrFileContentMissing, apiErrors.ErrMissingRequiredData, "Conteúdo do arquivo não informado")
	}

	about, err := s.GetAbout()
	if err != nil {
		return nil, err
	}

	opts := storage.SaveOptions{Folder: aboutFolder}
	if about.ResumePath != nil {
		opts.DeletePrevious = *about.ResumePath
	}

	objectPath, err := s.storageService.SaveFile(filename, content, opts)
	if err != nil {
		logrus.Error("Error uploading resume to storage:", err)
		return nil, NewContentError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao enviar currículo para o storage")
	}

	return s.contentRepository.UpdateAbout(&domain.UpdateAboutRequest{ResumePath: &objectPath})
}

func (s *Service) GetHomeHero() (*domain.HomeHero, error) {
	hero, err := s.contentRepository.GetHomeHero()
	if err != nil {
		logrus.Error("Error getting home hero content from the repository:", err)
		return nil, NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar conteúdo do banner da home")
	}

	if hero == nil {
		return nil, NewContentError(ErrContentNotFound, apiErrors.ErrResourceNotFound, "Conteúdo do banner da home não encontrado")
	}

	return hero, nil
}

func (s *Service) UpdateHomeHero(req *domain.UpdateHomeHeroRequest) (*domain.HomeHero, error) {
	if err := validateLocales(req.Greeting, req.Headline, req.Tagline); err != nil {
		return nil, err
	}

	hero, err := s.contentRepository.UpdateHomeHero(req)
	if err != nil {
		logrus.Error("Error updating home hero content on the repository:", err)
		return nil, NewContentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar conteúdo do banner da home")
	}

	return hero, nil
}

// UploadHeroImage envia a nova imagem do banner da home e atualiza o caminho persistido
func (s *Service) UploadHeroImage(filename string, content io.Reader) (*domain.HomeHero, error) {
	if content == nil {
		return nil, NewContentError(ErrFileContentMissing, apiErrors.ErrMissingRequiredData, "Conteúdo da imagem não informado")
	}

	hero, err := s.GetHomeHero()
	if err != nil {
		return nil, err
	}

	opts := storage.SaveOptions{Folder: heroFolder}
	if hero.ImagePath != nil {
		opts.DeletePrevious = *hero.ImagePath
	}

	objectPath, err := s.storageService.SaveImage(filename, content, opts)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return nil, NewContentError(ErrUnsupportedImage, apiErrors.ErrInvalidFormat, err.Error())
		}
		logrus.Error("Error uploading hero image to storage:", err)
		return nil, NewContentError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao enviar imagem para o storage")
	}

	return s.contentRepository.UpdateHomeHero(&domain.UpdateHomeHeroRequest{ImagePath: &objectPath})
}

// validateLocales garante que todos os textos multilíngues informados usem
// apenas os idiomas suportados pelo site
func validateLocales(texts ...domain.MultilingualText) error {
	if locale, found := domain.FirstUnsupportedLocale(texts...); found {
		return NewContentError(
			ErrUnsupportedLocale,
			apiErrors.ErrInvalidFormat,
			fmt.Sprintf("Idioma não suportado: %s", locale),
		)
	}
	return nil
}
