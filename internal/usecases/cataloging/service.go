package cataloging

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

const serviceIconFolder = "services"

// CatalogService expõe as operações administrativas sobre os serviços
// oferecidos no site e seus pacotes de preço
type CatalogService interface {
	ListServices() ([]*domain.Service, error)
	GetServiceByID(id int) (*domain.Service, error)
	CreateService(req *domain.CreateServiceRequest) (*domain.Service, error)
	UpdateService(id int, req *domain.UpdateServiceRequest) (*domain.Service, error)
	UploadServiceIcon(id int, filename string, content io.Reader) (*domain.Service, error)
	DeleteService(id int) error

	ListPackagesByService(serviceID int) ([]*domain.PackagePricing, error)
	GetPackageByID(id int) (*domain.PackagePricing, error)
	CreatePackage(req *domain.CreatePackagePricingRequest) (*domain.PackagePricing, error)
	UpdatePackage(id int, req *domain.UpdatePackagePricingRequest) (*domain.PackagePricing, error)
	DeletePackage(id int) error
}

type Service struct {
	pricingRepository repository.PricingRepository
	storageService    storage.Service
}

func NewService(
	pricingRepository repository.PricingRepository,
	storageService storage.Service,
) CatalogService {
	return &Service{
		pricingRepository: pricingRepository,
		storageService:    storageService,
	}
}

func (s *Service) ListServices() ([]*domain.Service, error) {
	services, err := s.pricingRepository.ListServices()
	if err != nil {
		logrus.Error("Error listing services from the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar serviços no banco de dados")
	}

	return services, nil
}

func (s *Service) GetServiceByID(id int) (*domain.Service, error) {
	service, err := s.pricingRepository.GetServiceByID(id)
	if err != nil {
		logrus.Error("Error getting service by id on the repository:", err)
		return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar serviço no banco de dados")
	}

	if service == nil {
		return nil, NewCatalogErrorWithID(ErrServiceNotFound, apiErrors.ErrResourceNotFound, id, "Serviço não encontrado")
	}

	return service, nil
}

func (s *Service) CreateService(req *domain.CreateServiceRequest) (*domain.Service, error) {
	if req.Name.IsEmpty() {
		return nil, NewCatalogError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome do serviço é obrigatório em ao menos um idioma")
	}

	if err := s.validateLocales(req.Name, req.Description); err != nil {
		return nil, err
	}

	service, err := s.pricingRepository.CreateService(req)
	if err != nil {
		logrus.Error("Error creating service on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar serviço no banco de dados")
	}

	return service, nil
}

func (s *Service) UpdateService(id int, req *domain.UpdateServiceRequest) (*domain.Service, error) {
	if err := s.validateLocales(req.Name, req.Description); err != nil {
		return nil, err
	}

	if _, err := s.GetServiceByID(id); err != nil {
		return nil, err
	}

	if err := s.pricingRepository.UpdateService(id, req); err != nil {
		logrus.Error("Error updating service on the repository:", err)
		return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar serviço no banco de dados")
	}

	return s.GetServiceByID(id)
}

// UploadServiceIcon envia o novo ícone do serviço e atualiza o caminho
// persistido. O ícone anterior é removido em modo melhor-esforço.
func (s *Service) UploadServiceIcon(id int, filename string, content io.Reader) (*domain.Service, error) {
	service, err := s.GetServiceByID(id)
	if err != nil {
		return nil, err
	}

	opts := storage.SaveOptions{Folder: serviceIconFolder}
	if service.IconPath != nil {
		opts.DeletePrevious = *service.IconPath
	}

	objectPath, err := s.storageService.SaveImage(filename, content, opts)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return nil, NewCatalogErrorWithID(ErrStorageOperation, apiErrors.ErrInvalidFormat, id, err.Error())
		}
		logrus.Error("Error uploading service icon to storage:", err)
		return nil, NewCatalogErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, id, "Falha ao enviar ícone para o storage")
	}

	return s.UpdateService(id, &domain.UpdateServiceRequest{IconPath: &objectPath})
}

// DeleteService remove o serviço, os pacotes vinculados a ele e o ícone
// associado. A remoção do ícone é melhor-esforço.
func (s *Service) DeleteService(id int) error {
	service, err := s.GetServiceByID(id)
	if err != nil {
		return err
	}

	if service.IconPath != nil {
		if err := s.storageService.DeleteFile(*service.IconPath); err != nil {
			logrus.WithError(err).WithField("service_id", id).
				Warn("Erro ao remover ícone do serviço do storage")
		}
	}

	if err := s.pricingRepository.DeleteService(id); err != nil {
		logrus.Error("Error deleting service on the repository:", err)
		return NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir serviço no banco de dados")
	}

	return nil
}

func (s *Service) ListPackagesByService(serviceID int) ([]*domain.PackagePricing, error) {
	if _, err := s.GetServiceByID(serviceID); err != nil {
		return nil, err
	}

	packages, err := s.pricingRepository.ListPackagesByService(serviceID)
	if err != nil {
		logrus.Error("Error listing packages from the repository:", err)
		return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, serviceID, "Falha ao listar pacotes no banco de dados")
	}

	for _, pkg := range packages {
		if err := s.loadPackageItems(pkg); err != nil {
			return nil, err
		}
	}

	return packages, nil
}

func (s *Service) GetPackageByID(id int) (*domain.PackagePricing, error) {
	pkg, err := s.pricingRepository.GetPackageByID(id)
	if err != nil {
		logrus.Error("Error getting package by id on the repository:", err)
		return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar pacote no banco de dados")
	}

	if pkg == nil {
		return nil, NewCatalogErrorWithID(ErrPackageNotFound, apiErrors.ErrResourceNotFound, id, "Pacote não encontrado")
	}

	if err := s.loadPackageItems(pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

func (s *Service) CreatePackage(req *domain.CreatePackagePricingRequest) (*domain.PackagePricing, error) {
	if req.Name.IsEmpty() {
		return nil, NewCatalogError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome do pacote é obrigatório em ao menos um idioma")
	}

	if req.Price < 0 {
		return nil, NewCatalogError(ErrInvalidPrice, apiErrors.ErrOutOfRange, "Preço não pode ser negativo")
	}

	if req.DurationDays < 0 {
		return nil, NewCatalogError(ErrInvalidDuration, apiErrors.ErrOutOfRange, "Prazo de entrega não pode ser negativo")
	}

	if err := s.validateLocales(req.Name); err != nil {
		return nil, err
	}

	// O pacote precisa pertencer a um serviço existente
	if _, err := s.GetServiceByID(req.ServiceID); err != nil {
		return nil, err
	}

	if err := s.validatePackageItemIDs(req.BenefitIDs, req.ExclusionIDs); err != nil {
		return nil, err
	}

	pkg, err := s.pricingRepository.CreatePackage(req)
	if err != nil {
		logrus.Error("Error creating package on the repository:", err)
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar pacote no banco de dados")
	}

	return s.GetPackageByID(pkg.ID)
}

func (s *Service) UpdatePackage(id int, req *domain.UpdatePackagePricingRequest) (*domain.PackagePricing, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, NewCatalogErrorWithID(ErrInvalidPrice, apiErrors.ErrOutOfRange, id, "Preço não pode ser negativo")
	}

	if req.DurationDays != nil && *req.DurationDays < 0 {
		return nil, NewCatalogErrorWithID(ErrInvalidDuration, apiErrors.ErrOutOfRange, id, "Prazo de entrega não pode ser negativo")
	}

	if err := s.validateLocales(req.Name); err != nil {
		return nil, err
	}

	current, err := s.GetPackageByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.pricingRepository.UpdatePackage(id, req); err != nil {
		logrus.Error("Error updating package on the repository:", err)
		return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar pacote no banco de dados")
	}

	// Conjuntos de vínculo não nulos substituem os vínculos atuais por inteiro;
	// nulos mantêm o conjunto atual
	if req.BenefitIDs != nil || req.ExclusionIDs != nil {
		benefitIDs := req.BenefitIDs
		if benefitIDs == nil {
			benefitIDs = itemIDs(current.Benefits)
		}

		exclusionIDs := req.ExclusionIDs
		if exclusionIDs == nil {
			exclusionIDs = itemIDs(current.Exclusions)
		}

		if err := s.validatePackageItemIDs(benefitIDs, exclusionIDs); err != nil {
			return nil, err
		}

		if err := s.pricingRepository.ReplacePackageLinks(id, benefitIDs, exclusionIDs); err != nil {
			logrus.Error("Error replacing package links on the repository:", err)
			return nil, NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao substituir vínculos do pacote")
		}
	}

	return s.GetPackageByID(id)
}

// DeletePackage remove o pacote e seus vínculos de benefícios e exclusões
func (s *Service) DeletePackage(id int) error {
	if _, err := s.GetPackageByID(id); err != nil {
		return err
	}

	if err := s.pricingRepository.DeletePackage(id); err != nil {
		logrus.Error("Error deleting package on the repository:", err)
		return NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir pacote no banco de dados")
	}

	return nil
}

func (s *Service) loadPackageItems(pkg *domain.PackagePricing) error {
	benefits, err := s.pricingRepository.ListPackageBenefits(pkg.ID)
	if err != nil {
		logrus.Error("Error listing package benefits from the repository:", err)
		return NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, pkg.ID, "Falha ao carregar benefícios do pacote")
	}
	pkg.Benefits = benefits

	exclusions, err := s.pricingRepository.ListPackageExclusions(pkg.ID)
	if err != nil {
		logrus.Error("Error listing package exclusions from the repository:", err)
		return NewCatalogErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, pkg.ID, "Falha ao carregar exclusões do pacote")
	}
	pkg.Exclusions = exclusions

	return nil
}

// validatePackageItemIDs garante que todos os vínculos referenciam itens existentes
func (s *Service) validatePackageItemIDs(benefitIDs, exclusionIDs []int) error {
	ids := make([]int, 0, len(benefitIDs)+len(exclusionIDs))
	ids = append(ids, benefitIDs...)
	ids = append(ids, exclusionIDs...)

	if len(ids) == 0 {
		return nil
	}

	allExist, err := s.pricingRepository.ItemsExist(ids)
	if err != nil {
		logrus.Error("Error checking package items existence on the repository:", err)
		return NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar itens vinculados")
	}

	if !allExist {
		return NewCatalogError(ErrUnknownPackageItems, apiErrors.ErrInvalidReference, "Um ou mais itens vinculados não existem")
	}

	return nil
}

func (s *Service) validateLocales(texts ...domain.MultilingualText) error {
	if locale, found := domain.FirstUnsupportedLocale(texts...); found {
		return NewCatalogError(ErrUnsupportedLocale, apiErrors.ErrInvalidFormat, fmt.Sprintf("Idioma não suportado: %s", locale))
	}
	return nil
}

func itemIDs(items []*domain.PackageItem) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
