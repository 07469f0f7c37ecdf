package showcasing

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/storage"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

const (
	projectFolder  = "projects"
	techIconFolder = "tech-stacks"
	maxProficiency = 100
)

// ShowcaseService expõe as operações administrativas sobre projetos do
// portfólio e as tecnologias vinculadas a eles
type ShowcaseService interface {
	ListProjects(filters *domain.ProjectFilters) (*domain.ProjectList, error)
	GetProjectByID(id int) (*domain.Project, error)
	CreateProject(req *domain.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(id int, req *domain.UpdateProjectRequest) (*domain.Project, error)
	UploadProjectImage(id int, filename string, content io.Reader) (*domain.Project, error)
	DeleteProject(id int) error

	ListTechStacks() ([]*domain.TechStack, error)
	GetTechStackByID(id int) (*domain.TechStack, error)
	CreateTechStack(req *domain.CreateTechStackRequest) (*domain.TechStack, error)
	UpdateTechStack(id int, req *domain.UpdateTechStackRequest) (*domain.TechStack, error)
	UploadTechStackIcon(id int, filename string, content io.Reader) (*domain.TechStack, error)
	DeleteTechStack(id int) error
}

type Service struct {
	projectRepository   repository.ProjectRepository
	techStackRepository repository.TechStackRepository
	storageService      storage.Service
}

func NewService(
	projectRepository repository.ProjectRepository,
	techStackRepository repository.TechStackRepository,
	storageService storage.Service,
) ShowcaseService {
	return &Service{
		projectRepository:   projectRepository,
		techStackRepository: techStackRepository,
		storageService:      storageService,
	}
}

func (s *Service) ListProjects(filters *domain.ProjectFilters) (*domain.ProjectList, error) {
	if filters == nil {
		filters = &domain.ProjectFilters{}
	}

	projects, totalCount, err := s.projectRepository.List(filters)
	if err != nil {
		logrus.Error("Error listing projects from the repository:", err)
		return nil, NewShowcaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar projetos no banco de dados")
	}

	// Carrega as tecnologias vinculadas de cada projeto
	for _, project := range projects {
		techStacks, err := s.projectRepository.ListTechStacks(project.ID)
		if err != nil {
			logrus.Error("Error listing project tech stacks from the repository:", err)
			return nil, NewShowcaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao carregar tecnologias dos projetos")
		}
		project.TechStacks = techStacks
	}

	return &domain.ProjectList{
		Items:      projects,
		TotalCount: totalCount,
	}, nil
}

func (s *Service) GetProjectByID(id int) (*domain.Project, error) {
	project, err := s.projectRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting project by id on the repository:", err)
		return nil, NewShowcaseErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar projeto no banco de dados")
	}

	if project == nil {
		return nil, NewShowcaseErrorWithID(ErrProjectNotFound, apiErrors.ErrResourceNotFound, id, "Projeto não encontrado")
	}

	techStacks, err := s.projectRepository.ListTechStacks(id)
	if err != nil {
		logrus.Error("Error listing project tech stacks from the repository:", err)
		return nil, NewShowcaseErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao carregar tecnologias do projeto")
	}
	project.TechStacks = techStacks

	return project, nil
}

func (s *Service) CreateProject(req *domain.CreateProjectRequest) (*domain.Project, error) {
	if req.Name.IsEmpty() {
		return nil, NewShowcaseError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome do projeto é obrigatório em ao menos um idioma")
	}

	if err := s.validateLocales(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.validateURLs(req.RepoURL, req.DemoURL); err != nil {
		return nil, err
	}

	if err := s.validateTechStackIDs(req.TechStackIDs); err != nil {
		return nil, err
	}

	project, err := s.projectRepository.Create(req)
	if err != nil {
		logrus.Error("Error creating project on the repository:", err)
		return nil, NewShowcaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar projeto no banco de dados")
	}

	return s.GetProjectByID(project.ID)
}

func (s *Service) UpdateProject(id int, req *domain.UpdateProjectRequest) (*domain.Project, error) {
	if err := s.validateLocales(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.validateURLs(req.RepoURL, req.DemoURL); err != nil {
		return nil, err
	}

	if _, err := s.GetProjectByID(id); err != nil {
		return nil, err
	}

	if err := s.projectRepository.Update(id, req); err != nil {
		logrus.Error("Error updating project on the repository:", err)
		return nil, NewShowcaseErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar projeto no banco de dados")
	}

	// Conjunto de tecnologias não nulo substitui os vínculos atuais por inteiro
	if req.TechStackIDs != nil {
		if err := s.validateTechStackIDs(req.TechStackIDs); err != nil {
			return nil, err
		}

		if err := s.projectRepository.ReplaceTechStacks(id, req.TechStackIDs); err != nil {
			logrus.Error("Error replacing project tech stacks on the repository:", err)
			return nil, NewShowcaseErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao substituir tecnologias do projeto")
		}
	}

	return s.GetProjectByID(id)
}

// UploadProjectImage envia a nova imagem do projeto e atualiza o caminho
// persistido. A imagem anterior é removida em modo melhor-esforço.
func (s *Service) UploadProjectImage(id int, filename string, content io.Reader) (*domain.Project, error) {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return nil, err
	}

	opts := storage.SaveOptions{Folder: projectFolder}
	if project.ImagePath != nil {
		opts.DeletePrevious = *project.ImagePath
	}

	objectPath, err := s.storageService.SaveImage(filename, content, opts)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return nil, NewShowcaseErrorWithID(ErrStorageOperation, apiErrors.ErrInvalidFormat, id, err.Error())
		}
		logrus.Error("Error uploading project image to storage:", err)
		return nil, NewShowcaseErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, id, "Falha ao enviar imagem para o storage")
	}

	return s.UpdateProject(id, &domain.UpdateProjectRequest{ImagePath: &objectPath})
}

// DeleteProject remove o projeto, seus vínculos de tecnologia e a imagem
// associada. A remoção da imagem é melhor-esforço: falha de storage não
// impede a exclusão do registro.
func (s *Service) DeleteProject(id int) error {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return err
	}

	if project.ImagePath != nil {
		if err := s.storageService.DeleteFile(*project.ImagePath); err != nil {
			logrus.WithError(err).WithField("project_id", id).
				Warn("Erro ao remover imagem do projeto do storage")
		}
	}

	if err := s.projectRepository.Delete(id); err != nil {
		logrus.Error("Error deleting project on the repository:", err)
		return NewShowcaseErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir projeto no banco de dados")
	}

	return nil
}

func (s *Service) ListTechStacks() ([]*domain.TechStack, error) {
	techStacks, err := s.techStackRepository.List()
	if err != nil {
		logrus.Error("Error listing tech stacks from the repository:", err)
		return nil, NewShowcaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar tecnologias no banco de dados")
	}

	return techStacks, nil
}

func (s *Service) GetTechStackByID(id int) (*domain.TechStack, error) {
	techStack, err := s.techStackRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting tech stack by id on the repository:", err)
		return nil, NewShowcaseErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar tecnologia no banco de dados")
	}

	if techStack == nil {
		return nil, NewShowcaseErrorWithID(ErrTechStackNotFound, apiErrors.ErrResourceNotFound, id, "Tecnologia não encontrada")
	}

	return techStack, nil
}

func (s *Service) CreateTechStack(req *domain.CreateTechStackRequest) (*domain.TechStack, error) {
	if req.Name == "" {
		return nil, NewShowcaseError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome da tecnologia é obrigatório")
	}

	if req.Proficiency < 0 || req.Proficiency > maxProficiency {
		return nil, NewShowcaseError(ErrInvalidProficiency, apiErrors.ErrOutOfRange, "Proficiência deve estar entre 0 e 100")
	}

	techStack, err := s.techStackRepository.Create(req)
	if err != nil {
		logrus.Error("Error creating tech stack on the repository:", err)
		return nil, NewShowcaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar tecnologia no banco de dados")
	}

	return techStack, nil
}

func (s *Service) UpdateTechStack(id int, req *domain.UpdateTechStackRequest) (*domain.TechStack, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, NewShowcaseErrorWithID(ErrNameRequired, apiErrors.ErrMissingRequiredData, id, "Nome da tecnologia não pode ficar vazio")
	}

	if req.Proficiency != nil && (*req.Proficiency < 0 || *req.Proficiency > maxProficiency) {
		return nil, NewShowcaseErrorWithID(ErrInvalidProficiency, apiErrors.ErrOutOfRange, id, "Proficiência deve estar entre 0 e 100")
	}

	if _, err := s.GetTechStackByID(id); err != nil {
		return nil, err
	}

	if err := s.techStackRepository.Update(id, req); err != nil {
		logrus.Error("Error updating tech stack on the repository:", err)
		return nil, NewShowcaseErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar tecnologia no banco de dados")
	}

	return s.GetTechStackByID(id)
}

// UploadTechStackIcon envia o novo ícone da tecnologia e atualiza o caminho
// persistido. O ícone anterior é removido em modo melhor-esforço.
func (s *Service) UploadTechStackIcon(id int, filename string, content io.Reader) (*domain.TechStack, error) {
	techStack, err := s.GetTechStackByID(id)
	if err != nil {
		return nil, err
	}

	opts := storage.SaveOptions{Folder: techIconFolder}
	if techStack.IconPath != nil {
		opts.DeletePrevious = *techStack.IconPath
	}

	objectPath, err := s.storageService.SaveImage(filename, content, opts)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return nil, NewShowcaseErrorWithID(ErrStorageOperation, apiErrors.ErrInvalidFormat, id, err.Error())
		}
		logrus.Error("Error uploading tech stack icon to storage:", err)
		return nil, NewShowcaseErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, id, "Falha ao enviar ícone para o storage")
	}

	return s.UpdateTechStack(id, &domain.UpdateTechStackRequest{IconPath: &objectPath})
}

// DeleteTechStack remove a tecnologia e o ícone associado
func (s *Service) DeleteTechStack(id int) error {
	techStack, err := s.GetTechStackByID(id)
	if err != nil {
		return err
	}

	if techStack.IconPath != nil {
		if err := s.storageService.DeleteFile(*techStack.IconPath); err != nil {
			logrus.WithError(err).WithField("tech_stack_id", id).
				Warn("Erro ao remover ícone da tecnologia do storage")
		}
	}

	if err := s.techStackRepository.Delete(id); err != nil {
		logrus.Error("Error deleting tech stack on the repository:", err)
		return NewShowcaseErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir tecnologia no banco de dados")
	}

	return nil
}

// validateTechStackIDs garante que todos os vínculos referenciam tecnologias existentes
func (s *Service) validateTechStackIDs(ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	allExist, err := s.techStackRepository.AllExist(ids)
	if err != nil {
		logrus.Error("Error checking tech stacks existence on the repository:", err)
		return NewShowcaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar tecnologias vinculadas")
	}

	if !allExist {
		return NewShowcaseError(ErrUnknownTechStacks, apiErrors.ErrInvalidReference, "Uma ou mais tecnologias vinculadas não existem")
	}

	return nil
}

func (s *Service) validateURLs(urls ...*string) error {
	for _, raw := range urls {
		if raw == nil || *raw == "" {
			continue
		}

		parsed, err := url.Parse(*raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return NewShowcaseError(ErrInvalidURL, apiErrors.ErrInvalidFormat, fmt.Sprintf("URL inválida: %s", *raw))
		}
	}
	return nil
}

func (s *Service) validateLocales(texts ...domain.MultilingualText) error {
	if locale, found := domain.FirstUnsupportedLocale(texts...); found {
		return NewShowcaseError(ErrUnsupportedLocale, apiErrors.ErrInvalidFormat, fmt.Sprintf("Idioma não suportado: %s", locale))
	}
	return nil
}
