package showcasing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository/mocks"
	storagemocks "github.com/vfg2006/portfolio-admin-api/infrastructure/storage/mocks"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockProjectRepository, *mocks.MockTechStackRepository, *storagemocks.MockService) {
	mockProjectRepo := mocks.NewMockProjectRepository(ctrl)
	mockTechStackRepo := mocks.NewMockTechStackRepository(ctrl)
	mockStorage := storagemocks.NewMockService(ctrl)

	service := &Service{
		projectRepository:   mockProjectRepo,
		techStackRepository: mockTechStackRepo,
		storageService:      mockStorage,
	}

	return service, mockProjectRepo, mockTechStackRepo, mockStorage
}

func TestService_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockProjectRepo, mockTechStackRepo, _ := newTestService(ctrl)

	validRequest := func() *domain.CreateProjectRequest {
		repoURL := "https://github.com/vfg2006/portfolio"
		return &domain.CreateProjectRequest{
			Name:         domain.MultilingualText{"en": "Portfolio"},
			Description:  domain.MultilingualText{"en": "Personal site"},
			RepoURL:      &repoURL,
			TechStackIDs: []int{1, 2},
		}
	}

	t.Run("Projeto válido deve ser criado com tecnologias vinculadas", func(t *testing.T) {
		req := validRequest()

		mockTechStackRepo.EXPECT().AllExist([]int{1, 2}).Return(true, nil)
		mockProjectRepo.EXPECT().Create(req).Return(&domain.Project{ID: 1}, nil)
		mockProjectRepo.EXPECT().GetByID(1).Return(&domain.Project{ID: 1}, nil)
		mockProjectRepo.EXPECT().ListTechStacks(1).Return([]*domain.TechStack{{ID: 1}, {ID: 2}}, nil)

		project, err := service.CreateProject(req)
		assert.NoError(t, err)
		assert.Len(t, project.TechStacks, 2)
	})

	t.Run("Nome sem nenhuma tradução deve ser rejeitado", func(t *testing.T) {
		req := validRequest()
		req.Name = domain.MultilingualText{}

		_, err := service.CreateProject(req)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("URL sem esquema deve ser rejeitada", func(t *testing.T) {
		req := validRequest()
		badURL := "github.com/vfg2006/portfolio"
		req.RepoURL = &badURL

		_, err := service.CreateProject(req)
		assert.ErrorIs(t, err, ErrInvalidURL)
	})

	t.Run("Tecnologia vinculada inexistente deve ser rejeitada", func(t *testing.T) {
		req := validRequest()

		mockTechStackRepo.EXPECT().AllExist([]int{1, 2}).Return(false, nil)

		_, err := service.CreateProject(req)
		assert.ErrorIs(t, err, ErrUnknownTechStacks)
	})

	t.Run("Locale fora do conjunto suportado deve ser rejeitado", func(t *testing.T) {
		req := validRequest()
		req.Description = domain.MultilingualText{"pt": "Site pessoal"}

		_, err := service.CreateProject(req)
		assert.ErrorIs(t, err, ErrUnsupportedLocale)
	})
}

func TestService_UpdateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockProjectRepo, mockTechStackRepo, _ := newTestService(ctrl)

	current := &domain.Project{ID: 1}

	t.Run("Conjunto de tecnologias nulo deve preservar os vínculos atuais", func(t *testing.T) {
		req := &domain.UpdateProjectRequest{Name: domain.MultilingualText{"en": "Renamed"}}

		mockProjectRepo.EXPECT().GetByID(1).Return(current, nil)
		mockProjectRepo.EXPECT().ListTechStacks(1).Return(nil, nil)
		mockProjectRepo.EXPECT().Update(1, req).Return(nil)
		mockProjectRepo.EXPECT().GetByID(1).Return(current, nil)
		mockProjectRepo.EXPECT().ListTechStacks(1).Return(nil, nil)

		_, err := service.UpdateProject(1, req)
		assert.NoError(t, err)
	})

	t.Run("Conjunto de tecnologias não nulo deve substituir os vínculos", func(t *testing.T) {
		req := &domain.UpdateProjectRequest{TechStackIDs: []int{3}}

		mockProjectRepo.EXPECT().GetByID(1).Return(current, nil)
		mockProjectRepo.EXPECT().ListTechStacks(1).Return(nil, nil)
		mockProjectRepo.EXPECT().Update(1, req).Return(nil)
		mockTechStackRepo.EXPECT().AllExist([]int{3}).Return(true, nil)
		mockProjectRepo.EXPECT().ReplaceTechStacks(1, []int{3}).Return(nil)
		mockProjectRepo.EXPECT().GetByID(1).Return(current, nil)
		mockProjectRepo.EXPECT().ListTechStacks(1).Return([]*domain.TechStack{{ID: 3}}, nil)

		project, err := service.UpdateProject(1, req)
		assert.NoError(t, err)
		assert.Len(t, project.TechStacks, 1)
	})

	t.Run("Projeto inexistente deve retornar não encontrado", func(t *testing.T) {
		mockProjectRepo.EXPECT().GetByID(99).Return(nil, nil)

		_, err := service.UpdateProject(99, &domain.UpdateProjectRequest{})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestService_DeleteProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockProjectRepo, _, mockStorage := newTestService(ctrl)

	t.Run("Falha ao remover imagem não deve impedir a exclusão", func(t *testing.T) {
		imagePath := "projects/cover.png"
		project := &domain.Project{ID: 1, ImagePath: &imagePath}

		mockProjectRepo.EXPECT().GetByID(1).Return(project, nil)
		mockProjectRepo.EXPECT().ListTechStacks(1).Return(nil, nil)
		mockStorage.EXPECT().DeleteFile(imagePath).Return(assert.AnError)
		mockProjectRepo.EXPECT().Delete(1).Return(nil)

		assert.NoError(t, service.DeleteProject(1))
	})
}

func TestService_CreateTechStack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockTechStackRepo, _ := newTestService(ctrl)

	t.Run("Tecnologia válida deve ser criada", func(t *testing.T) {
		req := &domain.CreateTechStackRequest{Name: "Go", Proficiency: 90}

		mockTechStackRepo.EXPECT().Create(req).Return(&domain.TechStack{ID: 1, Name: "Go"}, nil)

		techStack, err := service.CreateTechStack(req)
		assert.NoError(t, err)
		assert.Equal(t, "Go", techStack.Name)
	})

	t.Run("Nome vazio deve ser rejeitado", func(t *testing.T) {
		_, err := service.CreateTechStack(&domain.CreateTechStackRequest{Proficiency: 50})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("Proficiência acima de 100 deve ser rejeitada", func(t *testing.T) {
		_, err := service.CreateTechStack(&domain.CreateTechStackRequest{Name: "Go", Proficiency: 120})
		assert.ErrorIs(t, err, ErrInvalidProficiency)
	})

	t.Run("Proficiência negativa deve ser rejeitada", func(t *testing.T) {
		_, err := service.CreateTechStack(&domain.CreateTechStackRequest{Name: "Go", Proficiency: -1})
		assert.ErrorIs(t, err, ErrInvalidProficiency)
	})
}
