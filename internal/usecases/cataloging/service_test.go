package cataloging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository/mocks"
	storagemocks "github.com/vfg2006/portfolio-admin-api/infrastructure/storage/mocks"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockPricingRepository, *storagemocks.MockService) {
	mockPricingRepo := mocks.NewMockPricingRepository(ctrl)
	mockStorage := storagemocks.NewMockService(ctrl)

	service := &Service{
		pricingRepository: mockPricingRepo,
		storageService:    mockStorage,
	}

	return service, mockPricingRepo, mockStorage
}

func TestService_CreatePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPricingRepo, _ := newTestService(ctrl)

	validRequest := func() *domain.CreatePackagePricingRequest {
		return &domain.CreatePackagePricingRequest{
			ServiceID:    1,
			Name:         domain.MultilingualText{"en": "Basic"},
			Price:        500,
			Currency:     "IDR",
			DurationDays: 7,
			BenefitIDs:   []int{1, 2},
			ExclusionIDs: []int{3},
		}
	}

	t.Run("Pacote válido deve ser criado com vínculos carregados", func(t *testing.T) {
		req := validRequest()

		mockPricingRepo.EXPECT().GetServiceByID(1).Return(&domain.Service{ID: 1}, nil)
		mockPricingRepo.EXPECT().ItemsExist([]int{1, 2, 3}).Return(true, nil)
		mockPricingRepo.EXPECT().CreatePackage(req).Return(&domain.PackagePricing{ID: 10, ServiceID: 1}, nil)
		mockPricingRepo.EXPECT().GetPackageByID(10).Return(&domain.PackagePricing{ID: 10, ServiceID: 1}, nil)
		mockPricingRepo.EXPECT().ListPackageBenefits(10).Return([]*domain.PackageItem{{ID: 1}, {ID: 2}}, nil)
		mockPricingRepo.EXPECT().ListPackageExclusions(10).Return([]*domain.PackageItem{{ID: 3}}, nil)

		pkg, err := service.CreatePackage(req)
		assert.NoError(t, err)
		assert.Len(t, pkg.Benefits, 2)
		assert.Len(t, pkg.Exclusions, 1)
	})

	t.Run("Preço negativo deve ser rejeitado", func(t *testing.T) {
		req := validRequest()
		req.Price = -1

		_, err := service.CreatePackage(req)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Prazo de entrega negativo deve ser rejeitado", func(t *testing.T) {
		req := validRequest()
		req.DurationDays = -7

		_, err := service.CreatePackage(req)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("Serviço inexistente deve ser rejeitado", func(t *testing.T) {
		req := validRequest()

		mockPricingRepo.EXPECT().GetServiceByID(1).Return(nil, nil)

		_, err := service.CreatePackage(req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("Item vinculado inexistente deve ser rejeitado", func(t *testing.T) {
		req := validRequest()

		mockPricingRepo.EXPECT().GetServiceByID(1).Return(&domain.Service{ID: 1}, nil)
		mockPricingRepo.EXPECT().ItemsExist([]int{1, 2, 3}).Return(false, nil)

		_, err := service.CreatePackage(req)
		assert.ErrorIs(t, err, ErrUnknownPackageItems)
	})
}

func TestService_UpdatePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPricingRepo, _ := newTestService(ctrl)

	current := func() *domain.PackagePricing {
		return &domain.PackagePricing{ID: 10, ServiceID: 1}
	}

	t.Run("Conjuntos de vínculo nulos devem preservar os vínculos atuais", func(t *testing.T) {
		price := 800.0
		req := &domain.UpdatePackagePricingRequest{Price: &price}

		mockPricingRepo.EXPECT().GetPackageByID(10).Return(current(), nil)
		mockPricingRepo.EXPECT().ListPackageBenefits(10).Return(nil, nil)
		mockPricingRepo.EXPECT().ListPackageExclusions(10).Return(nil, nil)
		mockPricingRepo.EXPECT().UpdatePackage(10, req).Return(nil)
		mockPricingRepo.EXPECT().GetPackageByID(10).Return(current(), nil)
		mockPricingRepo.EXPECT().ListPackageBenefits(10).Return(nil, nil)
		mockPricingRepo.EXPECT().ListPackageExclusions(10).Return(nil, nil)

		_, err := service.UpdatePackage(10, req)
		assert.NoError(t, err)
	})

	t.Run("Benefícios informados devem substituir o conjunto mantendo as exclusões atuais", func(t *testing.T) {
		req := &domain.UpdatePackagePricingRequest{BenefitIDs: []int{5, 6}}

		mockPricingRepo.EXPECT().GetPackageByID(10).Return(current(), nil)
		mockPricingRepo.EXPECT().ListPackageBenefits(10).Return([]*domain.PackageItem{{ID: 1}}, nil)
		mockPricingRepo.EXPECT().ListPackageExclusions(10).Return([]*domain.PackageItem{{ID: 3}}, nil)
		mockPricingRepo.EXPECT().UpdatePackage(10, req).Return(nil)
		mockPricingRepo.EXPECT().ItemsExist([]int{5, 6, 3}).Return(true, nil)
		mockPricingRepo.EXPECT().ReplacePackageLinks(10, []int{5, 6}, []int{3}).Return(nil)
		mockPricingRepo.EXPECT().GetPackageByID(10).Return(current(), nil)
		mockPricingRepo.EXPECT().ListPackageBenefits(10).Return([]*domain.PackageItem{{ID: 5}, {ID: 6}}, nil)
		mockPricingRepo.EXPECT().ListPackageExclusions(10).Return([]*domain.PackageItem{{ID: 3}}, nil)

		pkg, err := service.UpdatePackage(10, req)
		assert.NoError(t, err)
		assert.Len(t, pkg.Benefits, 2)
	})

	t.Run("Pacote inexistente deve retornar não encontrado", func(t *testing.T) {
		mockPricingRepo.EXPECT().GetPackageByID(99).Return(nil, nil)

		_, err := service.UpdatePackage(99, &domain.UpdatePackagePricingRequest{})
		assert.ErrorIs(t, err, ErrPackageNotFound)
	})
}

func TestService_CreateService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPricingRepo, _ := newTestService(ctrl)

	t.Run("Serviço válido deve ser criado", func(t *testing.T) {
		req := &domain.CreateServiceRequest{
			Name:        domain.MultilingualText{"id": "Pengembangan Web", "en": "Web Development"},
			Description: domain.MultilingualText{"en": "Full stack web apps"},
		}

		mockPricingRepo.EXPECT().CreateService(req).Return(&domain.Service{ID: 1}, nil)

		created, err := service.CreateService(req)
		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})

	t.Run("Nome sem nenhuma tradução deve ser rejeitado", func(t *testing.T) {
		_, err := service.CreateService(&domain.CreateServiceRequest{})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("Locale fora do conjunto suportado deve ser rejeitado", func(t *testing.T) {
		req := &domain.CreateServiceRequest{
			Name: domain.MultilingualText{"fr": "Développement Web"},
		}

		_, err := service.CreateService(req)
		assert.ErrorIs(t, err, ErrUnsupportedLocale)
	})
}

func TestService_DeleteService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPricingRepo, mockStorage := newTestService(ctrl)

	t.Run("Falha ao remover ícone não deve impedir a exclusão", func(t *testing.T) {
		iconPath := "services/web.svg"

		mockPricingRepo.EXPECT().GetServiceByID(1).Return(&domain.Service{ID: 1, IconPath: &iconPath}, nil)
		mockStorage.EXPECT().DeleteFile(iconPath).Return(assert.AnError)
		mockPricingRepo.EXPECT().DeleteService(1).Return(nil)

		assert.NoError(t, service.DeleteService(1))
	})
}
