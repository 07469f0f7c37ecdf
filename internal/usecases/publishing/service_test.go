package publishing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/storage"
	storagemocks "github.com/vfg2006/portfolio-admin-api/infrastructure/storage/mocks"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArticleRepo := mocks.NewMockArticleRepository(ctrl)
	mockStorage := storagemocks.NewMockService(ctrl)
	service := &Service{articleRepository: mockArticleRepo, storageService: mockStorage}

	validRequest := func() *domain.CreateArticleRequest {
		return &domain.CreateArticleRequest{
			Slug:    "go-concurrency",
			Title:   domain.MultilingualText{"id": "Konkurensi di Go", "en": "Concurrency in Go"},
			Summary: domain.MultilingualText{"en": "Goroutines and channels"},
			Content: domain.MultilingualText{"en": "..."},
		}
	}

	t.Run("Artigo válido deve ser criado após checagem de slug", func(t *testing.T) {
		req := validRequest()

		mockArticleRepo.EXPECT().
			GetBySlug("go-concurrency").
			Return(nil, nil)

		mockArticleRepo.EXPECT().
			Create(req).
			Return(&domain.Article{ID: 1, Slug: "go-concurrency"}, nil)

		article, err := service.Create(req)
		assert.NoError(t, err)
		assert.Equal(t, 1, article.ID)
	})

	t.Run("Slug com espaços deve ser normalizado antes da checagem", func(t *testing.T) {
		req := validRequest()
		req.Slug = "  go-concurrency  "

		mockArticleRepo.EXPECT().
			GetBySlug("go-concurrency").
			Return(nil, nil)

		mockArticleRepo.EXPECT().
			Create(req).
			Return(&domain.Article{ID: 2, Slug: "go-concurrency"}, nil)

		article, err := service.Create(req)
		assert.NoError(t, err)
		assert.Equal(t, "go-concurrency", req.Slug)
		assert.Equal(t, 2, article.ID)
	})

	t.Run("Slug vazio deve ser rejeitado", func(t *testing.T) {
		req := validRequest()
		req.Slug = "   "

		_, err := service.Create(req)
		assert.ErrorIs(t, err, ErrSlugRequired)
	})

	t.Run("Título sem nenhuma tradução deve ser rejeitado", func(t *testing.T) {
		req := validRequest()
		req.Title = domain.MultilingualText{"id": ""}

		_, err := service.Create(req)
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("Duração de leitura negativa deve ser rejeitada", func(t *testing.T) {
		req := validRequest()
		req.ReadDuration = -1

		_, err := service.Create(req)
		assert.ErrorIs(t, err, ErrInvalidReadDuration)
	})

	t.Run("Locale fora do conjunto suportado deve ser rejeitado", func(t *testing.T) {
		req := validRequest()
		req.Summary = domain.MultilingualText{"fr": "Bonjour"}

		_, err := service.Create(req)
		assert.ErrorIs(t, err, ErrUnsupportedLocale)

		var articleErr *ArticleError
		assert.ErrorAs(t, err, &articleErr)
		assert.Contains(t, articleErr.Details, "fr")
	})

	t.Run("Slug já utilizado deve ser rejeitado", func(t *testing.T) {
		req := validRequest()

		mockArticleRepo.EXPECT().
			GetBySlug("go-concurrency").
			Return(&domain.Article{ID: 7, Slug: "go-concurrency"}, nil)

		_, err := service.Create(req)
		assert.ErrorIs(t, err, ErrSlugAlreadyInUse)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArticleRepo := mocks.NewMockArticleRepository(ctrl)
	mockStorage := storagemocks.NewMockService(ctrl)
	service := &Service{articleRepository: mockArticleRepo, storageService: mockStorage}

	current := &domain.Article{ID: 1, Slug: "go-concurrency"}

	t.Run("Slug inalterado não deve checar unicidade", func(t *testing.T) {
		slug := "go-concurrency"
		req := &domain.UpdateArticleRequest{Slug: &slug}

		mockArticleRepo.EXPECT().GetByID(1).Return(current, nil)
		mockArticleRepo.EXPECT().Update(1, req).Return(nil)
		mockArticleRepo.EXPECT().GetByID(1).Return(current, nil)

		article, err := service.Update(1, req)
		assert.NoError(t, err)
		assert.Equal(t, 1, article.ID)
	})

	t.Run("Slug alterado deve checar unicidade", func(t *testing.T) {
		slug := "go-generics"
		req := &domain.UpdateArticleRequest{Slug: &slug}

		mockArticleRepo.EXPECT().GetByID(1).Return(current, nil)
		mockArticleRepo.EXPECT().GetBySlug("go-generics").Return(&domain.Article{ID: 9}, nil)

		_, err := service.Update(1, req)
		assert.ErrorIs(t, err, ErrSlugAlreadyInUse)
	})

	t.Run("Artigo inexistente deve retornar não encontrado", func(t *testing.T) {
		mockArticleRepo.EXPECT().GetByID(99).Return(nil, nil)

		_, err := service.Update(99, &domain.UpdateArticleRequest{})
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})
}

func TestService_UploadThumbnail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArticleRepo := mocks.NewMockArticleRepository(ctrl)
	mockStorage := storagemocks.NewMockService(ctrl)
	service := &Service{articleRepository: mockArticleRepo, storageService: mockStorage}

	t.Run("Miniatura anterior deve ser marcada para remoção", func(t *testing.T) {
		previousPath := "articles/old123.png"
		newPath := "articles/new456.png"
		article := &domain.Article{ID: 1, Slug: "go-concurrency", ThumbnailPath: &previousPath}

		mockArticleRepo.EXPECT().GetByID(1).Return(article, nil)

		mockStorage.EXPECT().
			SaveImage("thumb.png", gomock.Any(), storage.SaveOptions{
				Folder:         "articles",
				DeletePrevious: previousPath,
			}).
			Return(newPath, nil)

		// Update persiste o novo caminho e recarrega o artigo
		mockArticleRepo.EXPECT().GetByID(1).Return(article, nil)
		mockArticleRepo.EXPECT().Update(1, gomock.Any()).Return(nil)
		mockArticleRepo.EXPECT().GetByID(1).Return(&domain.Article{ID: 1, ThumbnailPath: &newPath}, nil)

		updated, err := service.UploadThumbnail(1, "thumb.png", strings.NewReader("png-bytes"))
		assert.NoError(t, err)
		assert.Equal(t, newPath, *updated.ThumbnailPath)
	})

	t.Run("Extensão não suportada deve virar erro de formato", func(t *testing.T) {
		article := &domain.Article{ID: 1, Slug: "go-concurrency"}

		mockArticleRepo.EXPECT().GetByID(1).Return(article, nil)

		mockStorage.EXPECT().
			SaveImage("thumb.exe", gomock.Any(), gomock.Any()).
			Return("", storage.ErrUnsupportedImageType)

		_, err := service.UploadThumbnail(1, "thumb.exe", strings.NewReader("bytes"))
		assert.ErrorIs(t, err, ErrStorageOperation)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArticleRepo := mocks.NewMockArticleRepository(ctrl)
	mockStorage := storagemocks.NewMockService(ctrl)
	service := &Service{articleRepository: mockArticleRepo, storageService: mockStorage}

	t.Run("Falha ao remover miniatura não deve impedir a exclusão", func(t *testing.T) {
		thumbnailPath := "articles/thumb.png"
		article := &domain.Article{ID: 1, ThumbnailPath: &thumbnailPath}

		mockArticleRepo.EXPECT().GetByID(1).Return(article, nil)
		mockStorage.EXPECT().DeleteFile(thumbnailPath).Return(assert.AnError)
		mockArticleRepo.EXPECT().Delete(1).Return(nil)

		assert.NoError(t, service.Delete(1))
	})

	t.Run("Artigo sem miniatura não deve acionar o storage", func(t *testing.T) {
		article := &domain.Article{ID: 2}

		mockArticleRepo.EXPECT().GetByID(2).Return(article, nil)
		mockArticleRepo.EXPECT().Delete(2).Return(nil)

		assert.NoError(t, service.Delete(2))
	})

	t.Run("Artigo inexistente deve retornar não encontrado", func(t *testing.T) {
		mockArticleRepo.EXPECT().GetByID(99).Return(nil, nil)

		err := service.Delete(99)
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})
}
