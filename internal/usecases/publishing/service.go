package publishing

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/storage"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

const thumbnailFolder = "articles"

// ArticleService expõe as operações administrativas sobre os artigos do blog
type ArticleService interface {
	List(filters *domain.ArticleFilters) (*domain.ArticleList, error)
	GetByID(id int) (*domain.Article, error)
	Create(req *domain.CreateArticleRequest) (*domain.Article, error)
	Update(id int, req *domain.UpdateArticleRequest) (*domain.Article, error)
	UploadThumbnail(id int, filename string, content io.Reader) (*domain.Article, error)
	Delete(id int) error
}

type Service struct {
	articleRepository repository.ArticleRepository
	storageService    storage.Service
}

func NewService(
	articleRepository repository.ArticleRepository,
	storageService storage.Service,
) ArticleService {
	return &Service{
		articleRepository: articleRepository,
		storageService:    storageService,
	}
}

func (s *Service) List(filters *domain.ArticleFilters) (*domain.ArticleList, error) {
	if filters == nil {
		filters = &domain.ArticleFilters{}
	}

	articles, totalCount, err := s.articleRepository.List(filters)
	if err != nil {
		logrus.Error("Error listing articles from the repository:", err)
		return nil, NewArticleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar artigos no banco de dados")
	}

	return &domain.ArticleList{
		Items:      articles,
		TotalCount: totalCount,
	}, nil
}

func (s *Service) GetByID(id int) (*domain.Article, error) {
	article, err := s.articleRepository.GetByID(id)
	if err != nil {
		logrus.Error("Error getting article by id on the repository:", err)
		return nil, NewArticleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar artigo no banco de dados")
	}

	if article == nil {
		return nil, NewArticleErrorWithID(ErrArticleNotFound, apiErrors.ErrResourceNotFound, id, "Artigo não encontrado")
	}

	return article, nil
}

func (s *Service) Create(req *domain.CreateArticleRequest) (*domain.Article, error) {
	req.Slug = strings.TrimSpace(req.Slug)

	if req.Slug == "" {
		return nil, NewArticleError(ErrSlugRequired, apiErrors.ErrMissingRequiredData, "Slug do artigo é obrigatório")
	}

	if req.Title.IsEmpty() {
		return nil, NewArticleError(ErrTitleRequired, apiErrors.ErrMissingRequiredData, "Título do artigo é obrigatório em ao menos um idioma")
	}

	if req.ReadDuration < 0 {
		return nil, NewArticleError(ErrInvalidReadDuration, apiErrors.ErrOutOfRange, "Duração de leitura não pode ser negativa")
	}

	if err := s.validateLocales(req.Title, req.Summary, req.Content); err != nil {
		return nil, err
	}

	// O slug é a chave pública do artigo no site: precisa ser único
	existing, err := s.articleRepository.GetBySlug(req.Slug)
	if err != nil {
		logrus.Error("Error getting article by slug on the repository:", err)
		return nil, NewArticleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar unicidade do slug")
	}

	if existing != nil {
		return nil, NewArticleError(ErrSlugAlreadyInUse, apiErrors.ErrInvalidRequest, fmt.Sprintf("Slug já utilizado pelo artigo %d", existing.ID))
	}

	article, err := s.articleRepository.Create(req)
	if err != nil {
		logrus.Error("Error creating article on the repository:", err)
		return nil, NewArticleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar artigo no banco de dados")
	}

	return article, nil
}

func (s *Service) Update(id int, req *domain.UpdateArticleRequest) (*domain.Article, error) {
	if req.Slug != nil {
		trimmed := strings.TrimSpace(*req.Slug)
		if trimmed == "" {
			return nil, NewArticleErrorWithID(ErrSlugRequired, apiErrors.ErrMissingRequiredData, id, "Slug do artigo não pode ficar vazio")
		}
		req.Slug = &trimmed
	}

	if req.ReadDuration != nil && *req.ReadDuration < 0 {
		return nil, NewArticleErrorWithID(ErrInvalidReadDuration, apiErrors.ErrOutOfRange, id, "Duração de leitura não pode ser negativa")
	}

	if err := s.validateLocales(req.Title, req.Summary, req.Content); err != nil {
		return nil, err
	}

	article, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != article.Slug {
		existing, err := s.articleRepository.GetBySlug(*req.Slug)
		if err != nil {
			logrus.Error("Error getting article by slug on the repository:", err)
			return nil, NewArticleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao verificar unicidade do slug")
		}

		if existing != nil {
			return nil, NewArticleErrorWithID(ErrSlugAlreadyInUse, apiErrors.ErrInvalidRequest, id, fmt.Sprintf("Slug já utilizado pelo artigo %d", existing.ID))
		}
	}

	if err := s.articleRepository.Update(id, req); err != nil {
		logrus.Error("Error updating article on the repository:", err)
		return nil, NewArticleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar artigo no banco de dados")
	}

	return s.GetByID(id)
}

// UploadThumbnail envia a nova miniatura do artigo e atualiza o caminho
// persistido. A miniatura anterior é removida em modo melhor-esforço.
func (s *Service) UploadThumbnail(id int, filename string, content io.Reader) (*domain.Article, error) {
	article, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	opts := storage.SaveOptions{Folder: thumbnailFolder}
	if article.ThumbnailPath != nil {
		opts.DeletePrevious = *article.ThumbnailPath
	}

	objectPath, err := s.storageService.SaveImage(filename, content, opts)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return nil, NewArticleErrorWithID(ErrStorageOperation, apiErrors.ErrInvalidFormat, id, err.Error())
		}
		logrus.Error("Error uploading article thumbnail to storage:", err)
		return nil, NewArticleErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, id, "Falha ao enviar miniatura para o storage")
	}

	return s.Update(id, &domain.UpdateArticleRequest{ThumbnailPath: &objectPath})
}

// Delete remove o artigo e a miniatura associada. A remoção da miniatura é
// melhor-esforço: falha de storage não impede a exclusão do registro.
func (s *Service) Delete(id int) error {
	article, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if article.ThumbnailPath != nil {
		if err := s.storageService.DeleteFile(*article.ThumbnailPath); err != nil {
			logrus.WithError(err).WithField("article_id", id).
				Warn("Erro ao remover miniatura do artigo do storage")
		}
	}

	if err := s.articleRepository.Delete(id); err != nil {
		logrus.Error("Error deleting article on the repository:", err)
		return NewArticleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir artigo no banco de dados")
	}

	return nil
}

func (s *Service) validateLocales(texts ...domain.MultilingualText) error {
	if locale, found := domain.FirstUnsupportedLocale(texts...); found {
		return NewArticleError(ErrUnsupportedLocale, apiErrors.ErrInvalidFormat, fmt.Sprintf("Idioma não suportado: %s", locale))
	}
	return nil
}
