package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/publishing"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func ListArticles(service publishing.ArticleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := &domain.ArticleFilters{
			Limit:  parseLimit(r.URL.Query().Get("limit")),
			Offset: parseOffset(r.URL.Query().Get("offset")),
		}

		if search := r.URL.Query().Get("search"); search != "" {
			filters.Search = &search
		}

		if published := r.URL.Query().Get("published"); published != "" {
			value := published == "true"
			filters.Published = &value
		}

		articles, err := service.List(filters)
		if err != nil {
			writeArticleError(w, err, "Erro ao listar artigos")
			return
		}

		writeJSON(w, http.StatusOK, articles)
	})
}

func GetArticle(service publishing.ArticleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do artigo inválido", nil)
			return
		}

		article, err := service.GetByID(id)
		if err != nil {
			writeArticleError(w, err, "Erro ao buscar artigo")
			return
		}

		writeJSON(w, http.StatusOK, article)
	})
}

func CreateArticle(service publishing.ArticleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		article, err := service.Create(&createRequest)
		if err != nil {
			writeArticleError(w, err, "Erro ao criar artigo")
			return
		}

		writeJSON(w, http.StatusCreated, article)
	})
}

func UpdateArticle(service publishing.ArticleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do artigo inválido", nil)
			return
		}

		var updateRequest domain.UpdateArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		article, err := service.Update(id, &updateRequest)
		if err != nil {
			writeArticleError(w, err, "Erro ao atualizar artigo")
			return
		}

		writeJSON(w, http.StatusOK, article)
	})
}

func UploadArticleThumbnail(service publishing.ArticleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do artigo inválido", nil)
			return
		}

		file, filename, err := formFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de imagem não informado", nil)
			return
		}
		defer file.Close()

		article, err := service.UploadThumbnail(id, filename, file)
		if err != nil {
			writeArticleError(w, err, "Erro ao enviar miniatura do artigo")
			return
		}

		writeJSON(w, http.StatusOK, article)
	})
}

func DeleteArticle(service publishing.ArticleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do artigo inválido", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			writeArticleError(w, err, "Erro ao excluir artigo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeArticleError traduz o erro do serviço de artigos para a resposta da API
func writeArticleError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	var articleErr *publishing.ArticleError
	if errors.As(err, &articleErr) {
		apiErrors.WriteError(w, articleErr.Code, articleErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultPageLimit
	}

	if limit > maxPageLimit {
		return maxPageLimit
	}

	return limit
}

func parseOffset(raw string) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
