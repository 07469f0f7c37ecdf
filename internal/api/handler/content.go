package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/content"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

func GetAbout(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		about, err := service.GetAbout()
		if err != nil {
			writeContentError(w, err, "Erro ao buscar conteúdo da página sobre")
			return
		}

		writeJSON(w, http.StatusOK, about)
	})
}

func UpdateAbout(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var updateRequest domain.UpdateAboutRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		about, err := service.UpdateAbout(&updateRequest)
		if err != nil {
			writeContentError(w, err, "Erro ao atualizar conteúdo da página sobre")
			return
		}

		writeJSON(w, http.StatusOK, about)
	})
}

func UploadAboutImage(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, filename, err := formFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de imagem não informado", nil)
			return
		}
		defer file.Close()

		about, err := service.UploadAboutImage(filename, file)
		if err != nil {
			writeContentError(w, err, "Erro ao enviar imagem da página sobre")
			return
		}

		writeJSON(w, http.StatusOK, about)
	})
}

func UploadResume(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, filename, err := formFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de currículo não informado", nil)
			return
		}
		defer file.Close()

		about, err := service.UploadResume(filename, file)
		if err != nil {
			writeContentError(w, err, "Erro ao enviar currículo")
			return
		}

		writeJSON(w, http.StatusOK, about)
	})
}

func GetHomeHero(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hero, err := service.GetHomeHero()
		if err != nil {
			writeContentError(w, err, "Erro ao buscar conteúdo do banner da home")
			return
		}

		writeJSON(w, http.StatusOK, hero)
	})
}

func UpdateHomeHero(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var updateRequest domain.UpdateHomeHeroRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		hero, err := service.UpdateHomeHero(&updateRequest)
		if err != nil {
			writeContentError(w, err, "Erro ao atualizar conteúdo do banner da home")
			return
		}

		writeJSON(w, http.StatusOK, hero)
	})
}

func UploadHeroImage(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, filename, err := formFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de imagem não informado", nil)
			return
		}
		defer file.Close()

		hero, err := service.UploadHeroImage(filename, file)
		if err != nil {
			writeContentError(w, err, "Erro ao enviar imagem do banner da home")
			return
		}

		writeJSON(w, http.StatusOK, hero)
	})
}

// writeContentError traduz o erro do serviço de conteúdo para a resposta da API
func writeContentError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	var contentErr *content.ContentError
	if errors.As(err, &contentErr) {
		apiErrors.WriteError(w, contentErr.Code, contentErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
