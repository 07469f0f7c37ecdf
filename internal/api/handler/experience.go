package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/profiling"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

func ListExperiences(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		experiences, err := service.ListExperiences()
		if err != nil {
			writeProfileError(w, err, "Erro ao listar experiências")
			return
		}

		writeJSON(w, http.StatusOK, experiences)
	})
}

func GetExperience(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID da experiência inválido", nil)
			return
		}

		experience, err := service.GetExperienceByID(id)
		if err != nil {
			writeProfileError(w, err, "Erro ao buscar experiência")
			return
		}

		writeJSON(w, http.StatusOK, experience)
	})
}

func CreateExperience(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateExperienceRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		experience, err := service.CreateExperience(&createRequest)
		if err != nil {
			writeProfileError(w, err, "Erro ao criar experiência")
			return
		}

		writeJSON(w, http.StatusCreated, experience)
	})
}

func UpdateExperience(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID da experiência inválido", nil)
			return
		}

		var updateRequest domain.UpdateExperienceRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		experience, err := service.UpdateExperience(id, &updateRequest)
		if err != nil {
			writeProfileError(w, err, "Erro ao atualizar experiência")
			return
		}

		writeJSON(w, http.StatusOK, experience)
	})
}

func DeleteExperience(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID da experiência inválido", nil)
			return
		}

		if err := service.DeleteExperience(id); err != nil {
			writeProfileError(w, err, "Erro ao excluir experiência")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeProfileError traduz o erro do serviço de perfil para a resposta da API
func writeProfileError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	var profileErr *profiling.ProfileError
	if errors.As(err, &profileErr) {
		apiErrors.WriteError(w, profileErr.Code, profileErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
