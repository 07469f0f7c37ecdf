package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/showcasing"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

func ListTechStacks(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		techStacks, err := service.ListTechStacks()
		if err != nil {
			writeShowcaseError(w, err, "Erro ao listar tecnologias")
			return
		}

		writeJSON(w, http.StatusOK, techStacks)
	})
}

func GetTechStack(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID da tecnologia inválido", nil)
			return
		}

		techStack, err := service.GetTechStackByID(id)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao buscar tecnologia")
			return
		}

		writeJSON(w, http.StatusOK, techStack)
	})
}

func CreateTechStack(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateTechStackRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		techStack, err := service.CreateTechStack(&createRequest)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao criar tecnologia")
			return
		}

		writeJSON(w, http.StatusCreated, techStack)
	})
}

func UpdateTechStack(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID da tecnologia inválido", nil)
			return
		}

		var updateRequest domain.UpdateTechStackRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		techStack, err := service.UpdateTechStack(id, &updateRequest)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao atualizar tecnologia")
			return
		}

		writeJSON(w, http.StatusOK, techStack)
	})
}

func UploadTechStackIcon(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID da tecnologia inválido", nil)
			return
		}

		file, filename, err := formFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de ícone não informado", nil)
			return
		}
		defer file.Close()

		techStack, err := service.UploadTechStackIcon(id, filename, file)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao enviar ícone da tecnologia")
			return
		}

		writeJSON(w, http.StatusOK, techStack)
	})
}

func DeleteTechStack(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID da tecnologia inválido", nil)
			return
		}

		if err := service.DeleteTechStack(id); err != nil {
			writeShowcaseError(w, err, "Erro ao excluir tecnologia")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
