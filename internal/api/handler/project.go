package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/showcasing"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

func ListProjects(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := &domain.ProjectFilters{
			Limit:  parseLimit(r.URL.Query().Get("limit")),
			Offset: parseOffset(r.URL.Query().Get("offset")),
		}

		if search := r.URL.Query().Get("search"); search != "" {
			filters.Search = &search
		}

		if featured := r.URL.Query().Get("featured"); featured != "" {
			value := featured == "true"
			filters.Featured = &value
		}

		projects, err := service.ListProjects(filters)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao listar projetos")
			return
		}

		writeJSON(w, http.StatusOK, projects)
	})
}

func GetProject(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do projeto inválido", nil)
			return
		}

		project, err := service.GetProjectByID(id)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao buscar projeto")
			return
		}

		writeJSON(w, http.StatusOK, project)
	})
}

func CreateProject(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		project, err := service.CreateProject(&createRequest)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao criar projeto")
			return
		}

		writeJSON(w, http.StatusCreated, project)
	})
}

func UpdateProject(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do projeto inválido", nil)
			return
		}

		var updateRequest domain.UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		project, err := service.UpdateProject(id, &updateRequest)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao atualizar projeto")
			return
		}

		writeJSON(w, http.StatusOK, project)
	})
}

func UploadProjectImage(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do projeto inválido", nil)
			return
		}

		file, filename, err := formFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de imagem não informado", nil)
			return
		}
		defer file.Close()

		project, err := service.UploadProjectImage(id, filename, file)
		if err != nil {
			writeShowcaseError(w, err, "Erro ao enviar imagem do projeto")
			return
		}

		writeJSON(w, http.StatusOK, project)
	})
}

func DeleteProject(service showcasing.ShowcaseService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do projeto inválido", nil)
			return
		}

		if err := service.DeleteProject(id); err != nil {
			writeShowcaseError(w, err, "Erro ao excluir projeto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeShowcaseError traduz o erro do serviço de projetos para a resposta da API
func writeShowcaseError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	var showcaseErr *showcasing.ShowcaseError
	if errors.As(err, &showcaseErr) {
		apiErrors.WriteError(w, showcaseErr.Code, showcaseErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
