package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/profiling"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

func ListTestimonials(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := service.ListTestimonials()
		if err != nil {
			writeProfileError(w, err, "Erro ao listar depoimentos")
			return
		}

		writeJSON(w, http.StatusOK, testimonials)
	})
}

func GetTestimonial(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do depoimento inválido", nil)
			return
		}

		testimonial, err := service.GetTestimonialByID(id)
		if err != nil {
			writeProfileError(w, err, "Erro ao buscar depoimento")
			return
		}

		writeJSON(w, http.StatusOK, testimonial)
	})
}

func CreateTestimonial(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateTestimonialRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		testimonial, err := service.CreateTestimonial(&createRequest)
		if err != nil {
			writeProfileError(w, err, "Erro ao criar depoimento")
			return
		}

		writeJSON(w, http.StatusCreated, testimonial)
	})
}

func UpdateTestimonial(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do depoimento inválido", nil)
			return
		}

		var updateRequest domain.UpdateTestimonialRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		testimonial, err := service.UpdateTestimonial(id, &updateRequest)
		if err != nil {
			writeProfileError(w, err, "Erro ao atualizar depoimento")
			return
		}

		writeJSON(w, http.StatusOK, testimonial)
	})
}

func UploadTestimonialPhoto(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do depoimento inválido", nil)
			return
		}

		file, filename, err := formFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de foto não informado", nil)
			return
		}
		defer file.Close()

		testimonial, err := service.UploadTestimonialPhoto(id, filename, file)
		if err != nil {
			writeProfileError(w, err, "Erro ao enviar foto do depoimento")
			return
		}

		writeJSON(w, http.StatusOK, testimonial)
	})
}

func DeleteTestimonial(service profiling.ProfileService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do depoimento inválido", nil)
			return
		}

		if err := service.DeleteTestimonial(id); err != nil {
			writeProfileError(w, err, "Erro ao excluir depoimento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
