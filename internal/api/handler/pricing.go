package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/cataloging"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
)

func ListServices(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		services, err := service.ListServices()
		if err != nil {
			writeCatalogError(w, err, "Erro ao listar serviços")
			return
		}

		writeJSON(w, http.StatusOK, services)
	})
}

func GetService(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do serviço inválido", nil)
			return
		}

		result, err := service.GetServiceByID(id)
		if err != nil {
			writeCatalogError(w, err, "Erro ao buscar serviço")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func CreateService(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.CreateService(&createRequest)
		if err != nil {
			writeCatalogError(w, err, "Erro ao criar serviço")
			return
		}

		writeJSON(w, http.StatusCreated, result)
	})
}

func UpdateService(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do serviço inválido", nil)
			return
		}

		var updateRequest domain.UpdateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.UpdateService(id, &updateRequest)
		if err != nil {
			writeCatalogError(w, err, "Erro ao atualizar serviço")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func UploadServiceIcon(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do serviço inválido", nil)
			return
		}

		file, filename, err := formFile(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de ícone não informado", nil)
			return
		}
		defer file.Close()

		result, err := service.UploadServiceIcon(id, filename, file)
		if err != nil {
			writeCatalogError(w, err, "Erro ao enviar ícone do serviço")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func DeleteService(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do serviço inválido", nil)
			return
		}

		if err := service.DeleteService(id); err != nil {
			writeCatalogError(w, err, "Erro ao excluir serviço")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListServicePackages(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do serviço inválido", nil)
			return
		}

		packages, err := service.ListPackagesByService(id)
		if err != nil {
			writeCatalogError(w, err, "Erro ao listar pacotes do serviço")
			return
		}

		writeJSON(w, http.StatusOK, packages)
	})
}

func GetPackage(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do pacote inválido", nil)
			return
		}

		pkg, err := service.GetPackageByID(id)
		if err != nil {
			writeCatalogError(w, err, "Erro ao buscar pacote")
			return
		}

		writeJSON(w, http.StatusOK, pkg)
	})
}

func CreatePackage(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var createRequest domain.CreatePackagePricingRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		pkg, err := service.CreatePackage(&createRequest)
		if err != nil {
			writeCatalogError(w, err, "Erro ao criar pacote")
			return
		}

		writeJSON(w, http.StatusCreated, pkg)
	})
}

func UpdatePackage(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do pacote inválido", nil)
			return
		}

		var updateRequest domain.UpdatePackagePricingRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		pkg, err := service.UpdatePackage(id, &updateRequest)
		if err != nil {
			writeCatalogError(w, err, "Erro ao atualizar pacote")
			return
		}

		writeJSON(w, http.StatusOK, pkg)
	})
}

func DeletePackage(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do pacote inválido", nil)
			return
		}

		if err := service.DeletePackage(id); err != nil {
			writeCatalogError(w, err, "Erro ao excluir pacote")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeCatalogError traduz o erro do serviço de catálogo para a resposta da API
func writeCatalogError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	var catalogErr *cataloging.CatalogError
	if errors.As(err, &catalogErr) {
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
