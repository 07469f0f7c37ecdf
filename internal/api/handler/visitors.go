package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/publishing"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-admin-api/pkg/utils"
)

// VisitEventRequest é o corpo de ingestão de um evento de visita
type VisitEventRequest struct {
	VisitorKey string `json:"visitor_key"`
	Path       string `json:"path"`
}

// ReadTimeRequest é o corpo de registro de tempo de leitura de um artigo
type ReadTimeRequest struct {
	VisitorKey  string `json:"visitor_key"`
	ReadMinutes int    `json:"read_minutes"`
}

func RecordVisit(service analyzing.VisitRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var eventRequest VisitEventRequest
		if err := json.NewDecoder(r.Body).Decode(&eventRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := service.RecordVisit(eventRequest.VisitorKey, eventRequest.Path); err != nil {
			writeVisitorError(w, err, "Erro ao registrar evento de visita")
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{"message": "Evento registrado"})
	})
}

// RecordArticleReadTime registra o tempo de leitura acumulado de um artigo.
// O caminho do evento é derivado do slug do artigo.
func RecordArticleReadTime(articleService publishing.ArticleService, service analyzing.VisitRecorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do artigo inválido", nil)
			return
		}

		var readTimeRequest ReadTimeRequest
		if err := json.NewDecoder(r.Body).Decode(&readTimeRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		article, err := articleService.GetByID(id)
		if err != nil {
			writeArticleError(w, err, "Erro ao buscar artigo")
			return
		}

		path := fmt.Sprintf("/articles/%s", article.Slug)
		if err := service.RecordReadTime(readTimeRequest.VisitorKey, path, readTimeRequest.ReadMinutes); err != nil {
			writeVisitorError(w, err, "Erro ao registrar tempo de leitura")
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{"message": "Tempo de leitura registrado"})
	})
}

func GetVisitorTrends(service analyzing.TrendReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := visitorFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		stats, err := service.GetVisitorTrends(filters)
		if err != nil {
			writeVisitorError(w, err, "Erro ao buscar métricas de visitantes")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}

func GetVisitorOverview(service analyzing.TrendReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := visitorFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		overview, err := service.GetVisitorOverview(filters)
		if err != nil {
			writeVisitorError(w, err, "Erro ao montar painel de visitantes")
			return
		}

		writeJSON(w, http.StatusOK, overview)
	})
}

// visitorFiltersFromQuery monta os filtros de período a partir da query string
func visitorFiltersFromQuery(r *http.Request) (*domain.VisitorFilters, error) {
	filters := &domain.VisitorFilters{}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("data de início inválida: %s", raw)
		}
		filters.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("data de fim inválida: %s", raw)
		}
		filters.EndDate = endDate
	}

	return filters, nil
}

// writeVisitorError traduz o erro do serviço de visitantes para a resposta da API
func writeVisitorError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	var visitorErr *analyzing.VisitorError
	if errors.As(err, &visitorErr) {
		apiErrors.WriteError(w, visitorErr.Code, visitorErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
