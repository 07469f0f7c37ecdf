package analyzing

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"github.com/vfg2006/portfolio-admin-api/pkg/apiErrors"
	"github.com/vfg2006/portfolio-admin-api/pkg/utils"
)

type Service struct {
	visitorRepository repository.VisitorRepository
}

// NewService cria uma nova instância do serviço de métricas de visitantes
func NewService(visitorRepository repository.VisitorRepository) VisitorAnalyzer {
	return &Service{
		visitorRepository: visitorRepository,
	}
}

// RecordVisit registra um evento bruto de visita de página. O evento só passa
// a contar nas métricas depois do rollup diário.
func (s *Service) RecordVisit(visitorKey, path string) error {
	if err := validateEvent(visitorKey, path); err != nil {
		return err
	}

	event := &domain.VisitorEvent{
		VisitorKey: visitorKey,
		Path:       path,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.visitorRepository.InsertEvent(event); err != nil {
		logrus.Error("Error inserting visitor event on the repository:", err)
		return NewVisitorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar evento de visita")
	}

	return nil
}

// RecordReadTime registra o tempo de leitura acumulado de um artigo em minutos
func (s *Service) RecordReadTime(visitorKey, path string, readMinutes int) error {
	if err := validateEvent(visitorKey, path); err != nil {
		return err
	}

	if readMinutes <= 0 {
		return NewVisitorError(ErrInvalidReadTime, apiErrors.ErrOutOfRange, "Tempo de leitura deve ser maior que zero")
	}

	event := &domain.VisitorEvent{
		VisitorKey:  visitorKey,
		Path:        path,
		ReadMinutes: readMinutes,
		OccurredAt:  time.Now().UTC(),
	}

	if err := s.visitorRepository.InsertEvent(event); err != nil {
		logrus.Error("Error inserting read time event on the repository:", err)
		return NewVisitorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar tempo de leitura")
	}

	return nil
}

// GetVisitorTrends retorna as linhas diárias agregadas do período informado
func (s *Service) GetVisitorTrends(filters *domain.VisitorFilters) ([]*domain.VisitorStat, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	stats, err := s.visitorRepository.GetDailyStats(filters)
	if err != nil {
		logrus.Error("Error getting daily visitor stats from the repository:", err)
		return nil, NewVisitorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar métricas diárias de visitantes")
	}

	return stats, nil
}

// GetVisitorOverview monta o painel de visitantes: busca em paralelo os totais
// do período solicitado e do período imediatamente anterior de mesma duração,
// e deriva as métricas de engajamento do par.
func (s *Service) GetVisitorOverview(filters *domain.VisitorFilters) (*domain.VisitorOverviewResponse, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	currentStart := *filters.StartDate
	currentEnd := *filters.EndDate
	previousStart, previousEnd := utils.PreviousRange(currentStart, currentEnd)

	var (
		currentTotals  *domain.PeriodTotals
		previousTotals *domain.PeriodTotals
		currentErr     error
		previousErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		currentTotals, currentErr = s.visitorRepository.GetPeriodTotals(currentStart, currentEnd)
	}()

	go func() {
		defer wg.Done()
		previousTotals, previousErr = s.visitorRepository.GetPeriodTotals(previousStart, previousEnd)
	}()

	wg.Wait()

	if currentErr != nil {
		logrus.Error("Error getting current period totals from the repository:", currentErr)
		return nil, NewVisitorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar totais do período atual")
	}

	if previousErr != nil {
		logrus.Error("Error getting previous period totals from the repository:", previousErr)
		return nil, NewVisitorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar totais do período anterior")
	}

	comparison := domain.ComparisonResult{
		Current:  *currentTotals,
		Previous: *previousTotals,
	}

	return &domain.VisitorOverviewResponse{
		Comparison: comparison,
		Metrics:    domain.CalculateEngagementMetrics(comparison),
		Filters:    filters,
	}, nil
}

// RollupDay agrega os eventos brutos de um dia em uma linha diária.
// Reprocessar um dia já agregado sobrescreve a linha existente.
func (s *Service) RollupDay(day time.Time) error {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	if err := s.visitorRepository.RollupRange(start, end); err != nil {
		logrus.WithError(err).WithField("day", start.Format(time.DateOnly)).
			Error("Error rolling up visitor events")
		return NewVisitorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao agregar eventos de visita do dia")
	}

	return nil
}

func validateEvent(visitorKey, path string) error {
	if strings.TrimSpace(visitorKey) == "" {
		return NewVisitorError(ErrVisitorKeyRequired, apiErrors.ErrMissingRequiredData, "Identificador do visitante é obrigatório")
	}

	if strings.TrimSpace(path) == "" {
		return NewVisitorError(ErrPathRequired, apiErrors.ErrMissingRequiredData, "Caminho da página é obrigatório")
	}

	return nil
}

func validateFilters(filters *domain.VisitorFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return NewVisitorError(ErrMissingDates, apiErrors.ErrMissingRequiredData, "É necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return NewVisitorError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "A data de início não pode ser posterior à data de fim")
	}

	return nil
}
