package analyzing

import (
	"time"

	"github.com/vfg2006/portfolio-admin-api/internal/domain"
)

// VisitRecorder define a interface de ingestão de eventos de visita do site
type VisitRecorder interface {
	// RecordVisit registra um evento bruto de visita de página
	RecordVisit(visitorKey, path string) error

	// RecordReadTime registra o tempo de leitura acumulado de um artigo
	RecordReadTime(visitorKey, path string, readMinutes int) error
}

// TrendReader define a interface de consulta das métricas agregadas de visitantes
type TrendReader interface {
	// GetVisitorTrends retorna as linhas diárias agregadas do período informado
	GetVisitorTrends(filters *domain.VisitorFilters) ([]*domain.VisitorStat, error)

	// GetVisitorOverview retorna o painel de visitantes: os totais do período,
	// a comparação com o período anterior de mesma duração e as métricas derivadas
	GetVisitorOverview(filters *domain.VisitorFilters) (*domain.VisitorOverviewResponse, error)
}

// VisitorAnalyzer é a interface completa do serviço de métricas de visitantes
type VisitorAnalyzer interface {
	VisitRecorder
	TrendReader

	// RollupDay agrega os eventos brutos de um dia em uma linha diária
	RollupDay(day time.Time) error
}
