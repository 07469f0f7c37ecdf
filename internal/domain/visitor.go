package domain

import (
	"time"

	"github.com/vfg2006/portfolio-admin-api/pkg/utils"
)

// NewVisitorRatio é a proporção estimada de visitantes novos sobre únicos.
// Valor fixo aproximado: não há rastreamento real de "novo vs recorrente".
const NewVisitorRatio = 0.65

// VisitorEvent é um evento bruto de visita registrado pelo site
type VisitorEvent struct {
	ID          int64     `json:"id"`
	VisitorKey  string    `json:"visitor_key"` // identificador anônimo do visitante
	Path        string    `json:"path"`
	ReadMinutes int       `json:"read_minutes"` // tempo de leitura acumulado, quando aplicável
	OccurredAt  time.Time `json:"occurred_at"`
}

// VisitorStat é a linha agregada de visitas de um dia, produzida pelo rollup
type VisitorStat struct {
	Date           time.Time `json:"date"`
	UniqueVisitors int       `json:"unique_visitors"`
	TotalVisits    int       `json:"total_visits"`
}

// VisitorFilters define o período de consulta das métricas de visitantes
type VisitorFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// PeriodTotals são os totais agregados de um período
type PeriodTotals struct {
	TotalVisits    int `json:"total_visits"`
	UniqueVisitors int `json:"unique_visitors"`
}

// ComparisonResult é o par de períodos usado para derivar métricas de tendência
type ComparisonResult struct {
	Current  PeriodTotals `json:"current"`
	Previous PeriodTotals `json:"previous"`
}

// EngagementMetrics são as métricas derivadas exibidas no painel de visitantes.
// Nenhuma delas é persistida: são calculadas a partir do ComparisonResult.
type EngagementMetrics struct {
	BounceRate          float64 `json:"bounce_rate"`
	BounceRateChange    float64 `json:"bounce_rate_change"`
	PagesPerVisit       float64 `json:"pages_per_visit"`
	PagesPerVisitChange float64 `json:"pages_per_visit_change"`
	NewVisitorEstimate  float64 `json:"new_visitor_estimate"`
	VisitsChange        float64 `json:"visits_change"`
	UniqueChange        float64 `json:"unique_change"`
}

// VisitorOverviewResponse é a resposta do painel de visitantes: o par de
// períodos comparados e as métricas derivadas dele
type VisitorOverviewResponse struct {
	Comparison ComparisonResult   `json:"comparison"`
	Metrics    *EngagementMetrics `json:"metrics"`
	Filters    *VisitorFilters    `json:"filters"`
}

// EstimateBounceRate calcula a taxa de rejeição estimada de um período.
// É uma estimativa aproximada a partir da razão únicos/visitas: não há dados
// de sessão disponíveis. O resultado fica sempre entre 0 e 100.
func EstimateBounceRate(totals PeriodTotals) float64 {
	ratio := float64(totals.UniqueVisitors) / float64(maxInt(1, totals.TotalVisits))

	bounce := (1 - 1/maxFloat(1, ratio)) * 100

	return clamp(0, 100, bounce)
}

// PagesPerVisit calcula a média estimada de páginas por visita de um período
func PagesPerVisit(totals PeriodTotals) float64 {
	return float64(totals.TotalVisits) / float64(maxInt(1, totals.UniqueVisitors))
}

// PercentChange calcula a variação percentual entre dois valores.
// Período anterior zerado resulta em variação 0 para evitar divisão por zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// EstimateNewVisitors estima a quantidade de visitantes novos a partir dos únicos
func EstimateNewVisitors(uniqueVisitors int) float64 {
	return float64(uniqueVisitors) * NewVisitorRatio
}

// CalculateEngagementMetrics deriva todas as métricas de engajamento a partir
// do par de períodos atual/anterior. Função pura: não consulta nada.
func CalculateEngagementMetrics(cmp ComparisonResult) *EngagementMetrics {
	currentBounce := EstimateBounceRate(cmp.Current)
	previousBounce := EstimateBounceRate(cmp.Previous)

	currentPages := PagesPerVisit(cmp.Current)
	previousPages := PagesPerVisit(cmp.Previous)

	return &EngagementMetrics{
		BounceRate:          utils.RoundWithTwoDecimalPlace(currentBounce),
		BounceRateChange:    utils.RoundWithTwoDecimalPlace(PercentChange(currentBounce, previousBounce)),
		PagesPerVisit:       utils.RoundWithTwoDecimalPlace(currentPages),
		PagesPerVisitChange: utils.RoundWithTwoDecimalPlace(PercentChange(currentPages, previousPages)),
		NewVisitorEstimate:  utils.RoundWithTwoDecimalPlace(EstimateNewVisitors(cmp.Current.UniqueVisitors)),
		VisitsChange: utils.RoundWithTwoDecimalPlace(PercentChange(
			float64(cmp.Current.TotalVisits), float64(cmp.Previous.TotalVisits),
		)),
		UniqueChange: utils.RoundWithTwoDecimalPlace(PercentChange(
			float64(cmp.Current.UniqueVisitors), float64(cmp.Previous.UniqueVisitors),
		)),
	}
}

func clamp(min, max, value float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
