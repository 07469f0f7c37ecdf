package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateBounceRate(t *testing.T) {
	tests := []struct {
		name     string
		totals   PeriodTotals
		expected float64
	}{
		{
			name:     "Únicos menores que visitas deve resultar em rejeição zero",
			totals:   PeriodTotals{TotalVisits: 100, UniqueVisitors: 50},
			expected: 0,
		},
		{
			name:     "Únicos iguais às visitas deve resultar em rejeição zero",
			totals:   PeriodTotals{TotalVisits: 80, UniqueVisitors: 80},
			expected: 0,
		},
		{
			name:     "Período sem dados deve resultar em rejeição zero",
			totals:   PeriodTotals{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EstimateBounceRate(tt.totals)
			assert.Equal(t, tt.expected, result)
			assert.GreaterOrEqual(t, result, 0.0)
			assert.LessOrEqual(t, result, 100.0)
		})
	}
}

func TestPagesPerVisit(t *testing.T) {
	tests := []struct {
		name     string
		totals   PeriodTotals
		expected float64
	}{
		{
			name:     "200 visitas por 50 únicos deve dar 4 páginas por visita",
			totals:   PeriodTotals{TotalVisits: 200, UniqueVisitors: 50},
			expected: 4.0,
		},
		{
			name:     "400 visitas por 50 únicos deve dar 8 páginas por visita",
			totals:   PeriodTotals{TotalVisits: 400, UniqueVisitors: 50},
			expected: 8.0,
		},
		{
			name:     "Período sem únicos não deve dividir por zero",
			totals:   PeriodTotals{TotalVisits: 10, UniqueVisitors: 0},
			expected: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PagesPerVisit(tt.totals))
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{
			name:     "Crescimento de 100 para 150 deve dar 50%",
			current:  150,
			previous: 100,
			expected: 50,
		},
		{
			name:     "Queda de 100 para 50 deve dar -50%",
			current:  50,
			previous: 100,
			expected: -50,
		},
		{
			name:     "Período anterior zerado deve dar variação zero",
			current:  120,
			previous: 0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentChange(tt.current, tt.previous))
		})
	}
}

func TestEstimateNewVisitors(t *testing.T) {
	assert.Equal(t, 65.0, EstimateNewVisitors(100))
	assert.Equal(t, 0.0, EstimateNewVisitors(0))
}

func TestCalculateEngagementMetrics(t *testing.T) {
	cmp := ComparisonResult{
		Current:  PeriodTotals{TotalVisits: 400, UniqueVisitors: 50},
		Previous: PeriodTotals{TotalVisits: 200, UniqueVisitors: 50},
	}

	metrics := CalculateEngagementMetrics(cmp)

	assert.Equal(t, 8.0, metrics.PagesPerVisit)
	assert.Equal(t, 100.0, metrics.PagesPerVisitChange)
	assert.Equal(t, 100.0, metrics.VisitsChange)
	assert.Equal(t, 0.0, metrics.UniqueChange)
	assert.Equal(t, 32.5, metrics.NewVisitorEstimate)
}

func TestCalculateEngagementMetrics_SemHistorico(t *testing.T) {
	cmp := ComparisonResult{
		Current: PeriodTotals{TotalVisits: 100, UniqueVisitors: 40},
	}

	metrics := CalculateEngagementMetrics(cmp)

	// Sem período anterior, todas as variações devem ser zero
	assert.Equal(t, 0.0, metrics.VisitsChange)
	assert.Equal(t, 0.0, metrics.UniqueChange)
	assert.Equal(t, 0.0, metrics.PagesPerVisitChange)
	assert.Equal(t, 2.5, metrics.PagesPerVisit)
}
