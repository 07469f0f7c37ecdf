package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/portfolio-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RecordVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisitorRepo := mocks.NewMockVisitorRepository(ctrl)
	service := &Service{visitorRepository: mockVisitorRepo}

	tests := []struct {
		name       string
		visitorKey string
		path       string
		setup      func()
		wantErr    error
	}{
		{
			name:       "Evento válido deve ser inserido com horário em UTC",
			visitorKey: "abc123",
			path:       "/articles/go-concurrency",
			setup: func() {
				mockVisitorRepo.EXPECT().
					InsertEvent(gomock.Any()).
					DoAndReturn(func(event *domain.VisitorEvent) error {
						assert.Equal(t, "abc123", event.VisitorKey)
						assert.Equal(t, "/articles/go-concurrency", event.Path)
						assert.Equal(t, 0, event.ReadMinutes)
						assert.Equal(t, time.UTC, event.OccurredAt.Location())
						return nil
					})
			},
		},
		{
			name:       "Visitante sem identificador deve ser rejeitado",
			visitorKey: "   ",
			path:       "/projects",
			setup:      func() {},
			wantErr:    ErrVisitorKeyRequired,
		},
		{
			name:       "Evento sem caminho deve ser rejeitado",
			visitorKey: "abc123",
			path:       "",
			setup:      func() {},
			wantErr:    ErrPathRequired,
		},
		{
			name:       "Falha do repositório deve virar erro de banco",
			visitorKey: "abc123",
			path:       "/projects",
			setup: func() {
				mockVisitorRepo.EXPECT().
					InsertEvent(gomock.Any()).
					Return(assert.AnError)
			},
			wantErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.RecordVisit(tt.visitorKey, tt.path)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_RecordReadTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisitorRepo := mocks.NewMockVisitorRepository(ctrl)
	service := &Service{visitorRepository: mockVisitorRepo}

	t.Run("Tempo de leitura válido deve ser inserido", func(t *testing.T) {
		mockVisitorRepo.EXPECT().
			InsertEvent(gomock.Any()).
			DoAndReturn(func(event *domain.VisitorEvent) error {
				assert.Equal(t, 5, event.ReadMinutes)
				return nil
			})

		err := service.RecordReadTime("abc123", "/articles/go-concurrency", 5)
		assert.NoError(t, err)
	})

	t.Run("Tempo de leitura zero deve ser rejeitado", func(t *testing.T) {
		err := service.RecordReadTime("abc123", "/articles/go-concurrency", 0)
		assert.ErrorIs(t, err, ErrInvalidReadTime)
	})

	t.Run("Tempo de leitura negativo deve ser rejeitado", func(t *testing.T) {
		err := service.RecordReadTime("abc123", "/articles/go-concurrency", -3)
		assert.ErrorIs(t, err, ErrInvalidReadTime)
	})
}

func TestService_GetVisitorTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisitorRepo := mocks.NewMockVisitorRepository(ctrl)
	service := &Service{visitorRepository: mockVisitorRepo}

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)

	t.Run("Período válido deve retornar as linhas diárias", func(t *testing.T) {
		filters := &domain.VisitorFilters{StartDate: &start, EndDate: &end}

		expected := []*domain.VisitorStat{
			{Date: start, UniqueVisitors: 10, TotalVisits: 25},
		}

		mockVisitorRepo.EXPECT().
			GetDailyStats(filters).
			Return(expected, nil)

		stats, err := service.GetVisitorTrends(filters)
		assert.NoError(t, err)
		assert.Equal(t, expected, stats)
	})

	t.Run("Filtros sem datas devem ser rejeitados", func(t *testing.T) {
		_, err := service.GetVisitorTrends(&domain.VisitorFilters{StartDate: &start})
		assert.ErrorIs(t, err, ErrMissingDates)
	})

	t.Run("Data de início posterior à de fim deve ser rejeitada", func(t *testing.T) {
		_, err := service.GetVisitorTrends(&domain.VisitorFilters{StartDate: &end, EndDate: &start})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestService_GetVisitorOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisitorRepo := mocks.NewMockVisitorRepository(ctrl)
	service := &Service{visitorRepository: mockVisitorRepo}

	start := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	filters := &domain.VisitorFilters{StartDate: &start, EndDate: &end}

	// Janela anterior de mesma duração: 1 a 7 de maio
	previousStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	previousEnd := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)

	t.Run("Deve comparar o período com a janela anterior de mesma duração", func(t *testing.T) {
		mockVisitorRepo.EXPECT().
			GetPeriodTotals(start, end).
			Return(&domain.PeriodTotals{TotalVisits: 400, UniqueVisitors: 50}, nil)

		mockVisitorRepo.EXPECT().
			GetPeriodTotals(previousStart, previousEnd).
			Return(&domain.PeriodTotals{TotalVisits: 200, UniqueVisitors: 50}, nil)

		overview, err := service.GetVisitorOverview(filters)
		assert.NoError(t, err)
		assert.Equal(t, 400, overview.Comparison.Current.TotalVisits)
		assert.Equal(t, 200, overview.Comparison.Previous.TotalVisits)
		assert.Equal(t, 100.0, overview.Metrics.VisitsChange)
		assert.Equal(t, 8.0, overview.Metrics.PagesPerVisit)
		assert.Equal(t, filters, overview.Filters)
	})

	t.Run("Falha em um dos períodos deve derrubar a consulta", func(t *testing.T) {
		mockVisitorRepo.EXPECT().
			GetPeriodTotals(start, end).
			Return(&domain.PeriodTotals{}, nil)

		mockVisitorRepo.EXPECT().
			GetPeriodTotals(previousStart, previousEnd).
			Return(nil, assert.AnError)

		_, err := service.GetVisitorOverview(filters)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})

	t.Run("Filtros sem datas devem ser rejeitados", func(t *testing.T) {
		_, err := service.GetVisitorOverview(nil)
		assert.ErrorIs(t, err, ErrMissingDates)
	})
}

func TestService_RollupDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisitorRepo := mocks.NewMockVisitorRepository(ctrl)
	service := &Service{visitorRepository: mockVisitorRepo}

	t.Run("Deve agregar o intervalo de meia-noite a meia-noite em UTC", func(t *testing.T) {
		day := time.Date(2024, 5, 10, 15, 42, 7, 0, time.UTC)
		expectedStart := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		expectedEnd := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)

		mockVisitorRepo.EXPECT().
			RollupRange(expectedStart, expectedEnd).
			Return(nil)

		assert.NoError(t, service.RollupDay(day))
	})

	t.Run("Falha do repositório deve virar erro de banco", func(t *testing.T) {
		mockVisitorRepo.EXPECT().
			RollupRange(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		err := service.RollupDay(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
