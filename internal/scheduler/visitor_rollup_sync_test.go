package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestVisitorRollupSyncService_runRollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockVisitorAnalyzer(ctrl)

	service := &VisitorRollupSyncService{
		scheduler:       gocron.NewScheduler(time.UTC),
		analyzerService: mockAnalyzer,
		config: VisitorRollupSyncConfig{
			CronSchedule: "0 2 * * *",
			LookbackDays: 3,
			SyncEnabled:  true,
		},
	}

	t.Run("Deve reprocessar os dias da janela de lookback começando por ontem", func(t *testing.T) {
		days := make([]time.Time, 0, 3)

		mockAnalyzer.EXPECT().
			RollupDay(gomock.Any()).
			DoAndReturn(func(day time.Time) error {
				days = append(days, day)
				return nil
			}).
			Times(3)

		service.runRollup()

		assert.Len(t, days, 3)

		// Ontem, anteontem e três dias atrás, nessa ordem
		now := time.Now()
		for i, day := range days {
			expected := now.AddDate(0, 0, -i-1)
			assert.Equal(t, expected.Year(), day.Year())
			assert.Equal(t, expected.YearDay(), day.YearDay())
		}

		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha em um dia não deve interromper os demais", func(t *testing.T) {
		processed := 0

		mockAnalyzer.EXPECT().
			RollupDay(gomock.Any()).
			DoAndReturn(func(day time.Time) error {
				processed++
				if processed == 1 {
					return assert.AnError
				}
				return nil
			}).
			Times(3)

		service.runRollup()

		assert.Equal(t, 3, processed)
	})

	t.Run("Rollup em andamento deve ignorar nova execução", func(t *testing.T) {
		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		// Nenhuma chamada ao serviço de métricas é esperada
		service.runRollup()

		service.syncMutex.Lock()
		service.syncRunning = false
		service.syncMutex.Unlock()
	})
}

func TestVisitorRollupSyncService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockVisitorAnalyzer(ctrl)

	service := &VisitorRollupSyncService{
		scheduler:       gocron.NewScheduler(time.UTC),
		analyzerService: mockAnalyzer,
		config: VisitorRollupSyncConfig{
			CronSchedule: "0 2 * * *",
			LookbackDays: 3,
			SyncEnabled:  false,
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, service.Start(ctx))
	assert.False(t, service.scheduler.IsRunning())
}

func TestVisitorRollupSyncService_GetStatus(t *testing.T) {
	service := &VisitorRollupSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: VisitorRollupSyncConfig{
			CronSchedule: "0 2 * * *",
			LookbackDays: 5,
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, 5, status["sync_lookback_days"])
}
