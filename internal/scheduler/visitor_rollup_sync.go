package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/internal/config"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/analyzing"
)

// VisitorRollupSyncConfig representa a configuração do agendador de rollup de visitantes
type VisitorRollupSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// VisitorRollupSyncService gerencia o agendamento e execução do rollup diário
// que agrega os eventos brutos de visita em linhas diárias
type VisitorRollupSyncService struct {
	scheduler           *gocron.Scheduler
	config              VisitorRollupSyncConfig
	analyzerService     analyzing.VisitorAnalyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewVisitorRollupSyncService cria uma nova instância do serviço de rollup de visitantes
func NewVisitorRollupSyncService(
	analyzerService analyzing.VisitorAnalyzer,
	appConfig *config.Config,
) *VisitorRollupSyncService {
	rollupConfig := VisitorRollupSyncConfig{
		CronSchedule: appConfig.VisitorRollupSync.CronSchedule,
		LookbackDays: appConfig.VisitorRollupSync.LookbackDays,
		SyncEnabled:  appConfig.VisitorRollupSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rollupConfig.CronSchedule,
		"lookback_days": rollupConfig.LookbackDays,
		"sync_enabled":  rollupConfig.SyncEnabled,
	}).Info("Configuração do agendador de rollup de visitantes carregada")

	return &VisitorRollupSyncService{
		scheduler:       scheduler,
		config:          rollupConfig,
		analyzerService: analyzerService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *VisitorRollupSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Rollup de visitantes desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de rollup de visitantes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRollup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rollup de visitantes: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de rollup de visitantes")
		s.scheduler.Stop()
	}()

	return nil
}

// runRollup agrega os eventos dos últimos dias. Reprocessar os dias da janela
// de lookback cobre eventos que chegaram atrasados após o rollup do dia.
func (s *VisitorRollupSyncService) runRollup() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rollup de visitantes já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("lookback_days", s.config.LookbackDays).
		Info("Iniciando rollup de eventos de visita")

	for i := 0; i < s.config.LookbackDays; i++ {
		day := time.Now().AddDate(0, 0, -i-1) // Começar de ontem e ir para trás

		if err := s.analyzerService.RollupDay(day); err != nil {
			logrus.WithError(err).WithField("day", day.Format(time.DateOnly)).
				Error("Erro ao agregar eventos de visita do dia")
			continue
		}

		logrus.WithField("day", day.Format(time.DateOnly)).
			Info("Eventos de visita do dia agregados com sucesso")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"days":     s.config.LookbackDays,
	}).Info("Rollup de visitantes concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente um rollup de visitantes
func (s *VisitorRollupSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rollup de visitantes já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rollup manual de visitantes")
	go s.runRollup()
}

// GetStatus retorna o status atual do agendador
func (s *VisitorRollupSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
