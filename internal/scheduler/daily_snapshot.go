package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/renezit0/goalflow-api/infrastructure/repository"
	"github.com/renezit0/goalflow-api/internal/config"
	"github.com/renezit0/goalflow-api/internal/domain"
	"github.com/renezit0/goalflow-api/internal/usecases/dashboarding"
	"github.com/renezit0/goalflow-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// DailySnapshotConfig representa a configuração do agendador de snapshots de métricas
type DailySnapshotConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// DailySnapshotService grava, no fim de cada dia, uma fotografia das métricas
// de todas as lojas para o período ativo. O dashboard em si nunca depende dos
// snapshots; eles existem como histórico para relatórios.
type DailySnapshotService struct {
	scheduler           *gocron.Scheduler
	config              DailySnapshotConfig
	storeRepo           repository.StoreRepository
	periodRepo          repository.PeriodRepository
	snapshotRepo        repository.MetricSnapshotRepository
	dashboardService    dashboarding.Dashboarder
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailySnapshotService cria uma nova instância do serviço de snapshots diários
func NewDailySnapshotService(
	storeRepo repository.StoreRepository,
	periodRepo repository.PeriodRepository,
	snapshotRepo repository.MetricSnapshotRepository,
	dashboardService dashboarding.Dashboarder,
	appConfig *config.Config,
) *DailySnapshotService {
	// Criar a configuração com base na config global
	snapshotConfig := DailySnapshotConfig{
		CronSchedule:  appConfig.DailySnapshotSync.CronSchedule,
		RetentionDays: appConfig.DailySnapshotSync.RetentionDays,
		SyncEnabled:   appConfig.DailySnapshotSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  snapshotConfig.CronSchedule,
		"retention_days": snapshotConfig.RetentionDays,
		"sync_enabled":   snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots diários carregada")

	return &DailySnapshotService{
		scheduler:        scheduler,
		config:           snapshotConfig,
		storeRepo:        storeRepo,
		periodRepo:       periodRepo,
		snapshotRepo:     snapshotRepo,
		dashboardService: dashboardService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *DailySnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Gravação de snapshots diários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots diários de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.snapshotAllStores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots diários de métricas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots diários de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// snapshotAllStores calcula e grava as métricas de todas as lojas para o período ativo
func (s *DailySnapshotService) snapshotAllStores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Gravação de snapshots já em andamento, ignorando")
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

	logrus.Info("Iniciando gravação de snapshots de métricas para todas as lojas")

	period, err := s.periodRepo.GetActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar o período ativo para snapshots")
		return
	}
	if period == nil {
		logrus.Info("Nenhum período ativo encontrado, snapshots não gravados")
		return
	}

	stores, err := s.storeRepo.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de lojas para snapshots")
		return
	}

	successCount := 0
	errorCount := 0
	for _, store := range stores {
		if err := s.snapshotStore(store.ID, period.ID); err != nil {
			logrus.WithError(err).WithField("store_id", store.ID).Error("Erro ao gravar snapshot da loja")
			errorCount++
			continue
		}
		successCount++
	}

	// Limpar snapshots antigos conforme a retenção configurada
	if s.config.RetentionDays > 0 {
		removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao limpar snapshots antigos")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Snapshots antigos removidos")
		}
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"stores_ok":    successCount,
		"stores_error": errorCount,
		"duration":     time.Since(startTime).String(),
	}).Info("Gravação de snapshots de métricas concluída")
}

func (s *DailySnapshotService) snapshotStore(storeID, periodID int) error {
	metrics, err := s.dashboardService.GetStoreMetrics(storeID, periodID, nil)
	if err != nil {
		return err
	}

	logrus.Debugf("Snapshot calculado para loja %d: %s", storeID, utils.PrettyJson(metrics.Results))

	return s.snapshotRepo.SaveOrUpdate(&domain.MetricSnapshot{
		StoreID:  storeID,
		PeriodID: periodID,
		Date:     metrics.Date,
		Metrics:  metrics.Results,
	})
}

// TriggerManualSync dispara a gravação de snapshots fora do horário agendado
func (s *DailySnapshotService) TriggerManualSync() {
	go s.snapshotAllStores()
}

// GetStatus retorna o estado atual do agendador para o endpoint de cron
func (s *DailySnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.SyncEnabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.syncRunning,
		"last_started_at":   formatSyncTime(s.lastSyncStartedAt),
		"last_completed_at": formatSyncTime(s.lastSyncCompletedAt),
	}
}

func formatSyncTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
