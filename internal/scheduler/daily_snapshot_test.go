package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/renezit0/goalflow-api/infrastructure/repository/mocks"
	"github.com/renezit0/goalflow-api/internal/domain"
	"github.com/renezit0/goalflow-api/internal/usecases/dashboarding"
	dashboardingmocks "github.com/renezit0/goalflow-api/internal/usecases/dashboarding/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestSnapshotService(
	ctrl *gomock.Controller,
	config DailySnapshotConfig,
) (*DailySnapshotService, *mocks.MockStoreRepository, *mocks.MockPeriodRepository, *mocks.MockMetricSnapshotRepository, *dashboardingmocks.MockDashboarder) {
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	periodRepo := mocks.NewMockPeriodRepository(ctrl)
	snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
	dashboardService := dashboardingmocks.NewMockDashboarder(ctrl)

	service := &DailySnapshotService{
		config:           config,
		storeRepo:        storeRepo,
		periodRepo:       periodRepo,
		snapshotRepo:     snapshotRepo,
		dashboardService: dashboardService,
	}

	return service, storeRepo, periodRepo, snapshotRepo, dashboardService
}

func storeMetricsFixture(date time.Time) *dashboarding.StoreMetrics {
	return &dashboarding.StoreMetrics{
		Date: date,
		Results: []*domain.MetricResult{
			{Category: domain.CategoryGeneral, Status: domain.StatusPending},
		},
	}
}

func TestDailySnapshotService_SnapshotAllStores(t *testing.T) {
	activePeriod := &domain.Period{ID: 7, Name: "Meta 03/2025", Active: true}
	referenceDate := time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		config DailySnapshotConfig
		setup  func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, snapshotRepo *mocks.MockMetricSnapshotRepository, dashboardService *dashboardingmocks.MockDashboarder)
	}{
		{
			name:   "Grava um snapshot por loja para o período ativo e limpa os antigos",
			config: DailySnapshotConfig{SyncEnabled: true, RetentionDays: 180},
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, snapshotRepo *mocks.MockMetricSnapshotRepository, dashboardService *dashboardingmocks.MockDashboarder) {
				periodRepo.EXPECT().GetActive().Return(activePeriod, nil)
				storeRepo.EXPECT().List().Return([]*domain.Store{
					{ID: 1, Name: "Loja Matriz", Region: "centro"},
					{ID: 2, Name: "Loja Batel", Region: "sul"},
				}, nil)

				dashboardService.EXPECT().GetStoreMetrics(1, 7, nil).Return(storeMetricsFixture(referenceDate), nil)
				dashboardService.EXPECT().GetStoreMetrics(2, 7, nil).Return(storeMetricsFixture(referenceDate), nil)

				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshot *domain.MetricSnapshot) error {
					assert.Equal(t, 7, snapshot.PeriodID)
					assert.Equal(t, referenceDate, snapshot.Date)
					assert.NotEmpty(t, snapshot.Metrics)
					return nil
				}).Times(2)

				snapshotRepo.EXPECT().DeleteOlderThan(180).Return(int64(3), nil)
			},
		},
		{
			name:   "Sem período ativo não grava nada",
			config: DailySnapshotConfig{SyncEnabled: true, RetentionDays: 180},
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, snapshotRepo *mocks.MockMetricSnapshotRepository, dashboardService *dashboardingmocks.MockDashboarder) {
				periodRepo.EXPECT().GetActive().Return(nil, nil)
			},
		},
		{
			name:   "Erro ao buscar o período ativo interrompe a rodada",
			config: DailySnapshotConfig{SyncEnabled: true},
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, snapshotRepo *mocks.MockMetricSnapshotRepository, dashboardService *dashboardingmocks.MockDashboarder) {
				periodRepo.EXPECT().GetActive().Return(nil, errors.New("conexão recusada"))
			},
		},
		{
			name:   "Erro em uma loja não impede o snapshot das demais",
			config: DailySnapshotConfig{SyncEnabled: true},
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, snapshotRepo *mocks.MockMetricSnapshotRepository, dashboardService *dashboardingmocks.MockDashboarder) {
				periodRepo.EXPECT().GetActive().Return(activePeriod, nil)
				storeRepo.EXPECT().List().Return([]*domain.Store{
					{ID: 1, Name: "Loja Matriz"},
					{ID: 2, Name: "Loja Batel"},
				}, nil)

				dashboardService.EXPECT().GetStoreMetrics(1, 7, nil).Return(nil, errors.New("timeout na consulta"))
				dashboardService.EXPECT().GetStoreMetrics(2, 7, nil).Return(storeMetricsFixture(referenceDate), nil)

				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Retenção zerada não dispara limpeza",
			config: DailySnapshotConfig{SyncEnabled: true, RetentionDays: 0},
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, snapshotRepo *mocks.MockMetricSnapshotRepository, dashboardService *dashboardingmocks.MockDashboarder) {
				periodRepo.EXPECT().GetActive().Return(activePeriod, nil)
				storeRepo.EXPECT().List().Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, storeRepo, periodRepo, snapshotRepo, dashboardService := newTestSnapshotService(ctrl, tt.config)
			tt.setup(storeRepo, periodRepo, snapshotRepo, dashboardService)

			service.snapshotAllStores()
		})
	}
}

func TestDailySnapshotService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newTestSnapshotService(ctrl, DailySnapshotConfig{
		SyncEnabled:   true,
		CronSchedule:  "50 23 * * *",
		RetentionDays: 180,
	})

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "50 23 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "", status["last_started_at"])
	assert.Equal(t, "", status["last_completed_at"])
}

func TestDailySnapshotService_ExecucaoConcorrenteIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newTestSnapshotService(ctrl, DailySnapshotConfig{SyncEnabled: true})

	// Simula uma rodada em andamento; a próxima invocação não toca nos repositórios
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	service.snapshotAllStores()
}
