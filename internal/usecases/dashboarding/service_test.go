package dashboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/renezit0/goalflow-api/infrastructure/repository/mocks"
	"github.com/renezit0/goalflow-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockStoreRepository,
	*mocks.MockPeriodRepository,
	*mocks.MockStoreTargetRepository,
	*mocks.MockStoreSaleRepository,
) {
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	periodRepo := mocks.NewMockPeriodRepository(ctrl)
	targetRepo := mocks.NewMockStoreTargetRepository(ctrl)
	saleRepo := mocks.NewMockStoreSaleRepository(ctrl)

	service := &Service{
		storeRepo:  storeRepo,
		periodRepo: periodRepo,
		targetRepo: targetRepo,
		saleRepo:   saleRepo,
		location:   time.UTC,
	}

	return service, storeRepo, periodRepo, targetRepo, saleRepo
}

func TestService_GetStoreMetrics(t *testing.T) {
	refDate := date(2025, 3, 22)
	period := testPeriod()
	store := testStore("sul")

	tests := []struct {
		name     string
		setup    func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, targetRepo *mocks.MockStoreTargetRepository, saleRepo *mocks.MockStoreSaleRepository)
		validate func(t *testing.T, result *StoreMetrics, err error)
	}{
		{
			name: "Loja inexistente retorna erro de loja não encontrada",
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, targetRepo *mocks.MockStoreTargetRepository, saleRepo *mocks.MockStoreSaleRepository) {
				storeRepo.EXPECT().GetByID(10).Return(nil, nil)
			},
			validate: func(t *testing.T, result *StoreMetrics, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrStoreNotFound)
			},
		},
		{
			name: "Período inexistente retorna erro de período não encontrado",
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, targetRepo *mocks.MockStoreTargetRepository, saleRepo *mocks.MockStoreSaleRepository) {
				storeRepo.EXPECT().GetByID(10).Return(store, nil)
				periodRepo.EXPECT().GetByID(1).Return(nil, nil)
			},
			validate: func(t *testing.T, result *StoreMetrics, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrPeriodNotFound)
			},
		},
		{
			name: "Erro do banco na busca da loja é propagado",
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, targetRepo *mocks.MockStoreTargetRepository, saleRepo *mocks.MockStoreSaleRepository) {
				storeRepo.EXPECT().GetByID(10).Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *StoreMetrics, err error) {
				assert.Nil(t, result)
				assert.EqualError(t, err, "conexão recusada")
			},
		},
		{
			name: "Erro em uma das consultas de vendas é propagado",
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, targetRepo *mocks.MockStoreTargetRepository, saleRepo *mocks.MockStoreSaleRepository) {
				storeRepo.EXPECT().GetByID(10).Return(store, nil)
				periodRepo.EXPECT().GetByID(1).Return(period, nil)
				targetRepo.EXPECT().ListByStoreAndPeriod(10, 1).Return(nil, nil)
				saleRepo.EXPECT().ListByStoreAndDateRange(10, gomock.Any(), gomock.Any()).Return(nil, nil)
				saleRepo.EXPECT().ListByStoreAndDateRange(10, gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout na consulta"))
				saleRepo.EXPECT().ListByStoreAndDate(10, gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *StoreMetrics, err error) {
				assert.Nil(t, result)
				assert.EqualError(t, err, "timeout na consulta")
			},
		},
		{
			name: "Caminho feliz calcula as métricas com a data de referência normalizada",
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, targetRepo *mocks.MockStoreTargetRepository, saleRepo *mocks.MockStoreSaleRepository) {
				storeRepo.EXPECT().GetByID(10).Return(store, nil)
				periodRepo.EXPECT().GetByID(1).Return(period, nil)
				targetRepo.EXPECT().ListByStoreAndPeriod(10, 1).Return([]*domain.StoreTarget{
					{ID: 1, TotalAmount: 120000, Categories: []*domain.CategoryTarget{
						{RawCode: "r_mais", Amount: 1000},
					}},
				}, nil)
				saleRepo.EXPECT().
					ListByStoreAndDateRange(10, period.StartDate, period.EndDate).
					Return([]*domain.StoreSale{sale("r_mais", 470)}, nil)
				saleRepo.EXPECT().
					ListByStoreAndDateRange(10, period.StartDate, date(2025, 3, 21)).
					Return([]*domain.StoreSale{sale("r_mais", 400)}, nil)
				saleRepo.EXPECT().
					ListByStoreAndDate(10, date(2025, 3, 22)).
					Return([]*domain.StoreSale{sale("r_mais", 70)}, nil)
			},
			validate: func(t *testing.T, result *StoreMetrics, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, date(2025, 3, 22), result.Date)
				assert.Len(t, result.Results, 5)

				r := resultFor(t, result.Results, domain.CategoryProfitable)
				assert.Equal(t, 60.0, r.DailyTarget)
				assert.Equal(t, domain.StatusExceeded, r.Status)
			},
		},
		{
			name: "Com mais de uma meta cadastrada vale a primeira na ordem de criação",
			setup: func(storeRepo *mocks.MockStoreRepository, periodRepo *mocks.MockPeriodRepository, targetRepo *mocks.MockStoreTargetRepository, saleRepo *mocks.MockStoreSaleRepository) {
				storeRepo.EXPECT().GetByID(10).Return(store, nil)
				periodRepo.EXPECT().GetByID(1).Return(period, nil)
				targetRepo.EXPECT().ListByStoreAndPeriod(10, 1).Return([]*domain.StoreTarget{
					{ID: 1, TotalAmount: 100000},
					{ID: 2, TotalAmount: 999999},
				}, nil)
				saleRepo.EXPECT().ListByStoreAndDateRange(10, gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
				saleRepo.EXPECT().ListByStoreAndDate(10, gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *StoreMetrics, err error) {
				assert.NoError(t, err)
				r := resultFor(t, result.Results, domain.CategoryGeneral)
				assert.Equal(t, 100000.0, r.Target)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, storeRepo, periodRepo, targetRepo, saleRepo := newTestService(ctrl)
			tt.setup(storeRepo, periodRepo, targetRepo, saleRepo)

			result, err := service.GetStoreMetrics(10, 1, &refDate)
			tt.validate(t, result, err)
		})
	}
}

func TestService_ReferenceDate(t *testing.T) {
	location, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	service := &Service{location: location}

	t.Run("Data explícita é tratada como data de calendário, sem conversão de fuso", func(t *testing.T) {
		// Uma data UTC convertida para São Paulo cairia no dia anterior;
		// a data explícita precisa permanecer no mesmo dia
		explicit := time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC)

		result := service.referenceDate(&explicit)

		assert.Equal(t, 2025, result.Year())
		assert.Equal(t, time.March, result.Month())
		assert.Equal(t, 22, result.Day())
		assert.Equal(t, location, result.Location())
		assert.Equal(t, 0, result.Hour())
	})

	t.Run("Sem data explícita usa a data atual normalizada para meia-noite", func(t *testing.T) {
		result := service.referenceDate(nil)

		now := time.Now().In(location)
		assert.Equal(t, now.Day(), result.Day())
		assert.Equal(t, 0, result.Hour())
		assert.Equal(t, 0, result.Minute())
	})
}
