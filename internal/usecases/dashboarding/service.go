package dashboarding

import (
	"errors"
	"sync"
	"time"

	"github.com/renezit0/goalflow-api/infrastructure/repository"
	"github.com/renezit0/goalflow-api/internal/config"
	"github.com/renezit0/goalflow-api/internal/domain"
	"github.com/renezit0/goalflow-api/pkg/log"
)

var (
	ErrStoreNotFound  = errors.New("loja não encontrada")
	ErrPeriodNotFound = errors.New("período não encontrado")
)

// Service implementa Dashboarder buscando os dados no banco e delegando o
// cálculo ao motor puro (ComputeMetrics).
type Service struct {
	storeRepo  repository.StoreRepository
	periodRepo repository.PeriodRepository
	targetRepo repository.StoreTargetRepository
	saleRepo   repository.StoreSaleRepository
	location   *time.Location
}

// NewService cria o serviço de dashboard. O fuso horário vem da configuração:
// toda comparação de datas acontece nesse fuso, nunca no fuso do sistema.
func NewService(
	cfg *config.Config,
	storeRepo repository.StoreRepository,
	periodRepo repository.PeriodRepository,
	targetRepo repository.StoreTargetRepository,
	saleRepo repository.StoreSaleRepository,
) (Dashboarder, error) {
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}

	return &Service{
		storeRepo:  storeRepo,
		periodRepo: periodRepo,
		targetRepo: targetRepo,
		saleRepo:   saleRepo,
		location:   location,
	}, nil
}

func (s *Service) GetStoreMetrics(storeID, periodID int, refDate *time.Time) (*StoreMetrics, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	period, err := s.periodRepo.GetByID(periodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	today := s.referenceDate(refDate)
	yesterday := today.AddDate(0, 0, -1)

	// As quatro consultas são independentes entre si; buscamos em paralelo e
	// só invocamos o motor com todas resolvidas.
	var (
		targets            []*domain.StoreTarget
		periodSales        []*domain.StoreSale
		salesUpToYesterday []*domain.StoreSale
		todaySales         []*domain.StoreSale

		targetsErr, periodSalesErr, yesterdayErr, todayErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		targets, targetsErr = s.targetRepo.ListByStoreAndPeriod(storeID, periodID)
	}()

	go func() {
		defer wg.Done()
		periodSales, periodSalesErr = s.saleRepo.ListByStoreAndDateRange(storeID, period.StartDate, period.EndDate)
	}()

	go func() {
		defer wg.Done()
		salesUpToYesterday, yesterdayErr = s.saleRepo.ListByStoreAndDateRange(storeID, period.StartDate, yesterday)
	}()

	go func() {
		defer wg.Done()
		todaySales, todayErr = s.saleRepo.ListByStoreAndDate(storeID, today)
	}()

	wg.Wait()

	for _, err := range []error{targetsErr, periodSalesErr, yesterdayErr, todayErr} {
		if err != nil {
			return nil, err
		}
	}

	// Política explícita: havendo mais de uma meta cadastrada para o mesmo
	// (loja, período), vale a primeira na ordem de criação.
	var target *domain.StoreTarget
	if len(targets) > 0 {
		target = targets[0]
	}
	if len(targets) > 1 {
		log.L.WithFields(log.Fields{
			"store_id":  storeID,
			"period_id": periodID,
			"targets":   len(targets),
		}).Debug("dashboard: múltiplas metas para o período, usando a primeira")
	}

	results := ComputeMetrics(EngineInput{
		Store:              store,
		Period:             period,
		Target:             target,
		PeriodSales:        periodSales,
		SalesUpToYesterday: salesUpToYesterday,
		TodaySales:         todaySales,
		Today:              today,
	})

	return &StoreMetrics{
		Store:   store,
		Period:  period,
		Date:    today,
		Results: results,
	}, nil
}

// referenceDate normaliza a data de referência para meia-noite no fuso
// configurado. O motor nunca lê o relógio; a data é resolvida aqui, uma única
// vez por invocação.
func (s *Service) referenceDate(refDate *time.Time) time.Time {
	if refDate != nil && !refDate.IsZero() {
		// Data explícita é tratada como data de calendário, sem conversão de fuso
		return time.Date(refDate.Year(), refDate.Month(), refDate.Day(), 0, 0, 0, 0, s.location)
	}

	now := time.Now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}
