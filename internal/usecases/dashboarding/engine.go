package dashboarding

import (
	"math"
	"time"

	"github.com/renezit0/goalflow-api/internal/domain"
)

// EngineInput é a fotografia de dados que o motor de métricas consome. Todos
// os conjuntos são carregados pelo chamador antes da invocação; o motor não
// faz I/O, não guarda estado e não lê relógio — a data de referência vem em
// Today.
type EngineInput struct {
	Store              *domain.Store
	Period             *domain.Period
	Target             *domain.StoreTarget // Primeira meta do período; nil degrada para metas zero
	PeriodSales        []*domain.StoreSale
	SalesUpToYesterday []*domain.StoreSale
	TodaySales         []*domain.StoreSale
	Today              time.Time
}

// ComputeMetrics deriva as métricas das 5 categorias na ordem fixa dos cards.
// Função pura: entradas idênticas produzem sempre a mesma sequência de 5
// resultados, mesmo com todos os conjuntos vazios.
func ComputeMetrics(input EngineInput) []*domain.MetricResult {
	region := ""
	if input.Store != nil {
		region = input.Store.Region
	}

	remainingDays := RemainingWorkingDays(input.Today, input.Period.EndDate, region)

	results := make([]*domain.MetricResult, 0, len(domain.AllCategories))
	for _, category := range domain.AllCategories {
		target := input.Target.AmountForCategory(category)
		soldPeriod := domain.SumByCategory(input.PeriodSales, category)
		soldUpToYesterday := domain.SumByCategory(input.SalesUpToYesterday, category)
		soldToday := domain.SumByCategory(input.TodaySales, category)

		// A meta diária redistribui o que faltava até ontem pelos dias
		// restantes. As vendas de hoje nunca reduzem a meta diária de hoje,
		// apenas a recalculada amanhã. Meta já batida até ontem zera a cota,
		// independente dos dias restantes.
		missingUpToYesterday := math.Max(0, target-soldUpToYesterday)
		dailyTarget := 0.0
		if missingUpToYesterday > 0 {
			dailyTarget = missingUpToYesterday / float64(remainingDays)
		}

		missingToday := math.Max(0, dailyTarget-soldToday)

		// Meta diária zerada nunca é "atingida" nem "superada", mesmo com
		// vendas no dia.
		status := domain.StatusPending
		if dailyTarget > 0 && soldToday >= dailyTarget {
			if soldToday > dailyTarget {
				status = domain.StatusExceeded
			} else {
				status = domain.StatusReached
			}
		}

		results = append(results, &domain.MetricResult{
			Category:      category,
			TodaySales:    soldToday,
			PeriodSales:   soldPeriod,
			Target:        target,
			DailyTarget:   dailyTarget,
			MissingToday:  missingToday,
			RemainingDays: remainingDays,
			Status:        status,
		})
	}

	return results
}
