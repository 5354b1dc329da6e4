package dashboarding

import (
	"time"

	"github.com/renezit0/goalflow-api/internal/domain"
)

// Dashboarder define a interface do serviço de métricas do dashboard
type Dashboarder interface {
	// GetStoreMetrics calcula as métricas das 5 categorias para uma loja em um
	// período. refDate substitui a data de referência ("hoje"); nil usa a data
	// atual no fuso configurado.
	GetStoreMetrics(storeID, periodID int, refDate *time.Time) (*StoreMetrics, error)
}

// StoreMetrics agrupa o resultado do motor com o contexto usado no cálculo.
type StoreMetrics struct {
	Store   *domain.Store
	Period  *domain.Period
	Date    time.Time
	Results []*domain.MetricResult
}
