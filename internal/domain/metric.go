package domain

import (
	"github.com/renezit0/goalflow-api/pkg/utils"
)

type MetricStatus string

// Status do card em relação à meta diária. Recalculado a cada consulta,
// nunca persistido junto com as vendas.
const (
	StatusPending  MetricStatus = "pendente"
	StatusReached  MetricStatus = "atingido"
	StatusExceeded MetricStatus = "acima"
)

// MetricResult é o resultado numérico do motor de métricas para uma categoria.
// Valores monetários com precisão de centavos; a formatação em reais acontece
// apenas na borda HTTP (ver MetricCard).
type MetricResult struct {
	Category      Category     `json:"-"`
	TodaySales    float64      `json:"today_sales"`
	PeriodSales   float64      `json:"period_sales"`
	Target        float64      `json:"target"`
	DailyTarget   float64      `json:"daily_target"`
	MissingToday  float64      `json:"missing_today"`
	RemainingDays int          `json:"remaining_days"`
	Status        MetricStatus `json:"status"`
}

// MetricCard é a representação do card enviada ao frontend, com os valores
// monetários já formatados em reais (vírgula como separador decimal).
type MetricCard struct {
	Title         string       `json:"title"`
	TodaySales    string       `json:"todaySales"`
	PeriodSales   string       `json:"periodSales"`
	Target        string       `json:"target"`
	DailyTarget   string       `json:"dailyTarget"`
	MissingToday  string       `json:"missingToday"`
	RemainingDays int          `json:"remainingDays"`
	Category      string       `json:"category"`
	Status        MetricStatus `json:"status"`
}

// ToCard converte o resultado numérico no card formatado para exibição.
func (m *MetricResult) ToCard() *MetricCard {
	return &MetricCard{
		Title:         m.Category.Label(),
		TodaySales:    utils.FormatBRL(m.TodaySales),
		PeriodSales:   utils.FormatBRL(m.PeriodSales),
		Target:        utils.FormatBRL(m.Target),
		DailyTarget:   utils.FormatBRL(m.DailyTarget),
		MissingToday:  utils.FormatBRL(m.MissingToday),
		RemainingDays: m.RemainingDays,
		Category:      m.Category.Slug(),
		Status:        m.Status,
	}
}

// DashboardResponse é a resposta completa do endpoint de dashboard.
type DashboardResponse struct {
	StoreID  int           `json:"store_id"`
	PeriodID int           `json:"period_id"`
	Date     string        `json:"date"` // Data de referência no formato yyyy-mm-dd
	Metrics  []*MetricCard `json:"metrics"`
}
