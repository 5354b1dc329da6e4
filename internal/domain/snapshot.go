package domain

import "time"

// MetricSnapshot é a fotografia diária das métricas de uma loja, gravada pelo
// agendador no fim do dia (metricas_snapshot). Serve de histórico: o motor de
// métricas em si nunca lê snapshots.
type MetricSnapshot struct {
	ID        string          `json:"id"`
	StoreID   int             `json:"store_id"`
	PeriodID  int             `json:"period_id"`
	Date      time.Time       `json:"date"`
	Metrics   []*MetricResult `json:"metrics"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
