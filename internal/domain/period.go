package domain

import "time"

// Period representa um período de metas definido pela gestão (periodos_meta).
// As datas são inclusivas e têm granularidade de dia; o período é imutável
// depois de selecionado pelo usuário.
type Period struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Active    bool      `json:"active"`
}

// Contains indica se a data informada cai dentro do período (inclusivo).
func (p *Period) Contains(date time.Time) bool {
	day := date.Format(time.DateOnly)
	return day >= p.StartDate.Format(time.DateOnly) && day <= p.EndDate.Format(time.DateOnly)
}
