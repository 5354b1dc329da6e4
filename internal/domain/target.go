package domain

import "time"

// StoreTarget representa a meta de uma loja para um período (metas_loja),
// com a meta geral da loja e zero ou mais metas por categoria.
type StoreTarget struct {
	ID          int               `json:"id"`
	StoreID     int               `json:"store_id"`
	PeriodID    int               `json:"period_id"`
	TotalAmount float64           `json:"total_amount"`
	Categories  []*CategoryTarget `json:"categories"`
	CreatedAt   time.Time         `json:"created_at"`
}

// CategoryTarget é a meta de uma categoria dentro da meta da loja
// (metas_loja_categorias). RawCode é o código bruto gravado na tabela.
type CategoryTarget struct {
	ID      int     `json:"id"`
	RawCode string  `json:"categoria"`
	Amount  float64 `json:"meta_valor"`
}

// AmountForCategory resolve o valor da meta para uma categoria lógica.
// A categoria geral usa a meta total da loja; as demais procuram a primeira
// meta por categoria cujo código bruto reconcilia para a categoria pedida.
// Ausência de meta degrada para zero, nunca para erro.
func (t *StoreTarget) AmountForCategory(category Category) float64 {
	if t == nil {
		return 0
	}

	if category == CategoryGeneral {
		return t.TotalAmount
	}

	for _, ct := range t.Categories {
		if matched, ok := CategoryFromRawCode(ct.RawCode); ok && matched == category {
			return ct.Amount
		}
	}

	return 0
}
