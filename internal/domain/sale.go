package domain

import "time"

// StoreSale é uma venda lançada pela loja (vendas_loja). RawCategory guarda o
// código bruto da categoria; a reconciliação para categoria lógica acontece
// no motor de métricas. O valor é informado pelo provedor de dados e não é
// validado aqui.
type StoreSale struct {
	ID          int       `json:"id"`
	StoreID     int       `json:"store_id"`
	RawCategory string    `json:"categoria"`
	Amount      float64   `json:"valor_venda"`
	Date        time.Time `json:"data_venda"`
}

// SumByCategory soma os valores das vendas que reconciliam para a categoria
// informada. Vendas com código desconhecido ficam de fora de todas as somas.
func SumByCategory(sales []*StoreSale, category Category) float64 {
	total := 0.0
	for _, sale := range sales {
		matched, ok := CategoryFromRawCode(sale.RawCategory)
		if !ok {
			continue
		}
		if matched == category {
			total += sale.Amount
		}
	}
	return total
}
