package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreTarget_AmountForCategory(t *testing.T) {
	tests := []struct {
		name     string
		target   *StoreTarget
		category Category
		expected float64
	}{
		{
			name:     "Meta ausente degrada para zero",
			target:   nil,
			category: CategoryProfitable,
			expected: 0,
		},
		{
			name:     "Categoria geral usa a meta total da loja",
			target:   &StoreTarget{TotalAmount: 120000},
			category: CategoryGeneral,
			expected: 120000,
		},
		{
			name: "Categoria com meta direta",
			target: &StoreTarget{
				Categories: []*CategoryTarget{
					{RawCode: "r_mais", Amount: 40000},
				},
			},
			category: CategoryProfitable,
			expected: 40000,
		},
		{
			name: "Código sinônimo reconcilia para a mesma categoria",
			target: &StoreTarget{
				Categories: []*CategoryTarget{
					{RawCode: "rentaveis20", Amount: 25000},
				},
			},
			category: CategoryProfitable,
			expected: 25000,
		},
		{
			name: "Com mais de um código da mesma categoria vale o primeiro",
			target: &StoreTarget{
				Categories: []*CategoryTarget{
					{RawCode: "conveniencia", Amount: 5000},
					{RawCode: "conveniencia_r_mais", Amount: 8000},
				},
			},
			category: CategoryConvenience,
			expected: 5000,
		},
		{
			name: "Categoria sem meta cadastrada degrada para zero",
			target: &StoreTarget{
				TotalAmount: 120000,
				Categories: []*CategoryTarget{
					{RawCode: "r_mais", Amount: 40000},
				},
			},
			category: CategoryHealth,
			expected: 0,
		},
		{
			name: "Código desconhecido na meta é ignorado",
			target: &StoreTarget{
				Categories: []*CategoryTarget{
					{RawCode: "categoria_nova", Amount: 7000},
				},
			},
			category: CategoryPerfumery,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.target.AmountForCategory(tt.category))
		})
	}
}

func TestSumByCategory(t *testing.T) {
	sales := []*StoreSale{
		{RawCategory: "geral", Amount: 100},
		{RawCategory: "r_mais", Amount: 50},
		{RawCategory: "rentaveis25", Amount: 30},
		{RawCategory: "goodlife", Amount: 20},
		{RawCategory: "saude", Amount: 10},
		{RawCategory: "categoria_nova", Amount: 9999},
	}

	assert.Equal(t, 100.0, SumByCategory(sales, CategoryGeneral))
	assert.Equal(t, 80.0, SumByCategory(sales, CategoryProfitable))
	assert.Equal(t, 30.0, SumByCategory(sales, CategoryHealth))
	assert.Equal(t, 0.0, SumByCategory(sales, CategoryPerfumery))
	assert.Equal(t, 0.0, SumByCategory(nil, CategoryGeneral))
}
