package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricResult_ToCard(t *testing.T) {
	result := &MetricResult{
		Category:      CategoryProfitable,
		TodaySales:    70,
		PeriodSales:   470.5,
		Target:        1000,
		DailyTarget:   60,
		MissingToday:  0,
		RemainingDays: 10,
		Status:        StatusExceeded,
	}

	card := result.ToCard()

	assert.Equal(t, "Rentáveis", card.Title)
	assert.Equal(t, "rentavel", card.Category)
	assert.Equal(t, "R$ 70,00", card.TodaySales)
	assert.Equal(t, "R$ 470,50", card.PeriodSales)
	assert.Equal(t, "R$ 1000,00", card.Target)
	assert.Equal(t, "R$ 60,00", card.DailyTarget)
	assert.Equal(t, "R$ 0,00", card.MissingToday)
	assert.Equal(t, 10, card.RemainingDays)
	assert.Equal(t, StatusExceeded, card.Status)
}
