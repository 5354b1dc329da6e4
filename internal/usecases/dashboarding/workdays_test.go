package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRemainingWorkingDays(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		periodEnd time.Time
		region    string
		expected  int
	}{
		{
			name:      "Mês inteiro pela frente sem exclusão de domingos",
			today:     date(2025, 1, 1),
			periodEnd: date(2025, 1, 31),
			region:    "sul",
			expected:  31,
		},
		{
			name:      "Mês inteiro pela frente na região centro exclui os 4 domingos de janeiro",
			today:     date(2025, 1, 1),
			periodEnd: date(2025, 1, 31),
			region:    "centro",
			expected:  27,
		},
		{
			name:      "Meio do período conta hoje e o fim, inclusivos",
			today:     date(2025, 1, 15),
			periodEnd: date(2025, 1, 31),
			region:    "norte",
			expected:  17,
		},
		{
			name:      "Meio do período na região centro desconta os domingos restantes",
			today:     date(2025, 1, 15),
			periodEnd: date(2025, 1, 31),
			region:    "centro",
			expected:  15, // domingos 19 e 26 fora da contagem
		},
		{
			name:      "Último dia do período vale 1",
			today:     date(2025, 1, 31),
			periodEnd: date(2025, 1, 31),
			region:    "sul",
			expected:  1,
		},
		{
			name:      "Hoje depois do fim do período segura no piso de 1",
			today:     date(2025, 2, 2),
			periodEnd: date(2025, 1, 31),
			region:    "sul",
			expected:  1,
		},
		{
			name:      "Hoje depois do fim do período na região centro também segura no piso",
			today:     date(2025, 2, 9),
			periodEnd: date(2025, 1, 31),
			region:    "centro",
			expected:  1,
		},
		{
			name:      "Período de um único domingo na região centro não zera o divisor",
			today:     date(2025, 1, 5),
			periodEnd: date(2025, 1, 5),
			region:    "centro",
			expected:  1,
		},
		{
			name:      "Região vazia não exclui domingos",
			today:     date(2025, 1, 1),
			periodEnd: date(2025, 1, 31),
			region:    "",
			expected:  31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RemainingWorkingDays(tt.today, tt.periodEnd, tt.region)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRemainingWorkingDays_HorarioIntermediario(t *testing.T) {
	// A data de referência normalmente chega à meia-noite, mas um horário no
	// meio do dia não pode mudar a contagem por causa do arredondamento para cima
	middayToday := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

	result := RemainingWorkingDays(middayToday, date(2025, 1, 31), "sul")
	assert.Equal(t, 17, result)
}

func TestCountSundays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "Janeiro de 2025 tem 4 domingos",
			start:    date(2025, 1, 1),
			end:      date(2025, 1, 31),
			expected: 4,
		},
		{
			name:     "Intervalo começando em domingo conta o próprio dia",
			start:    date(2025, 1, 5),
			end:      date(2025, 1, 11),
			expected: 1,
		},
		{
			name:     "Intervalo sem domingos",
			start:    date(2025, 1, 6),
			end:      date(2025, 1, 11),
			expected: 0,
		},
		{
			name:     "Intervalo invertido não conta nada",
			start:    date(2025, 1, 31),
			end:      date(2025, 1, 1),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSundays(tt.start, tt.end))
		})
	}
}
