package dashboarding

import (
	"math"
	"time"

	"github.com/renezit0/goalflow-api/internal/domain"
)

// RemainingWorkingDays calcula o divisor de dias usado para diluir a meta:
// dias de calendário de hoje até o fim do período, inclusive, com piso de 1.
// Lojas da região centro não abrem aos domingos, então os domingos do
// intervalo saem da contagem, novamente com piso de 1. Hoje depois do fim do
// período não é erro: o piso segura o divisor em 1.
func RemainingWorkingDays(today, periodEnd time.Time, region string) int {
	days := int(math.Ceil(periodEnd.Sub(today).Hours()/24)) + 1
	if days < 1 {
		days = 1
	}

	if region == domain.RegionCentro {
		days -= CountSundays(today, periodEnd)
		if days < 1 {
			days = 1
		}
	}

	return days
}

// CountSundays conta os domingos entre duas datas, incluindo ambas.
func CountSundays(start, end time.Time) int {
	count := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if current.Weekday() == time.Sunday {
			count++
		}
	}

	return count
}
