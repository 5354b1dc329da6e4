package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário em reais com duas casas decimais e
// vírgula como separador, no mesmo formato exibido nos cards do dashboard.
func FormatBRL(f float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", f), ".", ",", 1)
}
