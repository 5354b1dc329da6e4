package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.567))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.564))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.333))
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{70, "R$ 70,00"},
		{470.5, "R$ 470,50"},
		{1234.567, "R$ 1234,57"},
		{-15.9, "R$ -15,90"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBRL(tt.value))
	}
}
