package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "já arredondado", input: 0.55, expected: 0.55},
		{name: "terceira casa para cima", input: 0.555, expected: 0.56},
		{name: "terceira casa para baixo", input: 0.554, expected: 0.55},
		{name: "metade arredonda para longe de zero", input: 0.125, expected: 0.13},
		{name: "negativo metade para longe de zero", input: -0.125, expected: -0.13},
		{name: "resíduo de ponto flutuante", input: 0.1 + 0.2, expected: 0.3},
		{name: "bid com delta percentual", input: 0.50 + 0.50*10/100, expected: 0.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundWithTwoDecimalPlace(tt.input), 1e-9)
		})
	}
}
