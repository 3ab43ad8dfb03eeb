package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais (centavos).
// Usa math.Round, ou seja, metade para longe de zero: 0.125 -> 0.13 e
// -0.125 -> -0.13. Todo arredondamento de bid passa por aqui para manter os
// resultados reproduzíveis.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
