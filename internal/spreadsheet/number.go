package spreadsheet

import (
	"math"
	"strconv"
	"strings"
)

// ParseLocaleNumber converte uma célula em número, aceitando o formato
// brasileiro com símbolo de moeda ("R$ 1.234.567,89" -> 1234567.89) e
// números simples ("3" -> 3). Devolve (0, false) quando a célula não é
// um número finito.
//
// Algoritmo: remove os pontos de milhar, troca vírgula decimal por
// ponto, descarta tudo que não for dígito, ponto ou sinal, e só então
// faz o parse.
func ParseLocaleNumber(cell string) (float64, bool) {
	cleaned := strings.TrimSpace(cell)
	if cleaned == "" {
		return 0, false
	}

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	var b strings.Builder
	for _, r := range cleaned {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned = b.String()
	if cleaned == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
