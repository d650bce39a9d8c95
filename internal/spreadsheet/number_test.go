package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocaleNumberBrazilianCurrency(t *testing.T) {
	n, ok := ParseLocaleNumber("R$ 1.234.567,89")
	assert.True(t, ok)
	assert.Equal(t, 1234567.89, n)
}

func TestParseLocaleNumberPlainInteger(t *testing.T) {
	n, ok := ParseLocaleNumber("3")
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)
}

func TestParseLocaleNumberDecimalComma(t *testing.T) {
	n, ok := ParseLocaleNumber("85,5")
	assert.True(t, ok)
	assert.Equal(t, 85.5, n)
}

func TestParseLocaleNumberThousandsDot(t *testing.T) {
	// Em formato brasileiro o ponto é separador de milhar.
	n, ok := ParseLocaleNumber("1.500")
	assert.True(t, ok)
	assert.Equal(t, 1500.0, n)
}

func TestParseLocaleNumberNegative(t *testing.T) {
	n, ok := ParseLocaleNumber("-2,5")
	assert.True(t, ok)
	assert.Equal(t, -2.5, n)
}

func TestParseLocaleNumberWithUnitSuffix(t *testing.T) {
	n, ok := ParseLocaleNumber("120 m²")
	assert.True(t, ok)
	assert.Equal(t, 120.0, n)

	n, ok = ParseLocaleNumber("2 vagas")
	assert.True(t, ok)
	assert.Equal(t, 2.0, n)
}

func TestParseLocaleNumberRejectsText(t *testing.T) {
	_, ok := ParseLocaleNumber("a consultar")
	assert.False(t, ok)

	_, ok = ParseLocaleNumber("")
	assert.False(t, ok)

	_, ok = ParseLocaleNumber("   ")
	assert.False(t, ok)

	_, ok = ParseLocaleNumber("---")
	assert.False(t, ok)
}
