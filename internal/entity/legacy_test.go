package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatusResolvesLegacySpellings(t *testing.T) {
	assert.Equal(t, StatusContatado, CanonicalStatus("Contactado"))
	assert.Equal(t, StatusContatado, CanonicalStatus("contacted"))
	assert.Equal(t, StatusNovo, CanonicalStatus("novo lead"))
	assert.Equal(t, StatusGanho, CanonicalStatus("fechado"))
	assert.Equal(t, StatusPerdido, CanonicalStatus("descartado"))
}

func TestCanonicalStatusIgnoresCaseAndSpaces(t *testing.T) {
	assert.Equal(t, StatusQualificado, CanonicalStatus("  QUALIFICADO "))
}

func TestCanonicalStatusPreservesUnknownValues(t *testing.T) {
	assert.Equal(t, "Em negociação", CanonicalStatus("Em negociação"))
}

func TestCanonicalSourceResolvesLegacySpellings(t *testing.T) {
	assert.Equal(t, "whatsapp", CanonicalSource("zap"))
	assert.Equal(t, "website", CanonicalSource("Site"))
	assert.Equal(t, "portal", CanonicalSource("olx"))
	assert.Equal(t, "indicação", CanonicalSource("indicacao"))
}

func TestCanonicalSourcePreservesUnknownValues(t *testing.T) {
	assert.Equal(t, "feira de imóveis", CanonicalSource("feira de imóveis"))
}
