package entity

import "strings"

// Tabela única de migração de valores legados -> canônicos.
// Bancos antigos gravaram status e origens com grafias variadas
// ("Contactado", "novo lead", "indicacao"). A normalização acontece
// UMA vez, na borda de leitura do repositório, nunca dentro de query.
//
// Versão da tabela: v2 (v1 só cobria status; v2 inclui source).
const LegacyTableVersion = 2

var legacyStatus = map[string]string{
	"novo":        StatusNovo,
	"novo lead":   StatusNovo,
	"new":         StatusNovo,
	"contatado":   StatusContatado,
	"contactado":  StatusContatado,
	"contacted":   StatusContatado,
	"qualificado": StatusQualificado,
	"qualified":   StatusQualificado,
	"ganho":       StatusGanho,
	"won":         StatusGanho,
	"fechado":     StatusGanho,
	"perdido":     StatusPerdido,
	"lost":        StatusPerdido,
	"descartado":  StatusPerdido,
}

var legacySource = map[string]string{
	"site":        "website",
	"website":     "website",
	"indicacao":   "indicação",
	"indicação":   "indicação",
	"whats":       "whatsapp",
	"whatsapp":    "whatsapp",
	"zap":         "whatsapp",
	"portal":      "portal",
	"olx":         "portal",
	"zap imoveis": "portal",
}

// CanonicalStatus resolve um status possivelmente legado para o valor
// canônico. Valores desconhecidos passam intocados: melhor preservar o
// dado do que inventar um status.
func CanonicalStatus(raw string) string {
	if canonical, ok := legacyStatus[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return raw
}

// CanonicalSource resolve uma origem possivelmente legada.
func CanonicalSource(raw string) string {
	if canonical, ok := legacySource[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return raw
}
