package spreadsheet

import "strings"

// RawRow é uma linha crua da planilha, alinhada posicionalmente às
// colunas do cabeçalho detectado. Nunca é persistida sozinha: vira o
// campo Source da unidade normalizada.
type RawRow []string

// Blank reporta se todas as células estão vazias após trim.
func (r RawRow) Blank() bool {
	for _, cell := range r {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Table é o resultado da ingestão: cabeçalho, linhas de dados e o texto
// livre que veio acima do cabeçalho (nome do empreendimento, endereço,
// observações da construtora).
type Table struct {
	Columns  []string
	Rows     []RawRow
	Preamble string
}

// Cell devolve o valor da linha na coluna com o rótulo dado, ou ""
// quando o rótulo não existe ou a linha é mais curta que o cabeçalho.
func (t *Table) Cell(row RawRow, column string) string {
	for i, label := range t.Columns {
		if label == column {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
	}
	return ""
}

// RowMap projeta uma linha como mapa rótulo -> célula, no formato que o
// front espera para montar a tela de mapeamento de colunas.
func (t *Table) RowMap(row RawRow) map[string]string {
	m := make(map[string]string, len(t.Columns))
	for i, label := range t.Columns {
		if i < len(row) {
			m[label] = strings.TrimSpace(row[i])
		} else {
			m[label] = ""
		}
	}
	return m
}
