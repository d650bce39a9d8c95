package spreadsheet

import (
	"errors"
	"strings"
)

// ErrNoHeader: nenhuma linha entre as primeiras pareceu um cabeçalho.
// Aborta a importação inteira; o operador precisa renomear as colunas
// da planilha para algo reconhecível.
var ErrNoHeader = errors.New("não foi possível identificar o cabeçalho da planilha: renomeie as colunas (ex: Unidade, Quartos, Área Privativa, Valor)")

// Quantas linhas do topo são candidatas a cabeçalho. Planilhas de
// construtora costumam ter logo, endereço e datas antes da tabela.
const headerScanLimit = 15

// Campos canônicos que a importação entende.
const (
	FieldUnit          = "unit"
	FieldStatus        = "status"
	FieldBedrooms      = "bedrooms"
	FieldParkingSpaces = "parkingSpaces"
	FieldPrivateArea   = "privateArea"
	FieldPrice         = "price"
)

// Dicionário de sinônimos por campo canônico. A comparação é feita
// sobre o texto normalizado (minúsculas, sem acento, sem espaços nas
// pontas) e aceita igualdade ou substring em qualquer direção.
var headerSynonyms = map[string][]string{
	FieldUnit:          {"unidade", "unid", "apto", "apartamento", "casa", "lote", "unit"},
	FieldStatus:        {"status", "situacao", "disponibilidade"},
	FieldBedrooms:      {"quartos", "dormitorios", "dorm", "qtos", "q", "suites"},
	FieldParkingSpaces: {"vagas", "vaga", "garagem"},
	FieldPrivateArea:   {"area privativa", "area priv", "area util", "metragem", "m2"},
	FieldPrice:         {"valor", "preco", "price", "tabela", "r$"},
}

var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "ê", "e", "è", "e",
	"í", "i", "î", "i",
	"ó", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "û", "u", "ü", "u",
	"ç", "c",
	"²", "2", "º", "", "°", "",
)

// normalizeCell prepara uma célula para o matching difuso.
func normalizeCell(cell string) string {
	return accentFold.Replace(strings.ToLower(strings.TrimSpace(cell)))
}

// cellMatchesField aplica o matching difuso de uma célula contra os
// sinônimos de um campo. Sinônimos de uma letra ("q") só casam por
// igualdade, senão viram substring de qualquer coisa.
func cellMatchesField(normalized, field string) bool {
	if normalized == "" {
		return false
	}
	for _, syn := range headerSynonyms[field] {
		if normalized == syn {
			return true
		}
		if len(syn) > 1 && (strings.Contains(normalized, syn) || strings.Contains(syn, normalized)) {
			return true
		}
	}
	return false
}

// scoreRow conta quantas células da linha parecem rótulos de colunas
// conhecidas. Cada célula pontua no máximo uma vez.
func scoreRow(row RawRow) int {
	score := 0
	for _, cell := range row {
		normalized := normalizeCell(cell)
		for field := range headerSynonyms {
			if cellMatchesField(normalized, field) {
				score++
				break
			}
		}
	}
	return score
}

// DetectHeader varre as primeiras linhas e devolve o índice da que mais
// parece um cabeçalho. Empate resolve para a linha mais alta. Score
// zero é um hard stop (ErrNoHeader), não um fallback.
func DetectHeader(rows []RawRow) (int, error) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	bestIndex := -1
	bestScore := 0
	for i := 0; i < limit; i++ {
		if score := scoreRow(rows[i]); score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex < 0 {
		return 0, ErrNoHeader
	}
	return bestIndex, nil
}

// BuildTable separa preâmbulo, cabeçalho e linhas de dados a partir do
// índice de cabeçalho detectado. Linhas totalmente em branco abaixo do
// cabeçalho são descartadas.
func BuildTable(rows []RawRow) (*Table, error) {
	headerIndex, err := DetectHeader(rows)
	if err != nil {
		return nil, err
	}

	var preamble []string
	for _, row := range rows[:headerIndex] {
		var cells []string
		for _, cell := range row {
			if trimmed := strings.TrimSpace(cell); trimmed != "" {
				cells = append(cells, trimmed)
			}
		}
		if len(cells) > 0 {
			preamble = append(preamble, strings.Join(cells, " | "))
		}
	}

	columns := make([]string, len(rows[headerIndex]))
	for i, cell := range rows[headerIndex] {
		columns[i] = strings.TrimSpace(cell)
	}

	var data []RawRow
	for _, row := range rows[headerIndex+1:] {
		if !row.Blank() {
			data = append(data, row)
		}
	}

	return &Table{
		Columns:  columns,
		Rows:     data,
		Preamble: strings.Join(preamble, "\n"),
	}, nil
}
