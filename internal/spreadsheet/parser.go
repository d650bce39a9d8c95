package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var ErrEmptyWorkbook = errors.New("a planilha enviada está vazia")

// Parse lê um workbook .xlsx da memória, extrai a primeira aba com os
// valores crus das células e monta a Table (detecção de cabeçalho
// inclusa). Planilhas ilegíveis ou vazias são rejeitadas antes de
// qualquer escrita.
func Parse(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("não foi possível abrir a planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler a aba %q: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows := make([]RawRow, len(raw))
	for i, r := range raw {
		rows[i] = RawRow(r)
	}

	return BuildTable(rows)
}
