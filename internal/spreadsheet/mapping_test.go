package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

func TestMappingValidateRequiresCoreFields(t *testing.T) {
	err := Mapping{}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unit")
	assert.Contains(t, err.Error(), "bedrooms")
	assert.Contains(t, err.Error(), "privateArea")
	assert.Contains(t, err.Error(), "price")

	err = Mapping{
		Unit:        "Unidade",
		Bedrooms:    "Quartos",
		PrivateArea: "Área Privativa",
		Price:       "Valor",
	}.Validate()
	assert.NoError(t, err)
}

func TestApplyNormalizesRows(t *testing.T) {
	table := &Table{
		Columns: []string{"Unidade", "Status", "Quartos", "Vagas", "Área Privativa", "Valor"},
		Rows: []RawRow{
			{"101", "Reservado", "2", "1", "65,5", "R$ 450.000,00"},
			{"102", "", "3", "", "85,5", "520.000"},
		},
	}

	units, err := Apply(table, Mapping{
		Unit:          "Unidade",
		Status:        "Status",
		Bedrooms:      "Quartos",
		ParkingSpaces: "Vagas",
		PrivateArea:   "Área Privativa",
		Price:         "Valor",
	})
	assert.NoError(t, err)
	assert.Len(t, units, 2)

	first := units[0]
	assert.Equal(t, "101", first.Unit)
	assert.Equal(t, "Reservado", first.Status)
	assert.Equal(t, 2.0, *first.Bedrooms)
	assert.False(t, first.ParkingSpaces.Unknown)
	assert.Equal(t, 1.0, first.ParkingSpaces.Count)
	assert.Equal(t, 65.5, *first.PrivateArea)
	assert.Equal(t, 450000.0, *first.Price)
	assert.Equal(t, []string{"101", "Reservado", "2", "1", "65,5", "R$ 450.000,00"}, first.Source)

	// Status em branco cai no padrão; vaga em branco vira sentinela.
	second := units[1]
	assert.Equal(t, entity.DefaultUnitStatus, second.Status)
	assert.True(t, second.ParkingSpaces.Unknown)
}

func TestApplyUnmappedOptionalColumns(t *testing.T) {
	table := &Table{
		Columns: []string{"Unidade", "Quartos", "Área Privativa", "Valor"},
		Rows: []RawRow{
			{"201", "2", "70", "390.000"},
		},
	}

	units, err := Apply(table, Mapping{
		Unit:        "Unidade",
		Bedrooms:    "Quartos",
		PrivateArea: "Área Privativa",
		Price:       "Valor",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.DefaultUnitStatus, units[0].Status)
	assert.True(t, units[0].ParkingSpaces.Unknown)
}

func TestApplyNonNumericCellBecomesNil(t *testing.T) {
	// Operador mapeou price para a coluna errada: a célula não é número,
	// então o campo fica ausente em vez de zero fantasma.
	table := &Table{
		Columns: []string{"Unidade", "Status", "Quartos", "Área Privativa", "Valor"},
		Rows: []RawRow{
			{"301", "Disponível", "2", "80", "420.000"},
		},
	}

	units, err := Apply(table, Mapping{
		Unit:        "Unidade",
		Bedrooms:    "Quartos",
		PrivateArea: "Área Privativa",
		Price:       "Status",
	})
	assert.NoError(t, err)
	assert.Nil(t, units[0].Price)
}

func TestApplySkipsRowsWithoutUnit(t *testing.T) {
	table := &Table{
		Columns: []string{"Unidade", "Quartos", "Área Privativa", "Valor"},
		Rows: []RawRow{
			{"", "2", "70", "390.000"},
			{"102", "3", "85", "450.000"},
			{"  ", "1", "50", "300.000"},
		},
	}

	units, err := Apply(table, Mapping{
		Unit:        "Unidade",
		Bedrooms:    "Quartos",
		PrivateArea: "Área Privativa",
		Price:       "Valor",
	})
	assert.NoError(t, err)
	assert.Len(t, units, 1)
	assert.Equal(t, "102", units[0].Unit)
}

func TestApplyAllRowsWithoutUnitFailsImport(t *testing.T) {
	table := &Table{
		Columns: []string{"Unidade", "Quartos", "Área Privativa", "Valor"},
		Rows: []RawRow{
			{"", "2", "70", "390.000"},
			{"", "3", "85", "450.000"},
		},
	}

	_, err := Apply(table, Mapping{
		Unit:        "Unidade",
		Bedrooms:    "Quartos",
		PrivateArea: "Área Privativa",
		Price:       "Valor",
	})
	assert.ErrorIs(t, err, ErrEmptyImport)
}
