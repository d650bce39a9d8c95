package spreadsheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

// ErrEmptyImport: nenhuma linha sobreviveu à normalização. Acontece
// quando a coluna mapeada para "unit" está em branco na planilha toda.
var ErrEmptyImport = errors.New("nenhuma unidade válida encontrada na planilha: confira o mapeamento da coluna de unidade")

// Mapping liga cada campo canônico ao rótulo da coluna de origem,
// escolhido pelo operador na tela de importação.
type Mapping struct {
	Unit          string `json:"unit"`
	Status        string `json:"status,omitempty"`
	Bedrooms      string `json:"bedrooms"`
	ParkingSpaces string `json:"parkingSpaces,omitempty"`
	PrivateArea   string `json:"privateArea"`
	Price         string `json:"price"`
}

// Validate garante que os campos obrigatórios foram mapeados antes de
// qualquer linha ser processada. status e parkingSpaces são opcionais
// e têm fallback definido.
func (m Mapping) Validate() error {
	var missing []string
	if m.Unit == "" {
		missing = append(missing, FieldUnit)
	}
	if m.Bedrooms == "" {
		missing = append(missing, FieldBedrooms)
	}
	if m.PrivateArea == "" {
		missing = append(missing, FieldPrivateArea)
	}
	if m.Price == "" {
		missing = append(missing, FieldPrice)
	}
	if len(missing) > 0 {
		return fmt.Errorf("mapeamento incompleto: faltam os campos %s", strings.Join(missing, ", "))
	}
	return nil
}

// Apply converte as linhas cruas em unidades normalizadas segundo o
// mapeamento. Linhas sem valor de unidade são descartadas; se nenhuma
// sobrar, a importação inteira falha com ErrEmptyImport.
func Apply(table *Table, mapping Mapping) ([]entity.Unit, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}

	var units []entity.Unit
	for _, row := range table.Rows {
		unitLabel := table.Cell(row, mapping.Unit)
		if unitLabel == "" {
			continue
		}

		unit := entity.Unit{
			Unit:          unitLabel,
			Status:        entity.DefaultUnitStatus,
			ParkingSpaces: entity.UnknownParking(),
			Source:        append([]string(nil), row...),
		}

		if mapping.Status != "" {
			if status := table.Cell(row, mapping.Status); status != "" {
				unit.Status = status
			}
		}
		if n, ok := ParseLocaleNumber(table.Cell(row, mapping.Bedrooms)); ok {
			unit.Bedrooms = &n
		}
		if mapping.ParkingSpaces != "" {
			if n, ok := ParseLocaleNumber(table.Cell(row, mapping.ParkingSpaces)); ok {
				unit.ParkingSpaces = entity.KnownParking(n)
			}
		}
		if n, ok := ParseLocaleNumber(table.Cell(row, mapping.PrivateArea)); ok {
			unit.PrivateArea = &n
		}
		if n, ok := ParseLocaleNumber(table.Cell(row, mapping.Price)); ok {
			unit.Price = &n
		}

		units = append(units, unit)
	}

	if len(units) == 0 {
		return nil, ErrEmptyImport
	}
	return units, nil
}
