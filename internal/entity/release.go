package entity

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Valores padrão aplicados durante a importação de planilhas quando a
// célula de origem está em branco ou ilegível.
const (
	DefaultUnitStatus    = "disponivel"
	ParkingToBeConfirmed = "a consultar"
)

// ParkingSpaces é número OU a string sentinela "a consultar".
// As planilhas das construtoras raramente preenchem vagas para todas as
// unidades, então a ausência é um valor de negócio, não um erro.
type ParkingSpaces struct {
	Count   float64
	Unknown bool
}

func KnownParking(count float64) ParkingSpaces {
	return ParkingSpaces{Count: count}
}

func UnknownParking() ParkingSpaces {
	return ParkingSpaces{Unknown: true}
}

func (p ParkingSpaces) MarshalJSON() ([]byte, error) {
	if p.Unknown {
		return json.Marshal(ParkingToBeConfirmed)
	}
	return json.Marshal(p.Count)
}

func (p *ParkingSpaces) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		p.Count = n
		p.Unknown = false
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	p.Unknown = true
	return nil
}

// Unit é uma unidade normalizada de um empreendimento. Source guarda a
// linha original da planilha para auditoria; imutável após a importação.
type Unit struct {
	Unit          string        `json:"unit"`
	Status        string        `json:"status"`
	Bedrooms      *float64      `json:"bedrooms,omitempty"`
	ParkingSpaces ParkingSpaces `json:"parking_spaces"`
	PrivateArea   *float64      `json:"private_area,omitempty"`
	Price         *float64      `json:"price,omitempty"`
	Source        []string      `json:"source"`
}

// Entidade: Release (empreendimento / lançamento)
type Release struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Builder     string    `json:"builder,omitempty"`
	City        string    `json:"city,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	Units       []Unit    `json:"units"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewRelease(name, builder, city, description string, units []Unit) (*Release, error) {
	r := &Release{
		ID:          uuid.New().String(),
		Name:        name,
		Builder:     builder,
		City:        city,
		Description: description,
		Units:       units,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Release) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if len(r.Units) == 0 {
		return errors.New("release must have at least one unit")
	}
	return nil
}
