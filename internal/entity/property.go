package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entidade: Property (imóvel avulso, fora de empreendimento)
type Property struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	City        string   `json:"city"`
	District    string   `json:"district,omitempty"`
	Type        string   `json:"type"` // apartamento, casa, terreno, comercial
	Bedrooms    int      `json:"bedrooms,omitempty"`
	Area        float64  `json:"area,omitempty"`
	PriceCents  int64    `json:"price_cents"`
	Status      string   `json:"status"` // disponivel, reservado, vendido
	ImageURLs   []string `json:"image_urls,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProperty(title, city, propertyType string, priceCents int64) (*Property, error) {
	p := &Property{
		ID:         uuid.New().String(),
		Title:      title,
		City:       city,
		Type:       propertyType,
		PriceCents: priceCents,
		Status:     "disponivel",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Property) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.City == "" {
		return errors.New("city is required")
	}
	if p.PriceCents < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}
