package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status canônicos do funil. Ganho e Perdido são terminais:
// leads nesses estados nunca voltam para a fila de follow-up.
const (
	StatusNovo        = "Novo"
	StatusContatado   = "Contatado"
	StatusQualificado = "Qualificado"
	StatusGanho       = "Ganho"
	StatusPerdido     = "Perdido"
)

type Lead struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone"`
	Status           string     `json:"status"`
	Source           string     `json:"source,omitempty"`
	NextContact      *time.Time `json:"next_contact,omitempty"`
	LastWhatsappSent *time.Time `json:"last_whatsapp_sent,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Factory
func NewLead(name, email, phone, source string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Source:    source,
		Status:    StatusNovo,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}

// Terminal indica se o lead saiu do funil de contato.
func (l *Lead) Terminal() bool {
	return l.Status == StatusGanho || l.Status == StatusPerdido
}

// Eligible indica se o lead participa da avaliação de follow-up.
func (l *Lead) Eligible() bool {
	switch l.Status {
	case StatusNovo, StatusContatado, StatusQualificado:
		return true
	}
	return false
}
