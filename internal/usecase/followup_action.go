package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

// Vocabulário fixo de ações de follow-up.
const (
	ActionContacted   = "contacted"
	ActionQualified   = "qualified"
	ActionReschedule  = "reschedule"
	ActionLost        = "lost"
	ActionSendMessage = "send_message"
)

type FollowUpActionInput struct {
	LeadID string `json:"lead_id"`
	Action string `json:"action"`

	// reschedule: data escolhida pelo operador (RFC3339).
	RescheduleTo string `json:"reschedule_to,omitempty"`

	// send_message: corpo livre; vazio usa a mensagem pronta do status.
	Body string `json:"body,omitempty"`
}

type FollowUpActionOutput struct {
	LeadID      string     `json:"lead_id"`
	Status      string     `json:"status"`
	NextContact *time.Time `json:"next_contact,omitempty"`
	MessageID   string     `json:"message_id,omitempty"`
}

type FollowUpActionUseCase struct {
	Repo     LeadRepository
	WhatsApp Messenger
	Now      func() time.Time
}

func NewFollowUpActionUseCase(repo LeadRepository, whatsApp Messenger) *FollowUpActionUseCase {
	return &FollowUpActionUseCase{
		Repo:     repo,
		WhatsApp: whatsApp,
		Now:      time.Now,
	}
}

// Execute aplica uma ação do vocabulário sobre um único lead. Cada
// transição é um update independente de documento único: sem transação
// multi-lead e sem checagem otimista; dois operadores simultâneos
// terminam em last-write-wins.
func (uc *FollowUpActionUseCase) Execute(ctx context.Context, input FollowUpActionInput) (*FollowUpActionOutput, error) {
	lead, err := uc.Repo.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}

	now := uc.Now()

	switch input.Action {
	case ActionContacted:
		next := now.AddDate(0, 0, 2)
		if err := uc.Repo.UpdateFollowUp(ctx, lead.ID, entity.StatusContatado, &next); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		return &FollowUpActionOutput{LeadID: lead.ID, Status: entity.StatusContatado, NextContact: &next}, nil

	case ActionQualified:
		next := now.AddDate(0, 0, 3)
		if err := uc.Repo.UpdateFollowUp(ctx, lead.ID, entity.StatusQualificado, &next); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		return &FollowUpActionOutput{LeadID: lead.ID, Status: entity.StatusQualificado, NextContact: &next}, nil

	case ActionReschedule:
		next, err := time.Parse(time.RFC3339, input.RescheduleTo)
		if err != nil {
			return nil, &DomainError{
				Code:    "INVALID_DATE",
				Message: "reschedule_to deve ser uma data RFC3339 válida",
			}
		}
		if err := uc.Repo.UpdateFollowUp(ctx, lead.ID, lead.Status, &next); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		return &FollowUpActionOutput{LeadID: lead.ID, Status: lead.Status, NextContact: &next}, nil

	case ActionLost:
		if err := uc.Repo.UpdateFollowUp(ctx, lead.ID, entity.StatusPerdido, nil); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		return &FollowUpActionOutput{LeadID: lead.ID, Status: entity.StatusPerdido}, nil

	case ActionSendMessage:
		phone, err := NormalizePhone(lead.Phone)
		if err != nil {
			return nil, &DomainError{Code: "INVALID_PHONE", Message: err.Error()}
		}
		body := input.Body
		if body == "" {
			body = FollowUpMessage(lead.Name, lead.Status, 0)
		}
		messageID, err := uc.WhatsApp.Send(ctx, phone, body)
		if err != nil {
			return nil, &TechnicalError{Code: "WHATSAPP_ERROR", Message: err.Error()}
		}
		if err := uc.Repo.MarkWhatsappSent(ctx, lead.ID, now); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		return &FollowUpActionOutput{LeadID: lead.ID, Status: lead.Status, MessageID: messageID}, nil
	}

	return nil, &DomainError{
		Code:    "INVALID_ACTION",
		Message: "ação desconhecida: " + input.Action,
	}
}
