package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

// Prioridades de follow-up.
const (
	PriorityAlta  = "alta"
	PriorityMedia = "média"
	PriorityBaixa = "baixa"
)

// Offset padrão de agendamento por status, em dias, usado para derivar
// o próximo contato de leads que nunca foram agendados.
var followUpOffsetDays = map[string]int{
	entity.StatusNovo:        1,
	entity.StatusContatado:   2,
	entity.StatusQualificado: 3,
}

type FollowUpUseCase struct {
	Repo LeadRepository

	// Now é injetável para os testes; produção usa time.Now.
	Now func() time.Time
}

func NewFollowUpUseCase(repo LeadRepository) *FollowUpUseCase {
	return &FollowUpUseCase{
		Repo: repo,
		Now:  time.Now,
	}
}

// Evaluate varre os leads elegíveis (Novo, Contatado, Qualificado) e
// devolve os que estão vencidos para contato agora, ordenados do
// agendamento mais antigo para o mais novo.
//
// Leads sem próximo contato ganham um derivado de createdAt + offset do
// status. A derivação é persistida de volta em segundo plano para que
// avaliações futuras sejam estáveis; falha nessa escrita é logada e
// engolida, nunca derruba a avaliação.
func (uc *FollowUpUseCase) Evaluate(ctx context.Context) (*FollowUpOutput, error) {
	leads, err := uc.Repo.ListEligibleForFollowUp(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao ler leads para follow-up: " + err.Error(),
		}
	}

	now := uc.Now()
	var due []FollowUpCandidate

	for _, lead := range leads {
		if !lead.Eligible() {
			continue
		}

		nextContact := time.Time{}
		if lead.NextContact != nil {
			nextContact = *lead.NextContact
		} else {
			offset := followUpOffsetDays[lead.Status]
			nextContact = lead.CreatedAt.AddDate(0, 0, offset)

			// Backfill melhor-esforço: não aguardado, não fatal.
			go func(id string, derived time.Time) {
				if err := uc.Repo.UpdateNextContact(context.Background(), id, derived); err != nil {
					log.Printf("⚠️ Follow-up: falha ao persistir próximo contato do lead %s: %v", id, err)
				}
			}(lead.ID, nextContact)
		}

		// Vencido quando nextContact <= now (hoje conta).
		if nextContact.After(now) {
			continue
		}

		daysOverdue := int(math.Ceil(now.Sub(nextContact).Hours() / 24))
		candidate := FollowUpCandidate{
			Lead:        lead,
			DaysOverdue: daysOverdue,
			NextContact: nextContact,
			Priority:    priorityFor(daysOverdue),
			Message:     FollowUpMessage(lead.Name, lead.Status, daysOverdue),
		}
		due = append(due, candidate)
	}

	// Mais antigo primeiro; empates preservam a ordem de entrada.
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextContact.Before(due[j].NextContact)
	})

	message := fmt.Sprintf("%d lead(s) aguardando contato hoje", len(due))
	if len(due) == 0 {
		message = "Nenhum lead pendente de contato hoje 🎉"
	}

	return &FollowUpOutput{
		Leads:   due,
		Total:   len(due),
		Message: message,
	}, nil
}

func priorityFor(daysOverdue int) string {
	switch {
	case daysOverdue > 3:
		return PriorityAlta
	case daysOverdue >= 1:
		return PriorityMedia
	}
	return PriorityBaixa
}

// FollowUpMessage monta a saudação pronta por status. Função pura:
// substituição de template, sem IA.
func FollowUpMessage(name, status string, daysOverdue int) string {
	var msg string
	switch status {
	case entity.StatusNovo:
		msg = fmt.Sprintf("Olá %s! Obrigado pelo interesse. Podemos conversar sobre o imóvel ideal para você?", name)
	case entity.StatusContatado:
		msg = fmt.Sprintf("Oi %s, tudo bem? Passando para dar continuidade à nossa conversa sobre imóveis.", name)
	case entity.StatusQualificado:
		msg = fmt.Sprintf("%s, surgiram opções que combinam com o que você procura. Vamos agendar uma visita?", name)
	default:
		msg = fmt.Sprintf("Olá %s! Vamos retomar nosso contato?", name)
	}

	if daysOverdue > 1 {
		msg += fmt.Sprintf(" (follow-up atrasado há %d dias)", daysOverdue)
	}
	return msg
}
