package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

// BulkMessageUseCase despacha mensagens para vários leads em série,
// com pausa fixa entre envios para não estourar o rate limit do
// provedor. A política de throttle é um parâmetro nomeado, não um
// timer espalhado pelo código.
//
// Não há atomicidade no lote: falha no meio deixa os anteriores
// enviados e os posteriores intocados, e o resumo parcial volta para o
// chamador.
type BulkMessageUseCase struct {
	Repo     LeadRepository
	Provider Messenger

	// Delay entre envios consecutivos. Zero nos testes.
	Delay time.Duration

	// RecordWhatsApp carimba lastWhatsappSent no lead após cada envio.
	RecordWhatsApp bool

	// Sleep é injetável para os testes; produção usa time.Sleep.
	Sleep func(time.Duration)
}

func NewBulkMessageUseCase(repo LeadRepository, provider Messenger) *BulkMessageUseCase {
	return &BulkMessageUseCase{
		Repo:     repo,
		Provider: provider,
		Delay:    time.Second,
		Sleep:    time.Sleep,
	}
}

// Execute envia o mesmo corpo para todos os leads.
func (uc *BulkMessageUseCase) Execute(ctx context.Context, leads []*entity.Lead, body string) *BulkSendOutput {
	return uc.dispatch(ctx, leads, func(int) string { return body })
}

// ExecuteEach envia um corpo por lead (bodies alinhado por índice),
// usado pelo follow-up em massa onde cada lead tem a própria saudação.
func (uc *BulkMessageUseCase) ExecuteEach(ctx context.Context, leads []*entity.Lead, bodies []string) *BulkSendOutput {
	return uc.dispatch(ctx, leads, func(i int) string { return bodies[i] })
}

// dispatch é o loop sequencial único: erros por item são capturados no
// resumo, nunca abortam o lote; sem cancelamento no meio.
func (uc *BulkMessageUseCase) dispatch(ctx context.Context, leads []*entity.Lead, bodyAt func(int) string) *BulkSendOutput {
	output := &BulkSendOutput{Success: true}

	for i, lead := range leads {
		if i > 0 && uc.Delay > 0 {
			uc.Sleep(uc.Delay)
		}

		detail := BulkSendDetail{LeadID: lead.ID, Phone: lead.Phone}

		phone, err := NormalizePhone(lead.Phone)
		if err != nil {
			detail.Error = err.Error()
			output.Errors++
			output.Success = false
			output.Details = append(output.Details, detail)
			continue
		}
		detail.Phone = phone

		messageID, err := uc.Provider.Send(ctx, phone, bodyAt(i))
		if err != nil {
			log.Printf("⚠️ Envio em lote: falha para %s (%s): %v", lead.Name, phone, err)
			detail.Error = err.Error()
			output.Errors++
			output.Success = false
			output.Details = append(output.Details, detail)
			continue
		}

		detail.MessageID = messageID
		output.Sent++
		output.Details = append(output.Details, detail)

		// Lotes de SMS não carimbam lastWhatsappSent.
		if uc.RecordWhatsApp {
			if err := uc.Repo.MarkWhatsappSent(ctx, lead.ID, time.Now()); err != nil {
				log.Printf("⚠️ Envio em lote: falha ao marcar envio do lead %s: %v", lead.ID, err)
			}
		}
	}

	return output
}
