package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/imobi-crm/internal/infra/mail"
	"github.com/xavierca1/imobi-crm/internal/infra/queue"
	"github.com/xavierca1/imobi-crm/internal/usecase"
)

// DigestWorker roda a avaliação de follow-up em intervalo fixo,
// publica um lembrete por lead vencido e envia o resumo diário por
// email. Falha em qualquer etapa é logada e esperada no próximo tick.
type DigestWorker struct {
	FollowUps    *usecase.FollowUpUseCase
	Producer     usecase.ReminderPublisher
	Mailer       *mail.EmailSender
	DigestTo     string
	TickInterval time.Duration
}

func NewDigestWorker(followUps *usecase.FollowUpUseCase, producer usecase.ReminderPublisher, mailer *mail.EmailSender, digestTo string) *DigestWorker {
	return &DigestWorker{
		FollowUps:    followUps,
		Producer:     producer,
		Mailer:       mailer,
		DigestTo:     digestTo,
		TickInterval: 24 * time.Hour,
	}
}

func (w *DigestWorker) Start(ctx context.Context) {
	log.Printf("🕒 Digest Worker iniciado (intervalo %s)", w.TickInterval)

	ticker := time.NewTicker(w.TickInterval)
	defer ticker.Stop()

	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Digest Worker encerrado")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *DigestWorker) run(ctx context.Context) {
	output, err := w.FollowUps.Evaluate(ctx)
	if err != nil {
		log.Printf("❌ Digest: falha na avaliação de follow-up: %v", err)
		return
	}
	if output.Total == 0 {
		log.Println("✅ Digest: nenhum follow-up pendente hoje")
		return
	}

	entries := make([]mail.DigestEntry, 0, output.Total)
	for _, candidate := range output.Leads {
		entries = append(entries, mail.DigestEntry{
			Name:        candidate.Lead.Name,
			Phone:       candidate.Lead.Phone,
			Status:      candidate.Lead.Status,
			Priority:    candidate.Priority,
			DaysOverdue: candidate.DaysOverdue,
		})

		if w.Producer != nil {
			payload := queue.ReminderPayload{
				LeadID:      candidate.Lead.ID,
				Name:        candidate.Lead.Name,
				Phone:       candidate.Lead.Phone,
				Status:      candidate.Lead.Status,
				Priority:    candidate.Priority,
				DaysOverdue: candidate.DaysOverdue,
				Message:     candidate.Message,
			}
			if err := w.Producer.PublishReminder(ctx, payload); err != nil {
				log.Printf("⚠️ Digest: falha ao publicar lembrete do lead %s: %v", candidate.Lead.ID, err)
			}
		}
	}

	if w.Mailer != nil && w.DigestTo != "" {
		if err := w.Mailer.SendFollowUpDigest(w.DigestTo, entries); err != nil {
			log.Printf("⚠️ Digest: falha ao enviar resumo por email: %v", err)
		} else {
			log.Printf("✅ Digest: resumo com %d follow-up(s) enviado para %s", output.Total, w.DigestTo)
		}
	}
}
