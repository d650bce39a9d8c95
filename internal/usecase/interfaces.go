package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/imobi-crm/internal/entity"
	"github.com/xavierca1/imobi-crm/internal/infra/integration/storage"
	"github.com/xavierca1/imobi-crm/internal/infra/queue"
)

type LeadRepository interface {
	Upsert(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, status string) ([]*entity.Lead, error)
	ListEligibleForFollowUp(ctx context.Context) ([]*entity.Lead, error)
	UpdateFollowUp(ctx context.Context, id, status string, nextContact *time.Time) error
	UpdateNextContact(ctx context.Context, id string, nextContact time.Time) error
	MarkWhatsappSent(ctx context.Context, id string, at time.Time) error
}

type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	FindByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context) ([]*entity.Property, error)
	Update(ctx context.Context, p *entity.Property) error
	UpdateImages(ctx context.Context, id string, urls []string) error
	Delete(ctx context.Context, id string) error
}

type ReleaseRepository interface {
	Create(ctx context.Context, r *entity.Release) error
	FindByID(ctx context.Context, id string) (*entity.Release, error)
	UpdateImages(ctx context.Context, id string, urls []string) error
	Delete(ctx context.Context, id string) error
}

// Messenger é o contrato mínimo dos provedores de saída (WhatsApp e
// SMS): envia e devolve o ID da mensagem no provedor.
type Messenger interface {
	Send(ctx context.Context, to, body string) (messageID string, err error)
}

// TextGenerator é o provedor de texto generativo. Qualquer erro aqui é
// melhor-esforço: o chamador degrada para um fallback determinístico.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ObjectStorage interface {
	Upload(ctx context.Context, folder string, files []storage.File) ([]string, error)
	Delete(ctx context.Context, urls []string) error
}

type ReminderPublisher interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}
