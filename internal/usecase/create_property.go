package usecase

import (
	"context"

	"github.com/xavierca1/imobi-crm/internal/entity"
	"github.com/xavierca1/imobi-crm/internal/infra/integration/storage"
)

type CreatePropertyInput struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	City        string         `json:"city"`
	District    string         `json:"district,omitempty"`
	Type        string         `json:"type"`
	Bedrooms    int            `json:"bedrooms,omitempty"`
	Area        float64        `json:"area,omitempty"`
	PriceCents  int64          `json:"price_cents"`
	Images      []storage.File `json:"-"`
}

type CreatePropertyUseCase struct {
	Repo    PropertyRepository
	Storage ObjectStorage
	AI      TextGenerator
}

func NewCreatePropertyUseCase(repo PropertyRepository, objectStorage ObjectStorage, ai TextGenerator) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		Repo:    repo,
		Storage: objectStorage,
		AI:      ai,
	}
}

// Execute cria o anúncio e sobe as imagens. Diferente da importação de
// empreendimento, aqui o anúncio sem foto não tem valor: falha no
// upload desfaz o registro via compensação.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*entity.Property, error) {
	property, err := entity.NewProperty(input.Title, input.City, input.Type, input.PriceCents)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	property.Description = input.Description
	property.District = input.District
	property.Bedrooms = input.Bedrooms
	property.Area = input.Area

	txn := NewTransaction()

	txn.AddOperation("create_property", func(ctx context.Context) error {
		return uc.Repo.Create(ctx, property)
	})
	txn.AddCompensation("delete_property", func(ctx context.Context) error {
		return uc.Repo.Delete(ctx, property.ID)
	})

	if len(input.Images) > 0 {
		txn.AddOperation("upload_images", func(ctx context.Context) error {
			urls, err := uc.Storage.Upload(ctx, "properties/"+property.ID, input.Images)
			if err != nil {
				return err
			}
			property.ImageURLs = urls
			return uc.Repo.UpdateImages(ctx, property.ID, urls)
		})
	}

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao criar imóvel: " + err.Error(),
		}
	}

	return property, nil
}
