package usecase

import (
	"context"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

type CreateLeadUseCase struct {
	Repo LeadRepository
}

func NewCreateLeadUseCase(repo LeadRepository) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

// Execute captura um lead. Telefone repetido vira upsert (atualiza
// nome/email), não erro: o mesmo interessado preenche o formulário
// mais de uma vez.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	phone, err := NormalizePhone(input.Phone)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_PHONE", Message: err.Error()}
	}

	lead, err := entity.NewLead(input.Name, input.Email, phone, entity.CanonicalSource(input.Source))
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Upsert(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao gravar lead: " + err.Error(),
		}
	}

	return &CreateLeadOutput{
		ID:     lead.ID,
		Name:   lead.Name,
		Phone:  lead.Phone,
		Status: lead.Status,
	}, nil
}
