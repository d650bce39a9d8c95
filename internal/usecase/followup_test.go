package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

func fixedNow() time.Time {
	return time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
}

func followUpUC(repo *MockLeadRepository) *FollowUpUseCase {
	uc := NewFollowUpUseCase(repo)
	uc.Now = fixedNow
	return uc
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestEvaluateReturnsOverdueLeadsSorted(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	now := fixedNow()

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Status: entity.StatusNovo, NextContact: ptrTime(now.AddDate(0, 0, -1))},
		{ID: "l2", Name: "Bruno", Status: entity.StatusContatado, NextContact: ptrTime(now.AddDate(0, 0, -5))},
		{ID: "l3", Name: "Carla", Status: entity.StatusQualificado, NextContact: ptrTime(now.AddDate(0, 0, 2))},
	}
	repo.On("ListEligibleForFollowUp", ctx).Return(leads, nil)

	output, err := followUpUC(repo).Evaluate(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, output.Total)
	// Agendamento mais antigo primeiro.
	assert.Equal(t, "l2", output.Leads[0].Lead.ID)
	assert.Equal(t, "l1", output.Leads[1].Lead.ID)
	assert.Contains(t, output.Message, "2 lead(s)")
}

func TestEvaluateNextContactEqualNowIsDue(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Status: entity.StatusNovo, NextContact: ptrTime(fixedNow())},
	}
	repo.On("ListEligibleForFollowUp", ctx).Return(leads, nil)

	output, err := followUpUC(repo).Evaluate(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Total)
}

func TestEvaluateBackfillsMissingNextContact(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	now := fixedNow()

	// Sem próximo contato: deriva de createdAt + offset do status.
	// Novo = 1 dia, então um lead criado há 3 dias está 2 dias vencido.
	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Status: entity.StatusNovo, CreatedAt: now.AddDate(0, 0, -3)},
	}
	repo.On("ListEligibleForFollowUp", ctx).Return(leads, nil)
	repo.On("UpdateNextContact", mock.Anything, "l1", now.AddDate(0, 0, -2)).Return(nil).Maybe()

	output, err := followUpUC(repo).Evaluate(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Total)
	assert.Equal(t, now.AddDate(0, 0, -2), output.Leads[0].NextContact)
	assert.Equal(t, 2, output.Leads[0].DaysOverdue)
}

func TestEvaluateBackfillFailureDoesNotAffectResult(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	now := fixedNow()

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Status: entity.StatusContatado, CreatedAt: now.AddDate(0, 0, -10)},
	}
	repo.On("ListEligibleForFollowUp", ctx).Return(leads, nil)
	repo.On("UpdateNextContact", mock.Anything, "l1", mock.Anything).
		Return(assert.AnError).Maybe()

	output, err := followUpUC(repo).Evaluate(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Total)
}

func TestEvaluateExcludesTerminalLeads(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	now := fixedNow()

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Status: entity.StatusGanho, NextContact: ptrTime(now.AddDate(0, 0, -5))},
		{ID: "l2", Name: "Bruno", Status: entity.StatusPerdido, NextContact: ptrTime(now.AddDate(0, 0, -5))},
	}
	repo.On("ListEligibleForFollowUp", ctx).Return(leads, nil)

	output, err := followUpUC(repo).Evaluate(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, output.Total)
	assert.Equal(t, "Nenhum lead pendente de contato hoje 🎉", output.Message)
}

func TestEvaluatePriorityBoundaries(t *testing.T) {
	assert.Equal(t, PriorityBaixa, priorityFor(0))
	assert.Equal(t, PriorityMedia, priorityFor(1))
	assert.Equal(t, PriorityMedia, priorityFor(3))
	assert.Equal(t, PriorityAlta, priorityFor(4))
}

func TestEvaluateDatabaseFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	repo.On("ListEligibleForFollowUp", ctx).Return(nil, assert.AnError)

	output, err := followUpUC(repo).Evaluate(ctx)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
}

func TestFollowUpMessagePerStatus(t *testing.T) {
	assert.Contains(t, FollowUpMessage("Ana", entity.StatusNovo, 0), "Ana")
	assert.Contains(t, FollowUpMessage("Ana", entity.StatusQualificado, 0), "visita")

	// Atraso acima de 1 dia ganha o sufixo com a contagem.
	assert.Contains(t, FollowUpMessage("Ana", entity.StatusNovo, 5), "atrasado há 5 dias")
	assert.NotContains(t, FollowUpMessage("Ana", entity.StatusNovo, 1), "atrasado")
}
