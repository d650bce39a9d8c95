package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

func bulkUC(repo *MockLeadRepository, provider *MockMessenger) (*BulkMessageUseCase, *[]time.Duration) {
	uc := NewBulkMessageUseCase(repo, provider)
	var sleeps []time.Duration
	uc.Sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return uc, &sleeps
}

func TestBulkSendAllSucceed(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	provider := new(MockMessenger)

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Phone: "11999990001"},
		{ID: "l2", Name: "Bruno", Phone: "11999990002"},
	}
	provider.On("Send", ctx, "+5511999990001", "Oi!").Return("m1", nil)
	provider.On("Send", ctx, "+5511999990002", "Oi!").Return("m2", nil)

	uc, _ := bulkUC(repo, provider)
	output := uc.Execute(ctx, leads, "Oi!")

	assert.True(t, output.Success)
	assert.Equal(t, 2, output.Sent)
	assert.Equal(t, 0, output.Errors)
	assert.Len(t, output.Details, 2)
	assert.Equal(t, "m1", output.Details[0].MessageID)
	provider.AssertExpectations(t)
}

func TestBulkSendThrottlesBetweenItemsOnly(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	provider := new(MockMessenger)

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Phone: "11999990001"},
		{ID: "l2", Name: "Bruno", Phone: "11999990002"},
		{ID: "l3", Name: "Carla", Phone: "11999990003"},
	}
	provider.On("Send", ctx, mock.Anything, mock.Anything).Return("m", nil)

	uc, sleeps := bulkUC(repo, provider)
	uc.Execute(ctx, leads, "Oi!")

	// N envios, N-1 pausas: nada antes do primeiro nem depois do último.
	assert.Equal(t, []time.Duration{time.Second, time.Second}, *sleeps)
}

func TestBulkSendPartialFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	provider := new(MockMessenger)

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Phone: "11999990001"},
		{ID: "l2", Name: "Bruno", Phone: "11999990002"},
		{ID: "l3", Name: "Carla", Phone: "11999990003"},
	}
	provider.On("Send", ctx, "+5511999990001", "Oi!").Return("m1", nil)
	provider.On("Send", ctx, "+5511999990002", "Oi!").Return("", assert.AnError)
	provider.On("Send", ctx, "+5511999990003", "Oi!").Return("m3", nil)

	uc, _ := bulkUC(repo, provider)
	output := uc.Execute(ctx, leads, "Oi!")

	// Falha no meio não aborta o lote: o resumo parcial conta tudo.
	assert.False(t, output.Success)
	assert.Equal(t, 2, output.Sent)
	assert.Equal(t, 1, output.Errors)
	assert.NotEmpty(t, output.Details[1].Error)
	assert.Equal(t, "m3", output.Details[2].MessageID)
}

func TestBulkSendInvalidPhoneCountsAsError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	provider := new(MockMessenger)

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Phone: "123"},
	}

	uc, _ := bulkUC(repo, provider)
	output := uc.Execute(ctx, leads, "Oi!")

	assert.False(t, output.Success)
	assert.Equal(t, 1, output.Errors)
	provider.AssertNotCalled(t, "Send")
}

func TestBulkSendStampsWhatsAppOnlyWhenEnabled(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	provider := new(MockMessenger)

	leads := []*entity.Lead{{ID: "l1", Name: "Ana", Phone: "11999990001"}}
	provider.On("Send", ctx, mock.Anything, mock.Anything).Return("m1", nil)
	repo.On("MarkWhatsappSent", ctx, "l1", mock.Anything).Return(nil)

	uc, _ := bulkUC(repo, provider)
	uc.RecordWhatsApp = true
	uc.Execute(ctx, leads, "Oi!")
	repo.AssertCalled(t, "MarkWhatsappSent", ctx, "l1", mock.Anything)

	// Lote SMS: sem carimbo.
	smsRepo := new(MockLeadRepository)
	smsUC, _ := bulkUC(smsRepo, provider)
	smsUC.Execute(ctx, leads, "Oi!")
	smsRepo.AssertNotCalled(t, "MarkWhatsappSent")
}

func TestBulkSendPerLeadBodies(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLeadRepository)
	provider := new(MockMessenger)

	leads := []*entity.Lead{
		{ID: "l1", Name: "Ana", Phone: "11999990001"},
		{ID: "l2", Name: "Bruno", Phone: "11999990002"},
	}
	provider.On("Send", ctx, "+5511999990001", "Oi Ana!").Return("m1", nil)
	provider.On("Send", ctx, "+5511999990002", "Oi Bruno!").Return("m2", nil)

	uc, _ := bulkUC(repo, provider)
	output := uc.ExecuteEach(ctx, leads, []string{"Oi Ana!", "Oi Bruno!"})

	assert.True(t, output.Success)
	assert.Equal(t, 2, output.Sent)
	provider.AssertExpectations(t)
}
