package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/imobi-crm/internal/infra/integration/storage"
)

func TestCreatePropertySuccessWithImages(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPropertyRepository)
	objectStorage := new(MockObjectStorage)

	urls := []string{"https://cdn.example.com/properties/x/sala.jpg"}
	repo.On("Create", ctx, mock.Anything).Return(nil)
	objectStorage.On("Upload", ctx, mock.Anything, mock.Anything).Return(urls, nil)
	repo.On("UpdateImages", ctx, mock.Anything, urls).Return(nil)

	uc := NewCreatePropertyUseCase(repo, objectStorage, nil)
	property, err := uc.Execute(ctx, CreatePropertyInput{
		Title:      "Apartamento 3 quartos no Meireles",
		City:       "Fortaleza",
		Type:       "apartamento",
		PriceCents: 52000000,
		Images:     []storage.File{{Name: "sala.jpg"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, urls, property.ImageURLs)
	repo.AssertExpectations(t)
}

func TestCreatePropertyUploadFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPropertyRepository)
	objectStorage := new(MockObjectStorage)

	repo.On("Create", ctx, mock.Anything).Return(nil)
	objectStorage.On("Upload", ctx, mock.Anything, mock.Anything).Return(nil, assert.AnError)
	// Compensação: o anúncio criado é apagado.
	repo.On("Delete", ctx, mock.Anything).Return(nil)

	uc := NewCreatePropertyUseCase(repo, objectStorage, nil)
	property, err := uc.Execute(ctx, CreatePropertyInput{
		Title:      "Casa em Aquiraz",
		City:       "Aquiraz",
		Type:       "casa",
		PriceCents: 80000000,
		Images:     []storage.File{{Name: "frente.jpg"}},
	})

	assert.Error(t, err)
	assert.Nil(t, property)
	assert.True(t, IsTechnicalError(err))
	repo.AssertCalled(t, "Delete", ctx, mock.Anything)
}

func TestCreatePropertyValidationFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPropertyRepository)

	uc := NewCreatePropertyUseCase(repo, nil, nil)
	property, err := uc.Execute(ctx, CreatePropertyInput{Title: "", City: "Fortaleza"})

	assert.Error(t, err)
	assert.Nil(t, property)
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreatePropertyWithoutImagesSkipsStorage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPropertyRepository)
	objectStorage := new(MockObjectStorage)

	repo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCreatePropertyUseCase(repo, objectStorage, nil)
	property, err := uc.Execute(ctx, CreatePropertyInput{
		Title:      "Terreno no Eusébio",
		City:       "Eusébio",
		Type:       "terreno",
		PriceCents: 30000000,
	})

	assert.NoError(t, err)
	assert.Empty(t, property.ImageURLs)
	objectStorage.AssertNotCalled(t, "Upload")
}
