package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/xavierca1/imobi-crm/internal/entity"
	"github.com/xavierca1/imobi-crm/internal/infra/integration/storage"
	"github.com/xavierca1/imobi-crm/internal/spreadsheet"
)

type ImportReleaseUseCase struct {
	Releases ReleaseRepository
	Storage  ObjectStorage
	AI       TextGenerator
}

func NewImportReleaseUseCase(releases ReleaseRepository, objectStorage ObjectStorage, ai TextGenerator) *ImportReleaseUseCase {
	return &ImportReleaseUseCase{
		Releases: releases,
		Storage:  objectStorage,
		AI:       ai,
	}
}

// Execute aplica o mapeamento do operador sobre as linhas revisadas e
// persiste o empreendimento com suas unidades em uma escrita única.
// Imagens são enviadas depois, via AttachImages: se o upload falhar, o
// empreendimento existe sem mídia final (gap de consistência eventual
// aceito, nunca rollback).
func (uc *ImportReleaseUseCase) Execute(ctx context.Context, input ImportReleaseInput) (*ImportReleaseOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "name é obrigatório"}
	}

	table := &spreadsheet.Table{Columns: input.Columns}
	for _, row := range input.Rows {
		table.Rows = append(table.Rows, spreadsheet.RawRow(row))
	}

	units, err := spreadsheet.Apply(table, input.Mapping)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrEmptyImport) {
			return nil, &DomainError{Code: "EMPTY_IMPORT", Message: err.Error()}
		}
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = uc.draftDescription(ctx, input.Name, input.Preamble)
	}

	release, err := entity.NewRelease(input.Name, input.Builder, input.City, description, units)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Releases.Create(ctx, release); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao gravar empreendimento: " + err.Error(),
		}
	}

	return &ImportReleaseOutput{
		ReleaseID:   release.ID,
		Name:        release.Name,
		UnitCount:   len(release.Units),
		Description: release.Description,
	}, nil
}

// AttachImages envia as imagens para o storage e grava as URLs no
// empreendimento já persistido. Erro aqui é propagado ao operador, mas
// o empreendimento permanece.
func (uc *ImportReleaseUseCase) AttachImages(ctx context.Context, releaseID string, files []storage.File) ([]string, error) {
	if _, err := uc.Releases.FindByID(ctx, releaseID); err != nil {
		return nil, err
	}

	urls, err := uc.Storage.Upload(ctx, "releases/"+releaseID, files)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "falha no upload das imagens: " + err.Error(),
		}
	}

	if err := uc.Releases.UpdateImages(ctx, releaseID, urls); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "imagens enviadas, mas falha ao gravar URLs: " + err.Error(),
		}
	}

	return urls, nil
}

// draftDescription pede um rascunho de descrição ao provedor de texto
// generativo a partir do preâmbulo da planilha. Qualquer falha (chave
// ausente, provedor fora) degrada para o fallback determinístico.
func (uc *ImportReleaseUseCase) draftDescription(ctx context.Context, name, preamble string) string {
	if uc.AI != nil && preamble != "" {
		prompt := "Escreva uma descrição comercial curta para o empreendimento imobiliário \"" + name +
			"\" a partir destas anotações da construtora:\n" + preamble
		if text, err := uc.AI.Generate(ctx, prompt); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		} else if err != nil {
			log.Printf("⚠️ IA indisponível, usando descrição determinística: %v", err)
		}
	}
	return FallbackDescription(name, preamble)
}

// FallbackDescription é o rascunho sem IA: nome + preâmbulo achatado e
// truncado. Determinístico por contrato.
func FallbackDescription(name, preamble string) string {
	flat := strings.Join(strings.Fields(strings.ReplaceAll(preamble, "\n", " ")), " ")
	const maxRunes = 280
	if runes := []rune(flat); len(runes) > maxRunes {
		flat = string(runes[:maxRunes])
		if i := strings.LastIndex(flat, " "); i > 0 {
			flat = flat[:i]
		}
		flat += "..."
	}
	if flat == "" {
		return name
	}
	return name + " - " + flat
}
