package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

type ReleaseRepository struct {
	DB *sql.DB
}

func NewReleaseRepository(db *sql.DB) *ReleaseRepository {
	return &ReleaseRepository{DB: db}
}

// Create grava o empreendimento e as unidades em uma escrita única.
// As unidades vão como JSONB: são imutáveis após a importação e sempre
// lidas junto com o pai.
func (r *ReleaseRepository) Create(ctx context.Context, release *entity.Release) error {
	units, err := json.Marshal(release.Units)
	if err != nil {
		return fmt.Errorf("erro ao serializar unidades: %w", err)
	}

	query := `
		INSERT INTO releases (id, name, builder, city, description, image_urls, units, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.DB.ExecContext(ctx, query,
		release.ID,
		release.Name,
		release.Builder,
		release.City,
		release.Description,
		pq.Array(release.ImageURLs),
		units,
		release.CreatedAt,
		release.UpdatedAt,
	)
	return err
}

func (r *ReleaseRepository) FindByID(ctx context.Context, id string) (*entity.Release, error) {
	query := `
		SELECT id, name, COALESCE(builder, ''), COALESCE(city, ''), COALESCE(description, ''),
		       image_urls, units, created_at, updated_at
		FROM releases
		WHERE id = $1
	`

	var release entity.Release
	var units []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&release.ID,
		&release.Name,
		&release.Builder,
		&release.City,
		&release.Description,
		pq.Array(&release.ImageURLs),
		&units,
		&release.CreatedAt,
		&release.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrReleaseNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(units, &release.Units); err != nil {
		return nil, fmt.Errorf("erro ao ler unidades do empreendimento %s: %w", id, err)
	}
	return &release, nil
}

// UpdateImages grava as URLs depois do upload, o patch da segunda
// etapa da importação.
func (r *ReleaseRepository) UpdateImages(ctx context.Context, id string, urls []string) error {
	query := `UPDATE releases SET image_urls = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, pq.Array(urls))
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return entity.ErrReleaseNotFound
	}
	return nil
}

func (r *ReleaseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM releases WHERE id = $1`, id)
	return err
}
