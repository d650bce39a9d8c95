package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

type PropertyRepository struct {
	DB *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	query := `
		INSERT INTO properties (id, title, description, city, district, type, bedrooms, area,
		                        price_cents, status, image_urls, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		p.City,
		p.District,
		p.Type,
		p.Bedrooms,
		p.Area,
		p.PriceCents,
		p.Status,
		pq.Array(p.ImageURLs),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), city, COALESCE(district, ''), type,
		       bedrooms, area, price_cents, status, image_urls, created_at, updated_at
		FROM properties
		WHERE id = $1
	`

	var p entity.Property
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.City,
		&p.District,
		&p.Type,
		&p.Bedrooms,
		&p.Area,
		&p.PriceCents,
		&p.Status,
		pq.Array(&p.ImageURLs),
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]*entity.Property, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), city, COALESCE(district, ''), type,
		       bedrooms, area, price_cents, status, image_urls, created_at, updated_at
		FROM properties
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.City,
			&p.District,
			&p.Type,
			&p.Bedrooms,
			&p.Area,
			&p.PriceCents,
			&p.Status,
			pq.Array(&p.ImageURLs),
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		properties = append(properties, &p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	query := `
		UPDATE properties
		SET title = $2, description = $3, city = $4, district = $5, type = $6,
		    bedrooms = $7, area = $8, price_cents = $9, status = $10, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.City, p.District, p.Type,
		p.Bedrooms, p.Area, p.PriceCents, p.Status,
	)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return entity.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) UpdateImages(ctx context.Context, id string, urls []string) error {
	query := `UPDATE properties SET image_urls = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, pq.Array(urls))
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return entity.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	return err
}
