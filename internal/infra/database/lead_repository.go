package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/xavierca1/imobi-crm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert grava o lead; telefone repetido atualiza nome/email/origem em
// vez de duplicar o interessado.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, status, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (phone)
		DO UPDATE SET
			name = EXCLUDED.name,
			email = COALESCE(NULLIF(EXCLUDED.email, ''), leads.email),
			source = COALESCE(NULLIF(EXCLUDED.source, ''), leads.source),
			updated_at = NOW()
		RETURNING id, status, next_contact, last_whatsapp_sent, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.Email),
		lead.Phone,
		lead.Status,
		nullString(lead.Source),
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(
		&lead.ID,
		&lead.Status,
		&lead.NextContact,
		&lead.LastWhatsappSent,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrPhoneAlreadyUsed
		}
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	lead.Status = entity.CanonicalStatus(lead.Status)
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), phone, status, COALESCE(source, ''),
		       next_contact, last_whatsapp_sent, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) List(ctx context.Context, status string) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), phone, status, COALESCE(source, ''),
		       next_contact, last_whatsapp_sent, created_at, updated_at
		FROM leads
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeads(rows)
}

// ListEligibleForFollowUp devolve só os leads fora de estado terminal.
// A normalização de status legados acontece aqui, na borda de leitura,
// então o filtro cobre também as grafias antigas.
func (r *LeadRepository) ListEligibleForFollowUp(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), phone, status, COALESCE(source, ''),
		       next_contact, last_whatsapp_sent, created_at, updated_at
		FROM leads
		ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads, err := collectLeads(rows)
	if err != nil {
		return nil, err
	}

	eligible := leads[:0]
	for _, lead := range leads {
		if lead.Eligible() {
			eligible = append(eligible, lead)
		}
	}
	return eligible, nil
}

func (r *LeadRepository) UpdateFollowUp(ctx context.Context, id, status string, nextContact *time.Time) error {
	query := `
		UPDATE leads
		SET status = $2, next_contact = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id, status, nextContact)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// UpdateNextContact é o backfill do avaliador: só preenche quando o
// campo ainda está vazio, para não sobrescrever um reagendamento que
// chegou no meio do caminho.
func (r *LeadRepository) UpdateNextContact(ctx context.Context, id string, nextContact time.Time) error {
	query := `
		UPDATE leads
		SET next_contact = $2, updated_at = NOW()
		WHERE id = $1 AND next_contact IS NULL
	`
	_, err := r.DB.ExecContext(ctx, query, id, nextContact)
	return err
}

func (r *LeadRepository) MarkWhatsappSent(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE leads
		SET last_whatsapp_sent = $2, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id, at)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Status,
		&lead.Source,
		&lead.NextContact,
		&lead.LastWhatsappSent,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Tabela de migração de legados, aplicada uma vez por leitura.
	lead.Status = entity.CanonicalStatus(lead.Status)
	lead.Source = entity.CanonicalSource(lead.Source)
	return &lead, nil
}

func collectLeads(rows *sql.Rows) ([]*entity.Lead, error) {
	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
