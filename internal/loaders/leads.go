package loaders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SkylineKAI/platform-api/internal/types"
)

const leadColumns = `id, business_id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(message, ''), source, status, created_at`

// LeadInput carries the writable fields of a lead.
type LeadInput struct {
	BusinessID string
	Name       string
	Phone      string
	Email      string
	Message    string
	Source     string
	Status     string
}

func (c *PostgresClient) CreateLead(ctx context.Context, in LeadInput) (*types.Lead, error) {
	var l types.Lead
	err := c.pool.QueryRow(ctx, `
		INSERT INTO leads (business_id, name, phone, email, message, source, status)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		RETURNING `+leadColumns,
		in.BusinessID, in.Name, in.Phone, in.Email, in.Message, in.Source, in.Status,
	).Scan(&l.ID, &l.BusinessID, &l.Name, &l.Phone, &l.Email, &l.Message, &l.Source, &l.Status, &l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return &l, nil
}

func (c *PostgresClient) GetLead(ctx context.Context, id string) (*types.Lead, error) {
	var l types.Lead
	err := c.pool.QueryRow(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id,
	).Scan(&l.ID, &l.BusinessID, &l.Name, &l.Phone, &l.Email, &l.Message, &l.Source, &l.Status, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query lead: %w", err)
	}
	return &l, nil
}

func (c *PostgresClient) GetLeadsByBusiness(ctx context.Context, businessID string) ([]types.Lead, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE business_id = $1 ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []types.Lead
	for rows.Next() {
		var l types.Lead
		if err := rows.Scan(&l.ID, &l.BusinessID, &l.Name, &l.Phone, &l.Email, &l.Message, &l.Source, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// LeadUpdate holds optional field updates; nil fields are left unchanged.
type LeadUpdate struct {
	Name    *string
	Phone   *string
	Email   *string
	Message *string
	Status  *string
}

func (c *PostgresClient) UpdateLead(ctx context.Context, id string, upd LeadUpdate) (*types.Lead, error) {
	var l types.Lead
	err := c.pool.QueryRow(ctx, `
		UPDATE leads SET
			name    = COALESCE($2, name),
			phone   = COALESCE($3, phone),
			email   = COALESCE($4, email),
			message = COALESCE($5, message),
			status  = COALESCE($6, status)
		WHERE id = $1
		RETURNING `+leadColumns,
		id, upd.Name, upd.Phone, upd.Email, upd.Message, upd.Status,
	).Scan(&l.ID, &l.BusinessID, &l.Name, &l.Phone, &l.Email, &l.Message, &l.Source, &l.Status, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return &l, nil
}
