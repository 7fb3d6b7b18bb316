package loaders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SkylineKAI/platform-api/internal/types"
)

const businessColumns = `id, user_id, business_name, industry, plan, api_key, created_at`

func (c *PostgresClient) CreateBusiness(ctx context.Context, userID, businessName, industry, plan, apiKey string) (*types.Business, error) {
	var b types.Business
	err := c.pool.QueryRow(ctx, `
		INSERT INTO businesses (user_id, business_name, industry, plan, api_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+businessColumns,
		userID, businessName, industry, plan, apiKey,
	).Scan(&b.ID, &b.UserID, &b.BusinessName, &b.Industry, &b.Plan, &b.APIKey, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}
	return &b, nil
}

func (c *PostgresClient) GetBusiness(ctx context.Context, id string) (*types.Business, error) {
	return c.scanBusiness(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
}

func (c *PostgresClient) GetBusinessByAPIKey(ctx context.Context, apiKey string) (*types.Business, error) {
	return c.scanBusiness(ctx, `SELECT `+businessColumns+` FROM businesses WHERE api_key = $1`, apiKey)
}

func (c *PostgresClient) GetBusinessesByUser(ctx context.Context, userID string) ([]types.Business, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT `+businessColumns+` FROM businesses WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	var businesses []types.Business
	for rows.Next() {
		var b types.Business
		if err := rows.Scan(&b.ID, &b.UserID, &b.BusinessName, &b.Industry, &b.Plan, &b.APIKey, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

func (c *PostgresClient) scanBusiness(ctx context.Context, query string, arg any) (*types.Business, error) {
	var b types.Business
	err := c.pool.QueryRow(ctx, query, arg).
		Scan(&b.ID, &b.UserID, &b.BusinessName, &b.Industry, &b.Plan, &b.APIKey, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query business: %w", err)
	}
	return &b, nil
}
