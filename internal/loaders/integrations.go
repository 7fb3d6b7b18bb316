package loaders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SkylineKAI/platform-api/internal/types"
)

const integrationColumns = `id, business_id, channel, status, COALESCE(credentials, ''), COALESCE(webhook_secret, ''), COALESCE(webhook_url, ''), last_synced_at, created_at, updated_at`

// IntegrationInput carries the writable fields of an integration channel.
type IntegrationInput struct {
	BusinessID    string
	Channel       string
	Status        string
	Credentials   string
	WebhookSecret string
	WebhookURL    string
}

// UpsertIntegrationChannel connects a channel for a business, overwriting
// an existing connection in place. last_synced_at is bumped on every
// connect.
func (c *PostgresClient) UpsertIntegrationChannel(ctx context.Context, in IntegrationInput) (*types.IntegrationChannel, error) {
	var i types.IntegrationChannel
	err := c.pool.QueryRow(ctx, `
		INSERT INTO integration_channels (business_id, channel, status, credentials, webhook_secret, webhook_url, last_synced_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), now())
		ON CONFLICT (business_id, channel) DO UPDATE SET
			status         = EXCLUDED.status,
			credentials    = COALESCE(EXCLUDED.credentials, integration_channels.credentials),
			webhook_secret = COALESCE(EXCLUDED.webhook_secret, integration_channels.webhook_secret),
			webhook_url    = EXCLUDED.webhook_url,
			last_synced_at = now(),
			updated_at     = now()
		RETURNING `+integrationColumns,
		in.BusinessID, in.Channel, in.Status, in.Credentials, in.WebhookSecret, in.WebhookURL,
	).Scan(&i.ID, &i.BusinessID, &i.Channel, &i.Status, &i.Credentials, &i.WebhookSecret, &i.WebhookURL,
		&i.LastSyncedAt, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert integration: %w", err)
	}
	return &i, nil
}

func (c *PostgresClient) GetIntegrationChannel(ctx context.Context, businessID, channel string) (*types.IntegrationChannel, error) {
	var i types.IntegrationChannel
	err := c.pool.QueryRow(ctx,
		`SELECT `+integrationColumns+` FROM integration_channels WHERE business_id = $1 AND channel = $2`,
		businessID, channel,
	).Scan(&i.ID, &i.BusinessID, &i.Channel, &i.Status, &i.Credentials, &i.WebhookSecret, &i.WebhookURL,
		&i.LastSyncedAt, &i.CreatedAt, &i.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query integration: %w", err)
	}
	return &i, nil
}

func (c *PostgresClient) GetIntegrationChannels(ctx context.Context, businessID string) ([]types.IntegrationChannel, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT `+integrationColumns+` FROM integration_channels WHERE business_id = $1 ORDER BY channel`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query integrations: %w", err)
	}
	defer rows.Close()

	var integrations []types.IntegrationChannel
	for rows.Next() {
		var i types.IntegrationChannel
		if err := rows.Scan(&i.ID, &i.BusinessID, &i.Channel, &i.Status, &i.Credentials, &i.WebhookSecret,
			&i.WebhookURL, &i.LastSyncedAt, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan integration: %w", err)
		}
		integrations = append(integrations, i)
	}
	return integrations, rows.Err()
}

// DeleteIntegrationChannel disconnects by removing the record outright.
func (c *PostgresClient) DeleteIntegrationChannel(ctx context.Context, id string) error {
	_, err := c.pool.Exec(ctx, `DELETE FROM integration_channels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete integration: %w", err)
	}
	return nil
}
