package loaders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SkylineKAI/platform-api/internal/types"
)

const botSettingsColumns = `id, business_id, COALESCE(system_prompt, ''), COALESCE(theme, 'dark'), COALESCE(welcome_message, ''), COALESCE(model_name, '')`

func (c *PostgresClient) CreateBotSettings(ctx context.Context, businessID, systemPrompt, theme, welcomeMessage, modelName string) (*types.BotSettings, error) {
	var s types.BotSettings
	err := c.pool.QueryRow(ctx, `
		INSERT INTO bot_settings (business_id, system_prompt, theme, welcome_message, model_name)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		RETURNING `+botSettingsColumns,
		businessID, systemPrompt, theme, welcomeMessage, modelName,
	).Scan(&s.ID, &s.BusinessID, &s.SystemPrompt, &s.Theme, &s.WelcomeMessage, &s.ModelName)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot settings: %w", err)
	}
	return &s, nil
}

func (c *PostgresClient) GetBotSettings(ctx context.Context, businessID string) (*types.BotSettings, error) {
	var s types.BotSettings
	err := c.pool.QueryRow(ctx,
		`SELECT `+botSettingsColumns+` FROM bot_settings WHERE business_id = $1`, businessID,
	).Scan(&s.ID, &s.BusinessID, &s.SystemPrompt, &s.Theme, &s.WelcomeMessage, &s.ModelName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query bot settings: %w", err)
	}
	return &s, nil
}

// BotSettingsUpdate holds optional field updates; nil fields keep their
// stored value.
type BotSettingsUpdate struct {
	SystemPrompt   *string
	Theme          *string
	WelcomeMessage *string
	ModelName      *string
}

func (c *PostgresClient) UpdateBotSettings(ctx context.Context, businessID string, upd BotSettingsUpdate) (*types.BotSettings, error) {
	var s types.BotSettings
	err := c.pool.QueryRow(ctx, `
		UPDATE bot_settings SET
			system_prompt   = COALESCE($2, system_prompt),
			theme           = COALESCE($3, theme),
			welcome_message = COALESCE($4, welcome_message),
			model_name      = COALESCE($5, model_name)
		WHERE business_id = $1
		RETURNING `+botSettingsColumns,
		businessID, upd.SystemPrompt, upd.Theme, upd.WelcomeMessage, upd.ModelName,
	).Scan(&s.ID, &s.BusinessID, &s.SystemPrompt, &s.Theme, &s.WelcomeMessage, &s.ModelName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update bot settings: %w", err)
	}
	return &s, nil
}
