package webhooks

import (
	"context"

	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/types"
)

// Store is the slice of persistence the dispatcher needs; implemented by
// loaders.PostgresClient and stubbed in tests.
type Store interface {
	GetBusiness(ctx context.Context, id string) (*types.Business, error)
	GetIntegrationChannel(ctx context.Context, businessID, channel string) (*types.IntegrationChannel, error)
	GetBotSettings(ctx context.Context, businessID string) (*types.BotSettings, error)
	CreateLead(ctx context.Context, in loaders.LeadInput) (*types.Lead, error)
	IncrementCreditsUsed(ctx context.Context, businessID string) error
}
