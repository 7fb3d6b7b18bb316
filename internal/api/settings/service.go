package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/types"
)

var ErrAccessDenied = errors.New("access denied")

// Store is the persistence slice behind the bot settings endpoints.
type Store interface {
	GetBusiness(ctx context.Context, id string) (*types.Business, error)
	GetBotSettings(ctx context.Context, businessID string) (*types.BotSettings, error)
	CreateBotSettings(ctx context.Context, businessID, systemPrompt, theme, welcomeMessage, modelName string) (*types.BotSettings, error)
	UpdateBotSettings(ctx context.Context, businessID string, upd loaders.BotSettingsUpdate) (*types.BotSettings, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID, businessID string) (*types.BotSettings, error) {
	if err := s.checkOwnership(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.store.GetBotSettings(ctx, businessID)
}

// Update patches the business's bot configuration, creating the settings
// row when a business predates it.
func (s *Service) Update(ctx context.Context, userID, businessID string, req *UpdateRequest) (*types.BotSettings, error) {
	if err := s.checkOwnership(ctx, userID, businessID); err != nil {
		return nil, err
	}

	existing, err := s.store.GetBotSettings(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.store.CreateBotSettings(ctx, businessID,
			deref(req.SystemPrompt), deref(req.Theme), deref(req.WelcomeMessage), deref(req.ModelName))
	}

	return s.store.UpdateBotSettings(ctx, businessID, loaders.BotSettingsUpdate{
		SystemPrompt:   req.SystemPrompt,
		Theme:          req.Theme,
		WelcomeMessage: req.WelcomeMessage,
		ModelName:      req.ModelName,
	})
}

func (s *Service) checkOwnership(ctx context.Context, userID, businessID string) error {
	business, err := s.store.GetBusiness(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to load business: %w", err)
	}
	if business == nil || business.UserID != userID {
		return ErrAccessDenied
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
