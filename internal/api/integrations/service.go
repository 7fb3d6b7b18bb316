package integrations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrNotConnected     = errors.New("integration not connected")
)

// Store is the persistence slice behind channel connection management.
type Store interface {
	GetBusiness(ctx context.Context, id string) (*types.Business, error)
	UpsertIntegrationChannel(ctx context.Context, in loaders.IntegrationInput) (*types.IntegrationChannel, error)
	GetIntegrationChannel(ctx context.Context, businessID, channel string) (*types.IntegrationChannel, error)
	GetIntegrationChannels(ctx context.Context, businessID string) ([]types.IntegrationChannel, error)
	DeleteIntegrationChannel(ctx context.Context, id string) error
}

type Service struct {
	store         Store
	publicBaseURL string
}

func NewService(store Store, publicBaseURL string) *Service {
	return &Service{store: store, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// List returns a business's connections with credential values stripped.
func (s *Service) List(ctx context.Context, userID, businessID string) ([]types.SanitizedIntegration, error) {
	if err := s.checkOwnership(ctx, userID, businessID); err != nil {
		return nil, err
	}

	channels, err := s.store.GetIntegrationChannels(ctx, businessID)
	if err != nil {
		return nil, err
	}

	sanitized := make([]types.SanitizedIntegration, 0, len(channels))
	for _, ch := range channels {
		sanitized = append(sanitized, ch.Sanitized())
	}
	return sanitized, nil
}

// Connect upserts a channel connection and hands back the webhook URL
// the platform should be pointed at.
func (s *Service) Connect(ctx context.Context, userID, businessID string, req *ConnectRequest) (*types.SanitizedIntegration, error) {
	if err := s.checkOwnership(ctx, userID, businessID); err != nil {
		return nil, err
	}

	integration, err := s.store.UpsertIntegrationChannel(ctx, loaders.IntegrationInput{
		BusinessID:    businessID,
		Channel:       req.Channel,
		Status:        types.IntegrationConnected,
		Credentials:   req.Credentials,
		WebhookSecret: req.WebhookSecret,
		WebhookURL:    s.webhookURL(req.Channel, businessID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect channel: %w", err)
	}

	utils.Zlog.Info("Channel connected",
		zap.String("business_id", businessID),
		zap.String("channel", req.Channel))

	sanitized := integration.Sanitized()
	return &sanitized, nil
}

// Disconnect removes a channel connection outright.
func (s *Service) Disconnect(ctx context.Context, userID, businessID, channel string) error {
	if err := s.checkOwnership(ctx, userID, businessID); err != nil {
		return err
	}

	integration, err := s.store.GetIntegrationChannel(ctx, businessID, channel)
	if err != nil {
		return err
	}
	if integration == nil {
		return ErrNotConnected
	}

	if err := s.store.DeleteIntegrationChannel(ctx, integration.ID); err != nil {
		return err
	}

	utils.Zlog.Info("Channel disconnected",
		zap.String("business_id", businessID),
		zap.String("channel", channel))
	return nil
}

func (s *Service) webhookURL(channel, businessID string) string {
	return fmt.Sprintf("%s/api/webhooks/%s/%s", s.publicBaseURL, channel, businessID)
}

func (s *Service) checkOwnership(ctx context.Context, userID, businessID string) error {
	business, err := s.store.GetBusiness(ctx, businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return ErrBusinessNotFound
	}
	if business.UserID != userID {
		return ErrAccessDenied
	}
	return nil
}
