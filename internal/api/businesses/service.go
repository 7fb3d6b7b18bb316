package businesses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

var (
	ErrNotFound     = errors.New("business not found")
	ErrAccessDenied = errors.New("access denied")
)

const (
	freePlan        = "FREE"
	freeCredits     = 100
	defaultTheme    = "dark"
	subscriptionLen = 30 * 24 * time.Hour
)

// Store is the persistence slice behind business onboarding and reads.
type Store interface {
	CreateBusiness(ctx context.Context, userID, businessName, industry, plan, apiKey string) (*types.Business, error)
	GetBusiness(ctx context.Context, id string) (*types.Business, error)
	GetBusinessesByUser(ctx context.Context, userID string) ([]types.Business, error)
	CreateBotSettings(ctx context.Context, businessID, systemPrompt, theme, welcomeMessage, modelName string) (*types.BotSettings, error)
	CreateSubscription(ctx context.Context, businessID, plan, status string, creditsTotal int, periodEnd time.Time) (*types.Subscription, error)
	GetSubscriptionByBusiness(ctx context.Context, businessID string) (*types.Subscription, error)
}

type Service struct {
	store        Store
	defaultModel string
}

func NewService(store Store, defaultModel string) *Service {
	return &Service{store: store, defaultModel: defaultModel}
}

// Create onboards a tenant: the business itself, default bot settings
// and a free subscription with its starter credit allotment.
func (s *Service) Create(ctx context.Context, userID string, req *CreateRequest) (*types.Business, error) {
	business, err := s.store.CreateBusiness(ctx, userID, req.BusinessName, req.Industry, freePlan, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	if _, err := s.store.CreateBotSettings(ctx, business.ID,
		llm.DefaultSystemPrompt, defaultTheme, llm.DefaultWelcomeMessage, s.defaultModel); err != nil {
		return nil, fmt.Errorf("failed to create default bot settings: %w", err)
	}

	periodEnd := time.Now().Add(subscriptionLen)
	if _, err := s.store.CreateSubscription(ctx, business.ID, freePlan, "active", freeCredits, periodEnd); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	utils.Zlog.Info("Business onboarded",
		zap.String("business_id", business.ID),
		zap.String("user_id", userID))
	return business, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]types.Business, error) {
	return s.store.GetBusinessesByUser(ctx, userID)
}

// Get loads a business the caller owns.
func (s *Service) Get(ctx context.Context, userID, businessID string) (*types.Business, error) {
	business, err := s.store.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrNotFound
	}
	if business.UserID != userID {
		return nil, ErrAccessDenied
	}
	return business, nil
}

func (s *Service) GetSubscription(ctx context.Context, userID, businessID string) (*types.Subscription, error) {
	if _, err := s.Get(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.store.GetSubscriptionByBusiness(ctx, businessID)
}
