package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/core"
	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

var (
	ErrUnavailable   = errors.New("ai service not configured")
	ErrAccessDenied  = errors.New("access denied")
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// Store is the persistence slice behind both chat endpoints.
type Store interface {
	GetBusiness(ctx context.Context, id string) (*types.Business, error)
	GetBusinessesByUser(ctx context.Context, userID string) ([]types.Business, error)
	GetBotSettings(ctx context.Context, businessID string) (*types.BotSettings, error)
	IncrementCreditsUsed(ctx context.Context, businessID string) error
}

type Service struct {
	store Store
	ai    llm.Completer
	keys  *utils.ApiKeyCache
	saver *core.ConversationSaver
}

func NewService(store Store, ai llm.Completer, keys *utils.ApiKeyCache, saver *core.ConversationSaver) *Service {
	return &Service{store: store, ai: ai, keys: keys, saver: saver}
}

// Chat runs a completion turn for an authenticated dashboard user.
// Without an explicit businessId the user's first business supplies the
// bot configuration.
func (s *Service) Chat(ctx context.Context, userID string, req *Request) (*Response, error) {
	if s.ai == nil {
		return nil, ErrUnavailable
	}

	history := req.History
	if len(history) == 0 && req.Message != "" {
		history = []types.ChatMessage{{Role: "user", Content: req.Message}}
	}

	businessID := req.BusinessID
	if businessID != "" {
		business, err := s.store.GetBusiness(ctx, businessID)
		if err != nil {
			return nil, fmt.Errorf("failed to load business: %w", err)
		}
		if business == nil || business.UserID != userID {
			return nil, ErrAccessDenied
		}
	} else {
		businesses, err := s.store.GetBusinessesByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list businesses: %w", err)
		}
		if len(businesses) > 0 {
			businessID = businesses[0].ID
		}
	}

	systemPrompt := llm.DefaultSystemPrompt
	model := ""
	if businessID != "" {
		settings, err := s.store.GetBotSettings(ctx, businessID)
		if err != nil {
			return nil, fmt.Errorf("failed to load bot settings: %w", err)
		}
		if settings != nil {
			if settings.SystemPrompt != "" {
				systemPrompt = settings.SystemPrompt
			}
			model = settings.ModelName
		}
	}

	reply, err := s.complete(ctx, model, systemPrompt, history)
	if err != nil {
		return nil, err
	}

	if businessID != "" {
		if err := s.store.IncrementCreditsUsed(ctx, businessID); err != nil {
			utils.Zlog.Error("Failed to record credit usage",
				zap.String("business_id", businessID), zap.Error(err))
		}
	}

	return &Response{Reply: reply}, nil
}

// WidgetChat runs a completion turn for an embedded widget identified by
// its API key and appends both turns to the session transcript.
func (s *Service) WidgetChat(ctx context.Context, apiKey string, req *WidgetRequest) (*WidgetResponse, error) {
	if s.ai == nil {
		return nil, ErrUnavailable
	}

	business, err := s.keys.Resolve(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve api key: %w", err)
	}
	if business == nil {
		return nil, ErrInvalidAPIKey
	}

	settings, err := s.store.GetBotSettings(ctx, business.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bot settings: %w", err)
	}

	systemPrompt := llm.DefaultSystemPrompt
	model := ""
	welcomeMessage := ""
	if settings != nil {
		if settings.SystemPrompt != "" {
			systemPrompt = settings.SystemPrompt
		}
		model = settings.ModelName
		welcomeMessage = settings.WelcomeMessage
	}

	reply, err := s.complete(ctx, model, systemPrompt, req.History)
	if err != nil {
		return nil, err
	}

	if err := s.store.IncrementCreditsUsed(ctx, business.ID); err != nil {
		utils.Zlog.Error("Failed to record credit usage",
			zap.String("business_id", business.ID), zap.Error(err))
	}

	if s.saver != nil && req.SessionID != "" {
		now := time.Now().UTC()
		turns := make([]loaders.ConversationTurn, 0, 2)
		if last := lastUserContent(req.History); last != "" {
			turns = append(turns, loaders.ConversationTurn{
				BusinessID: business.ID,
				SessionID:  req.SessionID,
				Channel:    string(types.ChannelWebWidget),
				Role:       "user",
				Content:    last,
				CreatedAt:  now,
			})
		}
		turns = append(turns, loaders.ConversationTurn{
			BusinessID: business.ID,
			SessionID:  req.SessionID,
			Channel:    string(types.ChannelWebWidget),
			Role:       "assistant",
			Content:    reply,
			CreatedAt:  now,
		})
		s.saver.Save(turns...)
	}

	return &WidgetResponse{Reply: reply, WelcomeMessage: welcomeMessage}, nil
}

func (s *Service) complete(ctx context.Context, model, systemPrompt string, history []types.ChatMessage) (string, error) {
	messages := make([]types.ChatMessage, 0, len(history)+1)
	messages = append(messages, types.ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)

	reply, err := s.ai.Complete(ctx, model, messages)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}
	if reply == "" {
		reply = llm.FallbackReply
	}
	return reply, nil
}

func lastUserContent(history []types.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			return history[i].Content
		}
	}
	return ""
}
