package webhooks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/api/channels"
	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

// Dispatch failure conditions surfaced to the controller.
var (
	ErrBusinessNotFound         = errors.New("business not found")
	ErrIntegrationNotConfigured = errors.New("integration not configured")
)

// Outcome tells the controller what happened and how to answer. Exactly
// one of the condition fields is set.
type Outcome struct {
	Adapter     channels.Adapter
	Reply       string
	SenderID    string
	LeadCreated bool
	Acked       bool
	Unavailable bool
}

// Service is the channel dispatcher: it resolves the tenant and its
// integration, normalizes the inbound payload through the channel
// adapter, runs the stateless completion turn and debits one credit.
type Service struct {
	store                 Store
	ai                    llm.Completer
	metaVerifyToken       string
	instagramVerifyToken  string
	twitterConsumerSecret string
}

// NewService takes the completion client explicitly; a nil Completer
// marks the AI integration as unavailable.
func NewService(store Store, ai llm.Completer, metaVerifyToken, instagramVerifyToken, twitterConsumerSecret string) *Service {
	return &Service{
		store:                 store,
		ai:                    ai,
		metaVerifyToken:       metaVerifyToken,
		instagramVerifyToken:  instagramVerifyToken,
		twitterConsumerSecret: twitterConsumerSecret,
	}
}

func (s *Service) Dispatch(ctx context.Context, channelName, businessID string, body []byte, header http.Header) (*Outcome, error) {
	adapter := channels.Resolve(channelName)
	outcome := &Outcome{Adapter: adapter}

	business, err := s.store.GetBusiness(ctx, businessID)
	if err != nil {
		return outcome, fmt.Errorf("failed to load business: %w", err)
	}
	if business == nil {
		return outcome, ErrBusinessNotFound
	}

	integration, err := s.store.GetIntegrationChannel(ctx, businessID, channelName)
	if err != nil {
		return outcome, fmt.Errorf("failed to load integration: %w", err)
	}
	if integration == nil || integration.Status != types.IntegrationConnected {
		return outcome, ErrIntegrationNotConfigured
	}

	result, err := adapter.Extract(body, header)
	if err != nil {
		// Malformed platform payloads are acknowledged, not retried;
		// there is no redelivery contract to satisfy.
		utils.Zlog.Warn("Failed to parse webhook payload",
			zap.String("channel", channelName),
			zap.String("business_id", businessID),
			zap.Error(err))
		outcome.Acked = true
		return outcome, nil
	}

	if result.Lead != nil {
		lead := *result.Lead
		lead.BusinessID = businessID
		if _, err := s.store.CreateLead(ctx, lead); err != nil {
			return outcome, fmt.Errorf("failed to create lead: %w", err)
		}
		utils.Zlog.Info("Created lead from commerce webhook",
			zap.String("channel", channelName),
			zap.String("business_id", businessID))
		outcome.LeadCreated = true
		return outcome, nil
	}

	if result.Text == "" {
		outcome.Acked = true
		return outcome, nil
	}

	if s.ai == nil {
		outcome.Unavailable = true
		return outcome, nil
	}

	settings, err := s.store.GetBotSettings(ctx, businessID)
	if err != nil {
		return outcome, fmt.Errorf("failed to load bot settings: %w", err)
	}

	systemPrompt := llm.DefaultSystemPrompt
	model := ""
	if settings != nil {
		if settings.SystemPrompt != "" {
			systemPrompt = settings.SystemPrompt
		}
		model = settings.ModelName
	}

	// Each webhook turn is stateless: one system message, one user turn,
	// no history.
	reply, err := s.ai.Complete(ctx, model, []types.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: result.Text},
	})
	if err != nil {
		return outcome, fmt.Errorf("completion failed: %w", err)
	}
	if reply == "" {
		reply = llm.FallbackReply
	}

	if err := s.store.IncrementCreditsUsed(ctx, businessID); err != nil {
		// The reply already exists; losing the debit is preferable to
		// dropping the user's answer.
		utils.Zlog.Error("Failed to record credit usage",
			zap.String("business_id", businessID),
			zap.Error(err))
	}

	outcome.Reply = reply
	outcome.SenderID = result.SenderID
	return outcome, nil
}
