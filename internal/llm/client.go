package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/config"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

// Completer is the single operation consumed from the completion API:
// model plus ordered role-tagged messages in, first choice text out.
// An empty string with nil error means the provider returned no choices.
type Completer interface {
	Complete(ctx context.Context, model string, messages []types.ChatMessage) (string, error)
}

// OpenAIClient talks to any OpenAI-compatible endpoint (OpenRouter in
// production). No retries, no streaming; the underlying HTTP client's
// defaults are the only timeout.
type OpenAIClient struct {
	client       *openai.Client
	defaultModel string
}

// NewFromConfig returns nil when the AI integration is not configured,
// which every caller treats as "service unavailable".
func NewFromConfig(cfg *config.Config) *OpenAIClient {
	if cfg.AIAPIKey == "" {
		utils.Zlog.Warn("AI integration not configured, chat features will be limited")
		return nil
	}

	clientCfg := openai.DefaultConfig(cfg.AIAPIKey)
	if cfg.AIBaseURL != "" {
		clientCfg.BaseURL = cfg.AIBaseURL
	}

	return &OpenAIClient{
		client:       openai.NewClientWithConfig(clientCfg),
		defaultModel: cfg.AIModel,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, model string, messages []types.ChatMessage) (string, error) {
	if model == "" {
		model = c.defaultModel
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		utils.Zlog.Warn("completion returned no choices", zap.String("model", model))
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
