package webhooks

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

func TestMain(m *testing.M) {
	utils.Zlog = zap.NewNop()
	os.Exit(m.Run())
}

type fakeStore struct {
	business    *types.Business
	integration *types.IntegrationChannel
	settings    *types.BotSettings

	leads      []loaders.LeadInput
	increments int
	incErr     error
}

func (f *fakeStore) GetBusiness(ctx context.Context, id string) (*types.Business, error) {
	if f.business != nil && f.business.ID == id {
		return f.business, nil
	}
	return nil, nil
}

func (f *fakeStore) GetIntegrationChannel(ctx context.Context, businessID, channel string) (*types.IntegrationChannel, error) {
	if f.integration != nil && f.integration.Channel == channel {
		return f.integration, nil
	}
	return nil, nil
}

func (f *fakeStore) GetBotSettings(ctx context.Context, businessID string) (*types.BotSettings, error) {
	return f.settings, nil
}

func (f *fakeStore) CreateLead(ctx context.Context, in loaders.LeadInput) (*types.Lead, error) {
	f.leads = append(f.leads, in)
	return &types.Lead{ID: "lead-1", BusinessID: in.BusinessID, Name: in.Name}, nil
}

func (f *fakeStore) IncrementCreditsUsed(ctx context.Context, businessID string) error {
	if f.incErr != nil {
		return f.incErr
	}
	f.increments++
	return nil
}

type fakeCompleter struct {
	reply string
	err   error
	calls int
	last  []types.ChatMessage
	model string
}

func (f *fakeCompleter) Complete(ctx context.Context, model string, messages []types.ChatMessage) (string, error) {
	f.calls++
	f.model = model
	f.last = messages
	return f.reply, f.err
}

func TestDispatchRepliesAndDebitsOneCredit(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "web_widget", Status: types.IntegrationConnected},
		settings:    &types.BotSettings{SystemPrompt: "You sell villas.", ModelName: "gpt-4o-mini"},
	}
	ai := &fakeCompleter{reply: "Of course!"}
	svc := NewService(store, ai, "verify", "insta-verify", "consumer")

	outcome, err := svc.Dispatch(context.Background(), "web_widget", "biz-1",
		[]byte(`{"message":"hi","sessionId":"s1"}`), http.Header{})
	require.NoError(t, err)

	assert.Equal(t, "Of course!", outcome.Reply)
	assert.Equal(t, "s1", outcome.SenderID)
	assert.Equal(t, 1, store.increments)
	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, "gpt-4o-mini", ai.model)

	require.Len(t, ai.last, 2)
	assert.Equal(t, "system", ai.last[0].Role)
	assert.Equal(t, "You sell villas.", ai.last[0].Content)
	assert.Equal(t, "hi", ai.last[1].Content)
}

func TestDispatchDefaultsPromptWithoutSettings(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "web_widget", Status: types.IntegrationConnected},
	}
	ai := &fakeCompleter{reply: "ok"}
	svc := NewService(store, ai, "verify", "insta-verify", "consumer")

	_, err := svc.Dispatch(context.Background(), "web_widget", "biz-1",
		[]byte(`{"message":"hi"}`), http.Header{})
	require.NoError(t, err)

	require.Len(t, ai.last, 2)
	assert.Equal(t, llm.DefaultSystemPrompt, ai.last[0].Content)
	assert.Empty(t, ai.model)
}

func TestDispatchUnknownBusiness(t *testing.T) {
	svc := NewService(&fakeStore{}, &fakeCompleter{}, "verify", "insta-verify", "consumer")

	_, err := svc.Dispatch(context.Background(), "web_widget", "missing", []byte(`{}`), http.Header{})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestDispatchDisconnectedIntegration(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "instagram", Status: types.IntegrationDisconnected},
	}
	svc := NewService(store, &fakeCompleter{}, "verify", "insta-verify", "consumer")

	_, err := svc.Dispatch(context.Background(), "instagram", "biz-1", []byte(`{}`), http.Header{})
	assert.ErrorIs(t, err, ErrIntegrationNotConfigured)
}

func TestDispatchMalformedPayloadIsAcked(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "instagram", Status: types.IntegrationConnected},
	}
	ai := &fakeCompleter{reply: "unused"}
	svc := NewService(store, ai, "verify", "insta-verify", "consumer")

	outcome, err := svc.Dispatch(context.Background(), "instagram", "biz-1", []byte(`not json`), http.Header{})
	require.NoError(t, err)
	assert.True(t, outcome.Acked)
	assert.Zero(t, ai.calls)
	assert.Zero(t, store.increments)
}

func TestDispatchEmptyEventIsAcked(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "messenger", Status: types.IntegrationConnected},
	}
	ai := &fakeCompleter{reply: "unused"}
	svc := NewService(store, ai, "verify", "insta-verify", "consumer")

	outcome, err := svc.Dispatch(context.Background(), "messenger", "biz-1",
		[]byte(`{"object":"page","entry":[]}`), http.Header{})
	require.NoError(t, err)
	assert.True(t, outcome.Acked)
	assert.Zero(t, ai.calls)
}

func TestDispatchShopifyOrderCreatesLeadWithoutAI(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "shopify", Status: types.IntegrationConnected},
	}
	ai := &fakeCompleter{reply: "unused"}
	svc := NewService(store, ai, "verify", "insta-verify", "consumer")

	header := http.Header{}
	header.Set("X-Shopify-Topic", "orders/create")
	body := []byte(`{"order_number":5,"total_price":"99.00","currency":"USD","customer":{"first_name":"Sam","last_name":"Lee","email":"sam@example.com"}}`)

	outcome, err := svc.Dispatch(context.Background(), "shopify", "biz-1", body, header)
	require.NoError(t, err)

	assert.True(t, outcome.LeadCreated)
	assert.Zero(t, ai.calls)
	assert.Zero(t, store.increments)
	require.Len(t, store.leads, 1)
	assert.Equal(t, "biz-1", store.leads[0].BusinessID)
	assert.Equal(t, "Sam Lee", store.leads[0].Name)
}

func TestDispatchWithoutAIIsUnavailable(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "web_widget", Status: types.IntegrationConnected},
	}
	svc := NewService(store, nil, "verify", "insta-verify", "consumer")

	outcome, err := svc.Dispatch(context.Background(), "web_widget", "biz-1",
		[]byte(`{"message":"hi"}`), http.Header{})
	require.NoError(t, err)
	assert.True(t, outcome.Unavailable)
	assert.Zero(t, store.increments)
}

func TestDispatchEmptyReplyFallsBack(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "web_widget", Status: types.IntegrationConnected},
	}
	svc := NewService(store, &fakeCompleter{reply: ""}, "verify", "insta-verify", "consumer")

	outcome, err := svc.Dispatch(context.Background(), "web_widget", "biz-1",
		[]byte(`{"message":"hi"}`), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, llm.FallbackReply, outcome.Reply)
}

func TestDispatchCreditFailureKeepsReply(t *testing.T) {
	store := &fakeStore{
		business:    &types.Business{ID: "biz-1"},
		integration: &types.IntegrationChannel{Channel: "web_widget", Status: types.IntegrationConnected},
		incErr:      errors.New("db down"),
	}
	svc := NewService(store, &fakeCompleter{reply: "answer"}, "verify", "insta-verify", "consumer")

	outcome, err := svc.Dispatch(context.Background(), "web_widget", "biz-1",
		[]byte(`{"message":"hi"}`), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, "answer", outcome.Reply)
}
