package businesses

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/types"
	"github.com/SkylineKAI/platform-api/internal/utils"
)

func TestMain(m *testing.M) {
	utils.Zlog = zap.NewNop()
	os.Exit(m.Run())
}

type fakeStore struct {
	businesses    map[string]*types.Business
	settings      map[string]*types.BotSettings
	subscriptions map[string]*types.Subscription
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		businesses:    map[string]*types.Business{},
		settings:      map[string]*types.BotSettings{},
		subscriptions: map[string]*types.Subscription{},
	}
}

func (f *fakeStore) CreateBusiness(ctx context.Context, userID, businessName, industry, plan, apiKey string) (*types.Business, error) {
	business := &types.Business{
		ID:           "biz-" + businessName,
		UserID:       userID,
		BusinessName: businessName,
		Industry:     industry,
		Plan:         plan,
		APIKey:       apiKey,
	}
	f.businesses[business.ID] = business
	return business, nil
}

func (f *fakeStore) GetBusiness(ctx context.Context, id string) (*types.Business, error) {
	return f.businesses[id], nil
}

func (f *fakeStore) GetBusinessesByUser(ctx context.Context, userID string) ([]types.Business, error) {
	var out []types.Business
	for _, b := range f.businesses {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateBotSettings(ctx context.Context, businessID, systemPrompt, theme, welcomeMessage, modelName string) (*types.BotSettings, error) {
	settings := &types.BotSettings{
		ID:             "set-1",
		BusinessID:     businessID,
		SystemPrompt:   systemPrompt,
		Theme:          theme,
		WelcomeMessage: welcomeMessage,
		ModelName:      modelName,
	}
	f.settings[businessID] = settings
	return settings, nil
}

func (f *fakeStore) CreateSubscription(ctx context.Context, businessID, plan, status string, creditsTotal int, periodEnd time.Time) (*types.Subscription, error) {
	sub := &types.Subscription{
		ID:           "sub-1",
		BusinessID:   businessID,
		Plan:         plan,
		Status:       status,
		CreditsTotal: creditsTotal,
		PeriodEnd:    &periodEnd,
	}
	f.subscriptions[businessID] = sub
	return sub, nil
}

func (f *fakeStore) GetSubscriptionByBusiness(ctx context.Context, businessID string) (*types.Subscription, error) {
	return f.subscriptions[businessID], nil
}

func TestCreateOnboardsTenant(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, "deepseek/deepseek-chat")

	business, err := svc.Create(context.Background(), "user-1", &CreateRequest{
		BusinessName: "Skyline Homes",
		Industry:     "real estate",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", business.UserID)
	assert.Equal(t, "FREE", business.Plan)
	assert.NotEmpty(t, business.APIKey)

	settings := store.settings[business.ID]
	require.NotNil(t, settings)
	assert.Equal(t, llm.DefaultSystemPrompt, settings.SystemPrompt)
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, llm.DefaultWelcomeMessage, settings.WelcomeMessage)
	assert.Equal(t, "deepseek/deepseek-chat", settings.ModelName)

	sub := store.subscriptions[business.ID]
	require.NotNil(t, sub)
	assert.Equal(t, "active", sub.Status)
	assert.Equal(t, 100, sub.CreditsTotal)
	require.NotNil(t, sub.PeriodEnd)
	assert.True(t, sub.PeriodEnd.After(time.Now()))
}

func TestGetEnforcesOwnership(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, "deepseek/deepseek-chat")

	business, err := svc.Create(context.Background(), "user-1", &CreateRequest{
		BusinessName: "Skyline Homes",
		Industry:     "real estate",
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), "user-1", business.ID)
	require.NoError(t, err)
	assert.Equal(t, business.ID, got.ID)

	_, err = svc.Get(context.Background(), "intruder", business.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Get(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSubscription(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, "deepseek/deepseek-chat")

	business, err := svc.Create(context.Background(), "user-1", &CreateRequest{
		BusinessName: "Skyline Homes",
		Industry:     "real estate",
	})
	require.NoError(t, err)

	sub, err := svc.GetSubscription(context.Background(), "user-1", business.ID)
	require.NoError(t, err)
	assert.Equal(t, business.ID, sub.BusinessID)

	_, err = svc.GetSubscription(context.Background(), "intruder", business.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
