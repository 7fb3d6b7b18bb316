package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkylineKAI/platform-api/internal/types"
)

func TestApiKeyCacheServesFromCache(t *testing.T) {
	calls := 0
	cache := NewApiKeyCache(func(ctx context.Context, apiKey string) (*types.Business, error) {
		calls++
		return &types.Business{ID: "biz-1", APIKey: apiKey}, nil
	}, time.Minute)

	for i := 0; i < 3; i++ {
		business, err := cache.Resolve(context.Background(), "key-1")
		require.NoError(t, err)
		require.NotNil(t, business)
		assert.Equal(t, "biz-1", business.ID)
	}
	assert.Equal(t, 1, calls)
}

func TestApiKeyCacheCachesMisses(t *testing.T) {
	calls := 0
	cache := NewApiKeyCache(func(ctx context.Context, apiKey string) (*types.Business, error) {
		calls++
		return nil, nil
	}, time.Minute)

	for i := 0; i < 2; i++ {
		business, err := cache.Resolve(context.Background(), "unknown")
		require.NoError(t, err)
		assert.Nil(t, business)
	}
	assert.Equal(t, 1, calls)
}

func TestApiKeyCacheEmptyKey(t *testing.T) {
	cache := NewApiKeyCache(func(ctx context.Context, apiKey string) (*types.Business, error) {
		t.Fatal("lookup should not run for empty keys")
		return nil, nil
	}, time.Minute)

	business, err := cache.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, business)
}

func TestApiKeyCacheExpiry(t *testing.T) {
	calls := 0
	cache := NewApiKeyCache(func(ctx context.Context, apiKey string) (*types.Business, error) {
		calls++
		return &types.Business{ID: "biz-1"}, nil
	}, 10*time.Millisecond)

	_, err := cache.Resolve(context.Background(), "key-1")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = cache.Resolve(context.Background(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestApiKeyCacheInvalidate(t *testing.T) {
	calls := 0
	cache := NewApiKeyCache(func(ctx context.Context, apiKey string) (*types.Business, error) {
		calls++
		return &types.Business{ID: "biz-1"}, nil
	}, time.Minute)

	_, err := cache.Resolve(context.Background(), "key-1")
	require.NoError(t, err)

	cache.Invalidate("key-1")

	_, err = cache.Resolve(context.Background(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
