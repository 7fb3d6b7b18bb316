package utils

import (
	"context"
	"sync"
	"time"

	"github.com/SkylineKAI/platform-api/internal/types"
)

// BusinessLookup resolves an API key to its business, typically backed
// by the businesses table.
type BusinessLookup func(ctx context.Context, apiKey string) (*types.Business, error)

type cacheEntry struct {
	business *types.Business
	expires  time.Time
}

// ApiKeyCache is a read-through cache in front of the business-by-API-key
// lookup used on the widget chat path. Widget traffic hits the same few
// keys repeatedly, so a short TTL keeps the hot path off the database
// without holding revoked keys for long.
type ApiKeyCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	lookup  BusinessLookup
	ttl     time.Duration
}

func NewApiKeyCache(lookup BusinessLookup, ttl time.Duration) *ApiKeyCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ApiKeyCache{
		entries: make(map[string]cacheEntry),
		lookup:  lookup,
		ttl:     ttl,
	}
}

// Resolve returns the business owning apiKey, consulting the cache first.
// A nil business with nil error means the key is unknown.
func (c *ApiKeyCache) Resolve(ctx context.Context, apiKey string) (*types.Business, error) {
	if apiKey == "" {
		return nil, nil
	}

	c.mu.RLock()
	entry, ok := c.entries[apiKey]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.business, nil
	}

	business, err := c.lookup(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[apiKey] = cacheEntry{business: business, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return business, nil
}

// Invalidate drops a single key, used when a business is deleted or its
// key would otherwise serve stale.
func (c *ApiKeyCache) Invalidate(apiKey string) {
	c.mu.Lock()
	delete(c.entries, apiKey)
	c.mu.Unlock()
}
