package llm

import (
	"context"
	"time"

	"github.com/jonathan/ats-analyzer/internal/cache"
)

// CachedClient wraps a client with a bounded (model, prompt)-keyed response
// cache. Successful responses are reusable for the cache TTL, which absorbs
// duplicate calls within a single analysis burst. Failures are never cached.
type CachedClient struct {
	base  Client
	store *cache.Cache
}

// Health reports client liveness plus response-cache statistics. Consumed by
// the monitoring layer outside this core.
type Health struct {
	Status      string `json:"status"`
	CacheSize   int    `json:"cache_size"`
	CacheHits   int64  `json:"cache_hits"`
	CacheMisses int64  `json:"cache_misses"`
}

// WithCache wraps a client with a response cache of the given capacity and TTL.
func WithCache(base Client, capacity int, ttl time.Duration) *CachedClient {
	return &CachedClient{
		base:  base,
		store: cache.New(capacity, ttl),
	}
}

func (c *CachedClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.lookup(ctx, prompt, tier, "text", c.base.GenerateContent)
}

func (c *CachedClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.lookup(ctx, prompt, tier, "json", c.base.GenerateJSON)
}

func (c *CachedClient) lookup(ctx context.Context, prompt string, tier ModelTier, mode string, call func(context.Context, string, ModelTier) (string, error)) (string, error) {
	key := cache.Key(mode, c.base.GetModel(tier), prompt)
	if text, ok := c.store.Get(key); ok {
		return text, nil
	}

	text, err := call(ctx, prompt, tier)
	if err != nil {
		return "", err
	}

	c.store.Set(key, text)
	return text, nil
}

// GetModel returns the model name for a tier.
func (c *CachedClient) GetModel(tier ModelTier) string {
	return c.base.GetModel(tier)
}

// Close releases resources held by the underlying client.
func (c *CachedClient) Close() error {
	return c.base.Close()
}

// HealthCheck returns a liveness signal plus current cache statistics.
func (c *CachedClient) HealthCheck() Health {
	return Health{
		Status:      "ok",
		CacheSize:   c.store.Len(),
		CacheHits:   c.store.Hits(),
		CacheMisses: c.store.Misses(),
	}
}
