package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedClientAbsorbsDuplicateCalls(t *testing.T) {
	fake := &FakeClient{Response: "answer"}
	client := WithCache(fake, 8, time.Minute)

	first, err := client.GenerateContent(context.Background(), "same prompt", TierLite)
	require.NoError(t, err)
	second, err := client.GenerateContent(context.Background(), "same prompt", TierLite)
	require.NoError(t, err)

	assert.Equal(t, "answer", first)
	assert.Equal(t, "answer", second)
	assert.Equal(t, 1, fake.CallCount(), "second call should be served from cache")
}

func TestCachedClientKeysByModeAndModel(t *testing.T) {
	fake := &FakeClient{Response: "answer"}
	client := WithCache(fake, 8, time.Minute)

	_, err := client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	_, err = client.GenerateJSON(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	_, err = client.GenerateContent(context.Background(), "prompt", TierStandard)
	require.NoError(t, err)

	assert.Equal(t, 3, fake.CallCount(), "mode and model are part of the cache key")
}

func TestCachedClientDoesNotCacheFailures(t *testing.T) {
	fake := &FakeClient{
		ErrOnce:  &ServiceError{Kind: KindTransport, Message: "connection reset"},
		Response: "answer",
	}
	client := WithCache(fake, 8, time.Minute)

	_, err := client.GenerateContent(context.Background(), "prompt", TierLite)
	require.Error(t, err)

	text, err := client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	assert.Equal(t, "answer", text)
	assert.Equal(t, 2, fake.CallCount())
}

func TestWrapClientUsesConfiguredCacheTTL(t *testing.T) {
	fake := &FakeClient{Response: "answer"}
	client := wrapClient(fake, &Config{
		MaxRetries:       1,
		ResponseCacheTTL: 20 * time.Millisecond,
	})

	_, err := client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	_, err = client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount())

	time.Sleep(30 * time.Millisecond)

	_, err = client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.CallCount(), "entry should expire after the configured TTL")
}

func TestWrapClientDefaultsCacheBounds(t *testing.T) {
	fake := &FakeClient{Response: "answer"}
	client := wrapClient(fake, &Config{MaxRetries: 1})

	_, err := client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	_, err = client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CallCount(), "zero config values fall back to default cache bounds")
}

func TestCachedClientHealthCheck(t *testing.T) {
	fake := &FakeClient{Response: "answer"}
	client := WithCache(fake, 8, time.Minute)

	_, err := client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)
	_, err = client.GenerateContent(context.Background(), "prompt", TierLite)
	require.NoError(t, err)

	health := client.HealthCheck()
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 1, health.CacheSize)
	assert.Equal(t, int64(1), health.CacheHits)
	assert.Equal(t, int64(1), health.CacheMisses)
}
