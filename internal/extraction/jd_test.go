package extraction

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-analyzer/internal/cache"
	"github.com/jonathan/ats-analyzer/internal/llm"
	"github.com/jonathan/ats-analyzer/internal/types"
)

func TestJDExtractor_StructuredResponse(t *testing.T) {
	client := &llm.FakeClient{Response: `{"keywords": ["Python", "SQL", "Docker"]}`}
	extractor := NewJDExtractor(client, nil)

	result, err := extractor.Extract(context.Background(), "We need a data engineer.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL", "Docker"}, result.Keywords)
	assert.Equal(t, types.KeywordSourceStructured, result.Source)
}

func TestJDExtractor_StructuredResponseWithCodeFence(t *testing.T) {
	client := &llm.FakeClient{Response: "```json\n{\"keywords\": [\"Go\", \"gRPC\"]}\n```"}
	extractor := NewJDExtractor(client, nil)

	result, err := extractor.Extract(context.Background(), "Backend role.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "gRPC"}, result.Keywords)
	assert.Equal(t, types.KeywordSourceStructured, result.Source)
}

func TestJDExtractor_FallbackCommaSplit(t *testing.T) {
	client := &llm.FakeClient{Response: "Python, SQL, Docker"}
	extractor := NewJDExtractor(client, nil)

	result, err := extractor.Extract(context.Background(), "We need a data engineer.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL", "Docker"}, result.Keywords)
	assert.Equal(t, types.KeywordSourceFallback, result.Source)
}

func TestJDExtractor_FallbackNewlineSplit(t *testing.T) {
	client := &llm.FakeClient{Response: "Python\nSQL\nDocker"}
	extractor := NewJDExtractor(client, nil)

	result, err := extractor.Extract(context.Background(), "We need a data engineer.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL", "Docker"}, result.Keywords)
	assert.Equal(t, types.KeywordSourceFallback, result.Source)
}

func TestJDExtractor_StructuredEmptyList(t *testing.T) {
	// A parsed-but-empty list is an Empty outcome; splitting the raw JSON
	// into junk keywords would poison the missing list downstream.
	client := &llm.FakeClient{Response: `{"keywords": []}`}
	extractor := NewJDExtractor(client, nil)

	result, err := extractor.Extract(context.Background(), "Sparse posting.")
	require.NoError(t, err)

	assert.Empty(t, result.Keywords)
	assert.Equal(t, types.KeywordSourceEmpty, result.Source)
}

func TestJDExtractor_EmptyResponse(t *testing.T) {
	client := &llm.FakeClient{Response: "   "}
	extractor := NewJDExtractor(client, nil)

	result, err := extractor.Extract(context.Background(), "Short posting.")
	require.NoError(t, err)

	assert.Empty(t, result.Keywords)
	assert.Equal(t, types.KeywordSourceEmpty, result.Source)
}

func TestJDExtractor_DeduplicatesCaseInsensitively(t *testing.T) {
	client := &llm.FakeClient{Response: `{"keywords": ["Python", "python", " SQL ", "SQL"]}`}
	extractor := NewJDExtractor(client, nil)

	result, err := extractor.Extract(context.Background(), "Posting.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL"}, result.Keywords)
}

func TestJDExtractor_CacheAbsorbsRepeatCalls(t *testing.T) {
	client := &llm.FakeClient{Response: `{"keywords": ["Go"]}`}
	store := cache.New(16, time.Minute)
	extractor := NewJDExtractor(client, store)

	first, err := extractor.Extract(context.Background(), "Backend engineer role at Acme.")
	require.NoError(t, err)
	second, err := extractor.Extract(context.Background(), "Backend engineer role at Acme.")
	require.NoError(t, err)

	assert.Equal(t, first.Keywords, second.Keywords)
	assert.Equal(t, first.Source, second.Source)
	assert.Equal(t, 1, client.CallCount(), "second extract should be served from cache")
}

func TestJDExtractor_CacheKeyUsesTruncatedPrefix(t *testing.T) {
	client := &llm.FakeClient{Response: `{"keywords": ["Go"]}`}
	store := cache.New(16, time.Minute)
	extractor := NewJDExtractor(client, store)

	sharedPrefix := strings.Repeat("x", jdCacheKeyPrefixLen)
	_, err := extractor.Extract(context.Background(), sharedPrefix+" first variant")
	require.NoError(t, err)
	_, err = extractor.Extract(context.Background(), sharedPrefix+" second variant")
	require.NoError(t, err)

	// Known trade-off: postings sharing the full prefix collide.
	assert.Equal(t, 1, client.CallCount())
}

func TestJDExtractor_FailureIsNotCached(t *testing.T) {
	client := &llm.FakeClient{ErrOnce: &llm.ServiceError{Kind: llm.KindTransport, Message: "boom"}, Response: `{"keywords": ["Go"]}`}
	store := cache.New(16, time.Minute)
	extractor := NewJDExtractor(client, store)

	_, err := extractor.Extract(context.Background(), "Posting text.")
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())

	result, err := extractor.Extract(context.Background(), "Posting text.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, result.Keywords)
}

func TestJDExtractor_CompletionErrorPropagates(t *testing.T) {
	client := &llm.FakeClient{Err: &llm.ServiceError{Kind: llm.KindQuotaExceeded, Message: "quota exhausted"}}
	extractor := NewJDExtractor(client, nil)

	_, err := extractor.Extract(context.Background(), "Posting.")
	require.Error(t, err)

	var se *llm.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, llm.KindQuotaExceeded, se.Kind)
}
