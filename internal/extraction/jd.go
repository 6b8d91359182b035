package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/cache"
	"github.com/jonathan/ats-analyzer/internal/llm"
	"github.com/jonathan/ats-analyzer/internal/prompts"
	"github.com/jonathan/ats-analyzer/internal/schemas"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// jdCacheKeyPrefixLen is how much of the trimmed job description feeds the
// cache key. Deliberate space/cost trade-off carried over from the original
// design: two postings sharing a 100-character prefix (e.g. a boilerplate
// company header) collide and return each other's cached keywords. Fixing
// this (full-text hash key) is an intentional design change, not made here.
const jdCacheKeyPrefixLen = 100

// KeywordResult is a keyword list tagged with how it was obtained.
type KeywordResult struct {
	Keywords []string            `json:"keywords"`
	Source   types.KeywordSource `json:"source"`
}

// JDExtractor extracts a keyword list from free job-description text via the
// completion client, caching results in a longer-lived keyword cache.
type JDExtractor struct {
	client llm.Client
	store  *cache.Cache
}

// NewJDExtractor creates an extractor backed by the given client and keyword
// cache. The cache may be nil to disable keyword caching.
func NewJDExtractor(client llm.Client, store *cache.Cache) *JDExtractor {
	return &JDExtractor{client: client, store: store}
}

// Extract returns the keyword list for jdText. The structured JSON reply is
// tried first; if the model returns anything else, the raw text is
// comma-split into a degraded-but-usable list. Parse failures never abort
// the analysis. Only completion failures propagate, already typed by the
// client layer.
func (e *JDExtractor) Extract(ctx context.Context, jdText string) (*KeywordResult, error) {
	jdText = strings.TrimSpace(jdText)

	key := e.cacheKey(jdText)
	if e.store != nil {
		if cached, ok := e.store.Get(key); ok {
			var result KeywordResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
			e.store.Delete(key)
		}
	}

	prompt := buildExtractionPrompt(jdText)
	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	result := decodeKeywords(raw)

	// Populated only on success: an empty outcome is not worth pinning
	// for the cache TTL.
	if e.store != nil && result.Source != types.KeywordSourceEmpty {
		if encoded, err := json.Marshal(result); err == nil {
			e.store.Set(key, string(encoded))
		}
	}

	return result, nil
}

func (e *JDExtractor) cacheKey(jdText string) string {
	prefix := jdText
	if len(prefix) > jdCacheKeyPrefixLen {
		prefix = prefix[:jdCacheKeyPrefixLen]
	}
	return cache.Key("jd-keywords", prefix)
}

// buildExtractionPrompt constructs the prompt for structured keyword extraction.
func buildExtractionPrompt(jdText string) string {
	template := prompts.MustGet("extraction.json", "extract-keywords")
	return prompts.Format(template, map[string]string{
		"JDText": jdText,
	})
}

// decodeKeywords runs the two-stage decode: strict schema parse first, then
// the comma-split fallback. The outcome is tagged so downstream consumers
// can tell a structured list from a degraded one.
func decodeKeywords(raw string) *KeywordResult {
	cleaned := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateKeywordResponse(cleaned); err == nil {
		var reply struct {
			Keywords []string `json:"keywords"`
		}
		if err := json.Unmarshal([]byte(cleaned), &reply); err == nil {
			// A successful parse is final: the fallback is for replies
			// that could not be parsed, not for parsed-but-empty lists.
			keywords := dedupeKeywords(reply.Keywords)
			if len(keywords) == 0 {
				return &KeywordResult{Keywords: []string{}, Source: types.KeywordSourceEmpty}
			}
			return &KeywordResult{Keywords: keywords, Source: types.KeywordSourceStructured}
		}
	}

	keywords := dedupeKeywords(fallbackSplit(raw))
	if len(keywords) == 0 {
		return &KeywordResult{Keywords: []string{}, Source: types.KeywordSourceEmpty}
	}
	return &KeywordResult{Keywords: keywords, Source: types.KeywordSourceFallback}
}

// fallbackSplit treats the raw response as a comma-separated list, also
// honoring newlines since models frequently emit one keyword per line.
func fallbackSplit(raw string) []string {
	raw = llm.CleanJSONBlock(raw)

	segments := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	keywords := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.Trim(strings.TrimSpace(segment), `"'[]{}`)
		if segment != "" {
			keywords = append(keywords, segment)
		}
	}
	return keywords
}

// dedupeKeywords trims entries and removes case-insensitive duplicates while
// preserving order and the first-seen casing for display.
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		lower := strings.ToLower(keyword)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, keyword)
	}
	return out
}
