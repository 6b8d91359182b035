// Package llm provides the text-completion client abstraction used by the
// analysis pipeline, with typed failure kinds, bounded retries, and a
// short-lived response cache. The underlying provider is Google Gemini;
// everything above the provider boundary depends only on the Client
// interface so tests can substitute a deterministic fake.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: free-text generation
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default operational bounds for completion calls.
const (
	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries is the number of attempts for transient failures.
	DefaultMaxRetries = 3
	// DefaultResponseCacheTTL is how long a (model, prompt) response is
	// reusable. Short on purpose: it only has to absorb duplicate calls
	// within a single analysis burst.
	DefaultResponseCacheTTL = 5 * time.Minute
	// DefaultResponseCacheSize bounds the response cache entry count.
	DefaultResponseCacheSize = 256
)

// Config holds the model configuration for the completion client.
type Config struct {
	Provider   Provider
	Models     map[ModelTier]string
	Timeout    time.Duration
	MaxRetries int

	// ResponseCacheTTL and ResponseCacheSize bound the prompt-response
	// cache NewClient wraps around the provider. Zero values take the
	// package defaults.
	ResponseCacheTTL  time.Duration
	ResponseCacheSize int
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Timeout:           DefaultTimeout,
		MaxRetries:        DefaultMaxRetries,
		ResponseCacheTTL:  DefaultResponseCacheTTL,
		ResponseCacheSize: DefaultResponseCacheSize,
	}
}

// GetModel returns the model name for a given tier, falling back to the
// standard tier, then lite, when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:          c.Provider,
		Models:            make(map[ModelTier]string),
		Timeout:           c.Timeout,
		MaxRetries:        c.MaxRetries,
		ResponseCacheTTL:  c.ResponseCacheTTL,
		ResponseCacheSize: c.ResponseCacheSize,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
