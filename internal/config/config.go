// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Job    string `json:"job,omitempty"`     // Path to job posting text or HTML file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Behavior
	APIKey string `json:"api_key,omitempty"` // Gemini API key
	// KeywordWeight multiplies the 0-100 match percent. A pointer so an
	// explicit 0 (disable the keyword component) is distinct from unset.
	KeywordWeight  *float64 `json:"keyword_weight,omitempty"`
	MaxConcurrency int      `json:"max_concurrency,omitempty"` // Concurrent analyses per batch
	Verbose        bool     `json:"verbose,omitempty"`         // Print detailed progress information

	// Cache lifetimes as Go duration strings (e.g. "5m", "1h")
	ResponseCacheTTL string `json:"response_cache_ttl,omitempty"`
	KeywordCacheTTL  string `json:"keyword_cache_ttl,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.KeywordWeight != nil && *c.KeywordWeight < 0 {
		return fmt.Errorf("config error: 'keyword_weight' must be non-negative")
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("config error: 'max_concurrency' must be non-negative")
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if _, err := c.ParseTTL(c.ResponseCacheTTL); err != nil {
		return fmt.Errorf("config error: invalid 'response_cache_ttl': %w", err)
	}
	if _, err := c.ParseTTL(c.KeywordCacheTTL); err != nil {
		return fmt.Errorf("config error: invalid 'keyword_cache_ttl': %w", err)
	}
	return nil
}

// ParseTTL parses a duration string, returning zero for the empty string so
// callers can substitute their own default.
func (c *Config) ParseTTL(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be non-negative")
	}
	return d, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.KeywordWeight == nil {
		result.KeywordWeight = defaults.KeywordWeight
	}
	if result.MaxConcurrency == 0 {
		result.MaxConcurrency = defaults.MaxConcurrency
	}
	if result.ResponseCacheTTL == "" {
		result.ResponseCacheTTL = defaults.ResponseCacheTTL
	}
	if result.KeywordCacheTTL == "" {
		result.KeywordCacheTTL = defaults.KeywordCacheTTL
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
