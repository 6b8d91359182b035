package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/cache"
	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/ingestion"
	"github.com/jonathan/ats-analyzer/internal/llm"
	"github.com/jonathan/ats-analyzer/internal/scoring"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// loadResume reads a resume JSON file into a ResumeDocument.
func loadResume(path string) (*types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var resume types.ResumeDocument
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON %s: %w", path, err)
	}
	return &resume, nil
}

// resolveJobText produces the job-description text from whichever input the
// flags carry: a local text/HTML file or a URL.
func resolveJobText(ctx context.Context, jobPath, jobURL string) (string, error) {
	switch {
	case jobPath != "" && jobURL != "":
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	case jobPath != "":
		return ingestion.FromFile(jobPath)
	case jobURL != "":
		return ingestion.FromURL(ctx, jobURL)
	default:
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
}

// resolveAPIKey prefers the flag, then the config file, then the environment.
func resolveAPIKey(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg != nil && cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key)")
}

// buildOrchestrator assembles the production pipeline: Gemini client with
// retry and response cache, keyword cache, and the configured weight table.
func buildOrchestrator(ctx context.Context, cfg *config.Config, apiKey string) (*analysis.Orchestrator, llm.Client, error) {
	llmConfig := llm.DefaultConfig()
	if cfg != nil {
		if ttl, err := cfg.ParseTTL(cfg.ResponseCacheTTL); err == nil && ttl > 0 {
			llmConfig.ResponseCacheTTL = ttl
		}
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	keywordTTL := analysis.DefaultKeywordCacheTTL
	if cfg != nil {
		if ttl, err := cfg.ParseTTL(cfg.KeywordCacheTTL); err == nil && ttl > 0 {
			keywordTTL = ttl
		}
	}
	keywordCache := cache.New(analysis.DefaultKeywordCacheSize, keywordTTL)

	weights := scoring.DefaultWeights()
	if cfg != nil && cfg.KeywordWeight != nil {
		weights.Keyword = *cfg.KeywordWeight
	}

	return analysis.New(client, keywordCache, analysis.WithWeights(weights)), client, nil
}

// loadConfigIfSet loads and validates a config file when the flag is set.
func loadConfigIfSet(path string) (*config.Config, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeJSON writes v to path as indented JSON.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
