// Package analysis orchestrates the resume-to-job-description pipeline:
// keyword extraction, matching, quality checks, scoring, and suggestion
// building, plus batch execution with per-item failure isolation.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-analyzer/internal/cache"
	"github.com/jonathan/ats-analyzer/internal/extraction"
	"github.com/jonathan/ats-analyzer/internal/llm"
	"github.com/jonathan/ats-analyzer/internal/matching"
	"github.com/jonathan/ats-analyzer/internal/quality"
	"github.com/jonathan/ats-analyzer/internal/scoring"
	"github.com/jonathan/ats-analyzer/internal/suggestions"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Batch execution bounds.
const (
	// MaxBatchSize caps how many resumes one batch call may carry.
	// Exceeding it is a validation failure, never a silent truncation.
	MaxBatchSize = 10
	// DefaultConcurrency is used when the caller passes a non-positive
	// concurrency limit.
	DefaultConcurrency = 3
)

// Keyword-cache defaults. The JD-keyword cache outlives the prompt-response
// cache because job postings are re-analyzed across many resumes.
const (
	DefaultKeywordCacheTTL  = time.Hour
	DefaultKeywordCacheSize = 512
)

// BatchItem is one position of a batch result. Exactly one of Result and Err
// is set; position i corresponds to input resume i regardless of completion
// order.
type BatchItem struct {
	Result *types.AnalysisResult
	Err    error
}

// Orchestrator sequences the pipeline stages for one resume and runs batches
// concurrently. It is stateless per call; only the injected caches carry
// state across analyses.
type Orchestrator struct {
	extractor *extraction.JDExtractor
	suggester *suggestions.Builder
	weights   scoring.Weights
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithWeights overrides the default scoring weight table.
func WithWeights(w scoring.Weights) Option {
	return func(o *Orchestrator) { o.weights = w }
}

// New creates an orchestrator around the given completion client and
// JD-keyword cache. The cache may be nil to disable keyword caching.
func New(client llm.Client, keywordCache *cache.Cache, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		extractor: extraction.NewJDExtractor(client, keywordCache),
		suggester: suggestions.NewBuilder(client),
		weights:   scoring.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Analyze runs the full pipeline for a single resume against a job
// description and assembles the terminal result. Stages are strictly
// sequential: extraction feeds matching, matching feeds scoring, and
// scoring's missing-keyword list feeds suggestion building.
func (o *Orchestrator) Analyze(ctx context.Context, resume *types.ResumeDocument, jdText string) (*types.AnalysisResult, error) {
	req := Request{Resume: resume, JobDescription: jdText}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	jdKeywords, err := o.extractor.Extract(ctx, jdText)
	if err != nil {
		return nil, err
	}

	resumeTokens := extraction.ResumeTokens(resume)
	match := matching.Match(jdKeywords.Keywords, resumeTokens)

	weakBullets := quality.WeakBullets(resume.Experience)
	metricCount := quality.MetricBulletCount(resume.Experience)
	missingSections := quality.MissingSections(resume)

	score := scoring.Score(match, len(weakBullets), metricCount, len(missingSections), o.weights)

	suggestionText, err := o.suggester.Build(ctx, resume, match.Missing)
	if err != nil {
		return nil, err
	}

	return &types.AnalysisResult{
		ID:              uuid.NewString(),
		Score:           score,
		Match:           match,
		WeakBullets:     weakBullets,
		MetricCount:     metricCount,
		MissingSections: missingSections,
		Suggestions:     suggestionText,
		KeywordSource:   jdKeywords.Source,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// AnalyzeBatch analyzes up to MaxBatchSize resumes against one job
// description, at most maxConcurrency at a time. The result slice has one
// entry per input resume in input order; a failing resume yields an error
// marker in its position and never aborts the rest of the batch.
func (o *Orchestrator) AnalyzeBatch(ctx context.Context, resumes []*types.ResumeDocument, jdText string, maxConcurrency int) ([]BatchItem, error) {
	req := BatchRequest{Resumes: resumes, JobDescription: jdText, MaxConcurrency: maxConcurrency}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultConcurrency
	}

	items := make([]BatchItem, len(resumes))

	// A plain errgroup (no derived context) keeps one item's failure from
	// cancelling its siblings; failures land in the item slot instead of
	// the group error.
	var g errgroup.Group
	g.SetLimit(maxConcurrency)

	for i, resume := range resumes {
		i, resume := i, resume
		g.Go(func() error {
			result, err := o.Analyze(ctx, resume, jdText)
			if err != nil {
				items[i] = BatchItem{Err: &BatchItemError{Index: i, Cause: err}}
				return nil
			}
			items[i] = BatchItem{Result: result}
			return nil
		})
	}

	_ = g.Wait()
	return items, nil
}
