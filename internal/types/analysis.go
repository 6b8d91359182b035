// Package types provides type definitions for structured data used throughout the ats-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// KeywordSource tags how the job-description keyword list was obtained.
type KeywordSource string

// Keyword source values, from best to worst.
const (
	// KeywordSourceStructured means the model returned valid structured JSON.
	KeywordSourceStructured KeywordSource = "structured"
	// KeywordSourceFallback means structured parsing failed and the raw
	// response was comma-split into a degraded keyword list.
	KeywordSourceFallback KeywordSource = "fallback"
	// KeywordSourceEmpty means neither parse path produced any keywords.
	KeywordSourceEmpty KeywordSource = "empty"
)

// MatchResult holds the reconciliation of job-description keywords against
// the resume token set. Every JD keyword is classified exactly once, so
// len(Matched)+len(Missing) always equals the input keyword count.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Percent int      `json:"percent"` // 0-100; defined as 0 when there are no JD keywords
}

// ScoreBreakdown holds the four independent score components plus the
// bounded composite. Components are returned individually so callers can
// explain the total.
type ScoreBreakdown struct {
	Keyword float64 `json:"keyword"`
	Bullet  float64 `json:"bullet"`
	Metric  float64 `json:"metric"`
	Section float64 `json:"section"`
	Total   int     `json:"total"` // min(100, round(sum of components))
}

// AnalysisResult is the terminal, immutable output of a single analysis.
type AnalysisResult struct {
	ID              string         `json:"id"`
	Score           ScoreBreakdown `json:"score"`
	Match           MatchResult    `json:"match"`
	WeakBullets     []string       `json:"weak_bullets"`
	MetricCount     int            `json:"metric_count"`
	MissingSections []string       `json:"missing_sections"`
	Suggestions     string         `json:"suggestions"`
	KeywordSource   KeywordSource  `json:"keyword_source"`
	GeneratedAt     time.Time      `json:"generated_at"`
}
