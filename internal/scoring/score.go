// Package scoring combines the independent quality dimensions into one
// bounded composite score with a per-dimension breakdown.
package scoring

import (
	"math"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// Weights is the named weight table driving the composite score. With the
// defaults the four components form an exact 100-point scale: keyword match
// contributes up to 60, bullets up to 20, metrics up to 10, sections up to
// 10.
type Weights struct {
	// Keyword multiplies the 0-100 match percent.
	Keyword float64
	// BulletBase is the bullet score with no weak bullets; BulletPenalty
	// is subtracted per weak bullet, floored at zero.
	BulletBase    float64
	BulletPenalty float64
	// MetricPer is awarded per metric bullet, capped at MetricMax.
	MetricPer float64
	MetricMax float64
	// SectionBase is the section score with no missing sections;
	// SectionPenalty is subtracted per missing section. Not individually
	// clamped: with the fixed four-section list it cannot go negative.
	SectionBase    float64
	SectionPenalty float64
}

// DefaultWeights returns the reference weight table.
func DefaultWeights() Weights {
	return Weights{
		Keyword:        0.6,
		BulletBase:     20,
		BulletPenalty:  2,
		MetricPer:      2,
		MetricMax:      10,
		SectionBase:    10,
		SectionPenalty: 2,
	}
}

// Score computes the weighted breakdown from the four dimension inputs.
// Total is min(100, round(sum of components)) and always lands in [0,100].
func Score(match types.MatchResult, weakBulletCount, metricCount, missingSectionCount int, w Weights) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{
		Keyword: float64(match.Percent) * w.Keyword,
		Bullet:  math.Max(0, w.BulletBase-w.BulletPenalty*float64(weakBulletCount)),
		Metric:  math.Min(w.MetricPer*float64(metricCount), w.MetricMax),
		Section: w.SectionBase - w.SectionPenalty*float64(missingSectionCount),
	}

	sum := breakdown.Keyword + breakdown.Bullet + breakdown.Metric + breakdown.Section
	total := int(math.Round(sum))
	if total > 100 {
		total = 100
	}
	breakdown.Total = total

	return breakdown
}
