package quality

import (
	"regexp"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// metricPattern matches quantifiable-achievement markers: an integer
// followed by a percent sign ("40%"), a multiplier ("3x"), or a plus
// ("500+").
var metricPattern = regexp.MustCompile(`(?i)\d+\s*(?:%|x\b|\+)`)

// MetricBulletCount returns how many bullets across all experience entries
// contain at least one quantifiable-achievement marker. A bullet counts at
// most once no matter how many markers it contains.
func MetricBulletCount(entries []types.ExperienceEntry) int {
	count := 0
	for _, entry := range entries {
		for _, bullet := range entry.Bullets {
			if metricPattern.MatchString(bullet) {
				count++
			}
		}
	}
	return count
}
