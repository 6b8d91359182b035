package quality

import (
	"strings"

	"github.com/jonathan/ats-analyzer/internal/types"
)

// sectionCheck pairs a required section name with its presence test, so
// scalar and list sections are checked through the same table.
type sectionCheck struct {
	name    string
	present func(*types.ResumeDocument) bool
}

// requiredSections lists the sections every resume is expected to fill, in
// report order.
var requiredSections = []sectionCheck{
	{"summary", func(r *types.ResumeDocument) bool { return strings.TrimSpace(r.Summary) != "" }},
	{"skills", func(r *types.ResumeDocument) bool { return len(r.Skills) > 0 }},
	{"experience", func(r *types.ResumeDocument) bool { return len(r.Experience) > 0 }},
	{"education", func(r *types.ResumeDocument) bool { return len(r.Education) > 0 }},
}

// MissingSections returns the names of required sections that are absent or
// empty, in a fixed order.
func MissingSections(resume *types.ResumeDocument) []string {
	missing := make([]string, 0, len(requiredSections))
	for _, check := range requiredSections {
		if !check.present(resume) {
			missing = append(missing, check.name)
		}
	}
	return missing
}
