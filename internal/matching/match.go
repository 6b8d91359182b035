// Package matching reconciles job-description keywords against a resume
// token set.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/extraction"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Match classifies every JD keyword as matched or missing against the resume
// token set, case-insensitively. A multi-word keyword matches when all of
// its tokens are present. Each keyword is classified exactly once, so
// len(Matched)+len(Missing) == len(jdKeywords).
//
// With no JD keywords the percent is defined as 0, not left to a 0/0
// division.
func Match(jdKeywords []string, resumeTokens map[string]struct{}) types.MatchResult {
	result := types.MatchResult{
		Matched: make([]string, 0, len(jdKeywords)),
		Missing: make([]string, 0),
	}

	for _, keyword := range jdKeywords {
		if keywordPresent(keyword, resumeTokens) {
			result.Matched = append(result.Matched, keyword)
		} else {
			result.Missing = append(result.Missing, keyword)
		}
	}

	if len(jdKeywords) == 0 {
		result.Percent = 0
		return result
	}

	result.Percent = int(math.Round(float64(len(result.Matched)) / float64(len(jdKeywords)) * 100))
	return result
}

func keywordPresent(keyword string, resumeTokens map[string]struct{}) bool {
	tokens := strings.Fields(extraction.NormalizeText(keyword))
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if _, ok := resumeTokens[token]; !ok {
			return false
		}
	}
	return true
}
