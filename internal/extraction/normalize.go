// Package extraction produces the two keyword sets an analysis reconciles:
// job-description keywords via an LLM call with a heuristic fallback, and
// resume tokens via deterministic local normalization.
package extraction

import (
	"strings"
	"unicode"
)

// NormalizeText lower-cases s, replaces every non-alphanumeric rune with a
// space, and collapses runs of whitespace into single spaces. The result is
// trimmed. Normalization is idempotent: normalizing an already-normalized
// string returns it unchanged.
func NormalizeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// Tokenize normalizes s and splits it into tokens.
func Tokenize(s string) []string {
	return strings.Fields(NormalizeText(s))
}
