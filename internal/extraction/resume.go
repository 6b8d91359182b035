package extraction

import "github.com/jonathan/ats-analyzer/internal/types"

// ResumeTokens serializes the resume to text, normalizes it, and returns the
// resulting token set. Duplicates collapse; order is irrelevant. No external
// call is involved, and an empty resume yields an empty (valid) set.
func ResumeTokens(resume *types.ResumeDocument) map[string]struct{} {
	tokens := Tokenize(resume.PlainText())

	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
