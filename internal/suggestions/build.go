// Package suggestions composes the improvement-suggestion prompt and returns
// the model's free-text reply. No structured parsing happens here: the raw
// text is the contract.
package suggestions

import (
	"context"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/llm"
	"github.com/jonathan/ats-analyzer/internal/prompts"
	"github.com/jonathan/ats-analyzer/internal/types"
)

// Builder produces free-text improvement suggestions from the resume and the
// missing-keyword list.
type Builder struct {
	client llm.Client
}

// NewBuilder creates a suggestion builder backed by the given client.
func NewBuilder(client llm.Client) *Builder {
	return &Builder{client: client}
}

// Build embeds the missing keywords and the serialized resume in a single
// prompt and returns whatever text the model produces, trimmed.
func (b *Builder) Build(ctx context.Context, resume *types.ResumeDocument, missingKeywords []string) (string, error) {
	template := prompts.MustGet("suggestions.json", "improve-resume")
	prompt := prompts.Format(template, map[string]string{
		"MissingKeywords": strings.Join(missingKeywords, ", "),
		"Resume":          resume.PlainText(),
	})

	text, err := b.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
