package llm

import (
	"context"
	"strings"
	"sync"
)

// FakeClient is a deterministic in-memory Client for tests. Responses are
// matched by prompt substring so a single fake can serve multiple pipeline
// stages; Response is the catch-all when nothing matches. Err, when set,
// fails every call.
type FakeClient struct {
	mu sync.Mutex

	// Responses maps a prompt substring to the canned response.
	Responses map[string]string
	// Response is the default reply when no substring matches.
	Response string
	// Err fails every call when non-nil.
	Err error
	// ErrOnce fails only the first call when non-nil.
	ErrOnce error
	// ErrForSubstr fails any call whose prompt contains ErrSubstr, when
	// both are set. Lets batch tests fail one resume and not its siblings.
	ErrSubstr    string
	ErrForSubstr error

	// Prompts records every prompt received, in call order.
	Prompts []string
}

// GenerateContent returns the canned response for the prompt.
func (f *FakeClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return f.reply(prompt)
}

// GenerateJSON returns the canned response for the prompt.
func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return f.reply(prompt)
}

func (f *FakeClient) reply(prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Prompts = append(f.Prompts, prompt)

	if f.ErrOnce != nil {
		err := f.ErrOnce
		f.ErrOnce = nil
		return "", err
	}
	if f.Err != nil {
		return "", f.Err
	}
	if f.ErrForSubstr != nil && f.ErrSubstr != "" && strings.Contains(prompt, f.ErrSubstr) {
		return "", f.ErrForSubstr
	}

	for substr, response := range f.Responses {
		if strings.Contains(prompt, substr) {
			return response, nil
		}
	}
	return f.Response, nil
}

// CallCount returns the number of completion calls received.
func (f *FakeClient) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}

// GetModel returns a fixed fake model name.
func (f *FakeClient) GetModel(tier ModelTier) string {
	return "fake-" + string(tier)
}

// Close is a no-op.
func (f *FakeClient) Close() error { return nil }
