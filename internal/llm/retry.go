package llm

import (
	"context"
	"time"
)

// retryBaseDelay is the delay before the first retry; it doubles per attempt.
const retryBaseDelay = 300 * time.Millisecond

// retryingClient retries transient completion failures with exponential
// backoff. Terminal failures (quota, malformed credentials) fail fast on the
// first attempt.
type retryingClient struct {
	base        Client
	maxAttempts int
}

// WithRetry wraps a client so transient failures are retried up to
// maxAttempts total attempts.
func WithRetry(base Client, maxAttempts int) Client {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &retryingClient{base: base, maxAttempts: maxAttempts}
}

func (r *retryingClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return r.attempt(ctx, func() (string, error) {
		return r.base.GenerateContent(ctx, prompt, tier)
	})
}

func (r *retryingClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return r.attempt(ctx, func() (string, error) {
		return r.base.GenerateJSON(ctx, prompt, tier)
	})
}

func (r *retryingClient) attempt(ctx context.Context, call func() (string, error)) (string, error) {
	delay := retryBaseDelay
	var lastErr error

	for i := 0; i < r.maxAttempts; i++ {
		if i > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			delay *= 2
		}

		text, err := call()
		if err == nil {
			return text, nil
		}
		if !IsTransient(err) {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}

func (r *retryingClient) GetModel(tier ModelTier) string {
	return r.base.GetModel(tier)
}

func (r *retryingClient) Close() error {
	return r.base.Close()
}
