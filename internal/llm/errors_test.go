package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClassifyErrorDeadlineExceeded(t *testing.T) {
	err := classifyError(fmt.Errorf("generate: %w", context.DeadlineExceeded))

	assert.Equal(t, KindTimeout, err.Kind)
	assert.True(t, err.Transient())
}

func TestClassifyErrorRateLimited(t *testing.T) {
	err := classifyError(&googleapi.Error{Code: 429, Message: "too many requests"})

	assert.Equal(t, KindRateLimited, err.Kind)
	assert.True(t, err.Transient())
}

func TestClassifyErrorQuotaOn429(t *testing.T) {
	err := classifyError(&googleapi.Error{Code: 429, Message: "Quota exceeded for model"})

	assert.Equal(t, KindQuotaExceeded, err.Kind)
	assert.False(t, err.Transient())
}

func TestClassifyErrorQuotaOn403(t *testing.T) {
	err := classifyError(&googleapi.Error{Code: 403, Message: "permission denied"})

	assert.Equal(t, KindQuotaExceeded, err.Kind)
	assert.False(t, err.Transient())
}

func TestClassifyErrorServerError(t *testing.T) {
	err := classifyError(&googleapi.Error{Code: 503, Message: "backend unavailable"})

	assert.Equal(t, KindTransport, err.Kind)
	assert.True(t, err.Transient())
}

func TestClassifyErrorMessageSniffing(t *testing.T) {
	cases := []struct {
		message string
		want    ErrorKind
	}{
		{"quota exceeded for project", KindQuotaExceeded},
		{"resource exhausted", KindRateLimited},
		{"request deadline exceeded", KindTimeout},
		{"connection refused", KindTransport},
	}

	for _, tc := range cases {
		err := classifyError(errors.New(tc.message))
		assert.Equal(t, tc.want, err.Kind, "message %q", tc.message)
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&ServiceError{Kind: KindTimeout}))
	assert.True(t, IsTransient(&ServiceError{Kind: KindTransport}))
	assert.True(t, IsTransient(&ServiceError{Kind: KindRateLimited}))
	assert.False(t, IsTransient(&ServiceError{Kind: KindQuotaExceeded}))
	assert.False(t, IsTransient(errors.New("unclassified")))
	assert.False(t, IsTransient(nil))
}

func TestIsTransientUnwrapsWrappedErrors(t *testing.T) {
	inner := &ServiceError{Kind: KindTransport, Message: "connection reset"}
	wrapped := fmt.Errorf("extract keywords: %w", inner)

	assert.True(t, IsTransient(wrapped))
}

func TestServiceErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	err := &ServiceError{Kind: KindTimeout, Message: "network timeout", Cause: cause}

	assert.Equal(t, "completion timeout: network timeout: dial tcp: i/o timeout", err.Error())
	require.ErrorIs(t, err, cause)

	bare := &ServiceError{Kind: KindQuotaExceeded, Message: "quota exhausted"}
	assert.Equal(t, "completion quota_exceeded: quota exhausted", bare.Error())
	assert.NoError(t, bare.Unwrap())
}
