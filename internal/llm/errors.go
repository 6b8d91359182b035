package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"google.golang.org/api/googleapi"
)

// ErrorKind classifies a completion failure.
type ErrorKind string

// Completion failure kinds. Timeout, transport, and rate-limit failures are
// transient and eligible for retry; quota exhaustion is terminal and must
// surface to the caller unretried.
const (
	KindRateLimited   ErrorKind = "rate_limited"
	KindQuotaExceeded ErrorKind = "quota_exceeded"
	KindTimeout       ErrorKind = "timeout"
	KindTransport     ErrorKind = "transport"
)

// ServiceError is a typed failure from the completion provider.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("completion %s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Transient reports whether the failure may be retried.
func (e *ServiceError) Transient() bool {
	switch e.Kind {
	case KindTimeout, KindTransport, KindRateLimited:
		return true
	default:
		return false
	}
}

// IsTransient reports whether err is a retryable completion failure.
// Unclassified errors are treated as permanent.
func IsTransient(err error) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Transient()
	}
	return false
}

// classifyError wraps a provider error in a ServiceError with the matching
// kind. HTTP status codes are the primary signal; message sniffing covers
// transport errors the SDK does not surface as googleapi errors.
func classifyError(err error) *ServiceError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ServiceError{Kind: KindTimeout, Message: "completion call timed out", Cause: err}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			if strings.Contains(strings.ToLower(apiErr.Message), "quota") {
				return &ServiceError{Kind: KindQuotaExceeded, Message: "quota exhausted", Cause: err}
			}
			return &ServiceError{Kind: KindRateLimited, Message: "rate limited", Cause: err}
		case 403:
			return &ServiceError{Kind: KindQuotaExceeded, Message: "quota or permission denied", Cause: err}
		}
		if apiErr.Code >= 500 {
			return &ServiceError{Kind: KindTransport, Message: "provider server error", Cause: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ServiceError{Kind: KindTimeout, Message: "network timeout", Cause: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"):
		return &ServiceError{Kind: KindQuotaExceeded, Message: "quota exhausted", Cause: err}
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource exhausted"):
		return &ServiceError{Kind: KindRateLimited, Message: "rate limited", Cause: err}
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return &ServiceError{Kind: KindTimeout, Message: "completion call timed out", Cause: err}
	default:
		return &ServiceError{Kind: KindTransport, Message: "transport failure", Cause: err}
	}
}
