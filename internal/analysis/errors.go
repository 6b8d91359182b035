package analysis

import "fmt"

// ValidationError reports required input that is missing or malformed. It
// fails fast and is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// BatchItemError marks a single batch member's failure. It is captured in
// that member's position of the result list; the batch itself proceeds.
type BatchItemError struct {
	Index int
	Cause error
}

func (e *BatchItemError) Error() string {
	return fmt.Sprintf("analysis of resume %d failed: %v", e.Index+1, e.Cause)
}

func (e *BatchItemError) Unwrap() error {
	return e.Cause
}
