package analysis

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-analyzer/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Request is the validated input of a single analysis. The pipeline checks
// inputs once here; downstream components assume well-formed data.
type Request struct {
	Resume         *types.ResumeDocument `validate:"required"`
	JobDescription string                `validate:"required"`
}

// BatchRequest is the validated input of a batch analysis.
type BatchRequest struct {
	// A nil resume inside the slice is not a batch-level failure: it
	// surfaces as that item's ValidationError marker.
	Resumes        []*types.ResumeDocument `validate:"required,min=1,max=10"`
	JobDescription string                  `validate:"required"`
	MaxConcurrency int                     `validate:"gte=0"`
}

// Validate checks the request, returning a ValidationError on the first
// problem found.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return asValidationError(err)
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return &ValidationError{Field: "job_description", Message: "job description must not be empty"}
	}
	return nil
}

// Validate checks the batch request, returning a ValidationError on the
// first problem found. An oversized batch is rejected, never truncated.
func (r *BatchRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return asValidationError(err)
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return &ValidationError{Field: "job_description", Message: "job description must not be empty"}
	}
	return nil
}

// asValidationError converts the first validator failure into the pipeline's
// typed ValidationError.
func asValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return &ValidationError{Field: field, Message: field + " is required"}
		case "min":
			return &ValidationError{Field: field, Message: field + " must have at least " + fe.Param() + " entries"}
		case "max":
			return &ValidationError{Field: field, Message: field + " must have at most " + fe.Param() + " entries"}
		default:
			return &ValidationError{Field: field, Message: "failed " + fe.Tag() + " check"}
		}
	}
	return &ValidationError{Message: err.Error()}
}
