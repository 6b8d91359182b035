// Package schemas provides JSON Schema validation for structured LLM
// responses. Schemas are embedded in the binary so validation never depends
// on the working directory.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// keywordResponseSchema describes the structured keyword-extraction reply:
// an object with a non-null "keywords" array of strings.
const keywordResponseSchema = `{
  "type": "object",
  "required": ["keywords"],
  "properties": {
    "keywords": {
      "type": "array",
      "items": { "type": "string" }
    }
  }
}`

// ValidationError reports schema violations with their field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateKeywordResponse checks a JSON document against the keyword
// extraction response schema. A non-nil error means the document does not
// have the expected structure (including not being JSON at all).
func ValidateKeywordResponse(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(keywordResponseSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(document)", Message: err.Error()}}}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
