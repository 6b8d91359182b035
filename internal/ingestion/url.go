package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/ats-analyzer/internal/fetch"
)

// Sentinel errors for URL ingestion.
var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no usable text can be
	// extracted from the fetched page.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// FromURL fetches a job posting page, extracts the main text, and cleans it.
func FromURL(ctx context.Context, urlStr string) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.ExtractMainText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	text = CleanText(text)
	if text == "" {
		return "", fmt.Errorf("%w: page contained no extractable text", ErrContentExtractionFailed)
	}
	return text, nil
}
