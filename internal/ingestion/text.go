// Package ingestion turns job postings supplied as files, URLs, or raw HTML
// into the clean text the analysis pipeline expects.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/fetch"
)

// CleanText normalizes line endings, trims trailing whitespace per line, and
// collapses excessive blank lines while preserving the posting's structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			line = ""
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// FromFile reads a job posting from disk. Files with an .html or .htm
// extension are run through HTML text extraction first; everything else is
// treated as plain text.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job posting file %s: %w", path, err)
	}

	content := string(data)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		text, err := fetch.ExtractMainText(content)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		content = text
	}

	text := CleanText(content)
	if text == "" {
		return "", fmt.Errorf("job posting file %s is empty", path)
	}
	return text, nil
}
