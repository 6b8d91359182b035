// Package prompts provides a loader for externalized LLM prompt templates.
// Prompts are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	loadOnce sync.Once
	loadErr  error
	// prompts maps "filename/key" to the template text.
	prompts map[string]string
)

// loadAll parses every embedded prompt file into the flat prompt map.
func loadAll() {
	prompts = make(map[string]string)

	entries, err := promptFiles.ReadDir(".")
	if err != nil {
		loadErr = fmt.Errorf("failed to read embedded prompts: %w", err)
		return
	}

	for _, e := range entries {
		data, err := promptFiles.ReadFile(e.Name())
		if err != nil {
			loadErr = fmt.Errorf("failed to read prompt file %s: %w", e.Name(), err)
			return
		}

		var filePrompts map[string]string
		if err := json.Unmarshal(data, &filePrompts); err != nil {
			loadErr = fmt.Errorf("failed to parse prompt file %s: %w", e.Name(), err)
			return
		}

		for key, text := range filePrompts {
			prompts[e.Name()+"/"+key] = text
		}
	}
}

// Get retrieves a prompt by filename and key.
// The filename should not include a path (e.g., "extraction.json").
func Get(filename, key string) (string, error) {
	loadOnce.Do(loadAll)
	if loadErr != nil {
		return "", loadErr
	}

	prompt, exists := prompts[filename+"/"+key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet retrieves a prompt by filename and key, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
