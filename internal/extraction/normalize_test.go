package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_LowercasesAndStripsPunctuation(t *testing.T) {
	got := NormalizeText("Built CI/CD pipelines, with Go!")
	assert.Equal(t, "built ci cd pipelines with go", got)
}

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	got := NormalizeText("  too   many\t\tspaces \n here ")
	assert.Equal(t, "too many spaces here", got)
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"Built CI/CD pipelines, with Go!",
		"  MIXED   Case &  symbols #1 ",
		"already normalized text",
		"",
	}
	for _, input := range inputs {
		once := NormalizeText(input)
		twice := NormalizeText(once)
		assert.Equal(t, once, twice, "normalize should be idempotent for %q", input)
	}
}

func TestNormalizeText_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("  !!!  "))
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Python, SQL & Docker")
	assert.Equal(t, []string{"python", "sql", "docker"}, got)
}

func TestTokenize_PreservesDigits(t *testing.T) {
	got := Tokenize("Kubernetes 1.29")
	assert.Equal(t, []string{"kubernetes", "1", "29"}, got)
}
