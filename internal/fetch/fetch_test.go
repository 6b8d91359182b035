package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFetchesHTML(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "posting")
	assert.Contains(t, result.ContentType, "text/html")
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
}

func TestURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURLInvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestExtractMainTextPrefersJobSelectors(t *testing.T) {
	html := `<html><body>
		<header>Site header</header>
		<div class="sidebar">Related jobs</div>
		<div class="job-description">
			<h1>Backend Engineer</h1>
			<p>Build services in Go.</p>
		</div>
		<footer>Legal</footer>
	</body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Build services in Go.")
	assert.NotContains(t, text, "Site header")
	assert.NotContains(t, text, "Related jobs")
	assert.NotContains(t, text, "Legal")
}

func TestExtractMainTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Just a plain posting.</p><script>track()</script></body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Equal(t, "Just a plain posting.", text)
}

func TestExtractMainTextCollapsesBlankLines(t *testing.T) {
	html := `<html><body><main><p>First</p><br><br><br><p>Second</p></main></body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.NotContains(t, text, "\n\n\n")
	assert.Contains(t, text, "First")
	assert.Contains(t, text, "Second")
}
