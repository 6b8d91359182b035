package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTextNormalizesLineEndings(t *testing.T) {
	got := CleanText("Senior Engineer\r\nRemote\rFull time")

	assert.Equal(t, "Senior Engineer\nRemote\nFull time", got)
}

func TestCleanTextCollapsesBlankLines(t *testing.T) {
	got := CleanText("Requirements\n\n\n\n- Go\n- Docker")

	assert.Equal(t, "Requirements\n\n- Go\n- Docker", got)
}

func TestCleanTextTrimsTrailingWhitespace(t *testing.T) {
	got := CleanText("Requirements   \n- Go\t\n")

	assert.Equal(t, "Requirements\n- Go", got)
}

func TestCleanTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n\n  "))
}

func TestFromFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("We need Go engineers.\r\n\r\n\r\nApply now.\n"), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "We need Go engineers.\n\nApply now.", text)
}

func TestFromFileHTML(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<main><h1>Senior Go Engineer</h1><p>We need Go and Docker experience.</p></main>
		<footer>Copyright</footer>
	</body></html>`
	path := filepath.Join(t.TempDir(), "job.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "We need Go and Docker experience.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job posting file")
}

func TestFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n"), 0o644))

	_, err := FromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}
