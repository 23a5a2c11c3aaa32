package readability_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mwalczak/fedtext"
	"github.com/mwalczak/fedtext/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_IsolatesBodyText(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("The Committee decided to maintain the target range for the federal funds rate. ", 20)
	html := `<html><head><title>FOMC statement</title></head><body>
		<nav><a href="/">Home</a> <a href="/news">News</a></nav>
		<article><p>` + body + `</p></article>
		<footer>Last Update: January 31, 2024</footer>
	</body></html>`

	e := readability.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Contains(t, got.Text, "The Committee decided to maintain")
	assert.NotContains(t, got.Text, "Home")
}

func TestExtractor_Extract_NormalizesWhitespace(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("word ", 100)
	html := `<html><body><article><p>  ` + body + `
		</p><p>	` + body + `</p></article></body></html>`

	e := readability.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	doubleWS := regexp.MustCompile(`\s\s`)
	assert.False(t, doubleWS.MatchString(got.Text))
	assert.Equal(t, strings.TrimSpace(got.Text), got.Text)
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	e := readability.NewExtractor()
	_, err := e.Extract("")

	require.Error(t, err)
	assert.Equal(t, fedtext.EINVALID, fedtext.ErrorCode(err))
}
