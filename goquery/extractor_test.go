package goquery_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mwalczak/fedtext"
	fedgoquery "github.com/mwalczak/fedtext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// block returns n characters of word-shaped filler so whitespace
// normalization keeps its length predictable.
func block(n int) string {
	return strings.Repeat("a", n)
}

func TestExtractor_StructuralMatch_ArticleID(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div id="article">The  Federal Open
		Market Committee decided today.</div>
	</body></html>`

	e := fedgoquery.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, fedtext.StrategyStructural, got.Strategy)
	assert.Equal(t, "The Federal Open Market Committee decided today.", got.Text)
}

func TestExtractor_StructuralMatch_BootstrapClass(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="col-md-8">Statement body text.</div></body></html>`

	e := fedgoquery.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, fedtext.StrategyStructural, got.Strategy)
	assert.Equal(t, "Statement body text.", got.Text)
}

func TestExtractor_StructuralWins_OverOversizedGenericDiv(t *testing.T) {
	t.Parallel()

	// A known container and a much larger generic div: the structural
	// match must win, not the density candidate.
	html := `<html><body>
		<div id="content">Short but authoritative body.</div>
		<div>` + block(2000) + `</div>
	</body></html>`

	e := fedgoquery.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, fedtext.StrategyStructural, got.Strategy)
	assert.Equal(t, "Short but authoritative body.", got.Text)
}

func TestExtractor_Density_PicksLongestQualifyingBlock(t *testing.T) {
	t.Parallel()

	html := `<html><body><table><tr>
		<td>` + block(300) + `</td>
		<td>` + block(500) + `</td>
	</tr></table></body></html>`

	e := fedgoquery.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, fedtext.StrategyDensity, got.Strategy)
	assert.Equal(t, block(500), got.Text)
}

func TestExtractor_Density_DivBeatsSmallerTableCell(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<table><tr><td>` + block(250) + `</td></tr></table>
		<div>` + block(1800) + `</div>
	</body></html>`

	e := fedgoquery.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, fedtext.StrategyDensity, got.Strategy)
	assert.Equal(t, block(1800), got.Text)
}

func TestExtractor_Density_MinimumLengthFilter(t *testing.T) {
	t.Parallel()

	// A 150-char block is below the 200-char floor and must never be
	// selected even when it is the only candidate.
	html := `<html><body><table><tr><td>` + block(150) + `</td></tr></table></body></html>`

	e := fedgoquery.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, fedtext.StrategyRaw, got.Strategy)
}

func TestExtractor_RawFallback_DegeneratePage(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>tiny page</p></body></html>`

	e := fedgoquery.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, fedtext.StrategyRaw, got.Strategy)
	assert.Equal(t, "tiny page", got.Text)
}

func TestExtractor_StripsSiteChromeBeforeAnyStrategy(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<header>Board of Governors</header>
		<nav>Home | News</nav>
		<script>var x = 1;</script>
		<style>.a{color:red}</style>
		<div id="article">Statement body.</div>
		<footer>Last update: today</footer>
	</body></html>`

	e := fedgoquery.NewExtractor()
	got, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "Statement body.", got.Text)
	assert.NotContains(t, got.Text, "Home")
	assert.NotContains(t, got.Text, "var x")
}

func TestExtractor_EmptyInput(t *testing.T) {
	t.Parallel()

	e := fedgoquery.NewExtractor()
	_, err := e.Extract("")

	require.Error(t, err)
	assert.Equal(t, fedtext.EINVALID, fedtext.ErrorCode(err))
}

func TestExtractor_WhitespaceInvariant_EveryStrategy(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"structural": `<html><body><div id="leftText">  a  b
			c	d  </div></body></html>`,
		"density": `<html><body><table><tr><td>  ` + block(100) + `
			` + block(100) + `  	` + block(100) + `</td></tr></table></body></html>`,
		"raw": `<html><body><p>  x
			y	z  </p></body></html>`,
	}

	doubleWS := regexp.MustCompile(`\s\s`)
	e := fedgoquery.NewExtractor()
	for name, html := range pages {
		got, err := e.Extract(html)
		require.NoError(t, err, name)
		assert.False(t, doubleWS.MatchString(got.Text), "%s: consecutive whitespace in %q", name, got.Text)
		assert.Equal(t, strings.TrimSpace(got.Text), got.Text, name)
	}
}
