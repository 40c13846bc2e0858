package markdown

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML_Paragraph(t *testing.T) {
	c := New(Options{})
	out, err := c.ToHTML("Draws a *widget*.")
	require.NoError(t, err)
	assert.Equal(t, "<p>Draws a <em>widget</em>.</p>", out)
}

func TestToHTML_EmptyInput(t *testing.T) {
	out, err := New(Options{}).ToHTML("   \n")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestToHTML_GFMTable(t *testing.T) {
	out, err := New(Options{}).ToHTML("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestToHTML_RawHTML(t *testing.T) {
	src := "before <kbd>Ctrl</kbd> after"

	safe, err := New(Options{}).ToHTML(src)
	require.NoError(t, err)
	assert.NotContains(t, safe, "<kbd>")

	raw, err := New(Options{AllowRawHTML: true}).ToHTML(src)
	require.NoError(t, err)
	assert.Contains(t, raw, "<kbd>Ctrl</kbd>")
}

func TestToHTML_RewritesPageLinks(t *testing.T) {
	src := "See [setup](setup.md#build) and [site](https://example.com/x.md)."

	out, err := New(Options{RewritePageLinks: true}).ToHTML(src)
	require.NoError(t, err)
	assert.Contains(t, out, `href="docsetup.html#build"`)
	assert.Contains(t, out, `href="https://example.com/x.md"`)

	plain, err := New(Options{}).ToHTML(src)
	require.NoError(t, err)
	assert.Contains(t, plain, `href="setup.md#build"`)
}

func TestConverterConcurrentUse(t *testing.T) {
	c := New(Options{})
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := c.ToHTML("# Title\n\ntext")
			assert.NoError(t, err)
			assert.Contains(t, out, "text")
		}()
	}
	wg.Wait()
}

func TestPageNames(t *testing.T) {
	assert.Equal(t, "guide", PageStem("/docs/pages/guide.md"))
	assert.Equal(t, "docguide.html", PageFileName("guide"))
}
