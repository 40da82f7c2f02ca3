package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(DefaultClasses)

	t.Run("AnnotatesElements", func(t *testing.T) {
		out, err := r.Render("# Title\n\nSome **bold** and `code` with [a link](https://example.com).\n\n- item")
		require.NoError(t, err)

		html := string(out)
		assert.Contains(t, html, `<h1 class="md-heading md-h1">Title</h1>`)
		assert.Contains(t, html, `<strong class="md-strong">bold</strong>`)
		assert.Contains(t, html, `<code class="md-code">code</code>`)
		assert.Contains(t, html, `class="md-link"`)
		assert.Contains(t, html, `<li class="md-text">item</li>`)
		assert.Contains(t, html, `<p class="md-text">`)
	})

	t.Run("GFMTable", func(t *testing.T) {
		out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, string(out), "<table>")
	})

	t.Run("RawHTMLIsNotRendered", func(t *testing.T) {
		out, err := r.Render("<script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, string(out), "<script>")
	})

	t.Run("NoClasses", func(t *testing.T) {
		out, err := NewRenderer(nil).Render("plain")
		require.NoError(t, err)
		assert.Equal(t, "<p>plain</p>\n", string(out))
	})
}
