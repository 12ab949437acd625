package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	t.Run("keeps formatting tags", func(t *testing.T) {
		in := "<p>Hello <strong>world</strong></p>"
		assert.Equal(t, in, SanitizeHTML(in))
	})

	t.Run("strips script tags", func(t *testing.T) {
		out := SanitizeHTML(`<p>ok</p><script>alert("x")</script>`)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "<p>ok</p>")
	})

	t.Run("strips event handlers", func(t *testing.T) {
		out := SanitizeHTML(`<p onclick="steal()">text</p>`)
		assert.NotContains(t, out, "onclick")
	})
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"removes tags", "<p>Hello <em>there</em></p>", "Hello there"},
		{"unescapes entities", "Fish &amp; Chips", "Fish & Chips"},
		{"collapses whitespace", "<p>one</p>\n\n<p>two   three</p>", "one two three"},
		{"plain text untouched", "just text", "just text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Run("short content returned whole", func(t *testing.T) {
		assert.Equal(t, "A short story", Excerpt("<p>A short story</p>"))
	})

	t.Run("long content truncated to max length", func(t *testing.T) {
		long := "<p>" + strings.Repeat("a", 500) + "</p>"
		got := Excerpt(long)
		assert.Len(t, []rune(got), ExcerptMaxLen)
	})

	t.Run("truncates on rune boundary", func(t *testing.T) {
		long := strings.Repeat("ồ", 250)
		got := Excerpt(long)
		assert.Len(t, []rune(got), ExcerptMaxLen)
		assert.Equal(t, strings.Repeat("ồ", ExcerptMaxLen), got)
	})
}
