package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ExcerptMaxLen là độ dài tối đa của derived excerpt (plain text)
const ExcerptMaxLen = 200

var (
	htmlTags   = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)

	// richTextPolicy giữ formatting tags thông thường của rich-text editor
	// và strip scripts/event handlers. Sanitize ở write-time vì content
	// được render verbatim ở public pages.
	richTextPolicy = bluemonday.UGCPolicy()

	// stripPolicy bỏ toàn bộ tags - dùng cho excerpt
	stripPolicy = bluemonday.StrictPolicy()
)

// SanitizeHTML làm sạch rich-text HTML trước khi persist
func SanitizeHTML(content string) string {
	return richTextPolicy.Sanitize(content)
}

// StripHTML chuyển HTML thành plain text: bỏ tags, unescape entities,
// collapse whitespace
func StripHTML(content string) string {
	text := stripPolicy.Sanitize(content)
	text = htmlTags.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Excerpt derive plain-text excerpt từ rich content:
// strip HTML rồi truncate còn ExcerptMaxLen ký tự
// Truncate theo rune để không cắt giữa ký tự multi-byte
func Excerpt(content string) string {
	text := StripHTML(content)

	runes := []rune(text)
	if len(runes) <= ExcerptMaxLen {
		return text
	}
	return string(runes[:ExcerptMaxLen])
}
