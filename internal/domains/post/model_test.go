package post

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPost(t *testing.T) {
	t.Run("derives slug from title", func(t *testing.T) {
		p := NewPost("Hello, World!  Refugee Support", "<p>content body here</p>", "", CategoryNews, nil, nil)
		assert.Equal(t, "hello-world-refugee-support", p.Slug)
	})

	t.Run("derives excerpt from content when absent", func(t *testing.T) {
		p := NewPost("Title", "<p>Hello <strong>there</strong> friends</p>", "", CategoryNews, nil, nil)
		assert.Equal(t, "Hello there friends", p.Excerpt)
	})

	t.Run("explicit excerpt wins", func(t *testing.T) {
		p := NewPost("Title", "<p>long content</p>", "My summary", CategoryNews, nil, nil)
		assert.Equal(t, "My summary", p.Excerpt)
	})

	t.Run("derived excerpt truncated", func(t *testing.T) {
		long := "<p>" + strings.Repeat("x", 400) + "</p>"
		p := NewPost("Title", long, "", CategoryNews, nil, nil)
		assert.Len(t, []rune(p.Excerpt), 200)
	})

	t.Run("sanitizes content", func(t *testing.T) {
		p := NewPost("Title", `<p>ok</p><script>alert(1)</script>`, "", CategoryNews, nil, nil)
		assert.NotContains(t, p.Content, "<script>")
	})

	t.Run("new post is not deleted", func(t *testing.T) {
		p := NewPost("Title", "<p>content</p>", "", CategoryNews, nil, nil)
		assert.False(t, p.IsDeleted())
	})
}

func TestIsDeleted(t *testing.T) {
	now := time.Now()
	p := &Post{DeletedAt: &now}
	assert.True(t, p.IsDeleted())
}
