package post

import (
	"time"

	"github.com/google/uuid"

	"ngo-cms-backend/internal/shared/utils"
)

// ============================================================
// CATEGORY ENUM
// ============================================================
// Category là editorial classification của bài viết
// Fixed set - mọi giá trị khác bị validation reject

const (
	CategoryNews       = "News"
	CategoryImpact     = "Impact Story"
	CategoryEventRecap = "Event Recap"
	CategoryAdvocacy   = "Advocacy"
	CategoryOpinion    = "Opinion"
)

// Categories liệt kê mọi giá trị hợp lệ (dùng cho validation.In)
var Categories = []interface{}{
	CategoryNews,
	CategoryImpact,
	CategoryEventRecap,
	CategoryAdvocacy,
	CategoryOpinion,
}

// ============================================================
// ENTITY: Post
// ============================================================
// Post đại diện 1 bài blog trên website
//
// DATABASE MAPPING:
// ┌──────────────────────────┐
// │       posts table        │
// ├──────────────────────────┤
// │ id (UUID) - PRIMARY KEY  │
// │ title (TEXT)             │
// │ slug (TEXT) - UNIQUE     │
// │ content (TEXT) - HTML    │
// │ excerpt (TEXT)           │
// │ category (TEXT)          │
// │ cover (TEXT) - nullable  │
// │ author (TEXT) - nullable │
// │ published_at             │
// │ created_at / updated_at  │
// │ deleted_at - nullable    │
// └──────────────────────────┘
type Post struct {
	ID uuid.UUID

	Title string

	// Slug: URL-friendly version của title (vd: "hello-world")
	// UNIQUE constraint - trùng title => ErrDuplicateSlug (409)
	Slug string

	// Content: rich-text HTML, đã sanitize ở write-time
	Content string

	// Excerpt: plain text ≤200 chars
	// Client gửi explicit hoặc derive từ Content (strip tags + truncate)
	Excerpt string

	Category string

	// Cover/Author: optional - entity chỉ lưu URL, blob ở object storage
	Cover  *string
	Author *string

	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DeletedAt: soft-delete marker
	// NULL = active; non-NULL = ẩn khỏi mọi public read path,
	// row vẫn tồn tại và fetchable qua admin lookup (audit)
	DeletedAt *time.Time
}

// NewPost tạo entity từ validated create request
// Slug derive từ title; excerpt derive từ content nếu client không gửi
func NewPost(title, content, excerpt, category string, cover, author *string) *Post {
	now := time.Now().UTC()

	sanitized := utils.SanitizeHTML(content)

	if excerpt == "" {
		excerpt = utils.Excerpt(sanitized)
	}

	return &Post{
		ID:          uuid.New(),
		Title:       title,
		Slug:        utils.Slugify(title),
		Content:     sanitized,
		Excerpt:     excerpt,
		Category:    category,
		Cover:       cover,
		Author:      author,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsDeleted check soft-delete marker
func (p *Post) IsDeleted() bool {
	return p.DeletedAt != nil
}
