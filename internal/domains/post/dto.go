package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ============================================================
// REQUEST DTOs (Input Data)
// ============================================================

// CreatePostReq là request body khi POST /v1/admin/posts
//
// VALIDATION RULES:
// - Title: required, 3-255 chars
// - Content: required, >= 10 chars (HTML)
// - Category: required, thuộc fixed enum
// - Excerpt: optional, max 200 chars (absent => derive từ content)
// - Cover: optional URL
// - Author: optional
type CreatePostReq struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Excerpt  string  `json:"excerpt"`
	Category string  `json:"category"`
	Cover    *string `json:"cover"`
	Author   *string `json:"author"`
}

// Validate trả về validation.Errors: map field => reason
// Ozzo validate TẤT CẢ fields, không dừng ở field fail đầu tiên
// => client nhận đủ mọi violation trong một response
func (r CreatePostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 255).Error("title must be 3-255 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(10, 0).Error("content must be at least 10 characters"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(Categories...).Error("invalid category"),
		),
		validation.Field(&r.Excerpt,
			validation.Length(0, 200).Error("excerpt must not exceed 200 characters"),
		),
		validation.Field(&r.Cover,
			is.URL.Error("cover must be a valid URL"),
		),
	)
}

// UpdatePostReq là request body khi PUT /v1/admin/posts/{id}
//
// PARTIAL UPDATE:
// - Pointer fields: nil = field không có trong payload = không update
// - Field có mặt vẫn validated theo cùng rules của create
// - Fields ngoài allow-list này bị encoding/json bỏ qua (silently ignored,
//   tolerant với forward-compatible client payloads)
type UpdatePostReq struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Excerpt  *string `json:"excerpt"`
	Category *string `json:"category"`
	Cover    *string `json:"cover"`
	Author   *string `json:"author"`
}

func (r UpdatePostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Length(3, 255).Error("title must be 3-255 characters"),
		),
		validation.Field(&r.Content,
			validation.Length(10, 0).Error("content must be at least 10 characters"),
		),
		validation.Field(&r.Category,
			validation.In(Categories...).Error("invalid category"),
		),
		validation.Field(&r.Excerpt,
			validation.Length(0, 200).Error("excerpt must not exceed 200 characters"),
		),
		validation.Field(&r.Cover,
			is.URL.Error("cover must be a valid URL"),
		),
	)
}

// ============================================================
// RESPONSE DTOs (Output Data)
// ============================================================

type PostResp struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	Category    string     `json:"category"`
	Cover       *string    `json:"cover,omitempty"`
	Author      *string    `json:"author,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// PostListItemResp là item gọn cho list views: excerpt thay vì full content
type PostListItemResp struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Category    string    `json:"category"`
	Cover       *string   `json:"cover,omitempty"`
	Author      *string   `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// ============================================================
// MAPPER FUNCTIONS (Entity <-> DTO)
// ============================================================

func PostToResp(p *Post) *PostResp {
	if p == nil {
		return nil
	}

	return &PostResp{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		Category:    p.Category,
		Cover:       p.Cover,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
	}
}

func PostToListItem(p *Post) *PostListItemResp {
	if p == nil {
		return nil
	}

	return &PostListItemResp{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Category:    p.Category,
		Cover:       p.Cover,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
	}
}

func PostsToListItems(posts []Post) []PostListItemResp {
	if len(posts) == 0 {
		return []PostListItemResp{}
	}

	items := make([]PostListItemResp, 0, len(posts))
	for i := range posts {
		items = append(items, *PostToListItem(&posts[i]))
	}
	return items
}
