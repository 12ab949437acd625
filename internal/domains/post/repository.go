package post

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// REPOSITORY INTERFACE: PostRepository
// ============================================================
// Data access contract cho Post entity
// Implementation: repository/postgres.go (pgx)
//
// SOFT-DELETE CONVENTION:
// - GetBySlug / List / GetRelated: chỉ rows có deleted_at IS NULL
// - GetByID: trả về CẢ soft-deleted rows (admin/audit lookup)

type PostRepository interface {
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID là admin lookup: bao gồm soft-deleted rows
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// GetBySlug là public lookup: soft-deleted => ErrPostNotFound
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// List trả về active posts, published_at DESC
	// category = "" hoặc "All" => không filter
	List(ctx context.Context, category string) ([]Post, error)

	// GetRelated: cùng category, exclude chính nó (theo slug),
	// exclude soft-deleted, limit cố định
	GetRelated(ctx context.Context, category, excludeSlug string, limit int) ([]Post, error)

	// Update ghi lại toàn bộ row (single-row atomic write)
	Update(ctx context.Context, post *Post) (*Post, error)

	// SoftDelete set deleted_at = now, row vẫn tồn tại
	SoftDelete(ctx context.Context, id uuid.UUID) error

	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}
