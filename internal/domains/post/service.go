package post

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// SERVICE INTERFACE: PostService
// ============================================================
// Business logic contract: slug/excerpt derivation, soft-delete
// semantics, list caching. Handler chỉ parse request + map error.

type PostService interface {
	Create(ctx context.Context, req *CreatePostReq) (*PostResp, error)

	// GetBySlug: public detail view (soft-deleted => not found)
	GetBySlug(ctx context.Context, slug string) (*PostResp, error)

	// GetByID: admin lookup, thấy cả soft-deleted rows
	GetByID(ctx context.Context, id uuid.UUID) (*PostResp, error)

	// List: cached read path (60s TTL)
	List(ctx context.Context, category string) ([]PostListItemResp, error)

	GetRelated(ctx context.Context, slug string) ([]PostListItemResp, error)

	Update(ctx context.Context, id uuid.UUID, req *UpdatePostReq) (*PostResp, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
