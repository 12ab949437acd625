package event

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// SERVICE INTERFACE: EventService
// ============================================================

type EventService interface {
	Create(ctx context.Context, req *CreateEventReq) (*EventResp, error)

	GetBySlug(ctx context.Context, slug string) (*EventResp, error)

	// GetByID: admin lookup, thấy cả soft-deleted
	GetByID(ctx context.Context, id uuid.UUID) (*EventResp, error)

	// List: cached read path (60s TTL), filter couple sort direction
	List(ctx context.Context, category string) ([]EventListItemResp, error)

	GetRelated(ctx context.Context, slug string) ([]EventListItemResp, error)

	// GetCountdown: live time comparison cho display
	GetCountdown(ctx context.Context, slug string) (*Countdown, error)

	Update(ctx context.Context, id uuid.UUID, req *UpdateEventReq) (*EventResp, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
