package event

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// REPOSITORY INTERFACE: EventRepository
// ============================================================
// SOFT-DELETE CONVENTION như Post:
// - GetBySlug / List / GetRelated: chỉ active rows
// - GetByID: admin lookup, bao gồm soft-deleted

type EventRepository interface {
	Create(ctx context.Context, event *Event) (*Event, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)

	GetBySlug(ctx context.Context, slug string) (*Event, error)

	// List: category filter couple với sort direction (OrderClause)
	// Upcoming => start_date ASC, Past => start_date DESC
	List(ctx context.Context, category string) ([]Event, error)

	GetRelated(ctx context.Context, category, excludeSlug string, limit int) ([]Event, error)

	Update(ctx context.Context, event *Event) (*Event, error)

	SoftDelete(ctx context.Context, id uuid.UUID) error
}
