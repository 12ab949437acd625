package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ngo-cms-backend/internal/domains/event"
	"ngo-cms-backend/pkg/logger"
)

// eventColumns dùng chung cho mọi SELECT, khớp thứ tự với scanEvent
const eventColumns = `
	id, title, slug, description, category, cover,
	location, venue, address, start_date, end_date, author,
	meta_title, meta_desc, og_image, registration_link,
	max_attendees, is_free, ticket_price, gallery,
	created_at, updated_at, deleted_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) event.EventRepository {
	return &postgresRepository{pool: pool}
}

func scanEvent(row pgx.Row) (*event.Event, error) {
	e := &event.Event{}
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Slug,
		&e.Description,
		&e.Category,
		&e.Cover,
		&e.Location,
		&e.Venue,
		&e.Address,
		&e.StartDate,
		&e.EndDate,
		&e.Author,
		&e.MetaTitle,
		&e.MetaDesc,
		&e.OgImage,
		&e.RegistrationLink,
		&e.MaxAttendees,
		&e.IsFree,
		&e.TicketPrice,
		&e.Gallery,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *event.Event) (*event.Event, error) {
	const query = `
		INSERT INTO events (
			id, title, slug, description, category, cover,
			location, venue, address, start_date, end_date, author,
			meta_title, meta_desc, og_image, registration_link,
			max_attendees, is_free, ticket_price, gallery,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING` + eventColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.Slug,
		entity.Description,
		entity.Category,
		entity.Cover,
		entity.Location,
		entity.Venue,
		entity.Address,
		entity.StartDate,
		entity.EndDate,
		entity.Author,
		entity.MetaTitle,
		entity.MetaDesc,
		entity.OgImage,
		entity.RegistrationLink,
		entity.MaxAttendees,
		entity.IsFree,
		entity.TicketPrice,
		entity.Gallery,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanEvent(row)
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

// GetByID: ADMIN lookup, bao gồm soft-deleted rows
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	const query = `SELECT` + eventColumns + ` FROM events WHERE id = $1`

	entity, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return entity, nil
}

// GetBySlug: PUBLIC lookup, soft-deleted => not found
func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	const query = `SELECT` + eventColumns + ` FROM events WHERE slug = $1 AND deleted_at IS NULL`

	entity, err := scanEvent(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		logger.Error("GetBySlug: database error", err)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return entity, nil
}

// List: filter theo stored category (editorial signal)
// Sort direction đi theo filter - xem event.OrderClause
func (r *postgresRepository) List(ctx context.Context, category string) ([]event.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE deleted_at IS NULL`
	args := []interface{}{}

	if category != "" && category != "All" {
		query += ` AND category = $1`
		args = append(args, category)
	}

	// OrderClause trả về fixed strings, không phải user input
	query += ` ORDER BY ` + event.OrderClause(category)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("List: database error", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *postgresRepository) GetRelated(ctx context.Context, category, excludeSlug string, limit int) ([]event.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events
		WHERE deleted_at IS NULL
		  AND category = $1
		  AND slug <> $2
		ORDER BY ` + event.OrderClause(category) + `
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, category, excludeSlug, limit)
	if err != nil {
		logger.Error("GetRelated: database error", err)
		return nil, fmt.Errorf("failed to get related events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *postgresRepository) Update(ctx context.Context, entity *event.Event) (*event.Event, error) {
	const query = `
		UPDATE events SET
			title = $2, description = $3, category = $4, cover = $5,
			location = $6, venue = $7, address = $8,
			start_date = $9, end_date = $10, author = $11,
			meta_title = $12, meta_desc = $13, og_image = $14,
			registration_link = $15, max_attendees = $16,
			is_free = $17, ticket_price = $18, gallery = $19,
			updated_at = $20
		WHERE id = $1
		RETURNING` + eventColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.Description,
		entity.Category,
		entity.Cover,
		entity.Location,
		entity.Venue,
		entity.Address,
		entity.StartDate,
		entity.EndDate,
		entity.Author,
		entity.MetaTitle,
		entity.MetaDesc,
		entity.OgImage,
		entity.RegistrationLink,
		entity.MaxAttendees,
		entity.IsFree,
		entity.TicketPrice,
		entity.Gallery,
		entity.UpdatedAt,
	)

	updated, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE events SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		logger.Error("SoftDelete: database error", err)
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

func collectEvents(rows pgx.Rows) ([]event.Event, error) {
	events := []event.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}
