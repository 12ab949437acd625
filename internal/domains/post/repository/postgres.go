package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ngo-cms-backend/internal/domains/post"
	"ngo-cms-backend/pkg/logger"
)

// postColumns là column list dùng chung cho mọi SELECT
// Giữ 1 chỗ để scanPost luôn khớp thứ tự
const postColumns = `
	id, title, slug, content, excerpt, category,
	cover, author, published_at, created_at, updated_at, deleted_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.PostRepository {
	return &postgresRepository{pool: pool}
}

// scanPost scan 1 row theo thứ tự của postColumns
func scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Excerpt,
		&p.Category,
		&p.Cover,
		&p.Author,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *post.Post) (*post.Post, error) {
	const query = `
		INSERT INTO posts (
			id, title, slug, content, excerpt, category,
			cover, author, published_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + postColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.Slug,
		entity.Content,
		entity.Excerpt,
		entity.Category,
		entity.Cover,
		entity.Author,
		entity.PublishedAt,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanPost(row)
	if err != nil {
		// Unique index trên slug => trùng title từ client khác
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "idx_posts_slug" {
			logger.Error("Create: duplicate slug", err)
			return nil, post.ErrDuplicateSlug
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// GetByID là ADMIN lookup: không filter deleted_at
// Soft-deleted rows vẫn fetchable cho audit
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	const query = `SELECT` + postColumns + ` FROM posts WHERE id = $1`

	entity, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return entity, nil
}

// GetBySlug là PUBLIC lookup: soft-deleted coi như không tồn tại
func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	const query = `SELECT` + postColumns + ` FROM posts WHERE slug = $1 AND deleted_at IS NULL`

	entity, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		logger.Error("GetBySlug: database error", err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return entity, nil
}

// List: default order = published_at DESC (mới nhất trước)
// category rỗng hoặc "All" => không filter
func (r *postgresRepository) List(ctx context.Context, category string) ([]post.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts WHERE deleted_at IS NULL`
	args := []interface{}{}

	if category != "" && category != "All" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY published_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("List: database error", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// GetRelated: cùng category, exclude chính nó, active only, capped
func (r *postgresRepository) GetRelated(ctx context.Context, category, excludeSlug string, limit int) ([]post.Post, error) {
	const query = `
		SELECT` + postColumns + `
		FROM posts
		WHERE deleted_at IS NULL
		  AND category = $1
		  AND slug <> $2
		ORDER BY published_at DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, category, excludeSlug, limit)
	if err != nil {
		logger.Error("GetRelated: database error", err)
		return nil, fmt.Errorf("failed to get related posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postgresRepository) Update(ctx context.Context, entity *post.Post) (*post.Post, error) {
	const query = `
		UPDATE posts SET
			title = $2, slug = $3, content = $4, excerpt = $5, category = $6,
			cover = $7, author = $8, updated_at = $9
		WHERE id = $1
		RETURNING` + postColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.Slug,
		entity.Content,
		entity.Excerpt,
		entity.Category,
		entity.Cover,
		entity.Author,
		entity.UpdatedAt,
	)

	updated, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "idx_posts_slug" {
			return nil, post.ErrDuplicateSlug
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// SoftDelete set marker thay vì DELETE row
func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE posts SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		logger.Error("SoftDelete: database error", err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1`
	args := []interface{}{slug}

	if excludeID != nil {
		query += ` AND id <> $2`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		logger.Error("ExistsBySlug: database error", err)
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func collectPosts(rows pgx.Rows) ([]post.Post, error) {
	posts := []post.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return posts, nil
}
