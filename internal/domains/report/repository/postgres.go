package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ngo-cms-backend/internal/domains/report"
	"ngo-cms-backend/pkg/logger"
)

// Column "canvaurl" (lowercase, legacy schema) map về field CanvaURL
// JSON "canvaUrl" <-> column "canvaurl" translation chỉ xảy ra ở đây và ở DTO
const reportColumns = `id, year, title, cover, canvaurl, published, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) report.ReportRepository {
	return &postgresRepository{pool: pool}
}

func scanReport(row pgx.Row) (*report.AnnualReport, error) {
	r := &report.AnnualReport{}
	err := row.Scan(
		&r.ID,
		&r.Year,
		&r.Title,
		&r.Cover,
		&r.CanvaURL,
		&r.Published,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p *postgresRepository) Create(ctx context.Context, entity *report.AnnualReport) (*report.AnnualReport, error) {
	const query = `
		INSERT INTO annual_reports (year, title, cover, canvaurl, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + reportColumns

	row := p.pool.QueryRow(ctx, query,
		entity.Year,
		entity.Title,
		entity.Cover,
		entity.CanvaURL,
		entity.Published,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanReport(row)
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create annual report: %w", err)
	}

	return created, nil
}

func (p *postgresRepository) GetByID(ctx context.Context, id int64) (*report.AnnualReport, error) {
	const query = `SELECT ` + reportColumns + ` FROM annual_reports WHERE id = $1`

	entity, err := scanReport(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrReportNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get annual report: %w", err)
	}

	return entity, nil
}

func (p *postgresRepository) ListPublished(ctx context.Context) ([]report.AnnualReport, error) {
	const query = `
		SELECT ` + reportColumns + `
		FROM annual_reports
		WHERE published = true
		ORDER BY year DESC, id DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		logger.Error("ListPublished: database error", err)
		return nil, fmt.Errorf("failed to list annual reports: %w", err)
	}
	defer rows.Close()

	return collectReports(rows)
}

func (p *postgresRepository) ListAll(ctx context.Context) ([]report.AnnualReport, error) {
	const query = `SELECT ` + reportColumns + ` FROM annual_reports ORDER BY year DESC, id DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		logger.Error("ListAll: database error", err)
		return nil, fmt.Errorf("failed to list annual reports: %w", err)
	}
	defer rows.Close()

	return collectReports(rows)
}

func (p *postgresRepository) Update(ctx context.Context, entity *report.AnnualReport) (*report.AnnualReport, error) {
	const query = `
		UPDATE annual_reports SET
			year = $2, title = $3, cover = $4, canvaurl = $5,
			published = $6, updated_at = $7
		WHERE id = $1
		RETURNING ` + reportColumns

	row := p.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Year,
		entity.Title,
		entity.Cover,
		entity.CanvaURL,
		entity.Published,
		entity.UpdatedAt,
	)

	updated, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrReportNotFound
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update annual report: %w", err)
	}

	return updated, nil
}

// Delete: hard delete
func (p *postgresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM annual_reports WHERE id = $1`

	tag, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete annual report: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}
	return nil
}

func collectReports(rows pgx.Rows) ([]report.AnnualReport, error) {
	reports := []report.AnnualReport{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan annual report: %w", err)
		}
		reports = append(reports, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read annual reports: %w", err)
	}
	return reports, nil
}
