package report

import "context"

// ============================================================
// REPOSITORY INTERFACE: ReportRepository
// ============================================================

type ReportRepository interface {
	Create(ctx context.Context, entity *AnnualReport) (*AnnualReport, error)

	GetByID(ctx context.Context, id int64) (*AnnualReport, error)

	// ListPublished: public read path, chỉ published, year DESC
	ListPublished(ctx context.Context) ([]AnnualReport, error)

	// ListAll: admin read path, cả draft
	ListAll(ctx context.Context) ([]AnnualReport, error)

	Update(ctx context.Context, entity *AnnualReport) (*AnnualReport, error)

	// Delete là HARD delete - report không có soft-delete
	Delete(ctx context.Context, id int64) error
}
