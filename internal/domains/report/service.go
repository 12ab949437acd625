package report

import "context"

// ============================================================
// SERVICE INTERFACE: ReportService
// ============================================================

type ReportService interface {
	Create(ctx context.Context, req *CreateReportReq) (*ReportResp, error)

	GetByID(ctx context.Context, id int64) (*ReportResp, error)

	// ListPublished: public, cached
	ListPublished(ctx context.Context) ([]ReportResp, error)

	// ListAll: admin, uncached
	ListAll(ctx context.Context) ([]ReportResp, error)

	Update(ctx context.Context, id int64, req *UpdateReportReq) (*ReportResp, error)

	Delete(ctx context.Context, id int64) error
}
