package report

import "time"

// ============================================================
// ENTITY: AnnualReport
// ============================================================
// Report khác post/event ở vài điểm cố ý:
// - ID là int64 sequence, không phải UUID (legacy numbering giữ nguyên)
// - Không có slug - public list link thẳng ra Canva
// - Hard delete, không soft delete (report gỡ là gỡ hẳn)
type AnnualReport struct {
	ID int64

	// Year: năm báo cáo, bounded 2000-2100
	Year int

	Title string

	Cover *string

	// CanvaURL: link tới published Canva design
	// JSON field là "canvaUrl", DB column là "canvaurl" - mapping
	// nằm gọn trong repository, đừng rải ra ngoài
	CanvaURL string

	// Published: false => ẩn khỏi public list, admin vẫn thấy
	Published bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAnnualReport tạo entity từ validated create request
func NewAnnualReport(req *CreateReportReq, now time.Time) *AnnualReport {
	r := &AnnualReport{
		Year:      req.Year,
		Title:     req.Title,
		Cover:     req.Cover,
		CanvaURL:  req.CanvaURL,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Published != nil {
		r.Published = *req.Published
	}

	return r
}
