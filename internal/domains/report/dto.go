package report

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Year bounds: sanity check, không phải business rule sâu xa
const (
	MinYear = 2000
	MaxYear = 2100
)

// ============================================================
// REQUEST DTOs (Input Data)
// ============================================================

// CreateReportReq: POST /v1/admin/reports
// NOTE: JSON dùng "canvaUrl" (camelCase giữ từ frontend contract cũ)
type CreateReportReq struct {
	Year      int     `json:"year"`
	Title     string  `json:"title"`
	Cover     *string `json:"cover"`
	CanvaURL  string  `json:"canvaUrl"`
	Published *bool   `json:"published"`
}

func (r CreateReportReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.Min(MinYear).Error("year must be 2000 or later"),
			validation.Max(MaxYear).Error("year must be 2100 or earlier"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 255).Error("title must be 3-255 characters"),
		),
		validation.Field(&r.Cover, is.URL.Error("cover must be a valid URL")),
		validation.Field(&r.CanvaURL,
			validation.Required.Error("canvaUrl is required"),
			is.URL.Error("canvaUrl must be a valid URL"),
		),
	)
}

// UpdateReportReq: PUT /v1/admin/reports/{id}
// Partial update: nil = untouched
type UpdateReportReq struct {
	Year      *int    `json:"year"`
	Title     *string `json:"title"`
	Cover     *string `json:"cover"`
	CanvaURL  *string `json:"canvaUrl"`
	Published *bool   `json:"published"`
}

func (r UpdateReportReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Year,
			validation.Min(MinYear).Error("year must be 2000 or later"),
			validation.Max(MaxYear).Error("year must be 2100 or earlier"),
		),
		validation.Field(&r.Title,
			validation.Length(3, 255).Error("title must be 3-255 characters"),
		),
		validation.Field(&r.Cover, is.URL.Error("cover must be a valid URL")),
		validation.Field(&r.CanvaURL, is.URL.Error("canvaUrl must be a valid URL")),
	)
}

// ============================================================
// RESPONSE DTOs (Output Data)
// ============================================================

type ReportResp struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"`
	Title     string    `json:"title"`
	Cover     *string   `json:"cover,omitempty"`
	CanvaURL  string    `json:"canvaUrl"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ReportToResp(r *AnnualReport) *ReportResp {
	if r == nil {
		return nil
	}
	return &ReportResp{
		ID:        r.ID,
		Year:      r.Year,
		Title:     r.Title,
		Cover:     r.Cover,
		CanvaURL:  r.CanvaURL,
		Published: r.Published,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ReportsToResps(reports []AnnualReport) []ReportResp {
	if len(reports) == 0 {
		return []ReportResp{}
	}

	resps := make([]ReportResp, 0, len(reports))
	for i := range reports {
		resps = append(resps, *ReportToResp(&reports[i]))
	}
	return resps
}
