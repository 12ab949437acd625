package report

import (
	"encoding/json"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReportReq() CreateReportReq {
	return CreateReportReq{
		Year:     2024,
		Title:    "Annual Report 2024",
		CanvaURL: "https://www.canva.com/design/abc123/view",
	}
}

func TestCreateReportReqValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validReportReq()
		assert.NoError(t, req.Validate())
	})

	t.Run("year bounds enforced", func(t *testing.T) {
		tests := []struct {
			name    string
			year    int
			wantErr bool
		}{
			{"lower bound", 2000, false},
			{"upper bound", 2100, false},
			{"below range", 1999, true},
			{"above range", 2101, true},
			{"missing", 0, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validReportReq()
				req.Year = tt.year
				err := req.Validate()
				if tt.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("canva url required", func(t *testing.T) {
		req := validReportReq()
		req.CanvaURL = ""

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "canvaUrl")
	})

	t.Run("canva url must parse", func(t *testing.T) {
		req := validReportReq()
		req.CanvaURL = "not a url"
		assert.Error(t, req.Validate())
	})
}

// JSON contract: field tên "canvaUrl" (camelCase) bất kể column name
func TestReportJSONFieldNames(t *testing.T) {
	var req CreateReportReq
	payload := `{"year": 2023, "title": "Annual Report 2023", "canvaUrl": "https://canva.com/x"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, "https://canva.com/x", req.CanvaURL)

	resp := ReportToResp(&AnnualReport{ID: 1, Year: 2023, CanvaURL: "https://canva.com/x"})
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"canvaUrl":"https://canva.com/x"`)
	assert.NotContains(t, string(b), "canva_url")
}

func TestNewAnnualReport(t *testing.T) {
	now := time.Now().UTC()

	t.Run("published defaults to true", func(t *testing.T) {
		req := validReportReq()
		r := NewAnnualReport(&req, now)
		assert.True(t, r.Published)
	})

	t.Run("explicit draft respected", func(t *testing.T) {
		req := validReportReq()
		draft := false
		req.Published = &draft
		r := NewAnnualReport(&req, now)
		assert.False(t, r.Published)
	})
}
