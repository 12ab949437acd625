package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngo-cms-backend/internal/domains/report"
	"ngo-cms-backend/pkg/cache"
)

type mockReportRepo struct {
	create        func(ctx context.Context, r *report.AnnualReport) (*report.AnnualReport, error)
	getByID       func(ctx context.Context, id int64) (*report.AnnualReport, error)
	listPublished func(ctx context.Context) ([]report.AnnualReport, error)
	listAll       func(ctx context.Context) ([]report.AnnualReport, error)
	update        func(ctx context.Context, r *report.AnnualReport) (*report.AnnualReport, error)
	delete        func(ctx context.Context, id int64) error
}

func (m *mockReportRepo) Create(ctx context.Context, r *report.AnnualReport) (*report.AnnualReport, error) {
	if m.create != nil {
		return m.create(ctx, r)
	}
	return r, nil
}

func (m *mockReportRepo) GetByID(ctx context.Context, id int64) (*report.AnnualReport, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return nil, report.ErrReportNotFound
}

func (m *mockReportRepo) ListPublished(ctx context.Context) ([]report.AnnualReport, error) {
	if m.listPublished != nil {
		return m.listPublished(ctx)
	}
	return nil, nil
}

func (m *mockReportRepo) ListAll(ctx context.Context) ([]report.AnnualReport, error) {
	if m.listAll != nil {
		return m.listAll(ctx)
	}
	return nil, nil
}

func (m *mockReportRepo) Update(ctx context.Context, r *report.AnnualReport) (*report.AnnualReport, error) {
	if m.update != nil {
		return m.update(ctx, r)
	}
	return r, nil
}

func (m *mockReportRepo) Delete(ctx context.Context, id int64) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

type mockCache struct {
	get     func(ctx context.Context, key string, dest interface{}) (bool, error)
	deleted []string
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if m.get != nil {
		return m.get(ctx, key, dest)
	}
	return false, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	m.deleted = append(m.deleted, keys...)
	return nil
}

func (m *mockCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (m *mockCache) Ping(ctx context.Context) error { return nil }

func (m *mockCache) Close() error { return nil }

var _ cache.Cache = (*mockCache)(nil)

func TestCreateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("create stores and invalidates cache", func(t *testing.T) {
		c := &mockCache{}
		svc := NewReportService(&mockReportRepo{}, c)

		resp, err := svc.Create(ctx, &report.CreateReportReq{
			Year:     2024,
			Title:    "Annual Report 2024",
			CanvaURL: "https://canva.com/design/x",
		})
		require.NoError(t, err)

		assert.True(t, resp.Published)
		assert.Contains(t, c.deleted, "reports:list:published")
	})

	t.Run("year out of range rejected", func(t *testing.T) {
		svc := NewReportService(&mockReportRepo{}, &mockCache{})
		_, err := svc.Create(ctx, &report.CreateReportReq{
			Year:     1990,
			Title:    "Ancient Report",
			CanvaURL: "https://canva.com/design/x",
		})
		require.Error(t, err)
		assert.Equal(t, 400, report.GetHTTPStatusCode(err))
	})
}

func TestUpdateReport(t *testing.T) {
	ctx := context.Background()

	existing := func() *report.AnnualReport {
		return &report.AnnualReport{
			ID:        1,
			Year:      2023,
			Title:     "Annual Report 2023",
			CanvaURL:  "https://canva.com/design/old",
			Published: true,
		}
	}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		repo := &mockReportRepo{
			getByID: func(ctx context.Context, id int64) (*report.AnnualReport, error) {
				return existing(), nil
			},
		}

		svc := NewReportService(repo, &mockCache{})
		draft := false
		resp, err := svc.Update(ctx, 1, &report.UpdateReportReq{Published: &draft})
		require.NoError(t, err)

		assert.False(t, resp.Published)
		assert.Equal(t, "Annual Report 2023", resp.Title)
		assert.Equal(t, 2023, resp.Year)
	})

	t.Run("missing report bubbles not found", func(t *testing.T) {
		svc := NewReportService(&mockReportRepo{}, &mockCache{})
		title := "x"
		_, err := svc.Update(ctx, 99, &report.UpdateReportReq{Title: &title})
		assert.ErrorIs(t, err, report.ErrReportNotFound)
	})
}

func TestDeleteReport(t *testing.T) {
	ctx := context.Background()

	t.Run("hard delete invalidates cache", func(t *testing.T) {
		deleted := int64(0)
		repo := &mockReportRepo{
			delete: func(ctx context.Context, id int64) error {
				deleted = id
				return nil
			},
		}
		c := &mockCache{}

		svc := NewReportService(repo, c)
		require.NoError(t, svc.Delete(ctx, 7))
		assert.Equal(t, int64(7), deleted)
		assert.Contains(t, c.deleted, "reports:list:published")
	})
}

func TestListReports(t *testing.T) {
	ctx := context.Background()

	t.Run("published list cached", func(t *testing.T) {
		c := &mockCache{
			get: func(ctx context.Context, key string, dest interface{}) (bool, error) {
				resps := dest.(*[]report.ReportResp)
				*resps = []report.ReportResp{{ID: 1, Year: 2024}}
				return true, nil
			},
		}
		repoCalled := false
		repo := &mockReportRepo{
			listPublished: func(ctx context.Context) ([]report.AnnualReport, error) {
				repoCalled = true
				return nil, nil
			},
		}

		svc := NewReportService(repo, c)
		resps, err := svc.ListPublished(ctx)
		require.NoError(t, err)
		assert.Len(t, resps, 1)
		assert.False(t, repoCalled)
	})

	t.Run("admin list bypasses cache", func(t *testing.T) {
		cacheHit := false
		c := &mockCache{
			get: func(ctx context.Context, key string, dest interface{}) (bool, error) {
				cacheHit = true
				return true, nil
			},
		}
		repo := &mockReportRepo{
			listAll: func(ctx context.Context) ([]report.AnnualReport, error) {
				return []report.AnnualReport{{ID: 1}, {ID: 2}}, nil
			},
		}

		svc := NewReportService(repo, c)
		resps, err := svc.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, resps, 2)
		assert.False(t, cacheHit)
	})
}

// title validation của update: chỉ check khi field present
func TestUpdateReportValidation(t *testing.T) {
	svc := NewReportService(&mockReportRepo{}, &mockCache{})
	short := "ab"
	_, err := svc.Update(context.Background(), 1, &report.UpdateReportReq{Title: &short})
	require.Error(t, err)
	assert.Equal(t, 400, report.GetHTTPStatusCode(err))
}
