package service

import (
	"context"
	"fmt"
	"time"

	"ngo-cms-backend/internal/domains/report"
	"ngo-cms-backend/pkg/cache"
	"ngo-cms-backend/pkg/logger"
)

const (
	listCacheTTL = 60 * time.Second

	publishedListKey = "reports:list:published"
)

type reportServiceImpl struct {
	repository report.ReportRepository
	cache      cache.Cache
}

func NewReportService(repo report.ReportRepository, c cache.Cache) report.ReportService {
	return &reportServiceImpl{
		repository: repo,
		cache:      c,
	}
}

func (s *reportServiceImpl) Create(ctx context.Context, req *report.CreateReportReq) (*report.ReportResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create report: invalid request")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity := report.NewAnnualReport(req, time.Now().UTC())

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	s.invalidateListCache(ctx)

	return report.ReportToResp(created), nil
}

func (s *reportServiceImpl) GetByID(ctx context.Context, id int64) (*report.ReportResp, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return report.ReportToResp(entity), nil
}

// ListPublished: public path, cached - chỉ published reports
func (s *reportServiceImpl) ListPublished(ctx context.Context) ([]report.ReportResp, error) {
	var cached []report.ReportResp
	if found, err := s.cache.Get(ctx, publishedListKey, &cached); err == nil && found {
		return cached, nil
	}

	reports, err := s.repository.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	resps := report.ReportsToResps(reports)

	if err := s.cache.Set(ctx, publishedListKey, resps, listCacheTTL); err != nil {
		logger.Error("ListPublished: cache set failed", err)
	}

	return resps, nil
}

// ListAll: admin path - draft thấy hết, không cache
func (s *reportServiceImpl) ListAll(ctx context.Context) ([]report.ReportResp, error) {
	reports, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.ReportsToResps(reports), nil
}

func (s *reportServiceImpl) Update(ctx context.Context, id int64, req *report.UpdateReportReq) (*report.ReportResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update report: invalid request")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Year != nil {
		existing.Year = *req.Year
	}
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Cover != nil {
		existing.Cover = req.Cover
	}
	if req.CanvaURL != nil {
		existing.CanvaURL = *req.CanvaURL
	}
	if req.Published != nil {
		existing.Published = *req.Published
	}

	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repository.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return report.ReportToResp(updated), nil
}

func (s *reportServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *reportServiceImpl) invalidateListCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, publishedListKey); err != nil {
		logger.Error("invalidate report list cache failed", err)
	}
}
