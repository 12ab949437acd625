package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ngo-cms-backend/internal/domains/event"
	"ngo-cms-backend/internal/shared/utils"
	"ngo-cms-backend/pkg/cache"
	"ngo-cms-backend/pkg/logger"
)

const (
	listCacheTTL = 60 * time.Second

	relatedLimit = 3
)

type eventServiceImpl struct {
	repository event.EventRepository
	cache      cache.Cache
}

func NewEventService(repo event.EventRepository, c cache.Cache) event.EventService {
	return &eventServiceImpl{
		repository: repo,
		cache:      c,
	}
}

func (s *eventServiceImpl) Create(ctx context.Context, req *event.CreateEventReq) (*event.EventResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create event: invalid request")
	}

	// ========== STEP 1: Validate Input ==========
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// ========== STEP 2: Build Entity ==========
	// Slug = slugify(title) + epoch millis suffix => trùng title vẫn unique,
	// không cần pre-check conflict như post
	now := time.Now().UTC()
	entity := event.NewEvent(req, now)

	// ========== STEP 3: Persist ==========
	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.invalidateListCache(ctx)

	return event.EventToResp(created, now), nil
}

func (s *eventServiceImpl) GetBySlug(ctx context.Context, slug string) (*event.EventResp, error) {
	entity, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return event.EventToResp(entity, time.Now().UTC()), nil
}

// GetByID: admin/audit path - soft-deleted rows visible
func (s *eventServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*event.EventResp, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return event.EventToResp(entity, time.Now().UTC()), nil
}

// List: read-through cache 60s TTL, giống post list
// Category filter couple sort direction (Upcoming ASC / Past DESC)
func (s *eventServiceImpl) List(ctx context.Context, category string) ([]event.EventListItemResp, error) {
	cacheKey := listCacheKey(category)

	var cached []event.EventListItemResp
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	events, err := s.repository.List(ctx, category)
	if err != nil {
		return nil, err
	}

	items := event.EventsToListItems(events)

	if err := s.cache.Set(ctx, cacheKey, items, listCacheTTL); err != nil {
		logger.Error("List: cache set failed", err)
	}

	return items, nil
}

func (s *eventServiceImpl) GetRelated(ctx context.Context, slug string) ([]event.EventListItemResp, error) {
	current, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	related, err := s.repository.GetRelated(ctx, current.Category, current.Slug, relatedLimit)
	if err != nil {
		return nil, err
	}

	return event.EventsToListItems(related), nil
}

// GetCountdown: live comparison với now, độc lập với stored category
func (s *eventServiceImpl) GetCountdown(ctx context.Context, slug string) (*event.Countdown, error) {
	entity, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	cd := event.CountdownUntil(entity.StartDate, time.Now().UTC())
	return &cd, nil
}

func (s *eventServiceImpl) Update(ctx context.Context, id uuid.UUID, req *event.UpdateEventReq) (*event.EventResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update event: invalid request")
	}

	// ========== STEP 1: Validate Partial Payload ==========
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// ========== STEP 2: Fetch Existing ==========
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.IsDeleted() {
		return nil, event.ErrEventNotFound
	}

	// ========== STEP 3: Apply Whitelisted Fields ==========
	// Slug KHÔNG đổi khi title đổi - URL đã share phải stable
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		sanitized := utils.SanitizeHTML(*req.Description)
		existing.Description = &sanitized
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Cover != nil {
		existing.Cover = req.Cover
	}
	if req.Location != nil {
		existing.Location = *req.Location
	}
	if req.Venue != nil {
		existing.Venue = req.Venue
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.StartDate != nil {
		existing.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		existing.EndDate = req.EndDate
	}
	if req.Author != nil {
		existing.Author = req.Author
	}
	if req.MetaTitle != nil {
		existing.MetaTitle = req.MetaTitle
	}
	if req.MetaDesc != nil {
		existing.MetaDesc = req.MetaDesc
	}
	if req.OgImage != nil {
		existing.OgImage = req.OgImage
	}
	if req.RegistrationLink != nil {
		existing.RegistrationLink = req.RegistrationLink
	}

	// MaxAttendees: field absent HOẶC gửi ""/null => untouched
	// (FlexInt normalize "" thành no-value, không phải zero)
	if req.MaxAttendees != nil && req.MaxAttendees.HasValue() {
		existing.MaxAttendees = req.MaxAttendees.Int()
	}

	if req.Gallery != nil {
		gallery := *req.Gallery
		if gallery == nil {
			gallery = []string{}
		}
		existing.Gallery = gallery
	}

	// ========== STEP 4: Re-apply IsFree / TicketPrice Rule ==========
	// Merge xong mới biết final isFree => enforce mutual exclusivity ở đây
	if req.IsFree != nil {
		existing.IsFree = *req.IsFree
	}
	if req.TicketPrice != nil {
		existing.TicketPrice = req.TicketPrice
	}
	if existing.IsFree {
		existing.TicketPrice = nil
	}
	if err := event.RequireTicketPrice(existing.IsFree, existing.TicketPrice); err != nil {
		return nil, err
	}

	existing.UpdatedAt = time.Now().UTC()

	// ========== STEP 5: Persist ==========
	updated, err := s.repository.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return event.EventToResp(updated, existing.UpdatedAt), nil
}

func (s *eventServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *eventServiceImpl) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "events:list:*"); err != nil {
		logger.Error("invalidate event list cache failed", err)
	}
}

// Key build từ RAW filter value để filter khác nhau không share cache entry
// ("" và "All" là ngoại lệ - repository coi cả hai là không filter)
func listCacheKey(category string) string {
	if category == "" || category == "All" {
		return "events:list:all"
	}
	return "events:list:" + category
}
