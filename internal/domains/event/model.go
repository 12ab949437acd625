package event

import (
	"time"

	"github.com/google/uuid"

	"ngo-cms-backend/internal/shared/utils"
)

// ============================================================
// CATEGORY ENUM
// ============================================================
// Category là EDITORIAL signal: admin tự chuyển event sang "Past"
// sau khi diễn ra. Nó KHÔNG tự động sync với start_date.
//
// NOTE - Hai signal "is this event past" độc lập:
// 1. Category (stored enum)      => dùng cho listing pages (editorial)
// 2. start_date < now (computed) => dùng cho detail view badge/countdown
// category="Upcoming" với start_date đã qua là valid transient state,
// không phải error - admin chưa kịp recategorize.

const (
	CategoryUpcoming = "Upcoming"
	CategoryPast     = "Past"
)

var Categories = []interface{}{CategoryUpcoming, CategoryPast}

// MaxGallerySize: gallery images capped
const MaxGallerySize = 10

// ============================================================
// ENTITY: Event
// ============================================================
type Event struct {
	ID uuid.UUID

	Title string

	// Slug = slugify(title) + "-" + epoch millis lúc create
	// Suffix đảm bảo unique kể cả trùng title (trade-off: không idempotent)
	Slug string

	// Description: rich-text HTML, sanitized, optional
	Description *string

	Category string

	Cover *string

	// Location bắt buộc; venue/address là chi tiết optional
	Location string
	Venue    *string
	Address  *string

	StartDate time.Time
	EndDate   *time.Time

	Author *string

	// SEO fields
	MetaTitle *string
	MetaDesc  *string
	OgImage   *string

	// RegistrationLink: URL hoặc email string
	RegistrationLink *string

	// MaxAttendees: positive integer, optional
	// ""/null từ client đã được normalize thành absent ở DTO layer
	MaxAttendees *int

	// IsFree/TicketPrice: mutually exclusive
	// isFree = true => ticketPrice LUÔN nil bất kể client gửi gì
	IsFree      bool
	TicketPrice *string

	// Gallery: list image URLs, max 10
	Gallery []string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DeletedAt: soft-delete marker, như Post
	DeletedAt *time.Time
}

func (e *Event) IsDeleted() bool {
	return e.DeletedAt != nil
}

// IsPast là LIVE signal: so start_date với thời điểm hiện tại
// Chỉ dùng cho display (badge, countdown) - listing dùng Category
func (e *Event) IsPast(now time.Time) bool {
	return e.StartDate.Before(now)
}

// NewEvent tạo entity từ validated create request
func NewEvent(req *CreateEventReq, now time.Time) *Event {
	e := &Event{
		ID:               uuid.New(),
		Title:            req.Title,
		Slug:             utils.EventSlug(req.Title, now),
		Category:         req.Category,
		Cover:            req.Cover,
		Location:         req.Location,
		Venue:            req.Venue,
		Address:          req.Address,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Author:           req.Author,
		MetaTitle:        req.MetaTitle,
		MetaDesc:         req.MetaDesc,
		OgImage:          req.OgImage,
		RegistrationLink: req.RegistrationLink,
		MaxAttendees:     req.MaxAttendees.Int(),
		IsFree:           true,
		Gallery:          req.Gallery,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Default category: event mới tạo là Upcoming trừ khi admin nói khác
	if e.Category == "" {
		e.Category = CategoryUpcoming
	}

	if req.Description != nil {
		sanitized := utils.SanitizeHTML(*req.Description)
		e.Description = &sanitized
	}

	if e.Gallery == nil {
		e.Gallery = []string{}
	}

	// ========== IsFree / TicketPrice RULE ==========
	// ticketPrice chỉ meaningful khi isFree = false
	// isFree = true (hoặc absent, default true) => force ticketPrice = nil
	// bất kể client gửi gì
	if req.IsFree != nil {
		e.IsFree = *req.IsFree
	}
	if !e.IsFree {
		e.TicketPrice = req.TicketPrice
	}

	return e
}

// ============================================================
// COUNTDOWN
// ============================================================

// Countdown là thời gian còn lại tới start_date, cho display
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Expired bool `json:"expired"`
}

// CountdownUntil tính whole days/hours/minutes từ now tới start
// start đã qua => {expired: true}, KHÔNG trả số âm
func CountdownUntil(start, now time.Time) Countdown {
	remaining := start.Sub(now)
	if remaining <= 0 {
		return Countdown{Expired: true}
	}

	days := int(remaining / (24 * time.Hour))
	remaining -= time.Duration(days) * 24 * time.Hour
	hours := int(remaining / time.Hour)
	remaining -= time.Duration(hours) * time.Hour
	minutes := int(remaining / time.Minute)

	return Countdown{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
	}
}
