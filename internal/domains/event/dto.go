package event

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ngo-cms-backend/internal/shared"
)

// ============================================================
// REQUEST DTOs (Input Data)
// ============================================================

// CreateEventReq là request body khi POST /v1/admin/events
//
// VALIDATION RULES:
// - Title, Location, StartDate: required
// - Category: optional, thuộc {Upcoming, Past}, default Upcoming
// - RegistrationLink: URL hoặc email
// - MaxAttendees: positive integer; "" / null => absent (FlexInt)
// - Gallery: max 10 URLs
// - TicketPrice: required CHỈ khi isFree = false (cross-field,
//   enforce trong Validate() vì per-field rules không express được)
type CreateEventReq struct {
	Title            string         `json:"title"`
	Description      *string        `json:"description"`
	Category         string         `json:"category"`
	Cover            *string        `json:"cover"`
	Location         string         `json:"location"`
	Venue            *string        `json:"venue"`
	Address          *string        `json:"address"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          *time.Time     `json:"end_date"`
	Author           *string        `json:"author"`
	MetaTitle        *string        `json:"meta_title"`
	MetaDesc         *string        `json:"meta_desc"`
	OgImage          *string        `json:"og_image"`
	RegistrationLink *string        `json:"registration_link"`
	MaxAttendees     shared.FlexInt `json:"max_attendees"`
	IsFree           *bool          `json:"is_free"`
	TicketPrice      *string        `json:"ticket_price"`
	Gallery          []string       `json:"gallery"`
}

func (r CreateEventReq) Validate() error {
	errs := validation.Errors{}

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 255).Error("title must be 3-255 characters"),
		),
		validation.Field(&r.Location,
			validation.Required.Error("location is required"),
			validation.Length(1, 500).Error("location must not exceed 500 characters"),
		),
		validation.Field(&r.StartDate,
			validation.Required.Error("start_date is required"),
		),
		validation.Field(&r.Category,
			validation.In(Categories...).Error("invalid category"),
		),
		validation.Field(&r.Cover, is.URL.Error("cover must be a valid URL")),
		validation.Field(&r.OgImage, is.URL.Error("og_image must be a valid URL")),
		validation.Field(&r.RegistrationLink, validation.By(urlOrEmail)),
		validation.Field(&r.MaxAttendees, validation.By(positiveIfPresent)),
		validation.Field(&r.Gallery,
			validation.Length(0, MaxGallerySize).Error("gallery must not exceed 10 images"),
			validation.Each(is.URL.Error("gallery items must be valid URLs")),
		),
	)
	if err != nil {
		var ve validation.Errors
		if errors.As(err, &ve) {
			errs = ve
		} else {
			return err
		}
	}

	// ========== CROSS-FIELD: isFree / ticketPrice ==========
	// Generic validator chỉ express per-field constraints
	// => rule 2 fields enforce ở đây
	if r.IsFree != nil && !*r.IsFree {
		if err := validateTicketPrice(r.TicketPrice); err != nil {
			errs["ticket_price"] = err
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEventReq là request body khi PUT /v1/admin/events/{id}
//
// PARTIAL UPDATE với explicit allow-list:
// nil pointer = field không có trong payload = untouched
// Fields lạ trong payload bị silently ignored (forward-compatible clients)
type UpdateEventReq struct {
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	Category         *string         `json:"category"`
	Cover            *string         `json:"cover"`
	Location         *string         `json:"location"`
	Venue            *string         `json:"venue"`
	Address          *string         `json:"address"`
	StartDate        *time.Time      `json:"start_date"`
	EndDate          *time.Time      `json:"end_date"`
	Author           *string         `json:"author"`
	MetaTitle        *string         `json:"meta_title"`
	MetaDesc         *string         `json:"meta_desc"`
	OgImage          *string         `json:"og_image"`
	RegistrationLink *string         `json:"registration_link"`
	MaxAttendees     *shared.FlexInt `json:"max_attendees"`
	IsFree           *bool           `json:"is_free"`
	TicketPrice      *string         `json:"ticket_price"`
	Gallery          *[]string       `json:"gallery"`
}

func (r UpdateEventReq) Validate() error {
	errs := validation.Errors{}

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Length(3, 255).Error("title must be 3-255 characters"),
		),
		validation.Field(&r.Location,
			validation.Length(1, 500).Error("location must not exceed 500 characters"),
		),
		validation.Field(&r.Category,
			validation.In(Categories...).Error("invalid category"),
		),
		validation.Field(&r.Cover, is.URL.Error("cover must be a valid URL")),
		validation.Field(&r.OgImage, is.URL.Error("og_image must be a valid URL")),
		validation.Field(&r.RegistrationLink, validation.By(urlOrEmail)),
	)
	if err != nil {
		var ve validation.Errors
		if errors.As(err, &ve) {
			errs = ve
		} else {
			return err
		}
	}

	// FlexInt pointer: validate khi field có trong payload
	if r.MaxAttendees != nil {
		if err := positiveIfPresent(*r.MaxAttendees); err != nil {
			errs["max_attendees"] = err
		}
	}

	if r.Gallery != nil {
		if len(*r.Gallery) > MaxGallerySize {
			errs["gallery"] = errors.New("gallery must not exceed 10 images")
		} else if err := validation.Validate(*r.Gallery,
			validation.Each(is.URL.Error("gallery items must be valid URLs")),
		); err != nil {
			errs["gallery"] = err
		}
	}

	// TicketPrice format check khi present
	// Requiredness (isFree=false) enforce ở service sau khi merge với existing
	if r.TicketPrice != nil && strings.TrimSpace(*r.TicketPrice) != "" {
		if err := validateTicketPrice(r.TicketPrice); err != nil {
			errs["ticket_price"] = err
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============================================================
// FIELD RULES
// ============================================================

// urlOrEmail: registration link chấp nhận cả URL lẫn email string
func urlOrEmail(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}

	if s == "" {
		return nil
	}
	if is.URL.Validate(s) == nil || is.Email.Validate(s) == nil {
		return nil
	}
	return errors.New("registration_link must be a URL or email address")
}

// positiveIfPresent: FlexInt absent => ok, present => phải > 0
func positiveIfPresent(value interface{}) error {
	f, ok := value.(shared.FlexInt)
	if !ok {
		return nil
	}
	if !f.HasValue() {
		return nil
	}
	if *f.Int() <= 0 {
		return errors.New("max_attendees must be a positive integer")
	}
	return nil
}

// RequireTicketPrice: rule isFree/ticketPrice SAU KHI merge update payload
// với existing entity - tại DTO layer chưa biết final isFree là gì
func RequireTicketPrice(isFree bool, price *string) error {
	if isFree {
		return nil
	}
	if err := validateTicketPrice(price); err != nil {
		return validation.Errors{"ticket_price": err}
	}
	return nil
}

// validateTicketPrice: required + phải parse được thành positive decimal
// Giá trên wire là string ("25.00", "1500"), decimal check format
func validateTicketPrice(price *string) error {
	if price == nil || strings.TrimSpace(*price) == "" {
		return errors.New("ticket_price is required for paid events")
	}

	d, err := decimal.NewFromString(strings.TrimSpace(*price))
	if err != nil {
		return errors.New("ticket_price must be a valid amount")
	}
	if d.IsNegative() {
		return errors.New("ticket_price must not be negative")
	}
	return nil
}

// ============================================================
// RESPONSE DTOs (Output Data)
// ============================================================

// EventResp là detail view: carry cả hai "is past" signals
// - Category: editorial (stored)
// - IsPast/Countdown: live computed, advisory cho display
type EventResp struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Description      *string    `json:"description,omitempty"`
	Category         string     `json:"category"`
	Cover            *string    `json:"cover,omitempty"`
	Location         string     `json:"location"`
	Venue            *string    `json:"venue,omitempty"`
	Address          *string    `json:"address,omitempty"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Author           *string    `json:"author,omitempty"`
	MetaTitle        *string    `json:"meta_title,omitempty"`
	MetaDesc         *string    `json:"meta_desc,omitempty"`
	OgImage          *string    `json:"og_image,omitempty"`
	RegistrationLink *string    `json:"registration_link,omitempty"`
	MaxAttendees     *int       `json:"max_attendees,omitempty"`
	IsFree           bool       `json:"is_free"`
	TicketPrice      *string    `json:"ticket_price,omitempty"`
	Gallery          []string   `json:"gallery"`
	IsPast           bool       `json:"is_past"`
	Countdown        Countdown  `json:"countdown"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

type EventListItemResp struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Category  string     `json:"category"`
	Cover     *string    `json:"cover,omitempty"`
	Location  string     `json:"location"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsFree    bool       `json:"is_free"`
}

// ============================================================
// MAPPER FUNCTIONS (Entity <-> DTO)
// ============================================================

// EventToResp: now được truyền vào để IsPast/Countdown testable
func EventToResp(e *Event, now time.Time) *EventResp {
	if e == nil {
		return nil
	}

	gallery := e.Gallery
	if gallery == nil {
		gallery = []string{}
	}

	return &EventResp{
		ID:               e.ID,
		Title:            e.Title,
		Slug:             e.Slug,
		Description:      e.Description,
		Category:         e.Category,
		Cover:            e.Cover,
		Location:         e.Location,
		Venue:            e.Venue,
		Address:          e.Address,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Author:           e.Author,
		MetaTitle:        e.MetaTitle,
		MetaDesc:         e.MetaDesc,
		OgImage:          e.OgImage,
		RegistrationLink: e.RegistrationLink,
		MaxAttendees:     e.MaxAttendees,
		IsFree:           e.IsFree,
		TicketPrice:      e.TicketPrice,
		Gallery:          gallery,
		IsPast:           e.IsPast(now),
		Countdown:        CountdownUntil(e.StartDate, now),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		DeletedAt:        e.DeletedAt,
	}
}

func EventToListItem(e *Event) *EventListItemResp {
	if e == nil {
		return nil
	}

	return &EventListItemResp{
		ID:        e.ID,
		Title:     e.Title,
		Slug:      e.Slug,
		Category:  e.Category,
		Cover:     e.Cover,
		Location:  e.Location,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		IsFree:    e.IsFree,
	}
}

func EventsToListItems(events []Event) []EventListItemResp {
	if len(events) == 0 {
		return []EventListItemResp{}
	}

	items := make([]EventListItemResp, 0, len(events))
	for i := range events {
		items = append(items, *EventToListItem(&events[i]))
	}
	return items
}
