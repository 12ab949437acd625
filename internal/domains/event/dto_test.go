package event

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngo-cms-backend/internal/shared"
)

func validCreateReq() CreateEventReq {
	return CreateEventReq{
		Title:     "Community Fundraiser",
		Location:  "Hanoi Opera House",
		StartDate: time.Now().Add(48 * time.Hour),
	}
}

func TestCreateEventReqValidate(t *testing.T) {
	t.Run("minimal valid request", func(t *testing.T) {
		req := validCreateReq()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing required fields reported together", func(t *testing.T) {
		req := CreateEventReq{}
		err := req.Validate()
		require.Error(t, err)

		var vErrs validation.Errors
		require.ErrorAs(t, err, &vErrs)
		assert.Contains(t, vErrs, "title")
		assert.Contains(t, vErrs, "location")
		assert.Contains(t, vErrs, "start_date")
	})

	t.Run("invalid category", func(t *testing.T) {
		req := validCreateReq()
		req.Category = "Ongoing"

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "category")
	})

	t.Run("registration link accepts URL", func(t *testing.T) {
		req := validCreateReq()
		link := "https://example.org/register"
		req.RegistrationLink = &link
		assert.NoError(t, req.Validate())
	})

	t.Run("registration link accepts email", func(t *testing.T) {
		req := validCreateReq()
		link := "events@example.org"
		req.RegistrationLink = &link
		assert.NoError(t, req.Validate())
	})

	t.Run("registration link rejects garbage", func(t *testing.T) {
		req := validCreateReq()
		link := "not a link"
		req.RegistrationLink = &link

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "registration_link")
	})

	t.Run("max attendees must be positive", func(t *testing.T) {
		req := validCreateReq()
		req.MaxAttendees = shared.NewFlexInt(0)

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "max_attendees")
	})

	t.Run("gallery capped at ten images", func(t *testing.T) {
		req := validCreateReq()
		for i := 0; i < MaxGallerySize+1; i++ {
			req.Gallery = append(req.Gallery, "https://cdn.example.org/img.jpg")
		}

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "gallery")
	})

	t.Run("paid event requires ticket price", func(t *testing.T) {
		req := validCreateReq()
		free := false
		req.IsFree = &free

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "ticket_price")
	})

	t.Run("paid event with valid decimal price", func(t *testing.T) {
		req := validCreateReq()
		free := false
		price := "150000.50"
		req.IsFree = &free
		req.TicketPrice = &price
		assert.NoError(t, req.Validate())
	})

	t.Run("paid event with unparsable price", func(t *testing.T) {
		req := validCreateReq()
		free := false
		price := "ten dollars"
		req.IsFree = &free
		req.TicketPrice = &price

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "ticket_price")
	})

	t.Run("free event ignores ticket price entirely", func(t *testing.T) {
		req := validCreateReq()
		price := "garbage"
		req.TicketPrice = &price
		// isFree absent => default free => price không được validate
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateEventReqValidate(t *testing.T) {
	t.Run("empty payload is valid", func(t *testing.T) {
		req := UpdateEventReq{}
		assert.NoError(t, req.Validate())
	})

	t.Run("short title rejected", func(t *testing.T) {
		title := "ab"
		req := UpdateEventReq{Title: &title}

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "title")
	})

	t.Run("ticket price format checked when present", func(t *testing.T) {
		price := "-5"
		req := UpdateEventReq{TicketPrice: &price}

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "ticket_price")
	})

	t.Run("gallery items must be URLs", func(t *testing.T) {
		gallery := []string{"https://cdn.example.org/a.jpg", "not a url"}
		req := UpdateEventReq{Gallery: &gallery}

		var vErrs validation.Errors
		require.ErrorAs(t, req.Validate(), &vErrs)
		assert.Contains(t, vErrs, "gallery")
	})

	t.Run("gallery with valid URLs accepted", func(t *testing.T) {
		gallery := []string{"https://cdn.example.org/a.jpg"}
		req := UpdateEventReq{Gallery: &gallery}
		assert.NoError(t, req.Validate())
	})

	t.Run("max attendees empty string untouched", func(t *testing.T) {
		// "" normalize thành absent => không validate, không apply
		empty := shared.FlexInt{}
		req := UpdateEventReq{MaxAttendees: &empty}
		assert.NoError(t, req.Validate())
	})
}

func TestRequireTicketPrice(t *testing.T) {
	price := "20.00"

	assert.NoError(t, RequireTicketPrice(true, nil))
	assert.NoError(t, RequireTicketPrice(false, &price))
	assert.Error(t, RequireTicketPrice(false, nil))

	empty := "  "
	assert.Error(t, RequireTicketPrice(false, &empty))
}
