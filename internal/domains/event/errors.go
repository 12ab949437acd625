package event

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ============================================================
// SENTINEL ERRORS
// ============================================================

// ErrEventNotFound: id/slug không tồn tại hoặc event đã soft-deleted
var ErrEventNotFound = errors.New("event not found")

// GetHTTPStatusCode map domain error tới HTTP status code
// Event slug có timestamp suffix nên không có duplicate-slug conflict case
func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors

	switch {
	case errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
