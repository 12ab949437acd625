package post

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ============================================================
// SENTINEL ERRORS
// ============================================================
// Domain-specific errors, check bằng errors.Is()
// Error chain: handler => service => repository => database
//
// MAPPING:
// ErrPostNotFound  => 404 Not Found
// ErrDuplicateSlug => 409 Conflict
// validation.Errors => 400 Bad Request (field-level details)
// còn lại          => 500 (storage error - logged, không retry)

// ErrPostNotFound: id/slug không tồn tại HOẶC bài đã soft-deleted
// Public read path không phân biệt hai trường hợp này
var ErrPostNotFound = errors.New("post not found")

// ErrDuplicateSlug: slug derive từ title đã tồn tại
// Posts không có timestamp suffix như events, nên trùng title => conflict
// Client sửa title để resolve
var ErrDuplicateSlug = errors.New("post slug already exists")

// GetHTTPStatusCode map domain error tới HTTP status code
// Centralized: 1 chỗ để map, handler không tự suy status
func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors

	switch {
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
