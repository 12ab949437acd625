package report

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrReportNotFound = errors.New("annual report not found")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrReportNotFound):
		return http.StatusNotFound
	}

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
