package model

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
)

// ToHTTPStatus maps a domain error onto the API's status buckets.
// Creation failures are reported as 422 invalid input.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}
