package model

import (
	"errors"
	"net/http"
)

var (
	// Validation errors
	ErrMissingSearchTerm = errors.New("search term is required")

	// Business rule errors
	ErrBookNotFound      = errors.New("book not found")
	ErrInsufficientStock = errors.New("stock delta would drive stock below zero")
)

// ToHTTPStatus maps a domain error onto the coarse status buckets the
// API exposes: 400 for read/query failures, 404 for missing rows,
// 422 for rejected writes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingSearchTerm):
		return http.StatusBadRequest
	case errors.Is(err, ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
