package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Search defaults and bounds.
const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MaxPerPage     = 100
)

// SearchQuery - GET /api/v1/books?search=&page=&per_page=
type SearchQuery struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

func (q SearchQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Search,
			validation.Required.Error("search term is required"),
		),
		validation.Field(&q.Page, validation.Min(1)),
		validation.Field(&q.PerPage, validation.Min(1), validation.Max(MaxPerPage)),
	)
}

// Normalize fills in pagination defaults.
func (q *SearchQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
}

// SearchRow is one joined book+author row as scanned from the database.
// Fields are scanned by name into the struct, never by position.
type SearchRow struct {
	ID          int     `db:"id"`
	Title       string  `db:"title"`
	Year        int     `db:"year"`
	Description *string `db:"description"`
	FirstName   string  `db:"first_name"`
	LastName    *string `db:"last_name"`
}

// SearchResult is the flattened record returned to clients: the book
// fields plus the author's full name.
type SearchResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Description *string `json:"description"`
	Author      string  `json:"author"`
}

// CountByAuthorQuery - GET /api/v1/books/count_by_author?search=&year=
type CountByAuthorQuery struct {
	Search string `form:"search"`
	Year   int    `form:"year"`
}

func (q CountByAuthorQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Search,
			validation.Required.Error("search term is required"),
		),
	)
}

// AuthorBookCount is one grouped row: an author's first name and how
// many of their books match the year filter.
type AuthorBookCount struct {
	FirstName  string `json:"first_name"`
	TotalBooks int    `json:"total_books"`
}

// UpdateStockRequest - PATCH /api/v1/books/update_stock/:book_id
// Stock is a signed delta added to the current value. A missing delta
// is a no-op that returns the current record.
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}
