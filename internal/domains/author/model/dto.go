package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	bookmodel "bookshelf-backend/internal/domains/book/model"
)

// CreateAuthorRequest - POST /api/v1/authors
// Books are optional; when present they are persisted atomically with
// the author, each with stock defaulted to zero.
type CreateAuthorRequest struct {
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Books     []NewBookRequest `json:"books"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first_name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last_name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Books),
	)
}

// NewBookRequest is one nested book in an author creation payload.
type NewBookRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Year        int     `json:"year"`
}

func (r NewBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, bookmodel.MaxTitleLength),
		),
		validation.Field(&r.Description,
			validation.Length(0, bookmodel.MaxDescriptionLength),
		),
	)
}

// ToEntity converts the request to an Author entity plus its new books.
func (r *CreateAuthorRequest) ToEntity() (*Author, []bookmodel.Book) {
	last := r.LastName
	a := &Author{
		FirstName: r.FirstName,
		LastName:  &last,
	}

	books := make([]bookmodel.Book, len(r.Books))
	for i, nb := range r.Books {
		books[i] = bookmodel.Book{
			Title:       nb.Title,
			Description: nb.Description,
			Year:        nb.Year,
			Stock:       0,
		}
	}

	return a, books
}

// BookSummary is one owned book in a nested listing.
type BookSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Description *string `json:"description"`
}

// AuthorBooks is one nested-listing row: an author's full name, their
// book count and every owned book.
type AuthorBooks struct {
	ID         int           `json:"id"`
	Author     string        `json:"author"`
	TotalBooks int           `json:"total_books"`
	Books      []BookSummary `json:"books"`
}
