package model

import "time"

// Book is the book row. Every book belongs to exactly one author;
// deleting the author cascades to its books at the schema level.
type Book struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Year        int       `json:"year" db:"year"`
	Description *string   `json:"description" db:"description"`
	Stock       int       `json:"stock" db:"stock"`
	AuthorID    int       `json:"author_id" db:"author_id"`
	CreatedDate time.Time `json:"created_date" db:"created_date"`
}

// Column length limits, mirrored from the schema.
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 255
)
