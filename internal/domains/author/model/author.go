package model

import (
	"time"

	bookmodel "bookshelf-backend/internal/domains/book/model"
)

// Author is the author row. Books are attached when loaded or created
// together with the author.
type Author struct {
	ID          int              `json:"id" db:"id"`
	FirstName   string           `json:"first_name" db:"first_name"`
	LastName    *string          `json:"last_name" db:"last_name"`
	CreatedDate time.Time        `json:"created_date" db:"created_date"`
	Books       []bookmodel.Book `json:"books,omitempty"`
}

// Column length limits, mirrored from the schema.
const MaxNameLength = 30

// FullName joins first and last name; last name may be absent.
func (a *Author) FullName() string {
	if a.LastName == nil || *a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + *a.LastName
}
