package repository

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
)

// RepositoryInterface is the book data-access contract.
type RepositoryInterface interface {
	// Search returns one page of books joined with their author where
	// pattern (a lower-cased, escaped LIKE pattern) matches any of the
	// five searchable fields, newest first, plus the total match count.
	Search(ctx context.Context, pattern string, limit, offset int) ([]model.SearchRow, int64, error)

	// CountByAuthor returns, per author whose first name matches
	// pattern, the count of their books published in year.
	CountByAuthor(ctx context.Context, pattern string, year int) ([]model.AuthorBookCount, error)

	// GetByID fetches a single book.
	GetByID(ctx context.Context, id int) (*model.Book, error)

	// UpdateStock atomically adds delta to a book's stock and returns
	// the updated row. Fails with ErrInsufficientStock when the result
	// would be negative.
	UpdateStock(ctx context.Context, id, delta int) (*model.Book, error)
}
