package service

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
)

// ServiceInterface is the book business-logic contract.
type ServiceInterface interface {
	// Search runs the multi-field substring search and returns the
	// flattened page plus the total match count.
	Search(ctx context.Context, query model.SearchQuery) ([]model.SearchResult, int64, error)

	// CountByAuthor groups matching books per author for one year.
	CountByAuthor(ctx context.Context, query model.CountByAuthorQuery) ([]model.AuthorBookCount, error)

	// UpdateStock applies a signed delta to a book's stock. A nil delta
	// is a no-op that returns the current record.
	UpdateStock(ctx context.Context, id int, delta *int) (*model.Book, error)
}
