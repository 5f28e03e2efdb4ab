package repository

import (
	"context"

	"bookshelf-backend/internal/domains/author/model"
	bookmodel "bookshelf-backend/internal/domains/book/model"
)

// RepositoryInterface is the author data-access contract.
type RepositoryInterface interface {
	// CreateWithBooks inserts the author and its nested books in one
	// transaction. On any failure nothing is persisted.
	CreateWithBooks(ctx context.Context, a *model.Author, books []bookmodel.Book) (*model.Author, error)

	// GetWithBooks fetches one author and all their books.
	GetWithBooks(ctx context.Context, id int) (*model.Author, error)

	// ListWithBooks returns every author with their complete book list.
	ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error)

	// Delete removes an author; owned books cascade at the schema level.
	Delete(ctx context.Context, id int) error
}
