package service

import (
	"context"

	"bookshelf-backend/internal/domains/author/model"
)

// ServiceInterface is the author business-logic contract.
type ServiceInterface interface {
	// Create validates the request and persists the author together
	// with its nested books.
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// GetWithBooks fetches one author and all their books.
	GetWithBooks(ctx context.Context, id int) (*model.Author, error)

	// ListWithBooks returns every author with their complete book list.
	ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error)

	// Delete removes an author and, by cascade, their books.
	Delete(ctx context.Context, id int) error
}
