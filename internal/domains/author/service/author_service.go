package service

import (
	"context"
	"strings"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/internal/domains/author/repository"
)

type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates a new author service instance.
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, books := req.ToEntity()
	return s.repo.CreateWithBooks(ctx, a, books)
}

func (s *authorService) GetWithBooks(ctx context.Context, id int) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetWithBooks(ctx, id)
}

func (s *authorService) ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error) {
	return s.repo.ListWithBooks(ctx)
}

func (s *authorService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return model.ErrAuthorNotFound
	}
	return s.repo.Delete(ctx, id)
}
