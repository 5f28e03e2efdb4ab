package service

import (
	"context"
	"strings"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/repository"
)

// DefaultCountYear is the year filter applied when the count endpoint
// is called without an explicit year parameter.
const DefaultCountYear = 2019

type bookService struct {
	repo repository.RepositoryInterface
}

// NewBookService creates a new book service instance.
func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) Search(ctx context.Context, query model.SearchQuery) ([]model.SearchResult, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, model.ErrMissingSearchTerm
	}
	query.Normalize()

	pattern := likePattern(query.Search)
	offset := (query.Page - 1) * query.PerPage

	rows, total, err := s.repo.Search(ctx, pattern, query.PerPage, offset)
	if err != nil {
		return nil, 0, err
	}

	results := make([]model.SearchResult, len(rows))
	for i, row := range rows {
		results[i] = model.SearchResult{
			ID:          row.ID,
			Title:       row.Title,
			Year:        row.Year,
			Description: row.Description,
			Author:      fullName(row.FirstName, row.LastName),
		}
	}

	return results, total, nil
}

func (s *bookService) CountByAuthor(ctx context.Context, query model.CountByAuthorQuery) ([]model.AuthorBookCount, error) {
	if err := query.Validate(); err != nil {
		return nil, model.ErrMissingSearchTerm
	}

	year := query.Year
	if year == 0 {
		year = DefaultCountYear
	}

	return s.repo.CountByAuthor(ctx, likePattern(query.Search), year)
}

func (s *bookService) UpdateStock(ctx context.Context, id int, delta *int) (*model.Book, error) {
	if delta == nil || *delta == 0 {
		return s.repo.GetByID(ctx, id)
	}

	return s.repo.UpdateStock(ctx, id, *delta)
}

// likePattern lower-cases the term and escapes LIKE wildcards so user
// input is always a literal substring test.
func likePattern(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	term = strings.ReplaceAll(term, "_", `\_`)
	return "%" + term + "%"
}

// fullName joins the author's names; last_name is optional.
func fullName(first string, last *string) string {
	if last == nil || *last == "" {
		return first
	}
	return first + " " + *last
}
