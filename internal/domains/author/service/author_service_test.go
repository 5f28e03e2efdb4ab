package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/author/model"
	bookmodel "bookshelf-backend/internal/domains/book/model"
)

// mockAuthorRepository implements repository.RepositoryInterface.
type mockAuthorRepository struct {
	CreateWithBooksFunc func(ctx context.Context, a *model.Author, books []bookmodel.Book) (*model.Author, error)
	GetWithBooksFunc    func(ctx context.Context, id int) (*model.Author, error)
	ListWithBooksFunc   func(ctx context.Context) ([]model.AuthorBooks, error)
	DeleteFunc          func(ctx context.Context, id int) error
}

func (m *mockAuthorRepository) CreateWithBooks(ctx context.Context, a *model.Author, books []bookmodel.Book) (*model.Author, error) {
	return m.CreateWithBooksFunc(ctx, a, books)
}

func (m *mockAuthorRepository) GetWithBooks(ctx context.Context, id int) (*model.Author, error) {
	return m.GetWithBooksFunc(ctx, id)
}

func (m *mockAuthorRepository) ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error) {
	return m.ListWithBooksFunc(ctx)
}

func (m *mockAuthorRepository) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func TestCreateRejectsMissingFirstName(t *testing.T) {
	svc := NewAuthorService(&mockAuthorRepository{})

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{LastName: "Kurniawan"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_name")
}

func TestCreateRejectsMissingLastName(t *testing.T) {
	svc := NewAuthorService(&mockAuthorRepository{})

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{FirstName: "Yuniar"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last_name")
}

func TestCreateRejectsOverlongName(t *testing.T) {
	svc := NewAuthorService(&mockAuthorRepository{})

	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnop" // > 30 chars
	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{FirstName: long, LastName: "K"})
	assert.Error(t, err)
}

func TestCreateRejectsNestedBookWithoutTitle(t *testing.T) {
	svc := NewAuthorService(&mockAuthorRepository{})

	req := &model.CreateAuthorRequest{
		FirstName: "Yuniar",
		LastName:  "Kurniawan",
		Books:     []model.NewBookRequest{{Year: 2019}},
	}

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestCreatePersistsAuthorWithNestedBooks(t *testing.T) {
	var gotBooks []bookmodel.Book

	repo := &mockAuthorRepository{
		CreateWithBooksFunc: func(ctx context.Context, a *model.Author, books []bookmodel.Book) (*model.Author, error) {
			gotBooks = books
			created := *a
			created.ID = 1
			created.Books = books
			return &created, nil
		},
	}
	svc := NewAuthorService(repo)

	desc := "Novel fiksi misteri"
	req := &model.CreateAuthorRequest{
		FirstName: "  Yuniar ",
		LastName:  "Kurniawan",
		Books: []model.NewBookRequest{
			{Title: "KKN Di Desa Penari", Description: &desc, Year: 2010},
			{Title: "Sewu Dino", Year: 2019},
		},
	}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Yuniar", created.FirstName, "names are trimmed before validation")
	require.Len(t, gotBooks, 2)
	assert.Equal(t, 0, gotBooks[0].Stock, "nested books start with zero stock")
	assert.Equal(t, 2019, gotBooks[1].Year)
}

func TestCreateWithoutBooksPassesEmptySlice(t *testing.T) {
	repo := &mockAuthorRepository{
		CreateWithBooksFunc: func(ctx context.Context, a *model.Author, books []bookmodel.Book) (*model.Author, error) {
			assert.Empty(t, books)
			created := *a
			created.ID = 2
			return &created, nil
		},
	}
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &model.CreateAuthorRequest{FirstName: "Dan", LastName: "Brown"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}

func TestGetWithBooksRejectsNonPositiveID(t *testing.T) {
	svc := NewAuthorService(&mockAuthorRepository{})

	_, err := svc.GetWithBooks(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestDeleteRejectsNonPositiveID(t *testing.T) {
	svc := NewAuthorService(&mockAuthorRepository{})

	err := svc.Delete(context.Background(), -1)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}
