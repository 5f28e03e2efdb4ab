package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/book/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockBookService implements service.ServiceInterface for handler tests.
type mockBookService struct {
	SearchFunc        func(ctx context.Context, query model.SearchQuery) ([]model.SearchResult, int64, error)
	CountByAuthorFunc func(ctx context.Context, query model.CountByAuthorQuery) ([]model.AuthorBookCount, error)
	UpdateStockFunc   func(ctx context.Context, id int, delta *int) (*model.Book, error)
}

func (m *mockBookService) Search(ctx context.Context, query model.SearchQuery) ([]model.SearchResult, int64, error) {
	return m.SearchFunc(ctx, query)
}

func (m *mockBookService) CountByAuthor(ctx context.Context, query model.CountByAuthorQuery) ([]model.AuthorBookCount, error) {
	return m.CountByAuthorFunc(ctx, query)
}

func (m *mockBookService) UpdateStock(ctx context.Context, id int, delta *int) (*model.Book, error) {
	return m.UpdateStockFunc(ctx, id, delta)
}

func newBookRouter(svc *mockBookService) *gin.Engine {
	h := NewBookHandler(svc)
	router := gin.New()
	router.GET("/api/v1/books", h.Search)
	router.GET("/api/v1/books/count_by_author", h.CountByAuthor)
	router.PATCH("/api/v1/books/update_stock/:book_id", h.UpdateStock)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, target string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	decoded := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestSearchMissingTermReturnsBadRequest(t *testing.T) {
	svc := &mockBookService{
		SearchFunc: func(ctx context.Context, query model.SearchQuery) ([]model.SearchResult, int64, error) {
			return nil, 0, model.ErrMissingSearchTerm
		},
	}

	w, body := doRequest(t, newBookRouter(svc), http.MethodGet, "/api/v1/books", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "badRequest", body["code"])
	assert.Equal(t, "search term is required", body["Expectation"])
}

func TestSearchReturnsDataAndPagination(t *testing.T) {
	desc := "Novel fiksi misteri"
	svc := &mockBookService{
		SearchFunc: func(ctx context.Context, query model.SearchQuery) ([]model.SearchResult, int64, error) {
			assert.Equal(t, "misteri", query.Search)
			results := make([]model.SearchResult, 5)
			for i := range results {
				results[i] = model.SearchResult{
					ID:          9 - i,
					Title:       "KKN Di Desa Penari",
					Year:        2010,
					Description: &desc,
					Author:      "Yuniar Kurniawan",
				}
			}
			return results, 9, nil
		},
	}

	w, body := doRequest(t, newBookRouter(svc), http.MethodGet, "/api/v1/books?search=misteri", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["code"])
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 5)

	first, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Yuniar Kurniawan", first["author"])
	assert.Equal(t, "Novel fiksi misteri", first["description"])

	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(2), pagination["pages"])
	assert.Equal(t, float64(9), pagination["total_count"])
	assert.Equal(t, true, pagination["has_next"])
	assert.Equal(t, false, pagination["has_prev"])
}

func TestSearchEmptyPageSerializesAsArray(t *testing.T) {
	svc := &mockBookService{
		SearchFunc: func(ctx context.Context, query model.SearchQuery) ([]model.SearchResult, int64, error) {
			return nil, 0, nil
		},
	}

	w, body := doRequest(t, newBookRouter(svc), http.MethodGet, "/api/v1/books?search=nothing", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestSearchPassesPaginationParams(t *testing.T) {
	svc := &mockBookService{
		SearchFunc: func(ctx context.Context, query model.SearchQuery) ([]model.SearchResult, int64, error) {
			assert.Equal(t, 2, query.Page)
			assert.Equal(t, 5, query.PerPage)
			return []model.SearchResult{{ID: 4}}, 9, nil
		},
	}

	w, body := doRequest(t, newBookRouter(svc), http.MethodGet, "/api/v1/books?search=novel&page=2&per_page=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, false, pagination["has_next"])
	assert.Equal(t, float64(1), pagination["prev_page"])
	assert.Nil(t, pagination["next_page"])
}

func TestCountByAuthorReturnsGroupedRows(t *testing.T) {
	svc := &mockBookService{
		CountByAuthorFunc: func(ctx context.Context, query model.CountByAuthorQuery) ([]model.AuthorBookCount, error) {
			assert.Equal(t, "yun", query.Search)
			assert.Equal(t, 2015, query.Year)
			return []model.AuthorBookCount{{FirstName: "Yuniar", TotalBooks: 3}}, nil
		},
	}

	w, body := doRequest(t, newBookRouter(svc), http.MethodGet, "/api/v1/books/count_by_author?search=yun&year=2015", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	row := data[0].(map[string]interface{})
	assert.Equal(t, "Yuniar", row["first_name"])
	assert.Equal(t, float64(3), row["total_books"])
}

func TestUpdateStockAppliesDelta(t *testing.T) {
	svc := &mockBookService{
		UpdateStockFunc: func(ctx context.Context, id int, delta *int) (*model.Book, error) {
			require.NotNil(t, delta)
			assert.Equal(t, 7, id)
			assert.Equal(t, -3, *delta)
			return &model.Book{ID: id, Title: "Sewu Dino", Stock: 2, AuthorID: 1}, nil
		},
	}

	w, body := doRequest(t, newBookRouter(svc), http.MethodPatch,
		"/api/v1/books/update_stock/7", map[string]int{"stock": -3})

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["stock"])
}

func TestUpdateStockMissingBookReturnsNotFound(t *testing.T) {
	svc := &mockBookService{
		UpdateStockFunc: func(ctx context.Context, id int, delta *int) (*model.Book, error) {
			return nil, model.ErrBookNotFound
		},
	}

	w, body := doRequest(t, newBookRouter(svc), http.MethodPatch,
		"/api/v1/books/update_stock/99", map[string]int{"stock": 1})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "notFound", body["code"])
	assert.Equal(t, "book not found", body["Expectation"])
}

func TestUpdateStockRejectsNegativeResult(t *testing.T) {
	svc := &mockBookService{
		UpdateStockFunc: func(ctx context.Context, id int, delta *int) (*model.Book, error) {
			return nil, model.ErrInsufficientStock
		},
	}

	w, body := doRequest(t, newBookRouter(svc), http.MethodPatch,
		"/api/v1/books/update_stock/7", map[string]int{"stock": -100})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "invalidData", body["code"])
}

func TestUpdateStockRejectsNonIntegerID(t *testing.T) {
	svc := &mockBookService{}

	w, body := doRequest(t, newBookRouter(svc), http.MethodPatch,
		"/api/v1/books/update_stock/abc", map[string]int{"stock": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "badRequest", body["code"])
}
