package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/service"
	"bookshelf-backend/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// Search - GET /api/v1/books?search=&page=&per_page=
func (h *BookHandler) Search(c *gin.Context) {
	query := model.SearchQuery{
		Search:  c.Query("search"),
		Page:    intQuery(c, "page", model.DefaultPage),
		PerPage: intQuery(c, "per_page", model.DefaultPerPage),
	}

	results, total, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	query.Normalize()
	pagination := response.NewPagination(query.Page, query.PerPage, total)

	// Empty page still serializes as an array, not null.
	if results == nil {
		results = []model.SearchResult{}
	}

	response.OK(c, gin.H{"data": results}, pagination)
}

// CountByAuthor - GET /api/v1/books/count_by_author?search=&year=
func (h *BookHandler) CountByAuthor(c *gin.Context) {
	query := model.CountByAuthorQuery{
		Search: c.Query("search"),
		Year:   intQuery(c, "year", 0),
	}

	counts, err := h.service.CountByAuthor(c.Request.Context(), query)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if counts == nil {
		counts = []model.AuthorBookCount{}
	}

	response.OK(c, gin.H{"data": counts}, nil)
}

// UpdateStock - PATCH /api/v1/books/update_stock/:book_id
func (h *BookHandler) UpdateStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, errors.New("book_id must be an integer"))
		return
	}

	var req model.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidInput(c, err)
		return
	}

	book, err := h.service.UpdateStock(c.Request.Context(), id, req.Stock)
	if err != nil {
		switch model.ToHTTPStatus(err) {
		case http.StatusNotFound:
			response.NotFound(c, err)
		case http.StatusUnprocessableEntity:
			response.InvalidInput(c, err)
		default:
			response.BadRequest(c, err)
		}
		return
	}

	response.OK(c, gin.H{"data": book}, nil)
}

// intQuery parses an integer query parameter with a default.
func intQuery(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
