package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/internal/domains/author/service"
	"bookshelf-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidInput(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.InvalidInput(c, err)
		return
	}

	response.Created(c, gin.H{"data": created})
}

// GetByID - GET /api/v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, errors.New("id must be an integer"))
		return
	}

	a, err := h.service.GetWithBooks(c.Request.Context(), id)
	if err != nil {
		if model.ToHTTPStatus(err) == http.StatusNotFound {
			response.NotFound(c, err)
		} else {
			response.BadRequest(c, err)
		}
		return
	}

	response.OK(c, gin.H{"data": a}, nil)
}

// ListWithBooks - GET /api/v1/books/book_by_author
// The route is mounted under /books next to the other listing endpoints.
func (h *AuthorHandler) ListWithBooks(c *gin.Context) {
	listing, err := h.service.ListWithBooks(c.Request.Context())
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if listing == nil {
		listing = []model.AuthorBooks{}
	}

	response.OK(c, gin.H{"data": listing}, nil)
}

// Delete - DELETE /api/v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, errors.New("id must be an integer"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if model.ToHTTPStatus(err) == http.StatusNotFound {
			response.NotFound(c, err)
		} else {
			response.BadRequest(c, err)
		}
		return
	}

	response.OK(c, gin.H{"data": nil}, nil)
}
