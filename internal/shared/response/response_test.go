package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	write(c)

	body := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestWriteMergesPayloadAndCode(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Write(c, Success200, gin.H{"data": []string{"a", "b"}}, nil, nil)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["code"])
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "errors")
	assert.NotContains(t, body, "pagination")
	assert.Len(t, body["data"], 2)
}

func TestWriteSetsFixedHeaders(t *testing.T) {
	w, _ := record(t, func(c *gin.Context) {
		OK(c, gin.H{"data": 1}, nil)
	})

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, ServerName, w.Header().Get("Server"))
}

func TestWriteIncludesPaginationBlock(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		OK(c, gin.H{"data": []int{}}, NewPagination(1, 5, 9))
	})

	assert.Equal(t, http.StatusOK, w.Code)

	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(2), pagination["pages"])
	assert.Equal(t, float64(9), pagination["total_count"])
	assert.Equal(t, true, pagination["has_next"])
	assert.Equal(t, false, pagination["has_prev"])
	assert.Nil(t, pagination["prev_page"])
	assert.Equal(t, float64(2), pagination["next_page"])
}

func TestBadRequestCarriesExpectation(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		BadRequest(c, errors.New("search term is required"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "badRequest", body["code"])
	assert.Equal(t, "Bad request", body["message"])
	assert.Equal(t, "search term is required", body["Expectation"])
}

func TestInvalidInputCarriesExpectation(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		InvalidInput(c, errors.New("first_name: first_name is required."))
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "invalidData", body["code"])
	assert.Equal(t, "Invalid input", body["message"])
	assert.Contains(t, body["Expectation"], "first_name")
}

func TestNotFoundUsesEnvelope(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		NotFound(c, errors.New("book not found"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "notFound", body["code"])
	assert.Equal(t, "book not found", body["Expectation"])
}

func TestCreatedStatus(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Created(c, gin.H{"data": gin.H{"id": 1}})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", body["code"])
}

func TestStatusDescriptors(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, Success204.HTTPCode)
	assert.Equal(t, "success", Success204.Code)
	assert.Equal(t, http.StatusBadRequest, BadRequest400.HTTPCode)
	assert.Equal(t, http.StatusUnprocessableEntity, InvalidInput422.HTTPCode)
}
