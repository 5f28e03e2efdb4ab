package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerName identifies the service in the Server response header.
const ServerName = "Bookshelf REST API"

// Status describes the HTTP code, machine-readable code and optional
// human message attached to every response.
type Status struct {
	HTTPCode int
	Code     string
	Message  string
}

var (
	Success200 = Status{HTTPCode: http.StatusOK, Code: "success"}
	Success201 = Status{HTTPCode: http.StatusCreated, Code: "success"}
	// Success204 is reserved for future no-content responses.
	Success204 = Status{HTTPCode: http.StatusNoContent, Code: "success"}

	BadRequest400   = Status{HTTPCode: http.StatusBadRequest, Code: "badRequest", Message: "Bad request"}
	NotFound404     = Status{HTTPCode: http.StatusNotFound, Code: "notFound", Message: "Not found"}
	InvalidInput422 = Status{HTTPCode: http.StatusUnprocessableEntity, Code: "invalidData", Message: "Invalid input"}
)

// Write shapes the uniform response body: payload fields merged at the
// top level, then message (when the status carries one), code, optional
// errors and optional pagination. It performs no validation of its own.
func Write(c *gin.Context, status Status, value gin.H, errs interface{}, pagination *Pagination) {
	result := gin.H{}
	for k, v := range value {
		result[k] = v
	}

	if status.Message != "" {
		result["message"] = status.Message
	}

	result["code"] = status.Code

	if errs != nil {
		result["errors"] = errs
	}

	if pagination != nil {
		result["pagination"] = pagination
	}

	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Server", ServerName)

	c.JSON(status.HTTPCode, result)
}

// OK writes a 200 response with an optional pagination block.
func OK(c *gin.Context, value gin.H, pagination *Pagination) {
	Write(c, Success200, value, nil, pagination)
}

// Created writes a 201 response.
func Created(c *gin.Context, value gin.H) {
	Write(c, Success201, value, nil, nil)
}

// BadRequest reports a read/query failure. The underlying error text is
// exposed under the Expectation key, matching the public API contract.
func BadRequest(c *gin.Context, err error) {
	Write(c, BadRequest400, gin.H{"Expectation": err.Error()}, nil, nil)
}

// NotFound reports a missing resource through the same envelope.
func NotFound(c *gin.Context, err error) {
	Write(c, NotFound404, gin.H{"Expectation": err.Error()}, nil, nil)
}

// InvalidInput reports a write/validation failure.
func InvalidInput(c *gin.Context, err error) {
	Write(c, InvalidInput422, gin.H{"Expectation": err.Error()}, nil, nil)
}
