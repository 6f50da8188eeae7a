// Package response maps service results and domain errors onto HTTP responses.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/shareit/internal/domain"
)

// ErrorBody is the single-message error payload every failure returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK writes a 200 response with the payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 response with the payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 response with the message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Error translates a domain error into the corresponding status code,
// propagating the originating message verbatim. Unknown errors become
// an opaque 500.
func Error(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		forbiddenErr  *domain.ForbiddenError
		conflictErr   *domain.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorBody{Error: validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorBody{Error: notFoundErr.Message})
	case errors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, ErrorBody{Error: forbiddenErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, ErrorBody{Error: conflictErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
	}
}
