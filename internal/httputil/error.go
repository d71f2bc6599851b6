// Package httputil provides helpers for HTTP request and response handling.
package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the wire format for all error responses. Field is set when the
// error concerns a single field of the request body.
type Error struct {
	Message string `json:"message" example:"the amount must be positive"`
	Field   string `json:"field,omitempty" example:"amount"`
}

// NewError writes an error response without field information.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, Error{
		Message: err.Error(),
	})
}

// NewFieldError writes a validation error for a single request field.
func NewFieldError(c *gin.Context, field string, err error) {
	c.JSON(http.StatusBadRequest, Error{
		Message: err.Error(),
		Field:   field,
	})
}
