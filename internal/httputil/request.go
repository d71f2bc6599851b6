package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ParseID parses the named URI parameter as a resource ID.
// On failure, the error response has already been written.
func ParseID(c *gin.Context, param string) (uint64, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		NewError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, ErrInvalidID
	}

	return parsed, nil
}

// BindData binds the request body to the struct passed in.
// On failure, the error response has already been written.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
			return ErrRequestBodyEmpty
		}

		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			e := fieldErrorToText(fieldErrors[0])
			NewFieldError(c, strings.ToLower(fieldErrors[0].Field()), e)
			return e
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusBadRequest, ErrInvalidBody)
		return ErrInvalidBody
	}

	return nil
}

// fieldErrorToText converts a validator field error into a user-facing error.
func fieldErrorToText(e validator.FieldError) error {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "max":
		return fmt.Errorf("%s cannot be longer than %s", field, e.Param())
	case "min":
		return fmt.Errorf("%s must be longer than %s", field, e.Param())
	}

	return fmt.Errorf("%s is not valid", field)
}
