// Package controllers implements the HTTP handlers for the Spending API.
package controllers

import (
	"errors"
	"net/http"

	"github.com/spending-app/backend/internal/models"
)

// status returns the appropriate HTTP status for a database error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errAmountNotPositive = errors.New("the amount must be positive")
	errDescriptionEmpty  = errors.New("the description must not be empty")
	errDateNotSet        = errors.New("the date must be set")
	errInvalidNow        = errors.New("the now query parameter must be a date in YYYY-MM-DD format")
)
