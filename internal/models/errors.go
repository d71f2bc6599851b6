package models

import (
	"errors"
)

var (
	// ErrGeneral is returned when the backing store fails in a way we cannot
	// explain to the user.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrNotFound is wrapped by all record-not-found errors.
	ErrNotFound = errors.New("not found")

	// ErrAmountNotPositive is returned for amounts of zero cents or less.
	ErrAmountNotPositive = errors.New("the amount must be positive")
)
