package v1

import (
	"errors"
	"net/http"

	"github.com/spendwell/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no category matching your query"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Authentication errors
var (
	errMissingCredentials = errors.New("this endpoint requires a bearer credential in the Authorization header")
	errInvalidCredentials = errors.New("invalid email or password")
)

// Budget and report errors
var (
	errMonthOutOfRange = errors.New("the month must be between 1 and 12 and the year must have four digits")
)

// Expense errors
var (
	errIncompleteMonthFilter = errors.New("month and year query parameters must be set together")
)
