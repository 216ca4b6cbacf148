package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEmailAlreadyRegistered = errors.New("this email is already registered")
	ErrNoValidSession         = errors.New("the credential is invalid or expired")

	ErrCategoryNameEmpty    = errors.New("category names must not be empty")
	ErrBudgetAmountNegative = errors.New("budget amounts must not be negative")
	ErrAmountNegative       = errors.New("expense amounts must not be negative")
)
