package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUsernameTaken    = errors.New("this username is already in use")
	ErrProfileExists    = errors.New("a profile already exists for this user")
	ErrEmailTaken       = errors.New("this email address is already registered")
	ErrAmountNegative   = errors.New("amounts must not be negative")
	ErrDateInvalid      = errors.New("the date must be a calendar date in YYYY-MM-DD format")
	ErrYearMonthInvalid = errors.New("the month must be specified in YYYY-MM format")
)
