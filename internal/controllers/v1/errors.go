package v1

import (
	"errors"
	"net/http"

	"github.com/dailyledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, errUnauthenticated) || errors.Is(err, errLoginFailed) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, errNoProfile) || errors.Is(err, errNotAdmin) || errors.Is(err, errForbidden) {
		return http.StatusForbidden
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Authentication and authorization errors
var (
	errUnauthenticated = errors.New("you must provide a valid bearer token")
	errLoginFailed     = errors.New("the email address or password is incorrect")
	errNoProfile       = errors.New("you need to set up a profile before using this resource")
	errNotAdmin        = errors.New("this resource is only available to administrators")
	errForbidden       = errors.New("you are not allowed to access resources of other users")
)

// Profile errors
var (
	errPasswordTooShort = errors.New("the password must be at least 4 characters long")
	errWrongPassword    = errors.New("the current password is incorrect")
	errUsernameNotSet   = errors.New("the username must be set")
)

// Query parameter errors
var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errYearNotSetInQuery  = errors.New("the year query parameter must be set")
)

// Admin errors
var (
	errResetConfirmation = errors.New("the confirmation for the reset API call was incorrect")
	errDeleteSelf        = errors.New("you cannot delete your own user")
	errDeleteAdmin       = errors.New("administrator users cannot be deleted")
)

// Image errors
var (
	errNoFilePost       = errors.New("you must send a file to this endpoint")
	errImageNotAttached = errors.New("the image is not attached to this entry")
)
