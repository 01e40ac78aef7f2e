// Package uuid wraps github.com/google/uuid with parsing behavior
// that is suitable for binding request parameters.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

var ErrInvalid = errors.New("the specified ID is not a valid UUID")

func New() UUID {
	return UUID{google_uuid.New()}
}

// Parse parses a UUID string. The empty string parses to Nil so that
// optional parameters can fall back to the caller's own ID.
func Parse(s string) (UUID, error) {
	if s == "" {
		return Nil, nil
	}

	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, ErrInvalid
	}

	return UUID{parsed}, nil
}

// UnmarshalParam implements the binding interface gin uses for
// URI and query parameters.
func (u *UUID) UnmarshalParam(p string) error {
	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
