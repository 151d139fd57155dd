package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUsernameEmailRequired = errors.New("username and email are required")
	ErrEmailInvalid          = errors.New("email must contain '@'")
	ErrNameRequired          = errors.New("name is required")
)

// NotFoundError reports that the targeted record does not exist.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// DuplicateError reports a uniqueness conflict, carrying the entity kind and
// the offending key for diagnostics.
type DuplicateError struct {
	Entity string
	Key    string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Key, e.Value)
}

// IsValidation reports whether err is one of the payload-shape failures that
// map to a 400 at the transport layer.
func IsValidation(err error) bool {
	return errors.Is(err, ErrUsernameEmailRequired) ||
		errors.Is(err, ErrEmailInvalid) ||
		errors.Is(err, ErrNameRequired)
}
