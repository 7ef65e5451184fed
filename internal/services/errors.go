package services

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated    = errors.New("user not logged in")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidID          = errors.New("invalid id")
	ErrMissingField       = errors.New("missing required field")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrSenderNotFound     = errors.New("sender not found")
)

// checkID rejects ids that cannot be native store ids before they reach a
// query.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Join(ErrInvalidID, err)
	}
	return nil
}
