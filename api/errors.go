package api

import (
	"errors"
	"fmt"
)

// GenericMessage is shown when the backend gave no usable error message.
const GenericMessage = "something went wrong, please try again"

var (
	// ErrNoSession is returned before any network call when an admin request has no token.
	ErrNoSession = errors.New("not logged in")
	// ErrUnauthorized means the backend rejected the token; the session has been cleared.
	ErrUnauthorized = errors.New("session expired, please log in again")
)

// Error is a failed backend call. Status is 0 when no response was received.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsAuth reports whether err requires the user to log in again.
func IsAuth(err error) bool {
	return errors.Is(err, ErrNoSession) || errors.Is(err, ErrUnauthorized)
}

// Message returns the text to show the user for err.
func Message(err error) string {
	var apiErr *Error
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case IsAuth(err):
		return err.Error()
	default:
		return GenericMessage
	}
}
