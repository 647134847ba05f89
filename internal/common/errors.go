// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Generation errors.
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidRange     = errors.New("invalid range")
	ErrUnknownCategory  = errors.New("unknown category")

	// Scenario and output errors.
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrUnknownFormat   = errors.New("unknown output format")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsCallerError reports whether err was caused by bad input rather than a
// failure inside the generator. Caller errors are never worth retrying.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrUnknownScenario) ||
		errors.Is(err, ErrUnknownFormat)
}
