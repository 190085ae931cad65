package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are
	// incorrect. The same error is used for an unknown username and a wrong
	// password so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email already used")
	// ErrNotFound is returned when the requested resource does not exist or
	// is not owned by the caller. The two cases are indistinguishable.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries every structural violation found in a request,
// not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// AsValidation unwraps err into a *ValidationError when possible.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
