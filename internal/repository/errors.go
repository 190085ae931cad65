package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername is returned when an insert violates the username
	// uniqueness constraint.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail is returned when an insert violates the email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateMovie is returned when a user saves the same movie twice.
	ErrDuplicateMovie = errors.New("movie already saved")
)
