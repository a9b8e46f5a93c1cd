package services

import "errors"

var (
	// ErrDuplicateEmail is returned by Signup when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when an item does not exist or belongs to someone else.
	ErrNotFound = errors.New("item not found")
	// ErrStore wraps unexpected persistence failures.
	ErrStore = errors.New("store failure")
)
