package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidID          = errors.New("malformed id")

	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")

	ErrBookingNotFound = errors.New("booking not found")
	ErrPitchTaken      = errors.New("pitch number already assigned")
)
