package types

import "errors"

// Request-terminal error taxonomy. Handlers map these onto HTTP statuses.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInsufficientSeats  = errors.New("not enough seats available")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrSeatCountMismatch  = errors.New("seat numbers do not match the requested seat count")
)
