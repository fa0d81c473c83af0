package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrInvalidEvent        = errors.New("event is missing required fields")
	ErrInvalidRegistration = errors.New("registration is missing required fields")
	ErrNoEvents            = errors.New("no events available to register against")
)
