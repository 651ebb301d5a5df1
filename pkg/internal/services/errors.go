package services

import "errors"

// Domain errors recoverable at the transport boundary. Services wrap them
// with context via %w; callers discriminate with errors.Is. Anything else
// coming out of a service is a store failure and maps to an internal error.
var (
	ErrNotFound   = errors.New("record not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrSelfAction = errors.New("cannot target yourself")
)
