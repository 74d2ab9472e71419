package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing title, oversized title, blank content).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by repo functions when a write lost a race against
// a concurrent writer (unique violation, serialization failure, deadlock).
// It is retryable: services restart the unit of work and never surface it.
var ErrConflict = errors.New("conflict")

// ErrStoreUnavailable is returned when the database cannot be reached, or
// when a conflicting write could not be settled within the retry budget.
// Handlers should map this to HTTP 503 with a generic message.
var ErrStoreUnavailable = errors.New("store unavailable")
