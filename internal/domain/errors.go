package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. unknown category, day index out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrPrecondition is returned when an operation is requested before its
// prerequisites are met (e.g. starting navigation without a known live
// position, or confirming the wizard before reaching review). The operation
// performs no state mutation. Handlers should map this to HTTP 409.
var ErrPrecondition = errors.New("precondition not met")

// ErrSearchPending is returned by the discovery adapter when a search is
// already in flight for the session. Handlers should map this to HTTP 429.
var ErrSearchPending = errors.New("search already in progress")
