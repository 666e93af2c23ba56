package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown normaliser or content type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrSourceUnavailable indicates a corpus source could not be loaded.
	// The corpus service excludes such sources rather than failing.
	ErrSourceUnavailable = errors.New("corpus source unavailable")

	// ErrHistoryDisabled indicates the query log is not enabled.
	ErrHistoryDisabled = errors.New("query history disabled")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
