package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Archive Errors.

	// ErrDirectoryUnreadable indicates a scan path is missing or not a directory.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrArchiveUnreadable indicates a file is not a valid archive, or is truncated or corrupt.
	ErrArchiveUnreadable = errors.New("archive unreadable")

	// ErrEntryNotFound indicates the requested path is absent from the archive directory.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryTooLarge indicates an entry exceeds the configured read limit.
	ErrEntryTooLarge = errors.New("entry too large")

	// ErrMalformedRecipe indicates recipe bytes could not be decoded as a JSON object.
	// The parser degrades instead of returning it; extraction reports it per entry.
	ErrMalformedRecipe = errors.New("malformed recipe json")

	// Store Errors.

	// ErrStoreWrite indicates the recipe store rejected a write.
	ErrStoreWrite = errors.New("store write failed")

	// ErrStoreRead indicates the recipe store could not answer a query.
	ErrStoreRead = errors.New("store read failed")

	// Extraction Errors.

	// ErrExtractionInProgress indicates another extraction holds the extraction lock.
	ErrExtractionInProgress = errors.New("extraction in progress")
)
