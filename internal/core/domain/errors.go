package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates bad threshold or weight configuration.
	// Raised at service construction, before any document is processed:
	// a bad configuration is a deployment bug, not a data bug.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCorpusEntry indicates a corpus entry is unreadable or malformed.
	// The entry is skipped and omitted from matches; analysis continues.
	ErrCorpusEntry = errors.New("corpus entry unreadable")

	// ErrUnsupportedFormat indicates a corpus file format with no loader.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
