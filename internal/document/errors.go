package document

import "errors"

var (
	// ErrInvalidArgument is returned when a caller passes a missing document,
	// a document without title, content or author, a blank id, or no search request.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates a document id has no stored entry.
	ErrNotFound = errors.New("document not found")
)
