package document

import (
	"fmt"
	"strings"
)

// ValidateDocument checks the fields Save requires.
//
// Required:
//   - the document itself
//   - Title and Content (non-empty)
//   - Author
//
// ID and Created are optional; the store fills them in.
//
// Title and Content are plain strings, so the empty string stands for a
// missing value and is rejected. This is stricter than a nullable field would
// be: a document with an explicitly empty title cannot be stored. Whitespace
// is content and passes.
func ValidateDocument(d *Document) error {
	if d == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidArgument)
	}
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if d.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidArgument)
	}
	if d.Author == nil {
		return fmt.Errorf("%w: author is required", ErrInvalidArgument)
	}
	return nil
}

// ValidateID rejects empty and whitespace-only ids.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: document id must not be blank", ErrInvalidArgument)
	}
	return nil
}

// ValidateSearchRequest only rejects a missing request; every field is optional.
func ValidateSearchRequest(req *SearchRequest) error {
	if req == nil {
		return fmt.Errorf("%w: search request is nil", ErrInvalidArgument)
	}
	return nil
}
