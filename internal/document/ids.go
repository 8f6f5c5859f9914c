package document

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator produces a new document id. Collisions are treated as negligible;
// the store does not check generated ids against existing keys.
type IDGenerator func() string

// NewUUID returns a random (v4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}

// NewULID returns a lexicographically time-sortable ULID string.
func NewULID() string {
	return ulid.Make().String()
}

// IDGeneratorFor maps a configured id format ("uuid" or "ulid") to a generator.
// An empty format selects uuid.
func IDGeneratorFor(format string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "uuid":
		return NewUUID, nil
	case "ulid":
		return NewULID, nil
	}
	return nil, fmt.Errorf("%w: unknown id format %q", ErrInvalidArgument, format)
}
