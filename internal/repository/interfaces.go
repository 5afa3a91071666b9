package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no state document has been written yet.
var ErrNotFound = errors.New("not found")

// StateRepo persists the state tree as a single opaque JSON document under
// a fixed, version-scoped key. Changing schema versions changes the key;
// documents under old keys are abandoned, not migrated.
type StateRepo interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
}
