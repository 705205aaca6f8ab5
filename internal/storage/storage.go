package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no snapshot has ever been saved under
// the requested key. Callers treat it as "no data yet", not as a failure.
var ErrNotFound = errors.New("snapshot not found")

// Store persists whole-collection snapshots under a text key.
// Values are opaque to the store; the owning repository decides the encoding.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
