package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no payload exists under the name.
var ErrNotFound = errors.New("collection not found")

// Store persists named collections as opaque serialized payloads.
// A Put replaces the whole payload for the name; there are no partial
// writes and no cross-name transactions.
type Store interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
	Close() error
}
