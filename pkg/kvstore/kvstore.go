// Package kvstore is the persistence boundary of the storefront: a single
// JSON blob per key, mirroring what a browser keeps in local storage.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key was never written or was deleted.
var ErrNotFound = errors.New("kvstore: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
