// Package storage provides the snapshot store the state manager persists
// into: opaque JSON blobs addressed by a small set of logical keys, the same
// shape browser local storage gives a client-side app.
package storage

import (
	"context"
	"errors"
)

// Logical snapshot keys. Each key holds one full-slice overwrite, last write
// wins, no merging.
const (
	KeyCart     = "freshmart_cart"
	KeyUser     = "freshmart_user"
	KeyOrders   = "freshmart_orders"
	KeyProducts = "freshmart_products"
)

// ErrNotFound is returned by Get when a key has never been written or has
// been deleted.
var ErrNotFound = errors.New("snapshot not found")

// Store is a keyed blob store. Implementations must be safe for concurrent
// use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
