// Package metadata is the client's durable key/value store. It backs the
// Token Store and any other small per-installation settings.
package metadata

import (
	"context"
)

// Repository stores opaque values under string keys.
//
// Get reports found=false (with a nil error) when the key is absent.
// Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}
