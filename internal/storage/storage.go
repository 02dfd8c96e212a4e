// AngelaMos | 2026
// storage.go

package storage

import (
	"context"
	"io"
)

// ObjectStorage persists uploaded binaries under a key and returns a
// URL the stored object can be fetched from.
type ObjectStorage interface {
	Put(
		ctx context.Context,
		key, contentType string,
		r io.Reader,
		size int64,
	) (string, error)
	Remove(ctx context.Context, key string) error
}
