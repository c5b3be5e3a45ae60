package storage

import "context"

// ObjectStore persists a named document and returns a retrievable URL for it.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
}
