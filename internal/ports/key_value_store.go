package ports

import "context"

// KeyValueStore is a durable slot store. Get returns an error wrapping domain.ErrKeyNotFound
// for missing keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
