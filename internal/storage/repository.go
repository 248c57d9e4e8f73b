// Package storage provides the kiosk's local key-value store. Two scopes
// exist at runtime: a durable one backed by a database file, and an
// ephemeral one backed by an in-memory database that vanishes with the
// process, mirroring a browser's local and session storage.
package storage

import "context"

// Repository is a string-keyed blob store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites any existing value.
//   - Delete is a no-op for absent keys.
//   - Clear removes every key in the scope.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
