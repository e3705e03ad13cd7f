// Package storage provides the blob backends for document payloads. The
// default configuration keeps payloads inline in the documents table; an
// external backend moves them to the filesystem or S3 keyed by
// "<user_id>/<document_id>".
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no payload exists under the given key.
var ErrNotFound = errors.New("storage: blob not found")

// BlobStore stores document payloads under opaque keys.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
