// Package storage is the file-storage boundary: store a blob, get back a URL
// plus an opaque storage id, delete by that id. The service core never touches
// the filesystem or any cloud SDK directly.
package storage

import "context"

type StoredFile struct {
	URL       string
	StorageID string
}

type Store interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (*StoredFile, error)
	Delete(ctx context.Context, storageID string) error
}
