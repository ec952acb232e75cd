// Package storage saves uploaded files.
package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded files live.
type Storage interface {
	// Save stores data under key and returns its public URL.
	// key is a unique relative path such as "images/<uuid>.jpg".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key. Missing files are not an error.
	Delete(ctx context.Context, key string) error
}
