package service

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded files and exposes them by public URL
type ObjectStorage interface {
	// Put writes an object under key
	Put(ctx context.Context, key, contentType string, body io.Reader) error

	// Open streams an object back. The caller closes the reader.
	Open(ctx context.Context, key string) (body io.ReadCloser, contentType string, err error)

	// PublicURL returns the URL clients use to fetch key
	PublicURL(key string) string

	// Ping checks that the bucket is reachable
	Ping(ctx context.Context) error
}
