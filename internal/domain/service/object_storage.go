package service

import (
	"context"
	"io"
)

// ObjectStorage stores user uploads and hands back a public URL.
type ObjectStorage interface {
	// Put writes r under key and returns the URL clients use to fetch it.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
