// Package storage keeps user uploads in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"pluma/config"
	"pluma/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket schemes: file://, mem://, s3:// and gs://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for ObjectStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage opens the configured bucket and closes it on shutdown.
func NewObjectStorage(params StorageParams) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Object storage bucket opened", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing object storage bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL, params.Logger), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Put streams r into the bucket under key.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, r); err != nil {
		_ = writer.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	// Close commits the object.
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	s.logger.Debug("object stored", slog.String("key", key), slog.String("content_type", contentType))

	return s.publicURL(key), nil
}

// Delete removes key; a missing object is ignored.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}

// KeyFromURL recovers the object key from a URL produced by Put.
func KeyFromURL(publicBaseURL, url string) (string, bool) {
	prefix := strings.TrimRight(publicBaseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	return strings.TrimPrefix(url, prefix), true
}
