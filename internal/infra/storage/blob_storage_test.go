package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, "https://cdn.pluma.test/", slog.New(slog.NewTextHandler(io.Discard, nil)))

	url, err := storage.Put(ctx, "avatars/u1-1.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.pluma.test/avatars/u1-1.png", url)

	attrs, err := bucket.Attributes(ctx, "avatars/u1-1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	data, err := bucket.ReadAll(ctx, "avatars/u1-1.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, storage.Delete(ctx, "avatars/u1-1.png"))
	exists, err := bucket.Exists(ctx, "avatars/u1-1.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, storage.Delete(context.Background(), "avatars/missing.png"))
}

func TestKeyFromURL(t *testing.T) {
	key, ok := KeyFromURL("https://cdn.pluma.test", "https://cdn.pluma.test/avatars/a.png")
	assert.True(t, ok)
	assert.Equal(t, "avatars/a.png", key)

	_, ok = KeyFromURL("https://cdn.pluma.test", "https://elsewhere.test/avatars/a.png")
	assert.False(t, ok)
}
