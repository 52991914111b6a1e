package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutAndOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := newBlobStorage(bucket, "https://cdn.example.com/")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "products/p1/photo.png", "image/png", strings.NewReader("png-bytes")))

	r, contentType, err := store.Open(ctx, "products/p1/photo.png")
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "https://cdn.example.com/products/p1/photo.png", store.PublicURL("products/p1/photo.png"))
	assert.NoError(t, store.Ping(ctx))
}

func TestBlobStorage_OpenMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := newBlobStorage(bucket, "")

	_, _, err := store.Open(context.Background(), "missing.png")

	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.Equal(t, "/api/v1/images/a/b.jpg", store.PublicURL("a/b.jpg"))
}
