// Package storage keeps product images in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"swapmarket/config"
	"swapmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by storage.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// ErrObjectNotFound is returned by Open for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// DefaultImageRoute serves images straight from the bucket when no CDN base URL is configured.
const DefaultImageRoute = "/api/v1/images/"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.ObjectStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", cfg.Storage.BucketURL)
	}

	storage := newBlobStorage(bucket, cfg.Storage.PublicBaseURL)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return storage, nil
}

func newBlobStorage(bucket *blob.Bucket, publicBaseURL string) *blobStorage {
	base := strings.TrimRight(publicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(DefaultImageRoute, "/")
	}

	return &blobStorage{bucket: bucket, publicBaseURL: base}
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "open object writer")
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "write object")
	}

	return errors.Wrap(w.Close(), "commit object")
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrObjectNotFound
		}

		return nil, "", errors.Wrap(err, "open object reader")
	}

	return r, r.ContentType(), nil
}

func (s *blobStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

func (s *blobStorage) Ping(ctx context.Context) error {
	ok, err := s.bucket.IsAccessible(ctx)
	if err != nil {
		return errors.Wrap(err, "bucket check")
	}
	if !ok {
		return errors.New("bucket is not accessible")
	}

	return nil
}
