package browse

import (
	"context"
	"io"
	"time"

	"s3util/core/storage"

	"go.uber.org/zap"
)

// Service exposes read-only views over the typed storage client.
type Service struct {
	client *storage.Client
	logger *zap.Logger
}

// NewService creates a new browse service.
func NewService(client *storage.Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ListBuckets returns all buckets visible to the configured credentials.
func (s *Service) ListBuckets(ctx context.Context) ([]storage.BucketInfo, error) {
	return s.client.ListBuckets(ctx)
}

// ListObjects returns the objects under prefix in the given bucket.
func (s *Service) ListObjects(ctx context.Context, bucket, prefix string) ([]storage.ObjectInfo, error) {
	return s.client.ListObjects(ctx, bucket, prefix)
}

// OpenObject stats the object for its metadata and opens a stream for its
// body. The caller must close the returned reader.
func (s *Service) OpenObject(ctx context.Context, bucket, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, bucket, key)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, err := s.client.Download(ctx, bucket, key)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	return rc, info, nil
}

// PresignURL returns a time-limited download URL for bucket/key.
func (s *Service) PresignURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	return s.client.PresignedGetURL(ctx, bucket, key, ttl)
}
