package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DefaultPresignExpiry is used when a presign call is given a non-positive expiry.
const DefaultPresignExpiry = time.Hour

// maxPresignExpiry is the longest lifetime S3 accepts for a presigned URL.
const maxPresignExpiry = 7 * 24 * time.Hour

// API is the subset of the underlying SDK client the typed client delegates
// to. Abstracting it makes storage interactions easy to stub in unit tests
// (see core/storage/mocks).
type API interface {
	// ListBuckets lists all buckets owned by the authenticated account.
	ListBuckets(ctx context.Context) ([]minio.BucketInfo, error)
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates a new bucket.
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	// RemoveBucket deletes an empty bucket.
	RemoveBucket(ctx context.Context, bucketName string) error
	// ListObjects lists objects in a bucket.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	// PutObject uploads an object from a reader.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// FPutObject uploads an object from a local file.
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// FGetObject downloads an object to a local file.
	FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error
	// GetObject downloads an object as a stream.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// StatObject fetches object metadata without the body.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	// PresignedGetObject generates a time-limited download URL.
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expiry time.Duration, reqParams url.Values) (*url.URL, error)
}

// Client is a typed façade over the underlying SDK client. It holds no
// mutable state between calls, performs no retries and no caching, and
// returns SDK errors unchanged; instances are safe for concurrent use.
type Client struct {
	api    API
	region string
}

// New creates a typed client from the configuration. Construction performs
// no network call; credential problems surface on the first operation.
func New(cfg Config) (*Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     resolveCredentials(cfg),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Client{api: &minioAPI{Client: minioClient}, region: cfg.Region}, nil
}

// NewFromAPI creates a typed client around an existing SDK surface.
// Used by tests to inject a stub in place of a real connection.
func NewFromAPI(api API) *Client {
	return &Client{api: api}
}

// resolveCredentials prefers explicit static keys from the configuration and
// otherwise falls back to the SDK chain (env vars, shared credential file,
// instance-role metadata).
func resolveCredentials(cfg Config) *credentials.Credentials {
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		return credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")
	}
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.FileAWSCredentials{},
		&credentials.IAM{},
	})
}

// minioAPI adapts *minio.Client to the API interface. GetObject is narrowed
// to io.ReadCloser so stubs do not have to produce a *minio.Object.
type minioAPI struct {
	*minio.Client
}

func (c *minioAPI) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

// ListBuckets returns every bucket owned by the authenticated account, in
// exactly the order and content the storage service reported. The result may
// be empty; failures from the SDK pass through unchanged.
func (c *Client) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	raw, err := c.api.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}
	buckets := make([]BucketInfo, 0, len(raw))
	for _, b := range raw {
		buckets = append(buckets, BucketInfo{Name: b.Name, CreationDate: b.CreationDate})
	}
	return buckets, nil
}

// BucketExists reports whether the named bucket exists and is reachable with
// the configured credentials.
func (c *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return c.api.BucketExists(ctx, bucket)
}

// MakeBucket creates a bucket. An empty region falls back to the client's
// configured region.
func (c *Client) MakeBucket(ctx context.Context, bucket, region string) error {
	if region == "" {
		region = c.region
	}
	return c.api.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region})
}

// RemoveBucket deletes a bucket. The service rejects non-empty buckets.
func (c *Client) RemoveBucket(ctx context.Context, bucket string) error {
	return c.api.RemoveBucket(ctx, bucket)
}

// ListObjects returns the objects under prefix, recursively, in the order
// the service streams them. An empty bucket yields an empty slice; a stream
// error aborts the listing and is returned unchanged.
func (c *Client) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	objects := make([]ObjectInfo, 0)
	for obj := range c.api.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		objects = append(objects, objectFromMinio(obj))
	}
	return objects, nil
}

// Upload stores the reader's content under bucket/key. Pass size -1 when the
// total length is unknown.
func (c *Client) Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) (UploadInfo, error) {
	info, err := c.api.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return UploadInfo{}, err
	}
	return uploadFromMinio(info), nil
}

// UploadFile stores a local file under bucket/key. The content type is
// detected by the SDK from the file extension.
func (c *Client) UploadFile(ctx context.Context, bucket, key, path string) (UploadInfo, error) {
	info, err := c.api.FPutObject(ctx, bucket, key, path, minio.PutObjectOptions{})
	if err != nil {
		return UploadInfo{}, err
	}
	return uploadFromMinio(info), nil
}

// DownloadFile fetches bucket/key into a local file at path.
func (c *Client) DownloadFile(ctx context.Context, bucket, key, path string) error {
	return c.api.FGetObject(ctx, bucket, key, path, minio.GetObjectOptions{})
}

// Download opens a stream for bucket/key. The caller must close it.
func (c *Client) Download(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	return c.api.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
}

// StatObject fetches the metadata of bucket/key without downloading the body.
func (c *Client) StatObject(ctx context.Context, bucket, key string) (ObjectInfo, error) {
	info, err := c.api.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, err
	}
	return objectFromMinio(info), nil
}

// RemoveObject deletes bucket/key.
func (c *Client) RemoveObject(ctx context.Context, bucket, key string) error {
	return c.api.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

// PresignedGetURL returns a time-limited download URL for bucket/key.
// A non-positive expiry defaults to one hour; values beyond the service
// maximum of seven days are clamped.
func (c *Client) PresignedGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}
	if expiry > maxPresignExpiry {
		expiry = maxPresignExpiry
	}
	u, err := c.api.PresignedGetObject(ctx, bucket, key, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func objectFromMinio(obj minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Key:          obj.Key,
		Size:         obj.Size,
		ETag:         obj.ETag,
		ContentType:  obj.ContentType,
		LastModified: obj.LastModified,
	}
}

func uploadFromMinio(info minio.UploadInfo) UploadInfo {
	return UploadInfo{
		Bucket: info.Bucket,
		Key:    info.Key,
		ETag:   info.ETag,
		Size:   info.Size,
	}
}
