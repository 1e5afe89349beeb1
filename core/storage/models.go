package storage

import "time"

// BucketInfo describes one bucket owned by the authenticated account.
// Values are produced fresh on every listing call and never mutated.
type BucketInfo struct {
	// Name is the bucket name, unique per account.
	Name string `json:"name"`
	// CreationDate is when the bucket was created (UTC).
	CreationDate time.Time `json:"creation_date"`
}

// ObjectInfo describes one object inside a bucket.
type ObjectInfo struct {
	// Key is the full object key, including any prefix.
	Key string `json:"key"`
	// Size is the object size in bytes.
	Size int64 `json:"size"`
	// ETag is the entity tag reported by the storage service.
	ETag string `json:"etag,omitempty"`
	// ContentType is the MIME type, when the service reports one.
	ContentType string `json:"content_type,omitempty"`
	// LastModified is the last modification time of the object.
	LastModified time.Time `json:"last_modified"`
}

// UploadInfo summarizes a completed upload.
type UploadInfo struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	ETag   string `json:"etag,omitempty"`
	Size   int64  `json:"size"`
}
