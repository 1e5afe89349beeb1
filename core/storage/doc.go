// Package storage provides a typed client for S3-compatible object storage.
//
// It wraps the MinIO Go client behind the API interface and maps SDK
// responses into small typed records (BucketInfo, ObjectInfo, UploadInfo)
// instead of exposing SDK structs. The abstraction supports both AWS S3 and
// self-hosted MinIO instances, and makes storage interactions easy to stub
// in unit tests (see core/storage/mocks).
//
// # Contract
//
// The client is a pass-through layer: every method performs exactly the
// delegated SDK calls, listing results keep the service's order and content,
// and SDK failures are returned unchanged. There is no retry, caching, or
// error translation here; construction performs no network call, so
// credential problems only surface on the first operation.
//
// # Credentials
//
// Explicit access/secret keys in Config take precedence. When they are
// empty, credentials resolve through the SDK chain: the AWS_ACCESS_KEY_ID
// and AWS_SECRET_ACCESS_KEY environment variables, the shared credential
// file, and instance-role metadata.
//
// # Usage
//
//	client, err := storage.New(config)
//	buckets, err := client.ListBuckets(ctx)
package storage
