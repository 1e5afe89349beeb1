// Package browse implements the read-only HTTP façade over the typed
// storage client.
//
// # Endpoints
//
//   - GET /buckets — list buckets owned by the account.
//   - GET /buckets/:bucket/objects?prefix= — list objects under a prefix.
//   - GET /buckets/:bucket/objects/<key> — stream an object body.
//   - GET /buckets/:bucket/presign/<key>?ttl= — presigned download URL.
//
// Responses carry the typed storage models serialized as JSON. SDK failures
// are surfaced with their original message; only the HTTP status is mapped
// (404 for missing buckets/objects, 502 otherwise).
package browse
