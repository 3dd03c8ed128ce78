// Package blobstore provides storage abstraction for meshconv's immutable
// table blobs.
//
// BlobStore is the interface for reading and writing whole data blobs
// (encoded columnar tables). Tables are always decoded in full, so the
// interface deals in complete byte slices rather than ranged reads.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: In-memory map, for tests and ephemeral conversions
//   - LocalStore: Local filesystem directory
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible storage
package blobstore
