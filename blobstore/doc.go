// Package blobstore provides read access to dataset blobs wherever they live.
//
// BlobStore is the interface for listing and opening immutable blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap support
//   - MemoryStore: In-memory blobs for tests and fixtures
//   - s3.Store: Amazon S3 with range reads and parallel whole-object downloads
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Backends with a cheaper whole-object path can also implement Fetcher,
// which Fetch prefers over Open plus ReadAll.
package blobstore
