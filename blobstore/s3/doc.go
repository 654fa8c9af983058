// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil { ... }
//
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "datasets/",
//	    s3.WithPartSize(16*1024*1024),
//	)
//	data, err := blobstore.Fetch(ctx, store, "digits.json.zst")
//
// # Features
//
//   - Range reads through Blob.ReadAt
//   - Parallel whole-object downloads (feature/s3/manager) through Fetch
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
