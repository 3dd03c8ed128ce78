// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("tables/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	tables := tablestore.NewParquetStore(store)
//
// # Features
//
//   - Managed multipart uploads for large tables
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
