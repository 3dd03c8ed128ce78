// Package tablestore persists the columnar tables that back canonical mesh
// objects.
//
// Tables come in a small closed set of shapes (vertex coordinates, triangle
// indices, chunk descriptors, index lists, attribute values). Each Save
// produces a fresh opaque Ref; stored tables are immutable and are never
// rewritten in place. Refs are back-references, not ownership: holding a Ref
// only grants Load.
//
// The default implementation encodes tables as Parquet and stores the bytes
// through a blobstore.BlobStore, so the same store works in memory, on disk,
// or on S3-compatible object storage.
package tablestore
