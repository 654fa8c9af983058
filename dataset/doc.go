// Package dataset loads training patterns for a kohonen map.
//
// A pattern is a []float32 whose components lie in [0, 1]; every pattern in a
// dataset has the same length. Patterns come from two kinds of blobs:
//
//   - Vector blobs: a codec-encoded [][]float32, optionally compressed. The
//     extension picks the compression (".zst" for zstd, ".lz4" for lz4).
//   - Image blobs: PNG or JPEG files, one pattern per image, flattened by
//     FromImage.
//
// Loader fetches blobs from any blobstore.BlobStore concurrently and returns
// the patterns in the order the names were given.
package dataset
