// Package storage defines the vendor-neutral contract S3Bridge exposes to
// application code: the operation set, the object metadata shape, the
// parameter validators, and the closed error taxonomy. Implementations
// live in subpackages (storage/awss3 for S3-compatible backends).
package storage

import "context"

// Fixed keys of the ObjectMetadata map.
const (
	MetaContentLength = "Content-Length"
	MetaLastModified  = "Last-Modified"
	MetaContentType   = "Content-Type"
	MetaETag          = "ETag"
)

// ObjectMetadata maps the fixed metadata keys above to their string
// values. Produced only by a successful metadata fetch.
type ObjectMetadata map[string]string

// Operations is the contract for object storage backends. All methods
// validate their inputs before any backend contact and return *Error
// values from the taxonomy in this package. Implementations are stateless
// apart from the shared backend client handle and safe for concurrent use;
// they perform no retries and no locking between overlapping calls.
type Operations interface {
	// ListFiles returns the keys in bucket matching prefix, in backend
	// order. An empty prefix lists everything.
	ListFiles(ctx context.Context, bucket, prefix string) ([]string, error)

	// ListAllFiles is ListFiles with an empty prefix.
	ListAllFiles(ctx context.Context, bucket string) ([]string, error)

	// FileExists reports whether the object exists. A key-not-found
	// answer from the backend is not an error; any other backend failure
	// propagates.
	FileExists(ctx context.Context, bucket, key string) (bool, error)

	// UploadFile stores the local file at localPath under destinationKey.
	// Fails with KindLocalFileNotFound before any backend call when the
	// local file is missing.
	UploadFile(ctx context.Context, localPath, bucket, destinationKey string) error

	// DownloadFile fetches sourceKey into the local file at
	// localDestinationPath, creating it.
	DownloadFile(ctx context.Context, bucket, sourceKey, localDestinationPath string) error

	// DeleteFile removes the object. Deleting an already-absent key
	// succeeds; the backend's delete is idempotent.
	DeleteFile(ctx context.Context, bucket, key string) error

	// CopyFile copies an object server-side.
	CopyFile(ctx context.Context, sourceBucket, sourceKey, destBucket, destKey string) error

	// MoveFile copies then deletes the source, strictly in that order.
	// If the copy fails nothing has changed. If the delete fails the copy
	// has already committed, so source and destination both exist and the
	// delete's error is returned: the guarantee is at-least-one-object-
	// persists, not exactly-once.
	MoveFile(ctx context.Context, sourceBucket, sourceKey, destBucket, destKey string) error

	// GetFileInfo returns the object's metadata.
	GetFileInfo(ctx context.Context, bucket, key string) (ObjectMetadata, error)

	// ListBuckets returns all bucket names for the configured account.
	ListBuckets(ctx context.Context) ([]string, error)

	// BucketExists reports whether the bucket exists. Bucket-not-found is
	// not an error; any other backend failure propagates.
	BucketExists(ctx context.Context, bucket string) (bool, error)

	// CreateBucket creates a bucket. An existing or already-owned bucket
	// fails with KindBucketAlreadyExists.
	CreateBucket(ctx context.Context, bucket string) error

	// DeleteBucket removes an empty bucket. A missing bucket fails with
	// KindBucketNotFound, a non-empty one with KindBucketNotEmpty.
	DeleteBucket(ctx context.Context, bucket string) error
}
