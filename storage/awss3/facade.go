package awss3

import (
	"context"
	"io"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/eniz1806/S3Bridge/checksum"
	"github.com/eniz1806/S3Bridge/storage"
)

// Operation names carried in errors and audit entries.
const (
	opListFiles    = "list files"
	opFileExists   = "check file existence"
	opUpload       = "upload file"
	opDownload     = "download file"
	opDeleteFile   = "delete file"
	opCopyFile     = "copy file"
	opMoveFile     = "move file"
	opGetFileInfo  = "get file info"
	opListBuckets  = "list buckets"
	opBucketExists = "check bucket existence"
	opCreateBucket = "create bucket"
	opDeleteBucket = "delete bucket"
)

// User metadata key under which uploads record the local file's xxh64
// digest.
const digestMetaKey = "xxh64"

// Object event names, matching the S3 notification vocabulary.
const (
	EventObjectPut     = "s3:ObjectCreated:Put"
	EventObjectCopy    = "s3:ObjectCreated:Copy"
	EventObjectRemoved = "s3:ObjectRemoved:Delete"
)

// Notifier receives an event after each successful mutating operation.
// Delivery is best-effort and never affects the operation's result.
type Notifier interface {
	Dispatch(bucket, key, eventType string, size int64, etag string)
}

// Auditor records the outcome of every operation, success or failure.
type Auditor interface {
	Record(op, bucket, key string, opErr error)
}

// Facade implements storage.Operations over an S3-compatible backend.
// Every operation validates its inputs before touching the backend and
// returns errors from the storage taxonomy. The facade holds one shared
// client handle and is otherwise stateless: no locking, no retries, no
// background work; cancellation and timeouts ride on the caller's context.
type Facade struct {
	client   API
	notifier Notifier
	auditor  Auditor
}

// Option configures a Facade.
type Option func(*Facade)

// WithNotifier attaches an event notifier for mutating operations.
func WithNotifier(n Notifier) Option {
	return func(f *Facade) { f.notifier = n }
}

// WithAuditor attaches an operation journal.
func WithAuditor(a Auditor) Option {
	return func(f *Facade) { f.auditor = a }
}

// New returns a Facade over the given backend client.
func New(client API, opts ...Option) *Facade {
	f := &Facade{client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ storage.Operations = (*Facade)(nil)

// finish records the operation outcome and passes the error through.
func (f *Facade) finish(op, bucket, key string, err error) error {
	if f.auditor != nil {
		f.auditor.Record(op, bucket, key, err)
	}
	return err
}

func (f *Facade) notify(bucket, key, eventType string, size int64, etag string) {
	if f.notifier != nil {
		f.notifier.Dispatch(bucket, key, eventType, size, etag)
	}
}

// ListFiles returns the keys in bucket matching prefix, in the order the
// backend returns them. An empty prefix lists the whole bucket.
func (f *Facade) ListFiles(ctx context.Context, bucket, prefix string) ([]string, error) {
	if err := storage.ValidateBucketName(&bucket); err != nil {
		return nil, f.finish(opListFiles, bucket, "", err)
	}
	if err := storage.ValidateParam(&prefix, storage.ParamPrefix); err != nil {
		return nil, f.finish(opListFiles, bucket, "", err)
	}

	var keys []string
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}
	for {
		out, err := f.client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, f.finish(opListFiles, bucket, "", translateError(err, opListFiles, bucket))
		}
		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
		if !aws.ToBool(out.IsTruncated) {
			break
		}
		input.ContinuationToken = out.NextContinuationToken
	}
	return keys, f.finish(opListFiles, bucket, "", nil)
}

// ListAllFiles is ListFiles with an empty prefix.
func (f *Facade) ListAllFiles(ctx context.Context, bucket string) ([]string, error) {
	return f.ListFiles(ctx, bucket, "")
}

// FileExists reports whether the object exists. A key-not-found answer is
// not an error; a missing bucket or any other backend failure propagates.
func (f *Facade) FileExists(ctx context.Context, bucket, key string) (bool, error) {
	if err := storage.ValidateBucketName(&bucket); err != nil {
		return false, f.finish(opFileExists, bucket, key, err)
	}
	if err := storage.ValidateParam(&key, storage.ParamKey); err != nil {
		return false, f.finish(opFileExists, bucket, key, err)
	}

	_, err := f.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isKeyNotFound(err) {
			return false, f.finish(opFileExists, bucket, key, nil)
		}
		return false, f.finish(opFileExists, bucket, key, translateError(err, opFileExists, bucket))
	}
	return true, f.finish(opFileExists, bucket, key, nil)
}

// UploadFile stores the local file at localPath under destinationKey. The
// local file's existence is checked before any backend contact; its xxh64
// digest is attached as user metadata.
func (f *Facade) UploadFile(ctx context.Context, localPath, bucket, destinationKey string) error {
	if err := storage.ValidateBucketName(&bucket); err != nil {
		return f.finish(opUpload, bucket, destinationKey, err)
	}
	if err := storage.ValidateParam(&localPath, storage.ParamLocalPath); err != nil {
		return f.finish(opUpload, bucket, destinationKey, err)
	}
	if err := storage.ValidateParam(&destinationKey, storage.ParamDestinationKey); err != nil {
		return f.finish(opUpload, bucket, destinationKey, err)
	}

	info, err := os.Stat(localPath)
	if err != nil || info.IsDir() {
		return f.finish(opUpload, bucket, destinationKey, &storage.Error{
			Kind:     storage.KindLocalFileNotFound,
			Op:       opUpload,
			Resource: localPath,
			Message:  "file does not exist: " + localPath,
			Cause:    err,
		})
	}

	digest, err := checksum.File(localPath)
	if err != nil {
		return f.finish(opUpload, bucket, destinationKey, &storage.Error{
			Kind:     storage.KindUnknown,
			Op:       opUpload,
			Resource: localPath,
			Message:  "failed to read local file: " + localPath,
			Cause:    err,
		})
	}

	file, err := os.Open(localPath)
	if err != nil {
		return f.finish(opUpload, bucket, destinationKey, &storage.Error{
			Kind:     storage.KindLocalFileNotFound,
			Op:       opUpload,
			Resource: localPath,
			Message:  "file does not exist: " + localPath,
			Cause:    err,
		})
	}
	defer file.Close()

	out, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(destinationKey),
		Body:          file,
		ContentLength: aws.Int64(info.Size()),
		Metadata:      map[string]string{digestMetaKey: digest},
	})
	if err != nil {
		return f.finish(opUpload, bucket, destinationKey, translateError(err, opUpload, bucket))
	}

	f.notify(bucket, destinationKey, EventObjectPut, info.Size(), aws.ToString(out.ETag))
	return f.finish(opUpload, bucket, destinationKey, nil)
}

// DownloadFile fetches sourceKey into a newly created local file at
// localDestinationPath.
func (f *Facade) DownloadFile(ctx context.Context, bucket, sourceKey, localDestinationPath string) error {
	if err := storage.ValidateBucketName(&bucket); err != nil {
		return f.finish(opDownload, bucket, sourceKey, err)
	}
	if err := storage.ValidateParam(&sourceKey, storage.ParamSourceKey); err != nil {
		return f.finish(opDownload, bucket, sourceKey, err)
	}
	if err := storage.ValidateParam(&localDestinationPath, storage.ParamLocalDestinationPath); err != nil {
		return f.finish(opDownload, bucket, sourceKey, err)
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(sourceKey),
	})
	if err != nil {
		return f.finish(opDownload, bucket, sourceKey, translateError(err, opDownload, sourceKey))
	}
	defer out.Body.Close()

	dst, err := os.Create(localDestinationPath)
	if err != nil {
		return f.finish(opDownload, bucket, sourceKey, &storage.Error{
			Kind:     storage.KindUnknown,
			Op:       opDownload,
			Resource: localDestinationPath,
			Message:  "failed to create local file: " + localDestinationPath,
			Cause:    err,
		})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, out.Body); err != nil {
		return f.finish(opDownload, bucket, sourceKey, &storage.Error{
			Kind:     storage.KindUnknown,
			Op:       opDownload,
			Resource: localDestinationPath,
			Message:  "failed to write local file: " + localDestinationPath,
			Cause:    err,
		})
	}
	return f.finish(opDownload, bucket, sourceKey, nil)
}

// DeleteFile removes the object. The backend's delete-object is
// idempotent, so deleting an already-absent key succeeds.
func (f *Facade) DeleteFile(ctx context.Context, bucket, key string) error {
	if err := storage.ValidateBucketName(&bucket); err != nil {
		return f.finish(opDeleteFile, bucket, key, err)
	}
	if err := storage.ValidateParam(&key, storage.ParamKey); err != nil {
		return f.finish(opDeleteFile, bucket, key, err)
	}

	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return f.finish(opDeleteFile, bucket, key, translateError(err, opDeleteFile, bucket))
	}

	f.notify(bucket, key, EventObjectRemoved, 0, "")
	return f.finish(opDeleteFile, bucket, key, nil)
}

// CopyFile copies an object server-side.
func (f *Facade) CopyFile(ctx context.Context, sourceBucket, sourceKey, destBucket, destKey string) error {
	if err := storage.ValidateBucketName(&sourceBucket); err != nil {
		return f.finish(opCopyFile, sourceBucket, sourceKey, err)
	}
	if err := storage.ValidateBucketName(&destBucket); err != nil {
		return f.finish(opCopyFile, destBucket, destKey, err)
	}
	if err := storage.ValidateParam(&sourceKey, storage.ParamSourceKey); err != nil {
		return f.finish(opCopyFile, sourceBucket, sourceKey, err)
	}
	if err := storage.ValidateParam(&destKey, storage.ParamDestinationKey); err != nil {
		return f.finish(opCopyFile, destBucket, destKey, err)
	}

	out, err := f.client.CopyObject(ctx, &s3.CopyObjectInput{
		CopySource: aws.String(url.PathEscape(sourceBucket + "/" + sourceKey)),
		Bucket:     aws.String(destBucket),
		Key:        aws.String(destKey),
	})
	if err != nil {
		return f.finish(opCopyFile, sourceBucket, sourceKey, translateError(err, opCopyFile, sourceKey))
	}

	var etag string
	if out.CopyObjectResult != nil {
		etag = aws.ToString(out.CopyObjectResult.ETag)
	}
	f.notify(destBucket, destKey, EventObjectCopy, 0, etag)
	return f.finish(opCopyFile, sourceBucket, sourceKey, nil)
}

// MoveFile relocates an object: copy, then delete the source, strictly in
// that order. If the copy fails nothing has changed and the delete is
// never attempted. If the delete fails the copy has already committed, so
// both source and destination exist and the delete's error is returned.
// The guarantee is at-least-one-object-persists, not exactly-once.
func (f *Facade) MoveFile(ctx context.Context, sourceBucket, sourceKey, destBucket, destKey string) error {
	if err := f.CopyFile(ctx, sourceBucket, sourceKey, destBucket, destKey); err != nil {
		return err
	}
	return f.DeleteFile(ctx, sourceBucket, sourceKey)
}

// GetFileInfo returns the object's metadata under the fixed keys of
// storage.ObjectMetadata.
func (f *Facade) GetFileInfo(ctx context.Context, bucket, key string) (storage.ObjectMetadata, error) {
	if err := storage.ValidateBucketName(&bucket); err != nil {
		return nil, f.finish(opGetFileInfo, bucket, key, err)
	}
	if err := storage.ValidateParam(&key, storage.ParamKey); err != nil {
		return nil, f.finish(opGetFileInfo, bucket, key, err)
	}

	out, err := f.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, f.finish(opGetFileInfo, bucket, key, translateError(err, opGetFileInfo, key))
	}

	info := storage.ObjectMetadata{
		storage.MetaContentLength: strconv.FormatInt(aws.ToInt64(out.ContentLength), 10),
		storage.MetaContentType:   aws.ToString(out.ContentType),
		storage.MetaETag:          aws.ToString(out.ETag),
	}
	if out.LastModified != nil {
		info[storage.MetaLastModified] = out.LastModified.UTC().Format(time.RFC3339)
	}
	return info, f.finish(opGetFileInfo, bucket, key, nil)
}

// ListBuckets returns all bucket names for the configured account.
func (f *Facade) ListBuckets(ctx context.Context) ([]string, error) {
	out, err := f.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, f.finish(opListBuckets, "", "", translateError(err, opListBuckets, ""))
	}
	names := make([]string, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		names = append(names, aws.ToString(b.Name))
	}
	return names, f.finish(opListBuckets, "", "", nil)
}

// BucketExists reports whether the bucket exists. Bucket-not-found is not
// an error; any other backend failure propagates.
func (f *Facade) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := f.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		if isBucketNotFound(err) {
			return false, f.finish(opBucketExists, bucket, "", nil)
		}
		return false, f.finish(opBucketExists, bucket, "", translateError(err, opBucketExists, bucket))
	}
	return true, f.finish(opBucketExists, bucket, "", nil)
}

// CreateBucket creates a bucket. An existing or already-owned bucket is a
// fatal conflict, not retried.
func (f *Facade) CreateBucket(ctx context.Context, bucket string) error {
	_, err := f.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		return f.finish(opCreateBucket, bucket, "", translateError(err, opCreateBucket, bucket))
	}
	return f.finish(opCreateBucket, bucket, "", nil)
}

// DeleteBucket removes a bucket. A missing bucket fails with
// KindBucketNotFound, a non-empty one with KindBucketNotEmpty.
func (f *Facade) DeleteBucket(ctx context.Context, bucket string) error {
	_, err := f.client.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		return f.finish(opDeleteBucket, bucket, "", translateError(err, opDeleteBucket, bucket))
	}
	return f.finish(opDeleteBucket, bucket, "", nil)
}
