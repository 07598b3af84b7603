package awss3

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/eniz1806/S3Bridge/storage"
)

// translateError maps a backend failure into the storage error taxonomy.
// The original failure is always retained as the wrapped cause; nothing is
// discarded. Typed SDK errors are checked first, then the generic API
// error code (HeadObject and HeadBucket report 404s without a modeled
// type), and anything that is not an API error at all maps to Unknown.
func translateError(err error, op, resource string) error {
	var noBucket *types.NoSuchBucket
	if errors.As(err, &noBucket) {
		return &storage.Error{
			Kind:     storage.KindBucketNotFound,
			Op:       op,
			Resource: resource,
			Message:  fmt.Sprintf("bucket not found during %s: %s", op, resource),
			Cause:    err,
		}
	}

	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return &storage.Error{
			Kind:     storage.KindObjectNotFound,
			Op:       op,
			Resource: resource,
			Message:  fmt.Sprintf("object not found during %s: %s", op, resource),
			Cause:    err,
		}
	}

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return &storage.Error{
			Kind:     storage.KindObjectNotFound,
			Op:       op,
			Resource: resource,
			Message:  fmt.Sprintf("object not found during %s: %s", op, resource),
			Cause:    err,
		}
	}

	var owned *types.BucketAlreadyOwnedByYou
	var exists *types.BucketAlreadyExists
	if errors.As(err, &owned) || errors.As(err, &exists) {
		return &storage.Error{
			Kind:     storage.KindBucketAlreadyExists,
			Op:       op,
			Resource: resource,
			Message:  "bucket already exists: " + resource,
			Cause:    err,
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return &storage.Error{
				Kind:     storage.KindBucketNotFound,
				Op:       op,
				Resource: resource,
				Message:  fmt.Sprintf("bucket not found during %s: %s", op, resource),
				Cause:    err,
			}
		case "NoSuchKey", "NotFound":
			return &storage.Error{
				Kind:     storage.KindObjectNotFound,
				Op:       op,
				Resource: resource,
				Message:  fmt.Sprintf("object not found during %s: %s", op, resource),
				Cause:    err,
			}
		case "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
			return &storage.Error{
				Kind:     storage.KindBucketAlreadyExists,
				Op:       op,
				Resource: resource,
				Message:  "bucket already exists: " + resource,
				Cause:    err,
			}
		case "BucketNotEmpty":
			return &storage.Error{
				Kind:     storage.KindBucketNotEmpty,
				Op:       op,
				Resource: resource,
				Message:  "bucket is not empty: " + resource,
				Cause:    err,
			}
		default:
			return &storage.Error{
				Kind:     storage.KindUnknown,
				Op:       op,
				Resource: resource,
				Message:  fmt.Sprintf("failed to %s for resource %s: %s", op, resource, apiErr.ErrorMessage()),
				Cause:    err,
			}
		}
	}

	// Not a backend API error: an unexpected runtime fault (network,
	// local I/O, cancellation). Still mapped, never swallowed.
	return &storage.Error{
		Kind:     storage.KindUnknown,
		Op:       op,
		Resource: resource,
		Message:  fmt.Sprintf("failed to %s: unknown error", op),
		Cause:    err,
	}
}

// isKeyNotFound reports whether err is the backend's key-not-found answer.
// FileExists uses it to turn a 404 into false instead of an error; a
// missing bucket is still an error there.
func isKeyNotFound(err error) bool {
	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noKey) || errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

// isBucketNotFound reports whether err is the backend's bucket-not-found
// answer. HeadBucket reports a missing bucket as a bare 404, so the
// generic NotFound type counts here too.
func isBucketNotFound(err error) bool {
	var noBucket *types.NoSuchBucket
	var notFound *types.NotFound
	if errors.As(err, &noBucket) || errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket", "NotFound":
			return true
		}
	}
	return false
}
