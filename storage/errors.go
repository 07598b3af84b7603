package storage

import (
	"errors"
	"fmt"
)

// Kind classifies every error S3Bridge can return. The set is closed:
// callers switch on it instead of inspecting backend SDK types.
type Kind int

const (
	// KindUnknown covers backend failures with no more specific mapping.
	// The original failure is always retained as the wrapped cause.
	KindUnknown Kind = iota

	// Validation failures, raised before any backend contact.
	KindNullValue
	KindEmptyValue
	KindInvalidFormat

	// Not-found failures, raised after a backend call.
	KindBucketNotFound
	KindObjectNotFound

	// Conflict failures. Fatal: the caller must change the request.
	KindBucketAlreadyExists
	KindBucketNotEmpty

	// KindLocalFileNotFound means the local source file of an upload is
	// missing. Raised before any backend call.
	KindLocalFileNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNullValue:
		return "NullValue"
	case KindEmptyValue:
		return "EmptyValue"
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindBucketNotFound:
		return "BucketNotFound"
	case KindObjectNotFound:
		return "ObjectNotFound"
	case KindBucketAlreadyExists:
		return "BucketAlreadyExists"
	case KindBucketNotEmpty:
		return "BucketNotEmpty"
	case KindLocalFileNotFound:
		return "LocalFileNotFound"
	default:
		return "Unknown"
	}
}

// Error is the single error value used across the facade. It carries the
// failure kind plus enough context (operation, resource) to log and act on
// without inspecting the backend library.
type Error struct {
	Kind     Kind
	Op       string // operation name, e.g. "list files"
	Resource string // offending parameter or resource name
	Message  string
	Cause    error // original backend failure, nil for validation errors
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("%s failed for %q", e.Op, e.Resource)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// IsKind reports whether err is a storage error of the given kind.
func IsKind(err error, k Kind) bool {
	var se *Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == k
}

// IsNotFound reports whether err is a bucket- or object-not-found error.
func IsNotFound(err error) bool {
	return IsKind(err, KindBucketNotFound) || IsKind(err, KindObjectNotFound)
}

// IsValidation reports whether err was raised by input validation, before
// any backend contact.
func IsValidation(err error) bool {
	return IsKind(err, KindNullValue) || IsKind(err, KindEmptyValue) || IsKind(err, KindInvalidFormat)
}
