package storage

import "regexp"

// ParamKind tags the role a string parameter plays in a call. The same
// value is validated differently depending on its role: an empty prefix
// means "list everything", while an empty key or path is never meaningful.
type ParamKind int

const (
	ParamPrefix ParamKind = iota
	ParamKey
	ParamLocalPath
	ParamDestinationKey
	ParamSourceKey
	ParamLocalDestinationPath
)

func (k ParamKind) String() string {
	switch k {
	case ParamPrefix:
		return "prefix"
	case ParamKey:
		return "key"
	case ParamLocalPath:
		return "local path"
	case ParamDestinationKey:
		return "destination key"
	case ParamSourceKey:
		return "source key"
	case ParamLocalDestinationPath:
		return "local destination path"
	default:
		return "parameter"
	}
}

// Bucket names: 3-63 chars of lowercase letters, digits, dots and hyphens,
// starting and ending alphanumeric, no leading/trailing/doubled hyphen
// within a label, and never shaped like a dotted IPv4 address.
var (
	bucketNamePattern = regexp.MustCompile(`^[a-z0-9](-?[a-z0-9])*(\.[a-z0-9](-?[a-z0-9])*)*$`)
	ipv4Pattern       = regexp.MustCompile(`^(\d+\.){3}\d+$`)
)

// ValidateBucketName checks a bucket name against the provider naming
// rules. Parameters are passed as *string so that an absent value (nil)
// can be told apart from an empty one; the check order is fixed: nil,
// then empty, then format.
func ValidateBucketName(name *string) error {
	if name == nil {
		return &Error{Kind: KindNullValue, Resource: "bucket name", Message: "bucket name cannot be nil"}
	}
	if *name == "" {
		return &Error{Kind: KindEmptyValue, Resource: "bucket name", Message: "bucket name cannot be empty"}
	}
	if len(*name) < 3 || len(*name) > 63 || ipv4Pattern.MatchString(*name) || !bucketNamePattern.MatchString(*name) {
		return &Error{
			Kind:     KindInvalidFormat,
			Resource: *name,
			Message:  "invalid bucket name " + *name + ": must follow S3 naming rules",
		}
	}
	return nil
}

// ValidateParam checks a role-tagged string parameter. Every kind rejects
// nil; every kind except ParamPrefix rejects the empty string.
func ValidateParam(value *string, kind ParamKind) error {
	if value == nil {
		return &Error{Kind: KindNullValue, Resource: kind.String(), Message: kind.String() + " cannot be nil"}
	}
	if *value != "" {
		return nil
	}
	switch kind {
	case ParamPrefix:
		// Empty prefix is a valid "no filter" request.
		return nil
	case ParamKey, ParamLocalPath, ParamDestinationKey, ParamSourceKey, ParamLocalDestinationPath:
		return &Error{Kind: KindEmptyValue, Resource: kind.String(), Message: kind.String() + " cannot be empty"}
	default:
		return &Error{Kind: KindEmptyValue, Resource: kind.String(), Message: kind.String() + " cannot be empty"}
	}
}
