package awss3

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/eniz1806/S3Bridge/storage"
)

// fakeAPI records calls and delegates to per-method hooks. Methods without
// a hook return an empty output.
type fakeAPI struct {
	calls []string

	listObjectsFn  func(*s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error)
	headObjectFn   func(*s3.HeadObjectInput) (*s3.HeadObjectOutput, error)
	putObjectFn    func(*s3.PutObjectInput) (*s3.PutObjectOutput, error)
	getObjectFn    func(*s3.GetObjectInput) (*s3.GetObjectOutput, error)
	deleteObjectFn func(*s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error)
	copyObjectFn   func(*s3.CopyObjectInput) (*s3.CopyObjectOutput, error)
	headBucketFn   func(*s3.HeadBucketInput) (*s3.HeadBucketOutput, error)
	createBucketFn func(*s3.CreateBucketInput) (*s3.CreateBucketOutput, error)
	deleteBucketFn func(*s3.DeleteBucketInput) (*s3.DeleteBucketOutput, error)
	listBucketsFn  func(*s3.ListBucketsInput) (*s3.ListBucketsOutput, error)
}

func (f *fakeAPI) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.calls = append(f.calls, "ListObjectsV2")
	if f.listObjectsFn != nil {
		return f.listObjectsFn(params)
	}
	return &s3.ListObjectsV2Output{}, nil
}

func (f *fakeAPI) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.calls = append(f.calls, "HeadObject")
	if f.headObjectFn != nil {
		return f.headObjectFn(params)
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls = append(f.calls, "PutObject")
	if f.putObjectFn != nil {
		return f.putObjectFn(params)
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.calls = append(f.calls, "GetObject")
	if f.getObjectFn != nil {
		return f.getObjectFn(params)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(nil))}, nil
}

func (f *fakeAPI) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.calls = append(f.calls, "DeleteObject")
	if f.deleteObjectFn != nil {
		return f.deleteObjectFn(params)
	}
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeAPI) CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	f.calls = append(f.calls, "CopyObject")
	if f.copyObjectFn != nil {
		return f.copyObjectFn(params)
	}
	return &s3.CopyObjectOutput{}, nil
}

func (f *fakeAPI) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	f.calls = append(f.calls, "HeadBucket")
	if f.headBucketFn != nil {
		return f.headBucketFn(params)
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeAPI) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.calls = append(f.calls, "CreateBucket")
	if f.createBucketFn != nil {
		return f.createBucketFn(params)
	}
	return &s3.CreateBucketOutput{}, nil
}

func (f *fakeAPI) DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
	f.calls = append(f.calls, "DeleteBucket")
	if f.deleteBucketFn != nil {
		return f.deleteBucketFn(params)
	}
	return &s3.DeleteBucketOutput{}, nil
}

func (f *fakeAPI) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	f.calls = append(f.calls, "ListBuckets")
	if f.listBucketsFn != nil {
		return f.listBucketsFn(params)
	}
	return &s3.ListBucketsOutput{}, nil
}

type notifyCall struct {
	bucket, key, eventType string
	size                   int64
	etag                   string
}

type fakeNotifier struct {
	events []notifyCall
}

func (n *fakeNotifier) Dispatch(bucket, key, eventType string, size int64, etag string) {
	n.events = append(n.events, notifyCall{bucket, key, eventType, size, etag})
}

type auditCall struct {
	op, bucket, key string
	err             error
}

type fakeAuditor struct {
	records []auditCall
}

func (a *fakeAuditor) Record(op, bucket, key string, opErr error) {
	a.records = append(a.records, auditCall{op, bucket, key, opErr})
}

func TestListFilesPagination(t *testing.T) {
	api := &fakeAPI{}
	pages := 0
	api.listObjectsFn = func(in *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
		pages++
		switch pages {
		case 1:
			if in.ContinuationToken != nil {
				t.Error("first page should have no continuation token")
			}
			return &s3.ListObjectsV2Output{
				Contents: []types.Object{
					{Key: aws.String("a.txt")},
					{Key: aws.String("b.txt")},
				},
				IsTruncated:           aws.Bool(true),
				NextContinuationToken: aws.String("page2"),
			}, nil
		default:
			if aws.ToString(in.ContinuationToken) != "page2" {
				t.Errorf("continuation token = %q, want page2", aws.ToString(in.ContinuationToken))
			}
			return &s3.ListObjectsV2Output{
				Contents:    []types.Object{{Key: aws.String("c.txt")}},
				IsTruncated: aws.Bool(false),
			}, nil
		}
	}

	f := New(api)
	keys, err := f.ListFiles(context.Background(), "my-bucket", "")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}
	if pages != 2 {
		t.Errorf("made %d list calls, want 2", pages)
	}
}

func TestListFilesForwardsPrefix(t *testing.T) {
	api := &fakeAPI{}
	api.listObjectsFn = func(in *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
		if aws.ToString(in.Prefix) != "logs/" {
			t.Errorf("prefix = %q, want logs/", aws.ToString(in.Prefix))
		}
		return &s3.ListObjectsV2Output{}, nil
	}
	f := New(api)
	if _, err := f.ListFiles(context.Background(), "my-bucket", "logs/"); err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
}

func TestListFilesRejectsBadBucketBeforeBackend(t *testing.T) {
	api := &fakeAPI{}
	f := New(api)
	_, err := f.ListFiles(context.Background(), "Bad_Bucket", "")
	if !storage.IsKind(err, storage.KindInvalidFormat) {
		t.Fatalf("expected InvalidFormat, got %v", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("backend was contacted: %v", api.calls)
	}
}

func TestListAllFiles(t *testing.T) {
	api := &fakeAPI{}
	api.listObjectsFn = func(in *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
		if aws.ToString(in.Prefix) != "" {
			t.Errorf("prefix = %q, want empty", aws.ToString(in.Prefix))
		}
		return &s3.ListObjectsV2Output{
			Contents: []types.Object{{Key: aws.String("x")}},
		}, nil
	}
	f := New(api)
	keys, err := f.ListAllFiles(context.Background(), "my-bucket")
	if err != nil {
		t.Fatalf("ListAllFiles: %v", err)
	}
	if len(keys) != 1 || keys[0] != "x" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestFileExists(t *testing.T) {
	api := &fakeAPI{}
	f := New(api)
	ok, err := f.FileExists(context.Background(), "my-bucket", "a.txt")
	if err != nil {
		t.Fatalf("FileExists: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}
}

func TestFileExistsNotFoundIsFalseNotError(t *testing.T) {
	api := &fakeAPI{}
	api.headObjectFn = func(*s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return nil, &types.NotFound{}
	}
	f := New(api)
	ok, err := f.FileExists(context.Background(), "my-bucket", "missing.txt")
	if err != nil {
		t.Fatalf("a missing key must not be an error, got %v", err)
	}
	if ok {
		t.Error("expected false")
	}
}

func TestFileExistsPropagatesOtherFailures(t *testing.T) {
	api := &fakeAPI{}
	api.headObjectFn = func(*s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return nil, &types.NoSuchBucket{}
	}
	f := New(api)
	_, err := f.FileExists(context.Background(), "my-bucket", "a.txt")
	if !storage.IsKind(err, storage.KindBucketNotFound) {
		t.Fatalf("expected BucketNotFound, got %v", err)
	}
}

func TestUploadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	content := []byte("payload contents")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	api := &fakeAPI{}
	var got *s3.PutObjectInput
	api.putObjectFn = func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		got = in
		body, err := io.ReadAll(in.Body)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(body, content) {
			t.Errorf("body = %q, want %q", body, content)
		}
		return &s3.PutObjectOutput{ETag: aws.String(`"abc123"`)}, nil
	}

	notifier := &fakeNotifier{}
	f := New(api, WithNotifier(notifier))
	if err := f.UploadFile(context.Background(), path, "my-bucket", "dir/data.bin"); err != nil {
		t.Fatalf("UploadFile: %v", err)
	}

	if aws.ToString(got.Bucket) != "my-bucket" || aws.ToString(got.Key) != "dir/data.bin" {
		t.Errorf("put to %s/%s", aws.ToString(got.Bucket), aws.ToString(got.Key))
	}
	if aws.ToInt64(got.ContentLength) != int64(len(content)) {
		t.Errorf("content length = %d, want %d", aws.ToInt64(got.ContentLength), len(content))
	}
	if got.Metadata[digestMetaKey] == "" {
		t.Error("upload should attach a digest in user metadata")
	}

	if len(notifier.events) != 1 {
		t.Fatalf("got %d events, want 1", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.eventType != EventObjectPut || ev.bucket != "my-bucket" || ev.key != "dir/data.bin" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.size != int64(len(content)) || ev.etag != `"abc123"` {
		t.Errorf("unexpected event detail: %+v", ev)
	}
}

func TestUploadFileMissingLocalFile(t *testing.T) {
	api := &fakeAPI{}
	f := New(api)
	err := f.UploadFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), "my-bucket", "key")
	if !storage.IsKind(err, storage.KindLocalFileNotFound) {
		t.Fatalf("expected LocalFileNotFound, got %v", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("backend was contacted: %v", api.calls)
	}
}

func TestUploadFileRejectsDirectory(t *testing.T) {
	api := &fakeAPI{}
	f := New(api)
	err := f.UploadFile(context.Background(), t.TempDir(), "my-bucket", "key")
	if !storage.IsKind(err, storage.KindLocalFileNotFound) {
		t.Fatalf("expected LocalFileNotFound, got %v", err)
	}
}

func TestDownloadFile(t *testing.T) {
	api := &fakeAPI{}
	api.getObjectFn = func(in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		if aws.ToString(in.Bucket) != "my-bucket" || aws.ToString(in.Key) != "a.txt" {
			t.Errorf("get from %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
		}
		return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte("remote data")))}, nil
	}
	f := New(api)

	dest := filepath.Join(t.TempDir(), "out.txt")
	if err := f.DownloadFile(context.Background(), "my-bucket", "a.txt", dest); err != nil {
		t.Fatalf("DownloadFile: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "remote data" {
		t.Errorf("downloaded %q", data)
	}
}

func TestDownloadFileObjectNotFound(t *testing.T) {
	api := &fakeAPI{}
	api.getObjectFn = func(*s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return nil, &types.NoSuchKey{}
	}
	f := New(api)
	err := f.DownloadFile(context.Background(), "my-bucket", "gone.txt", filepath.Join(t.TempDir(), "out"))
	if !storage.IsKind(err, storage.KindObjectNotFound) {
		t.Fatalf("expected ObjectNotFound, got %v", err)
	}
}

func TestDeleteFile(t *testing.T) {
	api := &fakeAPI{}
	notifier := &fakeNotifier{}
	f := New(api, WithNotifier(notifier))
	if err := f.DeleteFile(context.Background(), "my-bucket", "a.txt"); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if len(notifier.events) != 1 || notifier.events[0].eventType != EventObjectRemoved {
		t.Errorf("unexpected events: %+v", notifier.events)
	}
}

func TestCopyFileEscapesCopySource(t *testing.T) {
	api := &fakeAPI{}
	var got *s3.CopyObjectInput
	api.copyObjectFn = func(in *s3.CopyObjectInput) (*s3.CopyObjectOutput, error) {
		got = in
		return &s3.CopyObjectOutput{
			CopyObjectResult: &types.CopyObjectResult{ETag: aws.String(`"e1"`)},
		}, nil
	}
	notifier := &fakeNotifier{}
	f := New(api, WithNotifier(notifier))

	err := f.CopyFile(context.Background(), "src-bucket", "dir/file name.txt", "dst-bucket", "copy.txt")
	if err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	if aws.ToString(got.Bucket) != "dst-bucket" || aws.ToString(got.Key) != "copy.txt" {
		t.Errorf("copied to %s/%s", aws.ToString(got.Bucket), aws.ToString(got.Key))
	}
	src := aws.ToString(got.CopySource)
	if src != "src-bucket%2Fdir%2Ffile%20name.txt" {
		t.Errorf("CopySource = %q", src)
	}
	if len(notifier.events) != 1 || notifier.events[0].eventType != EventObjectCopy {
		t.Errorf("unexpected events: %+v", notifier.events)
	}
	if notifier.events[0].bucket != "dst-bucket" || notifier.events[0].key != "copy.txt" {
		t.Errorf("event should name the destination: %+v", notifier.events[0])
	}
}

func TestCopyFileValidatesAllParams(t *testing.T) {
	api := &fakeAPI{}
	f := New(api)
	cases := []struct {
		name                               string
		srcBucket, srcKey, dstBucket, dstKey string
		want                               storage.Kind
	}{
		{"bad source bucket", "X", "k", "dst-bucket", "k2", storage.KindInvalidFormat},
		{"bad dest bucket", "src-bucket", "k", "X", "k2", storage.KindInvalidFormat},
		{"empty source key", "src-bucket", "", "dst-bucket", "k2", storage.KindEmptyValue},
		{"empty dest key", "src-bucket", "k", "dst-bucket", "", storage.KindEmptyValue},
	}
	for _, tc := range cases {
		err := f.CopyFile(context.Background(), tc.srcBucket, tc.srcKey, tc.dstBucket, tc.dstKey)
		if !storage.IsKind(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
	if len(api.calls) != 0 {
		t.Errorf("backend was contacted: %v", api.calls)
	}
}

func TestMoveFile(t *testing.T) {
	api := &fakeAPI{}
	var deleted *s3.DeleteObjectInput
	api.deleteObjectFn = func(in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		deleted = in
		return &s3.DeleteObjectOutput{}, nil
	}
	f := New(api)

	if err := f.MoveFile(context.Background(), "src-bucket", "old.txt", "dst-bucket", "new.txt"); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	if len(api.calls) != 2 || api.calls[0] != "CopyObject" || api.calls[1] != "DeleteObject" {
		t.Fatalf("call order = %v, want [CopyObject DeleteObject]", api.calls)
	}
	if aws.ToString(deleted.Bucket) != "src-bucket" || aws.ToString(deleted.Key) != "old.txt" {
		t.Errorf("deleted %s/%s, want the source", aws.ToString(deleted.Bucket), aws.ToString(deleted.Key))
	}
}

func TestMoveFileCopyFailureSkipsDelete(t *testing.T) {
	api := &fakeAPI{}
	api.copyObjectFn = func(*s3.CopyObjectInput) (*s3.CopyObjectOutput, error) {
		return nil, &types.NoSuchKey{}
	}
	f := New(api)

	err := f.MoveFile(context.Background(), "src-bucket", "gone.txt", "dst-bucket", "new.txt")
	if !storage.IsKind(err, storage.KindObjectNotFound) {
		t.Fatalf("expected ObjectNotFound, got %v", err)
	}
	for _, call := range api.calls {
		if call == "DeleteObject" {
			t.Fatal("delete must not run when the copy failed")
		}
	}
}

func TestMoveFileDeleteFailureSurfaces(t *testing.T) {
	api := &fakeAPI{}
	api.deleteObjectFn = func(*s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return nil, &types.NoSuchBucket{}
	}
	f := New(api)

	// The copy has committed; the delete's failure is the caller's to see.
	err := f.MoveFile(context.Background(), "src-bucket", "old.txt", "dst-bucket", "new.txt")
	if !storage.IsKind(err, storage.KindBucketNotFound) {
		t.Fatalf("expected BucketNotFound from the delete, got %v", err)
	}
	if api.calls[0] != "CopyObject" {
		t.Errorf("call order = %v", api.calls)
	}
}

func TestGetFileInfo(t *testing.T) {
	api := &fakeAPI{}
	mod := aws.Time(mustParseTime(t, "2024-06-01T10:30:00Z"))
	api.headObjectFn = func(*s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return &s3.HeadObjectOutput{
			ContentLength: aws.Int64(2048),
			ContentType:   aws.String("text/plain"),
			ETag:          aws.String(`"deadbeef"`),
			LastModified:  mod,
		}, nil
	}
	f := New(api)

	info, err := f.GetFileInfo(context.Background(), "my-bucket", "a.txt")
	if err != nil {
		t.Fatalf("GetFileInfo: %v", err)
	}
	if info[storage.MetaContentLength] != "2048" {
		t.Errorf("Content-Length = %q", info[storage.MetaContentLength])
	}
	if info[storage.MetaContentType] != "text/plain" {
		t.Errorf("Content-Type = %q", info[storage.MetaContentType])
	}
	if info[storage.MetaETag] != `"deadbeef"` {
		t.Errorf("ETag = %q", info[storage.MetaETag])
	}
	if info[storage.MetaLastModified] != "2024-06-01T10:30:00Z" {
		t.Errorf("Last-Modified = %q", info[storage.MetaLastModified])
	}
}

func TestGetFileInfoValidates(t *testing.T) {
	api := &fakeAPI{}
	f := New(api)
	_, err := f.GetFileInfo(context.Background(), "my-bucket", "")
	if !storage.IsKind(err, storage.KindEmptyValue) {
		t.Fatalf("expected EmptyValue, got %v", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("backend was contacted: %v", api.calls)
	}
}

func TestListBuckets(t *testing.T) {
	api := &fakeAPI{}
	api.listBucketsFn = func(*s3.ListBucketsInput) (*s3.ListBucketsOutput, error) {
		return &s3.ListBucketsOutput{
			Buckets: []types.Bucket{
				{Name: aws.String("alpha")},
				{Name: aws.String("beta")},
			},
		}, nil
	}
	f := New(api)

	names, err := f.ListBuckets(context.Background())
	if err != nil {
		t.Fatalf("ListBuckets: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestBucketExistsNotFoundIsFalseNotError(t *testing.T) {
	api := &fakeAPI{}
	api.headBucketFn = func(*s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
		return nil, &types.NotFound{}
	}
	f := New(api)
	ok, err := f.BucketExists(context.Background(), "missing-bucket")
	if err != nil {
		t.Fatalf("a missing bucket must not be an error, got %v", err)
	}
	if ok {
		t.Error("expected false")
	}
}

func TestCreateBucketConflict(t *testing.T) {
	api := &fakeAPI{}
	api.createBucketFn = func(*s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
		return nil, &types.BucketAlreadyOwnedByYou{}
	}
	f := New(api)
	err := f.CreateBucket(context.Background(), "taken-bucket")
	if !storage.IsKind(err, storage.KindBucketAlreadyExists) {
		t.Fatalf("expected BucketAlreadyExists, got %v", err)
	}
}

func TestAuditorSeesEveryOutcome(t *testing.T) {
	api := &fakeAPI{}
	api.headObjectFn = func(*s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return nil, &types.NoSuchBucket{}
	}
	auditor := &fakeAuditor{}
	f := New(api, WithAuditor(auditor))

	if err := f.DeleteFile(context.Background(), "my-bucket", "a.txt"); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := f.FileExists(context.Background(), "my-bucket", "a.txt"); err == nil {
		t.Fatal("expected FileExists to fail")
	}

	if len(auditor.records) != 2 {
		t.Fatalf("got %d audit records, want 2", len(auditor.records))
	}
	if auditor.records[0].op != opDeleteFile || auditor.records[0].err != nil {
		t.Errorf("first record = %+v", auditor.records[0])
	}
	if auditor.records[1].op != opFileExists || auditor.records[1].err == nil {
		t.Errorf("second record = %+v", auditor.records[1])
	}
}

func mustParseTime(t *testing.T, v string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, v)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}
