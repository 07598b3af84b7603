package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eniz1806/S3Bridge/internal/config"
	"github.com/eniz1806/S3Bridge/storage"
)

// runDemo walks every facade operation against a live backend: bucket
// lifecycle, upload, existence checks, listing, metadata, copy, move,
// download, and cleanup. It leaves the backend as it found it.
func runDemo(cfg *config.Config, args []string) {
	requireCreds(cfg)

	bucket := fmt.Sprintf("s3bridge-demo-%d", time.Now().Unix())
	if len(args) > 0 {
		bucket = args[0]
	}

	ctx := context.Background()
	facade, cleanup := newFacade(ctx, cfg)
	defer cleanup()

	step := func(n int, format string, a ...any) {
		fmt.Printf("[%2d] %s\n", n, fmt.Sprintf(format, a...))
	}

	workDir, err := os.MkdirTemp("", "s3bridge-demo")
	if err != nil {
		fatal(err.Error())
	}
	defer os.RemoveAll(workDir)

	localPath := filepath.Join(workDir, "hello.txt")
	if err := os.WriteFile(localPath, []byte("hello from s3bridge\n"), 0644); err != nil {
		fatal(err.Error())
	}

	step(1, "creating bucket %q", bucket)
	if err := facade.CreateBucket(ctx, bucket); err != nil {
		fatal(err.Error())
	}

	step(2, "checking bucket existence")
	ok, err := facade.BucketExists(ctx, bucket)
	if err != nil {
		fatal(err.Error())
	}
	fmt.Printf("     exists: %v\n", ok)

	step(3, "uploading %s as docs/hello.txt", localPath)
	if err := facade.UploadFile(ctx, localPath, bucket, "docs/hello.txt"); err != nil {
		fatal(err.Error())
	}

	step(4, "checking object existence")
	ok, err = facade.FileExists(ctx, bucket, "docs/hello.txt")
	if err != nil {
		fatal(err.Error())
	}
	fmt.Printf("     exists: %v\n", ok)

	step(5, "listing keys under prefix docs/")
	keys, err := facade.ListFiles(ctx, bucket, "docs/")
	if err != nil {
		fatal(err.Error())
	}
	for _, k := range keys {
		fmt.Printf("     %s\n", k)
	}

	step(6, "fetching object metadata")
	info, err := facade.GetFileInfo(ctx, bucket, "docs/hello.txt")
	if err != nil {
		fatal(err.Error())
	}
	fmt.Printf("     size=%s type=%s etag=%s\n",
		info[storage.MetaContentLength], info[storage.MetaContentType], info[storage.MetaETag])

	step(7, "copying docs/hello.txt to backup/hello.txt")
	if err := facade.CopyFile(ctx, bucket, "docs/hello.txt", bucket, "backup/hello.txt"); err != nil {
		fatal(err.Error())
	}

	step(8, "moving backup/hello.txt to archive/hello.txt")
	if err := facade.MoveFile(ctx, bucket, "backup/hello.txt", bucket, "archive/hello.txt"); err != nil {
		fatal(err.Error())
	}

	step(9, "listing all keys")
	keys, err = facade.ListAllFiles(ctx, bucket)
	if err != nil {
		fatal(err.Error())
	}
	for _, k := range keys {
		fmt.Printf("     %s\n", k)
	}

	downloadPath := filepath.Join(workDir, "downloaded.txt")
	step(10, "downloading archive/hello.txt to %s", downloadPath)
	if err := facade.DownloadFile(ctx, bucket, "archive/hello.txt", downloadPath); err != nil {
		fatal(err.Error())
	}
	data, err := os.ReadFile(downloadPath)
	if err != nil {
		fatal(err.Error())
	}
	fmt.Printf("     content: %q\n", string(data))

	step(11, "deleting objects")
	for _, key := range []string{"docs/hello.txt", "archive/hello.txt"} {
		if err := facade.DeleteFile(ctx, bucket, key); err != nil {
			fatal(err.Error())
		}
	}

	step(12, "deleting bucket %q", bucket)
	if err := facade.DeleteBucket(ctx, bucket); err != nil {
		fatal(err.Error())
	}

	fmt.Println("\nDemo complete")
}
