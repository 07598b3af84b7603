package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/eniz1806/S3Bridge/internal/config"
	"github.com/eniz1806/S3Bridge/storage"
)

func runObject(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Println(`Usage: s3bridge-cli object <subcommand>

Subcommands:
  ls <bucket> [prefix]                      List object keys
  put <local-path> <bucket> <key>           Upload a local file
  get <bucket> <key> <local-path>           Download an object
  rm <bucket> <key>                         Delete an object
  cp <src-bucket> <src-key> <dst-bucket> <dst-key>   Copy an object
  mv <src-bucket> <src-key> <dst-bucket> <dst-key>   Move an object
  stat <bucket> <key>                       Show object metadata
  exists <bucket> <key>                     Check whether an object exists`)
		os.Exit(1)
	}

	requireCreds(cfg)
	ctx := context.Background()
	facade, cleanup := newFacade(ctx, cfg)
	defer cleanup()

	switch args[0] {
	case "ls":
		if len(args) < 2 {
			fatal("object ls requires a bucket name")
		}
		prefix := ""
		if len(args) > 2 {
			prefix = args[2]
		}
		keys, err := facade.ListFiles(ctx, args[1], prefix)
		if err != nil {
			fatal(err.Error())
		}
		if len(keys) == 0 {
			fmt.Println("No objects found")
			return
		}
		for _, k := range keys {
			fmt.Println(k)
		}

	case "put":
		if len(args) < 4 {
			fatal("object put requires <local-path> <bucket> <key>")
		}
		if err := facade.UploadFile(ctx, args[1], args[2], args[3]); err != nil {
			fatal(err.Error())
		}
		fmt.Printf("Uploaded %s to %s/%s\n", args[1], args[2], args[3])

	case "get":
		if len(args) < 4 {
			fatal("object get requires <bucket> <key> <local-path>")
		}
		if err := facade.DownloadFile(ctx, args[1], args[2], args[3]); err != nil {
			fatal(err.Error())
		}
		fmt.Printf("Downloaded %s/%s to %s\n", args[1], args[2], args[3])

	case "rm":
		if len(args) < 3 {
			fatal("object rm requires <bucket> <key>")
		}
		if err := facade.DeleteFile(ctx, args[1], args[2]); err != nil {
			fatal(err.Error())
		}
		fmt.Printf("Deleted %s/%s\n", args[1], args[2])

	case "cp":
		if len(args) < 5 {
			fatal("object cp requires <src-bucket> <src-key> <dst-bucket> <dst-key>")
		}
		if err := facade.CopyFile(ctx, args[1], args[2], args[3], args[4]); err != nil {
			fatal(err.Error())
		}
		fmt.Printf("Copied %s/%s to %s/%s\n", args[1], args[2], args[3], args[4])

	case "mv":
		if len(args) < 5 {
			fatal("object mv requires <src-bucket> <src-key> <dst-bucket> <dst-key>")
		}
		if err := facade.MoveFile(ctx, args[1], args[2], args[3], args[4]); err != nil {
			fatal(err.Error())
		}
		fmt.Printf("Moved %s/%s to %s/%s\n", args[1], args[2], args[3], args[4])

	case "stat":
		if len(args) < 3 {
			fatal("object stat requires <bucket> <key>")
		}
		info, err := facade.GetFileInfo(ctx, args[1], args[2])
		if err != nil {
			fatal(err.Error())
		}
		size := info[storage.MetaContentLength]
		if n, err := strconv.ParseInt(size, 10, 64); err == nil {
			size = fmt.Sprintf("%s (%s)", size, formatSize(n))
		}
		printTable([]string{"FIELD", "VALUE"}, [][]string{
			{storage.MetaContentLength, size},
			{storage.MetaContentType, info[storage.MetaContentType]},
			{storage.MetaETag, info[storage.MetaETag]},
			{storage.MetaLastModified, info[storage.MetaLastModified]},
		})

	case "exists":
		if len(args) < 3 {
			fatal("object exists requires <bucket> <key>")
		}
		ok, err := facade.FileExists(ctx, args[1], args[2])
		if err != nil {
			fatal(err.Error())
		}
		if ok {
			fmt.Printf("Object %s/%s exists\n", args[1], args[2])
		} else {
			fmt.Printf("Object %s/%s does not exist\n", args[1], args[2])
			os.Exit(1)
		}

	default:
		fatal("unknown object subcommand: " + args[0])
	}
}
