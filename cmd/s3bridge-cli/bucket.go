package main

import (
	"context"
	"fmt"
	"os"

	"github.com/eniz1806/S3Bridge/internal/config"
)

func runBucket(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Println(`Usage: s3bridge-cli bucket <subcommand>

Subcommands:
  list                 List all buckets
  create <name>        Create a bucket
  delete <name>        Delete an empty bucket
  exists <name>        Check whether a bucket exists`)
		os.Exit(1)
	}

	requireCreds(cfg)
	ctx := context.Background()
	facade, cleanup := newFacade(ctx, cfg)
	defer cleanup()

	switch args[0] {
	case "list":
		names, err := facade.ListBuckets(ctx)
		if err != nil {
			fatal(err.Error())
		}
		if len(names) == 0 {
			fmt.Println("No buckets found")
			return
		}
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name})
		}
		printTable([]string{"BUCKET"}, rows)

	case "create":
		if len(args) < 2 {
			fatal("bucket create requires a bucket name")
		}
		if err := facade.CreateBucket(ctx, args[1]); err != nil {
			fatal(err.Error())
		}
		fmt.Printf("Bucket %q created\n", args[1])

	case "delete":
		if len(args) < 2 {
			fatal("bucket delete requires a bucket name")
		}
		if err := facade.DeleteBucket(ctx, args[1]); err != nil {
			fatal(err.Error())
		}
		fmt.Printf("Bucket %q deleted\n", args[1])

	case "exists":
		if len(args) < 2 {
			fatal("bucket exists requires a bucket name")
		}
		ok, err := facade.BucketExists(ctx, args[1])
		if err != nil {
			fatal(err.Error())
		}
		if ok {
			fmt.Printf("Bucket %q exists\n", args[1])
		} else {
			fmt.Printf("Bucket %q does not exist\n", args[1])
			os.Exit(1)
		}

	default:
		fatal("unknown bucket subcommand: " + args[0])
	}
}
