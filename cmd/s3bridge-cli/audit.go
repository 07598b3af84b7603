package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/eniz1806/S3Bridge/audit"
	"github.com/eniz1806/S3Bridge/internal/config"
)

func runAudit(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Println(`Usage: s3bridge-cli audit <subcommand>

Subcommands:
  recent [n]           Show the n most recent journal entries (default 20)
  count                Show the total number of journal entries`)
		os.Exit(1)
	}

	log, err := audit.Open(cfg.Audit.Path)
	if err != nil {
		fatal(err.Error())
	}
	defer log.Close()

	switch args[0] {
	case "recent":
		limit := 20
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				fatal("audit recent requires a positive number")
			}
			limit = n
		}
		entries, err := log.Recent(limit)
		if err != nil {
			fatal(err.Error())
		}
		if len(entries) == 0 {
			fmt.Println("Journal is empty")
			return
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			detail := ""
			if e.Error != "" {
				detail = e.Error
			}
			rows = append(rows, []string{
				strconv.FormatUint(e.Seq, 10),
				e.Time.Format(time.RFC3339),
				e.Op,
				e.Bucket,
				e.Key,
				e.Status,
				detail,
			})
		}
		printTable([]string{"SEQ", "TIME", "OPERATION", "BUCKET", "KEY", "STATUS", "DETAIL"}, rows)

	case "count":
		n, err := log.Len()
		if err != nil {
			fatal(err.Error())
		}
		fmt.Printf("%d entries\n", n)

	default:
		fatal("unknown audit subcommand: " + args[0])
	}
}
