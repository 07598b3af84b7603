package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eniz1806/S3Bridge/internal/config"
)

var version = "dev"

var (
	configPath string
	endpoint   string
	accessKey  string
	secretKey  string
	region     string
)

func init() {
	configPath = envOrDefault("S3BRIDGE_CONFIG", "")
	endpoint = envOrDefault("S3BRIDGE_ENDPOINT", "")
	accessKey = envOrDefault("S3BRIDGE_ACCESS_KEY", "")
	secretKey = envOrDefault("S3BRIDGE_SECRET_KEY", "")
	region = envOrDefault("S3BRIDGE_REGION", "")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Parse global flags before subcommand
	args := os.Args[1:]
	for len(args) > 0 && len(args[0]) > 0 && args[0][0] == '-' {
		switch args[0] {
		case "--config":
			if len(args) < 2 {
				fatal("--config requires a value")
			}
			configPath = args[1]
			args = args[2:]
		case "--endpoint":
			if len(args) < 2 {
				fatal("--endpoint requires a value")
			}
			endpoint = args[1]
			args = args[2:]
		case "--access-key":
			if len(args) < 2 {
				fatal("--access-key requires a value")
			}
			accessKey = args[1]
			args = args[2:]
		case "--secret-key":
			if len(args) < 2 {
				fatal("--secret-key requires a value")
			}
			secretKey = args[1]
			args = args[2:]
		case "--region":
			if len(args) < 2 {
				fatal("--region requires a value")
			}
			region = args[1]
			args = args[2:]
		case "--version", "-v":
			fmt.Printf("s3bridge-cli %s\n", version)
			os.Exit(0)
		case "--help", "-h":
			printUsage()
			os.Exit(0)
		default:
			fatal("unknown flag: " + args[0])
		}
	}

	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg := loadConfig()
	setupLogging(cfg.Logging.Level)

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "bucket":
		runBucket(cfg, cmdArgs)
	case "object":
		runObject(cfg, cmdArgs)
	case "audit":
		runAudit(cfg, cmdArgs)
	case "demo":
		runDemo(cfg, cmdArgs)
	case "version":
		fmt.Printf("s3bridge-cli %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// loadConfig merges the optional config file with flag/env overrides.
func loadConfig() *config.Config {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fatal(err.Error())
		}
		cfg = loaded
	}
	if endpoint != "" {
		cfg.Backend.Endpoint = endpoint
	}
	if accessKey != "" {
		cfg.Backend.AccessKey = accessKey
	}
	if secretKey != "" {
		cfg.Backend.SecretKey = secretKey
	}
	if region != "" {
		cfg.Backend.Region = region
	}
	return cfg
}

func setupLogging(levelName string) {
	var level slog.Level
	switch strings.ToLower(levelName) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func printUsage() {
	fmt.Println(`Usage: s3bridge-cli [flags] <command> <subcommand> [args]

Global Flags:
  --config <path>      Config file (default: $S3BRIDGE_CONFIG)
  --endpoint <url>     Backend endpoint (default: $S3BRIDGE_ENDPOINT or config)
  --access-key <key>   Access key (default: $S3BRIDGE_ACCESS_KEY or config)
  --secret-key <key>   Secret key (default: $S3BRIDGE_SECRET_KEY or config)
  --region <region>    Region (default: $S3BRIDGE_REGION or config)
  --version, -v        Show version

Commands:
  bucket               Bucket operations (list, create, delete, exists)
  object               Object operations (ls, put, get, rm, cp, mv, stat, exists)
  audit                Show the local operation journal
  demo                 Run the end-to-end integration walkthrough
  version              Show version
  help                 Show this help`)
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func requireCreds(cfg *config.Config) {
	if cfg.Backend.AccessKey == "" || cfg.Backend.SecretKey == "" {
		fatal("access key and secret key are required. Set S3BRIDGE_ACCESS_KEY/S3BRIDGE_SECRET_KEY or use --access-key/--secret-key")
	}
}
