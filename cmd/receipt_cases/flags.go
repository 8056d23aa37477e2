package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/receipt_cases/internal/app"
	"github.com/kurochkinivan/receipt_cases/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

const envPrefix = "RECEIPT_CASES_"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "receipt_cases",
		Usage:   "Receipt case service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			if level, ok := ctx.Value(levelKey{}).(*slog.LevelVar); ok {
				if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
					return fmt.Errorf("invalid log level: %w", err)
				}
			}

			return app.New(log, cfg).Run(ctx)
		},
	}
}

// sources reads a flag from the environment first, then from the YAML file.
func sources(configFile *string, env, key string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar(envPrefix+env),
		yaml.YAML(key, altsrc.NewStringPtrSourcer(configFile)),
	)
}

func flags() []cli.Flag {
	var configFile string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:      "log-level",
			Usage:     "Set log level (debug, info, warn, error)",
			Value:     "info",
			Sources:   sources(&configFile, "LOG_LEVEL", "app.log_level"),
			Validator: validateLogLevel,
		},
		&cli.StringFlag{
			Name:    "webhook-url",
			Usage:   "Set n8n webhook URL receipts are sent to",
			Sources: sources(&configFile, "WEBHOOK_URL", "webhook.url"),
		},
		&cli.DurationFlag{
			Name:    "webhook-timeout",
			Usage:   "Set n8n webhook request timeout",
			Value:   30 * time.Second,
			Sources: sources(&configFile, "WEBHOOK_TIMEOUT", "webhook.timeout"),
		},
		&cli.StringFlag{
			Name:    "callback-secret",
			Usage:   "Set shared secret expected in the X-N8N-SECRET header",
			Sources: sources(&configFile, "CALLBACK_SECRET", "callback.secret"),
		},
		&cli.Int64Flag{
			Name:    "callback-max-body",
			Usage:   "Set maximum callback body size in bytes",
			Value:   10 << 20,
			Sources: sources(&configFile, "CALLBACK_MAX_BODY", "callback.max_body"),
		},
		&cli.StringFlag{
			Name:      "storage-backend",
			Usage:     "Set blob storage backend (local, s3)",
			Value:     config.StorageBackendLocal,
			Sources:   sources(&configFile, "STORAGE_BACKEND", "storage.backend"),
			Validator: validateStorageBackend,
		},
		&cli.StringFlag{
			Name:    "storage-dir",
			Usage:   "Set directory for the local storage backend",
			Value:   "data/storage",
			Sources: sources(&configFile, "STORAGE_DIR", "storage.dir"),
		},
		&cli.StringFlag{
			Name:    "s3-bucket",
			Usage:   "Set S3 bucket",
			Sources: sources(&configFile, "S3_BUCKET", "storage.s3.bucket"),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "Set S3 compatible endpoint (R2, MinIO)",
			Sources: sources(&configFile, "S3_ENDPOINT", "storage.s3.endpoint"),
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "Set S3 region",
			Value:   "auto",
			Sources: sources(&configFile, "S3_REGION", "storage.s3.region"),
		},
		&cli.StringFlag{
			Name:    "s3-access-key-id",
			Usage:   "Set S3 access key id",
			Sources: sources(&configFile, "S3_ACCESS_KEY_ID", "storage.s3.access_key_id"),
		},
		&cli.StringFlag{
			Name:    "s3-secret-access-key",
			Usage:   "Set S3 secret access key",
			Sources: sources(&configFile, "S3_SECRET_ACCESS_KEY", "storage.s3.secret_access_key"),
		},
		&cli.BoolFlag{
			Name:    "s3-path-style",
			Usage:   "Use path style S3 addressing",
			Sources: sources(&configFile, "S3_PATH_STYLE", "storage.s3.path_style"),
		},
		&cli.StringFlag{
			Name:    "session-name",
			Usage:   "Set session cookie name",
			Value:   "receipt_session",
			Sources: sources(&configFile, "SESSION_NAME", "session.name"),
		},
		&cli.StringFlag{
			Name:     "session-secret",
			Usage:    "Set session cookie signing key",
			Sources:  sources(&configFile, "SESSION_SECRET", "session.secret"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  sources(&configFile, "PG_HOST", "postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  sources(&configFile, "PG_PORT", "postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  sources(&configFile, "PG_USERNAME", "postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  sources(&configFile, "PG_PASSWORD", "postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "receipt_cases",
			Sources:  sources(&configFile, "PG_DBNAME", "postgresql.dbname"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: sources(&configFile, "PG_SSLMODE", "postgresql.sslmode"),
		},
		&cli.Int32Flag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size, 0 keeps the driver default",
			Sources: sources(&configFile, "PG_MAX_CONNS", "postgresql.max_conns"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: sources(&configFile, "HTTP_HOST", "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: sources(&configFile, "HTTP_PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: sources(&configFile, "HTTP_IDLE_TIMEOUT", "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: sources(&configFile, "HTTP_READ_TIMEOUT", "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   45 * time.Second,
			Sources: sources(&configFile, "HTTP_WRITE_TIMEOUT", "http.write_timeout"),
		},
		&cli.IntFlag{
			Name:    "http-rate-limit",
			Usage:   "Set per-IP requests per minute on case routes, 0 disables",
			Value:   60,
			Sources: sources(&configFile, "HTTP_RATE_LIMIT", "http.rate_limit"),
		},
		&cli.Int64Flag{
			Name:    "http-max-upload",
			Usage:   "Set maximum receipt upload size in bytes",
			Value:   20 << 20,
			Sources: sources(&configFile, "HTTP_MAX_UPLOAD", "http.max_upload"),
		},
	}
}

func validateLogLevel(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}

	return nil
}

func validateStorageBackend(backend string) error {
	switch backend {
	case config.StorageBackendLocal, config.StorageBackendS3:
		return nil
	default:
		return fmt.Errorf("storage backend must be %q or %q, got %q",
			config.StorageBackendLocal, config.StorageBackendS3, backend)
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
