package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Webhook
	Callback
	Storage
	Session
	PostgreSQL
	HTTP
}

type App struct {
	LogLevel string
}

// Webhook is the outbound extraction endpoint. An empty URL is allowed at
// startup and reported when a dispatch is attempted.
type Webhook struct {
	URL     string
	Timeout time.Duration
}

// Callback guards the inbound endpoint. An empty Secret disables the check.
type Callback struct {
	Secret       string
	MaxBodyBytes int64
}

const (
	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"
)

type Storage struct {
	Backend   string
	Directory string
	S3        S3
}

type S3 struct {
	Bucket          string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

type Session struct {
	Name   string
	Secret string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type HTTP struct {
	Host              string
	Port              string
	IdleTimeout       time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	RequestsPerMinute int
	MaxUploadBytes    int64
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			LogLevel: cmd.String("log-level"),
		},
		Webhook: Webhook{
			URL:     cmd.String("webhook-url"),
			Timeout: cmd.Duration("webhook-timeout"),
		},
		Callback: Callback{
			Secret:       cmd.String("callback-secret"),
			MaxBodyBytes: cmd.Int64("callback-max-body"),
		},
		Storage: Storage{
			Backend:   cmd.String("storage-backend"),
			Directory: cmd.String("storage-dir"),
			S3: S3{
				Bucket:          cmd.String("s3-bucket"),
				Endpoint:        cmd.String("s3-endpoint"),
				Region:          cmd.String("s3-region"),
				AccessKeyID:     cmd.String("s3-access-key-id"),
				SecretAccessKey: cmd.String("s3-secret-access-key"),
				UsePathStyle:    cmd.Bool("s3-path-style"),
			},
		},
		Session: Session{
			Name:   cmd.String("session-name"),
			Secret: cmd.String("session-secret"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:              cmd.String("http-host"),
			Port:              cmd.String("http-port"),
			IdleTimeout:       cmd.Duration("http-idle-timeout"),
			ReadTimeout:       cmd.Duration("http-read-timeout"),
			WriteTimeout:      cmd.Duration("http-write-timeout"),
			RequestsPerMinute: cmd.Int("http-rate-limit"),
			MaxUploadBytes:    cmd.Int64("http-max-upload"),
		},
	}
}
