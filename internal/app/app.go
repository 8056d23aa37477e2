package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/receipt_cases/internal/auth"
	"github.com/kurochkinivan/receipt_cases/internal/cases"
	"github.com/kurochkinivan/receipt_cases/internal/config"
	v1 "github.com/kurochkinivan/receipt_cases/internal/controller/http/v1"
	"github.com/kurochkinivan/receipt_cases/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/receipt_cases/internal/infrastructure/storage/localfs"
	"github.com/kurochkinivan/receipt_cases/internal/infrastructure/storage/s3storage"
	"github.com/kurochkinivan/receipt_cases/internal/infrastructure/webhook"
	"github.com/kurochkinivan/receipt_cases/internal/metrics"
	"github.com/kurochkinivan/receipt_cases/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("storage_backend", a.cfg.Storage.Backend),
		slog.Bool("webhook_configured", a.cfg.Webhook.URL != ""),
		slog.Bool("callback_secret_configured", a.cfg.Callback.Secret != ""),
		slog.Duration("webhook_timeout", a.cfg.Webhook.Timeout),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	storage, err := a.newStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}

	m := metrics.New()
	dispatcher := webhook.New(a.log, a.cfg.Webhook, &http.Client{}, m)

	service := cases.NewService(
		a.log,
		postgresql.NewCasesRepository(pool),
		storage,
		dispatcher,
		report_generator.New(),
	)

	server := v1.NewServer(
		a.log,
		a.cfg,
		v1.Services{Cases: service, Callback: service},
		auth.NewSessions(a.log, a.cfg.Session),
		m,
	)

	return a.serve(ctx, server)
}

func (a *App) newStorage(ctx context.Context) (cases.FileStorage, error) {
	switch a.cfg.Storage.Backend {
	case config.StorageBackendS3:
		a.log.InfoContext(ctx, "using s3 storage",
			slog.String("bucket", a.cfg.Storage.S3.Bucket),
			slog.String("endpoint", a.cfg.Storage.S3.Endpoint),
		)
		return s3storage.New(ctx, a.log, a.cfg.Storage.S3)

	case config.StorageBackendLocal, "":
		a.log.InfoContext(ctx, "using local storage", slog.String("dir", a.cfg.Storage.Directory))
		return localfs.New(a.cfg.Storage.Directory)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "server stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "server stopped gracefully")

	return nil
}
