package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/kurochkinivan/receipt_cases/internal/config"
)

type Server struct {
	httpServer *http.Server
}

type Metrics interface {
	CallbackRecorder
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

type Authenticator interface {
	Middleware(onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler
}

type Services struct {
	Cases    CasesService
	Callback CallbackService
}

func NewServer(log *slog.Logger, cfg *config.Config, services Services, authenticator Authenticator, metrics Metrics) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port),
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
			Handler:      NewRouter(log, cfg, services, authenticator, metrics),
		},
	}
}

func NewRouter(log *slog.Logger, cfg *config.Config, services Services, authenticator Authenticator, metrics Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	callback := NewCallbackHandler(log, services.Callback, cfg.Callback, metrics)
	r.Post("/callback", callback.Callback)

	h := NewCasesHandler(log, services.Cases, cfg.HTTP.MaxUploadBytes)
	r.Route("/cases", func(r chi.Router) {
		r.Use(authenticator.Middleware(func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(log, w, r, err)
		}))
		if cfg.HTTP.RequestsPerMinute > 0 {
			r.Use(httprate.Limit(
				cfg.HTTP.RequestsPerMinute,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
			))
		}

		r.Post("/", h.Submit)
		r.Get("/", h.List)
		r.Get("/export.csv", h.Export)
		r.Get("/{id}/", h.Get)
		r.Post("/{id}/send-to-n8n/", h.SendToN8n)
		r.Get("/{id}/download-csv/", h.DownloadCSV)
		r.Get("/{id}/download-pdf/", h.DownloadPDF)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
