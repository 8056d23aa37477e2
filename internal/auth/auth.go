// Package auth resolves the case owner from the session cookie. Logging in is
// handled by a separate identity service that writes the same cookie.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/kurochkinivan/receipt_cases/internal/config"
	"github.com/kurochkinivan/receipt_cases/internal/domain"
)

const userIDKey = "user_id"

type ctxKey struct{}

var errNoUser = fmt.Errorf("no user in session: %w", domain.ErrUnauthenticated)

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserID returns the owner set by Middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}

type Sessions struct {
	log   *slog.Logger
	store sessions.Store
	name  string
}

func NewSessions(log *slog.Logger, cfg config.Session) *Sessions {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options.Path = "/"
	store.Options.HttpOnly = true

	return &Sessions{
		log:   log,
		store: store,
		name:  cfg.Name,
	}
}

// Login stores the user id in the session cookie.
func (s *Sessions) Login(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, err := s.store.Get(r, s.name)
	if err != nil && session == nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Values[userIDKey] = userID
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *Sessions) userID(r *http.Request) (int64, error) {
	session, err := s.store.Get(r, s.name)
	if err != nil {
		return 0, errors.Join(errNoUser, err)
	}

	id, ok := session.Values[userIDKey].(int64)
	if !ok || id <= 0 {
		return 0, errNoUser
	}

	return id, nil
}

// Middleware rejects requests without an authenticated session. onError
// writes the rejection so the response format stays with the caller.
func (s *Sessions) Middleware(onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := s.userID(r)
			if err != nil {
				s.log.DebugContext(r.Context(), "unauthenticated request", slog.String("path", r.URL.Path))
				onError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}
