// Package twin is an in-memory replica of the Flask Finances API. It serves
// every endpoint the suites exercise, seeded from the active fixture
// environment, and answers failures with the default_errors bodies.
package twin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/fixtures"
	"github.com/bobmcallan/finqa/internal/models"
)

// APIPrefix is where the Finances API routes are mounted.
const APIPrefix = "/api"

// Twin wraps the HTTP server and its state.
type Twin struct {
	store    *MemoryStore
	catalog  *Catalog
	tokens   *tokenIssuer
	fixtures *fixtures.Store
	logger   *common.Logger
	now      func() time.Time

	handler http.Handler
	server  *http.Server
}

// Option configures a Twin.
type Option func(*Twin)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(t *Twin) {
		t.logger = logger
	}
}

// WithClock replaces time.Now for token issue/expiry and created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(t *Twin) {
		t.now = now
	}
}

// New creates a twin seeded from fx.
func New(cfg common.TwinConfig, fx *fixtures.Store, opts ...Option) (*Twin, error) {
	catalog, err := NewCatalog(fx)
	if err != nil {
		return nil, err
	}

	t := &Twin{
		store:    NewMemoryStore(),
		catalog:  catalog,
		fixtures: fx,
		logger:   common.NewSilentLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.tokens = &tokenIssuer{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.GetTokenExpiry(),
		now:    t.now,
	}

	if err := t.Seed(fx); err != nil {
		return nil, fmt.Errorf("seed twin: %w", err)
	}

	t.handler = t.routes()
	t.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      t.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return t, nil
}

func (t *Twin) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware(t.logger))
	r.Use(correlationIDMiddleware)
	r.Use(loggingMiddleware(t.logger))
	r.Use(middleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, models.APIError{
			Code:    "NOT_FOUND",
			Message: "Recurso não encontrado",
			Details: []string{r.URL.Path},
		})
	})

	r.Get("/health", t.handleHealth)
	r.Post("/admin/reset", t.handleAdminReset)

	r.Route(APIPrefix+"/v1", func(r chi.Router) {
		r.Post("/users", t.handleUserCreate)
		r.Get("/users", t.handleUserList)
		r.Post("/auth/login", t.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(t.requireBearer)

			r.Get("/auth/me", t.handleMe)

			r.Post("/accounts", t.handleAccountCreate)
			r.Get("/accounts", t.handleAccountList)
			r.Get("/accounts/{accountId}/balance", t.handleAccountBalance)

			r.Post("/categories", t.handleCategoryCreate)
			r.Get("/categories", t.handleCategoryList)

			r.Post("/transactions/{accountId}/income", t.handleIncome)
			r.Post("/transactions/{accountId}/expense", t.handleExpense)
			r.Get("/transactions/{accountId}/extract", t.handleExtract)
		})
	})

	return r
}

// Handler returns the HTTP handler for testing.
func (t *Twin) Handler() http.Handler {
	return t.handler
}

// Addr returns the configured listen address.
func (t *Twin) Addr() string {
	return t.server.Addr
}

// Reset drops all state and seeds again from the fixtures.
func (t *Twin) Reset() error {
	t.store.Reset()
	return t.Seed(t.fixtures)
}

// Start starts the HTTP server (blocking).
func (t *Twin) Start() error {
	t.logger.Info().
		Str("addr", t.server.Addr).
		Msg("Starting Finances API twin")
	return t.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (t *Twin) Shutdown(ctx context.Context) error {
	return t.server.Shutdown(ctx)
}

func (t *Twin) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"environment": t.fixtures.Environment(),
		"version":     common.GetVersion(),
	})
}

func (t *Twin) handleAdminReset(w http.ResponseWriter, r *http.Request) {
	if err := t.Reset(); err != nil {
		t.logger.Error().Err(err).Msg("Failed to reset twin")
		writeInternalError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"status": "reset"})
}
