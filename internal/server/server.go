// Package server exposes the calculator over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpgo/safeharbor/internal/domain"
	smiddleware "github.com/rpgo/safeharbor/internal/server/middleware"
	"github.com/rpgo/safeharbor/internal/store"
	"go.uber.org/zap"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zap.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Constants *domain.TaxYearConstants
	Store     store.Store
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger *zap.Logger, config Config) *WebAPI {
	h := NewHandler(config.Dependencies.Constants, config.Dependencies.Store)

	router := chi.NewRouter()

	router.Use(smiddleware.Logger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.Healthz)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/constants", h.GetConstants)
		r.Post("/calculate", h.Calculate)
		r.Post("/explain", h.Explain)
		r.Post("/breakeven", h.BreakEven)
		r.Get("/inputs", h.GetInputs)
		r.Delete("/inputs", h.ClearInputs)
	})

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

// Handler returns the routed handler, for tests and embedding
func (w *WebAPI) Handler() http.Handler { return w.router }

// Start serves until the listener fails, ctx is cancelled, or SIGINT/SIGTERM
// arrives, then shuts down gracefully.
func (w *WebAPI) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info("starting server", zap.String("addr", w.server.Addr))
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
	case <-ctx.Done():
	}
	w.logger.Info("shutdown initiated")

	// Give outstanding requests a deadline for completion.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
	defer cancel()

	err := w.server.Shutdown(shutdownCtx)
	if err != nil {
		w.logger.Error("graceful shutdown failed", zap.Error(err))
		err = w.server.Close()
	}
	if err != nil {
		return err
	}
	if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
