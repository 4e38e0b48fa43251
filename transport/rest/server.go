package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger   *slog.Logger
	handlers Handlers
}

func New(logger *slog.Logger, handlers Handlers) *Server {
	return &Server{
		logger:   logger,
		handlers: handlers,
	}
}

// Start runs the HTTP server until the context is canceled, then shuts it
// down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}

func (that *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", that.handlers.Health)

	mux.HandleFunc("POST /api/auth/register", that.handlers.Register)
	mux.HandleFunc("POST /api/auth/login", that.handlers.Login)
	mux.HandleFunc("GET /api/auth/me", that.handlers.WithAuth(that.handlers.Me))

	mux.HandleFunc("GET /api/board", that.handlers.WithAuth(that.handlers.GetBoard))
	mux.HandleFunc("GET /api/board/stats", that.handlers.WithAuth(that.handlers.BoardStats))
	mux.HandleFunc("POST /api/board/toggle", that.handlers.WithAuth(that.handlers.ToggleCell))
	mux.HandleFunc("POST /api/board/reset", that.handlers.WithAuth(that.handlers.ResetBoard))
	mux.HandleFunc("POST /api/board/regenerate", that.handlers.WithAuth(that.handlers.RegenerateBoard))

	return mux
}
