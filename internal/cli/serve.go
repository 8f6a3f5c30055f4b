package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/creational/pkg/adapters/http"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ShutdownTimeout bounds how long outstanding requests may take once the
// server is asked to stop.
const ShutdownTimeout = 5 * time.Second

// NewHTTPServer wires the JSON API, the metrics endpoint and the configured
// rate limit.
func NewHTTPServer(a *App, addr string) *http.Server {
	opts := []httpAdapter.Option{
		httpAdapter.WithMetricsHandler(a.Metrics.Handler()),
		httpAdapter.WithLogger(a.Logger),
	}
	if limit := a.Config.Server.RateLimit; limit > 0 {
		opts = append(opts, httpAdapter.WithRateLimit(rate.Limit(limit), a.Config.Server.RateBurst))
	}

	return &http.Server{
		Addr:              addr,
		Handler:           httpAdapter.NewHandler(a.Engine, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, a *App, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("stopping server", "cause", context.Cause(gctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.Logger.Info("server stopped gracefully")
	return nil
}
