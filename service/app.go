package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"profeed/app/routes"
	"profeed/config"

	"go.uber.org/zap"
)

// RunAppServer serves the feed API on cfg.Addr until ctx is cancelled, then
// drains in-flight requests within cfg.ShutdownTimeout.
func RunAppServer(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) error {
	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Errorw("failed to close store", "error", err)
		}
	}()

	router := routes.SetupRoutes(st.posts, st.comments, logger)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	logger.Infow("starting feed service", "addr", ln.Addr().String())
	return serve(ctx, ln, router, cfg.ShutdownTimeout, logger)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, timeout time.Duration, logger *zap.SugaredLogger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infow("shutting down", "timeout", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
