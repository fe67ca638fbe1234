package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Run обслуживает handler на addr, пока не отменен ctx
func Run(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	log = log.With(slog.String("component", "http_server"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Сервер запущен", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка запуска сервера: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info("Остановка сервера")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("ошибка остановки сервера: %w", err)
		}
		return nil
	})

	return g.Wait()
}
