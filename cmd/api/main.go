package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/bookshelf/config"
	"github.com/marcelsud/bookshelf/internal/http/chi"
	"github.com/marcelsud/bookshelf/internal/logging"
	"github.com/marcelsud/bookshelf/internal/storage"
	"github.com/marcelsud/bookshelf/metrics"
)

const TIMEOUT = 30 * time.Second

/* api - read-only HTTP view of the library with Prometheus metrics
 * It never saves: every request loads the current snapshot from storage.
 */

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogJSON, os.Stderr)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	repo, err := storage.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close(context.Background())

	exporter, err := metrics.NewOTelExporter(metrics.NewLibraryCollector(repo))
	if err != nil {
		return err
	}
	defer exporter.Shutdown(context.Background())

	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      chi.Handlers(ctx, repo, exporter.ServeHTTP()),
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Str("backend", cfg.StorageBackend).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving: %w", err)
	}
	return <-errShutdown
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("forcing closing the server: %w", err)
	}
}
