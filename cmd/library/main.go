package main

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/config"
	"github.com/marcelsud/bookshelf/internal/logging"
	"github.com/marcelsud/bookshelf/internal/shell"
	"github.com/marcelsud/bookshelf/internal/storage"
)

/* library - interactive personal catalog
 * The library is loaded once at start and saved once on exit.
 * Exit codes: 0 = saved, 1 = startup failure or library not saved
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

	ctx := context.Background()
	repo, err := storage.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(ctx); err != nil {
			logger.Warn().Err(err).Msg("closing repository")
		}
	}()

	s := book.NewService(ctx, repo)
	return shell.New(s, os.Stdin, os.Stdout, logger).Run(ctx)
}
