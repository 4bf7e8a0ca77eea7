package storage

import (
	"fmt"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/book/file"
	"github.com/marcelsud/bookshelf/book/redis"
	"github.com/marcelsud/bookshelf/book/snapshot"
	"github.com/marcelsud/bookshelf/book/sqlite"
	"github.com/marcelsud/bookshelf/config"
	"github.com/rs/zerolog"
)

// Open builds the repository selected by cfg.StorageBackend
func Open(cfg *config.Config, logger zerolog.Logger) (book.Repository, error) {
	logger = logger.With().Str("backend", cfg.StorageBackend).Logger()

	switch cfg.StorageBackend {
	case config.BackendFile:
		repo, err := file.NewRepository(cfg.GetLibraryPath(), snapshot.NewFormat(cfg.StorageFormat), logger)
		if err != nil {
			return nil, fmt.Errorf("creating file repository: %w", err)
		}
		return repo, nil
	case config.BackendSQLite:
		repo, err := sqlite.NewRepository(cfg.GetLibraryPath(), logger)
		if err != nil {
			return nil, fmt.Errorf("creating sqlite repository: %w", err)
		}
		return repo, nil
	case config.BackendRedis:
		repo, err := redis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKey, logger)
		if err != nil {
			return nil, fmt.Errorf("creating redis repository: %w", err)
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
}
