package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/book/snapshot"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

/* Redis implementation of book.Repository
 * The library is stored as one JSON snapshot in a single string key,
 * replaced with SET on every save.
 */

const DefaultKey = "library:books"

type Repository struct {
	client *redis.Client
	key    string
	logger zerolog.Logger
}

// NewRepository creates a new Redis repository and checks the connection
func NewRepository(addr, password string, db int, key string, logger zerolog.Logger) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return NewRepositoryWithClient(client, key, logger), nil
}

// NewRepositoryWithClient wraps an existing client
func NewRepositoryWithClient(client *redis.Client, key string, logger zerolog.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{
		client: client,
		key:    key,
		logger: logger.With().Str("key", key).Logger(),
	}
}

// Load reads the snapshot key. A missing key, a bad value or a Redis error is an empty library.
func (r *Repository) Load(ctx context.Context) *book.Library {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug().Msg("library key not found, starting empty")
		return book.NewLibrary()
	}
	if err != nil {
		r.logger.Warn().Err(err).Msg("reading library from Redis, starting empty")
		return book.NewLibrary()
	}

	lib := snapshot.Library(snapshot.JSON, data, r.logger)
	r.logger.Debug().Int("books", lib.Len()).Msg("library loaded")
	return lib
}

// Save replaces the snapshot key with the whole library
func (r *Repository) Save(ctx context.Context, library *book.Library) error {
	data, err := snapshot.Marshal(snapshot.JSON, library.List())
	if err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("storing library: %w", err)
	}
	r.logger.Debug().Int("books", library.Len()).Msg("library saved")
	return nil
}

// Close closes the Redis client
func (r *Repository) Close(ctx context.Context) error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("closing Redis client: %w", err)
	}
	return nil
}
