package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/book/snapshot"
	"github.com/rs/zerolog"
)

/* File implementation of book.Repository
 * The whole library lives in one file, rewritten on every save.
 */

type Repository struct {
	path   string
	format snapshot.Format
	logger zerolog.Logger
}

// NewRepository creates a repository for the file at path
func NewRepository(path string, format snapshot.Format, logger zerolog.Logger) (*Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("library file path cannot be empty")
	}
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("validating format: %w", err)
	}
	return &Repository{
		path:   path,
		format: format,
		logger: logger.With().Str("path", path).Str("format", format.String()).Logger(),
	}, nil
}

// Load reads the library file. A missing or unreadable file is an empty library.
func (r *Repository) Load(ctx context.Context) *book.Library {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug().Msg("library file not found, starting empty")
		return book.NewLibrary()
	}
	if err != nil {
		r.logger.Warn().Err(err).Msg("reading library file, starting empty")
		return book.NewLibrary()
	}

	lib := snapshot.Library(r.format, data, r.logger)
	r.logger.Debug().Int("books", lib.Len()).Msg("library loaded")
	return lib
}

// Save overwrites the library file with the whole library
func (r *Repository) Save(ctx context.Context, library *book.Library) error {
	data, err := snapshot.Marshal(r.format, library.List())
	if err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing library file: %w", err)
	}
	r.logger.Debug().Int("books", library.Len()).Msg("library saved")
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	return nil
}
