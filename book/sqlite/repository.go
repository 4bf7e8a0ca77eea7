package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/marcelsud/bookshelf/book"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver
)

/*
SQLite implementation of book.Repository

One row per book; position keeps library order. Save replaces every row
inside a single transaction, so the table always holds a complete snapshot.
Load never creates the file or the table.
*/

type Repository struct {
	DB     *sql.DB
	path   string
	logger zerolog.Logger
}

const createTable = `
	CREATE TABLE IF NOT EXISTS books (
		position INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		year INTEGER NOT NULL,
		genre TEXT NOT NULL,
		read INTEGER NOT NULL
	)`

// NewRepository opens the database file at path. The file is only created by Save.
func NewRepository(path string, logger zerolog.Logger) (*Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	return &Repository{
		DB:     db,
		path:   path,
		logger: logger.With().Str("path", path).Logger(),
	}, nil
}

// Load reads every book in position order. Any failure yields an empty library.
func (r *Repository) Load(ctx context.Context) *book.Library {
	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug().Msg("no database file yet, starting empty")
		return book.NewLibrary()
	}

	books, err := r.selectAll(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("loading library from sqlite, starting empty")
		return book.NewLibrary()
	}
	r.logger.Debug().Int("books", len(books)).Msg("library loaded")
	return book.NewLibrary(books...)
}

func (r *Repository) selectAll(ctx context.Context) ([]book.Book, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT title, author, year, genre, read FROM books ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.Title, &b.Author, &b.Year, &b.Genre, &b.Read); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

// Save replaces the stored books with the whole library
func (r *Repository) Save(ctx context.Context, library *book.Library) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM books"); err != nil {
		return fmt.Errorf("deleting books: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO books (position, title, author, year, genre, read)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, b := range library.List() {
		if _, err := stmt.ExecContext(ctx, i, b.Title, b.Author, b.Year, b.Genre, b.Read); err != nil {
			return fmt.Errorf("inserting book %q: %w", b.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	r.logger.Debug().Int("books", library.Len()).Msg("library saved")
	return nil
}

// Close closes the database handle
func (r *Repository) Close(ctx context.Context) error {
	if err := r.DB.Close(); err != nil {
		return fmt.Errorf("closing repository: %w", err)
	}
	return nil
}
