package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	repo, err := NewRepository(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(context.Background()) })
	return repo
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "library.db")
	repo := newTestRepository(t, path)

	assert.Equal(t, 0, repo.Load(ctx).Len())

	books := []book.Book{
		{Title: "Foundation", Author: "Isaac Asimov", Year: 1951, Genre: "Science Fiction", Read: true},
		{Title: "Neuromancer", Author: "William Gibson", Year: 1984, Genre: "Cyberpunk"},
		{Title: "foundation", Author: "Isaac Asimov", Year: 1951, Genre: "Science Fiction"},
	}
	require.NoError(t, repo.Save(ctx, book.NewLibrary(books...)))
	assert.Equal(t, books, repo.Load(ctx).List())

	lib := repo.Load(ctx)
	require.True(t, lib.Remove("FOUNDATION"))
	require.NoError(t, repo.Save(ctx, lib))

	reopened := newTestRepository(t, path)
	all := reopened.Load(ctx).List()
	require.Len(t, all, 2)
	assert.Equal(t, "Neuromancer", all[0].Title)
	assert.Equal(t, "foundation", all[1].Title)
}

func TestRepository_LoadLeavesNoTrace(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is not created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "library.db")
		repo := newTestRepository(t, path)

		assert.Equal(t, 0, repo.Load(ctx).Len())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("empty file gets no table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "library.db")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		repo := newTestRepository(t, path)

		assert.Equal(t, 0, repo.Load(ctx).Len())
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})
}

func TestRepository_LoadCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "library.db")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("not a sqlite database\n", 64)), 0o644))
	repo := newTestRepository(t, path)

	assert.Equal(t, 0, repo.Load(ctx).Len())
	assert.Error(t, repo.Save(ctx, book.NewLibrary(book.Book{Title: "A"})))
}

func TestNewRepository_EmptyPath(t *testing.T) {
	_, err := NewRepository("", zerolog.Nop())
	assert.Error(t, err)
}
