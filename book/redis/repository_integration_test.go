//go:build integration

package redis_test

import (
	"context"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/book/redis"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Integration(t *testing.T) {
	ctx := context.Background()
	rc, cleanup := SetupRedisContainer(t, ctx)
	defer cleanup()

	t.Run("missing key is empty", func(t *testing.T) {
		repo := CreateTestRepository(t, rc.Addr, "test:missing")
		defer repo.Close(ctx)

		assert.Equal(t, 0, repo.Load(ctx).Len())
	})

	t.Run("round trip", func(t *testing.T) {
		repo := CreateTestRepository(t, rc.Addr, "test:roundtrip")
		defer repo.Close(ctx)
		books := []book.Book{
			{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction", Read: true},
			{Title: "1984", Author: "George Orwell", Year: 1949, Genre: "Dystopia"},
		}

		require.NoError(t, repo.Save(ctx, book.NewLibrary(books...)))

		assert.Equal(t, books, repo.Load(ctx).List())
	})

	t.Run("save replaces the snapshot", func(t *testing.T) {
		repo := CreateTestRepository(t, rc.Addr, "test:replace")
		defer repo.Close(ctx)
		require.NoError(t, repo.Save(ctx, book.NewLibrary(book.Book{Title: "A"}, book.Book{Title: "B"})))

		require.NoError(t, repo.Save(ctx, book.NewLibrary(book.Book{Title: "C"})))

		all := repo.Load(ctx).List()
		require.Len(t, all, 1)
		assert.Equal(t, "C", all[0].Title)
	})

	t.Run("corrupt value is empty", func(t *testing.T) {
		SetRawValue(t, rc.Addr, "test:corrupt", "{{{")
		repo := CreateTestRepository(t, rc.Addr, "test:corrupt")
		defer repo.Close(ctx)

		assert.Equal(t, 0, repo.Load(ctx).Len())
	})

	t.Run("unreachable server", func(t *testing.T) {
		_, err := redis.NewRepository("127.0.0.1:1", "", 0, "", zerolog.Nop())
		assert.Error(t, err)
	})
}
