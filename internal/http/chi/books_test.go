package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/book/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

/*
* Este exemplo mostra um teste usando mocks para simular o repositório de livros.
 */

func newTestHandler(t *testing.T, lib *book.Library) http.Handler {
	t.Helper()

	repo := mocks.NewRepository(t)
	repo.On("Load", mock.Anything).Return(lib).Maybe()
	return Handlers(context.Background(), repo, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("library_books 2\n"))
	}))
}

func sampleLibrary() *book.Library {
	return book.NewLibrary(
		book.Book{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction", Read: true},
		book.Book{Title: "1984", Author: "George Orwell", Year: 1949, Genre: "Dystopia"},
	)
}

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, target, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGetBooks(t *testing.T) {
	h := newTestHandler(t, sampleLibrary())

	w := do(t, h, "/v1/books")

	assert.Equal(t, http.StatusOK, w.Code)
	var results []bookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, bookResponse{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction", Read: true}, results[0])
	assert.Equal(t, "1984", results[1].Title)
}

func TestGetBooks_Empty(t *testing.T) {
	h := newTestHandler(t, book.NewLibrary())

	w := do(t, h, "/v1/books")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSearchBooks(t *testing.T) {
	h := newTestHandler(t, sampleLibrary())

	tests := []struct {
		name   string
		target string
		code   int
		titles []string
	}{
		{"union", "/v1/books/search?q=e", http.StatusOK, []string{"Dune", "1984"}},
		{"author", "/v1/books/search?q=orwell&field=author", http.StatusOK, []string{"1984"}},
		{"title ignores author", "/v1/books/search?q=orwell&field=title", http.StatusOK, []string{}},
		{"invalid field", "/v1/books/search?q=x&field=genre", http.StatusBadRequest, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, tc.target)

			require.Equal(t, tc.code, w.Code)
			if tc.titles == nil {
				return
			}
			var results []bookResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
			titles := make([]string, 0, len(results))
			for _, r := range results {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tc.titles, titles)
		})
	}
}

func TestGetStats(t *testing.T) {
	h := newTestHandler(t, sampleLibrary())

	w := do(t, h, "/v1/stats")

	assert.Equal(t, http.StatusOK, w.Code)
	var stats statsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Read)
	assert.InDelta(t, 50.0, stats.PercentRead, 1e-9)
	assert.Equal(t, map[string]int{"Science Fiction": 1, "Dystopia": 1}, stats.Genres)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestHandler(t, sampleLibrary())

	w := do(t, h, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	w = do(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "library_books")
}
