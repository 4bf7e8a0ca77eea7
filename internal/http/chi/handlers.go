package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookshelf/book"
)

/* Handlers exposes a read-only view of the library
 * Every request loads its own snapshot; nothing here writes.
 */
func Handlers(ctx context.Context, reader book.Reader, metricsHandler http.Handler) *chi.Mux {
	logger := httplog.NewLogger("bookshelf-api", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/books", getBooks(reader))
		r.Method(http.MethodGet, "/books/search", searchBooks(reader))
		r.Method(http.MethodGet, "/stats", getStats(reader))
	})

	return r
}
