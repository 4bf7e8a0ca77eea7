package chi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/marcelsud/bookshelf/book"
)

/*
* Representa o livro na camada web, por isso ele tem as tags json
 */
type bookResponse struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

type statsResponse struct {
	Total       int            `json:"total"`
	Read        int            `json:"read"`
	PercentRead float64        `json:"percent_read"`
	Genres      map[string]int `json:"genres"`
}

func toResponse(books []book.Book) []bookResponse {
	result := make([]bookResponse, 0, len(books))
	for _, b := range books {
		result = append(result, bookResponse{
			Title:  b.Title,
			Author: b.Author,
			Year:   b.Year,
			Genre:  b.Genre,
			Read:   b.Read,
		})
	}
	return result
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func getBooks(reader book.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lib := reader.Load(r.Context())
		writeJSON(w, toResponse(lib.List()))
	})
}

// searchBooks handles GET /v1/books/search?q=...&field=any|title|author
func searchBooks(reader book.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("field")
		field := book.NewField(name)
		if name != "" && field.String() != name {
			http.Error(w, fmt.Sprintf("invalid field: %s (expected any, title or author)", name), http.StatusBadRequest)
			return
		}
		lib := reader.Load(r.Context())
		writeJSON(w, toResponse(lib.Search(r.URL.Query().Get("q"), field)))
	})
}

func getStats(reader book.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := reader.Load(r.Context()).Statistics()
		writeJSON(w, statsResponse{
			Total:       s.Total,
			Read:        s.Read,
			PercentRead: s.PercentRead,
			Genres:      s.Genres,
		})
	})
}
