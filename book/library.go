package book

import "strings"

/* Library is the ordered, in-memory collection of books for one run
 * Insertion order is preserved and titles are not unique.
 * It is owned by a single caller and is not safe for concurrent use.
 */
type Library struct {
	books []Book
}

// NewLibrary creates a library holding a copy of the given books
func NewLibrary(books ...Book) *Library {
	l := &Library{books: make([]Book, 0, len(books))}
	l.books = append(l.books, books...)
	return l
}

// Add appends a book to the end of the library
func (l *Library) Add(b Book) {
	l.books = append(l.books, b)
}

// Remove deletes the first book whose title matches case-insensitively.
// It reports whether a book was removed.
func (l *Library) Remove(title string) bool {
	for i, b := range l.books {
		if strings.EqualFold(b.Title, title) {
			l.books = append(l.books[:i], l.books[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns, in library order, every book whose selected field
// contains the query case-insensitively
func (l *Library) Search(query string, field Field) []Book {
	q := strings.ToLower(query)
	var results []Book
	for _, b := range l.books {
		if matches(b, q, field) {
			results = append(results, b)
		}
	}
	return results
}

func matches(b Book, q string, field Field) bool {
	title := strings.Contains(strings.ToLower(b.Title), q)
	author := strings.Contains(strings.ToLower(b.Author), q)
	switch field {
	case TitleField:
		return title
	case AuthorField:
		return author
	}
	return title || author
}

// List returns a copy of every book in library order
func (l *Library) List() []Book {
	all := make([]Book, len(l.books))
	copy(all, l.books)
	return all
}

// Len returns the number of books
func (l *Library) Len() int {
	return len(l.books)
}

// Statistics summarizes the library
func (l *Library) Statistics() Stats {
	s := Stats{
		Total:  len(l.books),
		Genres: make(map[string]int, len(l.books)),
	}
	for _, b := range l.books {
		if b.Read {
			s.Read++
		}
		s.Genres[b.Genre]++
	}
	if s.Total > 0 {
		s.PercentRead = float64(s.Read) / float64(s.Total) * 100
	}
	return s
}
