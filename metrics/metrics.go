package metrics

import (
	"context"
	"time"

	"github.com/marcelsud/bookshelf/book"
)

// Metrics represents the current state of the library.
type Metrics struct {
	// Total is the number of books
	Total int64 `json:"total"`

	// Read is the number of books marked as read
	Read int64 `json:"read"`

	// PercentRead is Read/Total*100, 0 for an empty library
	PercentRead float64 `json:"percent_read"`

	// Genres maps genre to number of books
	Genres map[string]int64 `json:"genres"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting library metrics.
type Collector interface {
	Collect(ctx context.Context) (Metrics, error)
}

// LibraryCollector loads a fresh snapshot on every collection.
type LibraryCollector struct {
	reader book.Reader
}

// NewLibraryCollector creates a collector over the given reader
func NewLibraryCollector(reader book.Reader) *LibraryCollector {
	return &LibraryCollector{reader: reader}
}

// Collect loads the library and summarizes it
func (c *LibraryCollector) Collect(ctx context.Context) (Metrics, error) {
	return FromStats(c.reader.Load(ctx).Statistics()), nil
}

// FromStats converts library statistics to metrics
func FromStats(s book.Stats) Metrics {
	genres := make(map[string]int64, len(s.Genres))
	for genre, n := range s.Genres {
		genres[genre] = int64(n)
	}
	return Metrics{
		Total:       int64(s.Total),
		Read:        int64(s.Read),
		PercentRead: s.PercentRead,
		Genres:      genres,
		Timestamp:   time.Now(),
	}
}
