package book

// Stats summarizes a library. PercentRead is 0 for an empty library.
type Stats struct {
	Total       int
	Read        int
	PercentRead float64
	Genres      map[string]int
}
