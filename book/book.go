package book

/* Book represents one catalog entry
 * Uses value semantics as it represents data, not behavior.
 * No tags: storage and web layers carry their own DTOs.
 */
type Book struct {
	Title  string
	Author string
	Year   int
	Genre  string
	Read   bool
}

// Status returns "Read" or "Unread"
func (b Book) Status() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}
