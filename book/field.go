package book

import "fmt"

/* Field selects which record fields a search matches against
 * AnyField keeps the union behaviour: a query matches title OR author.
 */
type Field int

const (
	AnyField Field = iota + 1
	TitleField
	AuthorField
)

// String returns the string representation of the field
func (f Field) String() string {
	switch f {
	case AnyField:
		return "any"
	case TitleField:
		return "title"
	case AuthorField:
		return "author"
	}
	return "unknown"
}

// NewField creates a Field from a string, falling back to AnyField
func NewField(s string) Field {
	switch s {
	case "title":
		return TitleField
	case "author":
		return AuthorField
	}
	return AnyField
}

// Validate checks if the field is valid
func (f Field) Validate() error {
	if f < AnyField || f > AuthorField {
		return fmt.Errorf("invalid search field: %d", f)
	}
	return nil
}
