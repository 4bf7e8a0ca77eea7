package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcelsud/bookshelf/book"
)

// ParseRead reports whether the answer is "yes". Anything else means not read.
func ParseRead(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "yes"
}

// ParseYear converts the year answer to an integer. No range check.
func ParseYear(answer string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("year must be a whole number: %q", answer)
	}
	return year, nil
}

// ParseField maps the search menu choice to a field; unknown choices search both
func ParseField(choice string) book.Field {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "1", "title":
		return book.TitleField
	case "2", "author":
		return book.AuthorField
	}
	return book.AnyField
}
