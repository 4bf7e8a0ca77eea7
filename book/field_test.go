package book_test

import (
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	tests := []struct {
		in   string
		want book.Field
	}{
		{"title", book.TitleField},
		{"author", book.AuthorField},
		{"any", book.AnyField},
		{"", book.AnyField},
		{"genre", book.AnyField},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			f := book.NewField(tc.in)
			assert.Equal(t, tc.want, f)
			assert.NoError(t, f.Validate())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		f := book.Field(42)
		assert.Error(t, f.Validate())
		assert.Equal(t, "unknown", f.String())
	})
}
