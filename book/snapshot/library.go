package snapshot

import (
	"errors"

	"github.com/marcelsud/bookshelf/book"
	"github.com/rs/zerolog"
)

// Library decodes data into a library, absorbing every decoding failure.
// A malformed document yields an empty library; invalid records are dropped.
func Library(format Format, data []byte, logger zerolog.Logger) *book.Library {
	books, err := Unmarshal(format, data)
	switch {
	case errors.Is(err, ErrMalformed):
		logger.Warn().Err(err).Msg("library snapshot is malformed, starting empty")
		return book.NewLibrary()
	case err != nil:
		logger.Warn().Err(err).Int("kept", len(books)).Msg("dropped invalid library records")
	}
	return book.NewLibrary(books...)
}
