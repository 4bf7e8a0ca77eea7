package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/marcelsud/bookshelf/book"
	"github.com/rs/zerolog"
)

/* Shell is the interactive front end of the catalog
 * It validates every answer before calling the service, so the
 * service only ever sees well-typed values.
 */

var errInputClosed = errors.New("input closed")

type Shell struct {
	service book.UseCase
	in      *bufio.Reader
	out     io.Writer
	logger  zerolog.Logger
}

// New creates a shell reading answers from in and writing prompts to out
func New(service book.UseCase, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger.With().Str("session", uuid.NewString()).Logger(),
	}
}

/* Run loops over the menu until exit or end of input
 * Both end the session by saving the library. The returned error is
 * non-nil when the save failed or input could not be read.
 */
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Debug().Msg("session started")
	for {
		s.printMenu()
		answer, err := s.prompt("Enter your choice: ")
		if err != nil {
			return s.exit(ctx, err)
		}

		cmd, ok := ParseCommand(answer)
		if !ok {
			s.println("Invalid choice, please try again.")
			continue
		}

		switch cmd {
		case Add:
			err = s.add()
		case Remove:
			err = s.remove()
		case Search:
			err = s.search()
		case List:
			s.list()
		case Statistics:
			s.statistics()
		case Exit:
			return s.exit(ctx, nil)
		}
		if err != nil {
			return s.exit(ctx, err)
		}
	}
}

func (s *Shell) printMenu() {
	s.println("\nMenu\nWelcome to your Personal Library Manager!")
	s.println("1. Add a book")
	s.println("2. Remove a book")
	s.println("3. Search for a book")
	s.println("4. Display all books")
	s.println("5. Display statistics")
	s.println("6. Exit")
}

func (s *Shell) add() error {
	title, err := s.promptText("Enter the book title: ")
	if err != nil {
		return err
	}
	author, err := s.promptText("Enter the author: ")
	if err != nil {
		return err
	}
	year, err := s.promptYear()
	if err != nil {
		return err
	}
	genre, err := s.promptText("Enter the genre: ")
	if err != nil {
		return err
	}
	read, err := s.prompt("Have you read this book? (yes/no): ")
	if err != nil {
		return err
	}

	b := book.Book{
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
		Read:   ParseRead(read),
	}
	s.service.Add(b)
	s.logger.Info().Str("title", b.Title).Msg("book added")
	s.println("Book added successfully!")
	return nil
}

// promptText re-prompts until the answer is valid UTF-8, which the snapshot codecs require
func (s *Shell) promptText(label string) (string, error) {
	for {
		answer, err := s.prompt(label)
		if err != nil {
			return "", err
		}
		if utf8.ValidString(answer) {
			return answer, nil
		}
		s.logger.Debug().Msg("rejected invalid utf-8")
		s.println("Please enter valid UTF-8 text.")
	}
}

func (s *Shell) promptYear() (int, error) {
	for {
		answer, err := s.prompt("Enter the publication year: ")
		if err != nil {
			return 0, err
		}
		year, err := ParseYear(answer)
		if err == nil {
			return year, nil
		}
		s.logger.Debug().Str("answer", answer).Msg("rejected year")
		s.println("Please enter the year as a number.")
	}
}

func (s *Shell) remove() error {
	title, err := s.prompt("Enter the title of the book to remove: ")
	if err != nil {
		return err
	}
	if !s.service.Remove(title) {
		s.println("Book not found.")
		return nil
	}
	s.logger.Info().Str("title", title).Msg("book removed")
	s.println("Book removed successfully!")
	return nil
}

func (s *Shell) search() error {
	s.println("Search by:\n1. Title\n2. Author\n3. Title or author")
	choice, err := s.prompt("Enter your choice: ")
	if err != nil {
		return err
	}
	query, err := s.prompt("Enter the search term: ")
	if err != nil {
		return err
	}

	field := ParseField(choice)
	results := s.service.Search(strings.TrimSpace(query), field)
	s.logger.Debug().Str("field", field.String()).Int("results", len(results)).Msg("search")
	if len(results) == 0 {
		s.println("No matching books found.")
		return nil
	}
	s.println("Matching Books:")
	s.printBooks(results)
	return nil
}

func (s *Shell) list() {
	books := s.service.List()
	if len(books) == 0 {
		s.println("Your library is empty.")
		return
	}
	s.println("Your Library:")
	s.printBooks(books)
}

func (s *Shell) statistics() {
	stats := s.service.Statistics()
	fmt.Fprintf(s.out, "Total books: %d\n", stats.Total)
	fmt.Fprintf(s.out, "Percentage read: %.2f%%\n", stats.PercentRead)
}

func (s *Shell) printBooks(books []book.Book) {
	for i, b := range books {
		fmt.Fprintf(s.out, "%d. %s by %s (%d) - %s - %s\n", i+1, b.Title, b.Author, b.Year, b.Genre, b.Status())
	}
}

func (s *Shell) exit(ctx context.Context, cause error) error {
	if errors.Is(cause, errInputClosed) {
		s.println("")
		cause = nil
	}
	if err := s.service.Save(ctx); err != nil {
		s.logger.Error().Err(err).Msg("library not saved")
		fmt.Fprintf(s.out, "Error: the library was NOT saved: %v\n", err)
		return errors.Join(cause, err)
	}
	s.logger.Debug().Msg("session ended")
	s.println("Library saved to file. Goodbye!")
	return cause
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
