package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/marcelsud/bookshelf/book"
	"gopkg.in/yaml.v3"
)

/* A snapshot is the whole library encoded as a top-level sequence of
 * objects keyed Title, Author, Year, Genre and Read.
 */

// ErrMalformed is returned when the document is not a sequence of records
var ErrMalformed = errors.New("malformed snapshot")

// RecordError reports a record dropped while decoding
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// entry is the encoded form of a book; field order is the key order on disk
type entry struct {
	Title  string `json:"Title" yaml:"Title"`
	Author string `json:"Author" yaml:"Author"`
	Year   int    `json:"Year" yaml:"Year"`
	Genre  string `json:"Genre" yaml:"Genre"`
	Read   bool   `json:"Read" yaml:"Read"`
}

// record is the decoded form; nil fields were absent
type record struct {
	Title  *string `json:"Title" yaml:"Title"`
	Author *string `json:"Author" yaml:"Author"`
	Year   *int    `json:"Year" yaml:"Year"`
	Genre  *string `json:"Genre" yaml:"Genre"`
	Read   *bool   `json:"Read" yaml:"Read"`
}

// keys are matched exactly; any other key drops the record
var keys = map[string]bool{"Title": true, "Author": true, "Year": true, "Genre": true, "Read": true}

func checkKey(key string) error {
	if !keys[key] {
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

func (r *record) field(key string) any {
	switch key {
	case "Title":
		return &r.Title
	case "Author":
		return &r.Author
	case "Year":
		return &r.Year
	case "Genre":
		return &r.Genre
	}
	return &r.Read
}

// decodeJSONRecord avoids encoding/json's case-insensitive key matching
func decodeJSONRecord(msg json.RawMessage) (record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil {
		return record{}, err
	}
	var r record
	for key, value := range fields {
		if err := checkKey(key); err != nil {
			return record{}, err
		}
		if err := json.Unmarshal(value, r.field(key)); err != nil {
			return record{}, fmt.Errorf("decoding %s: %w", key, err)
		}
	}
	return r, nil
}

func checkYAMLKeys(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content); i += 2 {
		if err := checkKey(node.Content[i].Value); err != nil {
			return err
		}
	}
	return nil
}

func (r record) book() (book.Book, error) {
	switch {
	case r.Title == nil:
		return book.Book{}, fmt.Errorf("missing Title")
	case r.Author == nil:
		return book.Book{}, fmt.Errorf("missing Author")
	case r.Year == nil:
		return book.Book{}, fmt.Errorf("missing Year")
	case r.Genre == nil:
		return book.Book{}, fmt.Errorf("missing Genre")
	case r.Read == nil:
		return book.Book{}, fmt.Errorf("missing Read")
	}
	return book.Book{
		Title:  *r.Title,
		Author: *r.Author,
		Year:   *r.Year,
		Genre:  *r.Genre,
		Read:   *r.Read,
	}, nil
}

// Marshal encodes the books in order
func Marshal(format Format, books []book.Book) ([]byte, error) {
	entries := make([]entry, 0, len(books))
	for _, b := range books {
		entries = append(entries, entry(b))
	}

	switch format {
	case JSON:
		data, err := json.MarshalIndent(entries, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return data, nil
	case YAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	}
	return nil, format.Validate()
}

/* Unmarshal decodes a snapshot
 * A document that is not a sequence returns ErrMalformed and no books.
 * Invalid records are skipped; the books kept are returned together with
 * a joined error of *RecordError values.
 */
func Unmarshal(format Format, data []byte) ([]book.Book, error) {
	switch format {
	case JSON:
		return unmarshalJSON(data)
	case YAML:
		return unmarshalYAML(data)
	}
	return nil, format.Validate()
}

func unmarshalJSON(data []byte) ([]book.Book, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	books := make([]book.Book, 0, len(raw))
	var errs []error
	for i, msg := range raw {
		r, err := decodeJSONRecord(msg)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})
			continue
		}
		b, err := r.book()
		if err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})
			continue
		}
		books = append(books, b)
	}
	return books, errors.Join(errs...)
}

func unmarshalYAML(data []byte) ([]book.Book, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	books := make([]book.Book, 0, len(nodes))
	var errs []error
	for i := range nodes {
		if err := checkYAMLKeys(&nodes[i]); err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})
			continue
		}
		var r record
		if err := nodes[i].Decode(&r); err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})
			continue
		}
		b, err := r.book()
		if err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})
			continue
		}
		books = append(books, b)
	}
	return books, errors.Join(errs...)
}
