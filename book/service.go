package book

import (
	"context"
	"fmt"
)

/* Service owns the library for one run and the repository it came from
 * Uses pointer semantics as it's an API, not data
 */

// UseCase defines the catalog operations offered to the shell
type UseCase interface {
	Add(b Book)
	Remove(title string) bool
	Search(query string, field Field) []Book
	List() []Book
	Statistics() Stats
	Save(ctx context.Context) error
}

type Service struct {
	Repo    Repository
	library *Library
}

// NewService creates a service holding the library loaded from repo
func NewService(ctx context.Context, repo Repository) *Service {
	lib := repo.Load(ctx)
	if lib == nil {
		lib = NewLibrary()
	}
	return &Service{
		Repo:    repo,
		library: lib,
	}
}

// Add appends a book to the library
func (s *Service) Add(b Book) {
	s.library.Add(b)
}

// Remove deletes the first book with a matching title
func (s *Service) Remove(title string) bool {
	return s.library.Remove(title)
}

// Search finds books matching query on the selected field
func (s *Service) Search(query string, field Field) []Book {
	return s.library.Search(query, field)
}

// List returns all books in order
func (s *Service) List() []Book {
	return s.library.List()
}

// Statistics summarizes the library
func (s *Service) Statistics() Stats {
	return s.library.Statistics()
}

// Save writes the whole library back to the repository
func (s *Service) Save(ctx context.Context) error {
	err := s.Repo.Save(ctx, s.library)
	if err != nil {
		return fmt.Errorf("saving library: %w", err)
	}
	return nil
}
