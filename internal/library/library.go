// Package library lists the PDF books available to the oracle and
// picks one at random per run.
package library

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Book is one selectable PDF on disk.
type Book struct {
	// Path is the full filesystem path to the PDF.
	Path string
	// Name is the display name: the file basename without extension.
	Name string
}

// Library scans a single directory (non-recursively) for PDF files.
type Library struct {
	dir string
	rng *rand.Rand
}

// Config holds configuration for the library.
type Config struct {
	Dir string
	// Rand is the random source used by Pick. Nil gets a time-seeded one.
	Rand *rand.Rand
}

// New creates a library over the given directory.
func New(cfg Config) *Library {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Library{dir: cfg.Dir, rng: rng}
}

// Dir returns the directory the library scans.
func (l *Library) Dir() string {
	return l.dir
}

// List returns every book in the directory whose name ends in .pdf,
// case-insensitively. Subdirectories are not descended into.
func (l *Library) List() ([]Book, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read books directory: %w", err)
	}

	var books []Book
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			continue
		}
		books = append(books, Book{
			Path: filepath.Join(l.dir, name),
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}
	return books, nil
}

// Pick selects one book uniformly at random. ok is false when the
// directory holds no PDFs, which is an expected outcome, not an error.
func (l *Library) Pick() (Book, bool, error) {
	books, err := l.List()
	if err != nil {
		return Book{}, false, err
	}
	if len(books) == 0 {
		return Book{}, false, nil
	}
	return books[l.rng.Intn(len(books))], true, nil
}
