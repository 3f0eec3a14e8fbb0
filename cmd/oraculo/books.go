package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GabrielNara/oraculo-libros/internal/config"
	"github.com/GabrielNara/oraculo-libros/internal/library"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the PDFs the oracle can see",
	RunE:  runBooks,
}

func init() {
	rootCmd.AddCommand(booksCmd)
}

func runBooks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	lib := library.New(library.Config{Dir: cfg.BooksDir})
	books, err := lib.List()
	if err != nil {
		return fmt.Errorf("list books: %w", err)
	}

	if len(books) == 0 {
		fmt.Printf("No hay ningún PDF en %s\n", cfg.BooksDir)
		return nil
	}

	for _, b := range books {
		fmt.Printf("%s\t%s\n", b.Name, b.Path)
	}
	return nil
}
