// Package runner executes one complete cycle: pick a book, extract its
// text, sample a fragment, query the model, record and notify.
package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GabrielNara/oraculo-libros/internal/fragment"
	"github.com/GabrielNara/oraculo-libros/internal/journal"
	"github.com/GabrielNara/oraculo-libros/internal/library"
	"github.com/GabrielNara/oraculo-libros/internal/notify"
	"github.com/GabrielNara/oraculo-libros/internal/oracle"
)

// MaxModelAttempts bounds how many times one run re-queries the model
// before giving up on the day's fragment.
const MaxModelAttempts = 6

// QuoteOracle is the model boundary the runner depends on.
type QuoteOracle interface {
	ExtractQuote(ctx context.Context, bookName, frag string) (oracle.Result, error)
}

// Runner wires the collaborators of a single run.
type Runner struct {
	Library  *library.Library
	Selector *fragment.Selector
	Oracle   QuoteOracle
	Journal  *journal.Journal
	Notifier notify.Notifier

	// Extract turns a PDF path into raw text. Injectable so tests do
	// not need real PDFs; production wiring uses pdftext.Extract.
	Extract func(path string) (string, error)
}

// RunOnce executes one run to completion. Soft outcomes (no books, no
// usable fragment, model declined every attempt) notify the user and
// return nil; only unexpected failures return an error, which the
// caller converts into an error notification.
func (r *Runner) RunOnce(ctx context.Context) error {
	book, ok, err := r.Library.Pick()
	if err != nil {
		return fmt.Errorf("pick book: %w", err)
	}
	if !ok {
		slog.Info("no books available", "dir", r.Library.Dir())
		r.send(ctx, "Oráculo de libros",
			fmt.Sprintf("No encontré ningún PDF en %s", r.Library.Dir()))
		return nil
	}

	slog.Info("selected book", "book", book.Name, "path", book.Path)

	raw, err := r.Extract(book.Path)
	if err != nil {
		return fmt.Errorf("extract %s: %w", book.Name, err)
	}

	frag, ok := r.Selector.Select(raw)
	if !ok {
		slog.Info("no usable fragment", "book", book.Name)
		r.send(ctx, "Oráculo de libros",
			fmt.Sprintf("No pude sacar un fragmento decente de «%s»", book.Name))
		return nil
	}

	slog.Debug("sampled fragment", "book", book.Name, "chars", len(frag))

	for attempt := 1; attempt <= MaxModelAttempts; attempt++ {
		result, err := r.Oracle.ExtractQuote(ctx, book.Name, frag)
		if err != nil {
			return fmt.Errorf("query model (attempt %d): %w", attempt, err)
		}

		switch result.Kind {
		case oracle.Parsed:
			return r.record(ctx, book.Name, result)
		case oracle.Skip:
			slog.Debug("model skipped fragment", "book", book.Name, "attempt", attempt)
		case oracle.Malformed:
			slog.Debug("unparseable model answer", "book", book.Name, "attempt", attempt)
		}
	}

	slog.Info("model attempts exhausted", "book", book.Name, "attempts", MaxModelAttempts)
	r.send(ctx, "Oráculo de libros",
		fmt.Sprintf("Hoy «%s» solo me dio portadas e índices", book.Name))
	return nil
}

// record appends the quote to the journal and notifies the user.
func (r *Runner) record(ctx context.Context, bookName string, result oracle.Result) error {
	path, err := r.Journal.Append(journal.Entry{
		Book:       bookName,
		Quote:      result.Quote,
		Reflection: result.Reflection,
	})
	if err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}

	slog.Info("quote recorded", "book", bookName, "log", path)
	r.send(ctx, "📚 "+bookName,
		fmt.Sprintf("«%s»\n\n%s\n\nGuardado en %s", result.Quote, result.Reflection, path))
	return nil
}

// send delivers a notification; failures are logged, never propagated.
func (r *Runner) send(ctx context.Context, subject, body string) {
	if err := r.Notifier.Send(ctx, notify.Notification{Subject: subject, Body: body}); err != nil {
		slog.Warn("notification failed", "subject", subject, "error", err)
	}
}
