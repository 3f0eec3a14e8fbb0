package app

import (
	"github.com/GabrielNara/oraculo-libros/internal/config"
	"github.com/GabrielNara/oraculo-libros/internal/fragment"
	"github.com/GabrielNara/oraculo-libros/internal/journal"
	"github.com/GabrielNara/oraculo-libros/internal/library"
	"github.com/GabrielNara/oraculo-libros/internal/notify"
	"github.com/GabrielNara/oraculo-libros/internal/oracle"
	"github.com/GabrielNara/oraculo-libros/internal/pdftext"
	"github.com/GabrielNara/oraculo-libros/internal/runner"
)

// App is the main application container holding all dependencies.
type App struct {
	Config   *config.Config
	Library  *library.Library
	Runner   *runner.Runner
	Notifier notify.Notifier
}

// New creates an application instance with all dependencies wired up.
func New(cfg *config.Config) *App {
	lib := library.New(library.Config{Dir: cfg.BooksDir})
	notifier := notify.NewDesktopNotifier()

	r := &runner.Runner{
		Library:  lib,
		Selector: fragment.NewSelector(nil),
		Oracle: oracle.NewClient(oracle.Config{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.Model,
		}),
		Journal:  &journal.Journal{Dir: cfg.LogsDir},
		Notifier: notifier,
		Extract:  pdftext.Extract,
	}

	return &App{
		Config:   cfg,
		Library:  lib,
		Runner:   r,
		Notifier: notifier,
	}
}
