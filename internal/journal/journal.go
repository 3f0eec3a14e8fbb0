// Package journal appends extracted quotes to per-day Markdown files.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is one quote to record.
type Entry struct {
	Book       string
	Quote      string
	Reflection string
}

// Journal writes entries under Dir, one file per local calendar date.
// The file is opened, appended and closed per entry; no handle is held
// between runs.
type Journal struct {
	Dir string
	// Now supplies the local time for the date key and the entry
	// header. Nil means time.Now.
	Now func() time.Time
}

// entryTemplate is the exact Markdown shape of one record.
const entryTemplate = "## 🕒 %s — 📚 %s\n\n   > %s\n\n   _%s_\n\n   ---\n\n"

// Append writes one entry and returns the path of the day's file.
func (j *Journal) Append(e Entry) (string, error) {
	now := time.Now()
	if j.Now != nil {
		now = j.Now()
	}

	if err := os.MkdirAll(j.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create logs directory: %w", err)
	}

	path := filepath.Join(j.Dir, now.Format("2006-01-02")+".md")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, entryTemplate, now.Format("15:04"), e.Book, e.Quote, e.Reflection); err != nil {
		return "", fmt.Errorf("append entry: %w", err)
	}
	return path, nil
}
