package runner

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielNara/oraculo-libros/internal/fragment"
	"github.com/GabrielNara/oraculo-libros/internal/journal"
	"github.com/GabrielNara/oraculo-libros/internal/library"
	"github.com/GabrielNara/oraculo-libros/internal/notify"
	"github.com/GabrielNara/oraculo-libros/internal/oracle"
)

// fakeOracle plays back scripted results, one per attempt.
type fakeOracle struct {
	script []oracle.Result
	err    error
	calls  int
	frags  []string
}

func (f *fakeOracle) ExtractQuote(_ context.Context, _, frag string) (oracle.Result, error) {
	f.calls++
	f.frags = append(f.frags, frag)
	if f.err != nil {
		return oracle.Result{}, f.err
	}
	i := f.calls - 1
	if i >= len(f.script) {
		i = len(f.script) - 1
	}
	return f.script[i], nil
}

// memoNotifier records every notification it is asked to send.
type memoNotifier struct {
	sent []notify.Notification
}

func (m *memoNotifier) Send(_ context.Context, n notify.Notification) error {
	m.sent = append(m.sent, n)
	return nil
}

// proseBook is a document big enough and clean enough that the
// selector always finds a fragment.
func proseBook() string {
	para := "Aquella mañana el pueblo despertó con un silencio distinto, como si las calles " +
		"hubieran decidido guardar un secreto que nadie se atrevía a contar en voz alta todavía."
	return strings.Join([]string{para, para, para, para, para, para}, "\n\n")
}

func newTestRunner(t *testing.T, doc string, o *fakeOracle, n *memoNotifier) (*Runner, string) {
	t.Helper()

	booksDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(booksDir, "niebla.pdf"), []byte("pdf"), 0o644))

	logsDir := t.TempDir()
	r := &Runner{
		Library:  library.New(library.Config{Dir: booksDir, Rand: rand.New(rand.NewSource(1))}),
		Selector: fragment.NewSelector(rand.New(rand.NewSource(1))),
		Oracle:   o,
		Journal: &journal.Journal{
			Dir: logsDir,
			Now: func() time.Time { return time.Date(2026, 8, 30, 9, 41, 0, 0, time.Local) },
		},
		Notifier: n,
		Extract:  func(string) (string, error) { return doc, nil },
	}
	return r, logsDir
}

func TestRunner_Success(t *testing.T) {
	o := &fakeOracle{script: []oracle.Result{
		{Kind: oracle.Parsed, Quote: "X", Reflection: "Y"},
	}}
	n := &memoNotifier{}
	r, logsDir := newTestRunner(t, proseBook(), o, n)

	require.NoError(t, r.RunOnce(context.Background()))

	// Exactly one journal entry with the literal template.
	data, err := os.ReadFile(filepath.Join(logsDir, "2026-08-30.md"))
	require.NoError(t, err)
	assert.Equal(t, "## 🕒 09:41 — 📚 niebla\n\n   > X\n\n   _Y_\n\n   ---\n\n", string(data))

	// One success notification carrying quote and reflection.
	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0].Subject, "niebla")
	assert.Contains(t, n.sent[0].Body, "X")
	assert.Contains(t, n.sent[0].Body, "Y")
	assert.Contains(t, n.sent[0].Body, "2026-08-30.md")
	assert.Equal(t, 1, o.calls)
}

func TestRunner_SkipConsumesAttemptsAndResendsFragment(t *testing.T) {
	o := &fakeOracle{script: []oracle.Result{
		{Kind: oracle.Skip},
		{Kind: oracle.Skip},
		{Kind: oracle.Parsed, Quote: "X", Reflection: "Y"},
	}}
	n := &memoNotifier{}
	r, logsDir := newTestRunner(t, proseBook(), o, n)

	require.NoError(t, r.RunOnce(context.Background()))

	assert.Equal(t, 3, o.calls)
	// The same fragment goes back on every attempt.
	assert.Equal(t, o.frags[0], o.frags[1])
	assert.Equal(t, o.frags[0], o.frags[2])

	// Only the final success produced an entry and a notification.
	entries, err := os.ReadDir(logsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0].Body, "X")
}

func TestRunner_SkipAloneProducesNothing(t *testing.T) {
	o := &fakeOracle{script: []oracle.Result{{Kind: oracle.Skip}}}
	n := &memoNotifier{}
	r, logsDir := newTestRunner(t, proseBook(), o, n)

	require.NoError(t, r.RunOnce(context.Background()))

	assert.Equal(t, MaxModelAttempts, o.calls)

	// No journal entry, and only the soft exhaustion notice.
	entries, err := os.ReadDir(logsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	require.Len(t, n.sent, 1)
	assert.NotContains(t, n.sent[0].Body, "Guardado")
}

func TestRunner_MalformedAnswersCountAsAttempts(t *testing.T) {
	o := &fakeOracle{script: []oracle.Result{
		{Kind: oracle.Malformed},
		{Kind: oracle.Parsed, Quote: "X", Reflection: "Y"},
	}}
	n := &memoNotifier{}
	r, _ := newTestRunner(t, proseBook(), o, n)

	require.NoError(t, r.RunOnce(context.Background()))
	assert.Equal(t, 2, o.calls)
}

func TestRunner_NoBooks(t *testing.T) {
	n := &memoNotifier{}
	r := &Runner{
		Library:  library.New(library.Config{Dir: t.TempDir()}),
		Selector: fragment.NewSelector(nil),
		Oracle:   &fakeOracle{},
		Journal:  &journal.Journal{Dir: t.TempDir()},
		Notifier: n,
		Extract:  func(string) (string, error) { return "", errors.New("unreachable") },
	}

	require.NoError(t, r.RunOnce(context.Background()))
	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0].Body, "PDF")
}

func TestRunner_NoFragment(t *testing.T) {
	o := &fakeOracle{}
	n := &memoNotifier{}
	// Too short to sample from.
	r, _ := newTestRunner(t, "un texto corto", o, n)

	require.NoError(t, r.RunOnce(context.Background()))

	assert.Zero(t, o.calls)
	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0].Body, "fragmento")
}

func TestRunner_ExtractionFailureIsAnError(t *testing.T) {
	n := &memoNotifier{}
	r, _ := newTestRunner(t, "", &fakeOracle{}, n)
	r.Extract = func(string) (string, error) { return "", errors.New("pdf roto") }

	err := r.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf roto")
	assert.Empty(t, n.sent)
}

func TestRunner_ModelErrorIsAnError(t *testing.T) {
	o := &fakeOracle{err: errors.New("red caída")}
	n := &memoNotifier{}
	r, logsDir := newTestRunner(t, proseBook(), o, n)

	err := r.RunOnce(context.Background())
	require.Error(t, err)

	entries, readErr := os.ReadDir(logsDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
