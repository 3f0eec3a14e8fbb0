package fragment

import (
	"math/rand"
	"strings"
	"time"
)

const (
	// MinDocChars is the minimum normalized document length worth
	// sampling from at all.
	MinDocChars = 800

	// MinParagraphs is the minimum paragraph count worth sampling from.
	MinParagraphs = 5

	// WindowParagraphs is how many consecutive paragraphs make up one
	// candidate window.
	WindowParagraphs = 3

	// MaxFragmentChars caps a window before it is handed to the model.
	MaxFragmentChars = 1600

	// MaxAttempts bounds the random sampling loop.
	MaxAttempts = 12
)

// Selector samples candidate windows from a document until one passes
// the junk filter. The random source is injected so tests can force
// specific selections.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector. A nil rng gets a time-seeded one.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select normalizes raw document text and returns one usable fragment,
// or ok=false when the document is too small, has too few paragraphs,
// or every sampled window was classified junk.
func (s *Selector) Select(raw string) (string, bool) {
	norm := Normalize(raw)
	if len([]rune(norm)) < MinDocChars {
		return "", false
	}

	paragraphs := splitParagraphs(norm)
	if len(paragraphs) < MinParagraphs {
		return "", false
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		i := s.rng.Intn(len(paragraphs))
		w := window(paragraphs, i)
		if !IsJunk(w) {
			return w, true
		}
	}
	return "", false
}

// splitParagraphs breaks normalized text on blank-line boundaries into
// trimmed, non-empty paragraphs.
func splitParagraphs(norm string) []string {
	var out []string
	for _, p := range strings.Split(norm, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// window joins up to WindowParagraphs consecutive paragraphs starting
// at i, truncated to MaxFragmentChars. Running past the end just yields
// a shorter window.
func window(paragraphs []string, i int) string {
	end := i + WindowParagraphs
	if end > len(paragraphs) {
		end = len(paragraphs)
	}
	joined := strings.Join(paragraphs[i:end], "\n\n")
	runes := []rune(joined)
	if len(runes) > MaxFragmentChars {
		return string(runes[:MaxFragmentChars])
	}
	return joined
}
