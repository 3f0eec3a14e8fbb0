package oracle

import (
	"encoding/json"
	"strings"
)

// Kind classifies a model answer.
type Kind int

const (
	// Skip means the model judged the fragment unusable.
	Skip Kind = iota
	// Parsed means a quote and reflection were extracted.
	Parsed
	// Malformed means the answer was neither the sentinel nor valid
	// JSON with a quote. It costs an attempt but is not an error.
	Malformed
)

// Result is one model answer, decoded.
type Result struct {
	Kind       Kind
	Quote      string
	Reflection string
}

type rawResult struct {
	Cita      string `json:"cita"`
	Reflexion string `json:"reflexion"`
}

// ParseResult decodes a raw model answer. The sentinel must match
// exactly after trimming; otherwise the answer must be a JSON object
// with a non-empty "cita" key, possibly embedded in surrounding prose.
func ParseResult(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == SkipSentinel {
		return Result{Kind: Skip}
	}

	var parsed rawResult
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		embedded, ok := embeddedObject(trimmed)
		if !ok {
			return Result{Kind: Malformed}
		}
		if err := json.Unmarshal([]byte(embedded), &parsed); err != nil {
			return Result{Kind: Malformed}
		}
	}

	if strings.TrimSpace(parsed.Cita) == "" {
		return Result{Kind: Malformed}
	}
	return Result{
		Kind:       Parsed,
		Quote:      strings.TrimSpace(parsed.Cita),
		Reflection: strings.TrimSpace(parsed.Reflexion),
	}
}

// embeddedObject finds the first balanced {...} span in a response
// that wraps its JSON in extra prose.
func embeddedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
