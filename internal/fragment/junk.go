package fragment

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinFragmentChars is the floor below which a window is too short
	// to hold a quotable passage.
	MinFragmentChars = 220

	// maxDigitDensity flags index and table-of-contents style text,
	// which carries far more digits than running prose.
	maxDigitDensity = 0.08

	// Line-shape thresholds: many short lines means a list or a table,
	// not paragraphs.
	minLinesForShapeCheck = 8
	shortLineChars        = 30
	maxShortLineRatio     = 0.6
)

// frontMatterMarkers are phrases that only show up in front matter,
// colophons, and structural apparatus, never in quotable prose.
// Matched case-insensitively as substrings.
var frontMatterMarkers = []string{
	"isbn",
	"copyright",
	"todos los derechos",
	"all rights reserved",
	"índice",
	"index",
	"tabla de",
	"table of",
	"capítulo",
	"chapter",
	"contenidos",
	"contents",
}

// IsJunk reports whether a candidate window is structurally unusable:
// front matter, an index, a table, or simply too short. Checks run in
// order of cost and decisiveness and short-circuit on the first hit.
// Deterministic, no I/O, no model call.
func IsJunk(s string) bool {
	if utf8.RuneCountInString(s) < MinFragmentChars {
		return true
	}

	lower := strings.ToLower(s)
	for _, marker := range frontMatterMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	if digitDensity(s) > maxDigitDensity {
		return true
	}

	return looksTabular(s)
}

// digitDensity returns the share of decimal digits among all runes.
func digitDensity(s string) float64 {
	total := 0
	digits := 0
	for _, r := range s {
		total++
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(digits) / float64(total)
}

// looksTabular flags layouts made of many short lines, the shape of
// tables, lists and tables of contents after text extraction.
func looksTabular(s string) bool {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < minLinesForShapeCheck {
		return false
	}

	short := 0
	for _, line := range lines {
		if utf8.RuneCountInString(line) < shortLineChars {
			short++
		}
	}
	return float64(short)/float64(len(lines)) > maxShortLineRatio
}
