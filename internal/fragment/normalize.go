package fragment

import (
	"regexp"
	"strings"
)

var (
	horizontalWS  = regexp.MustCompile(`[ \t]+`)
	excessNewline = regexp.MustCompile(`\n{3,}`)
)

// Normalize collapses the whitespace noise that best-effort PDF text
// extraction leaves behind: carriage returns become spaces, runs of
// spaces and tabs collapse to one space, and three or more consecutive
// newlines collapse to exactly two so paragraph boundaries survive.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = horizontalWS.ReplaceAllString(s, " ")
	s = excessNewline.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
