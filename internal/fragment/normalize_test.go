package fragment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("collapses excess blank lines", func(t *testing.T) {
		out := Normalize("uno\n\n\n\ndos\n\n\ntres")
		assert.Equal(t, "uno\n\ndos\n\ntres", out)
		assert.NotContains(t, out, "\n\n\n")
	})

	t.Run("replaces carriage returns", func(t *testing.T) {
		out := Normalize("uno\rdos")
		assert.NotContains(t, out, "\r")
		assert.Equal(t, "uno dos", out)
	})

	t.Run("collapses horizontal whitespace", func(t *testing.T) {
		out := Normalize("uno   dos\t\ttres")
		assert.Equal(t, "uno dos tres", out)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "uno", Normalize("  \n uno \n  "))
	})

	t.Run("never leaves three consecutive newlines", func(t *testing.T) {
		inputs := []string{
			"a\n\n\nb",
			"a\n\n\n\n\n\nb",
			strings.Repeat("p\n\n\n", 20),
		}
		for _, in := range inputs {
			assert.NotContains(t, Normalize(in), "\n\n\n")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize(" \r\n\t "))
	})
}
