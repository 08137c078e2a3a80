package regx

import (
	"strings"

	"github.com/rivo/uniseg"
)

const whitespace = " \t\n"

func trimLeadingSpace(s string) string { return strings.TrimLeft(s, whitespace) }

func trimTrailingSpace(s string) string { return strings.TrimRight(s, whitespace) }

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// charCount counts user-perceived characters, i.e. grapheme clusters
func charCount(s string) int { return uniseg.GraphemeClusterCount(s) }

// padTo right-pads s with spaces to exactly width characters. If s is
// longer it is cut after width characters.
func padTo(s string, width int) string {
	n := charCount(s)
	if n <= width {
		return s + spaces(width-n)
	}
	end, state := 0, -1
	rest := s
	for range width {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end += len(cluster)
	}
	return s[:end]
}
