// Package termtext prepares text from the catalog service for display in the
// terminal.
//
// Clean removes escape sequences and control characters so remote strings
// cannot move the cursor, set the window title or write the clipboard.
// Truncate shortens a cleaned string to a cell budget.
package termtext

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Clean strips ANSI escape sequences (CSI, OSC, DCS and friends) and any
// remaining control characters except newline and tab.
func Clean(s string) string {
	s = ansi.Strip(s)
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, s)
}

func isControl(r rune) bool {
	return r != '\n' && r != '\t' && unicode.IsControl(r)
}

// Truncate trims value and shortens it to limit runes, ending in "..." when
// cut. A non-positive limit yields the empty string.
func Truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
