// Package layout computes adaptive table column widths and wrapped text
// from content and available terminal width. Everything here is pure and
// testable without a terminal.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pterm/pterm"
)

// Measure returns the display width of s in terminal cells, ignoring ANSI
// color sequences
func Measure(s string) int {
	return runewidth.StringWidth(pterm.RemoveColorFromString(s))
}

// Wrap word-wraps s to the given width. Non-positive widths return s
// unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Truncate fits s into width cells, appending tail when content is cut.
// When width cannot even hold the tail, the content is hard-cut without it.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Measure(s) <= width {
		return s
	}
	if Measure(tail) >= width {
		return truncate.String(s, uint(width))
	}
	return truncate.StringWithTail(s, uint(width), tail)
}

// Pad right-pads s with spaces to exactly width cells, truncating first if
// s is too wide
func Pad(s string, width int, tail string) string {
	s = Truncate(s, width, tail)
	if gap := width - Measure(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
