// Package terminal detects the capabilities of an output stream: its width
// in columns, whether it can render color, and whether it can render
// unicode glyphs. The rendering core treats this as read-only environment
// data and re-queries it per render, since the terminal may be resized
// between calls.
package terminal

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is assumed when the stream is not a terminal or the size
// query fails
const DefaultWidth = 80

// Capabilities describes what the output stream can render
type Capabilities struct {
	Width   int
	Color   bool
	Unicode bool
}

// Provider supplies fresh capabilities for each render call
type Provider func() Capabilities

// Detect queries the capabilities of the given file
func Detect(f *os.File) Capabilities {
	caps := Capabilities{
		Width:   DefaultWidth,
		Unicode: unicodeLocale(),
	}

	if f == nil {
		return caps
	}

	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	if !tty {
		return caps
	}

	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		caps.Width = w
	}

	if os.Getenv("NO_COLOR") == "" && termenv.ColorProfile() != termenv.Ascii {
		caps.Color = true
	}

	return caps
}

// DetectProvider returns a Provider that re-queries f on every call
func DetectProvider(f *os.File) Provider {
	return func() Capabilities {
		return Detect(f)
	}
}

// Static returns a Provider with fixed capabilities, for tests and for
// callers that render to non-terminal sinks
func Static(caps Capabilities) Provider {
	return func() Capabilities {
		return caps
	}
}

// unicodeLocale checks LC_ALL, LC_CTYPE and LANG for a UTF-8 charset
func unicodeLocale() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			v = strings.ToUpper(v)
			return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
		}
	}
	return false
}
