// Package style resolves a component kind's theme entry into concrete
// render attributes, degrading gracefully when the output stream cannot
// render color or unicode.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/clicycle/pkg/terminal"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

// RenderStyle holds the concrete attributes a component is rendered with
type RenderStyle struct {
	Style         lipgloss.Style
	Glyph         string
	Indent        int
	SpacingBefore int
	SpacingAfter  int
}

// Prefix returns the glyph followed by a separating space, or the empty
// string when the kind has no glyph
func (rs RenderStyle) Prefix() string {
	if rs.Glyph == "" {
		return ""
	}
	return rs.Glyph + " "
}

// Apply styles text and prepends indentation and the glyph prefix
func (rs RenderStyle) Apply(text string) string {
	return strings.Repeat(" ", rs.Indent) + rs.Prefix() + rs.Style.Render(text)
}

// Resolve maps a component kind to its concrete render attributes for the
// given theme and stream capabilities. Resolution cannot fail on a valid
// Theme: construction guarantees an entry per kind, and decoration-only
// degradation never changes text content.
func Resolve(kind theme.ComponentKind, th theme.Theme, caps terminal.Capabilities) RenderStyle {
	spec := th.Spec(kind)

	rs := RenderStyle{
		Style:         lipgloss.NewStyle(),
		Glyph:         spec.Glyph,
		Indent:        spec.Indent,
		SpacingBefore: spec.SpacingBefore,
		SpacingAfter:  spec.SpacingAfter,
	}

	if !caps.Unicode {
		rs.Glyph = ASCIIGlyph(rs.Glyph)
	}

	if caps.Color {
		if entry, ok := lookupColor(spec.Color); ok {
			rs.Style = rs.Style.Foreground(entry.color).Bold(entry.bold)
		}
	}

	return rs
}

// Colored returns a lipgloss style for a named palette color, or an
// identity style when color is unsupported or the name unknown
func Colored(name string, caps terminal.Capabilities) lipgloss.Style {
	st := lipgloss.NewStyle()
	if !caps.Color {
		return st
	}
	if entry, ok := lookupColor(name); ok {
		st = st.Foreground(entry.color).Bold(entry.bold)
	}
	return st
}

// SpinnerFrames returns the theme's spinner glyph cycle, substituting the
// ASCII sequence when the stream cannot render unicode
func SpinnerFrames(th theme.Theme, caps terminal.Capabilities) []string {
	if caps.Unicode {
		return th.SpinnerFrames()
	}
	return th.SpinnerFramesASCII()
}

// ProgressGlyphs returns the theme's progress bar glyphs, degraded to
// ASCII when needed
func ProgressGlyphs(th theme.Theme, caps terminal.Capabilities) (filled, empty string) {
	filled, empty = th.ProgressGlyphs()
	if !caps.Unicode {
		filled = ASCIIGlyph(filled)
		empty = ASCIIGlyph(empty)
	}
	return filled, empty
}

// Ellipsis returns the truncation marker for the given capabilities
func Ellipsis(caps terminal.Capabilities) string {
	if caps.Unicode {
		return "…"
	}
	return "..."
}
