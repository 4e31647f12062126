package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/clicycle/pkg/layout"
	"github.com/arthur-debert/clicycle/pkg/style"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

// Header renders an uppercased title, optionally followed by a subtitle
func (c *Compositor) Header(title string, subtitle ...string) error {
	caps := c.caps()
	rs := style.Resolve(theme.KindHeader, c.th, caps)

	lines := []string{rs.Apply(strings.ToUpper(title))}
	if len(subtitle) > 0 && subtitle[0] != "" {
		muted := style.Colored("muted", caps)
		lines = append(lines, strings.Repeat(" ", rs.Indent)+muted.Render(subtitle[0]))
	}

	return c.renderBlock(theme.KindHeader, strings.Join(lines, "\n"))
}

// Info renders an informational message
func (c *Compositor) Info(text string) error {
	return c.renderBlock(theme.KindInfo, c.messageBody(theme.KindInfo, text))
}

// Success renders a success message
func (c *Compositor) Success(text string) error {
	return c.renderBlock(theme.KindSuccess, c.messageBody(theme.KindSuccess, text))
}

// Warning renders a warning message
func (c *Compositor) Warning(text string) error {
	return c.renderBlock(theme.KindWarning, c.messageBody(theme.KindWarning, text))
}

// Error renders an error message
func (c *Compositor) Error(text string) error {
	return c.renderBlock(theme.KindError, c.messageBody(theme.KindError, text))
}

// Text renders plain styled text without a glyph
func (c *Compositor) Text(text string) error {
	return c.renderBlock(theme.KindText, c.messageBody(theme.KindText, text))
}

// ListItem renders a bulleted list line
func (c *Compositor) ListItem(text string) error {
	return c.renderBlock(theme.KindListItem, c.messageBody(theme.KindListItem, text))
}

// messageBody builds a one-line message: indent, glyph prefix, inline
// markup expanded, kind color applied
func (c *Compositor) messageBody(kind theme.ComponentKind, text string) string {
	caps := c.caps()
	rs := style.Resolve(kind, c.th, caps)
	mp := style.NewMarkupParser(caps)
	return rs.Apply(mp.Render(text))
}

// Section renders a titled horizontal rule, e.g. "─── RESULTS ─────────"
func (c *Compositor) Section(title string) error {
	caps := c.caps()
	rs := style.Resolve(theme.KindSection, c.th, caps)

	glyph := rs.Glyph
	if glyph == "" {
		glyph = "-"
	}

	label := " " + strings.ToUpper(title) + " "
	lead := strings.Repeat(glyph, 3)
	rest := caps.Width - layout.Measure(lead) - layout.Measure(label)
	if rest < 0 {
		rest = 0
	}

	line := lead + label + strings.Repeat(glyph, rest)
	return c.renderBlock(theme.KindSection, rs.Style.Render(line))
}

// Divider renders a subtle full-width horizontal rule. Distinct from
// Section, which is a prominent titled rule.
func (c *Compositor) Divider() error {
	caps := c.caps()
	rs := style.Resolve(theme.KindDivider, c.th, caps)

	glyph := rs.Glyph
	if glyph == "" {
		glyph = "-"
	}

	line := strings.Repeat(glyph, caps.Width)
	return c.renderBlock(theme.KindDivider, rs.Style.Render(line))
}

// Spacer renders exactly n blank lines, bypassing automatic spacing. Zero
// or negative n renders nothing.
func (c *Compositor) Spacer(n int) error {
	if n <= 0 {
		return nil
	}
	return c.renderBlock(theme.KindSpacer, strings.Repeat("\n", n-1))
}

// KV is one key-value pair for dashboard-style displays. Pairs are a slice
// so rendering order is the caller's order.
type KV struct {
	Key   string
	Value string
}

// KeyValue renders aligned label/value pairs with an optional title
func (c *Compositor) KeyValue(pairs []KV, title string) error {
	if len(pairs) == 0 {
		return nil
	}

	caps := c.caps()
	rs := style.Resolve(theme.KindKeyValue, c.th, caps)
	labelStyle := style.Colored("muted", caps)
	valueStyle := rs.Style

	keyWidth := 0
	for _, kv := range pairs {
		if w := layout.Measure(kv.Key); w > keyWidth {
			keyWidth = w
		}
	}

	indent := strings.Repeat(" ", rs.Indent)
	var lines []string
	if title != "" {
		lines = append(lines, indent+style.Colored("heading", caps).Render(title))
	}
	for _, kv := range pairs {
		key := layout.Pad(kv.Key, keyWidth, style.Ellipsis(caps))
		lines = append(lines, indent+labelStyle.Render(key)+"  "+valueStyle.Render(kv.Value))
	}

	return c.renderBlock(theme.KindKeyValue, strings.Join(lines, "\n"))
}

// Table renders rows in tabular format with column widths adapted to the
// terminal width. An empty table (no headers, no rows) renders nothing.
func (c *Compositor) Table(title string, headers []string, rows [][]string) error {
	if len(headers) == 0 && len(rows) == 0 {
		return nil
	}

	caps := c.caps()
	rs := style.Resolve(theme.KindTable, c.th, caps)
	ellipsis := style.Ellipsis(caps)

	indent := strings.Repeat(" ", rs.Indent)
	widths := layout.Columns(headers, rows, caps.Width-rs.Indent)
	gap := strings.Repeat(" ", layout.GapWidth)

	fitRow := func(cells []string) string {
		fitted := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fitted[i] = layout.Pad(cell, widths[i], ellipsis)
		}
		return indent + strings.TrimRight(strings.Join(fitted, gap), " ")
	}

	var lines []string
	if title != "" {
		lines = append(lines, indent+style.Colored("heading", caps).Render(title))
	}
	if len(headers) > 0 {
		headerStyle := style.Colored("heading", caps)
		fitted := make([]string, len(widths))
		for i := range widths {
			h := ""
			if i < len(headers) {
				h = headers[i]
			}
			fitted[i] = headerStyle.Render(layout.Pad(h, widths[i], ellipsis))
		}
		lines = append(lines, indent+strings.Join(fitted, gap))

		ruleGlyph := "─"
		if !caps.Unicode {
			ruleGlyph = "-"
		}
		rules := make([]string, len(widths))
		for i, w := range widths {
			rules[i] = strings.Repeat(ruleGlyph, w)
		}
		lines = append(lines, indent+style.Colored("muted", caps).Render(strings.Join(rules, gap)))
	}
	for _, row := range rows {
		lines = append(lines, rs.Style.Render(fitRow(row)))
	}

	return c.renderBlock(theme.KindTable, strings.Join(lines, "\n"))
}

// asciiPanelBorder replaces the unicode box-drawing border when the stream
// cannot render it
var asciiPanelBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// Panel renders content inside a bordered box with an optional title line
func (c *Compositor) Panel(content, title string) error {
	caps := c.caps()

	border := lipgloss.RoundedBorder()
	if !caps.Unicode {
		border = asciiPanelBorder
	}

	inner := caps.Width - 4
	if inner < 1 {
		inner = 1
	}
	wrapped := layout.Wrap(content, inner)
	if title != "" {
		wrapped = style.Colored("heading", caps).Render(title) + "\n" + wrapped
	}

	box := lipgloss.NewStyle().
		Border(border).
		Padding(0, 1)
	if caps.Color {
		box = box.BorderForeground(style.Colored(c.th.Spec(theme.KindPanel).Color, caps).GetForeground())
	}

	return c.renderBlock(theme.KindPanel, box.Render(wrapped))
}

// Progressf is a convenience for a one-shot, non-animated progress line,
// useful when output is piped
func (c *Compositor) Progressf(current, total int64, message string) error {
	caps := c.caps()
	rs := style.Resolve(theme.KindProgress, c.th, caps)
	bar := progressBar(c.th, caps, current, total)
	body := rs.Apply(fmt.Sprintf("%s %d/%d %s", bar, current, total, message))
	return c.renderBlock(theme.KindProgress, body)
}
