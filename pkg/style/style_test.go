package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clicycle/pkg/terminal"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

var plainCaps = terminal.Capabilities{Width: 80, Color: false, Unicode: true}
var asciiCaps = terminal.Capabilities{Width: 80, Color: false, Unicode: false}

func TestResolveKeepsSpecFields(t *testing.T) {
	th := theme.Default()
	rs := Resolve(theme.KindSuccess, th, plainCaps)

	spec := th.Spec(theme.KindSuccess)
	assert.Equal(t, spec.Glyph, rs.Glyph)
	assert.Equal(t, spec.Indent, rs.Indent)
	assert.Equal(t, spec.SpacingBefore, rs.SpacingBefore)
	assert.Equal(t, spec.SpacingAfter, rs.SpacingAfter)
}

func TestResolveDegradesGlyphWithoutUnicode(t *testing.T) {
	th := theme.Default()

	rs := Resolve(theme.KindSuccess, th, asciiCaps)
	assert.Equal(t, "+", rs.Glyph)

	rs = Resolve(theme.KindError, th, asciiCaps)
	assert.Equal(t, "x", rs.Glyph)
}

func TestResolveWithoutColorLeavesTextIntact(t *testing.T) {
	th := theme.Default()
	rs := Resolve(theme.KindError, th, plainCaps)

	out := rs.Apply("something broke")
	assert.Contains(t, out, "something broke")
	assert.NotContains(t, out, "\x1b[")
}

func TestApplyIndentAndPrefix(t *testing.T) {
	rs := RenderStyle{Glyph: "*", Indent: 4}
	assert.True(t, strings.HasPrefix(rs.Apply("item"), "    * "))

	noGlyph := RenderStyle{}
	assert.Equal(t, "text", noGlyph.Apply("text"))
}

func TestSpinnerFramesDegrade(t *testing.T) {
	th := theme.Default()

	unicode := SpinnerFrames(th, plainCaps)
	ascii := SpinnerFrames(th, asciiCaps)

	require.NotEmpty(t, unicode)
	require.NotEmpty(t, ascii)
	for _, frame := range ascii {
		for _, r := range frame {
			assert.Less(t, int(r), 0x80)
		}
	}
}

func TestProgressGlyphsDegrade(t *testing.T) {
	th := theme.Default()

	filled, empty := ProgressGlyphs(th, asciiCaps)
	assert.Equal(t, "#", filled)
	assert.Equal(t, ".", empty)
}

func TestEllipsis(t *testing.T) {
	assert.Equal(t, "…", Ellipsis(plainCaps))
	assert.Equal(t, "...", Ellipsis(asciiCaps))
}

func TestASCIIGlyph(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"✓", "+"},
		{"✗", "x"},
		{"•", "*"},
		{"─", "-"},
		{"█", "#"},
		{"→", "->"},
		{"ok", "ok"},
		{"", ""},
		{"⚡", "*"}, // unmapped glyph degrades generically
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ASCIIGlyph(tt.input))
		})
	}
}

func TestMarkupStripsTagsWithoutColor(t *testing.T) {
	mp := NewMarkupParser(plainCaps)

	out := mp.Render("deploy [success]passed[/success] in [bold]2s[/bold]")
	assert.Equal(t, "deploy passed in 2s", out)
}

func TestMarkupNestedTags(t *testing.T) {
	mp := NewMarkupParser(plainCaps)

	out := mp.Render("[warning]slow: [bold]12s[/bold] elapsed[/warning]")
	assert.Equal(t, "slow: 12s elapsed", out)
}

func TestMarkupUnknownTagPassesThrough(t *testing.T) {
	mp := NewMarkupParser(plainCaps)

	out := mp.Render("[blink]nope[/blink]")
	assert.Equal(t, "[blink]nope[/blink]", out)
}

func TestMarkupTemplate(t *testing.T) {
	mp := NewMarkupParser(plainCaps)

	out := mp.RenderTemplate("host [info]{{host}}[/info] is {{state}}",
		map[string]string{"host": "prod-01", "state": "up"})
	assert.Equal(t, "host prod-01 is up", out)
}

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	assert.Contains(t, names, "success")
	assert.Contains(t, names, "error")
	assert.Contains(t, names, "muted")
}
