package theme

import (
	"github.com/pterm/pterm"
)

// Default progress bar glyphs, matching the common block-element style
const (
	defaultProgressFilled   = "█"
	defaultProgressEmpty    = "░"
	defaultProgressBarWidth = 20
)

// asciiSpinnerFrames is the classic four-phase ASCII spinner
var asciiSpinnerFrames = []string{"|", "/", "-", "\\"}

// defaultSpinnerFrames returns pterm's stock spinner sequence
func defaultSpinnerFrames() []string {
	return append([]string(nil), pterm.DefaultSpinner.Sequence...)
}

// Default returns the standard built-in theme
func Default() Theme {
	t, err := New("default", map[ComponentKind]StyleSpec{
		KindHeader:   {Color: "heading", SpacingBefore: 1, SpacingAfter: 1},
		KindSection:  {Color: "heading", Glyph: "─", SpacingBefore: 1, SpacingAfter: 1},
		KindDivider:  {Color: "muted", Glyph: "─", SpacingBefore: 1, SpacingAfter: 1},
		KindInfo:     {Color: "info", Glyph: "•", SpacingBefore: 1, SpacingAfter: 1},
		KindSuccess:  {Color: "success", Glyph: "✓", SpacingBefore: 1, SpacingAfter: 1},
		KindWarning:  {Color: "warning", Glyph: "!", SpacingBefore: 1, SpacingAfter: 1},
		KindError:    {Color: "error", Glyph: "✗", SpacingBefore: 1, SpacingAfter: 1},
		KindText:     {Color: "text", SpacingBefore: 1, SpacingAfter: 1},
		KindListItem: {Color: "text", Glyph: "•", Indent: 2},
		KindKeyValue: {Color: "text", SpacingBefore: 1, SpacingAfter: 1},
		KindTable:    {Color: "text", SpacingBefore: 1, SpacingAfter: 1},
		KindPanel:    {Color: "border", SpacingBefore: 1, SpacingAfter: 1},
		KindCode:     {Color: "text", SpacingBefore: 1, SpacingAfter: 1},
		KindSpinner:  {Color: "info", SpacingBefore: 1},
		KindProgress: {Color: "info", SpacingBefore: 1},
		KindPrompt:   {Color: "prompt", Glyph: "?", SpacingBefore: 1},
		KindSpacer:   {},
		KindGroup:    {},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// Minimal returns a theme without glyphs or colors, suitable for quiet
// output or logs
func Minimal() Theme {
	specs := make(map[ComponentKind]StyleSpec, int(kindCount))
	for _, k := range Kinds() {
		specs[k] = StyleSpec{}
	}
	// Errors and warnings keep a textual marker even here
	specs[KindWarning] = StyleSpec{Glyph: "!"}
	specs[KindError] = StyleSpec{Glyph: "x"}
	specs[KindListItem] = StyleSpec{Glyph: "-", Indent: 2}
	specs[KindPrompt] = StyleSpec{Glyph: "?"}

	t, err := New("minimal", specs, WithSpinnerFrames(asciiSpinnerFrames))
	if err != nil {
		panic(err)
	}
	return t
}

// HighContrast returns a theme with bold saturated colors and doubled
// spacing around headline components
func HighContrast() Theme {
	t, err := New("high-contrast", map[ComponentKind]StyleSpec{
		KindHeader:   {Color: "bright", SpacingBefore: 2, SpacingAfter: 2},
		KindSection:  {Color: "bright", Glyph: "═", SpacingBefore: 2, SpacingAfter: 1},
		KindDivider:  {Color: "bright", Glyph: "═", SpacingBefore: 1, SpacingAfter: 1},
		KindInfo:     {Color: "info", Glyph: "●", SpacingBefore: 1, SpacingAfter: 1},
		KindSuccess:  {Color: "success", Glyph: "✔", SpacingBefore: 1, SpacingAfter: 1},
		KindWarning:  {Color: "warning", Glyph: "▲", SpacingBefore: 1, SpacingAfter: 1},
		KindError:    {Color: "error", Glyph: "✘", SpacingBefore: 1, SpacingAfter: 1},
		KindText:     {Color: "text", SpacingBefore: 1, SpacingAfter: 1},
		KindListItem: {Color: "text", Glyph: "▪", Indent: 2},
		KindKeyValue: {Color: "text", SpacingBefore: 1, SpacingAfter: 1},
		KindTable:    {Color: "text", SpacingBefore: 1, SpacingAfter: 1},
		KindPanel:    {Color: "bright", SpacingBefore: 1, SpacingAfter: 1},
		KindCode:     {Color: "text", SpacingBefore: 1, SpacingAfter: 1},
		KindSpinner:  {Color: "info", SpacingBefore: 1},
		KindProgress: {Color: "info", SpacingBefore: 1},
		KindPrompt:   {Color: "prompt", Glyph: "?", SpacingBefore: 1},
		KindSpacer:   {},
		KindGroup:    {},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// Builtin returns the named built-in theme, or false when the name is not
// one of default, minimal, high-contrast
func Builtin(name string) (Theme, bool) {
	switch name {
	case "default", "":
		return Default(), true
	case "minimal":
		return Minimal(), true
	case "high-contrast":
		return HighContrast(), true
	default:
		return Theme{}, false
	}
}
