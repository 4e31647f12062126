package style

import (
	"github.com/charmbracelet/lipgloss"
)

// paletteEntry pairs an adaptive color with the weight it is usually
// rendered at
type paletteEntry struct {
	color lipgloss.AdaptiveColor
	bold  bool
}

// palette maps the named colors a StyleSpec may reference to concrete
// adaptive colors. AdaptiveColor switches automatically between light and
// dark terminal backgrounds.
var palette = map[string]paletteEntry{
	"heading": {
		color: lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"},
		bold:  true,
	},
	"bright": {
		color: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		bold:  true,
	},
	"text": {
		color: lipgloss.AdaptiveColor{Light: "#495057", Dark: "#E9ECEF"},
	},
	"muted": {
		color: lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"},
	},
	"success": {
		color: lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"},
		bold:  true,
	},
	"error": {
		color: lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"},
		bold:  true,
	},
	"warning": {
		color: lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"},
		bold:  true,
	},
	"info": {
		color: lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"},
	},
	"prompt": {
		color: lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"},
		bold:  true,
	},
	"border": {
		color: lipgloss.AdaptiveColor{Light: "#DEE2E6", Dark: "#3B3C4F"},
	},
}

// lookupColor resolves a named palette color. Unknown names and the empty
// string produce an unstyled entry, which keeps user themes forgiving about
// color names while structure stays strictly validated.
func lookupColor(name string) (paletteEntry, bool) {
	entry, ok := palette[name]
	return entry, ok
}

// PaletteNames returns the recognized color names, for documentation and
// theme tooling
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	return names
}
