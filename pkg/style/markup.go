package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/clicycle/pkg/terminal"
)

// MarkupParser expands inline style tags like [success]done[/success] in
// component text. When the stream cannot render color the tags are stripped
// and the text passes through unchanged.
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// markupTags are the palette names usable as inline tags, plus the plain
// text attributes
var markupTags = []string{
	"heading", "bright", "text", "muted",
	"success", "error", "warning", "info", "prompt",
}

// NewMarkupParser creates a markup parser honoring the stream capabilities
func NewMarkupParser(caps terminal.Capabilities) *MarkupParser {
	styles := make(map[string]lipgloss.Style)

	for _, tag := range markupTags {
		if caps.Color {
			entry, _ := lookupColor(tag)
			styles[tag] = lipgloss.NewStyle().Foreground(entry.color).Bold(entry.bold)
		} else {
			styles[tag] = lipgloss.NewStyle()
		}
	}

	if caps.Color {
		styles["bold"] = lipgloss.NewStyle().Bold(true)
		styles["italic"] = lipgloss.NewStyle().Italic(true)
		styles["underline"] = lipgloss.NewStyle().Underline(true)
	} else {
		styles["bold"] = lipgloss.NewStyle()
		styles["italic"] = lipgloss.NewStyle()
		styles["underline"] = lipgloss.NewStyle()
	}

	return &MarkupParser{styles: styles}
}

// Render processes markup text and returns styled output
func (p *MarkupParser) Render(text string) string {
	result := text

	// Process tags in a loop so nested tags resolve inside out
	for {
		oldResult := result

		for tag, st := range p.styles {
			pattern := regexp.MustCompile(`\[` + tag + `\](.*?)\[/` + tag + `\]`)

			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				submatch := pattern.FindStringSubmatch(match)
				if len(submatch) != 2 {
					return match
				}
				return st.Render(submatch[1])
			})
		}

		if result == oldResult {
			return result
		}
	}
}

// AddStyle registers a custom tag
func (p *MarkupParser) AddStyle(tag string, st lipgloss.Style) {
	p.styles[tag] = st
}

// RenderTemplate substitutes {{key}} placeholders and then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}
