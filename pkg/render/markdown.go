package render

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/clicycle/pkg/errors"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

// Markdown renders a markdown document word-wrapped to the terminal width
func (c *Compositor) Markdown(source string) error {
	body, err := c.renderMarkdown(source)
	if err != nil {
		return err
	}
	return c.renderBlock(theme.KindCode, body)
}

// Code renders source code as a syntax-highlighted block
func (c *Compositor) Code(source, language string) error {
	md := "```" + language + "\n" + strings.TrimRight(source, "\n") + "\n```"
	body, err := c.renderMarkdown(md)
	if err != nil {
		return err
	}
	return c.renderBlock(theme.KindCode, body)
}

func (c *Compositor) renderMarkdown(md string) (string, error) {
	caps := c.caps()

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(caps.Width),
	}
	if caps.Color {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "creating markdown renderer")
	}

	out, err := r.Render(md)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "rendering markdown")
	}

	// Glamour pads its output with blank lines; the compositor owns
	// vertical spacing.
	return strings.Trim(out, "\n"), nil
}
