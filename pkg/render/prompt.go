package render

import (
	"io"
	"strings"

	"github.com/arthur-debert/clicycle/pkg/errors"
	"github.com/arthur-debert/clicycle/pkg/style"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

// PromptSpec describes an interactive input request
type PromptSpec struct {
	// Label is shown before the cursor
	Label string
	// Default is applied when the user submits an empty line
	Default string
	// Validator rejects bad input with a message; nil accepts anything.
	// Validation failures are ordinary recoverable outcomes, rendered as
	// styled error messages, and drive the retry loop.
	Validator func(string) error
	// MaxAttempts bounds the retry loop; 0 means unbounded. Exceeding it
	// yields a cancelled outcome, not a panic.
	MaxAttempts int
}

// Prompt asks for a line of input, retrying while the validator rejects
// it. Each rejection renders one styled error message through the
// compositor, so prompt feedback spaces and styles like everything else.
// EOF or an interrupted stream yields a cancelled error and leaves the
// compositor consistent for subsequent renders.
func (c *Compositor) Prompt(spec PromptSpec) (string, error) {
	attempts := 0

	for {
		if err := c.writePromptLine(spec); err != nil {
			return "", err
		}

		line, err := c.readLine()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrPromptCancelled, "input interrupted")
		}

		input := strings.TrimSpace(line)
		if input == "" {
			input = spec.Default
		}

		if spec.Validator == nil {
			return input, nil
		}
		verr := spec.Validator(input)
		if verr == nil {
			return input, nil
		}

		attempts++
		if rerr := c.Error(verr.Error()); rerr != nil {
			return "", rerr
		}
		if spec.MaxAttempts > 0 && attempts >= spec.MaxAttempts {
			return "", errors.Newf(errors.ErrPromptAttempts,
				"no valid input after %d attempts", attempts)
		}
	}
}

// Confirm asks a yes/no question. The answer set is the case-insensitive
// literals y, yes, n, no; an empty answer applies the default. Anything
// else re-asks.
func (c *Compositor) Confirm(label string, defaultYes bool) (bool, error) {
	hint := "y/N"
	def := "n"
	if defaultYes {
		hint = "Y/n"
		def = "y"
	}

	answer, err := c.Prompt(PromptSpec{
		Label:   label + " [" + hint + "]",
		Default: def,
		Validator: func(s string) error {
			switch strings.ToLower(s) {
			case "y", "yes", "n", "no":
				return nil
			}
			return errors.New(errors.ErrInvalidInput, "please answer yes or no")
		},
	})
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// writePromptLine renders the prompt without a trailing newline; the
// user's enter key supplies it
func (c *Compositor) writePromptLine(spec PromptSpec) error {
	c.interruptTransient()

	c.mu.Lock()
	defer c.mu.Unlock()

	caps := c.caps()
	rs := style.Resolve(theme.KindPrompt, c.th, caps)

	blanks := c.blankLinesBefore(theme.KindPrompt)
	text := spec.Label + ":"
	line := strings.Repeat("\n", blanks) + rs.Apply(text) + " "

	if _, err := io.WriteString(c.out, line); err != nil {
		return errors.Wrap(err, errors.ErrWriteFailed, "writing prompt")
	}

	c.hasLast = true
	c.lastKind = theme.KindPrompt
	c.lineCount += blanks + 1
	return nil
}

// readLine blocks on input without holding the write lock, so a background
// repaint or another goroutine's render is never starved by a waiting
// prompt
func (c *Compositor) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
