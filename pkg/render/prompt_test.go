package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clicycle/pkg/errors"
)

func TestPromptReturnsTrimmedInput(t *testing.T) {
	c, buf := newTestCompositor(t, WithInput(strings.NewReader("  alice  \n")))

	got, err := c.Prompt(PromptSpec{Label: "Username"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	lines := screen(buf.String())
	assert.Contains(t, lines[0], "? Username:")
}

func TestPromptEmptyInputUsesDefault(t *testing.T) {
	c, _ := newTestCompositor(t, WithInput(strings.NewReader("\n")))

	got, err := c.Prompt(PromptSpec{Label: "Region", Default: "east"})
	require.NoError(t, err)
	assert.Equal(t, "east", got)
}

func TestPromptValidatorRetries(t *testing.T) {
	c, buf := newTestCompositor(t, WithInput(strings.NewReader("nope\n42\n")))

	got, err := c.Prompt(PromptSpec{
		Label: "Port",
		Validator: func(s string) error {
			for _, r := range s {
				if r < '0' || r > '9' {
					return fmt.Errorf("%q is not a number", s)
				}
			}
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	// The rejection rendered one styled error message
	out := strings.Join(screen(buf.String()), "\n")
	assert.Equal(t, 1, strings.Count(out, "is not a number"))
}

func TestPromptMaxAttemptsExceeded(t *testing.T) {
	c, buf := newTestCompositor(t, WithInput(strings.NewReader("bad\nbad\nbad\n")))

	reject := func(string) error { return fmt.Errorf("still wrong") }
	_, err := c.Prompt(PromptSpec{Label: "Code", Validator: reject, MaxAttempts: 2})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptAttempts))
	assert.True(t, errors.IsCancelled(err))

	// Exactly two attempts consumed, each with its own error message
	out := strings.Join(screen(buf.String()), "\n")
	assert.Equal(t, 2, strings.Count(out, "still wrong"))
}

func TestPromptEOFCancels(t *testing.T) {
	c, _ := newTestCompositor(t, WithInput(strings.NewReader("")))

	_, err := c.Prompt(PromptSpec{Label: "Anything"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptCancelled))
	assert.True(t, errors.IsCancelled(err))
}

func TestPromptEOFWithPartialLine(t *testing.T) {
	// A final line without a trailing newline still counts as input
	c, _ := newTestCompositor(t, WithInput(strings.NewReader("last-word")))

	got, err := c.Prompt(PromptSpec{Label: "Word"})
	require.NoError(t, err)
	assert.Equal(t, "last-word", got)
}

func TestPromptLeavesCompositorConsistent(t *testing.T) {
	c, buf := newTestCompositor(t, WithInput(strings.NewReader("ok\n")))

	_, err := c.Prompt(PromptSpec{Label: "Ready"})
	require.NoError(t, err)
	require.NoError(t, c.Success("continuing"))

	lines := screen(buf.String())
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "✓ continuing")
}

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"explicit yes", "yes\n", false, true},
		{"short y", "y\n", false, true},
		{"explicit no", "no\n", true, false},
		{"empty uses default yes", "\n", true, true},
		{"empty uses default no", "\n", false, false},
		{"case insensitive", "YES\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCompositor(t, WithInput(strings.NewReader(tt.input)))
			got, err := c.Confirm("Proceed", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmReasksOnGarbage(t *testing.T) {
	c, buf := newTestCompositor(t, WithInput(strings.NewReader("maybe\ny\n")))

	got, err := c.Confirm("Proceed", false)
	require.NoError(t, err)
	assert.True(t, got)

	out := strings.Join(screen(buf.String()), "\n")
	assert.Contains(t, out, "please answer yes or no")
	assert.Contains(t, out, "[y/N]")
}

func TestConfirmHintFollowsDefault(t *testing.T) {
	c, buf := newTestCompositor(t, WithInput(strings.NewReader("\n")))

	_, err := c.Confirm("Continue", true)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[Y/n]")
}
