// Package render is the stateful composition core: a Compositor owns one
// output stream, tracks what was last written, and renders heterogeneous
// components with theme-driven styling and automatic inter-component
// spacing. It is the single exclusivity boundary for the terminal — every
// write, foreground or background, goes through its lock.
package render

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/clicycle/pkg/errors"
	"github.com/arthur-debert/clicycle/pkg/logging"
	"github.com/arthur-debert/clicycle/pkg/terminal"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

// Compositor renders components to a single output stream. One instance
// per output target; create it at session start and share it between all
// code that writes to that terminal. Concurrent renders are serialized by
// an internal lock.
type Compositor struct {
	mu   sync.Mutex
	out  io.Writer
	in   *bufio.Reader
	term *termenv.Output
	th   theme.Theme
	caps terminal.Provider
	log  zerolog.Logger

	hasLast   bool
	lastKind  theme.ComponentKind
	lineCount int
	transient *Transient

	groupDepth   int
	groupRenders int
}

// Option customizes a Compositor at construction time
type Option func(*Compositor)

// WithCapabilities overrides capability detection. The provider is invoked
// once per render, so a live provider tracks terminal resizes.
func WithCapabilities(p terminal.Provider) Option {
	return func(c *Compositor) {
		if p != nil {
			c.caps = p
		}
	}
}

// WithInput sets the reader prompts consume input from (default os.Stdin)
func WithInput(r io.Reader) Option {
	return func(c *Compositor) {
		if r != nil {
			c.in = bufio.NewReader(r)
		}
	}
}

// New creates a Compositor writing to out with the given theme. The theme
// is checked up front: a theme missing a style entry is rejected here, not
// discovered mid-render.
func New(out io.Writer, th theme.Theme, opts ...Option) (*Compositor, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}

	c := &Compositor{
		out: out,
		in:  bufio.NewReader(os.Stdin),
		th:  th,
		log: logging.GetLogger("render"),
	}

	if f, ok := out.(*os.File); ok {
		c.caps = terminal.DetectProvider(f)
	} else {
		c.caps = terminal.Static(terminal.Capabilities{
			Width:   terminal.DefaultWidth,
			Unicode: true,
		})
	}

	for _, opt := range opts {
		opt(c)
	}

	c.term = termenv.NewOutput(c.out)
	return c, nil
}

// Theme returns the compositor's theme
func (c *Compositor) Theme() theme.Theme {
	return c.th
}

// LineCount returns the number of permanent lines written so far
func (c *Compositor) LineCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lineCount
}

// Reset forgets the rendering history: the next component renders without
// leading blank lines. An active transient is cancelled and erased first.
func (c *Compositor) Reset() {
	c.interruptTransient()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasLast = false
	c.lineCount = 0
}

// Group runs fn with inter-component spacing suppressed: every component
// rendered inside fn after the first joins the previous one without blank
// lines, forming one visual block. The first component spaces normally
// against whatever preceded the group.
func (c *Compositor) Group(fn func() error) error {
	c.mu.Lock()
	c.groupDepth++
	if c.groupDepth == 1 {
		c.groupRenders = 0
	}
	c.mu.Unlock()

	err := fn()

	c.mu.Lock()
	c.groupDepth--
	c.mu.Unlock()
	return err
}

// renderBlock writes one permanent component: cancel any running
// animation, apply the spacing rule, write atomically, update state.
func (c *Compositor) renderBlock(kind theme.ComponentKind, body string) error {
	c.interruptTransient()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderLocked(kind, body)
}

// renderLocked writes body (without trailing newline) plus the spacing the
// theme asks for. State advances only after the write succeeds, so an IO
// error leaves the compositor valid for a retry.
func (c *Compositor) renderLocked(kind theme.ComponentKind, body string) error {
	blanks := c.blankLinesBefore(kind)

	text := strings.Repeat("\n", blanks) + body + "\n"
	if _, err := io.WriteString(c.out, text); err != nil {
		return errors.Wrapf(err, errors.ErrWriteFailed, "writing %s component", kind)
	}

	c.hasLast = true
	c.lastKind = kind
	c.lineCount += blanks + strings.Count(body, "\n") + 1
	if c.groupDepth > 0 {
		c.groupRenders++
	}

	c.log.Trace().Stringer("kind", kind).Int("blanks", blanks).Msg("component rendered")
	return nil
}

// blankLinesBefore applies the spacing rule: the larger of the previous
// component's spacing-after and the next component's spacing-before. Most
// space wins, so two components agreeing on one blank line never
// double-space. Spacers manage their own whitespace on both sides, and components inside
// a group (or consecutive group boundaries) join without spacing.
func (c *Compositor) blankLinesBefore(kind theme.ComponentKind) int {
	if !c.hasLast || kind == theme.KindSpacer || c.lastKind == theme.KindSpacer {
		return 0
	}
	if c.groupDepth > 0 && c.groupRenders > 0 {
		return 0
	}
	if kind == theme.KindGroup && c.lastKind == theme.KindGroup {
		return 0
	}

	prev := c.th.Spec(c.lastKind).SpacingAfter
	next := c.th.Spec(kind).SpacingBefore
	if prev > next {
		return prev
	}
	return next
}

// eraseLineLocked wipes the current terminal line and returns the cursor
// to column zero. Must be called with c.mu held.
func (c *Compositor) eraseLineLocked() {
	_, _ = io.WriteString(c.out, "\r")
	c.term.ClearLine()
}

// repaintLineLocked redraws the current line in place, without advancing
// to a new line. Must be called with c.mu held.
func (c *Compositor) repaintLineLocked(line string) {
	c.eraseLineLocked()
	_, _ = io.WriteString(c.out, line)
}
