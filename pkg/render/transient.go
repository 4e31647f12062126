package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/arthur-debert/clicycle/pkg/errors"
	"github.com/arthur-debert/clicycle/pkg/style"
	"github.com/arthur-debert/clicycle/pkg/terminal"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

// RefreshInterval is how often an animated component repaints its line
const RefreshInterval = 100 * time.Millisecond

type transientState int

const (
	stateRunning transientState = iota
	stateFinalized
	stateCancelled
)

// Transient is an in-flight animated component: a spinner or a progress
// bar. It owns a background refresh goroutine that repaints a single
// terminal line, borrowing the compositor's write lock for the duration of
// each repaint only. At most one Transient is active per Compositor.
type Transient struct {
	c        *Compositor
	kind     theme.ComponentKind
	label    string
	frames   []string
	rs       style.RenderStyle
	filled   string
	empty    string
	barWidth int

	cancelFn context.CancelFunc
	done     chan struct{}

	mu      sync.Mutex
	state   transientState
	frame   int
	current int64
	total   int64
	message string
}

// StartSpinner begins an animated spinner with the given label. It fails
// with a usage error when another transient is already active; the active
// one is left untouched.
func (c *Compositor) StartSpinner(label string) (*Transient, error) {
	return c.startTransient(theme.KindSpinner, label, 0)
}

// StartProgress begins an animated progress bar counting toward total
func (c *Compositor) StartProgress(label string, total int64) (*Transient, error) {
	return c.startTransient(theme.KindProgress, label, total)
}

func (c *Compositor) startTransient(kind theme.ComponentKind, label string, total int64) (*Transient, error) {
	caps := c.caps()
	filled, empty := style.ProgressGlyphs(c.th, caps)

	t := &Transient{
		c:        c,
		kind:     kind,
		label:    label,
		frames:   style.SpinnerFrames(c.th, caps),
		rs:       style.Resolve(kind, c.th, caps),
		filled:   filled,
		empty:    empty,
		barWidth: c.th.ProgressBarWidth(),
		done:     make(chan struct{}),
		total:    total,
	}

	c.mu.Lock()
	if c.transient != nil {
		c.mu.Unlock()
		return nil, errors.New(errors.ErrTransientActive,
			"a transient component is already active")
	}

	// The animated line participates in the spacing rules like any other
	// component; only its frames are ephemeral.
	if blanks := c.blankLinesBefore(kind); blanks > 0 {
		if _, err := io.WriteString(c.out, strings.Repeat("\n", blanks)); err != nil {
			c.mu.Unlock()
			return nil, errors.Wrap(err, errors.ErrWriteFailed, "starting transient")
		}
		c.lineCount += blanks
	}
	c.hasLast = true
	c.lastKind = kind
	c.transient = t

	ctx, cancel := context.WithCancel(context.Background())
	t.cancelFn = cancel
	c.repaintLineLocked(t.frameLine())
	c.mu.Unlock()

	c.log.Debug().Stringer("kind", kind).Str("label", label).Msg("transient started")
	go t.loop(ctx)
	return t, nil
}

// loop is the background refresh task. It suspends on a timer between
// frames and exits when the context is cancelled; done closes on exit so
// Stop and Cancel can join it.
func (t *Transient) loop(ctx context.Context) {
	defer close(t.done)

	ticker := time.NewTicker(RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.paint()
		}
	}
}

// paint redraws the animated line. The compositor lock is held for this
// single repaint only, so foreground writes are never starved and never
// interleave mid-frame.
func (t *Transient) paint() {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()

	t.mu.Lock()
	if t.state != stateRunning {
		t.mu.Unlock()
		return
	}
	t.frame++
	t.mu.Unlock()

	t.c.repaintLineLocked(t.frameLine())
}

// frameLine renders the current animation frame
func (t *Transient) frameLine() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	glyph := t.frames[t.frame%len(t.frames)]

	if t.kind == theme.KindSpinner {
		return t.rs.Style.Render(glyph) + " " + t.label
	}

	bar := renderBar(t.filled, t.empty, t.barWidth, t.current, t.total)
	line := fmt.Sprintf("%s %s %d/%d %s",
		t.rs.Style.Render(glyph), t.rs.Style.Render(bar), t.current, t.total, t.label)
	if t.message != "" {
		line += " " + t.message
	}
	return strings.TrimRight(line, " ")
}

// renderBar draws a fixed-width progress bar
func renderBar(filled, empty string, width int, current, total int64) string {
	done := 0
	if total > 0 {
		done = int(int64(width) * current / total)
	}
	if done > width {
		done = width
	}
	return "[" + strings.Repeat(filled, done) + strings.Repeat(empty, width-done) + "]"
}

// progressBar is the shared bar used by the one-shot Progressf component
func progressBar(th theme.Theme, caps terminal.Capabilities, current, total int64) string {
	filled, empty := style.ProgressGlyphs(th, caps)
	return renderBar(filled, empty, th.ProgressBarWidth(), current, total)
}

// Update sets the progress value and optional message. Out-of-range values
// are clamped, not rejected. Only meaningful on the Progress variant.
func (t *Transient) Update(current int64, message string) error {
	t.mu.Lock()
	if t.state != stateRunning {
		t.mu.Unlock()
		return errors.New(errors.ErrTransientDone, "transient already finished")
	}
	if t.kind != theme.KindProgress {
		t.mu.Unlock()
		return errors.New(errors.ErrInvalidInput, "update applies to progress components only")
	}

	if current < 0 {
		current = 0
	}
	if current > t.total {
		current = t.total
	}
	t.current = current
	if message != "" {
		t.message = message
	}
	t.mu.Unlock()

	// Repaint immediately rather than waiting for the next tick
	t.c.mu.Lock()
	t.c.repaintLineLocked(t.frameLine())
	t.c.mu.Unlock()
	return nil
}

// Stop finalizes the transient: the refresh goroutine is joined, the
// animated line is erased, and when finalMessage is non-empty a permanent
// component of the given kind is rendered in its place. No animation
// artifacts survive.
func (t *Transient) Stop(finalMessage string, kind theme.ComponentKind) error {
	return t.finish(stateFinalized, finalMessage, kind)
}

// Cancel erases the transient without replacement text, for when the
// enclosing operation is aborted
func (t *Transient) Cancel() error {
	return t.finish(stateCancelled, "", theme.KindInfo)
}

func (t *Transient) finish(target transientState, msg string, kind theme.ComponentKind) error {
	t.mu.Lock()
	if t.state != stateRunning {
		t.mu.Unlock()
		return errors.New(errors.ErrTransientDone, "transient already finished")
	}
	t.state = target
	t.mu.Unlock()

	// Join the refresh goroutine before touching the terminal: after this
	// point no repaint can race a subsequent render.
	t.cancelFn()
	<-t.done

	c := t.c
	c.mu.Lock()
	defer c.mu.Unlock()

	c.eraseLineLocked()
	if c.transient == t {
		c.transient = nil
	}
	// The erased line is vacant; the replacement (or whatever renders
	// next) takes its place without extra spacing.
	c.hasLast = false

	c.log.Debug().Stringer("kind", t.kind).Bool("cancelled", target == stateCancelled).Msg("transient finished")

	if target == stateFinalized && msg != "" {
		return c.renderLocked(kind, c.messageBody(kind, msg))
	}
	return nil
}

// interruptTransient erases any active transient so a permanent component
// is never interleaved inside an animated block
func (c *Compositor) interruptTransient() {
	c.mu.Lock()
	t := c.transient
	c.mu.Unlock()

	if t != nil {
		_ = t.Cancel()
	}
}
