package theme

import (
	"github.com/arthur-debert/clicycle/pkg/errors"
)

// StyleSpec holds the visual attributes for one component kind.
//
// Color is a named color from the palette (see pkg/style) or empty for no
// color. Glyph is the prefix drawn before the component's text. Spacing
// values are the blank lines the component wants around itself; the
// compositor combines adjacent values with a max-of-two rule.
type StyleSpec struct {
	Color         string `yaml:"color" toml:"color"`
	Glyph         string `yaml:"glyph" toml:"glyph"`
	Indent        int    `yaml:"indent" toml:"indent" validate:"gte=0"`
	SpacingBefore int    `yaml:"spacing_before" toml:"spacing_before" validate:"gte=0"`
	SpacingAfter  int    `yaml:"spacing_after" toml:"spacing_after" validate:"gte=0"`
}

// Theme is an immutable set of style rules covering every ComponentKind,
// plus the glyph sequences used by animated components.
type Theme struct {
	name   string
	styles map[ComponentKind]StyleSpec

	// Animation glyphs. ASCII variants are substituted by the style
	// resolver when the output stream cannot render unicode.
	spinnerFrames      []string
	spinnerFramesASCII []string
	progressFilled     string
	progressEmpty      string
	progressBarWidth   int
}

// Option customizes a Theme at construction time
type Option func(*Theme)

// WithSpinnerFrames overrides the spinner glyph sequence
func WithSpinnerFrames(frames []string) Option {
	return func(t *Theme) {
		if len(frames) > 0 {
			t.spinnerFrames = append([]string(nil), frames...)
		}
	}
}

// WithProgressGlyphs overrides the progress bar fill glyphs
func WithProgressGlyphs(filled, empty string) Option {
	return func(t *Theme) {
		t.progressFilled = filled
		t.progressEmpty = empty
	}
}

// New builds a Theme from a complete kind-to-spec mapping. Every recognized
// ComponentKind must have an entry; a missing entry is a construction error,
// never a silent fallback at render time.
func New(name string, styles map[ComponentKind]StyleSpec, opts ...Option) (Theme, error) {
	copied := make(map[ComponentKind]StyleSpec, len(styles))
	for k, v := range styles {
		if !k.Valid() {
			return Theme{}, errors.Newf(errors.ErrThemeInvalid,
				"theme %q styles unrecognized kind %d", name, int(k))
		}
		copied[k] = v
	}

	t := Theme{
		name:               name,
		styles:             copied,
		spinnerFrames:      defaultSpinnerFrames(),
		spinnerFramesASCII: asciiSpinnerFrames,
		progressFilled:     defaultProgressFilled,
		progressEmpty:      defaultProgressEmpty,
		progressBarWidth:   defaultProgressBarWidth,
	}
	for _, opt := range opts {
		opt(&t)
	}

	if err := t.validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func (t Theme) validate() error {
	for _, k := range Kinds() {
		if _, ok := t.styles[k]; !ok {
			return errors.Newf(errors.ErrThemeInvalid,
				"theme %q is missing a style for component kind %q", t.name, k)
		}
	}
	if len(t.spinnerFrames) == 0 || len(t.spinnerFramesASCII) == 0 {
		return errors.Newf(errors.ErrThemeInvalid,
			"theme %q has an empty spinner frame sequence", t.name)
	}
	return nil
}

// Validate checks the construction invariants: every recognized kind has a
// StyleSpec and the animation sequences are non-empty. Themes built through
// New are always valid; this guards against zero-value Themes.
func (t Theme) Validate() error {
	return t.validate()
}

// Name returns the theme's name
func (t Theme) Name() string {
	return t.name
}

// Spec returns the StyleSpec for the given kind. Theme construction
// guarantees an entry exists for every valid kind.
func (t Theme) Spec(kind ComponentKind) StyleSpec {
	return t.styles[kind]
}

// SpinnerFrames returns the spinner glyph cycle
func (t Theme) SpinnerFrames() []string {
	return append([]string(nil), t.spinnerFrames...)
}

// SpinnerFramesASCII returns the ASCII-safe spinner glyph cycle
func (t Theme) SpinnerFramesASCII() []string {
	return append([]string(nil), t.spinnerFramesASCII...)
}

// ProgressGlyphs returns the filled and empty progress bar glyphs
func (t Theme) ProgressGlyphs() (filled, empty string) {
	return t.progressFilled, t.progressEmpty
}

// ProgressBarWidth returns the width of the progress bar in cells
func (t Theme) ProgressBarWidth() int {
	return t.progressBarWidth
}
