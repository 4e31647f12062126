package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/clicycle/pkg/errors"
)

// themeFile is the declarative wire format for user-defined themes. The
// components map must name every recognized component kind.
type themeFile struct {
	Name       string               `yaml:"name" toml:"name" validate:"required"`
	Components map[string]StyleSpec `yaml:"components" toml:"components" validate:"required,dive"`

	SpinnerFrames []string `yaml:"spinner_frames" toml:"spinner_frames"`
	Progress      struct {
		Filled string `yaml:"filled" toml:"filled"`
		Empty  string `yaml:"empty" toml:"empty"`
	} `yaml:"progress" toml:"progress"`
}

var validate = validator.New()

// Load reads a theme definition from path, choosing the format from the
// file extension (.yaml/.yml or .toml)
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrapf(err, errors.ErrThemeLoad, "reading theme file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".toml":
		return LoadTOML(data)
	default:
		return Theme{}, errors.Newf(errors.ErrThemeLoad,
			"unsupported theme file extension %q", filepath.Ext(path))
	}
}

// LoadYAML parses a YAML theme definition
func LoadYAML(data []byte) (Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, errors.Wrap(err, errors.ErrThemeLoad, "parsing YAML theme")
	}
	return fromFile(file)
}

// LoadTOML parses a TOML theme definition
func LoadTOML(data []byte) (Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Theme{}, errors.Wrap(err, errors.ErrThemeLoad, "parsing TOML theme")
	}
	return fromFile(file)
}

func fromFile(file themeFile) (Theme, error) {
	if err := validate.Struct(file); err != nil {
		return Theme{}, errors.Wrap(err, errors.ErrThemeLoad, "invalid theme definition")
	}

	specs := make(map[ComponentKind]StyleSpec, len(file.Components))
	for name, spec := range file.Components {
		kind, err := ParseKind(name)
		if err != nil {
			return Theme{}, errors.Wrapf(err, errors.ErrThemeLoad, "theme %q", file.Name)
		}
		specs[kind] = spec
	}

	var opts []Option
	if len(file.SpinnerFrames) > 0 {
		opts = append(opts, WithSpinnerFrames(file.SpinnerFrames))
	}
	if file.Progress.Filled != "" && file.Progress.Empty != "" {
		opts = append(opts, WithProgressGlyphs(file.Progress.Filled, file.Progress.Empty))
	}

	return New(file.Name, specs, opts...)
}
