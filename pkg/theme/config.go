package theme

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/graphics"
)

// fileConfig mirrors the optional theme.yaml layout. Colors are hex strings
// ("#RRGGBB" or "#AARRGGBB"); omitted fields keep their defaults.
type fileConfig struct {
	Colors struct {
		Face         string `yaml:"face,omitempty"`
		FaceSelected string `yaml:"faceSelected,omitempty"`
		FaceDisabled string `yaml:"faceDisabled,omitempty"`
		Mark         string `yaml:"mark,omitempty"`
		Text         string `yaml:"text,omitempty"`
		TextSelected string `yaml:"textSelected,omitempty"`
		TextDisabled string `yaml:"textDisabled,omitempty"`
		Outline      string `yaml:"outline,omitempty"`
		Focus        string `yaml:"focus,omitempty"`
	} `yaml:"colors"`
	Metrics struct {
		Border  *float64 `yaml:"border,omitempty"`
		BoxSize *float64 `yaml:"boxSize,omitempty"`
	} `yaml:"metrics"`
}

// LoadOptional reads theme data from path if the file exists. A missing file
// yields the defaults; a malformed file yields a KindConfig error.
func LoadOptional(path string) (ThemeData, error) {
	data := DefaultData()

	raw, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return data, nil
		}
		return data, configError("theme.LoadOptional", fmt.Errorf("failed to read %s: %w", path, err))
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return data, configError("theme.LoadOptional", fmt.Errorf("failed to parse %s: %w", path, err))
	}

	if err := applyConfig(&data, &cfg); err != nil {
		return DefaultData(), configError("theme.LoadOptional", err)
	}
	return data, nil
}

func applyConfig(data *ThemeData, cfg *fileConfig) error {
	entries := []struct {
		name string
		src  string
		dst  *graphics.Color
	}{
		{"face", cfg.Colors.Face, &data.Face},
		{"faceSelected", cfg.Colors.FaceSelected, &data.FaceSelected},
		{"faceDisabled", cfg.Colors.FaceDisabled, &data.FaceDisabled},
		{"mark", cfg.Colors.Mark, &data.Mark},
		{"text", cfg.Colors.Text, &data.Text},
		{"textSelected", cfg.Colors.TextSelected, &data.TextSelected},
		{"textDisabled", cfg.Colors.TextDisabled, &data.TextDisabled},
		{"outline", cfg.Colors.Outline, &data.Outline},
		{"focus", cfg.Colors.Focus, &data.Focus},
	}
	for _, e := range entries {
		if e.src == "" {
			continue
		}
		c, err := ParseColor(e.src)
		if err != nil {
			return fmt.Errorf("colors.%s: %w", e.name, err)
		}
		*e.dst = c
	}

	if cfg.Metrics.Border != nil {
		if *cfg.Metrics.Border < 0 {
			return fmt.Errorf("metrics.border: must not be negative")
		}
		data.Border = graphics.EdgeInsetsAll(*cfg.Metrics.Border)
	}
	if cfg.Metrics.BoxSize != nil {
		if *cfg.Metrics.BoxSize <= 0 {
			return fmt.Errorf("metrics.boxSize: must be positive")
		}
		data.BoxSize = *cfg.Metrics.BoxSize
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" into a Color. The form without
// an alpha component is opaque.
func ParseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("invalid color %q: missing '#'", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return graphics.Color(v) | 0xFF000000, nil
	case 8:
		return graphics.Color(v), nil
	}
	return 0, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
}

func configError(op string, err error) error {
	return &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
}
