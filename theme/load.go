package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// filePreset mirrors Preset but accepts nested color tables such as
//
//	[colors.brand]
//	500 = "#1da1f2"
//
// which flatten to "brand-500".
type filePreset struct {
	Name       string                     `toml:"name" yaml:"name"`
	Version    string                     `toml:"version" yaml:"version"`
	Spacing    SpacingPreset              `toml:"spacing" yaml:"spacing"`
	Colors     map[string]any             `toml:"colors" yaml:"colors"`
	Typography TypographyPreset           `toml:"typography" yaml:"typography"`
	Effects    EffectsPreset              `toml:"effects" yaml:"effects"`
	Layout     LayoutPreset               `toml:"layout" yaml:"layout"`
	Animation  map[string]AnimationPreset `toml:"animation" yaml:"animation"`
}

// Load reads an override preset from a .toml, .yaml or .yml file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read theme file"), "path", path)
	}
	p, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return p, nil
}

// Decode parses preset bytes. ext selects the format (".toml", ".yaml", ".yml").
func Decode(data []byte, ext string) (*Preset, error) {
	var fp filePreset
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &fp); err != nil {
			return nil, zerr.Wrap(err, "failed to parse TOML theme")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fp); err != nil {
			return nil, zerr.Wrap(err, "failed to parse YAML theme")
		}
	default:
		return nil, zerr.With(ErrUnsupportedFormat, "ext", ext)
	}

	colors, err := flattenColors(fp.Colors)
	if err != nil {
		return nil, err
	}
	return &Preset{
		Name:       fp.Name,
		Version:    fp.Version,
		Spacing:    fp.Spacing,
		Colors:     colors,
		Typography: fp.Typography,
		Effects:    fp.Effects,
		Layout:     fp.Layout,
		Animation:  fp.Animation,
	}, nil
}

func flattenColors(in map[string]any) (map[string]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]string)
	var walk func(prefix string, v any) error
	walk = func(prefix string, v any) error {
		switch val := v.(type) {
		case string:
			out[prefix] = val
		case map[string]any:
			for k, child := range val {
				if err := walk(joinColorKey(prefix, k), child); err != nil {
					return err
				}
			}
		case map[any]any:
			for k, child := range val {
				if err := walk(joinColorKey(prefix, fmt.Sprint(k)), child); err != nil {
					return err
				}
			}
		default:
			return zerr.With(zerr.Wrap(errors.New("color value must be a string or table"), ErrInvalidPreset.Error()), "color", prefix)
		}
		return nil
	}
	for k, v := range in {
		if err := walk(k, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// joinColorKey treats DEFAULT as the bare palette name.
func joinColorKey(prefix, key string) string {
	if key == "DEFAULT" {
		return prefix
	}
	return prefix + "-" + key
}

// Encode writes p as TOML with deterministic key order.
func Encode(w io.Writer, p Preset) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(p); err != nil {
		return zerr.Wrap(err, "failed to encode theme")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Summary returns one line per category with its key count, for logs and
// the CLI.
func (t *Theme) Summary() []string {
	counts := map[string]int{
		"colors":      len(t.colors),
		"spacing":     len(t.spacing),
		"font_size":   len(t.fontSize),
		"font_weight": len(t.fontWeight),
		"radius":      len(t.radius),
		"shadow":      len(t.shadow),
		"blur":        len(t.blur),
		"breakpoints": len(t.breakpoints),
		"states":      len(t.states),
		"animation":   len(t.animation),
	}
	lines := make([]string, 0, len(counts))
	for k, v := range counts {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v))
	}
	sort.Strings(lines)
	return lines
}
