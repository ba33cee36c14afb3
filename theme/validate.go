package theme

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
)

var (
	// ErrInvalidPreset is returned when a merged preset fails schema validation.
	ErrInvalidPreset = zerr.New("invalid theme preset")

	// ErrUnsupportedFormat is returned when a preset file has an unknown extension.
	ErrUnsupportedFormat = zerr.New("unsupported theme file format")
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	hexPattern      = regexp.MustCompile(`^#(?:[0-9a-f]{6}|[0-9a-f]{8})$`)
	modifierPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	colorKeywords   = map[string]struct{}{"transparent": {}, "current": {}, "inherit": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// Colors are normalized before validation, so only the canonical
		// lowercase forms need to be accepted here.
		_ = v.RegisterValidation("palette_color", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if _, ok := colorKeywords[s]; ok {
				return true
			}
			return hexPattern.MatchString(s)
		})

		_ = v.RegisterValidation("modifier_name", func(fl validator.FieldLevel) bool {
			return modifierPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a preset against the per-category schema. It is run once
// by New so lookups never need to re-check values.
func Validate(p Preset) error {
	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}
	for name := range p.Layout.Breakpoints {
		if slicesContains(p.Layout.States, name) {
			return zerr.With(zerr.Wrap(errors.New("state name collides with a breakpoint"), ErrInvalidPreset.Error()), "name", name)
		}
	}
	return nil
}

func slicesContains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return zerr.Wrap(err, ErrInvalidPreset.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	sort.Strings(msgs)
	return zerr.With(zerr.Wrap(errors.New(strings.Join(msgs, "; ")), ErrInvalidPreset.Error()), "fields", len(msgs))
}

// normalizeColors rewrites palette and shadow colors to lowercase #rrggbb or
// #rrggbbaa so reverse lookups can compare strings directly. Values that are
// not recognizable are left untouched for Validate to reject.
func normalizeColors(p *Preset) {
	if p.Colors != nil {
		colors := make(map[string]string, len(p.Colors))
		for k, v := range p.Colors {
			colors[k] = NormalizeHex(v)
		}
		p.Colors = colors
	}
	if p.Effects.Shadow != nil {
		shadows := make(map[string][]ShadowLayer, len(p.Effects.Shadow))
		for k, layers := range p.Effects.Shadow {
			out := make([]ShadowLayer, len(layers))
			for i, l := range layers {
				l.Color = NormalizeHex(l.Color)
				out[i] = l
			}
			shadows[k] = out
		}
		p.Effects.Shadow = shadows
	}
}

// NormalizeHex lowercases a hex color and expands #rgb / #rgba shorthands.
// Keywords and other strings are returned lowercased and trimmed.
func NormalizeHex(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		return s
	}
	h := s[1:]
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < len(h); i++ {
			b.WriteByte(h[i])
			b.WriteByte(h[i])
		}
		s = b.String()
	}
	if len(s) == 9 && strings.HasSuffix(s, "ff") {
		s = s[:7]
	}
	return s
}
