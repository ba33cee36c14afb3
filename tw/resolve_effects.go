package tw

import (
	"strings"

	"github.com/agiangrant/twconv/theme"
)

var blendModes = map[string]string{
	"normal": "normal", "multiply": "multiply", "screen": "screen", "overlay": "overlay",
	"darken": "darken", "lighten": "lighten", "color-dodge": "color-dodge", "color-burn": "color-burn",
	"hard-light": "hard-light", "soft-light": "soft-light", "difference": "difference",
	"exclusion": "exclusion", "hue": "hue", "saturation": "saturation", "color": "color",
	"luminosity": "luminosity", "plus-darker": "plus-darker", "plus-lighter": "plus-lighter",
}

func registerEffects(r *Registry) {
	r.Register("shadow", resolveShadow)
	r.Register("blur", blurResolver(PropLayerBlur))
	r.Register("backdrop-blur", blurResolver(PropBackgroundBlur))
	r.Register("opacity", resolveOpacity)
	r.keywords("mix-blend", PropBlendMode, blendModes)
}

func resolveShadow(u Utility, th *theme.Theme) (ParsedStyle, bool) {
	if u.Value == "none" {
		return single(PropShadow, Value{Kind: KindShadow, Shadows: []Shadow{}}, VariantPreset), true
	}
	if layers, ok := th.Shadow(u.Value); ok {
		shadows, ok := themeShadows(layers)
		if !ok {
			return ParsedStyle{}, false
		}
		return single(PropShadow, Value{Kind: KindShadow, Shadows: shadows}, VariantPreset), true
	}
	if ref, _, ok := customProperty(u.Value); ok {
		return single(PropShadow, keyword(ref), VariantCustomProperty), true
	}
	if content, _, ok := arbitrary(u.Value); ok {
		shadows, ok := ParseShadow(content)
		if !ok {
			return ParsedStyle{}, false
		}
		return single(PropShadow, Value{Kind: KindShadow, Shadows: shadows}, VariantArbitrary), true
	}
	return ParsedStyle{}, false
}

func themeShadows(layers []theme.ShadowLayer) ([]Shadow, bool) {
	out := make([]Shadow, 0, len(layers))
	for _, l := range layers {
		c, ok := ParseColor(l.Color)
		if !ok {
			return nil, false
		}
		out = append(out, Shadow{X: l.X, Y: l.Y, Blur: l.Blur, Spread: l.Spread, Color: c, Inset: l.Inset})
	}
	return out, true
}

// ParseShadow parses a CSS box-shadow list.
// "0 4px 6px -1px rgba(0,0,0,0.1), inset 0 1px #fff" → two layers.
// Colorless layers default to black at 10%.
func ParseShadow(s string) ([]Shadow, bool) {
	layers, ok := splitTopLevel(s, ',')
	if !ok {
		return nil, false
	}
	out := make([]Shadow, 0, len(layers))
	for _, layer := range layers {
		sh, ok := parseShadowLayer(strings.TrimSpace(layer))
		if !ok {
			return nil, false
		}
		out = append(out, sh)
	}
	return out, len(out) > 0
}

func parseShadowLayer(s string) (Shadow, bool) {
	sh := Shadow{Color: Color{A: 0.1}}
	var lengths []float64
	colored := false
	for _, tok := range fieldsTopLevel(s) {
		if tok == "inset" {
			sh.Inset = true
			continue
		}
		if n, unit, ok := parseLength(tok, nil); ok && (unit == "" || unit == "px") {
			lengths = append(lengths, n)
			continue
		}
		c, ok := ParseColor(tok)
		if !ok || colored {
			return Shadow{}, false
		}
		sh.Color, colored = c, true
	}
	if len(lengths) < 2 || len(lengths) > 4 {
		return Shadow{}, false
	}
	sh.X, sh.Y = lengths[0], lengths[1]
	if len(lengths) > 2 {
		sh.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		sh.Spread = lengths[3]
	}
	return sh, sh.Blur >= 0
}

// fieldsTopLevel splits on spaces outside parentheses.
func fieldsTopLevel(s string) []string {
	var out []string
	depth, start := 0, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ' ' && depth == 0:
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func blurResolver(prop Property) ResolverFunc {
	return func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		if px, ok := th.Blur(u.Value); ok {
			return single(prop, number(px, "px"), VariantPreset), true
		}
		if ref, _, ok := customProperty(u.Value); ok {
			return single(prop, keyword(ref), VariantCustomProperty), true
		}
		if content, _, ok := arbitrary(u.Value); ok {
			n, unit, ok := parseLength(content, th)
			if !ok || (unit != "" && unit != "px") || n < 0 {
				return ParsedStyle{}, false
			}
			return single(prop, number(n, "px"), VariantArbitrary), true
		}
		return ParsedStyle{}, false
	}
}

// resolveOpacity maps opacity-50 to 0.5. Arbitrary values are fractions
// or percentages.
func resolveOpacity(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
	if n, ok := parseNumber(u.Value); ok && n >= 0 && n <= 100 {
		return single(PropOpacity, number(round4(n/100), ""), VariantPreset), true
	}
	if ref, _, ok := customProperty(u.Value); ok {
		return single(PropOpacity, keyword(ref), VariantCustomProperty), true
	}
	if content, _, ok := arbitrary(u.Value); ok {
		if a, ok := parseAlpha(content); ok {
			return single(PropOpacity, number(a, ""), VariantArbitrary), true
		}
	}
	return ParsedStyle{}, false
}
