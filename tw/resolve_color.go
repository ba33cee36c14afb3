package tw

import (
	"math"
	"strings"

	"github.com/agiangrant/twconv/theme"
)

// gradientDirections maps direction suffixes to CSS angles.
var gradientDirections = map[string]float64{
	"to-t": 0, "to-tr": 45, "to-r": 90, "to-br": 135,
	"to-b": 180, "to-bl": 225, "to-l": 270, "to-tl": 315,
}

func registerColor(r *Registry) {
	r.Register("bg", resolveBackground)
	r.RegisterSigned("bg-linear", resolveLinear)
	r.Register("bg-gradient", func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		deg, ok := gradientDirections[u.Value]
		if !ok {
			return ParsedStyle{}, false
		}
		return single(PropGradient, number(deg, "deg"), VariantPreset), true
	})
	r.Register("bg-radial", func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		if u.Value != "" {
			return ParsedStyle{}, false
		}
		return single(PropGradient, keyword("radial"), VariantPreset), true
	})
	r.Register("from", gradientStop(PropGradientFrom, PropGradientFromStop))
	r.Register("via", gradientStop(PropGradientVia, PropGradientViaStop))
	r.Register("to", gradientStop(PropGradientTo, PropGradientToStop))
}

// colorValue resolves a palette name, keyword, custom property or
// arbitrary color, with an optional /opacity suffix.
// "blue-500/50" → blue-500 at alpha 0.5
// "[#1da1f2]/[0.375]" → #1da1f2 at alpha 0.375
func colorValue(v string, th *theme.Theme) (Value, Variant, bool) {
	base, alpha, ok := splitOpacity(v)
	if !ok {
		return Value{}, 0, false
	}

	var (
		val     Value
		variant = VariantPreset
	)
	switch base {
	case "inherit":
		val = keyword("inherit")
	case "current":
		val = keyword("currentColor")
	default:
		if hex, ok := th.Color(base); ok {
			c, ok := paletteColor(hex)
			if !ok {
				return Value{}, 0, false
			}
			val = c
			break
		}
		if ref, hint, ok := customProperty(base); ok && (hint == "" || hint == "color") {
			val, variant = keyword(ref), VariantCustomProperty
			break
		}
		content, hint, ok := arbitrary(base)
		if !ok || (hint != "" && hint != "color") {
			return Value{}, 0, false
		}
		c, ok := ParseColor(content)
		switch {
		case ok:
			val, variant = Value{Kind: KindColor, Color: c}, VariantArbitrary
		case hint == "color":
			// [color:var(--x)] and other expressions only a browser can evaluate.
			val, variant = keyword(content), VariantArbitrary
		default:
			return Value{}, 0, false
		}
	}

	if alpha < 1 {
		switch val.Kind {
		case KindColor:
			val.Color = val.Color.WithAlpha(alpha)
		case KindString:
			val.Str = "color-mix(in oklab, " + val.Str + " " + formatNum(alpha*100) + "%, transparent)"
		}
	}
	return val, variant, true
}

func paletteColor(v string) (Value, bool) {
	switch v {
	case "current":
		return keyword("currentColor"), true
	case "inherit":
		return keyword("inherit"), true
	}
	c, ok := ParseColor(v)
	if !ok {
		return Value{}, false
	}
	return Value{Kind: KindColor, Color: c}, true
}

// splitOpacity separates a trailing /50 or /[0.375] outside brackets.
func splitOpacity(v string) (base string, alpha float64, ok bool) {
	depth := 0
	slash := -1
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case '/':
			if depth == 0 {
				slash = i
			}
		}
	}
	if slash < 0 {
		return v, 1, true
	}
	base, suffix := v[:slash], v[slash+1:]
	if n, ok := parseNumber(suffix); ok && n >= 0 && n <= 100 {
		return base, n / 100, true
	}
	if content, _, ok := arbitrary(suffix); ok {
		if a, ok := parseAlpha(content); ok {
			return base, a, true
		}
	}
	return "", 0, false
}

func resolveBackground(u Utility, th *theme.Theme) (ParsedStyle, bool) {
	if u.Value == "" {
		return ParsedStyle{}, false
	}
	if v, variant, ok := colorValue(u.Value, th); ok {
		return single(PropFill, v, variant), true
	}
	content, hint, ok := arbitrary(u.Value)
	if !ok {
		return ParsedStyle{}, false
	}
	if p, ok := ParseGradient(content); ok {
		return single(PropFill, Value{Kind: KindPaint, Paint: &p}, VariantArbitrary), true
	}
	if hint == "" || hint == "image" || hint == "url" {
		return single(PropFill, keyword(content), VariantArbitrary), true
	}
	return ParsedStyle{}, false
}

// resolveLinear handles bg-linear-to-r, bg-linear-45 and bg-linear-[25deg].
func resolveLinear(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
	if deg, ok := gradientDirections[u.Value]; ok && !u.Negative {
		return single(PropGradient, number(deg, "deg"), VariantPreset), true
	}
	var (
		deg     float64
		variant = VariantPreset
		ok      bool
	)
	if n, isInt := parseInteger(u.Value); isInt && n >= 0 {
		deg, ok = float64(n), true
	} else if content, _, isArb := arbitrary(u.Value); isArb {
		deg, ok = parseDegrees(content)
		variant = VariantArbitrary
	}
	if !ok {
		return ParsedStyle{}, false
	}
	if u.Negative {
		deg = -deg
	}
	return single(PropGradient, number(normalizeAngle(deg), "deg"), variant), true
}

// gradientStop handles from-red-500, via-[#fff] and from-10%.
func gradientStop(colorProp, stopProp Property) ResolverFunc {
	return func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "" {
			return ParsedStyle{}, false
		}
		if pct, ok := strings.CutSuffix(u.Value, "%"); ok {
			if n, ok := parseNumber(pct); ok && n >= 0 && n <= 100 {
				return single(stopProp, number(n, "%"), VariantPreset), true
			}
		}
		if content, hint, ok := arbitrary(u.Value); ok && (hint == "" || hint == "percentage" || hint == "length") {
			if n, unit, ok := parseLength(content, th); ok && unit == "%" {
				return single(stopProp, number(n, "%"), VariantArbitrary), true
			}
		}
		v, variant, ok := colorValue(u.Value, th)
		if !ok {
			return ParsedStyle{}, false
		}
		return single(colorProp, v, variant), true
	}
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ParseGradient parses "linear-gradient(90deg, #fff 0%, #000 100%)" and
// "radial-gradient(#fff, #000)". Stops without positions are spread evenly.
func ParseGradient(s string) (Paint, bool) {
	s = strings.TrimSpace(s)
	var p Paint
	var args string
	switch {
	case strings.HasPrefix(s, "linear-gradient(") && strings.HasSuffix(s, ")"):
		p = Paint{Type: PaintLinearGradient, Angle: 180}
		args = s[len("linear-gradient(") : len(s)-1]
	case strings.HasPrefix(s, "radial-gradient(") && strings.HasSuffix(s, ")"):
		p = Paint{Type: PaintRadialGradient}
		args = s[len("radial-gradient(") : len(s)-1]
	default:
		return Paint{}, false
	}

	parts, ok := splitTopLevel(args, ',')
	if !ok || len(parts) == 0 {
		return Paint{}, false
	}
	first := strings.TrimSpace(parts[0])
	if p.Type == PaintLinearGradient {
		if deg, ok := parseDegrees(first); ok && strings.HasSuffix(first, "deg") {
			p.Angle = normalizeAngle(deg)
			parts = parts[1:]
		} else if deg, ok := gradientDirections[directionKey(first)]; ok {
			p.Angle = deg
			parts = parts[1:]
		}
	}
	if len(parts) < 2 {
		return Paint{}, false
	}

	positioned := make([]bool, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		colorStr, posStr := part, ""
		if j := lastTopLevelSpace(part); j > 0 {
			colorStr, posStr = strings.TrimSpace(part[:j]), part[j+1:]
		}
		c, ok := ParseColor(colorStr)
		if !ok {
			return Paint{}, false
		}
		stop := GradientStop{Color: c}
		if posStr != "" {
			n, unit, ok := parseLength(posStr, nil)
			if !ok || unit != "%" {
				return Paint{}, false
			}
			stop.Position = n / 100
			positioned[i] = true
		}
		p.Stops = append(p.Stops, stop)
	}
	for i := range p.Stops {
		if !positioned[i] {
			p.Stops[i].Position = float64(i) / float64(len(p.Stops)-1)
		}
	}
	return p, true
}

// directionKey turns "to right" into "to-r".
func directionKey(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 2 || fields[0] != "to" {
		return ""
	}
	key := "to-"
	for _, f := range fields[1:] {
		if f == "" {
			continue
		}
		key += f[:1]
	}
	return key
}

func lastTopLevelSpace(s string) int {
	depth, idx := 0, -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				idx = i
			}
		}
	}
	return idx
}
