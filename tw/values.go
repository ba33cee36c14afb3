package tw

import (
	"math"
	"strconv"
	"strings"

	"github.com/agiangrant/twconv/theme"
)

// arbitrary extracts the content of a "[...]" value. Underscores become
// spaces except inside url(). A type hint ("length:") is split off.
// "[calc(100%_-_2rem)]" → "calc(100% - 2rem)"
func arbitrary(v string) (content, hint string, ok bool) {
	if len(v) < 3 || v[0] != '[' || v[len(v)-1] != ']' {
		return "", "", false
	}
	inner := v[1 : len(v)-1]
	if _, balanced := splitTopLevel(inner, 0); !balanced {
		return "", "", false
	}
	hint, inner = splitHint(inner)
	if strings.HasPrefix(inner, "url(") {
		return inner, hint, true
	}
	return strings.ReplaceAll(inner, "_", " "), hint, inner != ""
}

// customProperty reads "(--brand)" as "var(--brand)".
func customProperty(v string) (ref, hint string, ok bool) {
	if len(v) < 4 || v[0] != '(' || v[len(v)-1] != ')' {
		return "", "", false
	}
	hint, name := splitHint(v[1 : len(v)-1])
	if !strings.HasPrefix(name, "--") || len(name) == 2 || strings.ContainsAny(name, " ()[]") {
		return "", "", false
	}
	return "var(" + name + ")", hint, true
}

var typeHints = map[string]bool{
	"length": true, "color": true, "percentage": true, "number": true, "url": true, "image": true,
	"family-name": true, "weight": true, "line-width": true, "size": true, "position": true,
}

func splitHint(s string) (hint, rest string) {
	if i := strings.IndexByte(s, ':'); i > 0 && typeHints[s[:i]] {
		return s[:i], s[i+1:]
	}
	return "", s
}

// parseNumber parses a plain decimal. NaN, Inf and explicit "+" are rejected.
func parseNumber(s string) (float64, bool) {
	if s == "" || s[0] == '+' {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// parseScaleStep accepts non-negative multiples of 0.25 such as "4" or "2.5".
func parseScaleStep(s string) (float64, bool) {
	if strings.ContainsAny(s, "eE") {
		return 0, false
	}
	n, ok := parseNumber(s)
	if !ok || n < 0 {
		return 0, false
	}
	if q := n * 4; math.Abs(q-math.Round(q)) > 1e-9 {
		return 0, false
	}
	return n, true
}

// parseInteger accepts a plain base-10 integer.
func parseInteger(s string) (int, bool) {
	if s == "" || s[0] == '+' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// parseFraction reads "1/2" as 50 (percent).
func parseFraction(s string) (float64, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, false
	}
	a, okA := parseInteger(num)
	b, okB := parseInteger(den)
	if !okA || !okB || b <= 0 || a < 0 {
		return 0, false
	}
	return float64(a) / float64(b) * 100, true
}

// lengthUnits is ordered so longer suffixes match first.
var lengthUnits = []string{"rem", "em", "px", "%", "dvh", "svh", "lvh", "dvw", "vw", "vh", "ch", "ex", "pt", "fr"}

// parseLength parses a CSS length. rem converts to px at the theme's root
// size (16 when th is nil); other units are kept. A bare number returns
// unit "".
// "2rem" → 32 "px", "50%" → 50 "%", "320" → 320 "".
func parseLength(s string, th *theme.Theme) (float64, string, bool) {
	s = strings.TrimSpace(s)
	for _, u := range lengthUnits {
		numStr, ok := strings.CutSuffix(s, u)
		if !ok {
			continue
		}
		n, ok := parseNumber(numStr)
		if !ok {
			return 0, "", false
		}
		if u == "rem" {
			root := 16.0
			if th != nil {
				root = th.RootSize()
			}
			return n * root, "px", true
		}
		return n, u, true
	}
	n, ok := parseNumber(s)
	return n, "", ok
}

// parseDegrees parses an angle with deg, turn, rad or no unit.
func parseDegrees(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, "deg"):
		return parseNumber(strings.TrimSuffix(s, "deg"))
	case strings.HasSuffix(s, "turn"):
		n, ok := parseNumber(strings.TrimSuffix(s, "turn"))
		return n * 360, ok
	case strings.HasSuffix(s, "rad"):
		n, ok := parseNumber(strings.TrimSuffix(s, "rad"))
		return n * 180 / math.Pi, ok
	}
	return parseNumber(s)
}

// parseDuration parses "500ms", "1.5s" or a bare millisecond count.
func parseDuration(s string) (float64, bool) {
	if n, ok := strings.CutSuffix(s, "ms"); ok {
		return parseNumber(n)
	}
	if n, ok := strings.CutSuffix(s, "s"); ok {
		v, ok := parseNumber(n)
		return v * 1000, ok
	}
	return parseNumber(s)
}

// lengthValue resolves an arbitrary length for prop, applying the implicit
// px unit where the property allows it. Non-numeric content is kept raw.
func lengthValue(prop Property, content string, th *theme.Theme) Value {
	n, unit, ok := parseLength(content, th)
	if !ok {
		return keyword(content)
	}
	if unit == "" && pixelProperties[prop] {
		unit = "px"
	}
	return number(n, unit)
}

// spacingExpr renders the calc() form for a scale step.
func spacingExpr(step float64) string {
	return "calc(var(--spacing) * " + formatNum(step) + ")"
}

// negate flips the sign of a resolved value. Strings are wrapped in calc().
func negate(v Value) Value {
	switch v.Kind {
	case KindNumber:
		v.Num = -v.Num
	case KindString:
		v.Str = "calc(" + v.Str + " * -1)"
	}
	return v
}

// scaleOptions configures resolveScale for a family.
type scaleOptions struct {
	prop      Property
	literals  map[string]Value
	fractions bool
	named     func(string) (float64, bool)
	numeric   bool
	negative  bool
}

// resolveScale applies the shared precedence: literal, numeric step,
// fraction, named scale, custom property, arbitrary. Negative values keep
// their calc() form so "-translate-x-4" emits calc(var(--spacing) * -4).
func resolveScale(v string, th *theme.Theme, o scaleOptions) (Value, Variant, bool) {
	val, variant, ok := resolveScaleUnsigned(v, th, o)
	if !ok || !o.negative {
		return val, variant, ok
	}
	if val.Kind == KindString && val.Str == "auto" {
		return Value{}, 0, false
	}
	val = negate(val)
	if val.Expr != "" {
		val.Expr = spacingExpr(val.Num / th.SpacingUnit())
	}
	return val, variant, true
}

func resolveScaleUnsigned(v string, th *theme.Theme, o scaleOptions) (Value, Variant, bool) {
	if lit, ok := o.literals[v]; ok {
		return lit, VariantPreset, true
	}
	if o.numeric {
		if n, ok := parseScaleStep(v); ok {
			val := number(n*th.SpacingUnit(), "px")
			val.Expr = spacingExpr(n)
			return val, VariantPreset, true
		}
	}
	if o.fractions {
		if pct, ok := parseFraction(v); ok {
			return number(round4(pct), "%"), VariantPreset, true
		}
	}
	if o.named != nil {
		if n, ok := o.named(v); ok {
			return number(n, "px"), VariantPreset, true
		}
	}
	if ref, _, ok := customProperty(v); ok {
		return keyword(ref), VariantCustomProperty, true
	}
	if content, _, ok := arbitrary(v); ok {
		return lengthValue(o.prop, content, th), VariantArbitrary, true
	}
	return Value{}, 0, false
}
