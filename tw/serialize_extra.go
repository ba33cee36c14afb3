package tw

import (
	"slices"
	"strings"
)

// extraSpec tells the serializer how to spell an untyped value.
type extraSpec struct {
	prefix string
	// hint is the type hint a custom property needs to reach the same
	// property ("text-(length:--size)").
	hint   string
	signed bool
}

var extraSpecs = map[Property]extraSpec{
	PropPaddingTop: {prefix: "pt"}, PropPaddingRight: {prefix: "pr"},
	PropPaddingBottom: {prefix: "pb"}, PropPaddingLeft: {prefix: "pl"},
	PropMarginTop: {prefix: "mt", signed: true}, PropMarginRight: {prefix: "mr", signed: true},
	PropMarginBottom: {prefix: "mb", signed: true}, PropMarginLeft: {prefix: "ml", signed: true},
	PropItemSpacing: {prefix: "gap-x"}, PropCounterAxisSpacing: {prefix: "gap-y"},

	PropWidth: {prefix: "w"}, PropHeight: {prefix: "h"},
	PropMinWidth: {prefix: "min-w"}, PropMinHeight: {prefix: "min-h"},
	PropMaxWidth: {prefix: "max-w"}, PropMaxHeight: {prefix: "max-h"},

	PropFlexGrow: {prefix: "grow"}, PropFlexShrink: {prefix: "shrink"}, PropFlexBasis: {prefix: "basis"},
	PropOrder: {prefix: "order", signed: true}, PropZIndex: {prefix: "z", signed: true},
	PropTop: {prefix: "top", signed: true}, PropRight: {prefix: "right", signed: true},
	PropBottom: {prefix: "bottom", signed: true}, PropLeft: {prefix: "left", signed: true},
	PropAspectRatio: {prefix: "aspect"},
	PropGridColumns: {prefix: "grid-cols"}, PropGridRows: {prefix: "grid-rows"},

	PropRadiusTopLeft: {prefix: "rounded-tl"}, PropRadiusTopRight: {prefix: "rounded-tr"},
	PropRadiusBottomRight: {prefix: "rounded-br"}, PropRadiusBottomLeft: {prefix: "rounded-bl"},
	PropStrokeTop: {prefix: "border-t", hint: "length"}, PropStrokeRight: {prefix: "border-r", hint: "length"},
	PropStrokeBottom: {prefix: "border-b", hint: "length"}, PropStrokeLeft: {prefix: "border-l", hint: "length"},

	PropFill: {prefix: "bg"}, PropTextFill: {prefix: "text"}, PropStrokeColor: {prefix: "border"},
	PropGradientFrom: {prefix: "from"}, PropGradientVia: {prefix: "via"}, PropGradientTo: {prefix: "to"},
	PropGradientFromStop: {prefix: "from"}, PropGradientViaStop: {prefix: "via"}, PropGradientToStop: {prefix: "to"},

	PropFontSize: {prefix: "text", hint: "length"}, PropFontFamily: {prefix: "font", hint: "family-name"},
	PropFontWeight: {prefix: "font"}, PropLineHeight: {prefix: "leading"},
	PropLetterSpacing: {prefix: "tracking", signed: true},

	PropShadow: {prefix: "shadow"}, PropLayerBlur: {prefix: "blur"},
	PropBackgroundBlur: {prefix: "backdrop-blur"}, PropOpacity: {prefix: "opacity"},

	PropTranslateX: {prefix: "translate-x", signed: true}, PropTranslateY: {prefix: "translate-y", signed: true},
	PropRotate: {prefix: "rotate"}, PropScaleX: {prefix: "scale-x"}, PropScaleY: {prefix: "scale-y"},
	PropSkewX: {prefix: "skew-x"}, PropSkewY: {prefix: "skew-y"}, PropOrigin: {prefix: "origin"},

	PropTransitionProperty: {prefix: "transition"}, PropTransitionDuration: {prefix: "duration"},
	PropTransitionDelay: {prefix: "delay"}, PropTransitionTiming: {prefix: "ease"},
	PropAnimation: {prefix: "animate"},
}

// extraLiterals are keyword values a prefix spells by name.
var extraLiterals = map[Property]map[string]string{
	PropZIndex:      {"auto": "auto"},
	PropAspectRatio: {"auto": "auto"},
	PropGridColumns: {"subgrid": "subgrid"},
	PropGridRows:    {"subgrid": "subgrid"},
}

func isColorProperty(p Property) bool {
	switch p {
	case PropFill, PropTextFill, PropStrokeColor, PropGradientFrom, PropGradientVia, PropGradientTo:
		return true
	}
	return false
}

func (s *serializer) extra() {
	for _, p := range discreteProperties {
		if v, ok := s.b.Extra[p]; ok {
			s.emit(s.extraToken(p, v), p)
		}
	}
	var rest []Property
	for p := range s.b.Extra {
		if !slices.Contains(discreteProperties, p) {
			rest = append(rest, p)
		}
	}
	slices.Sort(rest)
	for _, p := range rest {
		s.emit(s.extraToken(p, s.b.Extra[p]), p)
	}
}

func (s *serializer) extraToken(p Property, v Value) string {
	spec, ok := extraSpecs[p]
	if !ok {
		return "[" + cssNameOf(p) + ":" + arbitraryText(valueText(v)) + "]"
	}

	switch p {
	case PropGradient:
		if v.Kind == KindNumber {
			return linearToken(v.Num)
		}
		return "bg-radial"
	case PropGradientFromStop, PropGradientViaStop, PropGradientToStop:
		return spec.prefix + "-" + formatNum(v.Num) + "%"
	}

	switch v.Kind {
	case KindColor:
		return spec.prefix + "-" + s.colorBody(v.Color, nil)
	case KindNumber:
		return spec.prefix + "-[" + formatNum(v.Num) + v.Unit + "]"
	case KindString:
		if isColorProperty(p) {
			if body, ok := colorKeywordBody(v.Str); ok {
				return spec.prefix + "-" + body
			}
		}
		if lit, ok := extraLiterals[p][v.Str]; ok {
			return spec.prefix + "-" + lit
		}
		if name, ok := negatedVar(v.Str); ok && spec.signed {
			return "-" + spec.prefix + "-" + customBody(name, spec.hint)
		}
		if name, ok := varName(v.Str); ok {
			return spec.prefix + "-" + customBody(name, spec.hint)
		}
		body := arbitraryText(v.Str)
		if spec.hint != "" {
			body = spec.hint + ":" + body
		}
		return spec.prefix + "-[" + body + "]"
	}
	return "[" + cssNameOf(p) + ":" + arbitraryText(valueText(v)) + "]"
}

func valueText(v Value) string {
	switch v.Kind {
	case KindNumber:
		return formatNum(v.Num) + v.Unit
	case KindColor:
		return v.Color.CSS()
	case KindPaint:
		if v.Paint != nil {
			return GradientCSS(*v.Paint)
		}
	case KindShadow:
		return ShadowCSS(v.Shadows)
	}
	return v.Str
}

// varName reads "var(--brand)" as "--brand".
func varName(s string) (string, bool) {
	name, ok := strings.CutPrefix(s, "var(")
	if !ok || !strings.HasSuffix(name, ")") {
		return "", false
	}
	name = name[:len(name)-1]
	if !strings.HasPrefix(name, "--") || strings.ContainsAny(name, " ()") {
		return "", false
	}
	return name, true
}

// negatedVar reads "calc(var(--x) * -1)" as "--x".
func negatedVar(s string) (string, bool) {
	inner, ok := strings.CutPrefix(s, "calc(")
	if !ok {
		return "", false
	}
	inner, ok = strings.CutSuffix(inner, " * -1)")
	if !ok {
		return "", false
	}
	return varName(inner)
}

func customBody(name, hint string) string {
	if hint != "" {
		return "(" + hint + ":" + name + ")"
	}
	return "(" + name + ")"
}

// colorKeywordBody spells keyword colors, custom properties and their
// color-mix opacity form: "color-mix(in oklab, var(--x) 50%, transparent)"
// → "(--x)/50".
func colorKeywordBody(s string) (string, bool) {
	switch s {
	case "currentColor":
		return "current", true
	case "inherit":
		return "inherit", true
	}
	if name, ok := varName(s); ok {
		return customBody(name, ""), true
	}
	inner, ok := strings.CutPrefix(s, "color-mix(in oklab, ")
	if !ok {
		return "", false
	}
	inner, ok = strings.CutSuffix(inner, "%, transparent)")
	if !ok {
		return "", false
	}
	i := strings.LastIndexByte(inner, ' ')
	if i < 0 {
		return "", false
	}
	pct, ok := parseNumber(inner[i+1:])
	if !ok {
		return "", false
	}
	base, ok := colorKeywordBody(inner[:i])
	if !ok {
		return "", false
	}
	if pct == float64(int(pct)) {
		return base + "/" + formatNum(pct), true
	}
	return base + "/[" + formatNum(pct/100) + "]", true
}
