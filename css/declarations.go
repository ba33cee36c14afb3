// Package css turns parsed utility tokens into CSS rule text.
package css

import (
	"strconv"
	"strings"

	"github.com/agiangrant/twconv/tw"
)

// Declaration is one "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string { return d.Property + ": " + d.Value }

// cssProperty names the CSS property each discrete property writes.
var cssProperty = map[tw.Property]string{
	tw.PropPaddingTop: "padding-top", tw.PropPaddingRight: "padding-right",
	tw.PropPaddingBottom: "padding-bottom", tw.PropPaddingLeft: "padding-left",
	tw.PropMarginTop: "margin-top", tw.PropMarginRight: "margin-right",
	tw.PropMarginBottom: "margin-bottom", tw.PropMarginLeft: "margin-left",
	tw.PropItemSpacing: "column-gap", tw.PropCounterAxisSpacing: "row-gap",

	tw.PropWidth: "width", tw.PropHeight: "height",
	tw.PropMinWidth: "min-width", tw.PropMinHeight: "min-height",
	tw.PropMaxWidth: "max-width", tw.PropMaxHeight: "max-height",

	tw.PropDisplay: "display", tw.PropFlexDirection: "flex-direction", tw.PropFlexWrap: "flex-wrap",
	tw.PropJustify: "justify-content", tw.PropAlignItems: "align-items", tw.PropAlignSelf: "align-self",
	tw.PropFlexGrow: "flex-grow", tw.PropFlexShrink: "flex-shrink", tw.PropFlexBasis: "flex-basis",
	tw.PropOrder: "order", tw.PropPosition: "position",
	tw.PropTop: "top", tw.PropRight: "right", tw.PropBottom: "bottom", tw.PropLeft: "left",
	tw.PropZIndex: "z-index", tw.PropOverflowX: "overflow-x", tw.PropOverflowY: "overflow-y",
	tw.PropVisibility: "visibility", tw.PropAspectRatio: "aspect-ratio",
	tw.PropGridColumns: "grid-template-columns", tw.PropGridRows: "grid-template-rows",
	tw.PropColSpan: "grid-column", tw.PropRowSpan: "grid-row",

	tw.PropRadiusTopLeft: "border-top-left-radius", tw.PropRadiusTopRight: "border-top-right-radius",
	tw.PropRadiusBottomRight: "border-bottom-right-radius", tw.PropRadiusBottomLeft: "border-bottom-left-radius",
	tw.PropStrokeTop: "border-top-width", tw.PropStrokeRight: "border-right-width",
	tw.PropStrokeBottom: "border-bottom-width", tw.PropStrokeLeft: "border-left-width",
	tw.PropStrokeStyle: "border-style",

	tw.PropTextFill: "color", tw.PropStrokeColor: "border-color",
	tw.PropGradientFrom: "--tw-gradient-from", tw.PropGradientVia: "--tw-gradient-via", tw.PropGradientTo: "--tw-gradient-to",
	tw.PropGradientFromStop: "--tw-gradient-from-position", tw.PropGradientViaStop: "--tw-gradient-via-position",
	tw.PropGradientToStop: "--tw-gradient-to-position",

	tw.PropFontSize: "font-size", tw.PropFontFamily: "font-family", tw.PropFontWeight: "font-weight",
	tw.PropFontStyle: "font-style", tw.PropLineHeight: "line-height", tw.PropLetterSpacing: "letter-spacing",
	tw.PropTextAlign: "text-align", tw.PropTextCase: "text-transform", tw.PropTextDecoration: "text-decoration-line",

	tw.PropShadow: "box-shadow", tw.PropOpacity: "opacity", tw.PropBlendMode: "mix-blend-mode",
	tw.PropRotate: "rotate", tw.PropOrigin: "transform-origin",

	tw.PropTransitionProperty: "transition-property", tw.PropTransitionDuration: "transition-duration",
	tw.PropTransitionDelay: "transition-delay", tw.PropTransitionTiming: "transition-timing-function",
	tw.PropAnimation: "animation",
}

var textCase = map[string]string{"upper": "uppercase", "lower": "lowercase", "title": "capitalize", "original": "none"}

const gradientStops = "var(--tw-gradient-from, transparent) var(--tw-gradient-from-position, 0%), " +
	"var(--tw-gradient-via, transparent) var(--tw-gradient-via-position, 50%), " +
	"var(--tw-gradient-to, transparent) var(--tw-gradient-to-position, 100%)"

// Declarations maps a style to CSS declarations, one or more per target.
// Targets sharing a value are expanded individually, so p-4 yields four
// padding declarations.
func Declarations(s tw.ParsedStyle) []Declaration {
	var out []Declaration
	for i, target := range s.Targets {
		out = append(out, declare(target, s.ValueFor(i))...)
	}
	if s.Important {
		for i := range out {
			out[i].Value += " !important"
		}
	}
	return out
}

func declare(p tw.Property, v tw.Value) []Declaration {
	switch p {
	case tw.PropFill:
		return fill(v)
	case tw.PropGradient:
		if v.Kind == tw.KindNumber {
			return one("background-image", "linear-gradient("+num(v.Num)+"deg, var(--tw-gradient-stops, "+gradientStops+"))")
		}
		return one("background-image", "radial-gradient(var(--tw-gradient-stops, "+gradientStops+"))")
	case tw.PropLayerBlur:
		return one("filter", "blur("+value(p, v)+")")
	case tw.PropBackgroundBlur:
		return one("backdrop-filter", "blur("+value(p, v)+")")
	case tw.PropTranslateX:
		return []Declaration{{"--tw-translate-x", value(p, v)}, {"translate", "var(--tw-translate-x) var(--tw-translate-y, 0)"}}
	case tw.PropTranslateY:
		return []Declaration{{"--tw-translate-y", value(p, v)}, {"translate", "var(--tw-translate-x, 0) var(--tw-translate-y)"}}
	case tw.PropScaleX:
		return []Declaration{{"--tw-scale-x", value(p, v)}, {"scale", "var(--tw-scale-x) var(--tw-scale-y, 1)"}}
	case tw.PropScaleY:
		return []Declaration{{"--tw-scale-y", value(p, v)}, {"scale", "var(--tw-scale-x, 1) var(--tw-scale-y)"}}
	case tw.PropSkewX:
		return []Declaration{{"--tw-skew-x", "skewX(" + value(p, v) + ")"}, {"transform", "var(--tw-skew-x,) var(--tw-skew-y,)"}}
	case tw.PropSkewY:
		return []Declaration{{"--tw-skew-y", "skewY(" + value(p, v) + ")"}, {"transform", "var(--tw-skew-x,) var(--tw-skew-y,)"}}
	}
	name, ok := cssProperty[p]
	if !ok {
		return nil
	}
	return one(name, value(p, v))
}

func one(prop, v string) []Declaration { return []Declaration{{Property: prop, Value: v}} }

func fill(v tw.Value) []Declaration {
	switch v.Kind {
	case tw.KindColor:
		return one("background-color", v.Color.CSS())
	case tw.KindPaint:
		if v.Paint != nil {
			if v.Paint.Type == tw.PaintSolid {
				return one("background-color", v.Paint.Color.CSS())
			}
			return one("background-image", tw.GradientCSS(*v.Paint))
		}
	case tw.KindString:
		if strings.Contains(v.Str, "gradient(") || strings.HasPrefix(v.Str, "url(") {
			return one("background-image", v.Str)
		}
		return one("background-color", v.Str)
	}
	return nil
}

// value renders v in the unit CSS expects for p.
func value(p tw.Property, v tw.Value) string {
	switch v.Kind {
	case tw.KindColor:
		return v.Color.CSS()
	case tw.KindShadow:
		if len(v.Shadows) == 0 {
			return "0 0 #0000"
		}
		return tw.ShadowCSS(v.Shadows)
	case tw.KindPaint:
		if v.Paint != nil {
			return tw.GradientCSS(*v.Paint)
		}
		return ""
	case tw.KindAnimation:
		return animation(v.Animation)
	case tw.KindString:
		return keyword(p, v.Str)
	}

	switch p {
	case tw.PropGridColumns, tw.PropGridRows:
		if v.Num == 0 {
			return "none"
		}
		return "repeat(" + num(v.Num) + ", minmax(0, 1fr))"
	case tw.PropColSpan, tw.PropRowSpan:
		if v.Num < 0 {
			return "1 / -1"
		}
		return "span " + num(v.Num) + " / span " + num(v.Num)
	case tw.PropTransitionDuration, tw.PropTransitionDelay:
		return num(v.Num) + "ms"
	case tw.PropRotate, tw.PropSkewX, tw.PropSkewY:
		return num(v.Num) + "deg"
	case tw.PropGradientFromStop, tw.PropGradientViaStop, tw.PropGradientToStop:
		return num(v.Num) + "%"
	}
	if v.Num == 0 && v.Unit != "" && v.Unit != "%" && v.Unit != "ms" && v.Unit != "deg" {
		return "0"
	}
	return num(v.Num) + v.Unit
}

func keyword(p tw.Property, s string) string {
	switch p {
	case tw.PropTextCase:
		if c, ok := textCase[s]; ok {
			return c
		}
	case tw.PropTextDecoration:
		if s == "strikethrough" {
			return "line-through"
		}
	case tw.PropColSpan, tw.PropRowSpan:
		if s == "full" {
			return "1 / -1"
		}
	case tw.PropFontFamily:
		if strings.Contains(s, " ") && !strings.ContainsAny(s, `"',(`) {
			return `"` + s + `"`
		}
	}
	return s
}

func animation(a *tw.Animation) string {
	if a == nil || a.Name == "none" {
		return "none"
	}
	parts := []string{a.Name, num(a.Duration) + "ms"}
	if a.Easing != "" {
		parts = append(parts, a.Easing)
	}
	if a.Iterations == 0 {
		parts = append(parts, "infinite")
	} else {
		parts = append(parts, strconv.Itoa(a.Iterations))
	}
	return strings.Join(parts, " ")
}

func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
