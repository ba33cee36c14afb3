package tw

import (
	"strings"

	"github.com/agiangrant/twconv/theme"
)

var textAligns = map[string]string{
	"left": "left", "center": "center", "right": "right", "justify": "justify", "start": "start", "end": "end",
}

func registerTypography(r *Registry) {
	r.Register("text", resolveText)
	r.Register("font", resolveFont)
	r.Register("leading", resolveLeading)
	r.RegisterSigned("tracking", resolveTracking)

	r.literal("italic", PropFontStyle, keyword("italic"))
	r.literal("not-italic", PropFontStyle, keyword("normal"))
	r.literal("uppercase", PropTextCase, keyword("upper"))
	r.literal("lowercase", PropTextCase, keyword("lower"))
	r.literal("capitalize", PropTextCase, keyword("title"))
	r.literal("normal-case", PropTextCase, keyword("original"))
	r.literal("underline", PropTextDecoration, keyword("underline"))
	r.literal("overline", PropTextDecoration, keyword("overline"))
	r.literal("line-through", PropTextDecoration, keyword("strikethrough"))
	r.literal("no-underline", PropTextDecoration, keyword("none"))
}

// resolveText disambiguates text-* between alignment, font size and color.
// A bracketed value is a color when it parses as one, otherwise a size.
func resolveText(u Utility, th *theme.Theme) (ParsedStyle, bool) {
	if u.Value == "" {
		return ParsedStyle{}, false
	}
	if v, ok := textAligns[u.Value]; ok {
		return single(PropTextAlign, keyword(v), VariantPreset), true
	}
	if px, ok := th.FontSize(u.Value); ok {
		return single(PropFontSize, number(px, "px"), VariantPreset), true
	}
	if ref, hint, ok := customProperty(u.Value); ok && (hint == "length" || hint == "size") {
		return single(PropFontSize, keyword(ref), VariantCustomProperty), true
	}
	if content, hint, ok := arbitrary(u.Value); ok && (hint == "length" || hint == "size") {
		return single(PropFontSize, lengthValue(PropFontSize, content, th), VariantArbitrary), true
	}
	if v, variant, ok := colorValue(u.Value, th); ok {
		return single(PropTextFill, v, variant), true
	}
	if content, hint, ok := arbitrary(u.Value); ok && hint == "" {
		return single(PropFontSize, lengthValue(PropFontSize, content, th), VariantArbitrary), true
	}
	return ParsedStyle{}, false
}

// resolveFont handles font weights and families.
// font-bold, font-[550] → weight; font-sans, font-['Playfair_Display'] → family.
func resolveFont(u Utility, th *theme.Theme) (ParsedStyle, bool) {
	if u.Value == "" {
		return ParsedStyle{}, false
	}
	if w, ok := th.FontWeight(u.Value); ok {
		return single(PropFontWeight, number(float64(w), ""), VariantPreset), true
	}
	if fam, ok := th.FontFamily(u.Value); ok {
		return single(PropFontFamily, keyword(fam), VariantPreset), true
	}
	if ref, hint, ok := customProperty(u.Value); ok {
		if hint == "family-name" {
			return single(PropFontFamily, keyword(ref), VariantCustomProperty), true
		}
		return single(PropFontWeight, keyword(ref), VariantCustomProperty), true
	}
	content, hint, ok := arbitrary(u.Value)
	if !ok {
		return ParsedStyle{}, false
	}
	if n, isInt := parseInteger(content); isInt && hint != "family-name" {
		if n < 1 || n > 1000 {
			return ParsedStyle{}, false
		}
		return single(PropFontWeight, number(float64(n), ""), VariantArbitrary), true
	}
	family := strings.Trim(strings.TrimSpace(content), `"'`)
	if family == "" {
		return ParsedStyle{}, false
	}
	return single(PropFontFamily, keyword(family), VariantArbitrary), true
}

// resolveLeading: named heights are unit-less multipliers, numeric steps
// are px on the spacing scale, and percentages become multipliers.
func resolveLeading(u Utility, th *theme.Theme) (ParsedStyle, bool) {
	if u.Value == "" {
		return ParsedStyle{}, false
	}
	if m, ok := th.LineHeight(u.Value); ok {
		return single(PropLineHeight, number(m, ""), VariantPreset), true
	}
	if content, _, ok := arbitrary(u.Value); ok {
		if n, unit, ok := parseLength(content, th); ok && unit == "%" {
			return single(PropLineHeight, number(round4(n/100), ""), VariantArbitrary), true
		}
	}
	v, variant, ok := resolveScale(u.Value, th, scaleOptions{prop: PropLineHeight, numeric: true})
	if !ok {
		return ParsedStyle{}, false
	}
	return single(PropLineHeight, v, variant), true
}

func resolveTracking(u Utility, th *theme.Theme) (ParsedStyle, bool) {
	if u.Value == "" {
		return ParsedStyle{}, false
	}
	var (
		v       Value
		variant = VariantPreset
	)
	if em, ok := th.LetterSpacing(u.Value); ok {
		v = number(em, "em")
	} else if ref, _, ok := customProperty(u.Value); ok {
		v, variant = keyword(ref), VariantCustomProperty
	} else if content, _, ok := arbitrary(u.Value); ok {
		v, variant = lengthValue(PropLetterSpacing, content, th), VariantArbitrary
	} else {
		return ParsedStyle{}, false
	}
	if u.Negative {
		v = negate(v)
	}
	return single(PropLetterSpacing, v, variant), true
}
