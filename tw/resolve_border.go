package tw

import "github.com/agiangrant/twconv/theme"

var strokeStyles = map[string]string{
	"solid": "solid", "dashed": "dashed", "dotted": "dotted", "double": "double", "hidden": "hidden", "none": "none",
}

var radiusFamilies = []edgeFamily{
	{"rounded", PropBorderRadius, radiusCorner},
	{"rounded-t", PropBorderRadius, []Property{PropRadiusTopLeft, PropRadiusTopRight}},
	{"rounded-r", PropBorderRadius, []Property{PropRadiusTopRight, PropRadiusBottomRight}},
	{"rounded-b", PropBorderRadius, []Property{PropRadiusBottomRight, PropRadiusBottomLeft}},
	{"rounded-l", PropBorderRadius, []Property{PropRadiusTopLeft, PropRadiusBottomLeft}},
	{"rounded-tl", PropRadiusTopLeft, []Property{PropRadiusTopLeft}},
	{"rounded-tr", PropRadiusTopRight, []Property{PropRadiusTopRight}},
	{"rounded-br", PropRadiusBottomRight, []Property{PropRadiusBottomRight}},
	{"rounded-bl", PropRadiusBottomLeft, []Property{PropRadiusBottomLeft}},
}

var strokeFamilies = []edgeFamily{
	{"border", PropBorderWidth, strokeEdges},
	{"border-x", PropBorderWidth, []Property{PropStrokeRight, PropStrokeLeft}},
	{"border-y", PropBorderWidth, []Property{PropStrokeTop, PropStrokeBottom}},
	{"border-t", PropStrokeTop, []Property{PropStrokeTop}},
	{"border-r", PropStrokeRight, []Property{PropStrokeRight}},
	{"border-b", PropStrokeBottom, []Property{PropStrokeBottom}},
	{"border-l", PropStrokeLeft, []Property{PropStrokeLeft}},
}

func registerBorder(r *Registry) {
	for _, f := range radiusFamilies {
		r.Register(f.prefix, radiusResolver(f))
	}
	for _, f := range strokeFamilies {
		r.Register(f.prefix, strokeResolver(f))
	}
	// border-dashed and border-red-500 share the border prefix with widths.
	r.keywords("border", PropStrokeStyle, strokeStyles)
	r.Register("border", func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "" {
			return ParsedStyle{}, false
		}
		v, variant, ok := colorValue(u.Value, th)
		if !ok {
			return ParsedStyle{}, false
		}
		return single(PropStrokeColor, v, variant), true
	})
}

func radiusResolver(f edgeFamily) ResolverFunc {
	return func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		var (
			v       Value
			variant = VariantPreset
		)
		if px, ok := th.Radius(u.Value); ok {
			v = number(px, "px")
		} else if ref, _, ok := customProperty(u.Value); ok {
			v, variant = keyword(ref), VariantCustomProperty
		} else if content, _, ok := arbitrary(u.Value); ok {
			v, variant = lengthValue(f.targets[0], content, th), VariantArbitrary
		} else {
			return ParsedStyle{}, false
		}
		return multi(f.prop, f.targets, v, variant), true
	}
}

// strokeResolver handles border widths: border, border-2, border-t-[3px].
// Any non-negative integer is a px width.
func strokeResolver(f edgeFamily) ResolverFunc {
	return func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "" {
			return multi(f.prop, f.targets, number(1, "px"), VariantPreset), true
		}
		if n, ok := parseInteger(u.Value); ok && n >= 0 {
			return multi(f.prop, f.targets, number(float64(n), "px"), VariantPreset), true
		}
		if ref, hint, ok := customProperty(u.Value); ok && (hint == "length" || hint == "line-width") {
			return multi(f.prop, f.targets, keyword(ref), VariantCustomProperty), true
		}
		content, hint, ok := arbitrary(u.Value)
		if !ok || (hint != "" && hint != "length" && hint != "line-width") {
			return ParsedStyle{}, false
		}
		n, unit, ok := parseLength(content, th)
		if !ok {
			return ParsedStyle{}, false
		}
		return multi(f.prop, f.targets, number(n, unit), VariantArbitrary), true
	}
}
