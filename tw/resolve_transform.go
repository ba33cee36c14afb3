package tw

import (
	"strings"

	"github.com/agiangrant/twconv/theme"
)

var origins = map[string]string{
	"center": "center", "top": "top", "top-right": "top right", "right": "right",
	"bottom-right": "bottom right", "bottom": "bottom", "bottom-left": "bottom left",
	"left": "left", "top-left": "top left",
}

var translateFamilies = []edgeFamily{
	{"translate", PropTranslateX, []Property{PropTranslateX, PropTranslateY}},
	{"translate-x", PropTranslateX, []Property{PropTranslateX}},
	{"translate-y", PropTranslateY, []Property{PropTranslateY}},
}

func registerTransforms(r *Registry) {
	for _, f := range translateFamilies {
		r.RegisterSigned(f.prefix, translateResolver(f))
	}
	r.RegisterSigned("rotate", angleResolver(PropRotate, []Property{PropRotate}))
	r.RegisterSigned("skew-x", angleResolver(PropSkewX, []Property{PropSkewX}))
	r.RegisterSigned("skew-y", angleResolver(PropSkewY, []Property{PropSkewY}))
	r.RegisterSigned("scale", scaleResolver(PropScale, []Property{PropScaleX, PropScaleY}))
	r.RegisterSigned("scale-x", scaleResolver(PropScaleX, []Property{PropScaleX}))
	r.RegisterSigned("scale-y", scaleResolver(PropScaleY, []Property{PropScaleY}))
	r.Register("origin", func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		if v, ok := origins[u.Value]; ok {
			return single(PropOrigin, keyword(v), VariantPreset), true
		}
		if content, _, ok := arbitrary(u.Value); ok {
			return single(PropOrigin, keyword(content), VariantArbitrary), true
		}
		return ParsedStyle{}, false
	})
}

func translateResolver(f edgeFamily) ResolverFunc {
	return func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "" {
			return ParsedStyle{}, false
		}
		v, variant, ok := resolveScale(u.Value, th, scaleOptions{
			prop:      f.targets[0],
			literals:  map[string]Value{"full": number(100, "%")},
			numeric:   true,
			fractions: true,
			named:     th.Spacing,
			negative:  u.Negative,
		})
		if !ok {
			return ParsedStyle{}, false
		}
		prop := f.prop
		if len(f.targets) > 1 {
			prop = PropTranslate
		}
		return multi(prop, f.targets, v, variant), true
	}
}

// angleResolver handles rotate-45, -skew-x-6 and rotate-[0.25turn].
func angleResolver(prop Property, targets []Property) ResolverFunc {
	return func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		var (
			deg     float64
			variant = VariantPreset
			ok      bool
		)
		if n, isNum := parseNumber(u.Value); isNum && n >= 0 {
			deg, ok = n, true
		} else if ref, _, isRef := customProperty(u.Value); isRef && !u.Negative {
			return multi(prop, targets, keyword(ref), VariantCustomProperty), true
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
		return multi(prop, targets, number(deg, "deg"), variant), true
	}
}

// scaleResolver maps scale-50 to 0.5. Arbitrary values are factors or
// percentages.
func scaleResolver(prop Property, targets []Property) ResolverFunc {
	return func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		var (
			f       float64
			variant = VariantPreset
			ok      bool
		)
		if n, isNum := parseNumber(u.Value); isNum && n >= 0 {
			f, ok = round4(n/100), true
		} else if ref, _, isRef := customProperty(u.Value); isRef && !u.Negative {
			return multi(prop, targets, keyword(ref), VariantCustomProperty), true
		} else if content, _, isArb := arbitrary(u.Value); isArb {
			variant = VariantArbitrary
			if pct, isPct := strings.CutSuffix(content, "%"); isPct {
				if n, isNum := parseNumber(pct); isNum {
					f, ok = round4(n/100), true
				}
			} else {
				f, ok = parseNumber(content)
			}
		}
		if !ok {
			return ParsedStyle{}, false
		}
		if u.Negative {
			f = -f
		}
		return multi(prop, targets, number(f, ""), variant), true
	}
}
