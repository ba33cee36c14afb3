package tw

import (
	"strings"

	"github.com/agiangrant/twconv/theme"
)

var (
	justifyValues = map[string]string{
		"start": "flex-start", "end": "flex-end", "center": "center", "between": "space-between",
		"around": "space-around", "evenly": "space-evenly", "stretch": "stretch", "normal": "normal",
	}
	itemsValues = map[string]string{
		"start": "flex-start", "end": "flex-end", "center": "center", "baseline": "baseline", "stretch": "stretch",
	}
	selfValues = map[string]string{
		"auto": "auto", "start": "flex-start", "end": "flex-end", "center": "center",
		"baseline": "baseline", "stretch": "stretch",
	}
	overflowValues = map[string]string{
		"auto": "auto", "hidden": "hidden", "clip": "clip", "visible": "visible", "scroll": "scroll",
	}
	flexDirections = map[string]string{
		"row": "row", "row-reverse": "row-reverse", "col": "column", "col-reverse": "column-reverse",
	}
	flexWraps = map[string]string{"wrap": "wrap", "wrap-reverse": "wrap-reverse", "nowrap": "nowrap"}

	// flexShorthands expand into grow, shrink and basis.
	flexShorthands = map[string][3]Value{
		"1":       {number(1, ""), number(1, ""), number(0, "%")},
		"auto":    {number(1, ""), number(1, ""), keyword("auto")},
		"initial": {number(0, ""), number(1, ""), keyword("auto")},
		"none":    {number(0, ""), number(0, ""), keyword("auto")},
	}

	displayLiterals = map[string]string{
		"block": "block", "inline-block": "inline-block", "inline": "inline", "flex": "flex",
		"inline-flex": "inline-flex", "grid": "grid", "inline-grid": "inline-grid",
		"contents": "contents", "flow-root": "flow-root", "table": "table", "hidden": "none",
	}
	positionLiterals = []string{"static", "relative", "absolute", "fixed", "sticky"}
)

var flexTargets = []Property{PropFlexGrow, PropFlexShrink, PropFlexBasis}

var insetFamilies = []edgeFamily{
	{"inset", PropInset, insetEdges},
	{"inset-x", PropInsetX, []Property{PropRight, PropLeft}},
	{"inset-y", PropInsetY, []Property{PropTop, PropBottom}},
	{"top", PropTop, []Property{PropTop}},
	{"right", PropRight, []Property{PropRight}},
	{"bottom", PropBottom, []Property{PropBottom}},
	{"left", PropLeft, []Property{PropLeft}},
}

func registerLayout(r *Registry) {
	for token, v := range displayLiterals {
		r.literal(token, PropDisplay, keyword(v))
	}
	for _, p := range positionLiterals {
		r.literal(p, PropPosition, keyword(p))
	}
	r.literal("visible", PropVisibility, keyword("visible"))
	r.literal("invisible", PropVisibility, keyword("hidden"))
	r.literal("collapse", PropVisibility, keyword("collapse"))

	r.Register("flex", resolveFlex)
	r.Register("grow", flexFactor(PropFlexGrow))
	r.Register("shrink", flexFactor(PropFlexShrink))
	r.Register("basis", func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		v, variant, ok := resolveScale(u.Value, th, scaleOptions{
			prop:      PropFlexBasis,
			literals:  map[string]Value{"auto": keyword("auto"), "full": number(100, "%")},
			numeric:   true,
			fractions: true,
			named:     spacingOrContainer(th),
		})
		if !ok || u.Value == "" {
			return ParsedStyle{}, false
		}
		return single(PropFlexBasis, v, variant), true
	})

	r.keywords("justify", PropJustify, justifyValues)
	r.keywords("items", PropAlignItems, itemsValues)
	r.keywords("self", PropAlignSelf, selfValues)

	r.Register("overflow", func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		v, ok := overflowValues[u.Value]
		if !ok {
			return ParsedStyle{}, false
		}
		return multi(PropOverflow, []Property{PropOverflowX, PropOverflowY}, keyword(v), VariantPreset), true
	})
	r.keywords("overflow-x", PropOverflowX, overflowValues)
	r.keywords("overflow-y", PropOverflowY, overflowValues)

	for _, f := range insetFamilies {
		r.RegisterSigned(f.prefix, insetResolver(f))
	}

	r.RegisterSigned("z", integerResolver(PropZIndex, map[string]Value{"auto": keyword("auto")}))
	r.RegisterSigned("order", integerResolver(PropOrder, map[string]Value{
		"first": number(-9999, ""), "last": number(9999, ""), "none": number(0, ""),
	}))

	r.Register("aspect", resolveAspect)
	r.Register("grid-cols", gridTemplate(PropGridColumns))
	r.Register("grid-rows", gridTemplate(PropGridRows))
	r.Register("col-span", span(PropColSpan))
	r.Register("row-span", span(PropRowSpan))
}

// resolveFlex handles flex-row, flex-wrap, flex-1 and flex-[2_2_0%].
// The bare "flex" display literal is registered separately.
func resolveFlex(u Utility, th *theme.Theme) (ParsedStyle, bool) {
	if v, ok := flexDirections[u.Value]; ok {
		return single(PropFlexDirection, keyword(v), VariantPreset), true
	}
	if v, ok := flexWraps[u.Value]; ok {
		return single(PropFlexWrap, keyword(v), VariantPreset), true
	}
	if parts, ok := flexShorthands[u.Value]; ok {
		return flexStyle(parts, VariantPreset), true
	}
	if n, ok := parseInteger(u.Value); ok && n >= 0 {
		return flexStyle([3]Value{number(float64(n), ""), number(1, ""), number(0, "%")}, VariantPreset), true
	}
	if content, _, ok := arbitrary(u.Value); ok {
		fields := strings.Fields(content)
		if len(fields) != 3 {
			return ParsedStyle{}, false
		}
		grow, okG := parseNumber(fields[0])
		shrink, okS := parseNumber(fields[1])
		if !okG || !okS {
			return ParsedStyle{}, false
		}
		basis := lengthValue(PropFlexBasis, fields[2], th)
		return flexStyle([3]Value{number(grow, ""), number(shrink, ""), basis}, VariantArbitrary), true
	}
	return ParsedStyle{}, false
}

func flexStyle(parts [3]Value, variant Variant) ParsedStyle {
	return multi(PropFlex, flexTargets, Value{Kind: KindString, Parts: parts[:]}, variant)
}

func flexFactor(prop Property) ResolverFunc {
	return func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "" {
			return single(prop, number(1, ""), VariantPreset), true
		}
		if n, ok := parseNumber(u.Value); ok && n >= 0 {
			return single(prop, number(n, ""), VariantPreset), true
		}
		if ref, _, ok := customProperty(u.Value); ok {
			return single(prop, keyword(ref), VariantCustomProperty), true
		}
		if content, _, ok := arbitrary(u.Value); ok {
			if n, ok := parseNumber(content); ok {
				return single(prop, number(n, ""), VariantArbitrary), true
			}
		}
		return ParsedStyle{}, false
	}
}

func insetResolver(f edgeFamily) ResolverFunc {
	return func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "" {
			return ParsedStyle{}, false
		}
		v, variant, ok := resolveScale(u.Value, th, scaleOptions{
			prop:      f.targets[0],
			literals:  map[string]Value{"auto": keyword("auto"), "full": number(100, "%")},
			numeric:   true,
			fractions: true,
			named:     th.Spacing,
			negative:  u.Negative,
		})
		if !ok {
			return ParsedStyle{}, false
		}
		return multi(f.prop, f.targets, v, variant), true
	}
}

// integerResolver handles z-10, -order-1, z-[100] and their literals.
func integerResolver(prop Property, literals map[string]Value) ResolverFunc {
	return func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		v, variant, ok := func() (Value, Variant, bool) {
			if lit, ok := literals[u.Value]; ok {
				return lit, VariantPreset, true
			}
			if n, ok := parseInteger(u.Value); ok && n >= 0 {
				return number(float64(n), ""), VariantPreset, true
			}
			if ref, _, ok := customProperty(u.Value); ok {
				return keyword(ref), VariantCustomProperty, true
			}
			if content, _, ok := arbitrary(u.Value); ok {
				if n, ok := parseInteger(content); ok {
					return number(float64(n), ""), VariantArbitrary, true
				}
			}
			return Value{}, 0, false
		}()
		if !ok || (u.Negative && v.Kind != KindNumber) {
			return ParsedStyle{}, false
		}
		if u.Negative {
			v = negate(v)
		}
		return single(prop, v, variant), true
	}
}

func resolveAspect(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
	switch u.Value {
	case "square":
		return single(PropAspectRatio, number(1, ""), VariantPreset), true
	case "video":
		return single(PropAspectRatio, number(16.0/9.0, ""), VariantPreset), true
	case "auto":
		return single(PropAspectRatio, keyword("auto"), VariantPreset), true
	}
	if r, ok := parseRatio(u.Value); ok {
		return single(PropAspectRatio, number(r, ""), VariantPreset), true
	}
	if ref, _, ok := customProperty(u.Value); ok {
		return single(PropAspectRatio, keyword(ref), VariantCustomProperty), true
	}
	if content, _, ok := arbitrary(u.Value); ok {
		content = strings.ReplaceAll(content, " ", "")
		if r, ok := parseRatio(content); ok {
			return single(PropAspectRatio, number(r, ""), VariantArbitrary), true
		}
		if n, ok := parseNumber(content); ok && n > 0 {
			return single(PropAspectRatio, number(n, ""), VariantArbitrary), true
		}
	}
	return ParsedStyle{}, false
}

// parseRatio reads "4/3" as 1.333.
func parseRatio(s string) (float64, bool) {
	a, b, ok := strings.Cut(s, "/")
	if !ok {
		return 0, false
	}
	x, okA := parseNumber(a)
	y, okB := parseNumber(b)
	if !okA || !okB || x <= 0 || y <= 0 {
		return 0, false
	}
	return x / y, true
}

func gridTemplate(prop Property) ResolverFunc {
	return func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		switch u.Value {
		case "none", "subgrid":
			return single(prop, keyword(u.Value), VariantPreset), true
		}
		if n, ok := parseInteger(u.Value); ok && n > 0 {
			return single(prop, number(float64(n), ""), VariantPreset), true
		}
		if ref, _, ok := customProperty(u.Value); ok {
			return single(prop, keyword(ref), VariantCustomProperty), true
		}
		if content, _, ok := arbitrary(u.Value); ok {
			return single(prop, keyword(content), VariantArbitrary), true
		}
		return ParsedStyle{}, false
	}
}

func span(prop Property) ResolverFunc {
	return func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "full" {
			return single(prop, keyword("full"), VariantPreset), true
		}
		if n, ok := parseInteger(u.Value); ok && n > 0 {
			return single(prop, number(float64(n), ""), VariantPreset), true
		}
		if content, _, ok := arbitrary(u.Value); ok {
			if n, ok := parseInteger(content); ok && n > 0 {
				return single(prop, number(float64(n), ""), VariantArbitrary), true
			}
		}
		return ParsedStyle{}, false
	}
}
