package tw

import "github.com/agiangrant/twconv/theme"

type edgeFamily struct {
	prefix  string
	prop    Property
	targets []Property
}

var paddingFamilies = []edgeFamily{
	{"p", PropPadding, paddingEdges},
	{"px", PropPaddingX, []Property{PropPaddingRight, PropPaddingLeft}},
	{"py", PropPaddingY, []Property{PropPaddingTop, PropPaddingBottom}},
	{"pt", PropPaddingTop, []Property{PropPaddingTop}},
	{"pr", PropPaddingRight, []Property{PropPaddingRight}},
	{"pb", PropPaddingBottom, []Property{PropPaddingBottom}},
	{"pl", PropPaddingLeft, []Property{PropPaddingLeft}},
}

var marginFamilies = []edgeFamily{
	{"m", PropMargin, marginEdges},
	{"mx", PropMarginX, []Property{PropMarginRight, PropMarginLeft}},
	{"my", PropMarginY, []Property{PropMarginTop, PropMarginBottom}},
	{"mt", PropMarginTop, []Property{PropMarginTop}},
	{"mr", PropMarginRight, []Property{PropMarginRight}},
	{"mb", PropMarginBottom, []Property{PropMarginBottom}},
	{"ml", PropMarginLeft, []Property{PropMarginLeft}},
}

var gapFamilies = []edgeFamily{
	{"gap", PropGap, []Property{PropItemSpacing, PropCounterAxisSpacing}},
	{"gap-x", PropItemSpacing, []Property{PropItemSpacing}},
	{"gap-y", PropCounterAxisSpacing, []Property{PropCounterAxisSpacing}},
	// space-* maps onto auto-layout spacing the same way gap does.
	{"space-x", PropItemSpacing, []Property{PropItemSpacing}},
	{"space-y", PropCounterAxisSpacing, []Property{PropCounterAxisSpacing}},
}

func registerSpacing(r *Registry) {
	for _, f := range paddingFamilies {
		r.Register(f.prefix, edgeResolver(f, nil))
	}
	auto := map[string]Value{"auto": keyword("auto")}
	for _, f := range marginFamilies {
		r.RegisterSigned(f.prefix, edgeResolver(f, auto))
	}
	for _, f := range gapFamilies {
		r.Register(f.prefix, edgeResolver(f, nil))
	}
}

func edgeResolver(f edgeFamily, literals map[string]Value) ResolverFunc {
	return func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "" {
			return ParsedStyle{}, false
		}
		v, variant, ok := resolveScale(u.Value, th, scaleOptions{
			prop:     f.targets[0],
			literals: literals,
			numeric:  true,
			named:    th.Spacing,
			negative: u.Negative,
		})
		if !ok {
			return ParsedStyle{}, false
		}
		return multi(f.prop, f.targets, v, variant), true
	}
}
