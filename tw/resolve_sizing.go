package tw

import "github.com/agiangrant/twconv/theme"

var (
	widthLiterals = map[string]Value{
		"auto":   keyword("auto"),
		"full":   number(100, "%"),
		"screen": number(100, "vw"),
		"dvw":    number(100, "dvw"),
		"svw":    number(100, "svw"),
		"min":    keyword("min-content"),
		"max":    keyword("max-content"),
		"fit":    keyword("fit-content"),
	}
	heightLiterals = map[string]Value{
		"auto":   keyword("auto"),
		"full":   number(100, "%"),
		"screen": number(100, "vh"),
		"dvh":    number(100, "dvh"),
		"svh":    number(100, "svh"),
		"lvh":    number(100, "lvh"),
		"min":    keyword("min-content"),
		"max":    keyword("max-content"),
		"fit":    keyword("fit-content"),
	}
	maxLiterals = map[string]Value{
		"none":  keyword("none"),
		"full":  number(100, "%"),
		"min":   keyword("min-content"),
		"max":   keyword("max-content"),
		"fit":   keyword("fit-content"),
		"prose": number(65, "ch"),
	}
)

type sizeFamily struct {
	prefix   string
	prop     Property
	targets  []Property
	literals map[string]Value
}

var sizeFamilies = []sizeFamily{
	{"w", PropWidth, []Property{PropWidth}, widthLiterals},
	{"h", PropHeight, []Property{PropHeight}, heightLiterals},
	{"size", PropSize, []Property{PropWidth, PropHeight}, widthLiterals},
	{"min-w", PropMinWidth, []Property{PropMinWidth}, widthLiterals},
	{"min-h", PropMinHeight, []Property{PropMinHeight}, heightLiterals},
	{"max-w", PropMaxWidth, []Property{PropMaxWidth}, maxLiterals},
	{"max-h", PropMaxHeight, []Property{PropMaxHeight}, maxLiterals},
}

func registerSizing(r *Registry) {
	for _, f := range sizeFamilies {
		r.Register(f.prefix, sizeResolver(f))
	}
}

func sizeResolver(f sizeFamily) ResolverFunc {
	return func(u Utility, th *theme.Theme) (ParsedStyle, bool) {
		if u.Value == "" {
			return ParsedStyle{}, false
		}
		v, variant, ok := resolveScale(u.Value, th, scaleOptions{
			prop:      f.targets[0],
			literals:  f.literals,
			numeric:   true,
			fractions: true,
			named:     spacingOrContainer(th),
		})
		if !ok {
			return ParsedStyle{}, false
		}
		return multi(f.prop, f.targets, v, variant), true
	}
}

// spacingOrContainer looks a name up on the spacing scale, then the
// container scale (w-md, max-w-3xl).
func spacingOrContainer(th *theme.Theme) func(string) (float64, bool) {
	return func(name string) (float64, bool) {
		if v, ok := th.Spacing(name); ok {
			return v, true
		}
		return th.Container(name)
	}
}
