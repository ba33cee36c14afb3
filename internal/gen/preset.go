// Package gen compiles a theme into Go source so applications can embed
// their design tokens instead of reading theme files at run time.
package gen

import (
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/agiangrant/twconv/theme"
)

// Options names the generated package and function.
type Options struct {
	Package string
	Func    string
}

// PresetSource returns gofmt-ed Go source declaring a function that
// returns p.
func PresetSource(p theme.Preset, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "theme"
	}
	if opts.Func == "" {
		opts.Func = "Preset"
	}

	var b strings.Builder
	b.WriteString("// Code generated by twconv generate - DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	b.WriteString("import \"github.com/agiangrant/twconv/theme\"\n\n")
	fmt.Fprintf(&b, "// %s returns the %q theme preset.\n", opts.Func, p.Name)
	fmt.Fprintf(&b, "func %s() theme.Preset {\n\treturn theme.Preset{\n", opts.Func)
	fmt.Fprintf(&b, "Name: %q,\nVersion: %q,\n", p.Name, p.Version)

	fmt.Fprintf(&b, "Spacing: theme.SpacingPreset{\nUnit: %s,\n", num(p.Spacing.Unit))
	writeMap(&b, "Steps", "float64", p.Spacing.Steps, num)
	b.WriteString("},\n")

	writeMap(&b, "Colors", "string", p.Colors, strconv.Quote)

	fmt.Fprintf(&b, "Typography: theme.TypographyPreset{\nRootSize: %s,\n", num(p.Typography.RootSize))
	writeMap(&b, "FontSize", "float64", p.Typography.FontSize, num)
	writeMap(&b, "FontWeight", "int", p.Typography.FontWeight, strconv.Itoa)
	writeMap(&b, "LineHeight", "float64", p.Typography.LineHeight, num)
	writeMap(&b, "LetterSpacing", "float64", p.Typography.LetterSpacing, num)
	writeMap(&b, "FontFamily", "string", p.Typography.FontFamily, strconv.Quote)
	b.WriteString("},\n")

	b.WriteString("Effects: theme.EffectsPreset{\n")
	writeMap(&b, "Radius", "float64", p.Effects.Radius, num)
	writeMap(&b, "Shadow", "[]theme.ShadowLayer", p.Effects.Shadow, shadowLayers)
	writeMap(&b, "Blur", "float64", p.Effects.Blur, num)
	b.WriteString("},\n")

	b.WriteString("Layout: theme.LayoutPreset{\n")
	writeMap(&b, "Breakpoints", "float64", p.Layout.Breakpoints, num)
	writeMap(&b, "Containers", "float64", p.Layout.Containers, num)
	if len(p.Layout.States) > 0 {
		quoted := make([]string, len(p.Layout.States))
		for i, s := range p.Layout.States {
			quoted[i] = strconv.Quote(s)
		}
		fmt.Fprintf(&b, "States: []string{%s},\n", strings.Join(quoted, ", "))
	}
	b.WriteString("},\n")

	writeMap(&b, "Animation", "theme.AnimationPreset", p.Animation, func(a theme.AnimationPreset) string {
		return fmt.Sprintf("{Duration: %s, Easing: %q, Iterations: %d}", num(a.Duration), a.Easing, a.Iterations)
	})
	b.WriteString("}\n}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to format generated source")
	}
	return src, nil
}

// writeMap emits a map literal field with keys in sorted order. Empty maps
// are left out.
func writeMap[V any](b *strings.Builder, field, typ string, m map[string]V, lit func(V) string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(b, "%s: map[string]%s{\n", field, typ)
	for _, k := range keys {
		fmt.Fprintf(b, "%q: %s,\n", k, lit(m[k]))
	}
	b.WriteString("},\n")
}

func shadowLayers(layers []theme.ShadowLayer) string {
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = fmt.Sprintf("{X: %s, Y: %s, Blur: %s, Spread: %s, Color: %q, Inset: %t}",
			num(l.X), num(l.Y), num(l.Blur), num(l.Spread), l.Color, l.Inset)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
