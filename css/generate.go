package css

import (
	"strings"

	"github.com/agiangrant/twconv/tw"
)

// Rule renders a complete rule for s, wrapped in any at-rules its
// modifiers need. It reports false when s maps to no CSS declaration.
//
//	md:p-[13px] →
//	@media (min-width: 768px) {
//	  .md\:p-\[13px\] { padding-top: 13px; ... }
//	}
func Rule(s tw.ParsedStyle) (string, bool) {
	decls := Declarations(s)
	if len(decls) == 0 {
		return "", false
	}
	sel, media := Selector(s.Raw, s.Modifiers)

	var b strings.Builder
	indent := ""
	for _, m := range media {
		b.WriteString(indent + m + " {\n")
		indent += "  "
	}
	b.WriteString(indent + sel + " {")
	for _, d := range decls {
		b.WriteString(" " + d.String() + ";")
	}
	b.WriteString(" }")
	for range media {
		indent = indent[2:]
		b.WriteString("\n" + indent + "}")
	}
	return b.String(), true
}

// NeedsRule reports whether s has no preset stylesheet entry, so its
// rule must be generated at runtime.
func NeedsRule(s tw.ParsedStyle) bool {
	return s.Variant == tw.VariantArbitrary || s.Variant == tw.VariantCustomProperty
}

// Generate returns one rule per distinct token that needs runtime CSS, in
// first-seen order.
func Generate(styles []tw.ParsedStyle) []string {
	seen := make(map[string]struct{}, len(styles))
	var rules []string
	for _, s := range styles {
		if !NeedsRule(s) {
			continue
		}
		if _, ok := seen[s.Raw]; ok {
			continue
		}
		seen[s.Raw] = struct{}{}
		if r, ok := Rule(s); ok {
			rules = append(rules, r)
		}
	}
	return rules
}

// GenerateAll is Generate without the variant filter, for emitting a full
// stylesheet of everything a class list uses.
func GenerateAll(styles []tw.ParsedStyle) []string {
	seen := make(map[string]struct{}, len(styles))
	var rules []string
	for _, s := range styles {
		if _, ok := seen[s.Raw]; ok {
			continue
		}
		seen[s.Raw] = struct{}{}
		if r, ok := Rule(s); ok {
			rules = append(rules, r)
		}
	}
	return rules
}
