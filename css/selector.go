package css

import (
	"strconv"
	"strings"

	"github.com/agiangrant/twconv/tw"
)

// escaped lists the class-name characters that need a backslash in a
// selector.
const escaped = `[]().:/#%+*?^$|!,=~'"@&<>{};`

// Escape makes a raw class token safe to use as a CSS class selector.
//
//	"w-[320px]"     → `w-\[320px\]`
//	"md:hover:p-4"  → `md\:hover\:p-4`
func Escape(class string) string {
	var b strings.Builder
	b.Grow(len(class) + 8)
	for i, r := range class {
		switch {
		case strings.ContainsRune(escaped, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == ' ':
			b.WriteString(`\ `)
		case i == 0 && r >= '0' && r <= '9':
			// A leading digit must be a hex escape.
			b.WriteString(`\3` + string(r) + " ")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var pseudoClass = map[string]string{
	"hover": ":hover", "focus": ":focus", "focus-visible": ":focus-visible", "focus-within": ":focus-within",
	"active": ":active", "visited": ":visited", "target": ":target", "disabled": ":disabled",
	"enabled": ":enabled", "checked": ":checked", "indeterminate": ":indeterminate",
	"required": ":required", "optional": ":optional", "invalid": ":invalid", "valid": ":valid",
	"read-only": ":read-only", "placeholder-shown": ":placeholder-shown", "autofill": ":autofill",
	"default": ":default", "first": ":first-child", "last": ":last-child", "only": ":only-child",
	"odd": ":nth-child(odd)", "even": ":nth-child(even)", "empty": ":empty", "open": ":is([open], :popover-open)",
	"first-of-type": ":first-of-type", "last-of-type": ":last-of-type",
	"rtl": `:where(:dir(rtl), [dir="rtl"], [dir="rtl"] *)`, "ltr": `:where(:dir(ltr), [dir="ltr"], [dir="ltr"] *)`,
}

var pseudoElement = map[string]string{
	"placeholder": "::placeholder", "selection": "::selection", "before": "::before", "after": "::after",
	"marker": "::marker", "first-line": "::first-line", "first-letter": "::first-letter",
	"file": "::file-selector-button", "backdrop": "::backdrop",
}

var mediaState = map[string]string{
	"dark":          "(prefers-color-scheme: dark)",
	"motion-safe":   "(prefers-reduced-motion: no-preference)",
	"motion-reduce": "(prefers-reduced-motion: reduce)",
	"print":         "print",
	"portrait":      "(orientation: portrait)",
	"landscape":     "(orientation: landscape)",
	"contrast-more": "(prefers-contrast: more)",
	"contrast-less": "(prefers-contrast: less)",
}

// Selector builds the selector for a class carrying mods, plus any at-rule
// conditions the modifiers need, outermost first.
//
//	("hover:bg-red-500", [hover])   → `.hover\:bg-red-500:hover`
//	("group-hover:p-2", [group-hover]) → `.group:hover .group-hover\:p-2`
func Selector(raw string, mods []tw.Modifier) (string, []string) {
	var (
		media   []string
		suffix  strings.Builder
		element string
		group   string
		peer    string
	)
	for _, m := range mods {
		switch m.Kind {
		case tw.ModifierResponsive:
			media = append(media, breakpointQuery(m))
		case tw.ModifierAttribute:
			if m.Attribute != nil {
				suffix.WriteString(attributeSelector(*m.Attribute))
			}
		case tw.ModifierState:
			if name, ok := strings.CutPrefix(m.Name, "group-"); ok {
				group += stateSelector(name)
				continue
			}
			if name, ok := strings.CutPrefix(m.Name, "peer-"); ok {
				peer += stateSelector(name)
				continue
			}
			if q, ok := mediaState[m.Name]; ok {
				media = append(media, "@media "+q)
				continue
			}
			if pe, ok := pseudoElement[m.Name]; ok {
				element = pe
				continue
			}
			suffix.WriteString(stateSelector(m.Name))
		}
	}

	sel := "." + Escape(raw) + suffix.String() + element
	switch {
	case group != "":
		sel = ".group" + group + " " + sel
	case peer != "":
		sel = ".peer" + peer + " ~ " + sel
	}
	return sel, media
}

// stateSelector maps a state name to its pseudo-class. Theme-defined states
// without a browser equivalent become a data attribute.
func stateSelector(name string) string {
	if p, ok := pseudoClass[name]; ok {
		return p
	}
	return "[data-" + name + "]"
}

func attributeSelector(a tw.Attribute) string {
	if a.Operator == "" {
		return "[" + a.Name + "]"
	}
	return "[" + a.Name + a.Operator + strconv.Quote(a.Value) + "]"
}

func breakpointQuery(m tw.Modifier) string {
	w := num(m.Width) + "px"
	if m.Max {
		return "@media not all and (min-width: " + w + ")"
	}
	return "@media (min-width: " + w + ")"
}
