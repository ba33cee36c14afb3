package tw

import (
	"strings"

	"github.com/agiangrant/twconv/theme"
)

// cssProperties maps CSS property names accepted in [name:value] tokens to
// the keyword-valued discrete property they write.
var cssProperties = map[string]Property{
	"display":                    PropDisplay,
	"flex-direction":             PropFlexDirection,
	"flex-wrap":                  PropFlexWrap,
	"justify-content":            PropJustify,
	"align-items":                PropAlignItems,
	"align-self":                 PropAlignSelf,
	"position":                   PropPosition,
	"overflow-x":                 PropOverflowX,
	"overflow-y":                 PropOverflowY,
	"visibility":                 PropVisibility,
	"text-align":                 PropTextAlign,
	"mix-blend-mode":             PropBlendMode,
	"border-style":               PropStrokeStyle,
	"transform-origin":           PropOrigin,
	"transition-property":        PropTransitionProperty,
	"transition-timing-function": PropTransitionTiming,
}

// cssNames is the inverse of cssProperties.
var cssNames = func() map[Property]string {
	m := make(map[Property]string, len(cssProperties))
	for name, p := range cssProperties {
		m[p] = name
	}
	return m
}()

// resolveArbitraryProperty handles "[display:contents]". Keyword-valued
// discrete properties may also be named directly ("[textCase:small-caps]").
func resolveArbitraryProperty(base string, _ *theme.Theme) (ParsedStyle, bool) {
	if len(base) < 5 || base[0] != '[' || base[len(base)-1] != ']' {
		return ParsedStyle{}, false
	}
	name, value, ok := strings.Cut(base[1:len(base)-1], ":")
	if !ok || value == "" {
		return ParsedStyle{}, false
	}
	prop, ok := cssProperties[name]
	if !ok {
		prop, ok = keywordProperty(Property(name))
		if !ok {
			return ParsedStyle{}, false
		}
	}
	content, _, ok := arbitrary("[" + value + "]")
	if !ok {
		return ParsedStyle{}, false
	}
	return single(prop, keyword(content), VariantArbitrary), true
}

func keywordProperty(p Property) (Property, bool) {
	switch p {
	case PropTextCase, PropTextDecoration:
		return p, true
	}
	if _, ok := cssNames[p]; ok {
		return p, true
	}
	return "", false
}
