package tw

import (
	"slices"
	"strings"
	"sync"

	"github.com/agiangrant/twconv/theme"
)

// Utility is a base token split against a registered prefix.
// "-translate-x-4" → {Name: "translate-x", Value: "4", Negative: true}
type Utility struct {
	Raw      string
	Name     string
	Value    string
	Negative bool
}

// ResolverFunc maps a utility to a style. It returns false when the value
// is not one the family understands, letting shorter prefixes try.
type ResolverFunc func(u Utility, th *theme.Theme) (ParsedStyle, bool)

type entry struct {
	fn     ResolverFunc
	signed bool
}

// Registry maps utility prefixes to resolvers with longest-prefix matching.
// Register is not safe for concurrent use; a populated registry is
// read-only and may be shared.
type Registry struct {
	entries  map[string][]entry
	prefixes []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]entry)}
}

// Register adds fn for prefix. Resolvers on the same prefix are tried in
// registration order. Negative tokens never reach fn.
func (r *Registry) Register(prefix string, fn ResolverFunc) {
	r.add(prefix, entry{fn: fn})
}

// RegisterSigned adds fn for prefix and lets it receive "-prefix-..." tokens.
func (r *Registry) RegisterSigned(prefix string, fn ResolverFunc) {
	r.add(prefix, entry{fn: fn, signed: true})
}

func (r *Registry) add(prefix string, e entry) {
	if _, ok := r.entries[prefix]; !ok {
		r.prefixes = append(r.prefixes, prefix)
		slices.SortFunc(r.prefixes, func(a, b string) int {
			if len(a) != len(b) {
				return len(b) - len(a)
			}
			return strings.Compare(a, b)
		})
	}
	r.entries[prefix] = append(r.entries[prefix], e)
}

// Clone returns an independent copy that can be extended.
func (r *Registry) Clone() *Registry {
	c := &Registry{entries: make(map[string][]entry, len(r.entries)), prefixes: slices.Clone(r.prefixes)}
	for k, v := range r.entries {
		c.entries[k] = slices.Clone(v)
	}
	return c
}

// Prefixes returns the registered prefixes, longest first.
func (r *Registry) Prefixes() []string { return slices.Clone(r.prefixes) }

// Resolve maps a base token (modifiers already removed) to a style. The
// longest matching prefix is tried first. Unknown tokens return false.
func (r *Registry) Resolve(base string, th *theme.Theme) (ParsedStyle, bool) {
	name, negative := strings.CutPrefix(base, "-")
	if name == "" {
		return ParsedStyle{}, false
	}
	if !negative && strings.HasPrefix(name, "[") {
		style, ok := resolveArbitraryProperty(name, th)
		if ok {
			style.Raw = base
		}
		return style, ok
	}
	for _, prefix := range r.prefixes {
		var value string
		switch {
		case name == prefix:
		case strings.HasPrefix(name, prefix+"-") && len(name) > len(prefix)+1:
			value = name[len(prefix)+1:]
		default:
			continue
		}
		u := Utility{Raw: base, Name: prefix, Value: value, Negative: negative}
		for _, e := range r.entries[prefix] {
			if negative && !e.signed {
				continue
			}
			if style, ok := e.fn(u, th); ok {
				style.Raw = base
				style.Negative = negative
				return style, true
			}
		}
	}
	return ParsedStyle{}, false
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared registry of built-in utilities.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		registerSpacing(r)
		registerSizing(r)
		registerLayout(r)
		registerColor(r)
		registerTypography(r)
		registerBorder(r)
		registerEffects(r)
		registerTransforms(r)
		registerMotion(r)
		defaultRegistry = r
	})
	return defaultRegistry
}

// literal registers a bare token that writes a fixed value.
func (r *Registry) literal(token string, prop Property, v Value) {
	r.Register(token, func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		if u.Value != "" {
			return ParsedStyle{}, false
		}
		return single(prop, v, VariantPreset), true
	})
}

// keywords registers prefix-value tokens from a fixed table.
// keywords("justify", PropJustify, {"center": "center"}) handles justify-center.
func (r *Registry) keywords(prefix string, prop Property, table map[string]string) {
	r.Register(prefix, func(u Utility, _ *theme.Theme) (ParsedStyle, bool) {
		v, ok := table[u.Value]
		if !ok {
			return ParsedStyle{}, false
		}
		return single(prop, keyword(v), VariantPreset), true
	})
}
