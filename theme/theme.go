// Package theme holds the immutable design-token registry shared by the
// forward resolvers and the reverse serializer.
//
// A Theme is built once from a base preset and an optional override preset,
// validated, indexed for reverse lookups and then never mutated, so any
// number of goroutines may read it without synchronization.
package theme

import (
	"maps"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Category names a top-level token table.
type Category string

const (
	CategorySpacing    Category = "spacing"
	CategoryColors     Category = "colors"
	CategoryTypography Category = "typography"
	CategoryEffects    Category = "effects"
	CategoryLayout     Category = "layout"
	CategoryAnimation  Category = "animation"
)

// Tolerance is the numeric slack used when matching a value to a preset.
// It stays under the 1e-3 round-trip bound after 4-decimal formatting.
const Tolerance = 5e-4

// Theme is a frozen, merged preset.
type Theme struct {
	name    string
	version string

	spacingUnit float64
	rootSize    float64

	spacing       map[string]float64
	colors        map[string]string
	fontSize      map[string]float64
	fontWeight    map[string]int
	lineHeight    map[string]float64
	letterSpacing map[string]float64
	fontFamily    map[string]string
	radius        map[string]float64
	shadow        map[string][]ShadowLayer
	blur          map[string]float64
	breakpoints   map[string]float64
	containers    map[string]float64
	states        map[string]struct{}
	animation     map[string]AnimationPreset

	breakpointOrder []string
	colorNames      map[string]string
	familyNames     map[string]string
	weightNames     map[int]string
	scales          map[string][]scaleEntry
}

type scaleEntry struct {
	name  string
	value float64
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the theme built from DefaultPreset. It is constructed on
// first use and shared afterwards.
func Default() *Theme {
	defaultOnce.Do(func() {
		t, err := New(DefaultPreset(), nil)
		if err != nil {
			panic("theme: built-in preset is invalid: " + err.Error())
		}
		defaultTheme = t
	})
	return defaultTheme
}

// New merges override onto base, validates the result and freezes it.
// Override values win for the same key; untouched keys fall back to base.
func New(base Preset, override *Preset) (*Theme, error) {
	merged := base
	if override != nil {
		merged = Merge(base, *override)
	}
	normalizeColors(&merged)
	if err := Validate(merged); err != nil {
		return nil, err
	}
	return build(merged), nil
}

// Merge returns base with every key set in override replaced. Neither
// argument is modified.
func Merge(base, override Preset) Preset {
	out := Preset{
		Name:    pick(override.Name, base.Name),
		Version: pick(override.Version, base.Version),
		Spacing: SpacingPreset{
			Unit:  pickNum(override.Spacing.Unit, base.Spacing.Unit),
			Steps: mergeMap(base.Spacing.Steps, override.Spacing.Steps),
		},
		Colors: mergeMap(base.Colors, override.Colors),
		Typography: TypographyPreset{
			RootSize:      pickNum(override.Typography.RootSize, base.Typography.RootSize),
			FontSize:      mergeMap(base.Typography.FontSize, override.Typography.FontSize),
			FontWeight:    mergeMap(base.Typography.FontWeight, override.Typography.FontWeight),
			LineHeight:    mergeMap(base.Typography.LineHeight, override.Typography.LineHeight),
			LetterSpacing: mergeMap(base.Typography.LetterSpacing, override.Typography.LetterSpacing),
			FontFamily:    mergeMap(base.Typography.FontFamily, override.Typography.FontFamily),
		},
		Effects: EffectsPreset{
			Radius: mergeMap(base.Effects.Radius, override.Effects.Radius),
			Shadow: mergeMap(base.Effects.Shadow, override.Effects.Shadow),
			Blur:   mergeMap(base.Effects.Blur, override.Effects.Blur),
		},
		Layout: LayoutPreset{
			Breakpoints: mergeMap(base.Layout.Breakpoints, override.Layout.Breakpoints),
			Containers:  mergeMap(base.Layout.Containers, override.Layout.Containers),
			States:      mergeStates(base.Layout.States, override.Layout.States),
		},
		Animation: mergeMap(base.Animation, override.Animation),
	}
	return out
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func pickNum(a, b float64) float64 {
	if a > 0 {
		return a
	}
	return b
}

func mergeMap[K comparable, V any](base, override map[K]V) map[K]V {
	out := make(map[K]V, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

func mergeStates(base, override []string) []string {
	out := slices.Clone(base)
	for _, s := range override {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func build(p Preset) *Theme {
	t := &Theme{
		name:          p.Name,
		version:       p.Version,
		spacingUnit:   p.Spacing.Unit,
		rootSize:      p.Typography.RootSize,
		spacing:       maps.Clone(p.Spacing.Steps),
		colors:        maps.Clone(p.Colors),
		fontSize:      maps.Clone(p.Typography.FontSize),
		fontWeight:    maps.Clone(p.Typography.FontWeight),
		lineHeight:    maps.Clone(p.Typography.LineHeight),
		letterSpacing: maps.Clone(p.Typography.LetterSpacing),
		fontFamily:    maps.Clone(p.Typography.FontFamily),
		radius:        maps.Clone(p.Effects.Radius),
		blur:          maps.Clone(p.Effects.Blur),
		breakpoints:   maps.Clone(p.Layout.Breakpoints),
		containers:    maps.Clone(p.Layout.Containers),
		animation:     maps.Clone(p.Animation),
		shadow:        make(map[string][]ShadowLayer, len(p.Effects.Shadow)),
		states:        make(map[string]struct{}, len(p.Layout.States)),
	}
	if t.spacingUnit == 0 {
		t.spacingUnit = 4
	}
	if t.rootSize == 0 {
		t.rootSize = 16
	}
	for k, v := range p.Effects.Shadow {
		t.shadow[k] = slices.Clone(v)
	}
	for _, s := range p.Layout.States {
		t.states[s] = struct{}{}
	}

	t.breakpointOrder = slices.Collect(maps.Keys(t.breakpoints))
	sort.Slice(t.breakpointOrder, func(i, j int) bool {
		a, b := t.breakpointOrder[i], t.breakpointOrder[j]
		if t.breakpoints[a] != t.breakpoints[b] {
			return t.breakpoints[a] < t.breakpoints[b]
		}
		return a < b
	})

	// Several palette names can share a hex value; the lexically first wins
	// so reverse lookups are deterministic.
	t.colorNames = make(map[string]string)
	for _, name := range sortedKeys(t.colors) {
		hex := t.colors[name]
		if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
			continue
		}
		if _, ok := t.colorNames[hex]; !ok {
			t.colorNames[hex] = name
		}
	}
	t.familyNames = make(map[string]string)
	for _, name := range sortedKeys(t.fontFamily) {
		key := strings.ToLower(t.fontFamily[name])
		if _, ok := t.familyNames[key]; !ok {
			t.familyNames[key] = name
		}
	}
	t.weightNames = make(map[int]string)
	for _, name := range sortedKeys(t.fontWeight) {
		if _, ok := t.weightNames[t.fontWeight[name]]; !ok {
			t.weightNames[t.fontWeight[name]] = name
		}
	}

	t.scales = map[string][]scaleEntry{
		"spacing":       index(t.spacing),
		"fontSize":      index(t.fontSize),
		"lineHeight":    index(t.lineHeight),
		"letterSpacing": index(t.letterSpacing),
		"radius":        index(t.radius),
		"blur":          index(t.blur),
		"containers":    index(t.containers),
	}
	return t
}

func index(m map[string]float64) []scaleEntry {
	entries := make([]scaleEntry, 0, len(m))
	for _, k := range sortedKeys(m) {
		entries = append(entries, scaleEntry{name: k, value: m[k]})
	}
	return entries
}

func sortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	sort.Strings(keys)
	return keys
}

// nearest returns the preset whose value is closest to v within Tolerance.
func (t *Theme) nearest(scale string, v float64) (string, bool) {
	best, found := "", false
	bestDelta := math.Inf(1)
	for _, e := range t.scales[scale] {
		d := math.Abs(e.value - v)
		if d <= Tolerance && d < bestDelta {
			best, bestDelta, found = e.name, d, true
		}
	}
	return best, found
}

// Name returns the preset name.
func (t *Theme) Name() string { return t.name }

// Version returns the preset version.
func (t *Theme) Version() string { return t.version }

// SpacingUnit returns the pixel size of one numeric spacing step.
func (t *Theme) SpacingUnit() float64 { return t.spacingUnit }

// RootSize returns the pixel size of 1rem.
func (t *Theme) RootSize() float64 { return t.rootSize }

// Spacing returns an explicitly named spacing step such as "px".
func (t *Theme) Spacing(key string) (float64, bool) {
	v, ok := t.spacing[key]
	return v, ok
}

// SpacingName returns the named step for px, if any.
func (t *Theme) SpacingName(px float64) (string, bool) { return t.nearest("spacing", px) }

// Color returns a palette entry as normalized hex (or a keyword such as
// "transparent").
func (t *Theme) Color(name string) (string, bool) {
	v, ok := t.colors[name]
	return v, ok
}

// ColorName returns the palette name of a lowercase #rrggbb value.
func (t *Theme) ColorName(hex string) (string, bool) {
	v, ok := t.colorNames[strings.ToLower(hex)]
	return v, ok
}

func (t *Theme) FontSize(key string) (float64, bool) {
	v, ok := t.fontSize[key]
	return v, ok
}

func (t *Theme) FontSizeName(px float64) (string, bool) { return t.nearest("fontSize", px) }

func (t *Theme) FontWeight(key string) (int, bool) {
	v, ok := t.fontWeight[key]
	return v, ok
}

func (t *Theme) FontWeightName(w int) (string, bool) {
	v, ok := t.weightNames[w]
	return v, ok
}

func (t *Theme) LineHeight(key string) (float64, bool) {
	v, ok := t.lineHeight[key]
	return v, ok
}

func (t *Theme) LineHeightName(v float64) (string, bool) { return t.nearest("lineHeight", v) }

func (t *Theme) LetterSpacing(key string) (float64, bool) {
	v, ok := t.letterSpacing[key]
	return v, ok
}

func (t *Theme) LetterSpacingName(em float64) (string, bool) { return t.nearest("letterSpacing", em) }

// FontFamily returns the family configured for a key like "sans".
func (t *Theme) FontFamily(key string) (string, bool) {
	v, ok := t.fontFamily[key]
	return v, ok
}

// FontFamilyName returns the key for a family value, case-insensitively.
func (t *Theme) FontFamilyName(family string) (string, bool) {
	v, ok := t.familyNames[strings.ToLower(family)]
	return v, ok
}

func (t *Theme) Radius(key string) (float64, bool) {
	v, ok := t.radius[key]
	return v, ok
}

func (t *Theme) RadiusName(px float64) (string, bool) { return t.nearest("radius", px) }

// Shadow returns a copy of the named shadow stack.
func (t *Theme) Shadow(key string) ([]ShadowLayer, bool) {
	v, ok := t.shadow[key]
	return slices.Clone(v), ok
}

// ShadowNames returns the shadow preset names in sorted order.
func (t *Theme) ShadowNames() []string { return sortedKeys(t.shadow) }

func (t *Theme) Blur(key string) (float64, bool) {
	v, ok := t.blur[key]
	return v, ok
}

func (t *Theme) BlurName(px float64) (string, bool) { return t.nearest("blur", px) }

// Breakpoint returns the min-width of a responsive breakpoint.
func (t *Theme) Breakpoint(name string) (float64, bool) {
	v, ok := t.breakpoints[name]
	return v, ok
}

// Breakpoints returns breakpoint names ordered by ascending width.
func (t *Theme) Breakpoints() []string { return slices.Clone(t.breakpointOrder) }

func (t *Theme) Container(key string) (float64, bool) {
	v, ok := t.containers[key]
	return v, ok
}

func (t *Theme) ContainerName(px float64) (string, bool) { return t.nearest("containers", px) }

// HasState reports whether name is a custom state registered by the preset.
func (t *Theme) HasState(name string) bool {
	_, ok := t.states[name]
	return ok
}

func (t *Theme) Animation(name string) (AnimationPreset, bool) {
	v, ok := t.animation[name]
	return v, ok
}

// Resolve looks a key up by category. Nested tables use a dotted key, for
// example ("typography", "fontSize.lg") or ("layout", "breakpoints.md").
// Missing keys return (nil, false).
func (t *Theme) Resolve(category Category, key string) (any, bool) {
	switch category {
	case CategorySpacing:
		return found(t.Spacing(key))
	case CategoryColors:
		return found(t.Color(key))
	case CategoryAnimation:
		return found(t.Animation(key))
	}

	table, name, ok := strings.Cut(key, ".")
	if !ok {
		return nil, false
	}
	switch category {
	case CategoryTypography:
		switch table {
		case "fontSize":
			return found(t.FontSize(name))
		case "fontWeight":
			return found(t.FontWeight(name))
		case "lineHeight":
			return found(t.LineHeight(name))
		case "letterSpacing":
			return found(t.LetterSpacing(name))
		case "fontFamily":
			return found(t.FontFamily(name))
		}
	case CategoryEffects:
		switch table {
		case "radius":
			return found(t.Radius(name))
		case "shadow":
			return found(t.Shadow(name))
		case "blur":
			return found(t.Blur(name))
		}
	case CategoryLayout:
		switch table {
		case "breakpoints":
			return found(t.Breakpoint(name))
		case "containers":
			return found(t.Container(name))
		case "states":
			if t.HasState(name) {
				return true, true
			}
		}
	}
	return nil, false
}

func found[V any](v V, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}

// Preset returns a deep copy of the merged preset backing the theme.
func (t *Theme) Preset() Preset {
	p := Preset{
		Name:    t.name,
		Version: t.version,
		Spacing: SpacingPreset{Unit: t.spacingUnit, Steps: maps.Clone(t.spacing)},
		Colors:  maps.Clone(t.colors),
		Typography: TypographyPreset{
			RootSize:      t.rootSize,
			FontSize:      maps.Clone(t.fontSize),
			FontWeight:    maps.Clone(t.fontWeight),
			LineHeight:    maps.Clone(t.lineHeight),
			LetterSpacing: maps.Clone(t.letterSpacing),
			FontFamily:    maps.Clone(t.fontFamily),
		},
		Effects: EffectsPreset{
			Radius: maps.Clone(t.radius),
			Shadow: make(map[string][]ShadowLayer, len(t.shadow)),
			Blur:   maps.Clone(t.blur),
		},
		Layout: LayoutPreset{
			Breakpoints: maps.Clone(t.breakpoints),
			Containers:  maps.Clone(t.containers),
			States:      sortedKeys(t.states),
		},
		Animation: maps.Clone(t.animation),
	}
	for k, v := range t.shadow {
		p.Effects.Shadow[k] = slices.Clone(v)
	}
	return p
}
