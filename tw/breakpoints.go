package tw

import (
	"slices"
	"strings"
)

// Context describes the environment a host resolves conditional bags for.
type Context struct {
	// Width is the viewport width in px.
	Width float64
	// States lists active state modifiers such as "hover" or "dark".
	States []string
	// Attributes holds the element's attributes for [attr] modifiers.
	Attributes map[string]string
}

// Matches reports whether every modifier in mods holds under c.
func (c Context) Matches(mods []Modifier) bool {
	for _, m := range mods {
		switch m.Kind {
		case ModifierResponsive:
			if m.Max && c.Width >= m.Width {
				return false
			}
			if !m.Max && c.Width < m.Width {
				return false
			}
		case ModifierState:
			if !slices.Contains(c.States, m.Name) {
				return false
			}
		case ModifierAttribute:
			if m.Attribute == nil || !c.matchAttribute(*m.Attribute) {
				return false
			}
		}
	}
	return true
}

func (c Context) matchAttribute(a Attribute) bool {
	v, ok := c.Attributes[a.Name]
	if !ok {
		return false
	}
	switch a.Operator {
	case "":
		return true
	case "=":
		return v == a.Value
	case "~=":
		return slices.Contains(strings.Fields(v), a.Value)
	case "|=":
		return v == a.Value || strings.HasPrefix(v, a.Value+"-")
	case "^=":
		return strings.HasPrefix(v, a.Value)
	case "$=":
		return strings.HasSuffix(v, a.Value)
	case "*=":
		return strings.Contains(v, a.Value)
	}
	return false
}

// ResolveFor merges the unconditional bag with every conditional bag whose
// modifiers hold under c. This is the mobile-first cascade: base, then
// breakpoints from narrowest to widest, then bags with more modifiers over
// bags with fewer. Ties keep first-seen order.
func (a *Assembled) ResolveFor(c Context) Bag {
	result := a.Unconditional.Clone()

	var keys []string
	for _, key := range a.Keys {
		if c.Matches(a.Modifiers[key]) {
			keys = append(keys, key)
		}
	}
	slices.SortStableFunc(keys, func(x, y string) int {
		wx, wy := minWidth(a.Modifiers[x]), minWidth(a.Modifiers[y])
		if wx != wy {
			if wx < wy {
				return -1
			}
			return 1
		}
		return len(a.Modifiers[x]) - len(a.Modifiers[y])
	})

	for _, key := range keys {
		result.Merge(a.Conditional[key])
	}
	return result
}

// minWidth is the widest min-width breakpoint among mods, or 0.
func minWidth(mods []Modifier) float64 {
	w := 0.0
	for _, m := range mods {
		if m.Kind == ModifierResponsive && !m.Max && m.Width > w {
			w = m.Width
		}
	}
	return w
}
