package tw

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/agiangrant/twconv/theme"
)

var (
	// ErrMalformedToken is returned for unbalanced brackets or empty segments.
	ErrMalformedToken = errors.New("malformed utility token")

	// ErrUnknownModifier is returned in strict mode for an unrecognized prefix.
	ErrUnknownModifier = errors.New("unknown modifier")
)

// ModifierKind classifies a modifier. The numeric value is its canonical
// sort priority: responsive wraps state wraps attribute.
type ModifierKind int

const (
	ModifierResponsive ModifierKind = iota
	ModifierState
	ModifierAttribute
)

func (k ModifierKind) String() string {
	switch k {
	case ModifierResponsive:
		return "responsive"
	case ModifierAttribute:
		return "attribute"
	default:
		return "state"
	}
}

func (k ModifierKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ModifierKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "responsive":
		*k = ModifierResponsive
	case "state":
		*k = ModifierState
	case "attribute":
		*k = ModifierAttribute
	default:
		return fmt.Errorf("unknown modifier kind %q", b)
	}
	return nil
}

// Attribute is a parsed [name op value] selector. Operator and Value are
// empty for a presence test.
type Attribute struct {
	Name     string `json:"name"`
	Operator string `json:"operator,omitempty"`
	Value    string `json:"value,omitempty"`
}

func (a Attribute) String() string {
	if a.Operator == "" {
		return "[" + a.Name + "]"
	}
	return "[" + a.Name + a.Operator + a.Value + "]"
}

// Modifier is one colon-separated prefix of a token.
type Modifier struct {
	Kind ModifierKind `json:"kind"`
	// Name is the canonical spelling used in bag keys ("md", "hover",
	// "[data-state=open]").
	Name string `json:"name"`
	// Width is the breakpoint width for responsive modifiers. Max is set
	// for max-* variants, which apply below Width.
	Width     float64    `json:"width,omitempty"`
	Max       bool       `json:"max,omitempty"`
	Attribute *Attribute `json:"attribute,omitempty"`
}

// Priority returns the canonical ordering rank.
func (m Modifier) Priority() int { return int(m.Kind) }

// ParsedToken is a token split into its modifiers and base utility.
type ParsedToken struct {
	Modifiers []Modifier
	Base      string
	Important bool
}

// Key returns the canonical bag key for the token's modifiers.
func (p ParsedToken) Key() string { return ModifierKey(p.Modifiers) }

// builtinStates are accepted without theme registration.
var builtinStates = map[string]struct{}{
	"hover": {}, "focus": {}, "focus-visible": {}, "focus-within": {}, "active": {},
	"visited": {}, "target": {}, "disabled": {}, "enabled": {}, "checked": {},
	"indeterminate": {}, "required": {}, "optional": {}, "invalid": {}, "valid": {},
	"read-only": {}, "placeholder-shown": {}, "autofill": {}, "default": {},
	"first": {}, "last": {}, "only": {}, "odd": {}, "even": {}, "empty": {}, "open": {},
	"first-of-type": {}, "last-of-type": {},
	"group-hover": {}, "group-focus": {}, "group-active": {}, "group-disabled": {},
	"peer-hover": {}, "peer-focus": {}, "peer-checked": {}, "peer-disabled": {}, "peer-invalid": {},
	"placeholder": {}, "selection": {}, "before": {}, "after": {}, "marker": {},
	"first-line": {}, "first-letter": {}, "file": {}, "backdrop": {},
	"dark": {}, "motion-safe": {}, "motion-reduce": {}, "print": {},
	"portrait": {}, "landscape": {}, "rtl": {}, "ltr": {}, "contrast-more": {}, "contrast-less": {},
}

var attrPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)\s*(?:([~|^$*]?=)\s*(.*))?$`)

// ParseModifiers splits token on top-level colons and classifies each
// prefix. Colons inside [] or () belong to the segment. Modifiers are
// returned in canonical order, so "hover:md:p-4" and "md:hover:p-4" share
// the key "md:hover".
//
// In non-strict mode an unrecognized prefix ends modifier parsing: it and
// everything after it stay in Base, and the resolver treats the whole
// remainder as an opaque literal. In strict mode it is ErrUnknownModifier.
func ParseModifiers(token string, th *theme.Theme, strict bool) (ParsedToken, error) {
	parts, ok := splitTopLevel(token, ':')
	if !ok {
		return ParsedToken{}, ErrMalformedToken
	}

	var pt ParsedToken
	last := len(parts) - 1
	for i := 0; i < last; i++ {
		part := parts[i]
		if part == "" {
			return ParsedToken{}, ErrMalformedToken
		}
		m, err := classifyModifier(part, th)
		if err != nil {
			if errors.Is(err, ErrUnknownModifier) && !strict {
				last = i
				break
			}
			return ParsedToken{}, err
		}
		pt.Modifiers = append(pt.Modifiers, m)
	}

	base := strings.Join(parts[last:], ":")
	if base == "" {
		return ParsedToken{}, ErrMalformedToken
	}
	if strings.HasPrefix(base, "!") {
		pt.Important, base = true, base[1:]
	} else if strings.HasSuffix(base, "!") {
		pt.Important, base = true, base[:len(base)-1]
	}
	if base == "" {
		return ParsedToken{}, ErrMalformedToken
	}
	pt.Base = base

	slices.SortStableFunc(pt.Modifiers, func(a, b Modifier) int { return a.Priority() - b.Priority() })
	return pt, nil
}

func classifyModifier(part string, th *theme.Theme) (Modifier, error) {
	if strings.HasPrefix(part, "[") {
		attr, err := parseAttribute(part)
		if err != nil {
			return Modifier{}, err
		}
		return Modifier{Kind: ModifierAttribute, Name: attr.String(), Attribute: &attr}, nil
	}
	for _, ns := range []string{"data-", "aria-"} {
		if strings.HasPrefix(part, ns+"[") {
			attr, err := parseAttribute(part[len(ns):])
			if err != nil {
				return Modifier{}, err
			}
			attr.Name = ns + attr.Name
			return Modifier{Kind: ModifierAttribute, Name: attr.String(), Attribute: &attr}, nil
		}
	}

	if w, ok := th.Breakpoint(part); ok {
		return Modifier{Kind: ModifierResponsive, Name: part, Width: w}, nil
	}
	if name, ok := strings.CutPrefix(part, "max-"); ok {
		if w, ok := th.Breakpoint(name); ok {
			return Modifier{Kind: ModifierResponsive, Name: part, Width: w, Max: true}, nil
		}
	}
	if _, ok := builtinStates[part]; ok || th.HasState(part) {
		return Modifier{Kind: ModifierState, Name: part}, nil
	}
	return Modifier{}, ErrUnknownModifier
}

// parseAttribute reads "[data-state=open]" or "[disabled]".
func parseAttribute(s string) (Attribute, error) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return Attribute{}, ErrMalformedToken
	}
	inner := strings.ReplaceAll(s[1:len(s)-1], "_", " ")
	m := attrPattern.FindStringSubmatch(strings.TrimSpace(inner))
	if m == nil {
		// Balanced but not an attribute test, e.g. an arbitrary selector.
		return Attribute{}, ErrUnknownModifier
	}
	attr := Attribute{Name: m[1], Operator: m[2]}
	if attr.Operator != "" {
		attr.Value = strings.Trim(strings.TrimSpace(m[3]), `"'`)
		if attr.Value == "" {
			return Attribute{}, ErrMalformedToken
		}
	}
	return attr, nil
}

// ModifierKey joins modifier names with ":". The empty key is the
// unconditional bag.
func ModifierKey(mods []Modifier) string {
	if len(mods) == 0 {
		return ""
	}
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	return strings.Join(names, ":")
}

// splitTopLevel splits s on sep outside [] and () groups. It reports false
// when brackets are unbalanced.
func splitTopLevel(s string, sep byte) ([]string, bool) {
	var parts []string
	square, round, start := 0, 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			square++
		case ']':
			square--
		case '(':
			round++
		case ')':
			round--
		case sep:
			if square == 0 && round == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
		if square < 0 || round < 0 {
			return nil, false
		}
	}
	if square != 0 || round != 0 {
		return nil, false
	}
	return append(parts, s[start:]), true
}
