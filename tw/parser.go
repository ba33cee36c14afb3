package tw

import (
	"errors"
	"strings"

	"github.com/agiangrant/twconv/theme"
)

// ErrUnknownUtility is returned by ParseToken when no resolver accepts the
// base token. Callers treat the token as an opaque literal.
var ErrUnknownUtility = errors.New("unknown utility")

// Options configures parsing. The zero value uses the built-in theme and
// resolver registry in non-strict mode.
type Options struct {
	Theme    *theme.Theme
	Registry *Registry
	// Strict rejects tokens with unrecognized modifiers instead of keeping
	// the modifier text in the base token.
	Strict bool
}

func (o Options) theme() *theme.Theme {
	if o.Theme == nil {
		return theme.Default()
	}
	return o.Theme
}

func (o Options) registry() *Registry {
	if o.Registry == nil {
		return DefaultRegistry()
	}
	return o.Registry
}

// ParseToken resolves one class token.
// "md:hover:-translate-x-4" → translateX -16px under {md, hover}
// Errors are ErrMalformedToken, ErrUnknownModifier (strict mode only) or
// ErrUnknownUtility; none of them is fatal to a class string.
func ParseToken(token string, opts Options) (ParsedStyle, error) {
	th := opts.theme()
	pt, err := ParseModifiers(token, th, opts.Strict)
	if err != nil {
		return ParsedStyle{}, err
	}
	style, ok := opts.registry().Resolve(pt.Base, th)
	if !ok {
		return ParsedStyle{}, ErrUnknownUtility
	}
	style.Raw = token
	style.Important = pt.Important
	style.Modifiers = pt.Modifiers
	return style, nil
}

// Parse resolves a whitespace-separated class string. Tokens that fail to
// resolve are returned as literals in source order.
// Example: "flex gap-4 hover:bg-blue-600 my-widget"
func Parse(input string, opts Options) (styles []ParsedStyle, literals []string) {
	for _, token := range strings.Fields(input) {
		style, err := ParseToken(token, opts)
		if err != nil {
			literals = append(literals, token)
			continue
		}
		styles = append(styles, style)
	}
	return styles, literals
}

// Compile parses and assembles a class string.
func Compile(input string, opts Options) Assembled {
	styles, literals := Parse(input, opts)
	a := Assemble(styles)
	a.Literals = literals
	return a
}
