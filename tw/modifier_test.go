package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twconv/theme"
)

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ParsedToken)
	}{
		{
			name:  "responsive and state",
			input: "md:hover:bg-red-500",
			validate: func(t *testing.T, pt ParsedToken) {
				require.Len(t, pt.Modifiers, 2)
				assert.Equal(t, ModifierResponsive, pt.Modifiers[0].Kind)
				assert.Equal(t, 768.0, pt.Modifiers[0].Width)
				assert.Equal(t, ModifierState, pt.Modifiers[1].Kind)
				assert.Equal(t, "bg-red-500", pt.Base)
				assert.Equal(t, "md:hover", pt.Key())
			},
		},
		{
			name:  "canonical order ignores source order",
			input: "hover:md:bg-red-500",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.Equal(t, "md:hover", pt.Key())
			},
		},
		{
			name:  "same-kind modifiers keep source order",
			input: "focus:hover:p-4",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.Equal(t, "focus:hover", pt.Key())
			},
		},
		{
			name:  "attribute selector",
			input: "[data-state=open]:p-4",
			validate: func(t *testing.T, pt ParsedToken) {
				require.Len(t, pt.Modifiers, 1)
				assert.Equal(t, &Attribute{Name: "data-state", Operator: "=", Value: "open"}, pt.Modifiers[0].Attribute)
				assert.Equal(t, "[data-state=open]", pt.Key())
			},
		},
		{
			name:  "data namespace shorthand",
			input: "data-[state=open]:p-4",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.Equal(t, "[data-state=open]", pt.Key())
			},
		},
		{
			name:  "aria presence",
			input: "aria-[expanded]:p-4",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.Equal(t, &Attribute{Name: "aria-expanded"}, pt.Modifiers[0].Attribute)
			},
		},
		{
			name:  "quoted prefix match",
			input: "[href^='https']:underline",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.Equal(t, &Attribute{Name: "href", Operator: "^=", Value: "https"}, pt.Modifiers[0].Attribute)
			},
		},
		{
			name:  "attribute sorts after state",
			input: "[disabled]:hover:sm:opacity-50",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.Equal(t, "sm:hover:[disabled]", pt.Key())
			},
		},
		{
			name:  "max breakpoint",
			input: "max-md:hidden",
			validate: func(t *testing.T, pt ParsedToken) {
				m := pt.Modifiers[0]
				assert.True(t, m.Max)
				assert.Equal(t, 768.0, m.Width)
				assert.Equal(t, "max-md", m.Name)
			},
		},
		{
			name:  "leading important",
			input: "!p-4",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.True(t, pt.Important)
				assert.Equal(t, "p-4", pt.Base)
			},
		},
		{
			name:  "trailing important after modifiers",
			input: "hover:p-4!",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.True(t, pt.Important)
				assert.Equal(t, "p-4", pt.Base)
			},
		},
		{
			name:  "colons inside brackets stay in the base",
			input: "hover:[display:contents]",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.Equal(t, "[display:contents]", pt.Base)
				assert.Equal(t, "hover", pt.Key())
			},
		},
		{
			name:  "unknown prefix stops modifier parsing",
			input: "hover:foo:p-4",
			validate: func(t *testing.T, pt ParsedToken) {
				assert.Equal(t, "hover", pt.Key())
				assert.Equal(t, "foo:p-4", pt.Base)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := ParseModifiers(tt.input, theme.Default(), false)
			require.NoError(t, err)
			tt.validate(t, pt)
		})
	}
}

func TestParseModifiersErrors(t *testing.T) {
	tests := []struct {
		input  string
		strict bool
		want   error
	}{
		{input: "hover:", want: ErrMalformedToken},
		{input: ":p-4", want: ErrMalformedToken},
		{input: "hover::p-4", want: ErrMalformedToken},
		{input: "w-[10px", want: ErrMalformedToken},
		{input: "w-10px]", want: ErrMalformedToken},
		{input: "[]:p-4", want: ErrMalformedToken},
		{input: "[data-x=]:p-4", want: ErrMalformedToken},
		{input: "!", want: ErrMalformedToken},
		{input: "foo:p-4", strict: true, want: ErrUnknownModifier},
		{input: "max-huge:p-4", strict: true, want: ErrUnknownModifier},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseModifiers(tt.input, theme.Default(), tt.strict)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
