package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFor(t *testing.T) {
	a := compile("p-2 md:p-4 lg:p-8 hover:bg-red-500 md:hover:bg-blue-500 max-md:hidden [data-state=open]:opacity-50")

	tests := []struct {
		name     string
		ctx      Context
		validate func(*testing.T, Bag)
	}{
		{
			name: "narrow",
			ctx:  Context{Width: 500},
			validate: func(t *testing.T, b Bag) {
				requireFloat(t, 8, b.Spacing.PaddingTop)
				assert.Nil(t, b.Color.Fill)
				assert.Equal(t, ptr("none"), b.Layout.Display)
			},
		},
		{
			name: "medium",
			ctx:  Context{Width: 800},
			validate: func(t *testing.T, b Bag) {
				requireFloat(t, 16, b.Spacing.PaddingTop)
				assert.Nil(t, b.Layout.Display)
			},
		},
		{
			name: "large applies breakpoints narrowest first",
			ctx:  Context{Width: 1100},
			validate: func(t *testing.T, b Bag) {
				requireFloat(t, 32, b.Spacing.PaddingTop)
			},
		},
		{
			name: "narrow hover",
			ctx:  Context{Width: 500, States: []string{"hover"}},
			validate: func(t *testing.T, b Bag) {
				require.NotNil(t, b.Color.Fill)
				assert.Equal(t, "#ef4444", b.Color.Fill.Color.Hex())
			},
		},
		{
			name: "more modifiers win",
			ctx:  Context{Width: 800, States: []string{"hover"}},
			validate: func(t *testing.T, b Bag) {
				require.NotNil(t, b.Color.Fill)
				assert.Equal(t, "#3b82f6", b.Color.Fill.Color.Hex())
			},
		},
		{
			name: "attribute",
			ctx:  Context{Width: 800, Attributes: map[string]string{"data-state": "open"}},
			validate: func(t *testing.T, b Bag) {
				requireFloat(t, 0.5, b.Effects.Opacity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, a.ResolveFor(tt.ctx))
		})
	}

	// Resolving never mutates the assembled bags.
	requireFloat(t, 8, a.Unconditional.Spacing.PaddingTop)
}

func TestContextMatchesAttributes(t *testing.T) {
	ctx := Context{Attributes: map[string]string{
		"class": "card  featured",
		"lang":  "en-US",
		"href":  "https://example.com/docs.pdf",
	}}
	tests := []struct {
		attr Attribute
		want bool
	}{
		{Attribute{Name: "href"}, true},
		{Attribute{Name: "title"}, false},
		{Attribute{Name: "class", Operator: "~=", Value: "featured"}, true},
		{Attribute{Name: "class", Operator: "~=", Value: "feat"}, false},
		{Attribute{Name: "lang", Operator: "|=", Value: "en"}, true},
		{Attribute{Name: "href", Operator: "^=", Value: "https"}, true},
		{Attribute{Name: "href", Operator: "$=", Value: ".pdf"}, true},
		{Attribute{Name: "href", Operator: "*=", Value: "example"}, true},
		{Attribute{Name: "lang", Operator: "=", Value: "en"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.attr.String(), func(t *testing.T) {
			mods := []Modifier{{Kind: ModifierAttribute, Name: tt.attr.String(), Attribute: &tt.attr}}
			assert.Equal(t, tt.want, ctx.Matches(mods))
		})
	}
}
