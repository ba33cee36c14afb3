package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twconv/theme"
)

func compile(input string) Assembled { return Compile(input, Options{}) }

func requireFloat(t *testing.T, want float64, got *float64) {
	t.Helper()
	require.NotNil(t, got)
	assert.InDelta(t, want, *got, 1e-9)
}

func requireLength(t *testing.T, want Length, got *Length) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.Keyword, got.Keyword)
	assert.Equal(t, want.Unit, got.Unit)
	assert.InDelta(t, want.Value, got.Value, 1e-9)
}

func TestParseClassesWithVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, Assembled)
	}{
		{
			name:  "flex container",
			input: "flex gap-4 p-6",
			validate: func(t *testing.T, a Assembled) {
				sp := a.Unconditional.Spacing
				requireFloat(t, 16, sp.ItemSpacing)
				requireFloat(t, 16, sp.CounterAxisSpacing)
				for _, v := range []*float64{sp.PaddingTop, sp.PaddingRight, sp.PaddingBottom, sp.PaddingLeft} {
					requireFloat(t, 24, v)
				}
				assert.Equal(t, "HORIZONTAL", a.Unconditional.Layout.LayoutMode())
			},
		},
		{
			name:  "axis shorthands",
			input: "gap-x-4 py-6 px-4",
			validate: func(t *testing.T, a Assembled) {
				sp := a.Unconditional.Spacing
				requireFloat(t, 16, sp.ItemSpacing)
				assert.Nil(t, sp.CounterAxisSpacing)
				requireFloat(t, 24, sp.PaddingTop)
				requireFloat(t, 24, sp.PaddingBottom)
				requireFloat(t, 16, sp.PaddingLeft)
				requireFloat(t, 16, sp.PaddingRight)
			},
		},
		{
			name:  "hover variant",
			input: "bg-blue-500 hover:bg-blue-600",
			validate: func(t *testing.T, a Assembled) {
				require.NotNil(t, a.Unconditional.Color.Fill)
				assert.Equal(t, "#3b82f6", a.Unconditional.Color.Fill.Color.Hex())
				hover := a.Bag("hover")
				require.NotNil(t, hover)
				require.NotNil(t, hover.Color.Fill)
				assert.Equal(t, "#2563eb", hover.Color.Fill.Color.Hex())
			},
		},
		{
			name:  "dark mode variant",
			input: "bg-white dark:bg-gray-800 text-gray-900 dark:text-white",
			validate: func(t *testing.T, a Assembled) {
				dark := a.Bag("dark")
				require.NotNil(t, dark)
				assert.Equal(t, "#1f2937", dark.Color.Fill.Color.Hex())
				assert.Equal(t, "#ffffff", dark.Color.TextFill.Color.Hex())
				assert.Equal(t, "#111827", a.Unconditional.Color.TextFill.Color.Hex())
			},
		},
		{
			name:  "stacked modifiers share one key in either order",
			input: "md:hover:p-4 hover:md:m-2",
			validate: func(t *testing.T, a Assembled) {
				assert.Equal(t, []string{"md:hover"}, a.Keys)
				b := a.Bag("md:hover")
				requireFloat(t, 16, b.Spacing.PaddingLeft)
				requireLength(t, Length{Value: 8, Unit: "px"}, b.Spacing.MarginTop)
			},
		},
		{
			name:  "conditional records never leak into the base bag",
			input: "hover:bg-red-500 md:p-4",
			validate: func(t *testing.T, a Assembled) {
				assert.True(t, a.Unconditional.IsEmpty())
				assert.Equal(t, []string{"hover", "md"}, a.Keys)
			},
		},
		{
			name:  "unknown tokens are kept as literals in order",
			input: "p-4 my-widget foo:bar-1 hover:w-[10px",
			validate: func(t *testing.T, a Assembled) {
				assert.Equal(t, []string{"my-widget", "foo:bar-1", "hover:w-[10px"}, a.Literals)
				requireFloat(t, 16, a.Unconditional.Spacing.PaddingTop)
			},
		},
		{
			name:  "typography",
			input: "text-lg font-bold leading-tight tracking-wide italic uppercase underline text-center font-mono",
			validate: func(t *testing.T, a Assembled) {
				ty := a.Unconditional.Typography
				requireFloat(t, 18, ty.FontSize)
				require.NotNil(t, ty.FontWeight)
				assert.Equal(t, 700, *ty.FontWeight)
				requireLength(t, Length{Value: 1.25}, ty.LineHeight)
				requireLength(t, Length{Value: 0.025, Unit: "em"}, ty.LetterSpacing)
				assert.Equal(t, ptr(true), ty.Italic)
				assert.Equal(t, ptr("upper"), ty.TextCase)
				assert.Equal(t, ptr("underline"), ty.TextDecoration)
				assert.Equal(t, ptr("center"), ty.TextAlign)
				assert.Equal(t, ptr("Menlo"), ty.FontFamily)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, compile(tt.input))
		})
	}
}

func TestParseTokenIsPure(t *testing.T) {
	tokens := []string{"p-4", "-translate-x-4", "md:hover:bg-blue-500/50", "shadow-[0_4px_6px_-1px_rgba(0,0,0,0.1)]", "animate-spin"}
	for _, tok := range tokens {
		a, errA := ParseToken(tok, Options{})
		b, errB := ParseToken(tok, Options{})
		require.NoError(t, errA, tok)
		require.NoError(t, errB, tok)
		assert.Equal(t, a, b, tok)
	}
}

func TestModifierIsolation(t *testing.T) {
	base, err := ParseToken("bg-red-500", Options{})
	require.NoError(t, err)
	hover, err := ParseToken("hover:bg-red-500", Options{})
	require.NoError(t, err)

	assert.Equal(t, base.Property, hover.Property)
	assert.Equal(t, base.Value, hover.Value)
	assert.Equal(t, base.Variant, hover.Variant)
	assert.Equal(t, "", base.Key())
	assert.Equal(t, "hover", hover.Key())

	a := Assemble([]ParsedStyle{base, hover})
	assert.NotNil(t, a.Unconditional.Color.Fill)
	assert.NotNil(t, a.Bag("hover").Color.Fill)
}

func TestSignInversion(t *testing.T) {
	pos, err := ParseToken("translate-x-4", Options{})
	require.NoError(t, err)
	neg, err := ParseToken("-translate-x-4", Options{})
	require.NoError(t, err)

	assert.Equal(t, 16.0, pos.Value.Num)
	assert.Equal(t, -pos.Value.Num, neg.Value.Num)
	assert.Equal(t, "calc(var(--spacing) * 4)", pos.Value.Expr)
	assert.Equal(t, "calc(var(--spacing) * -4)", neg.Value.Expr)
	assert.True(t, neg.Negative)
}

func TestOrderSensitivity(t *testing.T) {
	a := compile("pl-4 p-8")
	requireFloat(t, 32, a.Unconditional.Spacing.PaddingLeft)

	b := compile("p-8 pl-4")
	sp := b.Unconditional.Spacing
	requireFloat(t, 16, sp.PaddingLeft)
	requireFloat(t, 32, sp.PaddingTop)
	requireFloat(t, 32, sp.PaddingRight)
	requireFloat(t, 32, sp.PaddingBottom)
}

func TestArbitraryWidthScenario(t *testing.T) {
	s, err := ParseToken("w-[320]", Options{})
	require.NoError(t, err)
	assert.Equal(t, PropWidth, s.Property)
	assert.Equal(t, number(320, "px"), s.Value)
	assert.Equal(t, VariantArbitrary, s.Variant)
}

func TestStrictMode(t *testing.T) {
	_, err := ParseToken("foo:p-4", Options{Strict: true})
	assert.ErrorIs(t, err, ErrUnknownModifier)

	_, err = ParseToken("foo:p-4", Options{})
	assert.ErrorIs(t, err, ErrUnknownUtility)

	_, err = ParseToken("hover:", Options{})
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestCustomThemeModifiers(t *testing.T) {
	th, err := theme.New(theme.DefaultPreset(), &theme.Preset{
		Layout: theme.LayoutPreset{
			Breakpoints: map[string]float64{"tablet": 900},
			States:      []string{"selected"},
		},
	})
	require.NoError(t, err)

	a := Compile("selected:tablet:p-4 sm:p-2", Options{Theme: th})
	assert.Empty(t, a.Literals)
	assert.Equal(t, []string{"tablet:selected", "sm"}, a.Keys)
	mods := a.Modifiers["tablet:selected"]
	require.Len(t, mods, 2)
	assert.Equal(t, 900.0, mods[0].Width)

	// Without the custom theme both modifiers are unknown.
	b := compile("selected:tablet:p-4")
	assert.Equal(t, []string{"selected:tablet:p-4"}, b.Literals)
}

func TestImportant(t *testing.T) {
	a := compile("!p-4 p-8 pt-2!")
	sp := a.Unconditional.Spacing
	requireFloat(t, 8, sp.PaddingTop)
	requireFloat(t, 16, sp.PaddingLeft)
	assert.True(t, a.Unconditional.Important[PropPaddingLeft])
}

func BenchmarkCompile(b *testing.B) {
	input := "flex flex-col items-center gap-4 p-6 md:p-8 hover:bg-blue-600 bg-blue-500 text-white rounded-lg shadow-md w-[320] -translate-x-4"
	for i := 0; i < b.N; i++ {
		_ = Compile(input, Options{})
	}
}
