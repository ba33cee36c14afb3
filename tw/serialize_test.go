package tw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corners(v float64) BorderStyles {
	return BorderStyles{RadiusTopLeft: ptr(v), RadiusTopRight: ptr(v), RadiusBottomRight: ptr(v), RadiusBottomLeft: ptr(v)}
}

func TestSerialize(t *testing.T) {
	red, _ := ParseColor("#ff0000")
	blue, _ := ParseColor("#3b82f6")

	tests := []struct {
		name string
		bag  Bag
		want []string
	}{
		{name: "empty bag", bag: Bag{}, want: nil},
		{name: "preset radius", bag: Bag{Border: corners(8)}, want: []string{"rounded-lg"}},
		{name: "radius within tolerance", bag: Bag{Border: corners(8.0004)}, want: []string{"rounded-lg"}},
		{name: "radius just off preset", bag: Bag{Border: corners(12.01)}, want: []string{"rounded-[12.01]"}},
		{name: "arbitrary radius without unit", bag: Bag{Border: corners(10)}, want: []string{"rounded-[10]"}},
		{name: "off-palette fill", bag: Bag{Color: ColorStyles{Fill: ptr(SolidPaint(red))}}, want: []string{"bg-[#ff0000]"}},
		{name: "palette fill with alpha", bag: Bag{Color: ColorStyles{Fill: ptr(SolidPaint(blue.WithAlpha(0.5)))}}, want: []string{"bg-blue-500/50"}},
		{
			name: "uniform padding",
			bag:  Bag{Spacing: SpacingStyles{PaddingTop: ptr(16.0), PaddingRight: ptr(16.0), PaddingBottom: ptr(16.0), PaddingLeft: ptr(16.0)}},
			want: []string{"p-4"},
		},
		{
			name: "axis padding",
			bag:  Bag{Spacing: SpacingStyles{PaddingTop: ptr(24.0), PaddingRight: ptr(16.0), PaddingBottom: ptr(24.0), PaddingLeft: ptr(16.0)}},
			want: []string{"px-4", "py-6"},
		},
		{name: "negative margin", bag: Bag{Spacing: SpacingStyles{MarginTop: Px(-16)}}, want: []string{"-mt-4"}},
		{name: "gap", bag: Bag{Spacing: SpacingStyles{ItemSpacing: ptr(16.0), CounterAxisSpacing: ptr(16.0)}}, want: []string{"gap-4"}},
		{name: "fractional step", bag: Bag{Layout: LayoutStyles{Width: Px(10)}}, want: []string{"w-2.5"}},
		{name: "percent literal", bag: Bag{Layout: LayoutStyles{Width: &Length{Value: 100, Unit: "%"}}}, want: []string{"w-full"}},
		{name: "size", bag: Bag{Layout: LayoutStyles{Width: Px(16), Height: Px(16)}}, want: []string{"size-4"}},
		{name: "text color", bag: Bag{Color: ColorStyles{TextFill: ptr(SolidPaint(Color{A: 1}))}}, want: []string{"text-black"}},
		{name: "weight off scale", bag: Bag{Typography: TypographyStyles{FontWeight: ptr(550)}}, want: []string{"font-[550]"}},
		{name: "line height multiplier", bag: Bag{Typography: TypographyStyles{LineHeight: &Length{Value: 1.4}}}, want: []string{"leading-[140%]"}},
		{name: "negative blur clamps to zero", bag: Bag{Effects: EffectStyles{LayerBlur: ptr(-2.0)}}, want: []string{"blur-none"}},
		{name: "no shadow", bag: Bag{Effects: EffectStyles{Shadows: []Shadow{}}}, want: []string{"shadow-none"}},
		{name: "negative rotation", bag: Bag{Transform: TransformStyles{Rotate: ptr(-45.0)}}, want: []string{"-rotate-45"}},
		{name: "uniform scale", bag: Bag{Transform: TransformStyles{ScaleX: ptr(1.1), ScaleY: ptr(1.1)}}, want: []string{"scale-110"}},
		{
			name: "custom animation",
			bag:  Bag{Motion: MotionStyles{Animation: &Animation{Name: "spin", Duration: 500, Easing: "linear", Iterations: 3}}},
			want: []string{"animate-[spin_500ms_linear_3]"},
		},
		{
			name: "important",
			bag: Bag{
				Spacing:   SpacingStyles{PaddingTop: ptr(16.0), PaddingRight: ptr(16.0), PaddingBottom: ptr(16.0), PaddingLeft: ptr(16.0)},
				Important: map[Property]bool{PropPaddingTop: true},
			},
			want: []string{"!p-4"},
		},
		{name: "border widths", bag: Bag{Border: BorderStyles{StrokeTop: ptr(2.0)}}, want: []string{"border-t-2"}},
		{
			name: "custom property font size",
			bag:  Bag{Extra: map[Property]Value{PropFontSize: keyword("var(--size)")}},
			want: []string{"text-(length:--size)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(&tt.bag, nil))
		})
	}
}

func TestSerializeGradient(t *testing.T) {
	red, _ := ParseColor("#ef4444")
	blue, _ := ParseColor("#3b82f6")

	two := Bag{Color: ColorStyles{Fill: &Paint{
		Type:  PaintLinearGradient,
		Angle: 90,
		Stops: []GradientStop{{Color: red, Position: 0}, {Color: blue, Position: 1}},
	}}}
	assert.Equal(t, []string{"bg-linear-to-r", "from-red-500", "to-blue-500"}, Serialize(&two, nil))

	four := Bag{Color: ColorStyles{Fill: &Paint{
		Type:  PaintLinearGradient,
		Angle: 90,
		Stops: []GradientStop{
			{Color: red, Position: 0}, {Color: blue, Position: 0.3},
			{Color: red, Position: 0.6}, {Color: blue, Position: 1},
		},
	}}}
	tokens := Serialize(&four, nil)
	require.Len(t, tokens, 1)
	assert.Equal(t, "bg-[linear-gradient(90deg,_#ef4444_0%,_#3b82f6_30%,_#ef4444_60%,_#3b82f6_100%)]", tokens[0])

	again := compile(tokens[0])
	require.Empty(t, again.Literals)
	assert.Equal(t, four.Color.Fill, again.Unconditional.Color.Fill)
}

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		"flex flex-col items-center justify-between gap-4 p-6 rounded-lg bg-blue-500 text-white font-bold text-lg",
		"-mt-4 mx-auto w-1/2 h-screen",
		"shadow-md opacity-50 blur-sm rotate-45 scale-110 translate-x-1/2",
		"bg-linear-to-r from-red-500 via-white to-blue-500",
		"bg-radial from-red-500 from-10% to-blue-500 to-90%",
		"hover:bg-red-500 md:hover:p-4 [data-state=open]:opacity-75",
		"grid grid-cols-3 col-span-2 z-10 absolute top-0 left-1/2",
		"rounded-t-lg rounded-b-none border-2 border-gray-200 border-dashed",
		"w-[320] rounded-[10] text-[#1da1f2] tracking-tight leading-6",
		"transition-colors duration-300 ease-in-out animate-spin",
		"!p-4 custom-class italic underline uppercase",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			a := compile(in)
			out := SerializeAssembled(&a, nil)
			b := compile(out)
			assert.Equal(t, a, b, "serialized as %q", out)
		})
	}
}

func TestSerializeValuesSurviveCompile(t *testing.T) {
	blue, _ := ParseColor("#3b82f6")
	lengthOf := func(l *Length) float64 {
		if l == nil {
			return -1
		}
		return l.Value
	}
	valueOf := func(v *float64) float64 {
		if v == nil {
			return -1
		}
		return *v
	}

	tests := []struct {
		name string
		bag  Bag
		get  func(b *Bag) float64
	}{
		{"radius above preset", Bag{Border: corners(12.01)}, func(b *Bag) float64 { return valueOf(b.Border.RadiusTopLeft) }},
		{"radius below preset", Bag{Border: corners(7.999)}, func(b *Bag) float64 { return valueOf(b.Border.RadiusTopLeft) }},
		{"padding off step", Bag{Spacing: SpacingStyles{PaddingLeft: ptr(36.99)}}, func(b *Bag) float64 { return valueOf(b.Spacing.PaddingLeft) }},
		{"gap off step", Bag{Spacing: SpacingStyles{ItemSpacing: ptr(8.99)}}, func(b *Bag) float64 { return valueOf(b.Spacing.ItemSpacing) }},
		{"font size off preset", Bag{Typography: TypographyStyles{FontSize: ptr(13.99)}}, func(b *Bag) float64 { return valueOf(b.Typography.FontSize) }},
		{"line height off preset", Bag{Typography: TypographyStyles{LineHeight: &Length{Value: 1.37}}}, func(b *Bag) float64 { return lengthOf(b.Typography.LineHeight) }},
		{"blur off preset", Bag{Effects: EffectStyles{LayerBlur: ptr(11.99)}}, func(b *Bag) float64 { return valueOf(b.Effects.LayerBlur) }},
		{"width percent off fraction", Bag{Layout: LayoutStyles{Width: &Length{Value: 33.34, Unit: "%"}}}, func(b *Bag) float64 { return lengthOf(b.Layout.Width) }},
		{"width percent on fraction", Bag{Layout: LayoutStyles{Width: &Length{Value: 100.0 / 3, Unit: "%"}}}, func(b *Bag) float64 { return lengthOf(b.Layout.Width) }},
		{"opacity", Bag{Effects: EffectStyles{Opacity: ptr(0.337)}}, func(b *Bag) float64 { return valueOf(b.Effects.Opacity) }},
		{
			"fill alpha",
			Bag{Color: ColorStyles{Fill: ptr(SolidPaint(blue.WithAlpha(0.3333)))}},
			func(b *Bag) float64 {
				if b.Color.Fill == nil {
					return -1
				}
				return b.Color.Fill.Color.A
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Serialize(&tt.bag, nil)
			require.NotEmpty(t, tokens)
			a := compile(strings.Join(tokens, " "))
			require.Empty(t, a.Literals, "serialized as %v", tokens)
			assert.InDelta(t, tt.get(&tt.bag), tt.get(&a.Unconditional), 1e-3, "serialized as %v", tokens)
		})
	}
}

func TestSerializeIsIdempotent(t *testing.T) {
	inputs := []string{
		"w-[50vw] text-[#1DA1F2] leading-[140%] tracking-[0.1em]",
		"shadow-[0_4px_6px_-1px_rgba(0,0,0,0.1)] animate-[wiggle_1s_linear_infinite]",
		"p-(--gap) bg-(--brand) bg-blue-500/[0.375] -translate-y-(--offset)",
		"[display:contents] [text-align:justify] rotate-[12.5deg] opacity-[0.33]",
		"flex-1 grow-0 order-first aspect-video overflow-x-auto",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			a := compile(in)
			first := SerializeAssembled(&a, nil)
			b := compile(first)
			assert.Equal(t, first, SerializeAssembled(&b, nil))
		})
	}
}

func TestSerializeNeverDropsProperties(t *testing.T) {
	a := compile("p-(--gap) w-[calc(100%-2rem)] text-(length:--size) bg-(--brand)")
	tokens := Serialize(&a.Unconditional, nil)
	assert.Contains(t, tokens, "pt-(--gap)")
	assert.Contains(t, tokens, "pl-(--gap)")
	assert.Contains(t, tokens, "w-[calc(100%-2rem)]")
	assert.Contains(t, tokens, "text-(length:--size)")
	assert.Contains(t, tokens, "bg-(--brand)")
}
