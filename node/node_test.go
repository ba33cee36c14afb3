package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twconv/theme"
	"github.com/agiangrant/twconv/tw"
)

func color(t *testing.T, s string) tw.Color {
	t.Helper()
	c, ok := tw.ParseColor(s)
	require.True(t, ok, s)
	return c
}

func card(t *testing.T) *Node {
	return &Node{
		LayoutMode:             LayoutVertical,
		PrimaryAxisAlignItems:  "CENTER",
		CounterAxisAlignItems:  "MIN",
		LayoutSizingHorizontal: SizingFixed,
		Width:                  ptr(320.0),
		LayoutSizingVertical:   SizingHug,
		PaddingTop:             ptr(16.0),
		PaddingRight:           ptr(16.0),
		PaddingBottom:          ptr(16.0),
		PaddingLeft:            ptr(16.0),
		ItemSpacing:            ptr(8.0),
		CounterAxisSpacing:     ptr(8.0),
		Fills:                  []tw.Paint{tw.SolidPaint(color(t, "#3b82f6"))},
		Strokes:                []tw.Paint{tw.SolidPaint(color(t, "#e5e7eb"))},
		StrokeWeight:           ptr(1.0),
		CornerRadius:           ptr(8.0),
		Effects: []Effect{
			{Type: EffectDropShadow, Color: color(t, "rgba(0,0,0,0.1)"), Offset: Vector{Y: 4}, Radius: 6, Spread: -1},
			{Type: EffectBackgroundBlur, Radius: 8},
		},
		Opacity:             ptr(0.9),
		Rotation:            ptr(-45.0),
		FontSize:            ptr(14.0),
		FontName:            &FontName{Family: "Inter", Style: "Bold"},
		LetterSpacing:       &Metric{Value: -2.5, Unit: UnitPercent},
		LineHeight:          &Metric{Value: 150, Unit: UnitPercent},
		TextAlignHorizontal: "CENTER",
		TextCase:            "UPPER",
	}
}

func TestNodeRoundTrip(t *testing.T) {
	th := theme.Default()
	n := card(t)

	b := n.Bag()
	classes := tw.SerializeAssembled(&tw.Assembled{Unconditional: b}, th)
	require.NotEmpty(t, classes)

	back := FromBag(tw.Compile(classes, tw.Options{Theme: th}).Unconditional)
	assert.Equal(t, n, back, classes)

	// A second trip through the class string is a fixed point.
	again := tw.SerializeAssembled(&tw.Assembled{Unconditional: back.Bag()}, th)
	assert.Equal(t, classes, again)
}

func TestFromBag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, *Node)
	}{
		{
			name:  "horizontal auto layout",
			input: "flex flex-wrap justify-between items-center gap-x-4 w-full h-12",
			validate: func(t *testing.T, n *Node) {
				assert.Equal(t, LayoutHorizontal, n.LayoutMode)
				assert.Equal(t, "WRAP", n.LayoutWrap)
				assert.Equal(t, "SPACE_BETWEEN", n.PrimaryAxisAlignItems)
				assert.Equal(t, "CENTER", n.CounterAxisAlignItems)
				assert.Equal(t, SizingFill, n.LayoutSizingHorizontal)
				assert.Nil(t, n.Width)
				assert.Equal(t, SizingFixed, n.LayoutSizingVertical)
				assert.Equal(t, ptr(48.0), n.Height)
				assert.Equal(t, ptr(16.0), n.ItemSpacing)
				assert.Nil(t, n.CounterAxisSpacing)
			},
		},
		{
			name:  "mixed corners and strokes",
			input: "rounded-t-lg border-b-2",
			validate: func(t *testing.T, n *Node) {
				assert.Nil(t, n.CornerRadius)
				assert.Equal(t, &Corners{TopLeft: 8, TopRight: 8}, n.RectangleCornerRadii)
				assert.Nil(t, n.StrokeWeight)
				assert.Equal(t, &Sides{Bottom: 2}, n.IndividualStrokeWeights)
			},
		},
		{
			name:  "effects in order",
			input: "shadow-[inset_0_1px_#fff] blur-sm",
			validate: func(t *testing.T, n *Node) {
				require.Len(t, n.Effects, 2)
				assert.Equal(t, EffectInnerShadow, n.Effects[0].Type)
				assert.Equal(t, 1.0, n.Effects[0].Offset.Y)
				assert.Equal(t, Effect{Type: EffectLayerBlur, Radius: 4}, n.Effects[1])
			},
		},
		{
			name:  "italic regular weight",
			input: "font-normal italic leading-[24px] tracking-[2px]",
			validate: func(t *testing.T, n *Node) {
				assert.Equal(t, &FontName{Style: "Italic"}, n.FontName)
				assert.Equal(t, &Metric{Value: 24, Unit: UnitPixels}, n.LineHeight)
				assert.Equal(t, &Metric{Value: 2, Unit: UnitPixels}, n.LetterSpacing)
			},
		},
		{
			name:  "block display has no auto layout",
			input: "block p-2",
			validate: func(t *testing.T, n *Node) {
				assert.Empty(t, n.LayoutMode)
				assert.Equal(t, ptr(8.0), n.PaddingLeft)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, FromBag(tw.Compile(tt.input, tw.Options{}).Unconditional))
		})
	}
}

func TestFontStyle(t *testing.T) {
	tests := []struct {
		weight *int
		italic *bool
		style  string
	}{
		{ptr(700), nil, "Bold"},
		{ptr(700), ptr(true), "Bold Italic"},
		{ptr(400), ptr(true), "Italic"},
		{ptr(600), ptr(false), "SemiBold"},
		{nil, ptr(true), "Italic"},
		{ptr(550), nil, "Regular"},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			assert.Equal(t, tt.style, fontStyle(tt.weight, tt.italic))
		})
	}

	w, it := parseFontStyle("ExtraBold Italic")
	assert.Equal(t, ptr(800), w)
	assert.Equal(t, ptr(true), it)
}

func TestParseJSON(t *testing.T) {
	n, err := Parse([]byte(`{"layoutMode":"HORIZONTAL","itemSpacing":12,"cornerRadius":4}`))
	require.NoError(t, err)
	assert.Equal(t, "flex gap-x-3 rounded", tw.SerializeAssembled(&tw.Assembled{Unconditional: n.Bag()}, theme.Default()))

	out, err := n.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"layoutMode":"HORIZONTAL","itemSpacing":12,"cornerRadius":4}`, out)

	_, err = Parse([]byte(`{`))
	assert.Error(t, err)
}
