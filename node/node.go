// Package node converts between design-tool node snapshots and style bags.
//
// A Node carries the subset of frame and text properties a design tool
// exposes (auto-layout, fills, strokes, effects, radii, text settings).
// FromBag and Node.Bag map that record onto the typed bag the class
// serializer reads, so a snapshot can be turned into a class string and
// back.
package node

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/agiangrant/twconv/tw"
)

// Layout modes.
const (
	LayoutNone       = "NONE"
	LayoutHorizontal = "HORIZONTAL"
	LayoutVertical   = "VERTICAL"
	LayoutGrid       = "GRID"
)

// Sizing modes for LayoutSizingHorizontal/Vertical.
const (
	SizingFixed = "FIXED"
	SizingFill  = "FILL"
	SizingHug   = "HUG"
)

// Effect types.
const (
	EffectDropShadow     = "DROP_SHADOW"
	EffectInnerShadow    = "INNER_SHADOW"
	EffectLayerBlur      = "LAYER_BLUR"
	EffectBackgroundBlur = "BACKGROUND_BLUR"
)

// Units for LetterSpacing and LineHeight.
const (
	UnitPixels  = "PIXELS"
	UnitPercent = "PERCENT"
	UnitAuto    = "AUTO"
)

// Vector is an x/y offset in px.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Effect is one shadow or blur. Radius is the blur radius in px.
type Effect struct {
	Type   string   `json:"type"`
	Color  tw.Color `json:"color,omitempty"`
	Offset Vector   `json:"offset,omitempty"`
	Radius float64  `json:"radius"`
	Spread float64  `json:"spread,omitempty"`
}

// Sides holds one value per edge.
type Sides struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Corners holds one radius per corner.
type Corners struct {
	TopLeft     float64 `json:"topLeft"`
	TopRight    float64 `json:"topRight"`
	BottomRight float64 `json:"bottomRight"`
	BottomLeft  float64 `json:"bottomLeft"`
}

// FontName is a family plus a style such as "Bold Italic".
type FontName struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

// Metric is a value with a PIXELS, PERCENT or AUTO unit.
type Metric struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Node is a design-tool node snapshot. Nil and empty fields are unset.
type Node struct {
	LayoutMode             string   `json:"layoutMode,omitempty"`
	LayoutWrap             string   `json:"layoutWrap,omitempty"`
	PrimaryAxisAlignItems  string   `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string   `json:"counterAxisAlignItems,omitempty"`
	LayoutSizingHorizontal string   `json:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   string   `json:"layoutSizingVertical,omitempty"`
	Width                  *float64 `json:"width,omitempty"`
	Height                 *float64 `json:"height,omitempty"`

	PaddingTop         *float64 `json:"paddingTop,omitempty"`
	PaddingRight       *float64 `json:"paddingRight,omitempty"`
	PaddingBottom      *float64 `json:"paddingBottom,omitempty"`
	PaddingLeft        *float64 `json:"paddingLeft,omitempty"`
	ItemSpacing        *float64 `json:"itemSpacing,omitempty"`
	CounterAxisSpacing *float64 `json:"counterAxisSpacing,omitempty"`

	Fills     []tw.Paint `json:"fills,omitempty"`
	TextFills []tw.Paint `json:"textFills,omitempty"`
	Strokes   []tw.Paint `json:"strokes,omitempty"`
	// StrokeWeight is set when all sides match; IndividualStrokeWeights
	// otherwise.
	StrokeWeight            *float64 `json:"strokeWeight,omitempty"`
	IndividualStrokeWeights *Sides   `json:"individualStrokeWeights,omitempty"`
	// CornerRadius is set when all corners match; RectangleCornerRadii
	// otherwise.
	CornerRadius         *float64 `json:"cornerRadius,omitempty"`
	RectangleCornerRadii *Corners `json:"rectangleCornerRadii,omitempty"`

	Effects  []Effect `json:"effects,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`

	FontSize            *float64  `json:"fontSize,omitempty"`
	FontName            *FontName `json:"fontName,omitempty"`
	LetterSpacing       *Metric   `json:"letterSpacing,omitempty"`
	LineHeight          *Metric   `json:"lineHeight,omitempty"`
	TextAlignHorizontal string    `json:"textAlignHorizontal,omitempty"`
	TextCase            string    `json:"textCase,omitempty"`
	TextDecoration      string    `json:"textDecoration,omitempty"`
}

// ToJSON serializes the node.
func (n *Node) ToJSON() (string, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Parse reads a node snapshot from JSON.
func Parse(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

var (
	primaryAlign = map[string]string{
		"flex-start": "MIN", "center": "CENTER", "flex-end": "MAX", "space-between": "SPACE_BETWEEN",
	}
	counterAlign = map[string]string{
		"flex-start": "MIN", "center": "CENTER", "flex-end": "MAX", "baseline": "BASELINE", "stretch": "STRETCH",
	}
	textAlign = map[string]string{
		"left": "LEFT", "center": "CENTER", "right": "RIGHT", "justify": "JUSTIFIED",
	}
	textCase = map[string]string{
		"upper": "UPPER", "lower": "LOWER", "title": "TITLE", "original": "ORIGINAL",
	}
	textDecoration = map[string]string{
		"underline": "UNDERLINE", "strikethrough": "STRIKETHROUGH", "none": "NONE",
	}

	weightStyles = []struct {
		weight int
		name   string
	}{
		{100, "Thin"}, {200, "ExtraLight"}, {300, "Light"}, {400, "Regular"}, {500, "Medium"},
		{600, "SemiBold"}, {700, "Bold"}, {800, "ExtraBold"}, {900, "Black"},
	}
)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

var (
	primaryAlignCSS   = invert(primaryAlign)
	counterAlignCSS   = invert(counterAlign)
	textAlignCSS      = invert(textAlign)
	textCaseCSS       = invert(textCase)
	textDecorationCSS = invert(textDecoration)
)

func ptr[T any](v T) *T { return &v }

func clonePaints(p []tw.Paint) []tw.Paint {
	out := make([]tw.Paint, len(p))
	for i, paint := range p {
		paint.Stops = append([]tw.GradientStop(nil), paint.Stops...)
		out[i] = paint
	}
	return out
}

func same(vals ...*float64) bool {
	for _, v := range vals {
		if v == nil || *v != *vals[0] {
			return false
		}
	}
	return true
}

func cp(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(*v)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// FromBag builds a node snapshot from the unconditional style bag. Fields
// with no node equivalent (margins, positioning, motion, non-px lengths)
// are dropped.
func FromBag(b tw.Bag) *Node {
	n := &Node{LayoutMode: b.Layout.LayoutMode()}
	if n.LayoutMode == LayoutNone {
		n.LayoutMode = ""
	}
	l := b.Layout
	if l.Wrap != nil && *l.Wrap == "wrap" {
		n.LayoutWrap = "WRAP"
	}
	if l.Justify != nil {
		n.PrimaryAxisAlignItems = primaryAlign[*l.Justify]
	}
	if l.Align != nil {
		n.CounterAxisAlignItems = counterAlign[*l.Align]
	}
	n.LayoutSizingHorizontal, n.Width = sizing(l.Width)
	n.LayoutSizingVertical, n.Height = sizing(l.Height)

	s := b.Spacing
	n.PaddingTop, n.PaddingRight, n.PaddingBottom, n.PaddingLeft = cp(s.PaddingTop), cp(s.PaddingRight), cp(s.PaddingBottom), cp(s.PaddingLeft)
	n.ItemSpacing, n.CounterAxisSpacing = cp(s.ItemSpacing), cp(s.CounterAxisSpacing)

	if b.Color.Fill != nil {
		n.Fills = clonePaints([]tw.Paint{*b.Color.Fill})
	}
	if b.Color.TextFill != nil {
		n.TextFills = clonePaints([]tw.Paint{*b.Color.TextFill})
	}
	if b.Color.Stroke != nil {
		n.Strokes = clonePaints([]tw.Paint{*b.Color.Stroke})
	}

	br := b.Border
	switch {
	case same(br.StrokeTop, br.StrokeRight, br.StrokeBottom, br.StrokeLeft):
		n.StrokeWeight = ptr(*br.StrokeTop)
	case br.StrokeTop != nil || br.StrokeRight != nil || br.StrokeBottom != nil || br.StrokeLeft != nil:
		n.IndividualStrokeWeights = &Sides{deref(br.StrokeTop), deref(br.StrokeRight), deref(br.StrokeBottom), deref(br.StrokeLeft)}
	}
	switch {
	case same(br.RadiusTopLeft, br.RadiusTopRight, br.RadiusBottomRight, br.RadiusBottomLeft):
		n.CornerRadius = ptr(*br.RadiusTopLeft)
	case br.RadiusTopLeft != nil || br.RadiusTopRight != nil || br.RadiusBottomRight != nil || br.RadiusBottomLeft != nil:
		n.RectangleCornerRadii = &Corners{deref(br.RadiusTopLeft), deref(br.RadiusTopRight), deref(br.RadiusBottomRight), deref(br.RadiusBottomLeft)}
	}

	e := b.Effects
	for _, sh := range e.Shadows {
		typ := EffectDropShadow
		if sh.Inset {
			typ = EffectInnerShadow
		}
		n.Effects = append(n.Effects, Effect{Type: typ, Color: sh.Color, Offset: Vector{sh.X, sh.Y}, Radius: sh.Blur, Spread: sh.Spread})
	}
	if e.LayerBlur != nil {
		n.Effects = append(n.Effects, Effect{Type: EffectLayerBlur, Radius: *e.LayerBlur})
	}
	if e.BackgroundBlur != nil {
		n.Effects = append(n.Effects, Effect{Type: EffectBackgroundBlur, Radius: *e.BackgroundBlur})
	}
	n.Opacity = cp(e.Opacity)
	if r := b.Transform.Rotate; r != nil {
		// Design tools rotate counter-clockwise.
		n.Rotation = ptr(-*r)
	}

	t := b.Typography
	n.FontSize = cp(t.FontSize)
	if t.FontFamily != nil || t.FontWeight != nil || t.Italic != nil {
		fn := &FontName{Style: fontStyle(t.FontWeight, t.Italic)}
		if t.FontFamily != nil {
			fn.Family = *t.FontFamily
		}
		n.FontName = fn
	}
	if ls := t.LetterSpacing; ls != nil {
		if ls.Unit == "em" {
			n.LetterSpacing = &Metric{Value: round(ls.Value * 100), Unit: UnitPercent}
		} else {
			n.LetterSpacing = &Metric{Value: ls.Value, Unit: UnitPixels}
		}
	}
	if lh := t.LineHeight; lh != nil {
		if lh.Unit == "px" {
			n.LineHeight = &Metric{Value: lh.Value, Unit: UnitPixels}
		} else {
			n.LineHeight = &Metric{Value: round(lh.Value * 100), Unit: UnitPercent}
		}
	}
	if t.TextAlign != nil {
		n.TextAlignHorizontal = textAlign[*t.TextAlign]
	}
	if t.TextCase != nil {
		n.TextCase = textCase[*t.TextCase]
	}
	if t.TextDecoration != nil {
		n.TextDecoration = textDecoration[*t.TextDecoration]
	}
	return n
}

func sizing(l *tw.Length) (string, *float64) {
	switch {
	case l == nil:
		return "", nil
	case l.IsPx():
		return SizingFixed, ptr(l.Value)
	case l.Keyword == "fit-content":
		return SizingHug, nil
	case l.Keyword == "" && l.Unit == "%" && l.Value == 100:
		return SizingFill, nil
	}
	return "", nil
}

// fontStyle names a weight and slant the way design tools do:
// 700, italic → "Bold Italic"; 400 → "Regular"; 400, italic → "Italic".
func fontStyle(weight *int, italic *bool) string {
	name := ""
	if weight != nil {
		name = "Regular"
		for _, ws := range weightStyles {
			if ws.weight == *weight {
				name = ws.name
			}
		}
	}
	if italic != nil && *italic {
		if name == "" || name == "Regular" {
			return "Italic"
		}
		return name + " Italic"
	}
	return name
}

// parseFontStyle is the inverse of fontStyle. An empty style sets nothing.
func parseFontStyle(style string) (*int, *bool) {
	if style == "" {
		return nil, nil
	}
	if style == "Italic" {
		return ptr(400), ptr(true)
	}
	italic := false
	if base, ok := strings.CutSuffix(style, " Italic"); ok {
		style, italic = base, true
	}
	for _, ws := range weightStyles {
		if ws.name == style {
			return ptr(ws.weight), ptr(italic)
		}
	}
	return nil, ptr(italic)
}

func round(v float64) float64 { return math.Round(v*10000) / 10000 }

// Bag converts the snapshot back into a style bag.
func (n *Node) Bag() tw.Bag {
	var b tw.Bag
	switch n.LayoutMode {
	case LayoutHorizontal:
		b.Layout.Display = ptr("flex")
	case LayoutVertical:
		b.Layout.Display = ptr("flex")
		b.Layout.Direction = ptr("column")
	case LayoutGrid:
		b.Layout.Display = ptr("grid")
	}
	if n.LayoutWrap == "WRAP" {
		b.Layout.Wrap = ptr("wrap")
	}
	if v, ok := primaryAlignCSS[n.PrimaryAxisAlignItems]; ok {
		b.Layout.Justify = ptr(v)
	}
	if v, ok := counterAlignCSS[n.CounterAxisAlignItems]; ok {
		b.Layout.Align = ptr(v)
	}
	b.Layout.Width = length(n.LayoutSizingHorizontal, n.Width)
	b.Layout.Height = length(n.LayoutSizingVertical, n.Height)

	b.Spacing.PaddingTop, b.Spacing.PaddingRight = cp(n.PaddingTop), cp(n.PaddingRight)
	b.Spacing.PaddingBottom, b.Spacing.PaddingLeft = cp(n.PaddingBottom), cp(n.PaddingLeft)
	b.Spacing.ItemSpacing, b.Spacing.CounterAxisSpacing = cp(n.ItemSpacing), cp(n.CounterAxisSpacing)

	// Bags hold one paint per slot; the top-most paint wins.
	if len(n.Fills) > 0 {
		b.Color.Fill = &clonePaints(n.Fills[len(n.Fills)-1:])[0]
	}
	if len(n.TextFills) > 0 {
		b.Color.TextFill = &clonePaints(n.TextFills[len(n.TextFills)-1:])[0]
	}
	if len(n.Strokes) > 0 {
		b.Color.Stroke = &clonePaints(n.Strokes[len(n.Strokes)-1:])[0]
	}

	br := &b.Border
	if w := n.StrokeWeight; w != nil {
		br.StrokeTop, br.StrokeRight, br.StrokeBottom, br.StrokeLeft = ptr(*w), ptr(*w), ptr(*w), ptr(*w)
	} else if s := n.IndividualStrokeWeights; s != nil {
		br.StrokeTop, br.StrokeRight, br.StrokeBottom, br.StrokeLeft = ptr(s.Top), ptr(s.Right), ptr(s.Bottom), ptr(s.Left)
	}
	if r := n.CornerRadius; r != nil {
		br.RadiusTopLeft, br.RadiusTopRight, br.RadiusBottomRight, br.RadiusBottomLeft = ptr(*r), ptr(*r), ptr(*r), ptr(*r)
	} else if c := n.RectangleCornerRadii; c != nil {
		br.RadiusTopLeft, br.RadiusTopRight = ptr(c.TopLeft), ptr(c.TopRight)
		br.RadiusBottomRight, br.RadiusBottomLeft = ptr(c.BottomRight), ptr(c.BottomLeft)
	}

	for _, e := range n.Effects {
		switch e.Type {
		case EffectDropShadow, EffectInnerShadow:
			b.Effects.Shadows = append(b.Effects.Shadows, tw.Shadow{
				X: e.Offset.X, Y: e.Offset.Y, Blur: e.Radius, Spread: e.Spread,
				Color: e.Color, Inset: e.Type == EffectInnerShadow,
			})
		case EffectLayerBlur:
			b.Effects.LayerBlur = ptr(e.Radius)
		case EffectBackgroundBlur:
			b.Effects.BackgroundBlur = ptr(e.Radius)
		}
	}
	b.Effects.Opacity = cp(n.Opacity)
	if n.Rotation != nil {
		b.Transform.Rotate = ptr(-*n.Rotation)
	}

	t := &b.Typography
	t.FontSize = cp(n.FontSize)
	if fn := n.FontName; fn != nil {
		if fn.Family != "" {
			t.FontFamily = ptr(fn.Family)
		}
		t.FontWeight, t.Italic = parseFontStyle(fn.Style)
	}
	if ls := n.LetterSpacing; ls != nil {
		switch ls.Unit {
		case UnitPercent:
			t.LetterSpacing = &tw.Length{Value: round(ls.Value / 100), Unit: "em"}
		case UnitPixels:
			t.LetterSpacing = tw.Px(ls.Value)
		}
	}
	if lh := n.LineHeight; lh != nil {
		switch lh.Unit {
		case UnitPercent:
			t.LineHeight = &tw.Length{Value: round(lh.Value / 100)}
		case UnitPixels:
			t.LineHeight = tw.Px(lh.Value)
		}
	}
	if v, ok := textAlignCSS[n.TextAlignHorizontal]; ok {
		t.TextAlign = ptr(v)
	}
	if v, ok := textCaseCSS[n.TextCase]; ok {
		t.TextCase = ptr(v)
	}
	if v, ok := textDecorationCSS[n.TextDecoration]; ok {
		t.TextDecoration = ptr(v)
	}
	return b
}

func length(mode string, px *float64) *tw.Length {
	switch mode {
	case SizingFill:
		return &tw.Length{Value: 100, Unit: "%"}
	case SizingHug:
		return &tw.Length{Keyword: "fit-content"}
	}
	if px != nil {
		return tw.Px(*px)
	}
	return nil
}
