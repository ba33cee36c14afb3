package tw

import "strings"

// Length is a dimension with a unit ("px", "%", "vw", "em", or "" for
// unit-less multipliers), or a Keyword such as "auto" or "fit-content".
type Length struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit,omitempty"`
	Keyword string  `json:"keyword,omitempty"`
}

// Px returns a pixel length.
func Px(v float64) *Length { return &Length{Value: v, Unit: "px"} }

// IsPx reports whether l is a plain pixel length.
func (l *Length) IsPx() bool { return l != nil && l.Keyword == "" && l.Unit == "px" }

// SpacingStyles holds padding, margins and auto-layout spacing in px.
type SpacingStyles struct {
	PaddingTop         *float64 `json:"paddingTop,omitempty"`
	PaddingRight       *float64 `json:"paddingRight,omitempty"`
	PaddingBottom      *float64 `json:"paddingBottom,omitempty"`
	PaddingLeft        *float64 `json:"paddingLeft,omitempty"`
	MarginTop          *Length  `json:"marginTop,omitempty"`
	MarginRight        *Length  `json:"marginRight,omitempty"`
	MarginBottom       *Length  `json:"marginBottom,omitempty"`
	MarginLeft         *Length  `json:"marginLeft,omitempty"`
	ItemSpacing        *float64 `json:"itemSpacing,omitempty"`
	CounterAxisSpacing *float64 `json:"counterAxisSpacing,omitempty"`
}

// ColorStyles holds the background fill, border stroke and text fill.
type ColorStyles struct {
	Fill     *Paint `json:"fill,omitempty"`
	Stroke   *Paint `json:"stroke,omitempty"`
	TextFill *Paint `json:"textFill,omitempty"`
}

// TypographyStyles holds font and text settings. LineHeight has unit ""
// for multipliers and "px" for fixed heights; LetterSpacing uses "em" or "px".
type TypographyStyles struct {
	FontSize       *float64 `json:"fontSize,omitempty"`
	FontFamily     *string  `json:"fontFamily,omitempty"`
	FontWeight     *int     `json:"fontWeight,omitempty"`
	Italic         *bool    `json:"italic,omitempty"`
	LineHeight     *Length  `json:"lineHeight,omitempty"`
	LetterSpacing  *Length  `json:"letterSpacing,omitempty"`
	TextAlign      *string  `json:"textAlign,omitempty"`
	TextCase       *string  `json:"textCase,omitempty"`
	TextDecoration *string  `json:"textDecoration,omitempty"`
}

// EffectStyles holds shadows, blurs, opacity and blend mode. A non-nil
// empty Shadows slice means shadows were explicitly removed.
type EffectStyles struct {
	Shadows        []Shadow `json:"shadows,omitempty"`
	LayerBlur      *float64 `json:"layerBlur,omitempty"`
	BackgroundBlur *float64 `json:"backgroundBlur,omitempty"`
	Opacity        *float64 `json:"opacity,omitempty"`
	BlendMode      *string  `json:"blendMode,omitempty"`
}

// TransformStyles holds translation, rotation (deg), scale and skew (deg).
type TransformStyles struct {
	TranslateX *Length  `json:"translateX,omitempty"`
	TranslateY *Length  `json:"translateY,omitempty"`
	Rotate     *float64 `json:"rotate,omitempty"`
	ScaleX     *float64 `json:"scaleX,omitempty"`
	ScaleY     *float64 `json:"scaleY,omitempty"`
	SkewX      *float64 `json:"skewX,omitempty"`
	SkewY      *float64 `json:"skewY,omitempty"`
	Origin     *string  `json:"origin,omitempty"`
}

// LayoutStyles holds display, flex and grid settings, positioning and size.
// ColSpan and RowSpan use -1 for full; GridColumns 0 means none.
type LayoutStyles struct {
	Display     *string  `json:"display,omitempty"`
	Direction   *string  `json:"direction,omitempty"`
	Wrap        *string  `json:"wrap,omitempty"`
	Justify     *string  `json:"justify,omitempty"`
	Align       *string  `json:"align,omitempty"`
	AlignSelf   *string  `json:"alignSelf,omitempty"`
	Grow        *float64 `json:"grow,omitempty"`
	Shrink      *float64 `json:"shrink,omitempty"`
	Basis       *Length  `json:"basis,omitempty"`
	Order       *int     `json:"order,omitempty"`
	Position    *string  `json:"position,omitempty"`
	Top         *Length  `json:"top,omitempty"`
	Right       *Length  `json:"right,omitempty"`
	Bottom      *Length  `json:"bottom,omitempty"`
	Left        *Length  `json:"left,omitempty"`
	ZIndex      *int     `json:"zIndex,omitempty"`
	OverflowX   *string  `json:"overflowX,omitempty"`
	OverflowY   *string  `json:"overflowY,omitempty"`
	Visibility  *string  `json:"visibility,omitempty"`
	AspectRatio *float64 `json:"aspectRatio,omitempty"`
	GridColumns *int     `json:"gridColumns,omitempty"`
	GridRows    *int     `json:"gridRows,omitempty"`
	ColSpan     *int     `json:"colSpan,omitempty"`
	RowSpan     *int     `json:"rowSpan,omitempty"`
	Width       *Length  `json:"width,omitempty"`
	Height      *Length  `json:"height,omitempty"`
	MinWidth    *Length  `json:"minWidth,omitempty"`
	MinHeight   *Length  `json:"minHeight,omitempty"`
	MaxWidth    *Length  `json:"maxWidth,omitempty"`
	MaxHeight   *Length  `json:"maxHeight,omitempty"`
}

// LayoutMode derives the auto-layout mode: HORIZONTAL, VERTICAL, GRID or
// NONE.
func (l LayoutStyles) LayoutMode() string {
	if l.Display == nil {
		return "NONE"
	}
	switch *l.Display {
	case "flex", "inline-flex":
		if l.Direction != nil && (*l.Direction == "column" || *l.Direction == "column-reverse") {
			return "VERTICAL"
		}
		return "HORIZONTAL"
	case "grid", "inline-grid":
		return "GRID"
	}
	return "NONE"
}

// BorderStyles holds per-corner radii and per-side stroke widths in px.
type BorderStyles struct {
	RadiusTopLeft     *float64 `json:"radiusTopLeft,omitempty"`
	RadiusTopRight    *float64 `json:"radiusTopRight,omitempty"`
	RadiusBottomRight *float64 `json:"radiusBottomRight,omitempty"`
	RadiusBottomLeft  *float64 `json:"radiusBottomLeft,omitempty"`
	StrokeTop         *float64 `json:"strokeTop,omitempty"`
	StrokeRight       *float64 `json:"strokeRight,omitempty"`
	StrokeBottom      *float64 `json:"strokeBottom,omitempty"`
	StrokeLeft        *float64 `json:"strokeLeft,omitempty"`
	StrokeStyle       *string  `json:"strokeStyle,omitempty"`
}

// MotionStyles holds transitions (durations in ms) and the animation.
type MotionStyles struct {
	TransitionProperty *string    `json:"transitionProperty,omitempty"`
	Duration           *float64   `json:"duration,omitempty"`
	Delay              *float64   `json:"delay,omitempty"`
	Easing             *string    `json:"easing,omitempty"`
	Animation          *Animation `json:"animation,omitempty"`
}

// Bag is the typed style record for one modifier set. Values that cannot
// be represented by a typed field (custom properties, non-px units) are
// kept in Extra keyed by discrete property.
type Bag struct {
	Spacing    SpacingStyles      `json:"spacing"`
	Color      ColorStyles        `json:"color"`
	Typography TypographyStyles   `json:"typography"`
	Effects    EffectStyles       `json:"effects"`
	Transform  TransformStyles    `json:"transform"`
	Layout     LayoutStyles       `json:"layout"`
	Border     BorderStyles       `json:"border"`
	Motion     MotionStyles       `json:"motion"`
	Extra      map[Property]Value `json:"extra,omitempty"`
	Important  map[Property]bool  `json:"important,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// setExtra records an untyped value and clears the typed field.
func (b *Bag) setExtra(p Property, v Value) {
	if b.Extra == nil {
		b.Extra = make(map[Property]Value)
	}
	b.Extra[p] = v
	b.clear(p)
}

// field returns a pointer to the typed field for p, or nil.
func (b *Bag) field(p Property) any {
	switch p {
	case PropPaddingTop:
		return &b.Spacing.PaddingTop
	case PropPaddingRight:
		return &b.Spacing.PaddingRight
	case PropPaddingBottom:
		return &b.Spacing.PaddingBottom
	case PropPaddingLeft:
		return &b.Spacing.PaddingLeft
	case PropMarginTop:
		return &b.Spacing.MarginTop
	case PropMarginRight:
		return &b.Spacing.MarginRight
	case PropMarginBottom:
		return &b.Spacing.MarginBottom
	case PropMarginLeft:
		return &b.Spacing.MarginLeft
	case PropItemSpacing:
		return &b.Spacing.ItemSpacing
	case PropCounterAxisSpacing:
		return &b.Spacing.CounterAxisSpacing

	case PropWidth:
		return &b.Layout.Width
	case PropHeight:
		return &b.Layout.Height
	case PropMinWidth:
		return &b.Layout.MinWidth
	case PropMinHeight:
		return &b.Layout.MinHeight
	case PropMaxWidth:
		return &b.Layout.MaxWidth
	case PropMaxHeight:
		return &b.Layout.MaxHeight
	case PropDisplay:
		return &b.Layout.Display
	case PropFlexDirection:
		return &b.Layout.Direction
	case PropFlexWrap:
		return &b.Layout.Wrap
	case PropJustify:
		return &b.Layout.Justify
	case PropAlignItems:
		return &b.Layout.Align
	case PropAlignSelf:
		return &b.Layout.AlignSelf
	case PropFlexGrow:
		return &b.Layout.Grow
	case PropFlexShrink:
		return &b.Layout.Shrink
	case PropFlexBasis:
		return &b.Layout.Basis
	case PropOrder:
		return &b.Layout.Order
	case PropPosition:
		return &b.Layout.Position
	case PropTop:
		return &b.Layout.Top
	case PropRight:
		return &b.Layout.Right
	case PropBottom:
		return &b.Layout.Bottom
	case PropLeft:
		return &b.Layout.Left
	case PropZIndex:
		return &b.Layout.ZIndex
	case PropOverflowX:
		return &b.Layout.OverflowX
	case PropOverflowY:
		return &b.Layout.OverflowY
	case PropVisibility:
		return &b.Layout.Visibility
	case PropAspectRatio:
		return &b.Layout.AspectRatio
	case PropGridColumns:
		return &b.Layout.GridColumns
	case PropGridRows:
		return &b.Layout.GridRows
	case PropColSpan:
		return &b.Layout.ColSpan
	case PropRowSpan:
		return &b.Layout.RowSpan

	case PropRadiusTopLeft:
		return &b.Border.RadiusTopLeft
	case PropRadiusTopRight:
		return &b.Border.RadiusTopRight
	case PropRadiusBottomRight:
		return &b.Border.RadiusBottomRight
	case PropRadiusBottomLeft:
		return &b.Border.RadiusBottomLeft
	case PropStrokeTop:
		return &b.Border.StrokeTop
	case PropStrokeRight:
		return &b.Border.StrokeRight
	case PropStrokeBottom:
		return &b.Border.StrokeBottom
	case PropStrokeLeft:
		return &b.Border.StrokeLeft
	case PropStrokeStyle:
		return &b.Border.StrokeStyle

	case PropFill:
		return &b.Color.Fill
	case PropTextFill:
		return &b.Color.TextFill
	case PropStrokeColor:
		return &b.Color.Stroke

	case PropFontSize:
		return &b.Typography.FontSize
	case PropFontFamily:
		return &b.Typography.FontFamily
	case PropFontWeight:
		return &b.Typography.FontWeight
	case PropFontStyle:
		return &b.Typography.Italic
	case PropLineHeight:
		return &b.Typography.LineHeight
	case PropLetterSpacing:
		return &b.Typography.LetterSpacing
	case PropTextAlign:
		return &b.Typography.TextAlign
	case PropTextCase:
		return &b.Typography.TextCase
	case PropTextDecoration:
		return &b.Typography.TextDecoration

	case PropShadow:
		return &b.Effects.Shadows
	case PropLayerBlur:
		return &b.Effects.LayerBlur
	case PropBackgroundBlur:
		return &b.Effects.BackgroundBlur
	case PropOpacity:
		return &b.Effects.Opacity
	case PropBlendMode:
		return &b.Effects.BlendMode

	case PropTranslateX:
		return &b.Transform.TranslateX
	case PropTranslateY:
		return &b.Transform.TranslateY
	case PropRotate:
		return &b.Transform.Rotate
	case PropScaleX:
		return &b.Transform.ScaleX
	case PropScaleY:
		return &b.Transform.ScaleY
	case PropSkewX:
		return &b.Transform.SkewX
	case PropSkewY:
		return &b.Transform.SkewY
	case PropOrigin:
		return &b.Transform.Origin

	case PropTransitionProperty:
		return &b.Motion.TransitionProperty
	case PropTransitionDuration:
		return &b.Motion.Duration
	case PropTransitionDelay:
		return &b.Motion.Delay
	case PropTransitionTiming:
		return &b.Motion.Easing
	case PropAnimation:
		return &b.Motion.Animation
	}
	return nil
}

// scalarFloats are float fields whose values carry a non-px unit (deg, ms)
// or none at all.
var scalarFloats = map[Property]bool{
	PropFlexGrow: true, PropFlexShrink: true, PropAspectRatio: true, PropOpacity: true,
	PropRotate: true, PropScaleX: true, PropScaleY: true, PropSkewX: true, PropSkewY: true,
	PropTransitionDuration: true, PropTransitionDelay: true,
}

// apply writes v to the field for p. It reports false when the value has
// no typed representation; the caller then keeps it in Extra.
func (b *Bag) apply(p Property, v Value) bool {
	switch p {
	case PropFontStyle:
		if v.Kind != KindString {
			return false
		}
		b.Typography.Italic = ptr(v.Str == "italic")
		return true
	case PropLineHeight:
		if v.Kind != KindNumber || (v.Unit != "" && v.Unit != "px") {
			return false
		}
		b.Typography.LineHeight = &Length{Value: v.Num, Unit: v.Unit}
		return true
	case PropLetterSpacing:
		if v.Kind != KindNumber || (v.Unit != "em" && v.Unit != "px") {
			return false
		}
		b.Typography.LetterSpacing = &Length{Value: v.Num, Unit: v.Unit}
		return true
	case PropGridColumns, PropGridRows:
		if v.Kind == KindString && v.Str == "none" {
			v = number(0, "")
		}
	case PropColSpan, PropRowSpan:
		if v.Kind == KindString && v.Str == "full" {
			v = number(-1, "")
		}
	}

	switch dst := b.field(p).(type) {
	case **float64:
		if scalarFloats[p] {
			return setFloat(dst, v)
		}
		return setPx(dst, v)
	case **Length:
		return setLength(dst, v, "px")
	case **string:
		return setString(dst, v)
	case **int:
		return setInt(dst, v)
	case **Paint:
		return setPaint(dst, v)
	case *[]Shadow:
		if v.Kind != KindShadow {
			return false
		}
		*dst = append([]Shadow{}, v.Shadows...)
		return true
	case **Animation:
		if v.Kind != KindAnimation || v.Animation == nil {
			return false
		}
		a := *v.Animation
		*dst = &a
		return true
	}
	return false
}

// clear resets the typed field for p.
func (b *Bag) clear(p Property) {
	switch dst := b.field(p).(type) {
	case **float64:
		*dst = nil
	case **Length:
		*dst = nil
	case **string:
		*dst = nil
	case **int:
		*dst = nil
	case **bool:
		*dst = nil
	case **Paint:
		*dst = nil
	case *[]Shadow:
		*dst = nil
	case **Animation:
		*dst = nil
	}
}

// has reports whether the typed field for p is set.
func (b *Bag) has(p Property) bool {
	switch dst := b.field(p).(type) {
	case **float64:
		return *dst != nil
	case **Length:
		return *dst != nil
	case **string:
		return *dst != nil
	case **int:
		return *dst != nil
	case **bool:
		return *dst != nil
	case **Paint:
		return *dst != nil
	case *[]Shadow:
		return *dst != nil
	case **Animation:
		return *dst != nil
	}
	return false
}

func isVar(s string) bool { return strings.HasPrefix(s, "var(") }

func setPx(dst **float64, v Value) bool {
	if v.Kind != KindNumber || (v.Unit != "" && v.Unit != "px") {
		return false
	}
	*dst = ptr(v.Num)
	return true
}

func setFloat(dst **float64, v Value) bool {
	if v.Kind != KindNumber {
		return false
	}
	*dst = ptr(v.Num)
	return true
}

func setInt(dst **int, v Value) bool {
	if v.Kind != KindNumber || v.Num != float64(int(v.Num)) {
		return false
	}
	*dst = ptr(int(v.Num))
	return true
}

func setString(dst **string, v Value) bool {
	if v.Kind != KindString || isVar(v.Str) {
		return false
	}
	*dst = ptr(v.Str)
	return true
}

// setLength stores numbers with their unit (bare numbers get defUnit) and
// plain keywords. Custom properties and CSS expressions are rejected.
func setLength(dst **Length, v Value, defUnit string) bool {
	switch v.Kind {
	case KindNumber:
		unit := v.Unit
		if unit == "" {
			unit = defUnit
		}
		*dst = &Length{Value: v.Num, Unit: unit}
		return true
	case KindString:
		if isVar(v.Str) || strings.ContainsAny(v.Str, "( ") {
			return false
		}
		*dst = &Length{Keyword: v.Str}
		return true
	}
	return false
}

func setPaint(dst **Paint, v Value) bool {
	switch v.Kind {
	case KindColor:
		*dst = &Paint{Type: PaintSolid, Color: v.Color}
		return true
	case KindPaint:
		if v.Paint == nil {
			return false
		}
		p := *v.Paint
		p.Stops = append([]GradientStop(nil), v.Paint.Stops...)
		*dst = &p
		return true
	}
	return false
}
