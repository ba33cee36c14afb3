package tw

import "fmt"

// Property is a canonical style property name. Family properties such as
// "padding" name what a token wrote; discrete properties such as
// "paddingTop" name the bag fields it writes.
type Property string

// Discrete properties. Every ParsedStyle.Targets entry is one of these.
const (
	PropPaddingTop         Property = "paddingTop"
	PropPaddingRight       Property = "paddingRight"
	PropPaddingBottom      Property = "paddingBottom"
	PropPaddingLeft        Property = "paddingLeft"
	PropMarginTop          Property = "marginTop"
	PropMarginRight        Property = "marginRight"
	PropMarginBottom       Property = "marginBottom"
	PropMarginLeft         Property = "marginLeft"
	PropItemSpacing        Property = "itemSpacing"
	PropCounterAxisSpacing Property = "counterAxisSpacing"

	PropWidth     Property = "width"
	PropHeight    Property = "height"
	PropMinWidth  Property = "minWidth"
	PropMinHeight Property = "minHeight"
	PropMaxWidth  Property = "maxWidth"
	PropMaxHeight Property = "maxHeight"

	PropDisplay       Property = "display"
	PropFlexDirection Property = "flexDirection"
	PropFlexWrap      Property = "flexWrap"
	PropJustify       Property = "justifyContent"
	PropAlignItems    Property = "alignItems"
	PropAlignSelf     Property = "alignSelf"
	PropFlexGrow      Property = "flexGrow"
	PropFlexShrink    Property = "flexShrink"
	PropFlexBasis     Property = "flexBasis"
	PropOrder         Property = "order"
	PropPosition      Property = "position"
	PropTop           Property = "top"
	PropRight         Property = "right"
	PropBottom        Property = "bottom"
	PropLeft          Property = "left"
	PropZIndex        Property = "zIndex"
	PropOverflowX     Property = "overflowX"
	PropOverflowY     Property = "overflowY"
	PropVisibility    Property = "visibility"
	PropAspectRatio   Property = "aspectRatio"
	PropGridColumns   Property = "gridColumns"
	PropGridRows      Property = "gridRows"
	PropColSpan       Property = "colSpan"
	PropRowSpan       Property = "rowSpan"

	PropRadiusTopLeft     Property = "radiusTopLeft"
	PropRadiusTopRight    Property = "radiusTopRight"
	PropRadiusBottomRight Property = "radiusBottomRight"
	PropRadiusBottomLeft  Property = "radiusBottomLeft"
	PropStrokeTop         Property = "strokeTop"
	PropStrokeRight       Property = "strokeRight"
	PropStrokeBottom      Property = "strokeBottom"
	PropStrokeLeft        Property = "strokeLeft"
	PropStrokeStyle       Property = "strokeStyle"

	PropFill             Property = "fill"
	PropTextFill         Property = "textFill"
	PropStrokeColor      Property = "strokeColor"
	PropGradient         Property = "gradient"
	PropGradientFrom     Property = "gradientFrom"
	PropGradientVia      Property = "gradientVia"
	PropGradientTo       Property = "gradientTo"
	PropGradientFromStop Property = "gradientFromPosition"
	PropGradientViaStop  Property = "gradientViaPosition"
	PropGradientToStop   Property = "gradientToPosition"

	PropFontSize       Property = "fontSize"
	PropFontFamily     Property = "fontFamily"
	PropFontWeight     Property = "fontWeight"
	PropFontStyle      Property = "fontStyle"
	PropLineHeight     Property = "lineHeight"
	PropLetterSpacing  Property = "letterSpacing"
	PropTextAlign      Property = "textAlign"
	PropTextCase       Property = "textCase"
	PropTextDecoration Property = "textDecoration"

	PropShadow         Property = "shadow"
	PropLayerBlur      Property = "layerBlur"
	PropBackgroundBlur Property = "backgroundBlur"
	PropOpacity        Property = "opacity"
	PropBlendMode      Property = "blendMode"

	PropTranslateX Property = "translateX"
	PropTranslateY Property = "translateY"
	PropRotate     Property = "rotate"
	PropScaleX     Property = "scaleX"
	PropScaleY     Property = "scaleY"
	PropSkewX      Property = "skewX"
	PropSkewY      Property = "skewY"
	PropOrigin     Property = "transformOrigin"

	PropTransitionProperty Property = "transitionProperty"
	PropTransitionDuration Property = "transitionDuration"
	PropTransitionDelay    Property = "transitionDelay"
	PropTransitionTiming   Property = "transitionTiming"
	PropAnimation          Property = "animation"
)

// Family properties written by shorthand tokens.
const (
	PropPadding      Property = "padding"
	PropPaddingX     Property = "paddingX"
	PropPaddingY     Property = "paddingY"
	PropMargin       Property = "margin"
	PropMarginX      Property = "marginX"
	PropMarginY      Property = "marginY"
	PropGap          Property = "gap"
	PropSize         Property = "size"
	PropInset        Property = "inset"
	PropInsetX       Property = "insetX"
	PropInsetY       Property = "insetY"
	PropOverflow     Property = "overflow"
	PropFlex         Property = "flex"
	PropBorderRadius Property = "borderRadius"
	PropBorderWidth  Property = "borderWidth"
	PropScale        Property = "scale"
	PropTranslate    Property = "translate"
)

var (
	paddingEdges = []Property{PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft}
	marginEdges  = []Property{PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft}
	insetEdges   = []Property{PropTop, PropRight, PropBottom, PropLeft}
	strokeEdges  = []Property{PropStrokeTop, PropStrokeRight, PropStrokeBottom, PropStrokeLeft}
	radiusCorner = []Property{PropRadiusTopLeft, PropRadiusTopRight, PropRadiusBottomRight, PropRadiusBottomLeft}
)

// pixelProperties receive an implicit px unit when a literal number has none.
var pixelProperties = map[Property]bool{
	PropWidth: true, PropHeight: true, PropMinWidth: true, PropMinHeight: true, PropMaxWidth: true, PropMaxHeight: true,
	PropPaddingTop: true, PropPaddingRight: true, PropPaddingBottom: true, PropPaddingLeft: true,
	PropMarginTop: true, PropMarginRight: true, PropMarginBottom: true, PropMarginLeft: true,
	PropItemSpacing: true, PropCounterAxisSpacing: true,
	PropRadiusTopLeft: true, PropRadiusTopRight: true, PropRadiusBottomRight: true, PropRadiusBottomLeft: true,
	PropFontSize: true,
	PropTop: true, PropRight: true, PropBottom: true, PropLeft: true,
	PropLetterSpacing: true, PropLineHeight: true,
}

// Variant records which resolution path produced a value.
type Variant int

const (
	VariantPreset Variant = iota
	VariantArbitrary
	VariantCustomProperty
)

func (v Variant) String() string {
	switch v {
	case VariantArbitrary:
		return "arbitrary"
	case VariantCustomProperty:
		return "custom-property"
	default:
		return "preset"
	}
}

// MarshalText lets variants print by name in JSON output.
func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Variant) UnmarshalText(b []byte) error {
	switch string(b) {
	case "preset":
		*v = VariantPreset
	case "arbitrary":
		*v = VariantArbitrary
	case "custom-property":
		*v = VariantCustomProperty
	default:
		return fmt.Errorf("unknown variant %q", b)
	}
	return nil
}

// ValueKind discriminates Value.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindString
	KindColor
	KindShadow
	KindAnimation
	KindPaint
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindColor:
		return "color"
	case KindShadow:
		return "shadow"
	case KindAnimation:
		return "animation"
	case KindPaint:
		return "paint"
	default:
		return "number"
	}
}

func (k ValueKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ValueKind) UnmarshalText(b []byte) error {
	for c := KindNumber; c <= KindPaint; c++ {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown value kind %q", b)
}

// Value is a resolved utility value.
type Value struct {
	Kind ValueKind `json:"kind"`
	// Num and Unit hold numeric values. Unit is "" for unit-less values.
	Num  float64 `json:"num,omitempty"`
	Unit string  `json:"unit,omitempty"`
	// Str holds keywords, raw CSS and var(--name) references.
	Str string `json:"str,omitempty"`
	// Expr is the CSS expression to emit when it differs from the literal,
	// for example calc(var(--spacing) * -4).
	Expr      string     `json:"expr,omitempty"`
	Color     Color      `json:"color,omitempty"`
	Shadows   []Shadow   `json:"shadows,omitempty"`
	Animation *Animation `json:"animation,omitempty"`
	Paint     *Paint     `json:"paint,omitempty"`
	// Parts holds one value per target for multi-value shorthands like flex-1.
	Parts []Value `json:"parts,omitempty"`
}

func number(n float64, unit string) Value { return Value{Kind: KindNumber, Num: n, Unit: unit} }

func keyword(s string) Value { return Value{Kind: KindString, Str: s} }

// IsNumber reports whether v carries a number.
func (v Value) IsNumber() bool { return v.Kind == KindNumber }

// ParsedStyle is the resolved form of one utility token.
type ParsedStyle struct {
	Property  Property   `json:"property"`
	Targets   []Property `json:"targets"`
	Value     Value      `json:"value"`
	Variant   Variant    `json:"variant"`
	Raw       string     `json:"raw"`
	Negative  bool       `json:"negative,omitempty"`
	Important bool       `json:"important,omitempty"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
}

// Key returns the canonical modifier-set key ("" when unconditional).
func (p ParsedStyle) Key() string { return ModifierKey(p.Modifiers) }

// ValueFor returns the value written to the i-th target.
func (p ParsedStyle) ValueFor(i int) Value {
	if len(p.Value.Parts) == len(p.Targets) && len(p.Targets) > 0 {
		return p.Value.Parts[i]
	}
	return p.Value
}

func single(prop Property, v Value, variant Variant) ParsedStyle {
	return ParsedStyle{Property: prop, Targets: []Property{prop}, Value: v, Variant: variant}
}

func multi(prop Property, targets []Property, v Value, variant Variant) ParsedStyle {
	return ParsedStyle{Property: prop, Targets: append([]Property(nil), targets...), Value: v, Variant: variant}
}

// discreteProperties lists every bag field property in serialization order.
var discreteProperties = []Property{
	PropDisplay, PropFlexDirection, PropFlexWrap, PropJustify, PropAlignItems, PropAlignSelf,
	PropFlexGrow, PropFlexShrink, PropFlexBasis, PropOrder, PropPosition,
	PropTop, PropRight, PropBottom, PropLeft, PropZIndex, PropOverflowX, PropOverflowY,
	PropVisibility, PropAspectRatio, PropGridColumns, PropGridRows, PropColSpan, PropRowSpan,
	PropWidth, PropHeight, PropMinWidth, PropMinHeight, PropMaxWidth, PropMaxHeight,
	PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft,
	PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft,
	PropItemSpacing, PropCounterAxisSpacing,
	PropRadiusTopLeft, PropRadiusTopRight, PropRadiusBottomRight, PropRadiusBottomLeft,
	PropStrokeTop, PropStrokeRight, PropStrokeBottom, PropStrokeLeft, PropStrokeStyle,
	PropFill, PropGradient, PropGradientFrom, PropGradientVia, PropGradientTo,
	PropGradientFromStop, PropGradientViaStop, PropGradientToStop,
	PropTextFill, PropStrokeColor,
	PropFontSize, PropFontFamily, PropFontWeight, PropFontStyle, PropLineHeight, PropLetterSpacing,
	PropTextAlign, PropTextCase, PropTextDecoration,
	PropShadow, PropLayerBlur, PropBackgroundBlur, PropOpacity, PropBlendMode,
	PropTranslateX, PropTranslateY, PropRotate, PropScaleX, PropScaleY, PropSkewX, PropSkewY, PropOrigin,
	PropTransitionProperty, PropTransitionDuration, PropTransitionDelay, PropTransitionTiming, PropAnimation,
}

// DiscreteProperties returns the bag field properties in serialization order.
func DiscreteProperties() []Property { return append([]Property(nil), discreteProperties...) }
