package tw

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/agiangrant/twconv/theme"
)

// Serialize maps a bag back to canonical class tokens. Preset names are
// tried first (within theme.Tolerance), then numeric spacing steps, then an
// arbitrary value; a populated property is never dropped.
//
// Tokens come out grouped as layout, sizing, spacing, border, color,
// typography, effects, transforms, motion and finally untyped values.
func Serialize(b *Bag, th *theme.Theme) []string {
	if th == nil {
		th = theme.Default()
	}
	s := &serializer{th: th, b: b}
	s.layout()
	s.sizing()
	s.spacing()
	s.border()
	s.color()
	s.typography()
	s.effects()
	s.transforms()
	s.motion()
	s.extra()
	return s.out
}

// SerializeAssembled renders every bag: unconditional tokens first, then
// each conditional bag prefixed with its modifier key, then literals.
func SerializeAssembled(a *Assembled, th *theme.Theme) string {
	tokens := Serialize(&a.Unconditional, th)
	for _, key := range a.Keys {
		for _, tok := range Serialize(a.Conditional[key], th) {
			tokens = append(tokens, key+":"+tok)
		}
	}
	tokens = append(tokens, a.Literals...)
	return strings.Join(tokens, " ")
}

type serializer struct {
	th  *theme.Theme
	b   *Bag
	out []string
}

// emit appends token, marking it important when any covered property is.
func (s *serializer) emit(token string, props ...Property) {
	for _, p := range props {
		if s.b.Important[p] {
			token = "!" + token
			break
		}
	}
	s.out = append(s.out, token)
}

// side is one serialized edge or corner value.
type side struct {
	prop Property
	neg  bool
	body string
	set  bool
}

func (a side) same(b side) bool { return a.set && b.set && a.neg == b.neg && a.body == b.body }

// token joins prefix and body: ("p", "4") → "p-4"; ("border", "") →
// "border"; negatives get a leading "-".
func token(prefix string, neg bool, body string) string {
	t := prefix
	if body != "" {
		t += "-" + body
	}
	if neg {
		t = "-" + t
	}
	return t
}

func (s *serializer) emitSide(prefix string, v side, props ...Property) {
	s.emit(token(prefix, v.neg, v.body), props...)
}

// emitEdges writes top/right/bottom/left using the widest shorthand that
// fits: all four, then x and y pairs, then single edges.
func (s *serializer) emitEdges(sides [4]side, all, x, y string, singles [4]string) {
	t, r, b, l := sides[0], sides[1], sides[2], sides[3]
	if t.same(r) && t.same(b) && t.same(l) {
		s.emitSide(all, t, t.prop, r.prop, b.prop, l.prop)
		return
	}
	done := [4]bool{}
	if r.same(l) {
		s.emitSide(x, r, r.prop, l.prop)
		done[1], done[3] = true, true
	}
	if t.same(b) {
		s.emitSide(y, t, t.prop, b.prop)
		done[0], done[2] = true, true
	}
	for i, v := range sides {
		if v.set && !done[i] {
			s.emitSide(singles[i], v, v.prop)
		}
	}
}

// emitCorners writes radii in TL, TR, BR, BL order, pairing corners by
// side when that takes fewer tokens.
func (s *serializer) emitCorners(c [4]side) {
	if c[0].same(c[1]) && c[0].same(c[2]) && c[0].same(c[3]) {
		s.emitSide("rounded", c[0], radiusCorner...)
		return
	}
	type pair struct {
		prefix string
		a, b   int
	}
	count := func(pairs []pair) int {
		n := 0
		for _, p := range pairs {
			switch {
			case c[p.a].same(c[p.b]):
				n++
			default:
				if c[p.a].set {
					n++
				}
				if c[p.b].set {
					n++
				}
			}
		}
		return n
	}
	vertical := []pair{{"rounded-t", 0, 1}, {"rounded-b", 2, 3}}
	horizontal := []pair{{"rounded-l", 0, 3}, {"rounded-r", 1, 2}}
	pairs := vertical
	if count(horizontal) < count(vertical) {
		pairs = horizontal
	}
	singles := [4]string{"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"}
	for _, p := range pairs {
		if c[p.a].same(c[p.b]) {
			s.emitSide(p.prefix, c[p.a], c[p.a].prop, c[p.b].prop)
			continue
		}
		for _, i := range []int{p.a, p.b} {
			if c[i].set {
				s.emitSide(singles[i], c[i], c[i].prop)
			}
		}
	}
}

// lengthScale describes how a family spells lengths, mirroring the
// resolver options for the same prefix.
type lengthScale struct {
	prop      Property
	literals  map[string]Value
	numeric   bool
	fractions bool
	named     func(float64) (string, bool)
	signed    bool
}

// lengthSide serializes l on scale. Signed scales move a negative sign out
// of the body ("-mt-4"); others keep it in an arbitrary value.
func (s *serializer) lengthSide(prop Property, l *Length, sc lengthScale) side {
	if l == nil {
		return side{prop: prop}
	}
	v := *l
	neg := false
	if sc.signed && v.Keyword == "" && v.Value < 0 {
		neg, v.Value = true, -v.Value
	}
	return side{prop: prop, neg: neg, body: s.lengthBody(v, sc), set: true}
}

func (s *serializer) lengthBody(l Length, sc lengthScale) string {
	if l.Keyword != "" {
		for _, k := range sortedKeys(sc.literals) {
			if lit := sc.literals[k]; lit.Kind == KindString && lit.Str == l.Keyword {
				return k
			}
		}
		return "[" + arbitraryText(l.Keyword) + "]"
	}
	for _, k := range sortedKeys(sc.literals) {
		if lit := sc.literals[k]; lit.Kind == KindNumber && lit.Unit == l.Unit && near(lit.Num, l.Value, theme.Tolerance) {
			return k
		}
	}
	switch l.Unit {
	case "px":
		if sc.named != nil {
			if name, ok := sc.named(l.Value); ok {
				return name
			}
		}
		if sc.numeric {
			if step, ok := s.scaleStep(l.Value); ok {
				return formatNum(step)
			}
		}
	case "%":
		if sc.fractions {
			if f, ok := fraction(l.Value); ok {
				return f
			}
		}
	}
	return arbitraryLength(sc.prop, l)
}

// scaleStep finds the numeric step for px: multiples of 0.25 of the unit.
func (s *serializer) scaleStep(px float64) (float64, bool) {
	unit := s.th.SpacingUnit()
	if unit <= 0 || px < 0 {
		return 0, false
	}
	step := math.Round(px/unit*4) / 4
	if !near(step*unit, px, theme.Tolerance) {
		return 0, false
	}
	return step, true
}

// fraction finds the smallest-denominator n/d for a percentage.
func fraction(pct float64) (string, bool) {
	for _, d := range []int{2, 3, 4, 5, 6, 12} {
		for n := 1; n < d; n++ {
			if near(float64(n)/float64(d)*100, pct, theme.Tolerance) {
				return strconv.Itoa(n) + "/" + strconv.Itoa(d), true
			}
		}
	}
	return "", false
}

// arbitraryLength writes "[10]" for pixel-implicit properties and
// "[50vw]" otherwise.
func arbitraryLength(prop Property, l Length) string {
	if l.Unit == "px" && pixelProperties[prop] {
		return "[" + formatNum(l.Value) + "]"
	}
	return "[" + formatNum(l.Value) + l.Unit + "]"
}

func arbitraryText(v string) string { return strings.ReplaceAll(v, " ", "_") }

func pxSide(v *float64) *Length {
	if v == nil {
		return nil
	}
	return Px(*v)
}

func (s *serializer) spacingScale(prop Property, signed bool) lengthScale {
	sc := lengthScale{prop: prop, numeric: true, named: s.th.SpacingName, signed: signed}
	if signed {
		sc.literals = map[string]Value{"auto": keyword("auto")}
	}
	return sc
}

func (s *serializer) layout() {
	l := s.b.Layout
	s.keywordField(PropDisplay, l.Display, "", displayLiterals)
	s.keywordField(PropFlexDirection, l.Direction, "flex", flexDirections)
	s.keywordField(PropFlexWrap, l.Wrap, "flex", flexWraps)
	s.keywordField(PropJustify, l.Justify, "justify", justifyValues)
	s.keywordField(PropAlignItems, l.Align, "items", itemsValues)
	s.keywordField(PropAlignSelf, l.AlignSelf, "self", selfValues)
	s.flex()
	if l.Order != nil {
		s.integer(PropOrder, "order", *l.Order, map[int]string{-9999: "first", 9999: "last", 0: "none"})
	}
	if l.Position != nil {
		if slices.Contains(positionLiterals, *l.Position) {
			s.emit(*l.Position, PropPosition)
		} else {
			s.arbitraryProperty(PropPosition, *l.Position)
		}
	}

	inset := lengthScale{
		literals:  map[string]Value{"auto": keyword("auto"), "full": number(100, "%")},
		numeric:   true,
		fractions: true,
		named:     s.th.SpacingName,
		signed:    true,
	}
	var sides [4]side
	for i, p := range insetEdges {
		sc := inset
		sc.prop = p
		sides[i] = s.lengthSide(p, *s.b.field(p).(**Length), sc)
	}
	s.emitEdges(sides, "inset", "inset-x", "inset-y", [4]string{"top", "right", "bottom", "left"})

	if l.ZIndex != nil {
		s.integer(PropZIndex, "z", *l.ZIndex, nil)
	}
	if l.OverflowX != nil && l.OverflowY != nil && *l.OverflowX == *l.OverflowY {
		s.keywordField(PropOverflowX, l.OverflowX, "overflow", overflowValues, PropOverflowY)
	} else {
		s.keywordField(PropOverflowX, l.OverflowX, "overflow-x", overflowValues)
		s.keywordField(PropOverflowY, l.OverflowY, "overflow-y", overflowValues)
	}
	s.keywordField(PropVisibility, l.Visibility, "", map[string]string{"visible": "visible", "invisible": "hidden", "collapse": "collapse"})
	if l.AspectRatio != nil {
		s.emit("aspect-"+aspectBody(*l.AspectRatio), PropAspectRatio)
	}
	s.gridTrack(PropGridColumns, "grid-cols", l.GridColumns)
	s.gridTrack(PropGridRows, "grid-rows", l.GridRows)
	s.span(PropColSpan, "col-span", l.ColSpan)
	s.span(PropRowSpan, "row-span", l.RowSpan)
}

// keywordField emits prefix-key for the table entry whose value is v.
// prefix "" emits the bare key.
func (s *serializer) keywordField(prop Property, v *string, prefix string, table map[string]string, also ...Property) {
	if v == nil {
		return
	}
	props := append([]Property{prop}, also...)
	for _, k := range sortedKeys(table) {
		if table[k] == *v {
			s.emit(token(prefix, false, k), props...)
			return
		}
	}
	s.arbitraryProperty(prop, *v, also...)
}

// arbitraryProperty writes "[display:contents]" for keywords no utility
// spells.
func (s *serializer) arbitraryProperty(prop Property, v string, also ...Property) {
	for _, p := range append([]Property{prop}, also...) {
		s.emit("["+cssNameOf(p)+":"+arbitraryText(v)+"]", p)
	}
}

func cssNameOf(p Property) string {
	if name, ok := cssNames[p]; ok {
		return name
	}
	return string(p)
}

func (s *serializer) flex() {
	l := s.b.Layout
	if l.Grow != nil && l.Shrink != nil && l.Basis != nil {
		for _, k := range sortedKeys(flexShorthands) {
			parts := flexShorthands[k]
			if near(parts[0].Num, *l.Grow, theme.Tolerance) && near(parts[1].Num, *l.Shrink, theme.Tolerance) && lengthMatches(parts[2], *l.Basis) {
				s.emit("flex-"+k, flexTargets...)
				return
			}
		}
	}
	if l.Grow != nil {
		s.factor(PropFlexGrow, "grow", *l.Grow)
	}
	if l.Shrink != nil {
		s.factor(PropFlexShrink, "shrink", *l.Shrink)
	}
	if l.Basis != nil {
		sc := lengthScale{
			prop:      PropFlexBasis,
			literals:  map[string]Value{"auto": keyword("auto"), "full": number(100, "%")},
			numeric:   true,
			fractions: true,
			named:     s.spacingOrContainerName,
		}
		s.emitSide("basis", s.lengthSide(PropFlexBasis, l.Basis, sc), PropFlexBasis)
	}
}

func lengthMatches(v Value, l Length) bool {
	if v.Kind == KindString {
		return l.Keyword == v.Str
	}
	return l.Keyword == "" && v.Unit == l.Unit && near(v.Num, l.Value, theme.Tolerance)
}

func (s *serializer) factor(prop Property, prefix string, v float64) {
	switch {
	case v == 1:
		s.emit(prefix, prop)
	case v >= 0:
		s.emit(prefix+"-"+formatNum(v), prop)
	default:
		s.emit(prefix+"-["+formatNum(v)+"]", prop)
	}
}

func (s *serializer) integer(prop Property, prefix string, n int, literals map[int]string) {
	if name, ok := literals[n]; ok {
		s.emit(prefix+"-"+name, prop)
		return
	}
	s.emit(token(prefix, n < 0, strconv.Itoa(abs(n))), prop)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// aspectBody spells a ratio as square, video, a/b with small terms, or an
// arbitrary number.
func aspectBody(r float64) string {
	switch {
	case near(r, 1, 1e-4):
		return "square"
	case near(r, 16.0/9.0, 1e-4):
		return "video"
	}
	for d := 1; d <= 32; d++ {
		n := math.Round(r * float64(d))
		if n > 0 && near(n/float64(d), r, 1e-4) {
			return formatNum(n) + "/" + strconv.Itoa(d)
		}
	}
	return "[" + formatNum(r) + "]"
}

func (s *serializer) gridTrack(prop Property, prefix string, v *int) {
	switch {
	case v == nil:
	case *v == 0:
		s.emit(prefix+"-none", prop)
	case *v > 0:
		s.emit(prefix+"-"+strconv.Itoa(*v), prop)
	default:
		s.emit(prefix+"-["+strconv.Itoa(*v)+"]", prop)
	}
}

func (s *serializer) span(prop Property, prefix string, v *int) {
	switch {
	case v == nil:
	case *v == -1:
		s.emit(prefix+"-full", prop)
	case *v > 0:
		s.emit(prefix+"-"+strconv.Itoa(*v), prop)
	default:
		s.emit(prefix+"-["+strconv.Itoa(*v)+"]", prop)
	}
}

func (s *serializer) spacingOrContainerName(px float64) (string, bool) {
	if name, ok := s.th.SpacingName(px); ok {
		return name, true
	}
	return s.th.ContainerName(px)
}

func (s *serializer) sizing() {
	l := s.b.Layout
	scale := func(prop Property, literals map[string]Value) lengthScale {
		return lengthScale{prop: prop, literals: literals, numeric: true, fractions: true, named: s.spacingOrContainerName}
	}
	if l.Width != nil && l.Height != nil && *l.Width == *l.Height {
		s.emitSide("size", s.lengthSide(PropWidth, l.Width, scale(PropWidth, widthLiterals)), PropWidth, PropHeight)
	} else {
		if l.Width != nil {
			s.emitSide("w", s.lengthSide(PropWidth, l.Width, scale(PropWidth, widthLiterals)), PropWidth)
		}
		if l.Height != nil {
			s.emitSide("h", s.lengthSide(PropHeight, l.Height, scale(PropHeight, heightLiterals)), PropHeight)
		}
	}
	for _, f := range []struct {
		prefix   string
		prop     Property
		v        *Length
		literals map[string]Value
	}{
		{"min-w", PropMinWidth, l.MinWidth, widthLiterals},
		{"min-h", PropMinHeight, l.MinHeight, heightLiterals},
		{"max-w", PropMaxWidth, l.MaxWidth, maxLiterals},
		{"max-h", PropMaxHeight, l.MaxHeight, maxLiterals},
	} {
		if f.v != nil {
			s.emitSide(f.prefix, s.lengthSide(f.prop, f.v, scale(f.prop, f.literals)), f.prop)
		}
	}
}

func (s *serializer) spacing() {
	sp := s.b.Spacing
	var pad [4]side
	for i, v := range []*float64{sp.PaddingTop, sp.PaddingRight, sp.PaddingBottom, sp.PaddingLeft} {
		pad[i] = s.lengthSide(paddingEdges[i], pxSide(v), s.spacingScale(paddingEdges[i], false))
	}
	s.emitEdges(pad, "p", "px", "py", [4]string{"pt", "pr", "pb", "pl"})

	var margin [4]side
	for i, v := range []*Length{sp.MarginTop, sp.MarginRight, sp.MarginBottom, sp.MarginLeft} {
		margin[i] = s.lengthSide(marginEdges[i], v, s.spacingScale(marginEdges[i], true))
	}
	s.emitEdges(margin, "m", "mx", "my", [4]string{"mt", "mr", "mb", "ml"})

	item := s.lengthSide(PropItemSpacing, pxSide(sp.ItemSpacing), s.spacingScale(PropItemSpacing, false))
	counter := s.lengthSide(PropCounterAxisSpacing, pxSide(sp.CounterAxisSpacing), s.spacingScale(PropCounterAxisSpacing, false))
	if item.same(counter) {
		s.emitSide("gap", item, PropItemSpacing, PropCounterAxisSpacing)
		return
	}
	if item.set {
		s.emitSide("gap-x", item, PropItemSpacing)
	}
	if counter.set {
		s.emitSide("gap-y", counter, PropCounterAxisSpacing)
	}
}

func (s *serializer) border() {
	var corners [4]side
	for i, p := range radiusCorner {
		v := *s.b.field(p).(**float64)
		if v == nil {
			corners[i] = side{prop: p}
			continue
		}
		corners[i] = side{prop: p, body: s.radiusBody(*v), set: true}
	}
	s.emitCorners(corners)

	var strokes [4]side
	for i, p := range strokeEdges {
		v := *s.b.field(p).(**float64)
		if v == nil {
			strokes[i] = side{prop: p}
			continue
		}
		strokes[i] = side{prop: p, body: strokeBody(*v), set: true}
	}
	s.emitEdges(strokes, "border", "border-x", "border-y", [4]string{"border-t", "border-r", "border-b", "border-l"})

	if st := s.b.Border.StrokeStyle; st != nil {
		if _, ok := strokeStyles[*st]; ok {
			s.emit("border-"+*st, PropStrokeStyle)
		} else {
			s.arbitraryProperty(PropStrokeStyle, *st)
		}
	}
}

func (s *serializer) radiusBody(px float64) string {
	if name, ok := s.th.RadiusName(px); ok {
		return name
	}
	return arbitraryLength(PropRadiusTopLeft, Length{Value: px, Unit: "px"})
}

func strokeBody(px float64) string {
	switch {
	case px == 1:
		return ""
	case px >= 0 && px == math.Trunc(px):
		return strconv.Itoa(int(px))
	}
	return "[" + formatNum(px) + "px]"
}

// colorBody spells a color as a palette name, "transparent" or "[#hex]",
// with a /50 or /[0.375] opacity suffix. collides rejects palette names
// that the prefix would read as something else (text-lg, border-2).
func (s *serializer) colorBody(c Color, collides func(string) bool) string {
	var body string
	if c.A <= 0.0005 {
		if _, ok := s.th.Color("transparent"); ok {
			return "transparent"
		}
		return "[transparent]"
	}
	hex := c.Hex()
	if name, ok := s.th.ColorName(hex); ok && (collides == nil || !collides(name)) {
		body = name
	} else {
		body = "[" + hex + "]"
	}
	if c.A < 1 {
		a := round4(c.A)
		pct := a * 100
		if near(pct, math.Round(pct), 1e-9) {
			body += "/" + strconv.Itoa(int(math.Round(pct)))
		} else {
			body += "/[" + formatNum(a) + "]"
		}
	}
	return body
}

func (s *serializer) textCollides(name string) bool {
	if _, ok := textAligns[name]; ok {
		return true
	}
	_, ok := s.th.FontSize(name)
	return ok
}

func borderCollides(name string) bool {
	if _, ok := strokeStyles[name]; ok {
		return true
	}
	_, ok := parseInteger(name)
	return ok
}

func (s *serializer) color() {
	c := s.b.Color
	if c.Fill != nil {
		s.fill(*c.Fill)
	}
	if c.TextFill != nil {
		s.emit("text-"+s.colorBody(solidOf(*c.TextFill), s.textCollides), PropTextFill)
	}
	if c.Stroke != nil {
		s.emit("border-"+s.colorBody(solidOf(*c.Stroke), borderCollides), PropStrokeColor)
	}
}

// solidOf returns the color of a solid paint, or the first stop of a
// gradient where only a solid color can be spelled.
func solidOf(p Paint) Color {
	if p.Type != PaintSolid && len(p.Stops) > 0 {
		return p.Stops[0].Color
	}
	return p.Color
}

// fill writes a solid background, a direction plus from/via/to tokens for
// two or three stops, or an arbitrary gradient for more.
func (s *serializer) fill(p Paint) {
	if p.Type == PaintSolid || len(p.Stops) == 0 {
		s.emit("bg-"+s.colorBody(p.Color, nil), PropFill)
		return
	}
	stops := slices.Clone(p.Stops)
	slices.SortStableFunc(stops, func(a, b GradientStop) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})
	if len(stops) < 2 || len(stops) > 3 {
		s.emit("bg-["+arbitraryText(GradientCSS(p))+"]", PropFill)
		return
	}

	if p.Type == PaintRadialGradient {
		s.emit("bg-radial", PropFill)
	} else {
		s.emit(linearToken(p.Angle), PropFill)
	}
	from, to := stops[0], stops[len(stops)-1]
	s.emit("from-"+s.colorBody(from.Color, nil), PropFill)
	if !near(from.Position, 0, 1e-4) {
		s.emit("from-"+formatNum(from.Position*100)+"%", PropFill)
	}
	if len(stops) == 3 {
		via := stops[1]
		s.emit("via-"+s.colorBody(via.Color, nil), PropFill)
		if !near(via.Position, 0.5, 1e-4) {
			s.emit("via-"+formatNum(via.Position*100)+"%", PropFill)
		}
	}
	s.emit("to-"+s.colorBody(to.Color, nil), PropFill)
	if !near(to.Position, 1, 1e-4) {
		s.emit("to-"+formatNum(to.Position*100)+"%", PropFill)
	}
}

func linearToken(angle float64) string {
	angle = normalizeAngle(angle)
	for _, k := range sortedKeys(gradientDirections) {
		if near(gradientDirections[k], angle, 1e-4) {
			return "bg-linear-" + k
		}
	}
	if angle == math.Trunc(angle) {
		return "bg-linear-" + strconv.Itoa(int(angle))
	}
	return "bg-linear-[" + formatNum(angle) + "deg]"
}

// GradientCSS renders a gradient paint as a CSS function.
// {linear 90°, #fff@0, #000@1} → "linear-gradient(90deg, #ffffff 0%, #000000 100%)"
func GradientCSS(p Paint) string {
	parts := make([]string, 0, len(p.Stops)+1)
	fn := "radial-gradient("
	if p.Type == PaintLinearGradient {
		fn = "linear-gradient("
		parts = append(parts, formatNum(p.Angle)+"deg")
	}
	for _, st := range p.Stops {
		parts = append(parts, st.Color.CSS()+" "+formatNum(st.Position*100)+"%")
	}
	return fn + strings.Join(parts, ", ") + ")"
}

var (
	textCaseTokens       = map[string]string{"uppercase": "upper", "lowercase": "lower", "capitalize": "title", "normal-case": "original"}
	textDecorationTokens = map[string]string{"underline": "underline", "overline": "overline", "line-through": "strikethrough", "no-underline": "none"}
)

func (s *serializer) typography() {
	t := s.b.Typography
	if t.FontSize != nil {
		if name, ok := s.th.FontSizeName(*t.FontSize); ok {
			s.emit("text-"+name, PropFontSize)
		} else {
			s.emit("text-"+arbitraryLength(PropFontSize, Length{Value: *t.FontSize, Unit: "px"}), PropFontSize)
		}
	}
	if t.FontFamily != nil {
		s.emit("font-"+s.familyBody(*t.FontFamily), PropFontFamily)
	}
	if t.FontWeight != nil {
		if name, ok := s.th.FontWeightName(*t.FontWeight); ok {
			s.emit("font-"+name, PropFontWeight)
		} else {
			s.emit("font-["+strconv.Itoa(*t.FontWeight)+"]", PropFontWeight)
		}
	}
	if t.Italic != nil {
		if *t.Italic {
			s.emit("italic", PropFontStyle)
		} else {
			s.emit("not-italic", PropFontStyle)
		}
	}
	if t.LineHeight != nil {
		s.emit("leading-"+s.lineHeightBody(*t.LineHeight), PropLineHeight)
	}
	if t.LetterSpacing != nil {
		s.emit("tracking-"+s.letterSpacingBody(*t.LetterSpacing), PropLetterSpacing)
	}
	s.keywordField(PropTextAlign, t.TextAlign, "text", textAligns)
	s.keywordField(PropTextCase, t.TextCase, "", textCaseTokens)
	s.keywordField(PropTextDecoration, t.TextDecoration, "", textDecorationTokens)
}

func (s *serializer) familyBody(family string) string {
	if name, ok := s.th.FontFamilyName(family); ok {
		return name
	}
	if _, isInt := parseInteger(family); isInt {
		return "[family-name:" + arbitraryText(family) + "]"
	}
	if _, ok := s.th.FontWeight(family); ok {
		return "[family-name:" + arbitraryText(family) + "]"
	}
	return "[" + arbitraryText(family) + "]"
}

// lineHeightBody: multipliers use a preset name or a percentage, px uses a
// spacing step or an arbitrary value.
func (s *serializer) lineHeightBody(l Length) string {
	if l.Unit == "" {
		if name, ok := s.th.LineHeightName(l.Value); ok {
			return name
		}
		return "[" + formatNum(l.Value*100) + "%]"
	}
	return s.lengthBody(l, lengthScale{prop: PropLineHeight, numeric: true})
}

func (s *serializer) letterSpacingBody(l Length) string {
	if l.Unit == "em" {
		if name, ok := s.th.LetterSpacingName(l.Value); ok {
			return name
		}
	}
	return arbitraryLength(PropLetterSpacing, l)
}

func (s *serializer) effects() {
	e := s.b.Effects
	if e.Shadows != nil {
		s.emit(s.shadowToken(e.Shadows), PropShadow)
	}
	for _, f := range []struct {
		prefix string
		prop   Property
		v      *float64
	}{{"blur", PropLayerBlur, e.LayerBlur}, {"backdrop-blur", PropBackgroundBlur, e.BackgroundBlur}} {
		if f.v == nil {
			continue
		}
		// Blur radii below zero do not parse back.
		px := math.Max(0, *f.v)
		if name, ok := s.th.BlurName(px); ok {
			s.emit(token(f.prefix, false, name), f.prop)
		} else {
			s.emit(f.prefix+"-["+formatNum(px)+"px]", f.prop)
		}
	}
	if e.Opacity != nil {
		pct := round4(*e.Opacity * 100)
		if pct >= 0 && pct <= 100 && pct == math.Trunc(pct) {
			s.emit("opacity-"+strconv.Itoa(int(pct)), PropOpacity)
		} else {
			s.emit("opacity-["+formatNum(*e.Opacity)+"]", PropOpacity)
		}
	}
	s.keywordField(PropBlendMode, e.BlendMode, "mix-blend", blendModes)
}

func (s *serializer) shadowToken(layers []Shadow) string {
	if len(layers) == 0 {
		return "shadow-none"
	}
	for _, name := range s.th.ShadowNames() {
		preset, _ := s.th.Shadow(name)
		want, ok := themeShadows(preset)
		if !ok || len(want) != len(layers) {
			continue
		}
		match := true
		for i := range want {
			if !want[i].Equal(layers[i], theme.Tolerance) {
				match = false
				break
			}
		}
		if match {
			return token("shadow", false, name)
		}
	}
	return "shadow-[" + arbitraryText(ShadowCSS(layers)) + "]"
}

// ShadowCSS renders shadow layers as a CSS box-shadow list.
func ShadowCSS(layers []Shadow) string {
	parts := make([]string, len(layers))
	for i, l := range layers {
		var b strings.Builder
		if l.Inset {
			b.WriteString("inset ")
		}
		for _, n := range []float64{l.X, l.Y, l.Blur, l.Spread} {
			b.WriteString(formatNum(n) + "px ")
		}
		b.WriteString(l.Color.CSS())
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

func (s *serializer) transforms() {
	t := s.b.Transform
	translate := func(prop Property) lengthScale {
		return lengthScale{
			prop:      prop,
			literals:  map[string]Value{"full": number(100, "%")},
			numeric:   true,
			fractions: true,
			named:     s.th.SpacingName,
			signed:    true,
		}
	}
	if t.TranslateX != nil && t.TranslateY != nil && *t.TranslateX == *t.TranslateY {
		s.emitSide("translate", s.lengthSide(PropTranslateX, t.TranslateX, translate(PropTranslateX)), PropTranslateX, PropTranslateY)
	} else {
		if t.TranslateX != nil {
			s.emitSide("translate-x", s.lengthSide(PropTranslateX, t.TranslateX, translate(PropTranslateX)), PropTranslateX)
		}
		if t.TranslateY != nil {
			s.emitSide("translate-y", s.lengthSide(PropTranslateY, t.TranslateY, translate(PropTranslateY)), PropTranslateY)
		}
	}
	if t.Rotate != nil {
		s.emit(angleToken("rotate", *t.Rotate), PropRotate)
	}
	if t.ScaleX != nil && t.ScaleY != nil && *t.ScaleX == *t.ScaleY {
		s.emit(scaleToken("scale", *t.ScaleX), PropScaleX, PropScaleY)
	} else {
		if t.ScaleX != nil {
			s.emit(scaleToken("scale-x", *t.ScaleX), PropScaleX)
		}
		if t.ScaleY != nil {
			s.emit(scaleToken("scale-y", *t.ScaleY), PropScaleY)
		}
	}
	if t.SkewX != nil {
		s.emit(angleToken("skew-x", *t.SkewX), PropSkewX)
	}
	if t.SkewY != nil {
		s.emit(angleToken("skew-y", *t.SkewY), PropSkewY)
	}
	if t.Origin != nil {
		body := "[" + arbitraryText(*t.Origin) + "]"
		for _, k := range sortedKeys(origins) {
			if origins[k] == *t.Origin {
				body = k
				break
			}
		}
		s.emit("origin-"+body, PropOrigin)
	}
}

func angleToken(prefix string, deg float64) string {
	if deg == math.Trunc(deg) {
		return token(prefix, deg < 0, strconv.Itoa(int(math.Abs(deg))))
	}
	return prefix + "-[" + formatNum(deg) + "deg]"
}

func scaleToken(prefix string, f float64) string {
	pct := round4(f * 100)
	if pct == math.Trunc(pct) {
		return token(prefix, pct < 0, strconv.Itoa(int(math.Abs(pct))))
	}
	return prefix + "-[" + formatNum(f) + "]"
}

func (s *serializer) motion() {
	m := s.b.Motion
	if m.TransitionProperty != nil {
		body, found := "", false
		for _, k := range sortedKeys(transitionProperties) {
			if transitionProperties[k] == *m.TransitionProperty {
				body, found = k, true
				break
			}
		}
		if !found {
			body = "[" + arbitraryText(*m.TransitionProperty) + "]"
		}
		s.emit(token("transition", false, body), PropTransitionProperty)
	}
	for _, f := range []struct {
		prefix string
		prop   Property
		v      *float64
	}{{"duration", PropTransitionDuration, m.Duration}, {"delay", PropTransitionDelay, m.Delay}} {
		if f.v == nil {
			continue
		}
		if *f.v >= 0 && *f.v == math.Trunc(*f.v) {
			s.emit(f.prefix+"-"+strconv.Itoa(int(*f.v)), f.prop)
		} else {
			s.emit(f.prefix+"-["+formatNum(*f.v)+"ms]", f.prop)
		}
	}
	if m.Easing != nil {
		body := "[" + arbitraryText(*m.Easing) + "]"
		for _, k := range sortedKeys(easings) {
			if easings[k] == *m.Easing {
				body = k
				break
			}
		}
		s.emit("ease-"+body, PropTransitionTiming)
	}
	if m.Animation != nil {
		s.emit(s.animationToken(*m.Animation), PropAnimation)
	}
}

func (s *serializer) animationToken(a Animation) string {
	if a.Name == "none" {
		return "animate-none"
	}
	if preset, ok := s.th.Animation(a.Name); ok &&
		near(preset.Duration, a.Duration, theme.Tolerance) &&
		normalizeEasing(preset.Easing) == normalizeEasing(a.Easing) &&
		preset.Iterations == a.Iterations {
		return "animate-" + a.Name
	}
	parts := []string{a.Name, formatNum(a.Duration) + "ms"}
	if a.Easing != "" {
		parts = append(parts, strings.ReplaceAll(a.Easing, " ", ""))
	}
	if a.Iterations == 0 {
		parts = append(parts, "infinite")
	} else {
		parts = append(parts, strconv.Itoa(a.Iterations))
	}
	return "animate-[" + strings.Join(parts, "_") + "]"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
