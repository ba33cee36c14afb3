package tw

import "slices"

// Assembled is the result of folding parsed styles into bags.
type Assembled struct {
	Unconditional Bag `json:"unconditional"`
	// Conditional bags are keyed by the canonical modifier key ("md:hover").
	Conditional map[string]*Bag `json:"conditional,omitempty"`
	// Keys lists the conditional keys in first-seen order.
	Keys []string `json:"keys,omitempty"`
	// Modifiers holds the parsed modifiers behind each conditional key.
	Modifiers map[string][]Modifier `json:"-"`
	// Literals are tokens that did not resolve, echoed in source order.
	Literals []string `json:"literals,omitempty"`
}

// Bag returns the bag for key ("" is the unconditional bag), or nil.
func (a *Assembled) Bag(key string) *Bag {
	if key == "" {
		return &a.Unconditional
	}
	return a.Conditional[key]
}

// gradientDraft collects gradient records for one bag until the fold ends.
type gradientDraft struct {
	direction *Value
	values    map[Property]Value
}

var gradientProperties = []Property{
	PropGradient, PropGradientFrom, PropGradientVia, PropGradientTo,
	PropGradientFromStop, PropGradientViaStop, PropGradientToStop,
}

func isGradientProperty(p Property) bool { return slices.Contains(gradientProperties, p) }

// Assemble folds styles left to right. For every discrete property the last
// record wins, except that a non-important record never overwrites an
// important one. Records with modifiers go to the bag for their modifier
// key and never touch the unconditional bag.
func Assemble(styles []ParsedStyle) Assembled {
	out := Assembled{}
	drafts := map[string]*gradientDraft{}

	for _, s := range styles {
		key := s.Key()
		b := out.bagFor(key, s.Modifiers)
		d := drafts[key]
		if d == nil {
			d = &gradientDraft{values: map[Property]Value{}}
			drafts[key] = d
		}
		for i, target := range s.Targets {
			if b.Important[target] && !s.Important {
				continue
			}
			if s.Important {
				if b.Important == nil {
					b.Important = map[Property]bool{}
				}
				b.Important[target] = true
			}
			v := s.ValueFor(i)
			switch {
			case target == PropGradient:
				d.direction = &v
			case isGradientProperty(target):
				d.values[target] = v
			default:
				if target == PropFill {
					// A later background replaces an earlier gradient.
					d.direction = nil
				}
				b.write(target, v)
			}
		}
	}

	for key, d := range drafts {
		d.compose(out.Bag(key))
	}
	return out
}

func (a *Assembled) bagFor(key string, mods []Modifier) *Bag {
	if key == "" {
		return &a.Unconditional
	}
	if b, ok := a.Conditional[key]; ok {
		return b
	}
	if a.Conditional == nil {
		a.Conditional = map[string]*Bag{}
		a.Modifiers = map[string][]Modifier{}
	}
	b := &Bag{}
	a.Conditional[key] = b
	a.Modifiers[key] = slices.Clone(mods)
	a.Keys = append(a.Keys, key)
	return b
}

// write stores v in the typed field for p, or in Extra when no typed field
// can hold it.
func (b *Bag) write(p Property, v Value) {
	if b.apply(p, v) {
		delete(b.Extra, p)
		return
	}
	b.setExtra(p, v)
}

// compose turns the draft into a gradient fill. Stops without a direction
// and stops that are not plain colors are kept in Extra.
func (d *gradientDraft) compose(b *Bag) {
	if d.direction == nil {
		for p, v := range d.values {
			b.setExtra(p, v)
		}
		return
	}
	paint, ok := d.paint()
	if !ok {
		b.setExtra(PropGradient, *d.direction)
		for p, v := range d.values {
			b.setExtra(p, v)
		}
		b.Color.Fill = nil
		return
	}
	b.Color.Fill = &paint
	delete(b.Extra, PropFill)
	for _, p := range gradientProperties {
		if b.Important[p] {
			b.Important[PropFill] = true
			break
		}
	}
}

func (d *gradientDraft) paint() (Paint, bool) {
	p := Paint{Type: PaintLinearGradient}
	switch dir := *d.direction; {
	case dir.Kind == KindString && dir.Str == "radial":
		p.Type = PaintRadialGradient
	case dir.Kind == KindNumber:
		p.Angle = dir.Num
	default:
		return Paint{}, false
	}

	stop := func(colorProp, posProp Property, defColor Color, defPos float64) (GradientStop, bool, bool) {
		s := GradientStop{Color: defColor, Position: defPos}
		set := false
		if v, ok := d.values[colorProp]; ok {
			if v.Kind != KindColor {
				return s, false, false
			}
			s.Color, set = v.Color, true
		}
		if v, ok := d.values[posProp]; ok {
			if v.Kind != KindNumber {
				return s, false, false
			}
			s.Position = v.Num / 100
		}
		return s, set, true
	}

	from, _, ok1 := stop(PropGradientFrom, PropGradientFromStop, Transparent, 0)
	via, hasVia, ok2 := stop(PropGradientVia, PropGradientViaStop, Transparent, 0.5)
	to, _, ok3 := stop(PropGradientTo, PropGradientToStop, Transparent, 1)
	if !ok1 || !ok2 || !ok3 {
		return Paint{}, false
	}
	p.Stops = []GradientStop{from}
	if hasVia {
		p.Stops = append(p.Stops, via)
	}
	p.Stops = append(p.Stops, to)
	slices.SortStableFunc(p.Stops, func(a, b GradientStop) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})
	return p, true
}

// Merge copies every populated property of src over b.
func (b *Bag) Merge(src *Bag) {
	for _, p := range discreteProperties {
		if !src.has(p) {
			continue
		}
		b.copyField(src, p)
		delete(b.Extra, p)
	}
	for p, v := range src.Extra {
		b.setExtra(p, v)
	}
	for p, imp := range src.Important {
		if !imp {
			continue
		}
		if b.Important == nil {
			b.Important = map[Property]bool{}
		}
		b.Important[p] = true
	}
}

// Clone returns a deep copy of b.
func (b *Bag) Clone() Bag {
	var c Bag
	c.Merge(b)
	return c
}

// Clone returns a deep copy of a.
func (a *Assembled) Clone() Assembled {
	c := Assembled{
		Unconditional: a.Unconditional.Clone(),
		Keys:          append([]string(nil), a.Keys...),
		Literals:      append([]string(nil), a.Literals...),
	}
	if a.Conditional != nil {
		c.Conditional = make(map[string]*Bag, len(a.Conditional))
		c.Modifiers = make(map[string][]Modifier, len(a.Modifiers))
		for k, b := range a.Conditional {
			cb := b.Clone()
			c.Conditional[k] = &cb
		}
		for k, m := range a.Modifiers {
			c.Modifiers[k] = append([]Modifier(nil), m...)
		}
	}
	return c
}

// IsEmpty reports whether no property is populated.
func (b *Bag) IsEmpty() bool {
	for _, p := range discreteProperties {
		if b.has(p) {
			return false
		}
	}
	return len(b.Extra) == 0
}

func (b *Bag) copyField(src *Bag, p Property) {
	switch s := src.field(p).(type) {
	case **float64:
		copyPtr(b.field(p).(**float64), s)
	case **Length:
		copyPtr(b.field(p).(**Length), s)
	case **string:
		copyPtr(b.field(p).(**string), s)
	case **int:
		copyPtr(b.field(p).(**int), s)
	case **bool:
		copyPtr(b.field(p).(**bool), s)
	case **Animation:
		copyPtr(b.field(p).(**Animation), s)
	case **Paint:
		dst := b.field(p).(**Paint)
		copyPtr(dst, s)
		if *dst != nil {
			(*dst).Stops = slices.Clone((*s).Stops)
		}
	case *[]Shadow:
		*b.field(p).(*[]Shadow) = append([]Shadow{}, (*s)...)
	}
}

func copyPtr[T any](dst, src **T) {
	if *src == nil {
		*dst = nil
		return
	}
	v := **src
	*dst = &v
}
