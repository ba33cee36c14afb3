package tw

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA color with channels in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Transparent is rgba(0,0,0,0).
var Transparent = Color{}

// Hex returns the lowercase #rrggbb form, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// CSS returns a hex color when opaque and rgba() otherwise.
func (c Color) CSS() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", channel(c.R), channel(c.G), channel(c.B), formatNum(round4(c.A)))
}

// Equal compares colors at 8-bit channel precision.
func (c Color) Equal(o Color) bool {
	return channel(c.R) == channel(o.R) && channel(c.G) == channel(o.G) &&
		channel(c.B) == channel(o.B) && math.Abs(c.A-o.A) < 0.002
}

// WithAlpha returns c with its alpha scaled by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// PaintType names the kind of a Paint.
type PaintType string

const (
	PaintSolid          PaintType = "SOLID"
	PaintLinearGradient PaintType = "GRADIENT_LINEAR"
	PaintRadialGradient PaintType = "GRADIENT_RADIAL"
)

// GradientStop is one color stop with a position in [0,1].
type GradientStop struct {
	Color    Color   `json:"color"`
	Position float64 `json:"position"`
}

// Paint is a solid color or a gradient.
type Paint struct {
	Type  PaintType      `json:"type"`
	Color Color          `json:"color,omitempty"`
	Angle float64        `json:"angle,omitempty"`
	Stops []GradientStop `json:"stops,omitempty"`
}

// SolidPaint returns a solid paint of c.
func SolidPaint(c Color) Paint { return Paint{Type: PaintSolid, Color: c} }

// Shadow is one drop or inner shadow layer. Offsets and radii are in px.
type Shadow struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Blur   float64 `json:"blur"`
	Spread float64 `json:"spread"`
	Color  Color   `json:"color"`
	Inset  bool    `json:"inset,omitempty"`
}

// Equal compares layers within tolerance.
func (s Shadow) Equal(o Shadow, tol float64) bool {
	return s.Inset == o.Inset && near(s.X, o.X, tol) && near(s.Y, o.Y, tol) &&
		near(s.Blur, o.Blur, tol) && near(s.Spread, o.Spread, tol) && s.Color.Equal(o.Color)
}

// Animation is a named keyframe animation. Iterations of 0 means infinite.
type Animation struct {
	Name       string  `json:"name"`
	Duration   float64 `json:"duration,omitempty"`
	Easing     string  `json:"easing,omitempty"`
	Iterations int     `json:"iterations,omitempty"`
}

// ParseColor parses #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba() and the
// transparent keyword.
// "#1da1f2" → {0.11, 0.63, 0.95, 1}
// "rgb(0 0 0 / 50%)" → {0, 0, 0, 0.5}
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "transparent":
		return Transparent, true
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[5 : len(s)-1])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4 : len(s)-1])
	}
	return Color{}, false
}

func parseHex(h string) (Color, bool) {
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for i := 0; i < len(h); i++ {
			b.WriteByte(h[i])
			b.WriteByte(h[i])
		}
		h = b.String()
	}
	if len(h) != 6 && len(h) != 8 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, true
}

// parseRGBFunc accepts "r,g,b[,a]" and "r g b[ / a]" argument lists.
func parseRGBFunc(args string) (Color, bool) {
	alpha := "1"
	if i := strings.Index(args, "/"); i >= 0 {
		alpha = strings.TrimSpace(args[i+1:])
		args = args[:i]
	}
	fields := strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 4 {
		alpha = fields[3]
		fields = fields[:3]
	}
	if len(fields) != 3 {
		return Color{}, false
	}
	var rgb [3]float64
	for i, f := range fields {
		if strings.HasSuffix(f, "%") {
			n, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
			if err != nil {
				return Color{}, false
			}
			rgb[i] = n / 100
			continue
		}
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Color{}, false
		}
		rgb[i] = n / 255
	}
	a, ok := parseAlpha(alpha)
	if !ok {
		return Color{}, false
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: a}, true
}

// parseAlpha reads "0.5" or "50%". Values outside 0..1 are rejected.
func parseAlpha(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	if pct {
		n /= 100
	}
	if n < 0 || n > 1 {
		return 0, false
	}
	return n, true
}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// formatNum prints v without trailing zeros: 4 → "4", 0.25 → "0.25".
func formatNum(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(round4(v), 'f', -1, 64)
}
