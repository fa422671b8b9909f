package mathil

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 24-bit RGB colour, the unit stored in a Screen.
type Color struct {
	R, G, B uint8
}

// RGB creates a colour from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses "#rrggbb" or "#rgb" (the leading '#' is required).
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("mathil: parse colour %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// MustHex is like Hex but panics if s cannot be parsed.
// It is intended for package-level palette definitions.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGBA implements color.Color. The colour is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// LerpColor interpolates component-wise between a and b.
// t=0 returns a exactly and t=1 returns b exactly.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(lerp(float64(a), float64(b), t))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Rainbow maps t in [0, 1] onto the hue circle at full saturation and value:
// 0 is red, 1/3 green, 2/3 blue and 1 red again. Values outside [0, 1] are
// clamped.
func Rainbow(t float64) Color {
	t = math.Max(0, math.Min(1, t))
	// Hsv leaves a hue of exactly 360 black.
	return fromColorful(colorful.Hsv(math.Mod(360*t, 360), 1, 1).Clamped())
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}

// Named colours.
var (
	Black           = RGB(0, 0, 0)
	White           = RGB(255, 255, 255)
	Red             = RGB(255, 0, 0)
	Green           = RGB(0, 255, 0)
	Blue            = RGB(0, 0, 255)
	Grey            = RGB(128, 128, 128)
	Almond          = MustHex("#efdecd")
	BabyBlue        = MustHex("#89cff0")
	AlizarinCrimson = MustHex("#e32636")
	Amethyst        = MustHex("#9b59b6")
	MidnightBlue    = MustHex("#191970")
)
