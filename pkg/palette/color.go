package palette

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartstyle/pkg/errors"
)

// Color is a normalized "#rrggbb" color string.
type Color string

// Well-known colors.
const (
	White Color = "#ffffff"
	Black Color = "#000000"
)

// ParseColor validates s and returns its normalized form.
// Both "#rgb" and "#rrggbb" are accepted, in any case.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 7 || !strings.HasPrefix(s, "#") {
		return "", errors.New(errors.ErrCodeInvalidColor, "invalid color %q (want #rgb or #rrggbb)", s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return Color(c.Clamped().Hex()), nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts an image/color value, dropping alpha.
// Fully transparent colors map to black.
func FromColor(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Black
	}
	return Color(cf.Clamped().Hex())
}

// String implements fmt.Stringer.
func (c Color) String() string { return string(c) }

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return c == "" }

// Valid reports whether c is a well-formed color.
func (c Color) Valid() bool {
	_, err := ParseColor(string(c))
	return err == nil
}

// RGBA returns c as an image/color value. Invalid colors yield opaque black.
func (c Color) RGBA() color.RGBA {
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := cf.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Lighten blends c toward white by ratio in RGB space.
// A ratio of 0 returns c unchanged and 1 returns white; ratios outside
// [0, 1] are clamped. The result is deterministic for a given input.
func Lighten(c Color, ratio float64) Color {
	ratio = min(1, max(0, ratio))
	if ratio == 0 {
		return c
	}
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return Color(cf.BlendRgb(white, ratio).Clamped().Hex())
}
