package vibrant

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. Swatches and palette entries
// are RGB; alpha only matters while filtering and quantizing pixels.
type RGB struct {
	R, G, B uint8
}

// rgbFromBytes takes the first three bytes of an RGBA tuple.
func rgbFromBytes(px []byte) RGB {
	return RGB{R: px[0], G: px[1], B: px[2]}
}

// RGBFromColor converts any color.Color to RGB, dropping alpha. The
// channels are un-premultiplied first.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ToColor converts RGB to an opaque color.NRGBA.
func (c RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color as an uppercase #RRGGBB triplet.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses "#RRGGBB" or "RRGGBB", case-insensitively.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MarshalText renders the color as a hex triplet, so colors appear as
// "#RRGGBB" in JSON and YAML.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText parses a hex triplet.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
