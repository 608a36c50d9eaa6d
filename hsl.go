package vibrant

import "math"

// HSL is a color in the hue/saturation/lightness model. H is in degrees
// [0, 360), S and L are in [0, 1].
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts 8-bit RGB channels to HSL. Achromatic colors
// (r == g == b) have hue and saturation 0.
func RGBToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: l}
	}

	d := hi - lo
	var s float64
	if l < 0.5 {
		s = d / (hi + lo)
	} else {
		s = d / (2 - hi - lo)
	}

	var h float64
	switch hi {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s, L: l}
}

// HSL converts c to the HSL color model.
func (c RGB) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

// within reports whether v lies in the inclusive range [lo, hi].
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
