package vibrant

import "image/color"

// PixelFilter decides which pixels may train the palette.
//
// A pixel is boring when it is near-opaque (A >= MinAlpha) and every
// color channel exceeds MaxChannel, i.e. solid near-white. Everything
// else is interesting. Near-white backgrounds would otherwise dominate
// the palette without carrying any useful color.
type PixelFilter struct {
	MinAlpha   uint8 `json:"minAlpha" yaml:"min_alpha"`
	MaxChannel uint8 `json:"maxChannel" yaml:"max_channel"`
}

// DefaultPixelFilter treats alpha >= 125 as opaque and channels above
// 250 as white.
var DefaultPixelFilter = PixelFilter{MinAlpha: 125, MaxChannel: 250}

// IsBoring reports whether p is solid near-white.
func (f PixelFilter) IsBoring(p color.NRGBA) bool {
	return p.A >= f.MinAlpha &&
		p.R > f.MaxChannel && p.G > f.MaxChannel && p.B > f.MaxChannel
}

// IsInteresting reports whether p is not boring.
func (f PixelFilter) IsInteresting(p color.NRGBA) bool {
	return !f.IsBoring(p)
}

// IsVisible reports whether p is opaque enough to carry a reliable color.
func (f PixelFilter) IsVisible(p color.NRGBA) bool {
	return p.A >= f.MinAlpha
}

// trains reports whether p belongs in the quantizer's training stream:
// interesting and visible.
func (f PixelFilter) trains(p color.NRGBA) bool {
	return f.IsVisible(p) && f.IsInteresting(p)
}

// IsInteresting applies DefaultPixelFilter.
func IsInteresting(p color.NRGBA) bool {
	return DefaultPixelFilter.IsInteresting(p)
}
