package vibrant

import (
	"image"
	"image/color"
)

// PixelSource is anything exposing a width, a height and non-premultiplied
// RGBA pixels at coordinates x in [0, Width) and y in [0, Height).
//
// *imageutil.NRGBAImage satisfies it directly; FromImage adapts any
// image.Image.
type PixelSource interface {
	Width() int
	Height() int
	NRGBAAt(x, y int) color.NRGBA
}

// imageSource adapts an image.Image whose bounds may not start at the
// origin.
type imageSource struct {
	img    image.Image
	bounds image.Rectangle
}

// FromImage adapts img to a PixelSource. *image.NRGBA images are read
// directly; other images go through color.NRGBAModel.
func FromImage(img image.Image) PixelSource {
	return imageSource{img: img, bounds: img.Bounds()}
}

func (s imageSource) Width() int  { return s.bounds.Dx() }
func (s imageSource) Height() int { return s.bounds.Dy() }

func (s imageSource) NRGBAAt(x, y int) color.NRGBA {
	x += s.bounds.Min.X
	y += s.bounds.Min.Y
	if n, ok := s.img.(*image.NRGBA); ok {
		return n.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(s.img.At(x, y)).(color.NRGBA)
}
