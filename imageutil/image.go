// Package imageutil provides the image plumbing around palette
// extraction: decoding input files into non-premultiplied pixel buffers,
// drawing and saving swatch sheets, and synthetic test images.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// NRGBAImage wraps image.NRGBA. Pixels are non-premultiplied, so a
// transparent pixel keeps its color channels, which the pixel filter
// needs to see. The bounds always start at the origin.
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage creates a new transparent NRGBAImage with the specified
// dimensions.
func NewNRGBAImage(width, height int) *NRGBAImage {
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NRGBAImageFromImage converts any image.Image to NRGBAImage, moving the
// bounds to the origin.
func NRGBAImageFromImage(img image.Image) *NRGBAImage {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return &NRGBAImage{NRGBA: n}
	}
	bounds := img.Bounds()
	nrgba := NewNRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(nrgba.NRGBA, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return nrgba
}

// Width returns the image width.
func (img *NRGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *NRGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y), ignoring alpha.
func (img *NRGBAImage) GetRGB(x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// FillRect fills r with c.
func (img *NRGBAImage) FillRect(r image.Rectangle, c color.NRGBA) {
	draw.Draw(img.NRGBA, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// FillRect fills r with the opaque color c.
func (img *RGBAImage) FillRect(r image.Rectangle, c RGB) {
	draw.Draw(img.RGBA, r, &image.Uniform{C: c.ToColor()}, image.Point{}, draw.Src)
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
