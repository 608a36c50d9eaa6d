package imageutil

import (
	"image"
	"image/color"
)

// CreateGradientImage creates a horizontal gray ramp from black to white.
func CreateGradientImage(width, height int) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(width-1, 1))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c color.NRGBA) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	img.FillRect(img.Bounds(), c)
	return img
}

// CreatePatchImage creates an image filled with bg with the rectangle
// patch filled with fg.
func CreatePatchImage(width, height int, bg, fg color.NRGBA, patch image.Rectangle) *NRGBAImage {
	img := CreateSolidImage(width, height, bg)
	img.FillRect(patch.Intersect(img.Bounds()), fg)
	return img
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := max(width/len(colors), 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := min(x/barWidth, len(colors)-1)
			c := colors[colorIdx]
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// CountColors returns the number of pixels of each distinct color.
func CountColors(img *NRGBAImage) map[color.NRGBA]int {
	counts := make(map[color.NRGBA]int)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			counts[img.NRGBAAt(x, y)]++
		}
	}
	return counts
}
