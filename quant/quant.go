// Package quant defines the boundary between swatch extraction and the
// color quantizer that reduces an image's pixels to a small color table.
//
// A quantizer is trained on a flat stream of RGBA bytes and returns a
// ColorMap: the resulting color table plus a classifier mapping any RGBA
// value to an index into that table. Any algorithm satisfying the contract
// is substitutable; see the neuquant, mediancut and kmeans subpackages.
package quant

// Channels is the number of bytes per pixel in training streams and
// color tables.
const Channels = 4

// Quantizer reduces a flat RGBA byte stream to at most colorCount colors.
// quality is a speed/quality knob whose exact meaning is up to the
// implementation; lower is slower and more accurate.
//
// An empty stream yields a ColorMap with an empty table.
type Quantizer interface {
	Quantize(pixels []byte, colorCount, quality int) ColorMap
}

// ColorMap is a trained color table.
type ColorMap interface {
	// ColorMapRGBA returns the color table as flat RGBA bytes. Entries
	// may repeat.
	ColorMapRGBA() []byte
	// IndexOf returns the table index closest to the first four bytes
	// of pixel, or -1 when the table is empty. It must be safe for
	// concurrent use.
	IndexOf(pixel []byte) int
}

// Len returns the number of entries in the color table of m.
func Len(m ColorMap) int {
	return len(m.ColorMapRGBA()) / Channels
}

// ClampQuality limits quality to [lo, hi], mapping non-positive values
// to def.
func ClampQuality(quality, def, lo, hi int) int {
	if quality <= 0 {
		quality = def
	}
	if quality < lo {
		return lo
	}
	if quality > hi {
		return hi
	}
	return quality
}

// Sample returns every stride-th pixel of a flat RGBA stream. A stride of
// 1 or less returns pixels unchanged.
func Sample(pixels []byte, stride int) []byte {
	if stride <= 1 {
		return pixels
	}
	n := len(pixels) / Channels
	out := make([]byte, 0, (n/stride+1)*Channels)
	for i := 0; i < n; i += stride {
		out = append(out, pixels[i*Channels:i*Channels+Channels]...)
	}
	return out
}
