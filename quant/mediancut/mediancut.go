// Package mediancut adapts github.com/ericpauley/go-quantize's median cut
// quantizer to quant.Quantizer.
package mediancut

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/wbrown/vibrant/quant"
)

// MaxStride bounds the quality knob, which is used as a sampling stride
// over the training stream.
const MaxStride = 30

// Quantizer runs median cut over the training stream. quality is a
// sampling stride: 1 uses every pixel.
type Quantizer struct {
	// Aggregation picks how a bucket becomes a color: quantize.Mean
	// (the zero value is quantize.Mode).
	Aggregation quantize.AggregationType
}

// Quantize returns a nearest-color map over at most colorCount median cut
// buckets.
func (q Quantizer) Quantize(pixels []byte, colorCount, quality int) quant.ColorMap {
	stride := quant.ClampQuality(quality, 1, 1, MaxStride)
	sampled := quant.Sample(pixels, stride)
	n := len(sampled) / quant.Channels
	if n == 0 || colorCount < 1 {
		return quant.NewNearestMap(nil)
	}

	img := &image.NRGBA{
		Pix:    sampled[:n*quant.Channels],
		Stride: n * quant.Channels,
		Rect:   image.Rect(0, 0, n, 1),
	}
	mc := quantize.MedianCutQuantizer{Aggregation: q.Aggregation}
	palette := mc.Quantize(make(color.Palette, 0, colorCount), img)

	return quant.NewNearestMap(paletteTable(palette))
}

// paletteTable flattens a palette to non-premultiplied RGBA bytes.
func paletteTable(p color.Palette) []byte {
	table := make([]byte, 0, len(p)*quant.Channels)
	for _, c := range p {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		table = append(table, n.R, n.G, n.B, n.A)
	}
	return table
}
