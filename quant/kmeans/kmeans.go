// Package kmeans adapts github.com/muesli/kmeans to quant.Quantizer. Each
// pixel is an observation in RGBA space; the cluster centers become the
// color table.
package kmeans

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/wbrown/vibrant/quant"
)

const (
	MaxStride = 30

	// DeltaThreshold stops iterating once fewer than this fraction of
	// observations change cluster in a round.
	DeltaThreshold = 0.01
)

// Quantizer clusters the training stream with k-means. quality is a
// sampling stride: 1 uses every pixel. Results depend on the random
// initial centroids chosen by the kmeans package.
type Quantizer struct{}

// Quantize returns a nearest-color map over at most colorCount cluster
// centers. Fewer centers are produced when the stream has fewer pixels
// than colorCount.
func (Quantizer) Quantize(pixels []byte, colorCount, quality int) quant.ColorMap {
	stride := quant.ClampQuality(quality, 1, 1, MaxStride)
	sampled := quant.Sample(pixels, stride)
	n := len(sampled) / quant.Channels
	if n == 0 || colorCount < 1 {
		return quant.NewNearestMap(nil)
	}

	observations := make(clusters.Observations, n)
	for i := range observations {
		px := sampled[i*quant.Channels:]
		observations[i] = clusters.Coordinates{
			float64(px[0]), float64(px[1]), float64(px[2]), float64(px[3]),
		}
	}

	k := min(colorCount, n)
	km, err := kmeans.NewWithOptions(DeltaThreshold, nil)
	if err != nil {
		return quant.NewNearestMap(nil)
	}
	groups, err := km.Partition(observations, k)
	if err != nil {
		return quant.NewNearestMap(nil)
	}

	table := make([]byte, 0, len(groups)*quant.Channels)
	for _, g := range groups {
		if len(g.Observations) == 0 {
			continue
		}
		for _, v := range g.Center[:quant.Channels] {
			table = append(table, clampByte(v))
		}
	}
	return quant.NewNearestMap(table)
}

func clampByte(v float64) byte {
	v += 0.5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
