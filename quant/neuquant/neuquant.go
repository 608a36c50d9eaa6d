// Package neuquant implements the NeuQuant neural-net color quantizer
// (Anthony Dekker, 1994) over RGBA pixels.
//
// A one-dimensional Kohonen self-organizing network of netSize neurons is
// trained on a sample of the input; the trained neuron positions become the
// color table. Sampling is controlled by the sample factor (quality): 1
// visits every pixel, 30 visits one in thirty.
package neuquant

import (
	"math"

	"github.com/wbrown/vibrant/quant"
)

const (
	MinSampleFactor     = 1
	MaxSampleFactor     = 30
	DefaultSampleFactor = 10
	MaxColors           = 256

	learningCycles = 100

	alphaBiasShift = 10
	initAlpha      = 1 << alphaBiasShift

	gamma     = 1024.0
	beta      = 1.0 / gamma
	betaGamma = beta * gamma

	radiusBiasShift = 6
	radiusBias      = 1 << radiusBiasShift
	radiusDec       = 30
)

// Four primes near 500. The learning loop steps through the input by the
// first one that does not divide the pixel count.
var primes = [...]int{499, 491, 487, 503}

type neuron [quant.Channels]float64

// Network is a trained NeuQuant network.
type Network struct {
	neurons      []neuron
	bias         []float64
	freq         []float64
	sampleFactor int
}

// Quantizer adapts NeuQuant to quant.Quantizer. quality is the sample
// factor.
type Quantizer struct{}

// Quantize trains a network of colorCount neurons on pixels and returns a
// nearest-color map over the resulting table.
func (Quantizer) Quantize(pixels []byte, colorCount, quality int) quant.ColorMap {
	return quant.NewNearestMap(Learn(pixels, colorCount, quality).ColorMapRGBA())
}

// Learn trains a network of colors neurons on a flat RGBA stream. An empty
// stream produces an empty network.
func Learn(pixels []byte, colors, sampleFactor int) *Network {
	sampleFactor = quant.ClampQuality(sampleFactor, DefaultSampleFactor,
		MinSampleFactor, MaxSampleFactor)
	if colors < 1 {
		colors = 1
	}
	if colors > MaxColors {
		colors = MaxColors
	}

	n := &Network{sampleFactor: sampleFactor}
	if len(pixels) < quant.Channels {
		return n
	}

	n.neurons = make([]neuron, colors)
	n.bias = make([]float64, colors)
	n.freq = make([]float64, colors)
	for i := range n.neurons {
		v := float64(i) * 256 / float64(colors)
		a := 255.0
		if i < 16 {
			a = float64(i) * 16
		}
		n.neurons[i] = neuron{v, v, v, a}
		n.freq[i] = 1 / float64(colors)
	}

	n.learn(pixels)
	return n
}

// Len returns the number of neurons.
func (n *Network) Len() int {
	return len(n.neurons)
}

// ColorMapRGBA returns the neuron positions rounded to bytes, in network
// order.
func (n *Network) ColorMapRGBA() []byte {
	table := make([]byte, 0, len(n.neurons)*quant.Channels)
	for _, nr := range n.neurons {
		for _, v := range nr {
			table = append(table, clampByte(v))
		}
	}
	return table
}

func clampByte(v float64) byte {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}

func (n *Network) learn(pixels []byte) {
	netSize := len(n.neurons)
	pixelCount := len(pixels) / quant.Channels

	samplePixels := pixelCount / n.sampleFactor
	if samplePixels < learningCycles {
		samplePixels = learningCycles
	}
	delta := samplePixels / learningCycles
	alphaDec := 30 + (n.sampleFactor-1)/3

	biasRadius := (netSize / 8) * radiusBias
	rad := biasRadius >> radiusBiasShift
	if rad <= 1 {
		rad = 0
	}

	step := primes[len(primes)-1]
	for _, p := range primes {
		if pixelCount%p != 0 {
			step = p
			break
		}
	}

	alpha := initAlpha
	pos := 0
	for i := 1; i <= samplePixels; i++ {
		var px neuron
		for c := range px {
			px[c] = float64(pixels[pos*quant.Channels+c])
		}

		j := n.contest(px)
		a := float64(alpha) / initAlpha
		n.alterSingle(a, j, px)
		if rad > 0 {
			n.alterNeighbours(a, rad, j, px)
		}

		pos = (pos + step) % pixelCount

		if i%delta == 0 {
			alpha -= alpha / alphaDec
			biasRadius -= biasRadius / radiusDec
			rad = biasRadius >> radiusBiasShift
			if rad <= 1 {
				rad = 0
			}
		}
	}
}

// contest finds the neuron closest to px, and the neuron with the best
// bias-adjusted distance. Frequencies and biases are updated so that
// neurons which rarely win get a growing advantage. The bias-adjusted
// winner is returned.
func (n *Network) contest(px neuron) int {
	bestDist, bestBiasDist := math.MaxFloat64, math.MaxFloat64
	bestPos, bestBiasPos := 0, 0

	for i, nr := range n.neurons {
		var dist float64
		for c := range nr {
			dist += math.Abs(nr[c] - px[c])
		}
		if dist < bestDist {
			bestDist, bestPos = dist, i
		}
		if biasDist := dist - n.bias[i]; biasDist < bestBiasDist {
			bestBiasDist, bestBiasPos = biasDist, i
		}

		n.freq[i] -= beta * n.freq[i]
		n.bias[i] += betaGamma * n.freq[i]
	}

	n.freq[bestPos] += beta
	n.bias[bestPos] -= betaGamma
	return bestBiasPos
}

// alterSingle moves neuron i towards px by factor alpha.
func (n *Network) alterSingle(alpha float64, i int, px neuron) {
	nr := &n.neurons[i]
	for c := range nr {
		nr[c] -= alpha * (nr[c] - px[c])
	}
}

// alterNeighbours moves the neurons within rad of i towards px, with a
// factor falling off quadratically with distance from i.
func (n *Network) alterNeighbours(alpha float64, rad, i int, px neuron) {
	lo := max(i-rad, -1)
	hi := min(i+rad, len(n.neurons))
	radSq := float64(rad * rad)

	for q, j, k := 1, i+1, i-1; j < hi || k > lo; q++ {
		a := alpha * (radSq - float64(q*q)) / radSq
		if j < hi {
			n.alterSingle(a, j, px)
			j++
		}
		if k > lo {
			n.alterSingle(a, k, px)
			k--
		}
	}
}
