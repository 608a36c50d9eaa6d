package vibrant

import (
	"github.com/wbrown/vibrant/quant"
)

// Extractor bundles the settings for turning images into palettes and
// swatches. It holds no per-image state, so one Extractor may serve many
// images, including concurrently.
type Extractor struct {
	// Configuration options
	ColorCount int
	Quality    int
	Profile    Profile

	builder Builder
}

// ExtractorOption is a functional option for configuring an Extractor.
type ExtractorOption func(*Extractor)

// NewExtractor creates a new Extractor with the given options.
// Default values: ColorCount=10, Quality=10, NeuQuant quantizer,
// DefaultProfile, DefaultPixelFilter, one recount worker.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ColorCount: 10,
		Quality:    10,
		Profile:    DefaultProfile(),
		builder:    NewBuilder(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithColorCount sets the maximum number of palette colors.
func WithColorCount(n int) ExtractorOption {
	return func(e *Extractor) {
		e.ColorCount = n
	}
}

// WithQuality sets the quantizer's quality knob. Lower is slower and more
// accurate.
func WithQuality(q int) ExtractorOption {
	return func(e *Extractor) {
		e.Quality = q
	}
}

// WithQuantizer sets the quantization algorithm.
func WithQuantizer(q quant.Quantizer) ExtractorOption {
	return func(e *Extractor) {
		e.builder.Quantizer = q
	}
}

// WithProfile sets the swatch windows and score weights.
func WithProfile(p Profile) ExtractorOption {
	return func(e *Extractor) {
		e.Profile = p
	}
}

// WithPixelFilter sets the thresholds deciding which pixels train the
// palette.
func WithPixelFilter(f PixelFilter) ExtractorOption {
	return func(e *Extractor) {
		e.builder.Filter = f
	}
}

// WithWorkers sets how many row bands are recounted concurrently.
func WithWorkers(n int) ExtractorOption {
	return func(e *Extractor) {
		e.builder.Workers = n
	}
}

// Result is the full output of one extraction.
type Result struct {
	Palette  Palette    `json:"palette"`
	Vibrancy Vibrancy   `json:"vibrancy"`
	Stats    BuildStats `json:"stats"`
}

// Palette builds the palette of src.
func (e *Extractor) Palette(src PixelSource) Palette {
	p, _ := e.builder.Build(src, e.ColorCount, e.Quality)
	return p
}

// Vibrancy builds the palette of src and selects its swatches.
func (e *Extractor) Vibrancy(src PixelSource) Vibrancy {
	return NewVibrancy(e.Palette(src), e.Profile)
}

// Extract returns the palette, the swatches and the build statistics of
// src.
func (e *Extractor) Extract(src PixelSource) Result {
	p, stats := e.builder.Build(src, e.ColorCount, e.Quality)
	return Result{
		Palette:  p,
		Vibrancy: NewVibrancy(p, e.Profile),
		Stats:    stats,
	}
}
