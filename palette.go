package vibrant

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wbrown/vibrant/quant"
	"github.com/wbrown/vibrant/quant/neuquant"
)

// Palette is the reduced color set of an image plus the population of
// each color.
//
// Colors are distinct and in quantizer output order. Counts maps an index
// into Colors to the number of image pixels classified to that color; an
// index with no pixels may be missing from Counts.
type Palette struct {
	Colors []RGB       `json:"colors"`
	Counts map[int]int `json:"counts"`
}

// BuildStats describes one palette build.
type BuildStats struct {
	Pixels           int // pixels in the source
	TrainingPixels   int // pixels fed to the quantizer
	TableSize        int // raw quantizer table entries, before dedup
	ClassifiedPixels int // pixels counted during the recount pass
	CacheHits        int
	CacheMisses      int
}

// Builder drives a quantizer over an image to produce a Palette.
type Builder struct {
	// Quantizer trains the color table. Nil means NeuQuant.
	Quantizer quant.Quantizer
	// Filter selects the pixels that train the quantizer. The zero value
	// means DefaultPixelFilter.
	Filter PixelFilter
	// Workers is the number of row bands recounted concurrently. Values
	// below 2 recount sequentially.
	Workers int
}

// NewBuilder returns a Builder using NeuQuant and DefaultPixelFilter.
func NewBuilder() Builder {
	return Builder{
		Quantizer: neuquant.Quantizer{},
		Filter:    DefaultPixelFilter,
		Workers:   1,
	}
}

// BuildPalette builds a palette of at most colorCount colors with the
// default Builder. quality is passed to the quantizer.
func BuildPalette(src PixelSource, colorCount, quality int) Palette {
	p, _ := NewBuilder().Build(src, colorCount, quality)
	return p
}

// Build runs the pipeline:
//
//  1. Every pixel that is visible and interesting goes into the training
//     stream; boring (solid near-white) and transparent pixels do not.
//  2. The quantizer turns the stream into a color table and classifier.
//  3. Every pixel of the image, filtered or not, is classified and
//     counted against its raw table index.
//  4. Table entries are deduplicated to RGB in first-occurrence order, and
//     the counts of entries that collapse together are summed.
//
// Build never fails. An image with no training pixels gives an empty
// table and so an empty Palette.
func (b Builder) Build(src PixelSource, colorCount, quality int) (Palette, BuildStats) {
	width, height := src.Width(), src.Height()
	stats := BuildStats{Pixels: width * height}
	filter := b.Filter
	if filter == (PixelFilter{}) {
		filter = DefaultPixelFilter
	}

	stream := make([]byte, 0, width*height*quant.Channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := src.NRGBAAt(x, y)
			if filter.trains(p) {
				stream = append(stream, p.R, p.G, p.B, p.A)
			}
		}
	}
	stats.TrainingPixels = len(stream) / quant.Channels

	q := b.Quantizer
	if q == nil {
		q = neuquant.Quantizer{}
	}
	cmap := q.Quantize(stream, colorCount, quality)
	table := cmap.ColorMapRGBA()
	stats.TableSize = len(table) / quant.Channels

	colors, dedupIndex := dedupTable(table)
	counts := make(map[int]int)
	if stats.TableSize > 0 {
		for raw, n := range b.recount(src, cmap, &stats) {
			if raw < 0 || raw >= len(dedupIndex) {
				continue
			}
			counts[dedupIndex[raw]] += n
			stats.ClassifiedPixels += n
		}
	}

	return Palette{Colors: colors, Counts: counts}, stats
}

// dedupTable reduces a flat RGBA table to distinct RGB colors in
// first-occurrence order. dedupIndex[i] is the position in colors of raw
// table entry i.
func dedupTable(table []byte) (colors []RGB, dedupIndex []int) {
	seen := NewOrderedMap[RGB, int]()
	n := len(table) / quant.Channels
	dedupIndex = make([]int, n)
	for i := 0; i < n; i++ {
		c := rgbFromBytes(table[i*quant.Channels:])
		idx, exists := seen.Get(c)
		if !exists {
			idx = seen.Len()
			seen.Set(c, idx)
		}
		dedupIndex[i] = idx
	}
	return seen.Keys(), dedupIndex
}

// recount classifies every pixel of src and tallies raw table indices.
// With more than one worker the rows are split into bands, each with its
// own tally and cache; the tallies are summed afterwards.
func (b Builder) recount(src PixelSource, cmap quant.ColorMap, stats *BuildStats) map[int]int {
	height := src.Height()
	workers := min(max(b.Workers, 1), max(height, 1))

	tallies := make([]map[int]int, workers)
	caches := make([]*indexCache, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		w := w
		startY, endY := splitRange(height, workers, w)
		g.Go(func() error {
			cache := newIndexCache(cmap)
			tally := make(map[int]int)
			for y := startY; y < endY; y++ {
				for x := 0; x < src.Width(); x++ {
					tally[cache.indexOf(src.NRGBAAt(x, y))]++
				}
			}
			tallies[w], caches[w] = tally, cache
			return nil
		})
	}
	_ = g.Wait()

	total := make(map[int]int)
	for w := range tallies {
		for idx, n := range tallies[w] {
			total[idx] += n
		}
		stats.CacheHits += caches[w].hits
		stats.CacheMisses += caches[w].misses
	}
	return total
}

// splitRange returns the half-open range of the part-th of parts nearly
// equal slices of [0, total).
func splitRange(total, parts, part int) (int, int) {
	size := total / parts
	rem := total % parts
	start := part*size + min(part, rem)
	end := start + size
	if part < rem {
		end++
	}
	return start, end
}

// Population returns the pixel count of Colors[i].
func (p Palette) Population(i int) int {
	return p.Counts[i]
}

// TotalPopulation returns the sum of all counts.
func (p Palette) TotalPopulation() int {
	var total int
	for _, n := range p.Counts {
		total += n
	}
	return total
}

// IndexOf returns the position of c in Colors, or -1.
func (p Palette) IndexOf(c RGB) int {
	for i, pc := range p.Colors {
		if pc == c {
			return i
		}
	}
	return -1
}

// FrequencyOf returns the pixel count of c, or 0 if c is not in the
// palette.
func (p Palette) FrequencyOf(c RGB) int {
	if i := p.IndexOf(c); i >= 0 {
		return p.Counts[i]
	}
	return 0
}

// SortByFrequency returns a copy of p with colors in ascending order of
// population. Equal populations keep their palette order, and counts move
// with their colors.
func (p Palette) SortByFrequency() Palette {
	order := make([]int, len(p.Colors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return p.Counts[order[i]] < p.Counts[order[j]]
	})

	sorted := Palette{
		Colors: make([]RGB, len(order)),
		Counts: make(map[int]int, len(p.Counts)),
	}
	for newIdx, oldIdx := range order {
		sorted.Colors[newIdx] = p.Colors[oldIdx]
		if n, ok := p.Counts[oldIdx]; ok {
			sorted.Counts[newIdx] = n
		}
	}
	return sorted
}

// String renders the palette as "Color Palette { #RRGGBB, #RRGGBB }".
func (p Palette) String() string {
	hex := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hex[i] = c.Hex()
	}
	return fmt.Sprintf("Color Palette { %s }", strings.Join(hex, ", "))
}
