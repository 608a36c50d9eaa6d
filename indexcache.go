package vibrant

import (
	"image/color"

	"github.com/wbrown/vibrant/quant"
)

// indexCache memoizes ColorMap.IndexOf during the recount pass. Images
// repeat the same pixel values heavily, and IndexOf walks a KD-tree, so
// each distinct pixel is classified once.
//
// The Key is the pixel itself; the Value is the raw table index it was
// classified to (possibly -1 for an empty table).
type indexCache struct {
	cmap   quant.ColorMap
	table  map[color.NRGBA]int
	hits   int
	misses int
}

func newIndexCache(cmap quant.ColorMap) *indexCache {
	return &indexCache{
		cmap:  cmap,
		table: make(map[color.NRGBA]int),
	}
}

// indexOf returns the cached classification of p, classifying it on a
// miss.
func (c *indexCache) indexOf(p color.NRGBA) int {
	if idx, exists := c.table[p]; exists {
		c.hits++
		return idx
	}
	c.misses++
	idx := c.cmap.IndexOf([]byte{p.R, p.G, p.B, p.A})
	c.table[p] = idx
	return idx
}
