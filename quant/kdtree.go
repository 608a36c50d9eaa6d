package quant

import (
	"math"
	"sort"
)

// colorNode is a node in a KD-tree over RGBA table entries. Each node
// holds one entry, its position in the original table, and the axis
// along which its children are split.
type colorNode struct {
	color       [Channels]uint8
	index       int
	left, right *colorNode
	splitAxis   int
}

type tableEntry struct {
	color [Channels]uint8
	index int
}

// NearestMap is a ColorMap over a fixed RGBA table that classifies pixels
// by exact nearest neighbor (squared Euclidean distance over all four
// channels) using a KD-tree. Ties go to the lowest table index.
type NearestMap struct {
	table []byte
	root  *colorNode
}

// NewNearestMap builds a NearestMap over a flat RGBA table. The table is
// copied.
func NewNearestMap(table []byte) *NearestMap {
	n := len(table) / Channels
	owned := make([]byte, n*Channels)
	copy(owned, table)

	entries := make([]tableEntry, n)
	for i := range entries {
		copy(entries[i].color[:], owned[i*Channels:])
		entries[i].index = i
	}
	return &NearestMap{
		table: owned,
		root:  buildKDTree(entries),
	}
}

// ColorMapRGBA returns the color table.
func (m *NearestMap) ColorMapRGBA() []byte {
	return m.table
}

// IndexOf returns the index of the table entry nearest to pixel, or -1 if
// the table is empty.
func (m *NearestMap) IndexOf(pixel []byte) int {
	if m.root == nil || len(pixel) < Channels {
		return -1
	}
	var target [Channels]uint8
	copy(target[:], pixel)
	best, _ := m.root.nearestNeighbor(target, nil, math.MaxInt)
	return best.index
}

// buildKDTree constructs a KD-tree from the table entries. Every entry
// ends up in the tree so nearest-neighbor queries are exact.
func buildKDTree(entries []tableEntry) *colorNode {
	if len(entries) == 0 {
		return nil
	}

	// Choose splitting axis based on the dimension with the largest variance
	axis := chooseSplitAxis(entries)

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].color[axis] != entries[j].color[axis] {
			return entries[i].color[axis] < entries[j].color[axis]
		}
		return entries[i].index < entries[j].index
	})

	median := len(entries) / 2
	return &colorNode{
		color:     entries[median].color,
		index:     entries[median].index,
		left:      buildKDTree(entries[:median]),
		right:     buildKDTree(entries[median+1:]),
		splitAxis: axis,
	}
}

// chooseSplitAxis returns the channel with the largest variance.
func chooseSplitAxis(entries []tableEntry) int {
	var mean, variance [Channels]float64
	for _, e := range entries {
		for c := 0; c < Channels; c++ {
			mean[c] += float64(e.color[c])
		}
	}
	for c := range mean {
		mean[c] /= float64(len(entries))
	}
	for _, e := range entries {
		for c := 0; c < Channels; c++ {
			d := float64(e.color[c]) - mean[c]
			variance[c] += d * d
		}
	}

	axis := 0
	for c := 1; c < Channels; c++ {
		if variance[c] > variance[axis] {
			axis = c
		}
	}
	return axis
}

func squaredDistance(a, b [Channels]uint8) int {
	var sum int
	for c := 0; c < Channels; c++ {
		d := int(a[c]) - int(b[c])
		sum += d * d
	}
	return sum
}

// closer reports whether a candidate at distance d with table index i
// beats the current best.
func closer(d, i int, best *colorNode, bestDist int) bool {
	if best == nil || d < bestDist {
		return true
	}
	return d == bestDist && i < best.index
}

// nearestNeighbor finds the entry closest to target in the subtree rooted
// at node, given the best candidate found so far.
func (node *colorNode) nearestNeighbor(
	target [Channels]uint8,
	best *colorNode,
	bestDist int,
) (*colorNode, int) {
	if node == nil {
		return best, bestDist
	}

	if d := squaredDistance(target, node.color); closer(d, node.index, best, bestDist) {
		best, bestDist = node, d
	}

	diff := int(target[node.splitAxis]) - int(node.color[node.splitAxis])
	near, far := node.left, node.right
	if diff > 0 {
		near, far = node.right, node.left
	}

	best, bestDist = near.nearestNeighbor(target, best, bestDist)
	// Equal distance on the far side can still win on index.
	if diff*diff <= bestDist {
		best, bestDist = far.nearestNeighbor(target, best, bestDist)
	}
	return best, bestDist
}
