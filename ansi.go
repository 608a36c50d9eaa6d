package vibrant

import (
	"fmt"
	"sort"
	"strings"
)

const (
	ESC       = "\u001b"
	fullBlock = "█"
)

// ANSIStrip renders the palette as a single line of width 24-bit colored
// blocks. Each color gets a run of blocks proportional to its population;
// a palette without counts gives every color an equal share. The line ends
// with a reset sequence.
func (p Palette) ANSIStrip(width int) string {
	if len(p.Colors) == 0 || width <= 0 {
		return ""
	}

	var strip strings.Builder
	for i, n := range p.blockWidths(width) {
		if n == 0 {
			continue
		}
		strip.WriteString(formatANSICode(p.Colors[i], fullBlock, n))
	}
	strip.WriteString(ESC + "[0m")
	return strip.String()
}

// blockWidths splits width among the colors by population using the
// largest remainder method, so the widths always sum to width.
func (p Palette) blockWidths(width int) []int {
	weights := make([]int, len(p.Colors))
	total := 0
	for i := range p.Colors {
		weights[i] = p.Population(i)
		total += weights[i]
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = len(weights)
	}

	widths := make([]int, len(weights))
	remainders := make([]int, len(weights))
	assigned := 0
	for i, w := range weights {
		widths[i] = w * width / total
		remainders[i] = w * width % total
		assigned += widths[i]
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for _, i := range order[:width-assigned] {
		widths[i]++
	}
	return widths
}

// formatANSICode returns block repeated count times in the 24-bit
// foreground color c.
func formatANSICode(c RGB, block string, count int) string {
	var code strings.Builder
	fmt.Fprintf(&code, "%s[38;2;%d;%d;%dm", ESC, c.R, c.G, c.B)
	code.WriteString(strings.Repeat(block, count))
	return code.String()
}
