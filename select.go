package vibrant

import "math"

// Score rates a candidate color against a target. The result is the
// weighted mean of three terms in [0, 1]: closeness of saturation to its
// target, closeness of lightness to its target, and the candidate's share
// of the total population.
func Score(hsl HSL, population, total int, luma, sat TargetRange, w Weights) float64 {
	satTerm := 1 - math.Abs(hsl.S-sat.Target)
	lumaTerm := 1 - math.Abs(hsl.L-luma.Target)
	var popTerm float64
	if total > 0 {
		popTerm = float64(population) / float64(total)
	}

	sum := w.Saturation*satTerm + w.Luma*lumaTerm + w.Population*popTerm
	return sum / w.Sum()
}

// Select picks the best swatch in p for the given lightness and
// saturation windows.
//
// Colors in claimed, colors whose saturation or lightness falls outside
// the window, and colors with no population are skipped. The rest are
// scored and the highest score wins; on equal scores the color that comes
// first in the palette is kept. ok is false when no color qualifies.
func Select(p Palette, claimed map[RGB]struct{}, luma, sat TargetRange, w Weights) (best RGB, ok bool) {
	total := p.TotalPopulation()
	bestScore := math.Inf(-1)

	for i, c := range p.Colors {
		if _, taken := claimed[c]; taken {
			continue
		}
		hsl := c.HSL()
		if !sat.Contains(hsl.S) || !luma.Contains(hsl.L) {
			continue
		}
		population := p.Population(i)
		if population == 0 {
			continue
		}

		score := Score(hsl, population, total, luma, sat, w)
		if score > bestScore {
			best, bestScore, ok = c, score, true
		}
	}
	return best, ok
}
