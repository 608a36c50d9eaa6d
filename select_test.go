package vibrant

import (
	"math"
	"testing"
)

var (
	anyLuma    = TargetRange{Min: 0, Target: 0.5, Max: 1}
	anySat     = TargetRange{Min: 0, Target: 1, Max: 1}
	defWeights = Weights{Saturation: 3, Luma: 6, Population: 1}
)

func TestScore(t *testing.T) {
	luma := TargetRange{Min: 0, Target: 0.5, Max: 1}
	sat := TargetRange{Min: 0, Target: 1, Max: 1}

	got := Score(HSL{S: 0.5, L: 0.25}, 1, 4, luma, sat, defWeights)
	want := (3*0.5 + 6*0.75 + 1*0.25) / 10
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := Score(HSL{S: 1, L: 0.5}, 7, 7, luma, sat, defWeights); math.Abs(got-1) > 1e-12 {
		t.Errorf("perfect match should score 1, got %v", got)
	}
}

func TestSelectTieKeepsFirst(t *testing.T) {
	// Red and green have identical saturation, lightness and population.
	red, green := RGB{255, 0, 0}, RGB{0, 255, 0}

	p := Palette{Colors: []RGB{red, green}, Counts: map[int]int{0: 5, 1: 5}}
	if got, ok := Select(p, nil, anyLuma, anySat, defWeights); !ok || got != red {
		t.Errorf("expected %v, got %v (%v)", red, got, ok)
	}

	p = Palette{Colors: []RGB{green, red}, Counts: map[int]int{0: 5, 1: 5}}
	if got, ok := Select(p, nil, anyLuma, anySat, defWeights); !ok || got != green {
		t.Errorf("expected %v, got %v (%v)", green, got, ok)
	}
}

func TestSelectSkipsClaimed(t *testing.T) {
	red, green := RGB{255, 0, 0}, RGB{0, 255, 0}
	p := Palette{Colors: []RGB{red, green}, Counts: map[int]int{0: 5, 1: 5}}

	got, ok := Select(p, map[RGB]struct{}{red: {}}, anyLuma, anySat, defWeights)
	if !ok || got != green {
		t.Errorf("expected %v, got %v (%v)", green, got, ok)
	}

	claimed := map[RGB]struct{}{red: {}, green: {}}
	if got, ok := Select(p, claimed, anyLuma, anySat, defWeights); ok {
		t.Errorf("expected nothing, got %v", got)
	}
	if len(claimed) != 2 {
		t.Error("Select modified the claimed set")
	}
}

func TestSelectSkipsZeroPopulation(t *testing.T) {
	red, blue := RGB{255, 0, 0}, RGB{0, 0, 200}
	p := Palette{Colors: []RGB{red, blue}, Counts: map[int]int{1: 3}}

	got, ok := Select(p, nil, anyLuma, anySat, defWeights)
	if !ok || got != blue {
		t.Errorf("expected %v, got %v (%v)", blue, got, ok)
	}

	p.Counts = map[int]int{}
	if got, ok := Select(p, nil, anyLuma, anySat, defWeights); ok {
		t.Errorf("expected nothing from an unpopulated palette, got %v", got)
	}
}

func TestSelectWindows(t *testing.T) {
	gray, red := RGB{128, 128, 128}, RGB{255, 0, 0}
	p := Palette{Colors: []RGB{gray, red}, Counts: map[int]int{0: 100, 1: 1}}

	// Gray has saturation 0 and is outside a vibrant window no matter its
	// population.
	vibrantSat := TargetRange{Min: 0.35, Target: 1, Max: 1}
	if got, ok := Select(p, nil, anyLuma, vibrantSat, defWeights); !ok || got != red {
		t.Errorf("expected %v, got %v (%v)", red, got, ok)
	}

	// Bounds are inclusive: red is exactly L=0.5, S=1.
	exact := TargetRange{Min: 0.5, Target: 0.5, Max: 0.5}
	full := TargetRange{Min: 1, Target: 1, Max: 1}
	if got, ok := Select(p, nil, exact, full, defWeights); !ok || got != red {
		t.Errorf("expected %v at the window bounds, got %v (%v)", red, got, ok)
	}

	dark := TargetRange{Min: 0, Target: 0.26, Max: 0.45}
	if got, ok := Select(p, nil, dark, vibrantSat, defWeights); ok {
		t.Errorf("expected nothing in the dark window, got %v", got)
	}
}

func TestSelectPrefersCloserLightness(t *testing.T) {
	// Both fully saturated; dark red sits on the 0.26 target.
	darkRed, red := RGB{133, 0, 0}, RGB{255, 0, 0}
	p := Palette{Colors: []RGB{red, darkRed}, Counts: map[int]int{0: 10, 1: 10}}
	luma := TargetRange{Min: 0, Target: 0.26, Max: 1}

	if got, ok := Select(p, nil, luma, anySat, defWeights); !ok || got != darkRed {
		t.Errorf("expected %v, got %v (%v)", darkRed, got, ok)
	}
}

func TestSelectEmptyPalette(t *testing.T) {
	if got, ok := Select(Palette{}, nil, anyLuma, anySat, defWeights); ok {
		t.Errorf("expected nothing, got %v", got)
	}
}
