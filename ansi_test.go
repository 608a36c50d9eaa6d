package vibrant

import (
	"strings"
	"testing"
)

func TestANSIStripWidths(t *testing.T) {
	p := Palette{
		Colors: []RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}},
		Counts: map[int]int{0: 1, 1: 1, 2: 2},
	}

	got := p.ANSIStrip(8)
	want := ESC + "[38;2;255;0;0m" + strings.Repeat(fullBlock, 2) +
		ESC + "[38;2;0;255;0m" + strings.Repeat(fullBlock, 2) +
		ESC + "[38;2;0;0;255m" + strings.Repeat(fullBlock, 4) +
		ESC + "[0m"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestBlockWidthsSumToWidth(t *testing.T) {
	p := Palette{
		Colors: []RGB{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}},
		Counts: map[int]int{0: 7, 1: 1, 3: 13},
	}
	for _, width := range []int{1, 3, 10, 79} {
		widths := p.blockWidths(width)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != width {
			t.Errorf("width %d: blocks sum to %d (%v)", width, sum, widths)
		}
		if widths[2] != 0 {
			t.Errorf("width %d: unpopulated color got %d blocks", width, widths[2])
		}
	}
}

func TestANSIStripUncounted(t *testing.T) {
	p := Palette{Colors: []RGB{{9, 9, 9}, {8, 8, 8}}}
	got := p.ANSIStrip(4)
	if strings.Count(got, fullBlock) != 4 {
		t.Errorf("expected 4 blocks, got %q", got)
	}
	if !strings.Contains(got, "38;2;8;8;8m"+fullBlock+fullBlock) {
		t.Errorf("expected an equal share for each color, got %q", got)
	}
}

func TestANSIStripEmpty(t *testing.T) {
	if got := (Palette{}).ANSIStrip(10); got != "" {
		t.Errorf("expected empty strip, got %q", got)
	}
	p := Palette{Colors: []RGB{{1, 2, 3}}}
	if got := p.ANSIStrip(0); got != "" {
		t.Errorf("expected empty strip for width 0, got %q", got)
	}
}
