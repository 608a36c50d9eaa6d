package vibrant

import (
	"fmt"
	"strings"
)

// Slot names, in claim order.
const (
	SlotPrimary    = "primary"
	SlotLight      = "light"
	SlotDark       = "dark"
	SlotMuted      = "muted"
	SlotLightMuted = "light_muted"
	SlotDarkMuted  = "dark_muted"
)

// Vibrancy is the set of swatches chosen from a palette. A nil field means
// no palette color fit that slot.
type Vibrancy struct {
	Primary    *RGB `json:"primary,omitempty"`
	Dark       *RGB `json:"dark,omitempty"`
	Light      *RGB `json:"light,omitempty"`
	Muted      *RGB `json:"muted,omitempty"`
	DarkMuted  *RGB `json:"darkMuted,omitempty"`
	LightMuted *RGB `json:"lightMuted,omitempty"`
}

// Slot is one named swatch of a Vibrancy.
type Slot struct {
	Name  string
	Color *RGB
}

// NewVibrancy fills the six slots from p using the windows in profile.
//
// Slots are claimed one after another: primary, light, dark, muted,
// light muted, dark muted. A color taken by an earlier slot is not
// offered to later ones, so no color appears twice. Slots that find no
// candidate stay empty; nothing is backfilled.
func NewVibrancy(p Palette, profile Profile) Vibrancy {
	var v Vibrancy
	claimed := make(map[RGB]struct{}, 6)
	for _, slot := range profile.targets() {
		c, ok := Select(p, claimed, slot.target.Luma, slot.target.Saturation,
			profile.Weights)
		if !ok {
			continue
		}
		claimed[c] = struct{}{}
		*v.field(slot.name) = &c
	}
	return v
}

func (v *Vibrancy) field(name string) **RGB {
	switch name {
	case SlotPrimary:
		return &v.Primary
	case SlotLight:
		return &v.Light
	case SlotDark:
		return &v.Dark
	case SlotMuted:
		return &v.Muted
	case SlotLightMuted:
		return &v.LightMuted
	case SlotDarkMuted:
		return &v.DarkMuted
	}
	panic("vibrant: unknown slot " + name)
}

// Slots returns the swatches in claim order.
func (v Vibrancy) Slots() []Slot {
	return []Slot{
		{SlotPrimary, v.Primary},
		{SlotLight, v.Light},
		{SlotDark, v.Dark},
		{SlotMuted, v.Muted},
		{SlotLightMuted, v.LightMuted},
		{SlotDarkMuted, v.DarkMuted},
	}
}

// Colors returns the present swatches in claim order.
func (v Vibrancy) Colors() []RGB {
	var colors []RGB
	for _, s := range v.Slots() {
		if s.Color != nil {
			colors = append(colors, *s.Color)
		}
	}
	return colors
}

// String renders one "name: #RRGGBB" line per slot, with "none" for empty
// slots.
func (v Vibrancy) String() string {
	var sb strings.Builder
	for i, s := range v.Slots() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		value := "none"
		if s.Color != nil {
			value = s.Color.Hex()
		}
		fmt.Fprintf(&sb, "%s: %s", s.Name, value)
	}
	return sb.String()
}
