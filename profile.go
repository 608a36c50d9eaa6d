package vibrant

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TargetRange is an acceptable window [Min, Max] for lightness or
// saturation together with the ideal value inside it.
type TargetRange struct {
	Min    float64 `json:"min" yaml:"min"`
	Target float64 `json:"target" yaml:"target"`
	Max    float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies inside the window, bounds included.
func (r TargetRange) Contains(v float64) bool {
	return within(v, r.Min, r.Max)
}

func (r TargetRange) validate() error {
	for _, v := range []float64{r.Min, r.Target, r.Max} {
		if !within(v, 0, 1) {
			return errors.Errorf("value %v outside [0,1]", v)
		}
	}
	if r.Min > r.Target || r.Target > r.Max {
		return errors.Errorf("want min <= target <= max, got %v/%v/%v",
			r.Min, r.Target, r.Max)
	}
	return nil
}

// Weights are the relative importance of the three score terms.
type Weights struct {
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Luma       float64 `json:"luma" yaml:"luma"`
	Population float64 `json:"population" yaml:"population"`
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	return w.Saturation + w.Luma + w.Population
}

// Target is the lightness and saturation window of one swatch slot.
type Target struct {
	Luma       TargetRange `json:"luma" yaml:"luma"`
	Saturation TargetRange `json:"saturation" yaml:"saturation"`
}

// Profile holds every tunable of swatch selection: the window of each
// slot and the score weights.
type Profile struct {
	Primary    Target  `json:"primary" yaml:"primary"`
	Light      Target  `json:"light" yaml:"light"`
	Dark       Target  `json:"dark" yaml:"dark"`
	Muted      Target  `json:"muted" yaml:"muted"`
	LightMuted Target  `json:"lightMuted" yaml:"light_muted"`
	DarkMuted  Target  `json:"darkMuted" yaml:"dark_muted"`
	Weights    Weights `json:"weights" yaml:"weights"`
}

var (
	normalLuma = TargetRange{Min: 0.30, Target: 0.50, Max: 0.70}
	lightLuma  = TargetRange{Min: 0.55, Target: 0.74, Max: 1.00}
	darkLuma   = TargetRange{Min: 0.00, Target: 0.26, Max: 0.45}
	vibrantSat = TargetRange{Min: 0.35, Target: 1.00, Max: 1.00}
	mutedSat   = TargetRange{Min: 0.00, Target: 0.30, Max: 0.40}
)

// DefaultProfile returns the standard windows with weights
// saturation 3, luma 6, population 1.
func DefaultProfile() Profile {
	return Profile{
		Primary:    Target{Luma: normalLuma, Saturation: vibrantSat},
		Light:      Target{Luma: lightLuma, Saturation: vibrantSat},
		Dark:       Target{Luma: darkLuma, Saturation: vibrantSat},
		Muted:      Target{Luma: normalLuma, Saturation: mutedSat},
		LightMuted: Target{Luma: lightLuma, Saturation: mutedSat},
		DarkMuted:  Target{Luma: darkLuma, Saturation: mutedSat},
		Weights:    Weights{Saturation: 3, Luma: 6, Population: 1},
	}
}

// ParseProfile decodes a YAML profile. Keys missing from data keep their
// DefaultProfile values, so a file holding only a weights block is valid.
func ParseProfile(data []byte) (Profile, error) {
	p := DefaultProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, errors.Wrap(err, "could not parse profile")
	}
	if err := p.Validate(); err != nil {
		return Profile{}, errors.Wrap(err, "invalid profile")
	}
	return p, nil
}

// LoadProfile reads and decodes the YAML profile at path.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "could not read profile %s", path)
	}
	return ParseProfile(data)
}

// Validate checks that every window is ordered and inside [0,1] and that
// the weights sum to a positive value.
func (p Profile) Validate() error {
	for _, slot := range p.targets() {
		if err := slot.target.Luma.validate(); err != nil {
			return errors.Wrapf(err, "%s luma", slot.name)
		}
		if err := slot.target.Saturation.validate(); err != nil {
			return errors.Wrapf(err, "%s saturation", slot.name)
		}
	}
	if p.Weights.Sum() <= 0 {
		return errors.Errorf("weights must sum to a positive value, got %v",
			p.Weights.Sum())
	}
	return nil
}

type namedTarget struct {
	name   string
	target Target
}

// targets lists the slot windows in claim order.
func (p Profile) targets() []namedTarget {
	return []namedTarget{
		{SlotPrimary, p.Primary},
		{SlotLight, p.Light},
		{SlotDark, p.Dark},
		{SlotMuted, p.Muted},
		{SlotLightMuted, p.LightMuted},
		{SlotDarkMuted, p.DarkMuted},
	}
}
