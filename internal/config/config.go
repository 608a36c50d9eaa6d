// Package config reads the command line defaults from the environment.
package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/wbrown/vibrant"
	"github.com/wbrown/vibrant/quant"
	"github.com/wbrown/vibrant/quant/kmeans"
	"github.com/wbrown/vibrant/quant/mediancut"
	"github.com/wbrown/vibrant/quant/neuquant"
)

// Settings are the defaults of the vibrancy and palette commands. Flags
// override them.
type Settings struct {
	Colors    int           `env:"VIBRANT_COLORS" envDefault:"10"`
	Quality   int           `env:"VIBRANT_QUALITY" envDefault:"10"`
	Quantizer string        `env:"VIBRANT_QUANTIZER" envDefault:"neuquant"`
	Profile   string        `env:"VIBRANT_PROFILE"`
	Workers   int           `env:"VIBRANT_WORKERS" envDefault:"1"`
	LogLevel  zerolog.Level `env:"VIBRANT_LOG_LEVEL" envDefault:"info"`
}

// Load parses Settings from the process environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Wrap(err, "could not parse environment")
	}
	return s, s.Validate()
}

// LoadFrom parses Settings from the given variables instead of the process
// environment.
func LoadFrom(environ map[string]string) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return Settings{}, errors.Wrap(err, "could not parse environment")
	}
	return s, s.Validate()
}

// Validate checks the numeric settings and the quantizer name.
func (s Settings) Validate() error {
	if s.Colors < 1 {
		return errors.Errorf("colors must be at least 1, got %d", s.Colors)
	}
	if s.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if _, err := NewQuantizer(s.Quantizer); err != nil {
		return err
	}
	return nil
}

// ExtractorOptions turns the settings into extractor options, loading the
// profile file when one is set.
func (s Settings) ExtractorOptions() ([]vibrant.ExtractorOption, error) {
	q, err := NewQuantizer(s.Quantizer)
	if err != nil {
		return nil, err
	}
	opts := []vibrant.ExtractorOption{
		vibrant.WithColorCount(s.Colors),
		vibrant.WithQuality(s.Quality),
		vibrant.WithQuantizer(q),
		vibrant.WithWorkers(s.Workers),
	}
	if s.Profile != "" {
		profile, err := vibrant.LoadProfile(s.Profile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vibrant.WithProfile(profile))
	}
	return opts, nil
}

// QuantizerNames lists the names accepted by NewQuantizer.
var QuantizerNames = []string{"neuquant", "mediancut", "kmeans"}

// NewQuantizer returns the quantizer registered under name, ignoring case.
func NewQuantizer(name string) (quant.Quantizer, error) {
	switch strings.ToLower(name) {
	case "neuquant", "":
		return neuquant.Quantizer{}, nil
	case "mediancut":
		return mediancut.Quantizer{}, nil
	case "kmeans":
		return kmeans.Quantizer{}, nil
	}
	return nil, errors.Errorf("unknown quantizer %q (want one of %s)",
		name, strings.Join(QuantizerNames, ", "))
}
