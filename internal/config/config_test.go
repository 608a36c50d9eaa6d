package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wbrown/vibrant/quant/kmeans"
	"github.com/wbrown/vibrant/quant/mediancut"
	"github.com/wbrown/vibrant/quant/neuquant"
)

func TestLoadFromDefaults(t *testing.T) {
	s, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.Colors != 10 || s.Quality != 10 || s.Workers != 1 {
		t.Errorf("Expected 10/10/1, got %d/%d/%d", s.Colors, s.Quality, s.Workers)
	}
	if s.Quantizer != "neuquant" {
		t.Errorf("Expected neuquant, got %q", s.Quantizer)
	}
	if s.LogLevel != zerolog.InfoLevel {
		t.Errorf("Expected info level, got %v", s.LogLevel)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	s, err := LoadFrom(map[string]string{
		"VIBRANT_COLORS":    "16",
		"VIBRANT_QUALITY":   "1",
		"VIBRANT_QUANTIZER": "kmeans",
		"VIBRANT_WORKERS":   "4",
		"VIBRANT_LOG_LEVEL": "debug",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.Colors != 16 || s.Quality != 1 || s.Workers != 4 {
		t.Errorf("Expected 16/1/4, got %d/%d/%d", s.Colors, s.Quality, s.Workers)
	}
	if s.LogLevel != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", s.LogLevel)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"not a number", map[string]string{"VIBRANT_COLORS": "many"}},
		{"zero colors", map[string]string{"VIBRANT_COLORS": "0"}},
		{"zero workers", map[string]string{"VIBRANT_WORKERS": "0"}},
		{"unknown quantizer", map[string]string{"VIBRANT_QUANTIZER": "octree"}},
		{"bad level", map[string]string{"VIBRANT_LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(tt.environ); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestNewQuantizer(t *testing.T) {
	if q, err := NewQuantizer("NeuQuant"); err != nil || q != (neuquant.Quantizer{}) {
		t.Errorf("neuquant: got %T, %v", q, err)
	}
	if q, err := NewQuantizer("mediancut"); err != nil || q != (mediancut.Quantizer{}) {
		t.Errorf("mediancut: got %T, %v", q, err)
	}
	if q, err := NewQuantizer("kmeans"); err != nil || q != (kmeans.Quantizer{}) {
		t.Errorf("kmeans: got %T, %v", q, err)
	}
}

func TestExtractorOptionsLoadsProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("weights:\n  luma: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(map[string]string{"VIBRANT_PROFILE": path})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	opts, err := s.ExtractorOptions()
	if err != nil {
		t.Fatalf("ExtractorOptions: %v", err)
	}
	if len(opts) != 5 {
		t.Errorf("Expected 5 options with a profile, got %d", len(opts))
	}

	s.Profile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := s.ExtractorOptions(); err == nil {
		t.Error("Expected an error for a missing profile")
	}
}
