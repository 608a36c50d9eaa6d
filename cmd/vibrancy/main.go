// Command vibrancy prints the swatches of an image: primary, light, dark,
// muted, light muted and dark muted.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wbrown/vibrant"
	"github.com/wbrown/vibrant/imageutil"
	"github.com/wbrown/vibrant/internal/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	colors := flag.Int("colors", settings.Colors,
		"Maximum number of palette colors")
	quality := flag.Int("quality", settings.Quality,
		"Quantizer quality, 1 (best) to 30 (fastest)")
	quantizer := flag.String("quantizer", settings.Quantizer,
		"Quantization algorithm: "+strings.Join(config.QuantizerNames, ", "))
	profile := flag.String("profile", settings.Profile,
		"Path to a YAML profile overriding the swatch windows and weights")
	workers := flag.Int("workers", settings.Workers,
		"Number of row bands counted concurrently")
	format := flag.String("format", "text",
		"Output format: text, json, or pretty")
	sheetFile := flag.String("sheet", "",
		"Path to save a PNG swatch sheet")
	flag.Parse()

	zerolog.SetGlobalLevel(settings.LogLevel)

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(2)
	}

	settings.Colors = *colors
	settings.Quality = *quality
	settings.Quantizer = *quantizer
	settings.Profile = *profile
	settings.Workers = *workers
	if err := settings.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid options")
	}
	opts, err := settings.ExtractorOptions()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure extractor")
	}

	begin := time.Now()
	img, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		log.Fatal().Err(err).Str("input", *inputFile).Msg("Failed to load image")
	}
	log.Debug().
		Str("input", *inputFile).
		Int("width", img.Width()).
		Int("height", img.Height()).
		Msg("Loaded image")

	result := vibrant.NewExtractor(opts...).Extract(img)
	log.Info().
		Str("input", *inputFile).
		Int("colors", settings.Colors).
		Int("quality", settings.Quality).
		Str("quantizer", settings.Quantizer).
		Int("palette", len(result.Palette.Colors)).
		Int("training_pixels", result.Stats.TrainingPixels).
		Int("cache_hits", result.Stats.CacheHits).
		Int("cache_misses", result.Stats.CacheMisses).
		Dur("elapsed", time.Since(begin)).
		Msg("Extracted swatches")

	switch strings.ToLower(*format) {
	case "text":
		fmt.Println(result.Vibrancy)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode result")
		}
	case "pretty":
		fmt.Println(renderPretty(result))
	default:
		log.Fatal().Str("format", *format).Msg("Invalid format, options are text, json, or pretty")
	}

	if *sheetFile != "" {
		if err := vibrant.SaveSheet(result.Vibrancy, result.Palette, *sheetFile); err != nil {
			log.Fatal().Err(err).Str("sheet", *sheetFile).Msg("Failed to save sheet")
		}
		log.Info().Str("sheet", *sheetFile).Msg("Saved swatch sheet")
	}
}

// renderPretty draws each swatch as a colored terminal tile, followed by
// the palette strip.
func renderPretty(result vibrant.Result) string {
	tile := lipgloss.NewStyle().
		Width(14).
		Padding(1, 1).
		Align(lipgloss.Center)

	var tiles []string
	for _, slot := range result.Vibrancy.Slots() {
		style := tile.Background(lipgloss.Color("#808080")).
			Foreground(lipgloss.Color("#000000"))
		value := "none"
		if slot.Color != nil {
			value = slot.Color.Hex()
			fg := "#000000"
			if slot.Color.HSL().L < 0.5 {
				fg = "#FFFFFF"
			}
			style = tile.Background(lipgloss.Color(value)).
				Foreground(lipgloss.Color(fg))
		}
		tiles = append(tiles, style.Render(slot.Name+"\n"+value))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	strip := result.Palette.ANSIStrip(lipgloss.Width(row))
	return lipgloss.JoinVertical(lipgloss.Left, row, strip)
}
