// Command palette prints the palette of an image, least frequent color
// first.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

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
		"Quantization algorithm")
	counts := flag.Bool("counts", false,
		"Print each color with its pixel count")
	strip := flag.Int("strip", 0,
		"Also print an ANSI strip of the given width")
	flag.Parse()

	zerolog.SetGlobalLevel(settings.LogLevel)

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(2)
	}

	q, err := config.NewQuantizer(*quantizer)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid options")
	}

	begin := time.Now()
	img, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		log.Fatal().Err(err).Str("input", *inputFile).Msg("Failed to load image")
	}

	builder := vibrant.NewBuilder()
	builder.Quantizer = q
	builder.Workers = settings.Workers
	palette, stats := builder.Build(img, *colors, *quality)
	palette = palette.SortByFrequency()
	log.Info().
		Str("input", *inputFile).
		Int("width", img.Width()).
		Int("height", img.Height()).
		Int("table", stats.TableSize).
		Int("palette", len(palette.Colors)).
		Dur("elapsed", time.Since(begin)).
		Msg("Built palette")

	fmt.Println(palette)
	if *counts {
		for i, c := range palette.Colors {
			fmt.Printf("%s %d\n", c.Hex(), palette.Population(i))
		}
	}
	if *strip > 0 {
		fmt.Println(palette.ANSIStrip(*strip))
	}
}
