package main

import (
	"encoding/json"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/mapfold/utmconv"
	"github.com/mapfold/utmconv/internal/config"
	"github.com/mapfold/utmconv/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to grid definition file" default:"grid.yaml"`
	Output     string `short:"o" long:"output" env:"OUTPUT_FILE" description:"GeoJSON output path, - for stdout"`
	Verbose    bool   `short:"v" long:"verbose"                  description:"Trace every conversion"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load grid definition
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load grid definition")
	}

	conv := utmconv.Default
	if opts.Verbose {
		conv, err = utmconv.NewConverter(utmconv.WGS84,
			utmconv.WithObserver(utmconv.LogObserver{Log: log.Logger}))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to construct converter")
		}
	}

	g, err := cfg.Grid(conv)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve grid origin")
	}

	fc, err := g.Build(conv)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build grid overlay")
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode GeoJSON")
	}
	data = append(data, '\n')

	output := cfg.Output
	if opts.Output != "" {
		output = opts.Output
	}

	if output == "" || output == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatal().Err(err).Msg("Failed to write GeoJSON")
		}
	} else {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			log.Fatal().Err(err).Msg("Failed to write GeoJSON")
		}
	}

	log.Info().
		Int("zone", g.Origin.Zone).
		Float64("cell_size", g.CellSize).
		Int("cells", len(fc.Features)).
		Str("output", output).
		Msg("Grid overlay written")
}
