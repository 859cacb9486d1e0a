package main

import (
	"encoding/json"
	"os"

	"github.com/golang/geo/s2"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/mapfold/utmconv"
	"github.com/mapfold/utmconv/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Lat *float64 `long:"lat" description:"Latitude in degrees (geographic to UTM)"`
	Lon *float64 `long:"lon" description:"Longitude in degrees (geographic to UTM)"`

	Easting  *float64 `long:"easting"  description:"Easting in meters (UTM to geographic)"`
	Northing *float64 `long:"northing" description:"Northing in meters (UTM to geographic)"`
	South    bool     `long:"south"    description:"Southern hemisphere (UTM to geographic)"`

	Zone    int  `short:"z" long:"zone" description:"UTM zone; optional override for geographic input"`
	Verbose bool `short:"v" long:"verbose" description:"Trace the conversion"`
}

type geographicResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type utmResult struct {
	Zone       int     `json:"zone"`
	Hemisphere string  `json:"hemisphere"`
	Easting    float64 `json:"easting"`
	Northing   float64 `json:"northing"`
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

	conv := utmconv.Default
	if opts.Verbose {
		var err error
		conv, err = utmconv.NewConverter(utmconv.WGS84,
			utmconv.WithObserver(utmconv.LogObserver{Log: log.Logger}))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to construct converter")
		}
	}

	var result interface{}
	switch {
	case opts.Lat != nil && opts.Lon != nil:
		utm, err := conv.GeographicToUTM(s2.LatLngFromDegrees(*opts.Lat, *opts.Lon), opts.Zone)
		if err != nil {
			log.Fatal().Err(err).Msg("Conversion failed")
		}
		result = utmResult{
			Zone:       utm.Zone,
			Hemisphere: utm.Hemisphere.String(),
			Easting:    utm.Easting,
			Northing:   utm.Northing,
		}
	case opts.Easting != nil && opts.Northing != nil:
		if opts.Zone == 0 {
			log.Fatal().Msg("UTM input needs --zone")
		}
		hemisphere := utmconv.HemisphereNorth
		if opts.South {
			hemisphere = utmconv.HemisphereSouth
		}
		geo, err := conv.UTMToGeographic(utmconv.UTMCoord{
			Zone:       opts.Zone,
			Hemisphere: hemisphere,
			Easting:    *opts.Easting,
			Northing:   *opts.Northing,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Conversion failed")
		}
		result = geographicResult{Lat: geo.Lat.Degrees(), Lon: geo.Lng.Degrees()}
	default:
		log.Fatal().Msg("Provide either --lat/--lon or --easting/--northing/--zone")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}
}
