// Package config handles grid definition loading.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/geo/s2"
	"gopkg.in/yaml.v3"

	"github.com/mapfold/utmconv"
	"github.com/mapfold/utmconv/grid"
)

// Origin anchors the grid. Either Lat/Lon (geographic, with Zone as an
// optional override) or Easting/Northing/Zone (UTM, with South marking the
// hemisphere) must be set.
type Origin struct {
	Lat *float64 `yaml:"lat,omitempty"`
	Lon *float64 `yaml:"lon,omitempty"`

	Easting  *float64 `yaml:"easting,omitempty"`
	Northing *float64 `yaml:"northing,omitempty"`
	Zone     int      `yaml:"zone,omitempty"`
	South    bool     `yaml:"south,omitempty"`
}

// Config represents the grid definition file structure.
type Config struct {
	Origin   Origin          `yaml:"origin"`
	CellSize float64         `yaml:"cell_size"`
	Columns  int             `yaml:"columns"`
	Rows     int             `yaml:"rows"`
	Style    *grid.CellStyle `yaml:"style,omitempty"`
	Output   string          `yaml:"output,omitempty"`
}

// Load reads and parses the YAML grid definition file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.CellSize <= 0 {
		return nil, errors.New("cell_size must be greater than zero")
	}
	if cfg.Columns <= 0 || cfg.Rows <= 0 {
		return nil, errors.New("columns and rows must be greater than zero")
	}
	if !cfg.Origin.geographic() && !cfg.Origin.utm() {
		return nil, errors.New("origin needs either lat/lon or easting/northing/zone")
	}

	return &cfg, nil
}

func (o Origin) geographic() bool {
	return o.Lat != nil && o.Lon != nil
}

func (o Origin) utm() bool {
	return o.Easting != nil && o.Northing != nil && o.Zone != 0
}

// Grid resolves the configuration into a buildable overlay, converting a
// geographic origin to UTM with conv.
func (c *Config) Grid(conv *utmconv.Converter) (*grid.Grid, error) {
	var origin utmconv.UTMCoord
	switch {
	case c.Origin.geographic():
		var err error
		origin, err = conv.GeographicToUTM(s2.LatLngFromDegrees(*c.Origin.Lat, *c.Origin.Lon), c.Origin.Zone)
		if err != nil {
			return nil, fmt.Errorf("resolving geographic origin: %w", err)
		}
	case c.Origin.utm():
		hemisphere := utmconv.HemisphereNorth
		if c.Origin.South {
			hemisphere = utmconv.HemisphereSouth
		}
		origin = utmconv.UTMCoord{
			Zone:       c.Origin.Zone,
			Hemisphere: hemisphere,
			Easting:    *c.Origin.Easting,
			Northing:   *c.Origin.Northing,
		}
	default:
		return nil, errors.New("origin needs either lat/lon or easting/northing/zone")
	}

	g := &grid.Grid{
		Origin:   origin,
		CellSize: c.CellSize,
		Columns:  c.Columns,
		Rows:     c.Rows,
	}
	if c.Style != nil {
		g.Style = *c.Style
	}
	return g, nil
}
