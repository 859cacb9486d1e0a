package grid

import (
	"errors"
	"fmt"

	"github.com/mapfold/utmconv"
)

// CellStyle controls how the consuming map widget strokes and fills grid
// rectangles. The values are passed through as feature properties.
type CellStyle struct {
	StrokeColor   string  `json:"stroke_color" yaml:"stroke_color"`
	StrokeOpacity float64 `json:"stroke_opacity" yaml:"stroke_opacity"`
	StrokeWeight  int     `json:"stroke_weight" yaml:"stroke_weight"`
	FillColor     string  `json:"fill_color" yaml:"fill_color"`
	FillOpacity   float64 `json:"fill_opacity" yaml:"fill_opacity"`
}

// DefaultStyle is the style applied when a Grid carries none.
var DefaultStyle = CellStyle{
	StrokeColor:   "#3388ff",
	StrokeOpacity: 0.8,
	StrokeWeight:  1,
	FillColor:     "#3388ff",
	FillOpacity:   0.15,
}

// Grid describes a rectangular overlay of Columns x Rows cells, CellSize
// meters on a side, anchored at Origin (the southwest corner of cell 0,0).
// All cells share the origin's zone and hemisphere.
type Grid struct {
	Origin   utmconv.UTMCoord
	CellSize float64 // meters
	Columns  int
	Rows     int
	Style    CellStyle
}

// Build converts every cell's southwest and northeast corners through conv
// and returns the overlay as a GeoJSON feature collection. Any conversion
// failure aborts the build; no partial collection is returned.
func (g *Grid) Build(conv *utmconv.Converter) (*FeatureCollection, error) {
	if g.CellSize <= 0 {
		return nil, errors.New("cell size must be greater than zero")
	}
	if g.Columns <= 0 || g.Rows <= 0 {
		return nil, errors.New("column and row counts must be greater than zero")
	}

	style := g.Style
	if style == (CellStyle{}) {
		style = DefaultStyle
	}

	fc := &FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, g.Columns*g.Rows),
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			sw := utmconv.UTMCoord{
				Zone:       g.Origin.Zone,
				Hemisphere: g.Origin.Hemisphere,
				Easting:    g.Origin.Easting + float64(col)*g.CellSize,
				Northing:   g.Origin.Northing + float64(row)*g.CellSize,
			}
			ne := utmconv.UTMCoord{
				Zone:       sw.Zone,
				Hemisphere: sw.Hemisphere,
				Easting:    sw.Easting + g.CellSize,
				Northing:   sw.Northing + g.CellSize,
			}

			swGeo, err := conv.UTMToGeographic(sw)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d) southwest corner: %w", col, row, err)
			}
			neGeo, err := conv.UTMToGeographic(ne)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d) northeast corner: %w", col, row, err)
			}

			fc.Features = append(fc.Features, cellFeature(col, row, swGeo.Lng.Degrees(), swGeo.Lat.Degrees(),
				neGeo.Lng.Degrees(), neGeo.Lat.Degrees(), style))
		}
	}
	return fc, nil
}

func cellFeature(col, row int, west, south, east, north float64, style CellStyle) Feature {
	ring := [][]float64{
		{west, south},
		{east, south},
		{east, north},
		{west, north},
		{west, south},
	}
	return Feature{
		Type: "Feature",
		Properties: map[string]interface{}{
			"col":            col,
			"row":            row,
			"stroke":         style.StrokeColor,
			"stroke-opacity": style.StrokeOpacity,
			"stroke-width":   style.StrokeWeight,
			"fill":           style.FillColor,
			"fill-opacity":   style.FillOpacity,
		},
		Geometry: Geometry{
			Type:        "Polygon",
			Coordinates: [][][]float64{ring},
		},
	}
}
