// Package grid builds UTM-aligned rectangular grid overlays as GeoJSON for
// an external map widget to render.
package grid

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

// Geometry represents a polygon geometry. Coordinates are linear rings of
// [Lon, Lat] pairs, the first and last positions identical.
type Geometry struct {
	Type        string        `json:"type" yaml:"type"`
	Coordinates [][][]float64 `json:"coordinates" yaml:"coordinates"`
}
