package utmconv

import "fmt"

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "?"
}

// UTMCoord is a UTM coordinate. Southern hemisphere northings carry the
// 10,000,000 m false northing; a negative northing is the signed
// alternative and implies the southern hemisphere on its own.
type UTMCoord struct {
	Zone       int
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

func (u UTMCoord) String() string {
	return fmt.Sprintf("%d%s %.3fE %.3fN", u.Zone, u.Hemisphere, u.Easting, u.Northing)
}

const utmMinLatDegrees = -90.0
const utmMaxLatDegrees = 90.0
const utmMinLngDegrees = -180.0
const utmMaxLngDegrees = 180.0

const utmMinEasting = 100000.0
const utmMaxEasting = 900000.0
const utmMinNorthing = -10002000.0
const utmMaxNorthing = 10002000.0
const utmMinZone = 1
const utmMaxZone = 60

const utmFalseEasting = 500000.0
const utmFalseNorthing = 10000000.0

// IsValidGeographic reports whether latitude and longitude, in degrees, are
// finite and within [-90, 90] and [-180, 180].
func IsValidGeographic(lat, lng float64) bool {
	return checkGeographic(lat, lng) == nil
}

// IsValidUTM reports whether easting, northing and zone are within the
// UTM-valid envelope. Northings are accepted down to -10002000 to cover the
// signed southern convention.
func IsValidUTM(easting, northing float64, zone int) bool {
	return checkUTM(easting, northing, zone) == nil
}

func checkGeographic(lat, lng float64) error {
	// NaN fails both comparisons, so it needs no separate test.
	if !(lat >= utmMinLatDegrees && lat <= utmMaxLatDegrees) {
		return &InvalidInputError{Field: "latitude", Value: lat, Min: utmMinLatDegrees, Max: utmMaxLatDegrees}
	}
	if !(lng >= utmMinLngDegrees && lng <= utmMaxLngDegrees) {
		return &InvalidInputError{Field: "longitude", Value: lng, Min: utmMinLngDegrees, Max: utmMaxLngDegrees}
	}
	return nil
}

func checkUTM(easting, northing float64, zone int) error {
	if !(easting >= utmMinEasting && easting <= utmMaxEasting) {
		return &InvalidInputError{Field: "easting", Value: easting, Min: utmMinEasting, Max: utmMaxEasting}
	}
	if !(northing >= utmMinNorthing && northing <= utmMaxNorthing) {
		return &InvalidInputError{Field: "northing", Value: northing, Min: utmMinNorthing, Max: utmMaxNorthing}
	}
	if zone < utmMinZone || zone > utmMaxZone {
		return &InvalidInputError{Field: "zone", Value: float64(zone), Min: utmMinZone, Max: utmMaxZone}
	}
	return nil
}
