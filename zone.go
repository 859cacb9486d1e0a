package utmconv

import "math"

// ZoneForLongitude returns the UTM zone number for a longitude in degrees.
//
// The two branches are not symmetric: the non-negative branch maps a
// longitude of exactly 180 to zone 61, which then fails UTM validation.
// Callers wanting the wrapped zone must normalize the longitude to
// [-180, 180) first.
func ZoneForLongitude(lng float64) int {
	if lng < 0 {
		return int(math.Floor((lng+180)/6)) + 1
	}
	return int(math.Floor(lng/6)) + 31
}

// CentralMeridian returns the central meridian of a zone, in degrees.
func CentralMeridian(zone int) float64 {
	return float64(6*zone - 183)
}

// CentralLongitudeForZone returns the central longitude of a zone in
// degrees. Non-positive zones fall back to the constant 3; the conversion
// entry points validate the zone first, so the fallback only matters to
// direct callers.
func CentralLongitudeForZone(zone int) float64 {
	if zone > 0 {
		return float64(6*zone - 183)
	}
	return 3
}

func degToRad(d float64) float64 { return d * (math.Pi / 180) }
func radToDeg(r float64) float64 { return r * (180 / math.Pi) }
