package utmconv

import (
	"math"

	"github.com/golang/geo/s2"
)

// GeographicToUTM converts geodetic (latitude and longitude) coordinates to
// UTM projection (zone, hemisphere, easting and northing) coordinates. A
// zoneOverride in [1, 60] forces that zone; 0 derives the zone from the
// longitude.
//
// Southern hemisphere results carry the 10,000,000 m false northing, so the
// returned northing is never negative. No rounding is applied; callers
// round as needed.
func (c *Converter) GeographicToUTM(geo s2.LatLng, zoneOverride int) (utm UTMCoord, err error) {
	if c.observer != nil {
		c.observer.ForwardStarted(geo, zoneOverride)
		defer func() { c.observer.ForwardFinished(utm, err) }()
	}

	lat := geo.Lat.Degrees()
	lng := geo.Lng.Degrees()
	if err = checkGeographic(lat, lng); err != nil {
		return UTMCoord{}, err
	}

	zone := zoneOverride
	if zone == 0 {
		zone = ZoneForLongitude(lng)
	} else if zone < utmMinZone || zone > utmMaxZone {
		err = &InvalidInputError{Field: "zone override", Value: float64(zone), Min: utmMinZone, Max: utmMaxZone}
		return UTMCoord{}, err
	}

	phi := geo.Lat.Radians()
	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)

	cosPhi2 := cosPhi * cosPhi
	cosPhi3 := cosPhi2 * cosPhi
	tanPhi2 := tanPhi * tanPhi

	// Radius of curvature in the prime vertical.
	nu := c.ellipsoid.SemiMajorAxis / math.Sqrt(1-c.eccSquared*sinPhi*sinPhi)

	s := c.meridionalArc(phi)

	// Delta longitude from the central meridian, in radians.
	p := degToRad(lng - CentralMeridian(zone))

	k0 := c.ellipsoid.ScaleFactor
	e1sq := c.secondEccSquared

	k1 := s * k0
	k2 := k0 * nu * sinPhi * cosPhi / 2
	k3 := (k0 * nu * sinPhi * cosPhi3 / 24) *
		(5 - tanPhi2 + 9*e1sq*cosPhi2 + 4*e1sq*e1sq*cosPhi2*cosPhi2)
	k4 := k0 * nu * cosPhi
	k5 := (k0 * nu * cosPhi3 / 6) * (1 - tanPhi2 + e1sq*cosPhi2)

	northing := k1 + k2*p*p + k3*p*p*p*p
	easting := utmFalseEasting + k4*p + k5*p*p*p

	hemisphere := HemisphereNorth
	if phi < 0 {
		northing += utmFalseNorthing
		hemisphere = HemisphereSouth
	}

	utm = UTMCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}
	return utm, nil
}

// meridionalArc returns the arc length along the meridian from the equator
// to latitude phi, in radians, on the converter's ellipsoid.
func (c *Converter) meridionalArc(phi float64) float64 {
	return c.arc.a0*phi -
		c.arc.b0*math.Sin(2*phi) +
		c.arc.c0*math.Sin(4*phi) -
		c.arc.d0*math.Sin(6*phi) +
		c.arc.e0*math.Sin(8*phi)
}
