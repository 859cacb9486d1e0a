package utmconv

import (
	"math"

	"github.com/golang/geo/s2"
)

// UTMToGeographic converts UTM projection (zone, hemisphere, easting and
// northing) coordinates to geodetic (latitude and longitude) coordinates.
//
// A coordinate with Hemisphere set to HemisphereSouth has the 10,000,000 m
// false northing removed before inversion. A negative northing is taken as
// already signed and needs no hemisphere flag; any other coordinate is
// treated as northern.
func (c *Converter) UTMToGeographic(utm UTMCoord) (geo s2.LatLng, err error) {
	if c.observer != nil {
		c.observer.InverseStarted(utm)
		defer func() { c.observer.InverseFinished(geo, err) }()
	}

	if err = checkUTM(utm.Easting, utm.Northing, utm.Zone); err != nil {
		return s2.LatLng{}, err
	}

	// Signed arc distance from the equator along the central meridian.
	northing := utm.Northing
	if utm.Hemisphere == HemisphereSouth && northing >= 0 {
		northing -= utmFalseNorthing
	}

	a := c.ellipsoid.SemiMajorAxis
	k0 := c.ellipsoid.ScaleFactor
	e2 := c.eccSquared

	arc := northing / k0

	// Rectifying latitude for the arc length.
	mu := arc / (a * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	fp := c.footprintLatitude(mu)

	sinFp := math.Sin(fp)
	cosFp := math.Cos(fp)
	// Unreachable for validated inputs: the envelope checks above keep the
	// footprint latitude below ~90.04 degrees, where cos is still ~6e-4.
	if cosFp == 0 {
		err = &SingularityError{FootprintLatitude: fp}
		return s2.LatLng{}, err
	}

	sin2 := e2 * sinFp * sinFp
	n0 := a / math.Sqrt(1-sin2)
	r0 := a * (1 - e2) / math.Pow(1-sin2, 1.5)

	e1sq := c.secondEccSquared
	t0 := math.Tan(fp) * math.Tan(fp)
	q0 := e1sq * cosFp * cosFp

	// Scaled easting offset from the central meridian.
	d0 := (utmFalseEasting - utm.Easting) / (n0 * k0)
	d02 := d0 * d0
	d03 := d02 * d0
	d04 := d03 * d0
	d05 := d04 * d0
	d06 := d05 * d0

	latK1 := n0 * math.Tan(fp) / r0
	latK2 := d02 / 2
	latK3 := (5 + 3*t0 + 10*q0 - 4*q0*q0 - 9*e1sq) * d04 / 24
	latK4 := (61 + 90*t0 + 298*q0 + 45*t0*t0 - 252*e1sq - 3*q0*q0) * d06 / 720

	lat := radToDeg(fp - latK1*(latK2+latK3+latK4))

	lonK1 := d0
	lonK2 := (1 + 2*t0 + q0) * d03 / 6
	lonK3 := (5 - 2*q0 + 28*t0 - 3*q0*q0 + 8*e1sq + 24*t0*t0) * d05 / 120

	lng := CentralLongitudeForZone(utm.Zone) - radToDeg((lonK1-lonK2+lonK3)/cosFp)

	geo = s2.LatLngFromDegrees(lat, lng)
	return geo, nil
}

// footprintLatitude returns the latitude whose meridional arc length equals
// the arc the rectifying latitude mu was derived from, via a fourth-order
// trigonometric correction series.
func (c *Converter) footprintLatitude(mu float64) float64 {
	sqrt := math.Sqrt(1 - c.eccSquared)
	e1 := (1 - sqrt) / (1 + sqrt)

	e12 := e1 * e1
	e13 := e12 * e1
	e14 := e13 * e1

	ca := 3*e1/2 - 27*e13/32
	cb := 21*e12/16 - 55*e14/32
	cc := 151 * e13 / 96
	cd := 1097 * e14 / 512

	return mu +
		ca*math.Sin(2*mu) +
		cb*math.Sin(4*mu) +
		cc*math.Sin(6*mu) +
		cd*math.Sin(8*mu)
}
