package utmconv

import (
	"errors"
	"fmt"
)

// Converter converts between geodetic (latitude and longitude) coordinates
// and UTM projection (zone, hemisphere, easting and northing) coordinates.
// It is stateless after construction and safe for concurrent use.
type Converter struct {
	ellipsoid Ellipsoid

	// Derived ellipsoid terms, computed once at construction.
	eccSquared       float64 // e^2
	secondEccSquared float64 // e'^2 = e^2/(1-e^2)
	arc              arcCoefficients

	observer Observer
}

// Option configures a Converter.
type Option func(*Converter)

// WithObserver installs an observer that is notified at the start and end
// of each conversion. The observer must be safe for concurrent use if the
// converter is shared between goroutines.
func WithObserver(o Observer) Option {
	return func(c *Converter) {
		c.observer = o
	}
}

// NewConverter constructs a converter for the given ellipsoid.
func NewConverter(ellipsoid Ellipsoid, opts ...Option) (*Converter, error) {
	if ellipsoid.SemiMajorAxis <= 0.0 {
		return nil, errors.New("Semi-major axis must be greater than zero")
	}
	if ellipsoid.SemiMinorAxis <= 0.0 || ellipsoid.SemiMinorAxis >= ellipsoid.SemiMajorAxis {
		return nil, errors.New("Semi-minor axis must be positive and smaller than the semi-major axis")
	}
	if ellipsoid.Eccentricity <= 0.0 || ellipsoid.Eccentricity >= 1.0 {
		return nil, errors.New("eccentricity out of range")
	}

	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if (ellipsoid.ScaleFactor < minScaleFactor) || (ellipsoid.ScaleFactor > maxScaleFactor) {
		return nil, errors.New("scale factor out of range")
	}

	c := &Converter{
		ellipsoid: ellipsoid,
	}
	c.eccSquared = ellipsoid.Eccentricity * ellipsoid.Eccentricity
	c.secondEccSquared = ellipsoid.SecondEccentricitySquared()
	c.arc = generateArcCoefficients(ellipsoid)

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Ellipsoid returns the ellipsoid the converter was constructed with.
func (c *Converter) Ellipsoid() Ellipsoid {
	return c.ellipsoid
}

// Default is a WGS84 ellipsoid based converter.
var Default *Converter

func init() {
	var err error
	Default, err = NewConverter(WGS84)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
}
