package utmconv

// Ellipsoid holds the reference ellipsoid parameters the converter is built
// on. Values are fixed at construction and never mutated.
type Ellipsoid struct {
	SemiMajorAxis float64 // a, in meters
	SemiMinorAxis float64 // b, in meters
	Eccentricity  float64 // e, first eccentricity
	ScaleFactor   float64 // k0, scale factor on the central meridian
}

// WGS84 is the ellipsoid used by the Default converter.
var WGS84 = Ellipsoid{
	SemiMajorAxis: 6378137.0,
	SemiMinorAxis: 6356752.314,
	Eccentricity:  0.081819190842622,
	ScaleFactor:   0.9996,
}

// SecondEccentricitySquared returns e'^2 = e^2 / (1 - e^2).
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	e2 := e.Eccentricity * e.Eccentricity
	return e2 / (1 - e2)
}

// ThirdFlattening returns Helmert's n = (a - b) / (a + b).
func (e Ellipsoid) ThirdFlattening() float64 {
	return (e.SemiMajorAxis - e.SemiMinorAxis) / (e.SemiMajorAxis + e.SemiMinorAxis)
}

// arcCoefficients holds the five meridional arc series coefficients. The
// series is fourth order in the third flattening n; the coefficients combine
// with the sin(2*lat) .. sin(8*lat) harmonics.
type arcCoefficients struct {
	a0, b0, c0, d0, e0 float64
}

func generateArcCoefficients(ellipsoid Ellipsoid) arcCoefficients {
	a := ellipsoid.SemiMajorAxis
	n1 := ellipsoid.ThirdFlattening()

	n2 := n1 * n1
	n3 := n2 * n1
	n4 := n3 * n1
	n5 := n4 * n1

	return arcCoefficients{
		a0: a * (1 - n1 + (5.0/4.0)*(n2-n3) + (81.0/64.0)*(n4-n5)),
		b0: (3 * a * n1 / 2) * (1 - n1 + (7.0/8.0)*(n2-n3) + (55.0/64.0)*(n4-n5)),
		c0: (15 * a * n2 / 16) * (1 - n1 + (3.0/4.0)*(n2-n3)),
		d0: (35 * a * n3 / 48) * (1 - n1 + (11.0/16.0)*(n2-n3)),
		e0: (315 * a * n4 / 51) * (1 - n1),
	}
}
