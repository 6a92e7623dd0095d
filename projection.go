package utmups

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// MapCoords is an easting/northing pair in meters.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// PointScale describes a conformal projection at a point: the convergence
// (the bearing of grid north measured clockwise from true north) and the
// scale factor.
type PointScale struct {
	Convergence s1.Angle
	Scale       float64
}

// MeridianProjector is a transverse Mercator projection parameterized by its
// central meridian.  Coordinates are relative to the projection origin on the
// equator.
type MeridianProjector interface {
	Forward(centralMeridian s1.Angle, geo s2.LatLng) (MapCoords, PointScale, error)
	Reverse(centralMeridian s1.Angle, xy MapCoords) (s2.LatLng, PointScale, error)
}

// PolarProjector is a polar stereographic projection centered on the pole of
// the given hemisphere.  Coordinates are relative to the pole.
type PolarProjector interface {
	Forward(hemisphere Hemisphere, geo s2.LatLng) (MapCoords, PointScale, error)
	Reverse(hemisphere Hemisphere, xy MapCoords) (s2.LatLng, PointScale, error)
}

// checkEllipsoid validates ellipsoid parameters.
func checkEllipsoid(semiMajorAxis, flattening float64) error {
	if !(semiMajorAxis > 0) {
		return outOfRange("Semi-major axis must be greater than zero")
	}
	invF := 1 / flattening
	if !(invF >= 250 && invF <= 350) {
		return outOfRange("Inverse flattening must be between 250 and 350")
	}
	return nil
}

// aTanH is the inverse hyperbolic tangent.
func aTanH(x float64) float64 {
	return 0.5 * math.Log((1+x)/(1-x))
}

// normalizeLon reduces an angle in radians to (-Pi, Pi].
func normalizeLon(lon float64) float64 {
	lon = math.Remainder(lon, 2*math.Pi)
	if lon <= -math.Pi {
		lon += 2 * math.Pi
	}
	return lon
}

// degrees converts an angle to degrees.  Values within rounding error of a
// whole degree are snapped to it, so that zone and band edges given in whole
// degrees survive the trip through radians.
func degrees(a s1.Angle) float64 {
	d := a.Degrees()
	if r := math.Round(d); math.Abs(d-r) < 1e-11 {
		return r
	}
	return d
}
