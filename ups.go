package utmups

import (
	"github.com/golang/geo/s2"
)

const upsScaleFactor = 0.994

// UPS pairs the polar stereographic projections of the two poles used by the
// Universal Polar Stereographic system.
type UPS struct {
	north *PolarStereographic
	south *PolarStereographic
}

// NewUPS constructs the UPS projections for the specified ellipsoid.
func NewUPS(semiMajorAxis, flattening float64) (*UPS, error) {
	north, err := NewPolarStereographic(semiMajorAxis, flattening, upsScaleFactor, HemisphereNorth)
	if err != nil {
		return nil, err
	}
	south, err := NewPolarStereographic(semiMajorAxis, flattening, upsScaleFactor, HemisphereSouth)
	if err != nil {
		return nil, err
	}
	return &UPS{north: north, south: south}, nil
}

func (u *UPS) projection(hemisphere Hemisphere) (*PolarStereographic, error) {
	switch hemisphere {
	case HemisphereNorth:
		return u.north, nil
	case HemisphereSouth:
		return u.south, nil
	}
	return nil, outOfRange("Illegal hemisphere %d", hemisphere)
}

// Forward projects a geodetic coordinate about the pole of hemisphere.
func (u *UPS) Forward(hemisphere Hemisphere, geo s2.LatLng) (MapCoords, PointScale, error) {
	p, err := u.projection(hemisphere)
	if err != nil {
		return MapCoords{}, PointScale{}, err
	}
	return p.Forward(geo)
}

// Reverse converts coordinates relative to the pole of hemisphere to a
// geodetic coordinate.
func (u *UPS) Reverse(hemisphere Hemisphere, xy MapCoords) (s2.LatLng, PointScale, error) {
	p, err := u.projection(hemisphere)
	if err != nil {
		return s2.LatLng{}, PointScale{}, err
	}
	return p.Reverse(xy)
}
