package utmups

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// PolarStereographic is a polar stereographic projection centered on one
// pole, with the prime meridian as central meridian.
type PolarStereographic struct {
	semiMajorAxis        float64
	flattening           float64
	es                   float64 // Eccentricity of ellipsoid
	esOverTwo            float64 // es / 2.0
	isSouthernHemisphere bool
	polarTC              float64
	polarK90             float64
	polaraMc             float64 // Polar_a * mc
	twoPolarA            float64 // 2.0 * Polar_a

	standardParallel float64 // latitude of true scale in radians, positive
	scaleFactor      float64 // scale factor at the pole

	// Maximum variance for easting and northing values
	deltaEasting  float64
	deltaNorthing float64
}

// NewPolarStereographic constructs a polar stereographic projection about the
// pole of hemisphere with the given scale factor at the pole.
func NewPolarStereographic(semiMajorAxis, flattening, scaleFactor float64,
	hemisphere Hemisphere) (*PolarStereographic, error) {
	if err := checkEllipsoid(semiMajorAxis, flattening); err != nil {
		return nil, err
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 3.0
	if !(scaleFactor >= minScaleFactor && scaleFactor <= maxScaleFactor) {
		return nil, outOfRange("Scale factor %s not in [%s, %s]", str(scaleFactor),
			str(minScaleFactor), str(maxScaleFactor))
	}
	if !hemisphere.valid() {
		return nil, outOfRange("Illegal hemisphere %d", hemisphere)
	}

	es := math.Sqrt(2*flattening - flattening*flattening)
	p := &PolarStereographic{
		semiMajorAxis:        semiMajorAxis,
		flattening:           flattening,
		es:                   es,
		esOverTwo:            es / 2,
		isSouthernHemisphere: hemisphere == HemisphereSouth,
		polarTC:              1.0,
		twoPolarA:            2 * semiMajorAxis,
		scaleFactor:          scaleFactor,
	}

	onePlusEs := 1.0 + es
	oneMinusEs := 1.0 - es
	p.polarK90 = math.Sqrt(math.Pow(onePlusEs, onePlusEs) * math.Pow(oneMinusEs, oneMinusEs))
	p.polaraMc = semiMajorAxis

	// Find the standard parallel giving the requested scale at the pole.
	const tolerance = 1.0e-15
	count := 30
	sk := 0.0
	skPlus1 := -1 + 2*scaleFactor
	for math.Abs(skPlus1-sk) > tolerance && count != 0 {
		sk = skPlus1
		onePlusEsSk := 1.0 + es*sk
		oneMinusEsSk := 1.0 - es*sk
		skPlus1 = ((2 * scaleFactor *
			math.Sqrt(math.Pow(onePlusEsSk, onePlusEs)*
				math.Pow(oneMinusEsSk, oneMinusEs))) /
			p.polarK90) - 1
		count--
	}
	if count == 0 || !(skPlus1 >= -1.0 && skPlus1 <= 1.0) {
		return nil, outOfRange("Scale factor %s gives no standard parallel", str(scaleFactor))
	}
	p.standardParallel = math.Asin(skPlus1)

	if !p.trueScaleAtPole() {
		sinolat := math.Sin(p.standardParallel)
		essin := es * sinolat
		powEs := p.polarPow(essin)
		cosolat := math.Cos(p.standardParallel)
		mc := cosolat / math.Sqrt(1.0-essin*essin)
		p.polaraMc = semiMajorAxis * mc
		p.polarTC = math.Tan(math.Pi/4-p.standardParallel/2.0) / powEs
	}

	// Limits are one percent beyond the equator.
	p.deltaNorthing = p.rho(0) * 1.01
	p.deltaEasting = p.deltaNorthing
	return p, nil
}

func (p *PolarStereographic) trueScaleAtPole() bool {
	return math.Abs(p.standardParallel-math.Pi/2) <= 1.0e-10
}

// rho returns the distance from the pole of a (positive) latitude.
func (p *PolarStereographic) rho(latitude float64) float64 {
	t := math.Tan(math.Pi/4-latitude/2.0) / p.polarPow(p.es*math.Sin(latitude))
	if p.trueScaleAtPole() {
		return p.twoPolarA * t / p.polarK90
	}
	return p.polaraMc * t / p.polarTC
}

// scale returns the scale factor at a (positive) latitude, rho from the pole.
func (p *PolarStereographic) scale(latitude, rho float64) float64 {
	essin := p.es * math.Sin(latitude)
	return rho / p.semiMajorAxis * math.Sqrt(1-essin*essin) / math.Cos(latitude)
}

// Forward converts a geodetic coordinate to polar stereographic easting and
// northing relative to the pole.
func (p *PolarStereographic) Forward(geo s2.LatLng) (MapCoords, PointScale, error) {
	latitude := geo.Lat.Radians()
	longitude := normalizeLon(geo.Lng.Radians())

	if !(math.Abs(latitude) <= math.Pi/2) {
		return MapCoords{}, PointScale{}, outOfRange("Latitude %sd not in [-90d, 90d]", str(geo.Lat.Degrees()))
	}
	if (latitude < 0 && !p.isSouthernHemisphere) || (latitude > 0 && p.isSouthernHemisphere) {
		return MapCoords{}, PointScale{}, outOfRange("Latitude %sd and pole in different hemispheres",
			str(geo.Lat.Degrees()))
	}

	if p.isSouthernHemisphere {
		longitude *= -1.0
		latitude *= -1.0
	}
	dlam := normalizeLon(longitude)

	var x, y, k float64
	if math.Abs(latitude-math.Pi/2) < 1.0e-10 {
		k = p.scaleFactor
	} else {
		rho := p.rho(latitude)
		x = rho * math.Sin(dlam)
		y = -rho * math.Cos(dlam)
		k = p.scale(latitude, rho)
	}
	if p.isSouthernHemisphere {
		x, y = -x, -y
	}
	return MapCoords{Easting: x, Northing: y},
		PointScale{Convergence: s1.Angle(dlam), Scale: k}, nil
}

// Reverse converts polar stereographic easting and northing relative to the
// pole to a geodetic coordinate.
func (p *PolarStereographic) Reverse(xy MapCoords) (s2.LatLng, PointScale, error) {
	dx := xy.Easting
	dy := xy.Northing

	if !(math.Abs(dx) <= p.deltaEasting) {
		return s2.LatLng{}, PointScale{}, outOfRange("Easting %skm not in [%skm, %skm]", str(dx/1000),
			str(-p.deltaEasting/1000), str(p.deltaEasting/1000))
	}
	if !(math.Abs(dy) <= p.deltaNorthing) {
		return s2.LatLng{}, PointScale{}, outOfRange("Northing %skm not in [%skm, %skm]", str(dy/1000),
			str(-p.deltaNorthing/1000), str(p.deltaNorthing/1000))
	}

	// Radius of point from the pole
	rho := math.Hypot(dx, dy)
	if rho > math.Hypot(p.deltaEasting, p.deltaNorthing) {
		return s2.LatLng{}, PointScale{}, outOfRange("Point %skm from the pole is outside of projection area", str(rho/1000))
	}

	if p.isSouthernHemisphere {
		dy *= -1.0
		dx *= -1.0
	}

	latitude := math.Pi / 2
	longitude := 0.0
	k := p.scaleFactor
	if rho != 0 {
		var t float64
		if p.trueScaleAtPole() {
			t = rho * p.polarK90 / p.twoPolarA
		} else {
			t = rho * p.polarTC / p.polaraMc
		}
		phi := math.Pi/2 - 2.0*math.Atan(t)
		for n := 0; n < 30; n++ {
			prev := phi
			phi = math.Pi/2 - 2.0*math.Atan(t*p.polarPow(p.es*math.Sin(phi)))
			if math.Abs(phi-prev) <= 1.0e-14 {
				break
			}
		}
		// force distorted values to 90 degrees
		latitude = math.Min(phi, math.Pi/2)
		longitude = math.Atan2(dx, -dy)
		k = p.scale(latitude, rho)
	}
	gamma := longitude

	if p.isSouthernHemisphere {
		latitude *= -1.0
		longitude *= -1.0
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(normalizeLon(longitude))},
		PointScale{Convergence: s1.Angle(gamma), Scale: k}, nil
}

func (p *PolarStereographic) polarPow(esSin float64) float64 {
	return math.Pow((1.0-esSin)/(1.0+esSin), p.esOverTwo)
}
