package utmups

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

// HemisphereOf returns the hemisphere of a latitude in degrees.  The equator
// belongs to the northern hemisphere.
func HemisphereOf(latitude float64) Hemisphere {
	if latitude >= 0 {
		return HemisphereNorth
	}
	return HemisphereSouth
}

// Letter returns 'N' or 'S', or '?' for an invalid hemisphere.
func (h Hemisphere) Letter() byte {
	switch h {
	case HemisphereNorth:
		return 'N'
	case HemisphereSouth:
		return 'S'
	}
	return '?'
}

func (h Hemisphere) String() string {
	return string(h.Letter())
}

func (h Hemisphere) valid() bool {
	return h == HemisphereNorth || h == HemisphereSouth
}

// ProjectionKind selects between the two grid systems.
type ProjectionKind byte

// Projection kinds
const (
	KindUPS ProjectionKind = iota
	KindUTM
)

// KindOf returns the projection kind used by a zone number, zone 0 being UPS.
func KindOf(zone int) ProjectionKind {
	if zone > 0 {
		return KindUTM
	}
	return KindUPS
}

func (k ProjectionKind) String() string {
	if k == KindUTM {
		return "UTM"
	}
	return "UPS"
}
