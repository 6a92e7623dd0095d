// Package utmups converts between geodetic coordinates and the Universal
// Transverse Mercator (UTM) and Universal Polar Stereographic (UPS) grids.
//
// Zone 0 denotes UPS and zones 1 through 60 the UTM longitude zones.  The
// legal easting and northing ranges follow the MGRS tiling, optionally
// widened by one 100 km tile.
package utmups

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

const utmScaleFactor = 0.9996

// UTMUPSCoord is a UTM or UPS coordinate with easting and northing in meters,
// false origin included.  Zone 0 denotes UPS.
type UTMUPSCoord struct {
	Zone       int
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

// IsUPS reports whether the coordinate is in the UPS system.
func (c UTMUPSCoord) IsUPS() bool {
	return c.Zone == ZoneUPS
}

func (c UTMUPSCoord) String() string {
	zone, err := EncodeZone(c.Zone, c.Hemisphere)
	if err != nil {
		zone = "invalid"
	}
	return fmt.Sprintf("%s %.3f %.3f", zone, c.Easting, c.Northing)
}

// Converter converts between geodetic and UTM/UPS coordinates.  It holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	tm MeridianProjector
	ps PolarProjector
}

// NewConverter constructs a converter delegating the UTM projection to tm and
// the UPS projection to ps.
func NewConverter(tm MeridianProjector, ps PolarProjector) *Converter {
	return &Converter{tm: tm, ps: ps}
}

// NewConverterEllipsoid constructs a converter for the specified ellipsoid.
func NewConverterEllipsoid(semiMajorAxis, flattening float64) (*Converter, error) {
	tm, err := NewTransverseMercator(semiMajorAxis, flattening, utmScaleFactor)
	if err != nil {
		return nil, err
	}
	ps, err := NewUPS(semiMajorAxis, flattening)
	if err != nil {
		return nil, err
	}
	return NewConverter(tm, ps), nil
}

// ConvertFromGeodetic converts a geodetic coordinate to UTM or UPS.  setZone
// is ZoneStandard, ZoneUTM or an explicit zone in [0, 60] (see StandardZone).
// With mgrsLimits the result must lie within the MGRS ranges exactly,
// otherwise one tile of slop is allowed.
func (c *Converter) ConvertFromGeodetic(geo s2.LatLng, setZone int, mgrsLimits bool) (UTMUPSCoord, PointScale, error) {
	if err := CheckLatLon(geo); err != nil {
		return UTMUPSCoord{}, PointScale{}, err
	}
	lat := degrees(geo.Lat)
	lon := degrees(geo.Lng)
	hemisphere := HemisphereOf(lat)
	zone, err := StandardZone(geo, setZone)
	if err != nil {
		return UTMUPSCoord{}, PointScale{}, err
	}

	kind := KindOf(zone)
	var xy MapCoords
	var scale PointScale
	if kind == KindUTM {
		dlon := lon - float64(6*zone-183)
		dlon = math.Abs(dlon - 360*math.Floor((dlon+180)/360))
		if dlon > 60 {
			// CheckCoords would catch this too, with a less helpful message.
			return UTMUPSCoord{}, PointScale{}, outOfRange("Longitude %sd more than 60d from center of UTM zone %d",
				str(lon), zone)
		}
		xy, scale, err = c.tm.Forward(CentralMeridian(zone), geo)
	} else {
		if math.Abs(lat) < 70 {
			return UTMUPSCoord{}, PointScale{}, outOfRange("Latitude %sd more than 20d from %s pole",
				str(lat), hemisphere)
		}
		xy, scale, err = c.ps.Forward(hemisphere, geo)
	}
	if err != nil {
		return UTMUPSCoord{}, PointScale{}, err
	}

	b := Bounds(kind, hemisphere)
	x := xy.Easting + b.FalseEasting
	y := xy.Northing + b.FalseNorthing
	if !InLegalRange(kind, hemisphere, x, y, mgrsLimits) {
		system := "UPS"
		if kind == KindUTM {
			system = fmt.Sprintf("UTM zone %d", zone)
		}
		return UTMUPSCoord{}, PointScale{}, outOfRange("Latitude %s, longitude %s out of legal range for %s",
			str(lat), str(lon), system)
	}
	return UTMUPSCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    x,
		Northing:   y,
	}, scale, nil
}

// ConvertToGeodetic converts a UTM or UPS coordinate to a geodetic coordinate
// with the longitude in (-180, 180].  mgrsLimits selects the legal range as in
// ConvertFromGeodetic.
func (c *Converter) ConvertToGeodetic(coord UTMUPSCoord, mgrsLimits bool) (s2.LatLng, PointScale, error) {
	if !(coord.Zone >= ZoneUPS && coord.Zone <= maxUTMZone) {
		return s2.LatLng{}, PointScale{}, outOfRange("Illegal UTM zone %d", coord.Zone)
	}
	if !coord.Hemisphere.valid() {
		return s2.LatLng{}, PointScale{}, outOfRange("Illegal hemisphere %d", coord.Hemisphere)
	}
	kind := KindOf(coord.Zone)
	if err := CheckCoords(kind, coord.Hemisphere, coord.Easting, coord.Northing, mgrsLimits); err != nil {
		return s2.LatLng{}, PointScale{}, err
	}

	b := Bounds(kind, coord.Hemisphere)
	xy := MapCoords{
		Easting:  coord.Easting - b.FalseEasting,
		Northing: coord.Northing - b.FalseNorthing,
	}
	if kind == KindUTM {
		return c.tm.Reverse(CentralMeridian(coord.Zone), xy)
	}
	return c.ps.Reverse(coord.Hemisphere, xy)
}
