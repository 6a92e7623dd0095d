package utmups

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Zone selection values accepted by StandardZone and ConvertFromGeodetic in
// addition to the explicit zones 1 through 60.
const (
	// ZoneUTM selects the standard UTM zone even outside the UTM latitude
	// range.
	ZoneUTM = -2
	// ZoneStandard selects the standard zone: UPS beyond [-80, 84) degrees
	// of latitude, UTM otherwise.
	ZoneStandard = -1
	// ZoneUPS selects the UPS projection.
	ZoneUPS = 0

	minZone    = -2
	minUTMZone = 1
	maxUTMZone = 60
)

const (
	utmMinLat = -80.0
	utmMaxLat = 84.0

	norwayBand   = 7 // V, 56N to 64N
	svalbardBand = 9 // X, 72N to 84N
)

// StandardZone returns the zone for a geodetic coordinate.  setZone is either
// an explicit zone in [0, 60], which is returned unchanged, or ZoneStandard or
// ZoneUTM.  The standard zone applies the exceptions over southern Norway and
// Svalbard.
func StandardZone(geo s2.LatLng, setZone int) (int, error) {
	if setZone < minZone || setZone > maxUTMZone {
		return 0, outOfRange("Illegal zone requested %d", setZone)
	}
	if setZone >= ZoneUPS {
		return setZone, nil
	}
	if err := CheckLatLon(geo); err != nil {
		return 0, err
	}
	lat := degrees(geo.Lat)
	if setZone == ZoneStandard && !(lat >= utmMinLat && lat < utmMaxLat) {
		return ZoneUPS, nil
	}

	// longitude is assumed to be in [-180, 360]
	ilon := int(math.Floor(degrees(geo.Lng)))
	if ilon >= 180 {
		ilon -= 360
	}
	zone := (ilon + 186) / 6
	band := LatitudeBand(lat)
	if band == norwayBand && zone == 31 && ilon >= 3 {
		zone = 32
	} else if band == svalbardBand && ilon >= 0 && ilon < 42 {
		zone = 2*((ilon+183)/12) + 1
	}
	return zone, nil
}

// CentralMeridian returns the central meridian of a UTM zone.
func CentralMeridian(zone int) s1.Angle {
	return s1.Angle(6*zone-183) * s1.Degree
}
