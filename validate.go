package utmups

import "github.com/golang/geo/s2"

// CheckLatLon returns an error unless the latitude is in [-90, 90] and the
// longitude in [-180, 360] degrees.  NaN fails both tests.
func CheckLatLon(geo s2.LatLng) error {
	lat := degrees(geo.Lat)
	lon := degrees(geo.Lng)
	if !(lat >= -90 && lat <= 90) {
		return outOfRange("Latitude %sd not in [-90d, 90d]", str(lat))
	}
	if !(lon >= -180 && lon <= 360) {
		return outOfRange("Longitude %sd not in [-180d, 360d]", str(lon))
	}
	return nil
}

// legalBounds returns the bounds of the slot widened by the slop: one tile
// on every side, or none with mgrsLimits.
func legalBounds(kind ProjectionKind, hemisphere Hemisphere, mgrsLimits bool) SlotBounds {
	slop := Tile
	if mgrsLimits {
		slop = 0
	}
	b := Bounds(kind, hemisphere)
	b.MinEasting -= slop
	b.MaxEasting += slop
	b.MinNorthing -= slop
	b.MaxNorthing += slop
	return b
}

// The limits are closed multiples of the tile size.  The tests are written as
// containment so that NaN fails.
func (b SlotBounds) containsEasting(x float64) bool {
	return x >= b.MinEasting && x <= b.MaxEasting
}

func (b SlotBounds) containsNorthing(y float64) bool {
	return y >= b.MinNorthing && y <= b.MaxNorthing
}

// CheckCoords returns an error unless the easting x and northing y (meters,
// false origin included) lie within the legal range for the projection kind
// and hemisphere.  With mgrsLimits the range matches MGRS exactly, otherwise
// it is widened by one tile on every side.
func CheckCoords(kind ProjectionKind, hemisphere Hemisphere, x, y float64, mgrsLimits bool) error {
	b := legalBounds(kind, hemisphere, mgrsLimits)
	limits := ""
	if mgrsLimits {
		limits = "MGRS/"
	}
	if !b.containsEasting(x) {
		return outOfRange("Easting %skm not in %s%s range for %s hemisphere [%skm, %skm]",
			str(x/1000), limits, kind, hemisphere,
			str(b.MinEasting/1000), str(b.MaxEasting/1000))
	}
	if !b.containsNorthing(y) {
		return outOfRange("Northing %skm not in %s%s range for %s hemisphere [%skm, %skm]",
			str(y/1000), limits, kind, hemisphere,
			str(b.MinNorthing/1000), str(b.MaxNorthing/1000))
	}
	return nil
}

// InLegalRange reports whether CheckCoords would accept the point.
func InLegalRange(kind ProjectionKind, hemisphere Hemisphere, x, y float64, mgrsLimits bool) bool {
	b := legalBounds(kind, hemisphere, mgrsLimits)
	return b.containsEasting(x) && b.containsNorthing(y)
}
