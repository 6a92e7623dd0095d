package utmups

import "math"

// MGRS grid constants.  The UTM and UPS legal ranges are whole multiples of
// the 100 km MGRS tile so that every legal UTM/UPS point has an MGRS
// reference.
const (
	// Tile is the size of an MGRS 100 km square in meters.
	Tile = 100000.0

	minUTMCol = 1 // columns of a UTM zone, in tiles
	maxUTMCol = 9

	minUTMNRow = 0   // northern UTM rows, in tiles
	maxUTMNRow = 95  // 9500 km, beyond 84N
	minUTMSRow = 10  // southern UTM rows, in tiles
	maxUTMSRow = 100 // 10000 km, the equator

	minUPSSInd = 8 // southern UPS easting/northing, in tiles
	maxUPSSInd = 32
	minUPSNInd = 13 // northern UPS easting/northing, in tiles
	maxUPSNInd = 27

	utmEasting = 5  // UTM false easting, in tiles
	upsEasting = 20 // UPS false easting and northing, in tiles

	// shift between the northing of the two UTM hemispheres, in tiles
	utmNShift = maxUTMSRow - minUTMNRow
)

// LatitudeBand returns the index of the MGRS latitude band containing
// latitude (degrees).  Bands are 8 degrees tall with band 0 starting at the
// equator; the result is clamped to [-10, 9], band 9 (X) covering 72N to
// 84N.
func LatitudeBand(latitude float64) int {
	ilat := int(math.Floor(latitude))
	band := (ilat+80)/8 - 10
	if band < -10 {
		return -10
	}
	if band > 9 {
		return 9
	}
	return band
}
