package utmups

// SlotBounds holds the false origin and the closed legal ranges, in meters,
// of one (projection kind, hemisphere) combination.
type SlotBounds struct {
	Kind          ProjectionKind
	Hemisphere    Hemisphere
	FalseEasting  float64
	FalseNorthing float64
	MinEasting    float64
	MaxEasting    float64
	MinNorthing   float64
	MaxNorthing   float64
}

// slotIndex packs a projection kind and hemisphere into an index of zoneSlots.
func slotIndex(kind ProjectionKind, hemisphere Hemisphere) int {
	i := 0
	if kind == KindUTM {
		i += 2
	}
	if hemisphere == HemisphereNorth {
		i++
	}
	return i
}

var zoneSlots = [4]SlotBounds{
	{
		Kind:          KindUPS,
		Hemisphere:    HemisphereSouth,
		FalseEasting:  upsEasting * Tile,
		FalseNorthing: upsEasting * Tile,
		MinEasting:    minUPSSInd * Tile,
		MaxEasting:    maxUPSSInd * Tile,
		MinNorthing:   minUPSSInd * Tile,
		MaxNorthing:   maxUPSSInd * Tile,
	},
	{
		Kind:          KindUPS,
		Hemisphere:    HemisphereNorth,
		FalseEasting:  upsEasting * Tile,
		FalseNorthing: upsEasting * Tile,
		MinEasting:    minUPSNInd * Tile,
		MaxEasting:    maxUPSNInd * Tile,
		MinNorthing:   minUPSNInd * Tile,
		MaxNorthing:   maxUPSNInd * Tile,
	},
	{
		Kind:          KindUTM,
		Hemisphere:    HemisphereSouth,
		FalseEasting:  utmEasting * Tile,
		FalseNorthing: maxUTMSRow * Tile,
		MinEasting:    minUTMCol * Tile,
		MaxEasting:    maxUTMCol * Tile,
		MinNorthing:   minUTMSRow * Tile,
		// northern rows continued across the equator
		MaxNorthing: (maxUTMSRow + maxUTMNRow - minUTMNRow) * Tile,
	},
	{
		Kind:          KindUTM,
		Hemisphere:    HemisphereNorth,
		FalseEasting:  utmEasting * Tile,
		FalseNorthing: minUTMNRow * Tile,
		MinEasting:    minUTMCol * Tile,
		MaxEasting:    maxUTMCol * Tile,
		// southern rows continued across the equator
		MinNorthing: (minUTMNRow + minUTMSRow - maxUTMSRow) * Tile,
		MaxNorthing: maxUTMNRow * Tile,
	},
}

// Bounds returns the false origin and legal ranges for a projection kind and
// hemisphere.
func Bounds(kind ProjectionKind, hemisphere Hemisphere) SlotBounds {
	return zoneSlots[slotIndex(kind, hemisphere)]
}

// UTMShift returns the northing shift between the two UTM hemispheres, the
// southern false northing.
func UTMShift() float64 {
	return utmNShift * Tile
}
