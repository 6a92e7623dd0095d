package utmups

import (
	"fmt"
	"strconv"
)

// DecodeZone parses a zone designator such as "38N", "09s" or "N".  A bare
// hemisphere letter is the UPS zone 0; "0N" is rejected so that the UPS zone
// has a single spelling.
func DecodeZone(zoneStr string) (int, Hemisphere, error) {
	n := len(zoneStr)
	if n == 0 {
		return 0, HemisphereInvalid, outOfRange("Empty zone specification")
	}
	if n > 3 {
		return 0, HemisphereInvalid, outOfRange("More than 3 characters in zone specification %s", zoneStr)
	}

	var hemisphere Hemisphere
	switch letter := zoneStr[n-1]; letter {
	case 'N', 'n':
		hemisphere = HemisphereNorth
	case 'S', 's':
		hemisphere = HemisphereSouth
	default:
		return 0, HemisphereInvalid, outOfRange("Illegal hemisphere letter %c in %s", toupper(letter), zoneStr)
	}
	if n == 1 {
		return ZoneUPS, hemisphere, nil
	}

	zone, err := strconv.Atoi(zoneStr[:n-1])
	if err != nil {
		return 0, HemisphereInvalid, outOfRange("Extra text in UTM/UPS zone %s", zoneStr)
	}
	if zone == 0 {
		return 0, HemisphereInvalid, outOfRange("Illegal zone 0 in %s", zoneStr)
	}
	if zone < minUTMZone || zone > maxUTMZone {
		return 0, HemisphereInvalid, outOfRange("Zone %d not in range [%d, %d] in %s",
			zone, minUTMZone, maxUTMZone, zoneStr)
	}
	return zone, hemisphere, nil
}

// EncodeZone renders a zone designator: a two digit zone followed by the
// hemisphere letter, or the hemisphere letter alone for UPS.
func EncodeZone(zone int, hemisphere Hemisphere) (string, error) {
	if zone < ZoneUPS || zone > maxUTMZone {
		return "", outOfRange("Illegal UTM zone %d", zone)
	}
	if !hemisphere.valid() {
		return "", outOfRange("Illegal hemisphere %d", hemisphere)
	}
	if zone == ZoneUPS {
		return hemisphere.String(), nil
	}
	return fmt.Sprintf("%02d%c", zone, hemisphere.Letter()), nil
}

func toupper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
