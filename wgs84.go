package utmups

import "fmt"

// WGS84 ellipsoid parameters.
const (
	WGS84SemiMajorAxis = 6378137.0
	WGS84Flattening    = 1 / 298.257223563
)

var wgs84Converter *Converter

func init() {
	var err error
	wgs84Converter, err = NewConverterEllipsoid(WGS84SemiMajorAxis, WGS84Flattening)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM/UPS converter: %s", err))
	}
}

// WGS84 returns the converter for the WGS84 ellipsoid.
func WGS84() *Converter {
	return wgs84Converter
}
