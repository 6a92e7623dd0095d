package utmupsutil

import (
	"strings"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
	"github.com/pkg/errors"
	"github.com/tzneal/utmups"
)

// knownEllipsoids are the names accepted by NewConverter besides WGS84.
// ellipsoid.Init prints a warning to standard output for a name it does not
// know, which would land in the record output, so names are checked first.
var knownEllipsoids = map[string]bool{
	"AIRY":        true,
	"AUSTRALIAN":  true,
	"BESSEL-1841": true,
	"CLARKE-1880": true,
	"GRS80":       true,
	"IAU76":       true,
	"NAD27":       true,
	"WGS72":       true,
}

// NewConverter returns a converter for the named ellipsoid, e.g. "WGS84",
// "GRS80" or "AIRY".  Names are case insensitive.
func NewConverter(name string) (*utmups.Converter, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" || name == "WGS84" {
		return utmups.WGS84(), nil
	}
	if !knownEllipsoids[name] {
		return nil, errors.Errorf("utmups: unknown ellipsoid %q", name)
	}
	e := ellipsoid.Init(name, ellipsoid.Degrees, ellipsoid.Meter,
		ellipsoid.LongitudeIsSymmetric, ellipsoid.BearingIsSymmetric)
	if !(e.Ellipse.Equatorial > 0 && e.Ellipse.InvFlattening > 0) {
		return nil, errors.Errorf("utmups: unknown ellipsoid %q", name)
	}
	c, err := utmups.NewConverterEllipsoid(e.Ellipse.Equatorial, 1/e.Ellipse.InvFlattening)
	if err != nil {
		return nil, errors.Wrapf(err, "utmups: ellipsoid %s", name)
	}
	return c, nil
}
