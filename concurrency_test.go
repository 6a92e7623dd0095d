package utmups_test

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/utmups"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentUse(t *testing.T) {
	c := utmups.WGS84()
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		lat := -88.0 + 11*float64(i)
		g.Go(func() error {
			for lng := -180.0; lng < 180; lng += 7.5 {
				geo := s2.LatLngFromDegrees(lat, lng)
				coord, _, err := c.ConvertFromGeodetic(geo, utmups.ZoneStandard, false)
				if err != nil {
					return err
				}
				geo2, _, err := c.ConvertToGeodetic(coord, false)
				if err != nil {
					return err
				}
				if d := geo.Distance(geo2).Degrees(); d > 1e-9 {
					return errors.Errorf("%s: round trip error %g degrees", geo, d)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
