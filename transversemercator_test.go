package utmups_test

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/utmups"
)

func TestTransverseMercatorRoundTrip(t *testing.T) {
	tm, err := utmups.NewTransverseMercator(utmups.WGS84SemiMajorAxis, utmups.WGS84Flattening, 0.9996)
	require.NoError(t, err)
	cm := s1.Angle(-75) * s1.Degree
	for dlng := -9.0; dlng <= 9; dlng += 0.75 {
		for lat := -84.0; lat <= 84; lat += 1.5 {
			geo := s2.LatLngFromDegrees(lat, -75+dlng)
			xy, fwd, err := tm.Forward(cm, geo)
			require.NoError(t, err)
			geo2, rev, err := tm.Reverse(cm, xy)
			require.NoError(t, err)
			require.InDelta(t, 0, geo.Distance(geo2).Degrees(), 1e-10, "expected %s, got %s", geo, geo2)
			require.InDelta(t, fwd.Convergence.Degrees(), rev.Convergence.Degrees(), 1e-9)
			require.InDelta(t, fwd.Scale, rev.Scale, 1e-12)
		}
	}
}

func TestTransverseMercatorCentralMeridian(t *testing.T) {
	tm, err := utmups.NewTransverseMercator(utmups.WGS84SemiMajorAxis, utmups.WGS84Flattening, 0.9996)
	require.NoError(t, err)
	cm := s1.Angle(9) * s1.Degree
	for _, lat := range []float64{-80, -45, 0, 30, 60, 84} {
		xy, scale, err := tm.Forward(cm, s2.LatLngFromDegrees(lat, 9))
		require.NoError(t, err)
		assert.InDelta(t, 0, xy.Easting, 1e-6)
		assert.InDelta(t, 0, scale.Convergence.Degrees(), 1e-12)
		assert.InDelta(t, 0.9996, scale.Scale, 1e-9)
	}

	// quarter meridian of WGS84 scaled by k0
	xy, _, err := tm.Forward(cm, s2.LatLngFromDegrees(90, 9))
	require.NoError(t, err)
	assert.InDelta(t, 10001965.729*0.9996, xy.Northing, 1e-3)
}

func TestTransverseMercatorLimits(t *testing.T) {
	tm, err := utmups.NewTransverseMercator(utmups.WGS84SemiMajorAxis, utmups.WGS84Flattening, 0.9996)
	require.NoError(t, err)

	_, _, err = tm.Forward(0, s2.LatLngFromDegrees(10, 75))
	assert.ErrorIs(t, err, utmups.ErrOutOfRange)
	_, _, err = tm.Reverse(0, utmups.MapCoords{Easting: 3e7})
	assert.ErrorIs(t, err, utmups.ErrOutOfRange)

	_, err = utmups.NewTransverseMercator(utmups.WGS84SemiMajorAxis, utmups.WGS84Flattening, 0)
	assert.ErrorIs(t, err, utmups.ErrOutOfRange)
	_, err = utmups.NewTransverseMercator(0, utmups.WGS84Flattening, 0.9996)
	assert.ErrorIs(t, err, utmups.ErrOutOfRange)
}
