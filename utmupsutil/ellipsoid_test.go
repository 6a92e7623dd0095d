package utmupsutil

import (
	"io"
	"os"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/utmups"
)

func TestNewConverter(t *testing.T) {
	c, err := NewConverter("wgs84")
	require.NoError(t, err)
	assert.Equal(t, utmups.WGS84(), c)

	c, err = NewConverter("")
	require.NoError(t, err)
	assert.Equal(t, utmups.WGS84(), c)

	// GRS80 differs from WGS84 by a tenth of a millimeter in the semi-minor axis.
	grs80, err := NewConverter("GRS80")
	require.NoError(t, err)
	geo := s2.LatLngFromDegrees(47.5, 8.25)
	a, _, err := grs80.ConvertFromGeodetic(geo, utmups.ZoneStandard, true)
	require.NoError(t, err)
	b, _, err := utmups.WGS84().ConvertFromGeodetic(geo, utmups.ZoneStandard, true)
	require.NoError(t, err)
	assert.Equal(t, b.Zone, a.Zone)
	assert.InDelta(t, b.Easting, a.Easting, 1e-3)
	assert.InDelta(t, b.Northing, a.Northing, 1e-3)

	// Airy 1830 is about 600 m smaller
	airy, err := NewConverter("AIRY")
	require.NoError(t, err)
	a, _, err = airy.ConvertFromGeodetic(geo, utmups.ZoneStandard, true)
	require.NoError(t, err)
	assert.True(t, b.Northing-a.Northing > 100, "%f %f", a.Northing, b.Northing)
}

func TestNewConverterUnknown(t *testing.T) {
	// Nothing may reach standard output, where the records go.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	for _, name := range []string{"NOPE", "wgs-84", "grs 80"} {
		c, err := NewConverter(name)
		assert.Error(t, err, name)
		assert.Nil(t, c, name)
	}
	_, err = run(t, "", "-e", "NOPE", "--input-string", "0 0")
	assert.EqualError(t, err, `utmups: unknown ellipsoid "NOPE"`)

	os.Stdout = stdout
	require.NoError(t, w.Close())
	printed, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, string(printed))
}
