package utmupsutil

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/utmups"
)

func convertString(t *testing.T, input string, opts Options) ([]string, int) {
	var out bytes.Buffer
	failures, err := Convert(utmups.WGS84(), strings.NewReader(input), &out, opts)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), failures
}

func TestConvertForward(t *testing.T) {
	lines, failures := convertString(t, "0 0\n90 0\n-33.5 -70.2\n", Options{SetZone: utmups.ZoneStandard})
	assert.Equal(t, 0, failures)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "31N 166021.443 0.000 "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "N 2000000.000 2000000.000 "), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], " 0.994000000"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "19S "), lines[2])
	assert.Len(t, strings.Fields(lines[2]), 5)
}

func TestConvertReverse(t *testing.T) {
	lines, failures := convertString(t, "N 2000000 2000000\n31n 166021.443 0", Options{Reverse: true})
	assert.Equal(t, 0, failures)
	require.Len(t, lines, 2)
	assert.Equal(t, "90.000000000 0.000000000 0.000000000 0.994000000", lines[0])
	geo := parseFields(t, lines[1], 4)
	assert.InDelta(t, 0, geo[0], 1e-9)
	assert.InDelta(t, 0, geo[1], 1e-8)
	assert.InDelta(t, 1.00098, geo[3], 1e-4)
}

// parseFields parses a line of n numbers.
func parseFields(t *testing.T, line string, n int) []float64 {
	f := strings.Fields(line)
	require.Len(t, f, n, line)
	v := make([]float64, n)
	for i := range f {
		var err error
		v[i], err = strconv.ParseFloat(f[i], 64)
		require.NoError(t, err, line)
	}
	return v
}

func TestConvertRoundTrip(t *testing.T) {
	input := [][2]float64{{60, 5}, {78, 10}, {-85, 120}, {12.25, -179.5}}
	var b strings.Builder
	for _, ll := range input {
		fmt.Fprintf(&b, "%v %v\n", ll[0], ll[1])
	}
	forward, failures := convertString(t, b.String(), Options{SetZone: utmups.ZoneStandard})
	require.Equal(t, 0, failures)

	var records []string
	for _, line := range forward {
		f := strings.Fields(line)
		require.Len(t, f, 5)
		records = append(records, strings.Join(f[:3], " "))
	}
	assert.Equal(t, "32N", strings.Fields(records[0])[0])
	assert.Equal(t, "33N", strings.Fields(records[1])[0])
	assert.Equal(t, "S", strings.Fields(records[2])[0])
	assert.Equal(t, "01N", strings.Fields(records[3])[0])

	reverse, failures := convertString(t, strings.Join(records, "\n"), Options{Reverse: true})
	require.Equal(t, 0, failures)
	require.Len(t, reverse, len(input))
	for i, line := range reverse {
		geo := parseFields(t, line, 4)
		// eastings and northings are written to the millimeter
		assert.InDelta(t, input[i][0], geo[0], 1e-7, line)
		assert.InDelta(t, input[i][1], geo[1], 1e-6, line)
	}
}

func TestConvertErrors(t *testing.T) {
	lines, failures := convertString(t, "91 0\n1 2 3\n1\n\nabc 0\n0 0", Options{SetZone: utmups.ZoneStandard})
	assert.Equal(t, 5, failures)
	assert.Equal(t, []string{
		"ERROR: Latitude 91d not in [-90d, 90d]",
		"ERROR: Extraneous input: 3",
		"ERROR: Incomplete input: 1",
		"ERROR: Incomplete input: ",
		"ERROR: Illegal number abc",
	}, lines[:5])
	assert.True(t, strings.HasPrefix(lines[5], "31N "), lines[5])

	lines, failures = convertString(t, "61N 500000 0\n31N 950000 0\n31Q 500000 0", Options{Reverse: true, MGRSLimits: true})
	assert.Equal(t, 3, failures)
	assert.Equal(t, []string{
		"ERROR: Zone 61 not in range [1, 60] in 61N",
		"ERROR: Easting 950km not in MGRS/UTM range for N hemisphere [100km, 900km]",
		"ERROR: Illegal hemisphere letter Q in 31Q",
	}, lines)
}

func TestConvertZoneOverride(t *testing.T) {
	lines, failures := convertString(t, "40 6", Options{SetZone: 31})
	assert.Equal(t, 0, failures)
	assert.True(t, strings.HasPrefix(lines[0], "31N "), lines[0])

	lines, failures = convertString(t, "85 0", Options{SetZone: utmups.ZoneUTM})
	assert.Equal(t, 0, failures)
	assert.True(t, strings.HasPrefix(lines[0], "31N "), lines[0])

	lines, failures = convertString(t, "60 0", Options{SetZone: utmups.ZoneUPS})
	assert.Equal(t, 1, failures)
	assert.Equal(t, "ERROR: Latitude 60d more than 20d from N pole", lines[0])
}

func TestParseZone(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", utmups.ZoneStandard},
		{"standard", utmups.ZoneStandard},
		{"UTM", utmups.ZoneUTM},
		{"ups", utmups.ZoneUPS},
		{"0", utmups.ZoneUPS},
		{"08", 8},
		{"32", 32},
		{"-2", utmups.ZoneUTM},
	}
	for _, test := range tests {
		zone, err := ParseZone(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, zone, test.in)
	}

	for _, in := range []string{"61", "-3", "32N", "x"} {
		_, err := ParseZone(in)
		assert.Error(t, err, in)
	}
}
