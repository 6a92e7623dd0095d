package utmupsutil

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/tzneal/utmups"
)

// Options control the conversion of a stream of records.
type Options struct {
	// Reverse converts "ZONE easting northing" records to geodetic
	// coordinates instead of "lat lon" records to UTM/UPS.
	Reverse bool

	// SetZone is passed to ConvertFromGeodetic: utmups.ZoneStandard,
	// utmups.ZoneUTM or an explicit zone in [0, 60].
	SetZone int

	// MGRSLimits requires results to lie within the MGRS ranges exactly.
	MGRSLimits bool
}

// Convert reads one record per line from in and writes one line per record
// to out.  A record that cannot be converted produces an "ERROR: " line; the
// number of such records is returned.  The returned error is only set if
// reading or writing fails.
func Convert(c *utmups.Converter, in io.Reader, out io.Writer, opts Options) (int, error) {
	sc := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	failures := 0
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		var result string
		var err error
		if opts.Reverse {
			result, err = reverseRecord(c, text, opts)
		} else {
			result, err = forwardRecord(c, text, opts)
		}
		if err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"line":  line,
				"input": text,
			}).Debug(err)
			result = "ERROR: " + err.Error()
		}
		if _, err := fmt.Fprintln(w, result); err != nil {
			return failures, errors.Wrap(err, "utmups: writing output")
		}
	}
	if err := sc.Err(); err != nil {
		return failures, errors.Wrap(err, "utmups: reading input")
	}
	if err := w.Flush(); err != nil {
		return failures, errors.Wrap(err, "utmups: writing output")
	}
	return failures, nil
}

// fields splits a record into exactly n fields.
func fields(text string, n int) ([]string, error) {
	f := strings.Fields(text)
	if len(f) < n {
		return nil, errors.Errorf("Incomplete input: %s", text)
	}
	if len(f) > n {
		return nil, errors.Errorf("Extraneous input: %s", f[n])
	}
	return f, nil
}

func number(s string) (float64, error) {
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, errors.Errorf("Illegal number %s", s)
	}
	return v, nil
}

func forwardRecord(c *utmups.Converter, text string, opts Options) (string, error) {
	f, err := fields(text, 2)
	if err != nil {
		return "", err
	}
	lat, err := number(f[0])
	if err != nil {
		return "", err
	}
	lon, err := number(f[1])
	if err != nil {
		return "", err
	}
	coord, scale, err := c.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lon), opts.SetZone, opts.MGRSLimits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %.9f %.9f", coord, scale.Convergence.Degrees(), scale.Scale), nil
}

func reverseRecord(c *utmups.Converter, text string, opts Options) (string, error) {
	f, err := fields(text, 3)
	if err != nil {
		return "", err
	}
	zone, hemisphere, err := utmups.DecodeZone(f[0])
	if err != nil {
		return "", err
	}
	easting, err := number(f[1])
	if err != nil {
		return "", err
	}
	northing, err := number(f[2])
	if err != nil {
		return "", err
	}
	geo, scale, err := c.ConvertToGeodetic(utmups.UTMUPSCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}, opts.MGRSLimits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.9f %.9f %.9f %.9f", geo.Lat.Degrees(), geo.Lng.Degrees(),
		scale.Convergence.Degrees(), scale.Scale), nil
}

// ParseZone interprets a zone override: "" or "standard" for the standard
// zone, "utm" to force UTM, "ups" or 0 to force UPS, or a zone in [1, 60].
func ParseZone(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return utmups.ZoneStandard, nil
	case "utm":
		return utmups.ZoneUTM, nil
	case "ups":
		return utmups.ZoneUPS, nil
	}
	// cast reads a leading 0 as an octal prefix
	digits := strings.TrimLeft(strings.TrimSpace(s), "0")
	if digits == "" {
		digits = "0"
	}
	zone, err := cast.ToIntE(digits)
	if err != nil {
		return 0, errors.Wrapf(err, "utmups: invalid zone %q", s)
	}
	if zone < utmups.ZoneUTM || zone > 60 {
		return 0, errors.Errorf("utmups: zone %d not in [-2, 60]", zone)
	}
	return zone, nil
}
