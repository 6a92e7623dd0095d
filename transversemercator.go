package utmups

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const nTerms = 6

// Coefficients of n, n^2, ..., n^8 (n is the third flattening) in the Krüger
// series.  Row j gives the coefficient of sin(2(j+1)ζ'), mapping the
// conformal sphere to the ellipsoidal projection (alpha) and back (beta).
// Algorithm by C. Rollins, April 18, 2006.
var krugerAlpha = [nTerms][8]float64{
	{1.0 / 2, -2.0 / 3, 5.0 / 16, 41.0 / 180, -127.0 / 288, 7891.0 / 37800, 72161.0 / 387072, -18975107.0 / 50803200},
	{0, 13.0 / 48, -3.0 / 5, 557.0 / 1440, 281.0 / 630, -1983433.0 / 1935360, 13769.0 / 28800, 148003883.0 / 174182400},
	{0, 0, 61.0 / 240, -103.0 / 140, 15061.0 / 26880, 167603.0 / 181440, -67102379.0 / 29030400, 79682431.0 / 79833600},
	{0, 0, 0, 49561.0 / 161280, -179.0 / 168, 6601661.0 / 7257600, 97445.0 / 49896, -40176129013.0 / 7664025600},
	{0, 0, 0, 0, 34729.0 / 80640, -3418889.0 / 1995840, 14644087.0 / 9123840, 2605413599.0 / 622702080},
	{0, 0, 0, 0, 0, 212378941.0 / 319334400, -30705481.0 / 10378368, 175214326799.0 / 58118860800},
}

var krugerBeta = [nTerms][8]float64{
	{-1.0 / 2, 2.0 / 3, -37.0 / 96, 1.0 / 360, 81.0 / 512, -96199.0 / 604800, 5406467.0 / 38707200, -7944359.0 / 67737600},
	{0, -1.0 / 48, -1.0 / 15, 437.0 / 1440, -46.0 / 105, 1118711.0 / 3870720, -51841.0 / 1209600, -24749483.0 / 348364800},
	{0, 0, -17.0 / 480, 37.0 / 840, 209.0 / 4480, -5569.0 / 90720, -9261899.0 / 58060800, 6457463.0 / 17740800},
	{0, 0, 0, -4397.0 / 161280, 11.0 / 504, 830251.0 / 7257600, -466511.0 / 2494800, -324154477.0 / 7664025600},
	{0, 0, 0, 0, -4583.0 / 161280, 108847.0 / 3991680, 8005831.0 / 63866880, -22894433.0 / 124540416},
	{0, 0, 0, 0, 0, -20648693.0 / 638668800, 16363163.0 / 518918400, 2204645983.0 / 12915302400},
}

// TransverseMercator provides conversions between geodetic coordinates
// (latitude and longitude) and transverse Mercator coordinates (easting and
// northing) about any central meridian.
type TransverseMercator struct {
	semiMajorAxis float64
	flattening    float64
	scaleFactor   float64

	eps     float64 // eccentricity
	k0R4oa  float64 // scaleFactor * R4/a
	k0R4    float64 // scaleFactor * R4
	k0R4inv float64 // 1/(scaleFactor * R4)

	aCoeff [nTerms]float64
	bCoeff [nTerms]float64

	// maximum magnitude of easting and northing
	deltaEasting  float64
	deltaNorthing float64
}

// NewTransverseMercator constructs a transverse Mercator projection for an
// ellipsoid with the given scale factor on the central meridian.
func NewTransverseMercator(semiMajorAxis, flattening, scaleFactor float64) (*TransverseMercator, error) {
	if err := checkEllipsoid(semiMajorAxis, flattening); err != nil {
		return nil, err
	}
	const minScaleFactor = 0.1
	const maxScaleFactor = 10.0
	if !(scaleFactor >= minScaleFactor && scaleFactor <= maxScaleFactor) {
		return nil, outOfRange("Scale factor %s not in [%s, %s]", str(scaleFactor),
			str(minScaleFactor), str(maxScaleFactor))
	}

	t := &TransverseMercator{
		semiMajorAxis: semiMajorAxis,
		flattening:    flattening,
		scaleFactor:   scaleFactor,
		eps:           math.Sqrt(2*flattening - flattening*flattening),
		deltaEasting:  20000000.0,
		deltaNorthing: 10000000.0,
	}

	// Helmert's n = (a - b)/(a + b)
	n := flattening / (2 - flattening)
	for j := 0; j < nTerms; j++ {
		t.aCoeff[j] = series(krugerAlpha[j][:], n)
		t.bCoeff[j] = series(krugerBeta[j][:], n)
	}

	// R4 is the meridional isoperimetric radius
	n2 := n * n
	r4oa := (1 + n2*(1.0/4+n2*(1.0/64+n2*(1.0/256+n2*(25.0/16384+n2*49.0/65536))))) / (1 + n)

	t.k0R4oa = r4oa * scaleFactor
	t.k0R4 = t.k0R4oa * semiMajorAxis
	t.k0R4inv = 1 / t.k0R4
	return t, nil
}

// series evaluates c[0]*n + c[1]*n^2 + ... by Horner's rule.
func series(c []float64, n float64) float64 {
	sum := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		sum = (sum + c[i]) * n
	}
	return sum
}

// checkLatLon tests the distance of a point from the central meridian, or
// from the antimeridian, with points near the poles always accepted.
func (t *TransverseMercator) checkLatLon(latitude, deltaLon float64) error {
	testAngle := math.Min(math.Abs(deltaLon), math.Min(math.Abs(deltaLon-math.Pi), math.Abs(deltaLon+math.Pi)))
	testAngle = math.Min(testAngle, math.Min(math.Pi/2-latitude, math.Pi/2+latitude))

	const maxDeltaLong = (math.Pi * 70) / 180.0
	if !(testAngle <= maxDeltaLong) {
		return outOfRange("Longitude %sd more than 70d from central meridian",
			str(s1.Angle(deltaLon).Degrees()))
	}
	return nil
}

// conformalFactor returns sqrt(1 - e^2 sin^2 phi) * cos(chi) / cos(phi)
// where chi is the conformal latitude; it stays finite at the poles.
func (t *TransverseMercator) conformalFactor(sinPhi float64) float64 {
	p := math.Exp(t.eps * aTanH(t.eps*sinPhi))
	denom := (1+sinPhi)/p + (1-sinPhi)*p
	return 2 * math.Sqrt(1-t.eps*t.eps*sinPhi*sinPhi) / denom
}

// Forward projects a geodetic coordinate about the central meridian.
func (t *TransverseMercator) Forward(centralMeridian s1.Angle, geo s2.LatLng) (MapCoords, PointScale, error) {
	latitude := geo.Lat.Radians()
	if !(math.Abs(latitude) <= math.Pi/2) {
		return MapCoords{}, PointScale{}, outOfRange("Latitude %sd not in [-90d, 90d]", str(geo.Lat.Degrees()))
	}
	lambda := normalizeLon(geo.Lng.Radians() - centralMeridian.Radians())
	if err := t.checkLatLon(latitude, lambda); err != nil {
		return MapCoords{}, PointScale{}, err
	}

	cosLam := math.Cos(lambda)
	sinLam := math.Sin(lambda)
	cosPhi := math.Cos(latitude)
	sinPhi := math.Sin(latitude)

	//  Ellipsoid to sphere: geodetic latitude, Phi, to conformal latitude,
	//  Chi.  Only the cosine and sine of Chi are needed.
	p := math.Exp(t.eps * aTanH(t.eps*sinPhi))
	part1 := (1 + sinPhi) / p
	part2 := (1 - sinPhi) * p
	denom := part1 + part2
	cosChi := 2 * cosPhi / denom
	sinChi := (part1 - part2) / denom

	//  Sphere to first plane: spherical transverse Mercator (u,v).
	U := aTanH(cosChi * sinLam)
	V := math.Atan2(sinChi, cosChi*cosLam)

	var c2ku, s2ku, c2kv, s2kv [nTerms]float64
	hyperbolicSeries(2*U, c2ku[:], s2ku[:])
	trigSeries(2*V, c2kv[:], s2kv[:])

	//  First plane to second plane, accumulating the derivative of the
	//  mapping for the convergence and scale.
	xStar, yStar := 0.0, 0.0
	zr, zi := 0.0, 0.0
	for k := nTerms - 1; k >= 0; k-- {
		a := t.aCoeff[k]
		twoJ := float64(2 * (k + 1))
		xStar += a * s2ku[k] * c2kv[k]
		yStar += a * c2ku[k] * s2kv[k]
		zr += twoJ * a * c2kv[k] * c2ku[k]
		zi -= twoJ * a * s2kv[k] * s2ku[k]
	}
	xStar += U
	yStar += V
	zr++

	gamma := math.Atan2(sinChi*sinLam, cosLam) - math.Atan2(zi, zr)
	k := t.k0R4oa * math.Hypot(zr, zi) * t.conformalFactor(sinPhi) * math.Cosh(U)

	return MapCoords{
			Easting:  t.k0R4 * xStar,
			Northing: t.k0R4 * yStar,
		}, PointScale{
			Convergence: s1.Angle(gamma),
			Scale:       k,
		}, nil
}

// Reverse converts transverse Mercator coordinates about the central meridian
// to a geodetic coordinate.  The longitude is returned in (-180, 180].
func (t *TransverseMercator) Reverse(centralMeridian s1.Angle, xy MapCoords) (s2.LatLng, PointScale, error) {
	if !(math.Abs(xy.Easting) <= t.deltaEasting) {
		return s2.LatLng{}, PointScale{}, outOfRange("Easting %skm not in [%skm, %skm]", str(xy.Easting/1000),
			str(-t.deltaEasting/1000), str(t.deltaEasting/1000))
	}
	if !(math.Abs(xy.Northing) <= t.deltaNorthing) {
		return s2.LatLng{}, PointScale{}, outOfRange("Northing %skm not in [%skm, %skm]", str(xy.Northing/1000),
			str(-t.deltaNorthing/1000), str(t.deltaNorthing/1000))
	}

	//  Undo scale change and factor R4
	xStar := t.k0R4inv * xy.Easting
	yStar := t.k0R4inv * xy.Northing

	var c2kx, s2kx, c2ky, s2ky [nTerms]float64
	hyperbolicSeries(2*xStar, c2kx[:], s2kx[:])
	trigSeries(2*yStar, c2ky[:], s2ky[:])

	//  Second plane (x*, y*) to first plane (u, v)
	U, V := 0.0, 0.0
	wr, wi := 0.0, 0.0
	for k := nTerms - 1; k >= 0; k-- {
		b := t.bCoeff[k]
		twoJ := float64(2 * (k + 1))
		U += b * s2kx[k] * c2ky[k]
		V += b * c2kx[k] * s2ky[k]
		wr += twoJ * b * c2ky[k] * c2kx[k]
		wi -= twoJ * b * s2ky[k] * s2kx[k]
	}
	U += xStar
	V += yStar
	wr++

	//  First plane to sphere
	coshU := math.Cosh(U)
	sinhU := math.Sinh(U)
	cosV := math.Cos(V)
	sinV := math.Sin(V)

	lambda := math.Atan2(sinhU, cosV)
	latitude := geodeticLat(sinV/coshU, t.eps)

	gamma := math.Atan2(wi, wr) + math.Atan2(sinV*math.Tanh(U), cosV)
	k := t.k0R4oa / math.Hypot(wr, wi) * t.conformalFactor(math.Sin(latitude)) * coshU

	longitude := normalizeLon(centralMeridian.Radians() + lambda)
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)},
		PointScale{Convergence: s1.Angle(gamma), Scale: k}, nil
}

// geodeticLat recovers the geodetic latitude from the sine of the conformal
// latitude.
func geodeticLat(sinChi, e float64) float64 {
	sOld := 1.0e99
	s := sinChi
	onePlusSinChi := 1.0 + sinChi
	oneMinusSinChi := 1.0 - sinChi

	for n := 0; n < 30; n++ {
		p := math.Exp(e * aTanH(e*s))
		pSq := p * p
		s = (onePlusSinChi*pSq - oneMinusSinChi) /
			(onePlusSinChi*pSq + oneMinusSinChi)

		if math.Abs(s-sOld) < 1.0e-14 {
			break
		}
		sOld = s
	}
	return math.Asin(s)
}

// hyperbolicSeries fills c[k] = cosh(2(k+1)x) and s[k] = sinh(2(k+1)x) given
// twoX = 2x.
func hyperbolicSeries(twoX float64, c, s []float64) {
	c[0] = math.Cosh(twoX)
	s[0] = math.Sinh(twoX)
	for k := 1; k < len(c); k++ {
		c[k] = c[k-1]*c[0] + s[k-1]*s[0]
		s[k] = s[k-1]*c[0] + c[k-1]*s[0]
	}
}

// trigSeries fills c[k] = cos(2(k+1)y) and s[k] = sin(2(k+1)y) given
// twoY = 2y.
func trigSeries(twoY float64, c, s []float64) {
	c[0] = math.Cos(twoY)
	s[0] = math.Sin(twoY)
	for k := 1; k < len(c); k++ {
		c[k] = c[k-1]*c[0] - s[k-1]*s[0]
		s[k] = s[k-1]*c[0] + c[k-1]*s[0]
	}
}
