package solar

import (
	"math"
	"time"
)

// Ephemeris holds the apparent solar position parameters for one instant.
// All angles are in degrees.
type Ephemeris struct {
	Longitude    float64 // geometric mean longitude for the mean equinox of date
	RA           float64 // apparent right ascension for the true equinox of date
	Dec          float64 // apparent declination
	AppLongitude float64 // apparent longitude
	Obliquity    float64 // true obliquity of the ecliptic
}

// DiskGeometry describes the orientation and size of the solar disk as seen
// from Earth.
type DiskGeometry struct {
	PDeg           float64 // position angle of the solar rotation pole
	B0Deg          float64 // heliographic latitude of the disk centre
	SemiDiamArcmin float64 // apparent semi-diameter of the disk
}

// SunPosition calculates solar ephemeris parameters using a truncated version
// of Newcomb's Sun, allowing for planetary and lunar perturbations in the
// solar longitude. Apparent coordinates are good to about one second of time.
func SunPosition(t time.Time) Ephemeris {
	// Julian days since epoch 1900 January 0.5
	dd := julianDate(t) - 2415020.0

	// Julian centuries from 1900.0
	T := dd / 36525.0

	// Sun's mean longitude, in arcseconds
	l := (279.6966780 + math.Mod(36000.7689250*T, 360.0)) * 3600.0

	// Equation of centre, using the Earth's mean anomaly
	me := 358.4758440 + math.Mod(35999.049750*T, 360.0)
	l += (6910.10-17.20*T)*sinDeg(me) + 72.30*sinDeg(2*me)

	// Venus perturbations
	mv := 212.603219 + math.Mod(58517.8038750*T, 360.0)
	l += 4.80*cosDeg(299.10170+mv-me) +
		5.50*cosDeg(148.31330+2*mv-2*me) +
		2.50*cosDeg(315.94330+2*mv-3*me) +
		1.60*cosDeg(345.25330+3*mv-4*me) +
		1.00*cosDeg(318.150+3*mv-5*me)

	// Mars perturbations
	mm := 319.5294250 + math.Mod(19139.858500*T, 360.0)
	l += 2.0*cosDeg(343.88830-2*mm+2*me) + 1.80*cosDeg(200.40170-2*mm+me)

	// Jupiter perturbations
	mj := 225.3283280 + math.Mod(3034.69202390*T, 360.0)
	l += 7.20*cosDeg(179.53170-mj+me) +
		2.60*cosDeg(263.21670-mj) +
		2.70*cosDeg(87.14500-2*mj+2*me) +
		1.60*cosDeg(109.49330-2*mj+me)

	// Lunar perturbation, using the Moon's mean elongation from the Sun
	d := 350.73768140 + math.Mod(445267.114220*T, 360.0)
	l += 6.50 * sinDeg(d)

	// Long-period term
	l += 6.40 * sinDeg(231.190+20.20*T)

	l = math.Mod(l+2592000.0, 1296000.0)
	longitude := l / 3600.0

	// Aberration
	l -= 20.5

	// Nutation, using the longitude of the Moon's mean node
	omega := 259.1832750 - math.Mod(1934.1420080*T, 360.0)
	l -= 17.20 * sinDeg(omega)

	// True obliquity
	obliquity := 23.4522940 - 0.01301250*T + 9.20*cosDeg(omega)/3600.0

	appLongitude := l / 3600.0
	ra := math.Atan2(sinDeg(appLongitude)*cosDeg(obliquity), cosDeg(appLongitude)) * 180 / math.Pi
	if ra < 0 {
		ra += 360
	}
	dec := math.Asin(sinDeg(appLongitude)*sinDeg(obliquity)) * 180 / math.Pi

	return Ephemeris{
		Longitude:    longitude,
		RA:           ra,
		Dec:          dec,
		AppLongitude: appLongitude,
		Obliquity:    obliquity,
	}
}

// Disk calculates the solar P angle, B0 latitude and semi-diameter as seen
// from Earth at the given time.
func Disk(t time.Time) DiskGeometry {
	de := julianDate(t) - 2415020.0

	eph := SunPosition(t)

	// Aberrated longitude
	lambda := eph.Longitude - 20.50/3600.0

	// Longitude of the ascending node of the Sun's equator on the ecliptic
	node := 73.6666660 + (50.250/3600.0)*((de/365.250)+50.0)
	arg := lambda - node

	// Position angle of the pole
	p := (math.Atan(-math.Tan(eph.Obliquity*math.Pi/180)*cosDeg(eph.AppLongitude)) +
		math.Atan(-0.127220*cosDeg(arg))) * 180 / math.Pi

	// Tilt of the rotation axis toward the observer
	b0 := math.Asin(0.12620*sinDeg(arg)) * 180 / math.Pi

	// Geocentric distance in AU, from the mean anomalies of Venus, Earth,
	// Mars and Jupiter and the Moon's elongation from the Sun
	T := de / 36525.0
	mv := 212.60 + math.Mod(58517.80*T, 360.0)
	me := 358.4760 + math.Mod(35999.04980*T, 360.0)
	mm := 319.50 + math.Mod(19139.860*T, 360.0)
	mj := 225.30 + math.Mod(3034.690*T, 360.0)
	d := 350.70 + math.Mod(445267.110*T, 360.0)

	r := 1.0001410 - (0.0167480-0.00004180*T)*cosDeg(me) -
		0.000140*cosDeg(2.0*me) +
		0.0000160*cosDeg(58.30+2.0*mv-2.0*me) +
		0.0000050*cosDeg(209.10+mv-me) +
		0.0000050*cosDeg(253.80-2.0*mm+2.0*me) +
		0.0000160*cosDeg(89.50-mj+me) +
		0.0000090*cosDeg(357.10-2.0*mj+2.0*me) +
		0.0000310*cosDeg(d)

	sd := math.Asin((RadiusKm/AU)/r) * 10800.0 / math.Pi

	return DiskGeometry{
		PDeg:           p,
		B0Deg:          b0,
		SemiDiamArcmin: sd,
	}
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Treat January/February as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5

	return jd
}

func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}

func cosDeg(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}
