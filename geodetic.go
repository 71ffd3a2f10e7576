package kepler

import (
	"math"
	"time"
)

// Geodetic is a point above the WGS-84 ellipsoid.
type Geodetic struct {
	Latitude  float64 `json:"latitude"`  // degrees, north positive
	Longitude float64 `json:"longitude"` // degrees in [-180, 180), east positive
	Altitude  float64 `json:"altitude"`  // km above the ellipsoid
}

// JulianDate returns the Julian date of t.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	y, m := float64(t.Year()), float64(t.Month())
	if m <= 2 {
		y--
		m += 12
	}
	century := math.Floor(y / 100)
	b := 2 - century + math.Floor(century/4)
	day := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(t.Day()) + b - 1524.5

	sinceMidnight := t.Sub(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return day + sinceMidnight.Seconds()/secondsPerDay
}

// GreenwichSiderealTime returns the Greenwich mean sidereal angle at t in
// radians, in [0, 2π).
func GreenwichSiderealTime(t time.Time) float64 {
	d := JulianDate(t) - j2000
	c := d / 36525
	deg := 280.46061837 + 360.98564736629*d + 0.000387933*c*c - c*c*c/38710000
	return NormalizeAngle(Radians(deg))
}

// SubPoint returns the geodetic point under an Earth-centred inertial position
// (km) at time t.
func SubPoint(pos Vector, t time.Time) (Geodetic, error) {
	const fn = "SubPoint"
	if err := requireFinite(fn, param{"x", pos.X}, param{"y", pos.Y}, param{"z", pos.Z}); err != nil {
		return Geodetic{}, err
	}
	if pos.Norm() == 0 {
		return Geodetic{}, rangeError(fn, "|r|", 0, ReasonZero)
	}

	// Inertial to Earth-fixed is a rotation by -GMST about Z.
	ecef := Rot3(-GreenwichSiderealTime(t)).Apply(pos)

	e2 := EarthFlattening * (2 - EarthFlattening)
	rxy := math.Hypot(ecef.X, ecef.Y)

	// Start from the planetocentric latitude and refine toward the geodetic one.
	lat, err := PlanetocentricLatitude(ecef)
	if err != nil {
		return Geodetic{}, err
	}
	var n float64
	for i := 0; i < 10; i++ {
		sinLat := math.Sin(lat)
		n = EarthRadius / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(ecef.Z+n*e2*sinLat, rxy)
		done := math.Abs(next-lat) < 1e-12
		lat = next
		if done {
			break
		}
	}
	sinLat, cosLat := math.Sincos(lat)
	n = EarthRadius / math.Sqrt(1-e2*sinLat*sinLat)

	var alt float64
	if math.Abs(cosLat) < 1e-10 {
		alt = math.Abs(ecef.Z) - EarthRadius*math.Sqrt(1-e2)
	} else {
		alt = rxy/cosLat - n
	}

	lon := Degrees(NormalizeAngle(math.Atan2(ecef.Y, ecef.X) + math.Pi)) - 180
	return Geodetic{Latitude: Degrees(lat), Longitude: lon, Altitude: alt}, nil
}
