package kepler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const tleLineLength = 69

// TLE is a decoded NORAD two-line element set. Angles are kept in degrees
// and mean motion in revolutions per day, as they appear on the wire.
type TLE struct {
	Name string

	SatelliteNumber int
	Classification  rune
	International   string // launch designator, e.g. 98067A
	EpochYear       int
	EpochDay        float64 // day of year with fraction, 1-based
	MeanMotionDot   float64 // ṅ/2, rev/day²
	MeanMotionDDot  float64 // n̈/6, rev/day³
	Bstar           float64
	ElementNumber   int

	Inclination      float64
	RAAN             float64
	Eccentricity     float64
	ArgOfPerigee     float64
	MeanAnomaly      float64
	MeanMotion       float64
	RevolutionNumber int
}

// EpochTime returns the epoch as a UTC time.
func (t *TLE) EpochTime() time.Time {
	whole := math.Floor(t.EpochDay)
	start := time.Date(t.EpochYear, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(whole)-1)
	ns := math.Round((t.EpochDay - whole) * secondsPerDay * 1e9)
	return start.Add(time.Duration(ns))
}

// SemiMajorAxis returns the semi-major axis in km implied by the mean motion
// around the Earth.
func (t *TLE) SemiMajorAxis() (float64, error) {
	n, err := t.meanMotionRadPerSec()
	if err != nil {
		return 0, err
	}
	return math.Cbrt(MuEarth / (n * n)), nil
}

func (t *TLE) meanMotionRadPerSec() (float64, error) {
	if err := requirePositive("TLE", param{"meanMotion", t.MeanMotion}); err != nil {
		return 0, err
	}
	return t.MeanMotion * twoPi / secondsPerDay, nil
}

// Elements converts the set to two-body Elements around the Earth, with the
// Earth's J2 so StateAt applies secular node and perigee drift.
func (t *TLE) Elements() (Elements, error) {
	a, err := t.SemiMajorAxis()
	if err != nil {
		return Elements{}, err
	}
	el := Elements{
		Name:          t.Name,
		SemiMajorAxis: a,
		Eccentricity:  t.Eccentricity,
		Inclination:   Radians(t.Inclination),
		RAAN:          Radians(t.RAAN),
		ArgOfPerigee:  Radians(t.ArgOfPerigee),
		MeanAnomaly:   Radians(t.MeanAnomaly),
		Epoch:         t.EpochTime(),
		Mu:            MuEarth,
		J2:            EarthJ2,
		BodyRadius:    EarthRadius,
	}
	if err := el.Validate(); err != nil {
		return Elements{}, err
	}
	return el, nil
}

// ParseTLE decodes a two-line element set, optionally preceded by a name line.
// Both checksums are verified.
func ParseTLE(input string) (*TLE, error) {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(input), "\n") {
		lines = append(lines, strings.TrimSpace(l))
	}

	tle := &TLE{}
	switch len(lines) {
	case 2:
	case 3:
		tle.Name = lines[0]
		lines = lines[1:]
	default:
		return nil, fmt.Errorf("%w: expected 2 or 3 lines, got %d", ErrInvalidElementSet, len(lines))
	}

	for i, l := range lines {
		if len(l) != tleLineLength {
			return nil, fmt.Errorf("%w: line %d has %d characters, want %d", ErrInvalidElementSet, i+1, len(l), tleLineLength)
		}
		if want := byte('1' + i); l[0] != want {
			return nil, fmt.Errorf("%w: line %d must begin with %q", ErrInvalidElementSet, i+1, want)
		}
		if sum, want := checksum(l), int(l[68]-'0'); sum != want {
			return nil, fmt.Errorf("%w: line %d checksum is %d, computed %d", ErrInvalidElementSet, i+1, want, sum)
		}
	}

	if err := tle.decodeLine1(lines[0]); err != nil {
		return nil, fmt.Errorf("%w: line 1: %w", ErrInvalidElementSet, err)
	}
	if err := tle.decodeLine2(lines[1]); err != nil {
		return nil, fmt.Errorf("%w: line 2: %w", ErrInvalidElementSet, err)
	}
	return tle, nil
}

// fieldReader decodes fixed columns of one TLE line and keeps the first error.
type fieldReader struct {
	line string
	err  error
}

func (r *fieldReader) text(from, to int) string {
	return strings.TrimSpace(r.line[from:to])
}

func (r *fieldReader) atoi(from, to int, name string) int {
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(r.text(from, to))
	if err != nil {
		r.err = fmt.Errorf("invalid %s: %w", name, err)
	}
	return v
}

func (r *fieldReader) atof(from, to int, name string) float64 {
	if r.err != nil {
		return 0
	}
	s := r.text(from, to)
	// ".00033214" and "-.00033214" omit the leading zero.
	switch {
	case strings.HasPrefix(s, "."):
		s = "0" + s
	case strings.HasPrefix(s, "-."):
		s = "-0" + s[1:]
	case strings.HasPrefix(s, "+."):
		s = "0" + s[1:]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.err = fmt.Errorf("invalid %s %q: %w", name, r.line[from:to], err)
	}
	return v
}

// impliedDecimal reads fields such as " 57704-3", meaning 0.57704e-3.
func (r *fieldReader) impliedDecimal(from, to int, name string) float64 {
	if r.err != nil {
		return 0
	}
	mantissa := r.atoi(from, to-2, name+" mantissa")
	exponent := r.atoi(to-2, to, name+" exponent")
	if r.err != nil {
		return 0
	}
	return float64(mantissa) * 1e-5 * math.Pow(10, float64(exponent))
}

func (t *TLE) decodeLine1(line string) error {
	r := &fieldReader{line: line}

	t.SatelliteNumber = r.atoi(2, 7, "satellite number")
	t.Classification = rune(line[7])
	t.International = r.text(9, 17)

	yy := r.atoi(18, 20, "epoch year")
	if yy < 57 {
		t.EpochYear = 2000 + yy
	} else {
		t.EpochYear = 1900 + yy
	}
	t.EpochDay = r.atof(20, 32, "epoch day")
	t.MeanMotionDot = r.atof(33, 43, "mean motion dot")
	t.MeanMotionDDot = r.impliedDecimal(44, 52, "mean motion ddot")
	t.Bstar = r.impliedDecimal(53, 61, "bstar")
	t.ElementNumber = r.atoi(64, 68, "element number")
	return r.err
}

func (t *TLE) decodeLine2(line string) error {
	r := &fieldReader{line: line}

	if num := r.atoi(2, 7, "satellite number"); r.err == nil && num != t.SatelliteNumber {
		return fmt.Errorf("satellite number %d does not match line 1 (%d)", num, t.SatelliteNumber)
	}
	t.Inclination = r.atof(8, 16, "inclination")
	t.RAAN = r.atof(17, 25, "right ascension")
	// Eccentricity carries an implied leading "0.".
	if r.err == nil {
		e, err := strconv.ParseFloat("0."+r.text(26, 33), 64)
		if err != nil {
			r.err = fmt.Errorf("invalid eccentricity %q: %w", line[26:33], err)
		}
		t.Eccentricity = e
	}
	t.ArgOfPerigee = r.atof(34, 42, "argument of perigee")
	t.MeanAnomaly = r.atof(43, 51, "mean anomaly")
	t.MeanMotion = r.atof(52, 63, "mean motion")
	t.RevolutionNumber = r.atoi(63, 68, "revolution number")
	return r.err
}

// checksum is the modulo-10 sum of the digits in the first 68 columns, with
// '-' counting as 1.
func checksum(line string) int {
	sum := 0
	for _, c := range line[:68] {
		switch {
		case c >= '0' && c <= '9':
			sum += int(c - '0')
		case c == '-':
			sum++
		}
	}
	return sum % 10
}
