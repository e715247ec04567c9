package domain

import (
	"fmt"
	"math"
	"time"
)

// AstroTime is an instant expressed in two continuous day counts measured
// from the J2000.0 epoch (2000-01-01T12:00:00Z): UT in universal time and
// TT in terrestrial time. TT = UT + DeltaT/86400 always holds, so a value
// is immutable once constructed.
type AstroTime struct {
	UT float64
	TT float64
}

// TimeFromUniversalDays constructs an AstroTime from a universal-time day
// count relative to J2000.0 noon.
func TimeFromUniversalDays(ut float64) AstroTime {
	return AstroTime{UT: ut, TT: terrestrialTime(ut)}
}

// MakeTime constructs an AstroTime from proleptic Gregorian calendar
// fields in universal time. The second may carry a fractional part.
func MakeTime(year, month, day, hour, minute int, second float64) AstroTime {
	return TimeFromUniversalDays(universalDays(year, month, day, hour, minute, second))
}

// Now returns the current instant.
func Now() AstroTime {
	n := time.Now().UTC()
	sec := float64(n.Second()) + float64(n.Nanosecond())/1e9
	return MakeTime(n.Year(), int(n.Month()), n.Day(), n.Hour(), n.Minute(), sec)
}

// AddDays returns the instant the given number of universal-time days
// later. The terrestrial time is rederived from the shifted UT.
func (t AstroTime) AddDays(days float64) AstroTime {
	return TimeFromUniversalDays(t.UT + days)
}

// terrestrialTime applies the Delta-T correction for the instant's MJD.
func terrestrialTime(ut float64) float64 {
	return ut + DeltaT(ut+y2000MJD)/secondsPerDay
}

// universalDays converts calendar fields to days since J2000.0 noon using
// the standard Julian Date algorithm (valid for all Gregorian dates of
// interest, including the full span of the Delta-T table).
func universalDays(year, month, day, hour, minute int, second float64) float64 {
	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(day) + b - 1524.5
	jd += (float64(hour) + float64(minute)/60.0 + second/3600.0) / 24.0

	return jd - j2000JD
}

// String formats the instant as an ISO-8601 UTC timestamp with millisecond
// precision, e.g. "2000-01-01T12:00:00.000Z". Round-tripping through
// ParseTime reproduces the instant to the millisecond.
func (t AstroTime) String() string {
	// Work in whole milliseconds from the epoch so formatting cannot
	// drift from the reparsed value.
	ms := int64(math.Round(t.UT * millisPerDay))

	// Shift by half a day so the day boundary falls at civil midnight.
	ms += int64(millisPerDay / 2)
	dayCount := floorDiv(ms, int64(millisPerDay))
	msOfDay := ms - dayCount*int64(millisPerDay)

	year, month, day := civilFromDayNumber(2451545 + dayCount)

	hour := msOfDay / 3600000
	msOfDay -= hour * 3600000
	minute := msOfDay / 60000
	msOfDay -= minute * 60000
	second := msOfDay / 1000
	milli := msOfDay - second*1000

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ",
		year, month, day, hour, minute, second, milli)
}

// ParseTime parses the ISO-8601 UTC format produced by String.
func ParseTime(s string) (AstroTime, error) {
	var year, month, day, hour, minute int
	var second float64
	n, err := fmt.Sscanf(s, "%d-%d-%dT%d:%d:%fZ", &year, &month, &day, &hour, &minute, &second)
	if err != nil || n != 6 {
		return AstroTime{}, fmt.Errorf("invalid time %q (expected yyyy-mm-ddThh:mm:ss.sssZ)", s)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return AstroTime{}, fmt.Errorf("invalid time %q: calendar fields out of range", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second >= 61 {
		return AstroTime{}, fmt.Errorf("invalid time %q: clock fields out of range", s)
	}
	return MakeTime(year, month, day, hour, minute, second), nil
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// civilFromDayNumber converts a Julian Day Number to a Gregorian calendar
// date using the Fliegel-Van Flandern algorithm.
func civilFromDayNumber(jdn int64) (year, month, day int64) {
	l := jdn + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	day = l - 2447*j/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return year, month, day
}
