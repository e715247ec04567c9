package domain

import "math"

// Body identifies a solar-system body.
type Body int

// Recognized bodies. The planet codes double as indexes into the orbital
// period table.
const (
	Mercury Body = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Sun
	Moon
)

// BodyInvalid is the sentinel for an unrecognized body.
const BodyInvalid Body = -1

var bodyNames = []string{
	"Mercury",
	"Venus",
	"Earth",
	"Mars",
	"Jupiter",
	"Saturn",
	"Uranus",
	"Neptune",
	"Pluto",
	"Sun",
	"Moon",
}

// planetOrbitalPeriod holds sidereal orbital periods in days, indexed by
// planet body code Mercury..Pluto.
var planetOrbitalPeriod = []float64{
	87.969,
	224.701,
	earthOrbitalPeriodDays,
	686.980,
	4332.589,
	10759.22,
	30685.4,
	60189.0,
	90560.0,
}

// String returns the body name, or "Invalid" for unrecognized codes.
func (b Body) String() string {
	if b < Mercury || int(b) >= len(bodyNames) {
		return "Invalid"
	}
	return bodyNames[b]
}

// BodyFromName resolves a body name (case-sensitive, as listed by String)
// to its code. Unknown names yield ErrInvalidBody.
func BodyFromName(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return BodyInvalid, ErrInvalidBody
}

// OrbitalPeriod returns the sidereal orbital period of a planet in days.
// Only Mercury through Pluto have tabulated periods; other codes yield
// ErrInvalidBody.
func (b Body) OrbitalPeriod() (float64, error) {
	if b < Mercury || int(b) >= len(planetOrbitalPeriod) {
		return 0, ErrInvalidBody
	}
	return planetOrbitalPeriod[b], nil
}

// SynodicPeriod returns the mean time in days between successive identical
// Sun-Earth-body configurations. The Earth has no synodic period relative
// to itself and yields ErrEarthNotAllowed; the Moon returns the mean
// synodic month.
func SynodicPeriod(b Body) (float64, error) {
	if b == Earth {
		return 0, ErrEarthNotAllowed
	}
	if b == Moon {
		return meanSynodicMonth, nil
	}
	if b < Mercury || int(b) >= len(planetOrbitalPeriod) {
		return 0, ErrInvalidBody
	}
	return math.Abs(earthOrbitalPeriodDays / (earthOrbitalPeriodDays/planetOrbitalPeriod[b] - 1.0)), nil
}
