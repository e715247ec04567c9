// Package domain implements the IAU 2000B time and Earth-orientation
// reduction pipeline: Delta-T interpolation, nutation, precession, sidereal
// time, and observer geometry. Every function is a pure computation over
// immutable inputs and compiled-in constant tables, safe for concurrent use.
package domain

import "math"

const (
	// j2000JD is the Julian Date of the J2000.0 epoch, 2000-01-01T12:00:00.
	j2000JD = 2451545.0

	// mjdBasis converts Julian Date to Modified Julian Date.
	mjdBasis = 2400000.5

	// y2000MJD is the MJD of the J2000.0 epoch (51544.5).
	y2000MJD = j2000JD - mjdBasis

	deg2Rad = 0.017453292519943296
	rad2Deg = 57.295779513082321

	// asec360 is a full circle in arcseconds.
	asec360 = 1296000.0

	// asec2Rad converts arcseconds to radians.
	asec2Rad = 4.848136811095359935899141e-6

	secondsPerDay = 86400.0
	millisPerDay  = 86400000.0

	// kmPerAU is the astronomical unit in kilometers.
	kmPerAU = 1.4959787069098932e+8

	// earthEquatorialRadiusMeters is the IERS mean equatorial radius.
	earthEquatorialRadiusMeters = 6378136.6

	// earthFlattening is the oblateness of the reference ellipsoid.
	earthFlattening = 0.003352819697896

	// meanSynodicMonth is the mean time between new moons, in days.
	meanSynodicMonth = 29.530588

	// earthOrbitalPeriodDays is the sidereal year in days.
	earthOrbitalPeriodDays = 365.256

	pi2 = 2.0 * math.Pi
)
