package domain

import "math"

// EarthTilt bundles the per-instant Earth orientation angles: nutation in
// longitude and obliquity (arcseconds), mean and true obliquity of the
// ecliptic (degrees), and the equation of the equinoxes (sidereal hours).
type EarthTilt struct {
	TT      float64
	DPsi    float64
	DEps    float64
	MeanObl float64
	TrueObl float64
	EqEq    float64
}

// NewEarthTilt derives the Earth orientation angles for an instant from
// the nutation series and the mean-obliquity polynomial.
func NewEarthTilt(t AstroTime) EarthTilt {
	n := Iau2000b(t)
	mobl := MeanObliquity(t.TT)
	return EarthTilt{
		TT:      t.TT,
		DPsi:    n.DPsi,
		DEps:    n.DEps,
		MeanObl: mobl,
		TrueObl: mobl + n.DEps/3600.0,
		EqEq:    n.DPsi * math.Cos(Deg2Rad(mobl)) / 15.0,
	}
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees for
// a terrestrial-time day count since J2000.0 (IAU 2006 polynomial).
func MeanObliquity(tt float64) float64 {
	t := tt / 36525.0
	asec := ((((-0.0000000434*t-
		0.000000576)*t+
		0.00200340)*t-
		0.0001831)*t-
		46.836769)*t + 84381.406
	return asec / 3600.0
}

// EarthRotationAngle returns the geocentric rotation angle of the Earth in
// degrees [0, 360) for a universal-time day count since J2000.0.
func EarthRotationAngle(ut float64) float64 {
	thet1 := 0.7790572732640 + 0.00273781191135448*ut
	thet3 := math.Mod(ut, 1.0)
	theta := 360.0 * math.Mod(thet1+thet3, 1.0)
	if theta < 0.0 {
		theta += 360.0
	}
	return theta
}

// SiderealTime returns Greenwich apparent sidereal time in hours [0, 24)
// for the given instant: the Earth rotation angle corrected by the
// precession-in-RA polynomial and the equation of the equinoxes.
func SiderealTime(t AstroTime) float64 {
	tc := t.TT / 36525.0
	eqeq := 15.0 * NewEarthTilt(t).EqEq
	theta := EarthRotationAngle(t.UT)
	st := eqeq + 0.014506 +
		((((-0.0000000368*tc-
			0.000029956)*tc-
			0.00000044)*tc+
			1.3915817)*tc+
			4612.156534)*tc
	gst := math.Mod(st/3600.0+theta, 360.0) / 15.0
	if gst < 0.0 {
		gst += 24.0
	}
	return gst
}

// EclipticToEquatorial rotates a mean-ecliptic-of-date vector onto the
// mean equator of date using the mean obliquity for the instant.
func EclipticToEquatorial(t AstroTime, ecl Vector3) Vector3 {
	obl := Deg2Rad(MeanObliquity(t.TT))
	cosObl := math.Cos(obl)
	sinObl := math.Sin(obl)
	return Vector3{
		X: ecl.X,
		Y: ecl.Y*cosObl - ecl.Z*sinObl,
		Z: ecl.Y*sinObl + ecl.Z*cosObl,
	}
}
