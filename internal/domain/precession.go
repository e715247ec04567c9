package domain

import "math"

// Precession rotates an equatorial position vector between the J2000.0
// mean equator and the mean equator of another epoch. Epochs are
// terrestrial-time day counts since J2000.0, and exactly one of tt1, tt2
// must be zero: a zero epoch denotes J2000.0 and fixes the direction of
// the rotation. Both or neither being zero violates the caller contract
// and yields ErrPrecessionEpoch.
//
// The rotation is built per call from the IAU 2006 polynomial Euler angles
// (psiA, omegaA, chiA) composed as four elementary rotations; rotating
// toward J2000.0 applies the transpose.
func Precession(tt1 float64, pos Vector3, tt2 float64) (Vector3, error) {
	if (tt1 == 0.0) == (tt2 == 0.0) {
		return Vector3{}, ErrPrecessionEpoch
	}

	eps0 := 84381.406

	t := (tt2 - tt1) / 36525.0
	if tt2 == 0.0 {
		t = -t
	}

	psia := ((((-0.0000000951*t+
		0.000132851)*t-
		0.00114045)*t-
		1.0790069)*t +
		5038.481507) * t

	omegaa := ((((0.0000003337*t-
		0.000000467)*t-
		0.00772503)*t+
		0.0512623)*t-
		0.025754)*t + eps0

	chia := ((((-0.0000000560*t+
		0.000170663)*t-
		0.00121197)*t-
		2.3814292)*t +
		10.556403) * t

	eps0 *= asec2Rad
	psia *= asec2Rad
	omegaa *= asec2Rad
	chia *= asec2Rad

	sa := math.Sin(eps0)
	ca := math.Cos(eps0)
	sb := math.Sin(-psia)
	cb := math.Cos(-psia)
	sc := math.Sin(-omegaa)
	cc := math.Cos(-omegaa)
	sd := math.Sin(chia)
	cd := math.Cos(chia)

	xx := cd*cb - sb*sd*cc
	yx := cd*sb*ca + sd*cc*cb*ca - sa*sd*sc
	zx := cd*sb*sa + sd*cc*cb*sa + ca*sd*sc
	xy := -sd*cb - sb*cd*cc
	yy := -sd*sb*ca + cd*cc*cb*ca - sa*cd*sc
	zy := -sd*sb*sa + cd*cc*cb*sa + ca*cd*sc
	xz := sb * sc
	yz := -sc*cb*ca - sa*cc
	zz := -sc*cb*sa + cc*ca

	if tt2 == 0.0 {
		// Rotate from the other epoch to J2000.0 (transposed matrix).
		return Vector3{
			X: xx*pos.X + xy*pos.Y + xz*pos.Z,
			Y: yx*pos.X + yy*pos.Y + yz*pos.Z,
			Z: zx*pos.X + zy*pos.Y + zz*pos.Z,
		}, nil
	}

	// Rotate from J2000.0 to the other epoch.
	return Vector3{
		X: xx*pos.X + yx*pos.Y + zx*pos.Z,
		Y: xy*pos.X + yy*pos.Y + zy*pos.Z,
		Z: xz*pos.X + yz*pos.Y + zz*pos.Z,
	}, nil
}
