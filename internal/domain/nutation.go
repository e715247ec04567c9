package domain

import "math"

// NutationAngles holds the IAU 2000B nutation in longitude (DPsi) and in
// obliquity (DEps), both in arcseconds.
type NutationAngles struct {
	DPsi float64
	DEps float64
}

// Iau2000b evaluates the truncated IAU 2000B nutation series for the given
// instant. Pure and side-effect free; costs 77 sine/cosine pairs per call.
func Iau2000b(t AstroTime) NutationAngles {
	tc := t.TT / 36525.0

	// Fundamental lunisolar arguments: linear polynomials in Julian
	// centuries, reduced modulo a full circle of arcseconds, in radians.
	el := math.Mod(485868.249036+tc*1717915923.2178, asec360) * asec2Rad
	elp := math.Mod(1287104.79305+tc*129596581.0481, asec360) * asec2Rad
	f := math.Mod(335779.526232+tc*1739527262.8478, asec360) * asec2Rad
	d := math.Mod(1072260.70369+tc*1602961601.2090, asec360) * asec2Rad
	om := math.Mod(450160.398036-tc*6962890.5431, asec360) * asec2Rad

	dp := 0.0
	de := 0.0
	for i := len(nutationTerms) - 1; i >= 0; i-- {
		term := &nutationTerms[i]
		arg := math.Mod(
			float64(term.L)*el+
				float64(term.LP)*elp+
				float64(term.F)*f+
				float64(term.D)*d+
				float64(term.Om)*om,
			pi2)
		sarg := math.Sin(arg)
		carg := math.Cos(arg)
		dp += (term.PsiSin+term.PsiSinT*tc)*sarg + term.PsiCos*carg
		de += (term.EpsCos+term.EpsCosT*tc)*carg + term.EpsSin*sarg
	}

	// Fixed empirical bias of the truncated model, in arcseconds.
	return NutationAngles{
		DPsi: -0.000135 + dp*1.0e-7,
		DEps: +0.000388 + de*1.0e-7,
	}
}

// NutationDirection selects which way Nutate rotates between the mean and
// true equator of date.
type NutationDirection int

const (
	// NutateMeanToTrue rotates from the mean equator of date to the true
	// equator of date.
	NutateMeanToTrue NutationDirection = iota

	// NutateTrueToMean applies the inverse (transposed) rotation.
	NutateTrueToMean
)

// Nutate rotates an equatorial position vector between the mean equator of
// date and the true equator of date for the given instant. The two
// directions are exact transposes of each other.
func Nutate(t AstroTime, direction NutationDirection, pos Vector3) Vector3 {
	tilt := NewEarthTilt(t)
	oblm := Deg2Rad(tilt.MeanObl)
	oblt := Deg2Rad(tilt.TrueObl)
	psi := tilt.DPsi * asec2Rad

	cobm := math.Cos(oblm)
	sobm := math.Sin(oblm)
	cobt := math.Cos(oblt)
	sobt := math.Sin(oblt)
	cpsi := math.Cos(psi)
	spsi := math.Sin(psi)

	xx := cpsi
	yx := -spsi * cobm
	zx := -spsi * sobm
	xy := spsi * cobt
	yy := cpsi*cobm*cobt + sobm*sobt
	zy := cpsi*sobm*cobt - cobm*sobt
	xz := spsi * sobt
	yz := cpsi*cobm*sobt - sobm*cobt
	zz := cpsi*sobm*sobt + cobm*cobt

	if direction == NutateMeanToTrue {
		return Vector3{
			X: xx*pos.X + yx*pos.Y + zx*pos.Z,
			Y: xy*pos.X + yy*pos.Y + zy*pos.Z,
			Z: xz*pos.X + yz*pos.Y + zz*pos.Z,
		}
	}

	return Vector3{
		X: xx*pos.X + xy*pos.Y + xz*pos.Z,
		Y: yx*pos.X + yy*pos.Y + yz*pos.Z,
		Z: zx*pos.X + zy*pos.Y + zz*pos.Z,
	}
}
