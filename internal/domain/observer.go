package domain

import "math"

// Observer is a topocentric location on or near the Earth's surface:
// geodetic latitude in degrees [-90, +90], longitude in degrees (east
// positive), and height in meters above the reference ellipsoid.
type Observer struct {
	Latitude  float64
	Longitude float64
	Height    float64
}

// TerrestrialPosition maps an observer and a Greenwich apparent sidereal
// time (hours) to a geocentric Earth-fixed position vector in AU,
// accounting for the oblateness of the reference ellipsoid.
func TerrestrialPosition(obs Observer, siderealHours float64) Vector3 {
	eradKM := earthEquatorialRadiusMeters / 1000.0
	df := 1.0 - earthFlattening
	df2 := df * df

	phi := Deg2Rad(obs.Latitude)
	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)

	c := 1.0 / math.Sqrt(cosphi*cosphi+df2*sinphi*sinphi)
	s := df2 * c

	htKM := obs.Height / 1000.0
	ach := eradKM*c + htKM
	ash := eradKM*s + htKM

	// Local sidereal angle: Greenwich sidereal time plus east longitude.
	stlocl := Deg2Rad(15.0*siderealHours + obs.Longitude)
	sinst := math.Sin(stlocl)
	cosst := math.Cos(stlocl)

	return Vector3{
		X: ach * cosphi * cosst / kmPerAU,
		Y: ach * cosphi * sinst / kmPerAU,
		Z: ash * sinphi / kmPerAU,
	}
}

// GeoVector returns the observer's geocentric position in the J2000 mean
// equatorial frame for the given instant: the Earth-fixed vector for the
// apparent sidereal time, un-nutated to the mean equator of date, then
// precessed to J2000.0.
func GeoVector(t AstroTime, obs Observer) (Vector3, error) {
	gast := SiderealTime(t)
	pos := TerrestrialPosition(obs, gast)
	pos = Nutate(t, NutateTrueToMean, pos)
	out, err := Precession(t.TT, pos, 0.0)
	if err != nil {
		return Vector3{}, err
	}
	return out, nil
}
