package domain

import "math"

// Vector3 is a position or direction in a right-handed equatorial frame.
// Components are in astronomical units for positions. The reference frame
// (Earth-fixed, true equator of date, or J2000 mean equator) is implied by
// the producing function, not carried on the value.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Length returns the Euclidean length of the vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Equatorial holds equatorial coordinates: right ascension in sidereal
// hours [0, 24), declination in degrees [-90, +90], and distance in AU.
type Equatorial struct {
	RA   float64
	Dec  float64
	Dist float64
}

// VectorToEquatorial converts an equatorial position vector to angular
// coordinates. A vector of zero length has no direction and yields
// ErrDegenerateVector. A vector on the polar axis has indeterminate right
// ascension, reported as RA=0 with Dec=+90 or -90.
func VectorToEquatorial(pos Vector3) (Equatorial, error) {
	xyproj := pos.X*pos.X + pos.Y*pos.Y
	dist := math.Sqrt(xyproj + pos.Z*pos.Z)

	if xyproj == 0.0 {
		if pos.Z == 0.0 {
			return Equatorial{}, ErrDegenerateVector
		}
		dec := 90.0
		if pos.Z < 0.0 {
			dec = -90.0
		}
		return Equatorial{RA: 0.0, Dec: dec, Dist: dist}, nil
	}

	ra := math.Atan2(pos.Y, pos.X) / (deg2Rad * 15.0)
	if ra < 0.0 {
		ra += 24.0
	}
	dec := Rad2Deg(math.Atan2(pos.Z, math.Sqrt(xyproj)))

	return Equatorial{RA: ra, Dec: dec, Dist: dist}, nil
}

// AngleBetween returns the angle between two vectors in degrees [0, 180].
// Either vector being too small to define a direction yields
// ErrDegenerateVector. The dot product is clamped so antiparallel and
// parallel vectors return exactly 180 and 0.
func AngleBetween(a, b Vector3) (float64, error) {
	r := a.Length() * b.Length()
	if r < 1.0e-8 {
		return 0, ErrDegenerateVector
	}
	dot := (a.X*b.X + a.Y*b.Y + a.Z*b.Z) / r
	if dot <= -1.0 {
		return 180.0, nil
	}
	if dot >= +1.0 {
		return 0.0, nil
	}
	return Rad2Deg(math.Acos(dot)), nil
}

// NormalizeLongitude reduces a longitude-like angle into [0, 360) degrees.
func NormalizeLongitude(lon float64) float64 {
	for lon < 0.0 {
		lon += 360.0
	}
	for lon >= 360.0 {
		lon -= 360.0
	}
	return lon
}

// LongitudeOffset reduces a longitude difference into (-180, +180] degrees.
func LongitudeOffset(diff float64) float64 {
	offset := diff
	for offset <= -180.0 {
		offset += 360.0
	}
	for offset > 180.0 {
		offset -= 360.0
	}
	return offset
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * deg2Rad
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * rad2Deg
}
