package domain

// DeltaTSample is one tabulated (epoch, TT-UT1) pair. The epoch is a
// Modified Julian Date and the correction is in seconds.
type DeltaTSample struct {
	MJD     float64
	Seconds float64
}

// deltaTTable holds historical and extrapolated Delta-T values, ascending
// by MJD. The values are empirical and must not be edited: downstream
// reductions depend on reproducing these corrections bit for bit.
var deltaTTable = []DeltaTSample{
	{MJD: -72638.0, Seconds: 38},
	{MJD: -65333.0, Seconds: 26},
	{MJD: -58028.0, Seconds: 21},
	{MJD: -50724.0, Seconds: 21.1},
	{MJD: -43419.0, Seconds: 13.5},
	{MJD: -39766.0, Seconds: 13.7},
	{MJD: -36114.0, Seconds: 14.8},
	{MJD: -32461.0, Seconds: 15.7},
	{MJD: -28809.0, Seconds: 15.6},
	{MJD: -25156.0, Seconds: 13.3},
	{MJD: -21504.0, Seconds: 12.6},
	{MJD: -17852.0, Seconds: 11.2},
	{MJD: -14200.0, Seconds: 11.13},
	{MJD: -10547.0, Seconds: 7.95},
	{MJD: -6895.0, Seconds: 6.22},
	{MJD: -3242.0, Seconds: 6.55},
	{MJD: -1416.0, Seconds: 7.26},
	{MJD: 410.0, Seconds: 7.35},
	{MJD: 2237.0, Seconds: 5.92},
	{MJD: 4063.0, Seconds: 1.04},
	{MJD: 5889.0, Seconds: -3.19},
	{MJD: 7715.0, Seconds: -5.36},
	{MJD: 9542.0, Seconds: -5.74},
	{MJD: 11368.0, Seconds: -5.86},
	{MJD: 13194.0, Seconds: -6.41},
	{MJD: 15020.0, Seconds: -2.70},
	{MJD: 16846.0, Seconds: 3.92},
	{MJD: 18672.0, Seconds: 10.38},
	{MJD: 20498.0, Seconds: 17.19},
	{MJD: 22324.0, Seconds: 21.41},
	{MJD: 24151.0, Seconds: 23.63},
	{MJD: 25977.0, Seconds: 24.02},
	{MJD: 27803.0, Seconds: 23.91},
	{MJD: 29629.0, Seconds: 24.35},
	{MJD: 31456.0, Seconds: 26.76},
	{MJD: 33282.0, Seconds: 29.15},
	{MJD: 35108.0, Seconds: 31.07},
	{MJD: 36934.0, Seconds: 33.150},
	{MJD: 38761.0, Seconds: 35.738},
	{MJD: 40587.0, Seconds: 40.182},
	{MJD: 42413.0, Seconds: 45.477},
	{MJD: 44239.0, Seconds: 50.540},
	{MJD: 44605.0, Seconds: 51.3808},
	{MJD: 44970.0, Seconds: 52.1668},
	{MJD: 45335.0, Seconds: 52.9565},
	{MJD: 45700.0, Seconds: 53.7882},
	{MJD: 46066.0, Seconds: 54.3427},
	{MJD: 46431.0, Seconds: 54.8712},
	{MJD: 46796.0, Seconds: 55.3222},
	{MJD: 47161.0, Seconds: 55.8197},
	{MJD: 47527.0, Seconds: 56.3000},
	{MJD: 47892.0, Seconds: 56.8553},
	{MJD: 48257.0, Seconds: 57.5653},
	{MJD: 48622.0, Seconds: 58.3092},
	{MJD: 48988.0, Seconds: 59.1218},
	{MJD: 49353.0, Seconds: 59.9845},
	{MJD: 49718.0, Seconds: 60.7853},
	{MJD: 50083.0, Seconds: 61.6287},
	{MJD: 50449.0, Seconds: 62.2950},
	{MJD: 50814.0, Seconds: 62.9659},
	{MJD: 51179.0, Seconds: 63.4673},
	{MJD: 51544.0, Seconds: 63.8285},
	{MJD: 51910.0, Seconds: 64.0908},
	{MJD: 52275.0, Seconds: 64.2998},
	{MJD: 52640.0, Seconds: 64.4734},
	{MJD: 53005.0, Seconds: 64.5736},
	{MJD: 53371.0, Seconds: 64.6876},
	{MJD: 53736.0, Seconds: 64.8452},
	{MJD: 54101.0, Seconds: 65.1464},
	{MJD: 54466.0, Seconds: 65.4573},
	{MJD: 54832.0, Seconds: 65.7768},
	{MJD: 55197.0, Seconds: 66.0699},
	{MJD: 55562.0, Seconds: 66.3246},
	{MJD: 55927.0, Seconds: 66.6030},
	{MJD: 56293.0, Seconds: 66.9069},
	{MJD: 56658.0, Seconds: 67.2810},
	{MJD: 57023.0, Seconds: 67.6439},
	{MJD: 57388.0, Seconds: 68.1024},
	{MJD: 57754.0, Seconds: 68.5927},
	{MJD: 58119.0, Seconds: 68.9676},
	{MJD: 58484.0, Seconds: 69.2201},
	{MJD: 58849.0, Seconds: 69.87},
	{MJD: 59214.0, Seconds: 70.39},
	{MJD: 59580.0, Seconds: 70.91},
	{MJD: 59945.0, Seconds: 71.40},
	{MJD: 60310.0, Seconds: 71.88},
	{MJD: 60675.0, Seconds: 72.36},
	{MJD: 61041.0, Seconds: 72.83},
	{MJD: 61406.0, Seconds: 73.32},
	{MJD: 61680.0, Seconds: 73.66},
}

// DeltaT returns the TT-UT1 correction in seconds for the given Modified
// Julian Date. Inside the tabulated range the value is linearly
// interpolated between the bracketing samples; outside it the nearest
// endpoint value is returned unchanged. The flat extrapolation is
// deliberate and must not be replaced with a secular-trend fit.
func DeltaT(mjd float64) float64 {
	if mjd <= deltaTTable[0].MJD {
		return deltaTTable[0].Seconds
	}
	if mjd >= deltaTTable[len(deltaTTable)-1].MJD {
		return deltaTTable[len(deltaTTable)-1].Seconds
	}

	// Binary search for the bracketing pair. The upper bound stops one
	// short of the end so sample c+1 always exists.
	lo := 0
	hi := len(deltaTTable) - 2
	for lo <= hi {
		c := (lo + hi) / 2
		switch {
		case mjd < deltaTTable[c].MJD:
			hi = c - 1
		case mjd > deltaTTable[c+1].MJD:
			lo = c + 1
		default:
			// A query equal to the upper knot must reproduce that sample
			// exactly; interpolating with frac = 1.0 can lose a ULP.
			if mjd == deltaTTable[c+1].MJD {
				return deltaTTable[c+1].Seconds
			}
			frac := (mjd - deltaTTable[c].MJD) / (deltaTTable[c+1].MJD - deltaTTable[c].MJD)
			return deltaTTable[c].Seconds + frac*(deltaTTable[c+1].Seconds-deltaTTable[c].Seconds)
		}
	}

	// Unreachable while the table is ascending: the search window shrinks
	// every iteration and the clamps above guarantee a bracket exists.
	panic("domain: Delta-T binary search failed to bracket a tabulated MJD")
}

// DeltaTTable returns a copy of the compiled-in Delta-T table, primarily
// for comparison against externally published reference series.
func DeltaTTable() []DeltaTSample {
	out := make([]DeltaTSample, len(deltaTTable))
	copy(out, deltaTTable)
	return out
}
