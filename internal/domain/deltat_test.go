package domain

import (
	"math"
	"testing"
)

// TestDeltaT_TabulatedValuesExact verifies the interpolation reproduces
// every tabulated sample exactly.
func TestDeltaT_TabulatedValuesExact(t *testing.T) {
	for _, sample := range deltaTTable {
		got := DeltaT(sample.MJD)
		if got != sample.Seconds {
			t.Errorf("DeltaT(%v): expected exactly %v, got %v", sample.MJD, sample.Seconds, got)
		}
	}
}

// TestDeltaT_FlatExtrapolation verifies clamping outside the table range.
func TestDeltaT_FlatExtrapolation(t *testing.T) {
	first := deltaTTable[0]
	last := deltaTTable[len(deltaTTable)-1]

	if got := DeltaT(first.MJD - 1000.0); got != first.Seconds {
		t.Errorf("DeltaT below range: expected %v, got %v", first.Seconds, got)
	}
	if got := DeltaT(last.MJD + 1000.0); got != last.Seconds {
		t.Errorf("DeltaT above range: expected %v, got %v", last.Seconds, got)
	}
}

// TestDeltaT_LinearInterpolation checks the midpoint of a known pair.
func TestDeltaT_LinearInterpolation(t *testing.T) {
	// Rows for MJD 51544 (63.8285) and 51910 (64.0908).
	mid := (51544.0 + 51910.0) / 2.0
	expected := (63.8285 + 64.0908) / 2.0

	got := DeltaT(mid)
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("DeltaT(%v): expected %.10f, got %.10f", mid, expected, got)
	}
}

// TestDeltaT_Continuity samples a dense sweep across several knots and
// requires small steps to produce small value changes.
func TestDeltaT_Continuity(t *testing.T) {
	const step = 0.5
	prev := DeltaT(44000.0)
	for mjd := 44000.0 + step; mjd <= 47000.0; mjd += step {
		cur := DeltaT(mjd)
		if math.Abs(cur-prev) > 0.1 {
			t.Fatalf("DeltaT jumped by %.6f across %.1f", cur-prev, mjd)
		}
		prev = cur
	}
}

// TestDeltaTTable_ReturnsCopy ensures callers cannot mutate the compiled
// table through the accessor.
func TestDeltaTTable_ReturnsCopy(t *testing.T) {
	table := DeltaTTable()
	if len(table) != len(deltaTTable) {
		t.Fatalf("expected %d samples, got %d", len(deltaTTable), len(table))
	}
	original := deltaTTable[0].Seconds
	table[0].Seconds = -9999.0
	if deltaTTable[0].Seconds != original {
		t.Error("mutating the returned table changed the compiled-in table")
	}
}

// TestDeltaTTable_Ascending guards the binary-search invariant.
func TestDeltaTTable_Ascending(t *testing.T) {
	for i := 1; i < len(deltaTTable); i++ {
		if deltaTTable[i].MJD <= deltaTTable[i-1].MJD {
			t.Fatalf("table not strictly ascending at row %d: %v <= %v",
				i, deltaTTable[i].MJD, deltaTTable[i-1].MJD)
		}
	}
}
