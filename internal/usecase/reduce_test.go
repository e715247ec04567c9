package usecase

import (
	"math"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

// TestConvertTime_J2000 converts the epoch and checks both scales.
func TestConvertTime_J2000(t *testing.T) {
	uc := NewReductionUseCase()

	at := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	resp, err := uc.ConvertTime(TimeRequest{At: timePtr(at)})
	if err != nil {
		t.Fatalf("ConvertTime: %v", err)
	}

	if resp.UT != 0.0 {
		t.Errorf("UT: expected 0, got %v", resp.UT)
	}
	// Delta-T around J2000 is a bit under 64 seconds.
	if resp.DeltaTSeconds < 63.0 || resp.DeltaTSeconds > 65.0 {
		t.Errorf("DeltaTSeconds: expected ~63.8, got %v", resp.DeltaTSeconds)
	}
	if math.Abs(resp.TT-resp.DeltaTSeconds/86400.0) > 1e-12 {
		t.Errorf("TT inconsistent with Delta-T: tt=%v dt=%v", resp.TT, resp.DeltaTSeconds)
	}
	if resp.ISO != "2000-01-01T12:00:00.000Z" {
		t.Errorf("ISO: got %q", resp.ISO)
	}
}

// TestTimeRequest_Validation rejects missing and conflicting selectors.
func TestTimeRequest_Validation(t *testing.T) {
	uc := NewReductionUseCase()

	if _, err := uc.ConvertTime(TimeRequest{}); err == nil {
		t.Error("empty request: expected error")
	}

	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	both := TimeRequest{At: timePtr(at), UT: floatPtr(0)}
	if _, err := uc.ConvertTime(both); err == nil {
		t.Error("both selectors: expected error")
	}

	if _, err := uc.ConvertTime(TimeRequest{UT: floatPtr(math.NaN())}); err == nil {
		t.Error("NaN ut: expected error")
	}
}

// TestOrientation_Epoch checks range and internal consistency of the
// orientation response.
func TestOrientation_Epoch(t *testing.T) {
	uc := NewReductionUseCase()

	resp, err := uc.Orientation(TimeRequest{UT: floatPtr(0.0)})
	if err != nil {
		t.Fatalf("Orientation: %v", err)
	}

	if resp.SiderealTimeHours < 0 || resp.SiderealTimeHours >= 24 {
		t.Errorf("sidereal time %v outside [0, 24)", resp.SiderealTimeHours)
	}
	if resp.EarthRotationAngleDeg < 0 || resp.EarthRotationAngleDeg >= 360 {
		t.Errorf("ERA %v outside [0, 360)", resp.EarthRotationAngleDeg)
	}
	if math.Abs(resp.MeanObliquityDeg-84381.406/3600.0) > 1e-6 {
		t.Errorf("mean obliquity at epoch: got %v", resp.MeanObliquityDeg)
	}
	expectedTrue := resp.MeanObliquityDeg + resp.DEpsArcsec/3600.0
	if math.Abs(resp.TrueObliquityDeg-expectedTrue) > 1e-12 {
		t.Errorf("true obliquity inconsistent: %v vs %v", resp.TrueObliquityDeg, expectedTrue)
	}
}

// TestGeoVector_Validation exercises the observer bounds.
func TestGeoVector_Validation(t *testing.T) {
	uc := NewReductionUseCase()

	cases := []struct {
		name string
		req  GeoVectorRequest
	}{
		{"missing coordinates", GeoVectorRequest{Time: TimeRequest{UT: floatPtr(0)}}},
		{"latitude out of range", GeoVectorRequest{
			Time: TimeRequest{UT: floatPtr(0)}, Lat: floatPtr(91), Lon: floatPtr(0)}},
		{"longitude out of range", GeoVectorRequest{
			Time: TimeRequest{UT: floatPtr(0)}, Lat: floatPtr(0), Lon: floatPtr(-181)}},
		{"height out of range", GeoVectorRequest{
			Time: TimeRequest{UT: floatPtr(0)}, Lat: floatPtr(0), Lon: floatPtr(0), HeightM: 1e6}},
		{"missing time", GeoVectorRequest{Lat: floatPtr(0), Lon: floatPtr(0)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.GeoVector(tc.req); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

// TestGeoVector_Equator runs the pipeline for an equatorial observer and
// checks the result is an Earth-radius vector with consistent angles.
func TestGeoVector_Equator(t *testing.T) {
	uc := NewReductionUseCase()

	resp, err := uc.GeoVector(GeoVectorRequest{
		Time: TimeRequest{UT: floatPtr(0.0)},
		Lat:  floatPtr(0.0),
		Lon:  floatPtr(0.0),
	})
	if err != nil {
		t.Fatalf("GeoVector: %v", err)
	}

	// Equatorial radius is about 4.26e-5 AU.
	if resp.DistAU < 4.2e-5 || resp.DistAU > 4.3e-5 {
		t.Errorf("distance: expected ~4.26e-5 AU, got %v", resp.DistAU)
	}
	if resp.RA < 0 || resp.RA >= 24 {
		t.Errorf("RA %v outside [0, 24)", resp.RA)
	}
	if math.Abs(resp.Dec) > 1.0 {
		t.Errorf("equatorial observer declination: expected near 0, got %v", resp.Dec)
	}
	if resp.Frame != "j2000_mean_equator" {
		t.Errorf("frame: got %q", resp.Frame)
	}
}

// TestListBodies checks catalog coverage and the Earth special case.
func TestListBodies(t *testing.T) {
	uc := NewReductionUseCase()
	bodies := uc.ListBodies()

	if len(bodies) != 11 {
		t.Fatalf("expected 11 bodies, got %d", len(bodies))
	}

	byName := make(map[string]BodyInfo, len(bodies))
	for _, b := range bodies {
		byName[b.Name] = b
	}

	earth := byName["Earth"]
	if earth.SynodicPeriodDays != nil || earth.SynodicUnavailable != "earth_not_allowed" {
		t.Errorf("Earth synodic entry wrong: %+v", earth)
	}

	moon := byName["Moon"]
	if moon.SynodicPeriodDays == nil || math.Abs(*moon.SynodicPeriodDays-29.530588) > 1e-9 {
		t.Errorf("Moon synodic entry wrong: %+v", moon)
	}
	if moon.OrbitalPeriodDays != nil {
		t.Errorf("Moon should have no tabulated orbital period: %+v", moon)
	}

	sun := byName["Sun"]
	if sun.SynodicUnavailable != "undefined" {
		t.Errorf("Sun synodic entry wrong: %+v", sun)
	}
}
