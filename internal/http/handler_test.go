package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"go.ngs.io/ephemeris-api/internal/usecase"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(usecase.NewReductionUseCase())
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestGetTime_ByUT converts the epoch through the HTTP surface.
func TestGetTime_ByUT(t *testing.T) {
	router := newTestRouter()

	w := doGet(t, router, "/v1/time?ut=0")
	if w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		UT            float64 `json:"ut"`
		TT            float64 `json:"tt"`
		DeltaTSeconds float64 `json:"delta_t_seconds"`
		ISO           string  `json:"iso"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.UT != 0 {
		t.Errorf("ut: expected 0, got %v", resp.UT)
	}
	if resp.ISO != "2000-01-01T12:00:00.000Z" {
		t.Errorf("iso: got %q", resp.ISO)
	}
	if resp.DeltaTSeconds < 63 || resp.DeltaTSeconds > 65 {
		t.Errorf("delta_t_seconds: got %v", resp.DeltaTSeconds)
	}
}

// TestGetTime_ByRFC3339 accepts a calendar timestamp.
func TestGetTime_ByRFC3339(t *testing.T) {
	router := newTestRouter()

	w := doGet(t, router, "/v1/time?at=2000-01-01T12:00:00Z")
	if w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ut, ok := resp["ut"].(float64); !ok || ut != 0 {
		t.Errorf("ut: expected 0, got %v", resp["ut"])
	}
}

// TestGetTime_BadRequests exercises parameter validation.
func TestGetTime_BadRequests(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{
		"/v1/time",
		"/v1/time?at=yesterday",
		"/v1/time?ut=abc",
		"/v1/time?at=2000-01-01T12:00:00Z&ut=0",
	} {
		if w := doGet(t, router, path); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

// TestGetOrientation returns the orientation bundle.
func TestGetOrientation(t *testing.T) {
	router := newTestRouter()

	w := doGet(t, router, "/v1/earth/orientation?ut=0")
	if w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		SiderealTimeHours     float64 `json:"sidereal_time_hours"`
		EarthRotationAngleDeg float64 `json:"earth_rotation_angle_deg"`
		MeanObliquityDeg      float64 `json:"mean_obliquity_deg"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SiderealTimeHours < 0 || resp.SiderealTimeHours >= 24 {
		t.Errorf("sidereal_time_hours out of range: %v", resp.SiderealTimeHours)
	}
	if resp.EarthRotationAngleDeg < 0 || resp.EarthRotationAngleDeg >= 360 {
		t.Errorf("earth_rotation_angle_deg out of range: %v", resp.EarthRotationAngleDeg)
	}
	if resp.MeanObliquityDeg < 23.0 || resp.MeanObliquityDeg > 24.0 {
		t.Errorf("mean_obliquity_deg implausible: %v", resp.MeanObliquityDeg)
	}
}

// TestGetGeoVector runs the pipeline end to end over HTTP.
func TestGetGeoVector(t *testing.T) {
	router := newTestRouter()

	w := doGet(t, router, "/v1/observer/geovector?lat=35.6764&lon=139.65&height_m=40&at=2021-12-04T07:33:19Z")
	if w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Frame  string  `json:"frame"`
		DistAU float64 `json:"dist_au"`
		RA     float64 `json:"ra_hours"`
		Dec    float64 `json:"dec_deg"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Frame != "j2000_mean_equator" {
		t.Errorf("frame: got %q", resp.Frame)
	}
	if resp.DistAU < 4.2e-5 || resp.DistAU > 4.3e-5 {
		t.Errorf("dist_au implausible: %v", resp.DistAU)
	}
	if resp.RA < 0 || resp.RA >= 24 {
		t.Errorf("ra_hours out of range: %v", resp.RA)
	}
	if resp.Dec < -90 || resp.Dec > 90 {
		t.Errorf("dec_deg out of range: %v", resp.Dec)
	}
}

// TestGetGeoVector_MissingObserver rejects requests without coordinates.
func TestGetGeoVector_MissingObserver(t *testing.T) {
	router := newTestRouter()

	if w := doGet(t, router, "/v1/observer/geovector?ut=0"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// TestGetGeoVector_HalfObserver names the missing coordinate when only one
// of lat/lon is supplied.
func TestGetGeoVector_HalfObserver(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		path    string
		missing string
	}{
		{"/v1/observer/geovector?ut=0&lat=52.52", "missing lon"},
		{"/v1/observer/geovector?ut=0&lon=13.405", "missing lat"},
	}

	for _, tc := range cases {
		w := doGet(t, router, tc.path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.path, w.Code)
			continue
		}
		var resp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.Contains(resp.Error, tc.missing) {
			t.Errorf("%s: error %q does not name the missing parameter", tc.path, resp.Error)
		}
	}
}

// TestGetBodies lists the catalog.
func TestGetBodies(t *testing.T) {
	router := newTestRouter()

	w := doGet(t, router, "/v1/bodies")
	if w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", w.Code)
	}

	var resp struct {
		Count  int              `json:"count"`
		Bodies []map[string]any `json:"bodies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 11 || len(resp.Bodies) != 11 {
		t.Errorf("expected 11 bodies, got count=%d len=%d", resp.Count, len(resp.Bodies))
	}
}

// TestHealthCheck confirms the liveness endpoint.
func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	w := doGet(t, router, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", w.Code)
	}
}
