// Package usecase validates API requests and orchestrates the domain
// reduction pipeline.
package usecase

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.ngs.io/ephemeris-api/internal/domain"
)

// ReductionUseCase orchestrates time-scale conversion, Earth orientation,
// and observer geometry requests. It is stateless; all state lives in the
// domain's compiled-in tables.
type ReductionUseCase struct{}

// NewReductionUseCase creates a reduction use case.
func NewReductionUseCase() *ReductionUseCase {
	return &ReductionUseCase{}
}

// TimeRequest selects an instant either by an RFC3339 timestamp or by a
// raw universal-time day count since J2000.0. Exactly one must be set.
type TimeRequest struct {
	At *time.Time
	UT *float64
}

// Resolve validates the request and constructs the instant.
func (r *TimeRequest) Resolve() (domain.AstroTime, error) {
	hasAt := r.At != nil
	hasUT := r.UT != nil

	if !hasAt && !hasUT {
		return domain.AstroTime{}, fmt.Errorf("either at or ut must be provided")
	}
	if hasAt && hasUT {
		return domain.AstroTime{}, fmt.Errorf("at and ut are mutually exclusive")
	}

	if hasUT {
		if math.IsNaN(*r.UT) || math.IsInf(*r.UT, 0) {
			return domain.AstroTime{}, fmt.Errorf("ut must be a finite day count")
		}
		return domain.TimeFromUniversalDays(*r.UT), nil
	}

	utc := r.At.UTC()
	sec := float64(utc.Second()) + float64(utc.Nanosecond())/1e9
	return domain.MakeTime(utc.Year(), int(utc.Month()), utc.Day(), utc.Hour(), utc.Minute(), sec), nil
}

// TimeResponse reports both time scales for an instant.
type TimeResponse struct {
	UT            float64 `json:"ut"`
	TT            float64 `json:"tt"`
	DeltaTSeconds float64 `json:"delta_t_seconds"`
	ISO           string  `json:"iso"`
}

// ConvertTime resolves the requested instant and reports both scales plus
// the Delta-T correction that links them.
func (uc *ReductionUseCase) ConvertTime(req TimeRequest) (*TimeResponse, error) {
	at, err := req.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	return &TimeResponse{
		UT:            at.UT,
		TT:            at.TT,
		DeltaTSeconds: (at.TT - at.UT) * 86400.0,
		ISO:           at.String(),
	}, nil
}

// OrientationResponse bundles the per-instant Earth orientation values.
type OrientationResponse struct {
	ISO                      string  `json:"iso"`
	DPsiArcsec               float64 `json:"dpsi_arcsec"`
	DEpsArcsec               float64 `json:"deps_arcsec"`
	MeanObliquityDeg         float64 `json:"mean_obliquity_deg"`
	TrueObliquityDeg         float64 `json:"true_obliquity_deg"`
	EquationOfEquinoxesHours float64 `json:"equation_of_equinoxes_hours"`
	EarthRotationAngleDeg    float64 `json:"earth_rotation_angle_deg"`
	SiderealTimeHours        float64 `json:"sidereal_time_hours"`
}

// Orientation computes nutation, obliquity, Earth rotation angle, and
// apparent sidereal time for the requested instant.
func (uc *ReductionUseCase) Orientation(req TimeRequest) (*OrientationResponse, error) {
	at, err := req.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	tilt := domain.NewEarthTilt(at)
	return &OrientationResponse{
		ISO:                      at.String(),
		DPsiArcsec:               tilt.DPsi,
		DEpsArcsec:               tilt.DEps,
		MeanObliquityDeg:         tilt.MeanObl,
		TrueObliquityDeg:         tilt.TrueObl,
		EquationOfEquinoxesHours: tilt.EqEq,
		EarthRotationAngleDeg:    domain.EarthRotationAngle(at.UT),
		SiderealTimeHours:        domain.SiderealTime(at),
	}, nil
}

// GeoVectorRequest locates an observer at an instant.
type GeoVectorRequest struct {
	Time    TimeRequest
	Lat     *float64
	Lon     *float64
	HeightM float64
}

// Validate checks the observer coordinates.
func (r *GeoVectorRequest) Validate() error {
	if r.Lat == nil || r.Lon == nil {
		return fmt.Errorf("lat and lon must be provided")
	}
	if *r.Lat < -90 || *r.Lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if *r.Lon < -180 || *r.Lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if r.HeightM < -500 || r.HeightM > 100000 {
		return fmt.Errorf("height_m must be between -500 and 100000")
	}
	return nil
}

// GeoVectorResponse reports the observer position in the J2000 mean
// equatorial frame, with the equivalent angular coordinates.
type GeoVectorResponse struct {
	ISO    string  `json:"iso"`
	Frame  string  `json:"frame"`
	X      float64 `json:"x_au"`
	Y      float64 `json:"y_au"`
	Z      float64 `json:"z_au"`
	RA     float64 `json:"ra_hours"`
	Dec    float64 `json:"dec_deg"`
	DistAU float64 `json:"dist_au"`
}

// GeoVector runs the full pipeline: sidereal time, Earth-fixed observer
// vector, inverse nutation, and precession to J2000.
func (uc *ReductionUseCase) GeoVector(req GeoVectorRequest) (*GeoVectorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	at, err := req.Time.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	obs := domain.Observer{Latitude: *req.Lat, Longitude: *req.Lon, Height: req.HeightM}
	pos, err := domain.GeoVector(at, obs)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce observer position: %w", err)
	}

	eq, err := domain.VectorToEquatorial(pos)
	if err != nil {
		// An observer vector has Earth-radius magnitude; a degenerate
		// result here means the pipeline itself is broken.
		return nil, fmt.Errorf("failed to convert observer vector: %w", err)
	}

	return &GeoVectorResponse{
		ISO:    at.String(),
		Frame:  "j2000_mean_equator",
		X:      pos.X,
		Y:      pos.Y,
		Z:      pos.Z,
		RA:     eq.RA,
		Dec:    eq.Dec,
		DistAU: eq.Dist,
	}, nil
}

// BodyInfo describes one catalog entry. Periods are omitted where the
// body has none defined.
type BodyInfo struct {
	Name               string   `json:"name"`
	OrbitalPeriodDays  *float64 `json:"orbital_period_days,omitempty"`
	SynodicPeriodDays  *float64 `json:"synodic_period_days,omitempty"`
	SynodicUnavailable string   `json:"synodic_unavailable,omitempty"`
}

// ListBodies returns the catalog of recognized bodies with their orbital
// and synodic periods.
func (uc *ReductionUseCase) ListBodies() []BodyInfo {
	bodies := make([]BodyInfo, 0, int(domain.Moon)+1)

	for b := domain.Mercury; b <= domain.Moon; b++ {
		info := BodyInfo{Name: b.String()}

		if period, err := b.OrbitalPeriod(); err == nil {
			p := period
			info.OrbitalPeriodDays = &p
		}

		synodic, err := domain.SynodicPeriod(b)
		switch {
		case err == nil:
			s := synodic
			info.SynodicPeriodDays = &s
		case errors.Is(err, domain.ErrEarthNotAllowed):
			info.SynodicUnavailable = "earth_not_allowed"
		default:
			info.SynodicUnavailable = "undefined"
		}

		bodies = append(bodies, info)
	}

	return bodies
}
