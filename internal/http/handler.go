package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/ephemeris-api/internal/usecase"
)

// Handler handles HTTP requests for the reduction pipeline.
type Handler struct {
	reductionUC *usecase.ReductionUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(reductionUC *usecase.ReductionUseCase) *Handler {
	return &Handler{
		reductionUC: reductionUC,
	}
}

// parseTimeRequest reads the shared at/ut query parameters.
func parseTimeRequest(c *gin.Context) (usecase.TimeRequest, bool) {
	req := usecase.TimeRequest{}

	if atStr := c.Query("at"); atStr != "" {
		at, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid at (expected RFC3339): %v", err)})
			return req, false
		}
		utc := at.UTC()
		req.At = &utc
	}

	if utStr := c.Query("ut"); utStr != "" {
		ut, err := strconv.ParseFloat(utStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid ut: %v", err)})
			return req, false
		}
		req.UT = &ut
	}

	return req, true
}

// GetTime handles GET /v1/time.
func (h *Handler) GetTime(c *gin.Context) {
	req, ok := parseTimeRequest(c)
	if !ok {
		return
	}

	response, err := h.reductionUC.ConvertTime(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOrientation handles GET /v1/earth/orientation.
func (h *Handler) GetOrientation(c *gin.Context) {
	req, ok := parseTimeRequest(c)
	if !ok {
		return
	}

	response, err := h.reductionUC.Orientation(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetGeoVector handles GET /v1/observer/geovector.
func (h *Handler) GetGeoVector(c *gin.Context) {
	timeReq, ok := parseTimeRequest(c)
	if !ok {
		return
	}

	req := usecase.GeoVectorRequest{Time: timeReq}

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr != "" && lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing lon: lat and lon must be provided together"})
		return
	}
	if lonStr != "" && latStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing lat: lat and lon must be provided together"})
		return
	}
	if latStr != "" && lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
			return
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid longitude: %v", err)})
			return
		}
		req.Lat = &lat
		req.Lon = &lon
	}

	if heightStr := c.Query("height_m"); heightStr != "" {
		height, err := strconv.ParseFloat(heightStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid height_m: %v", err)})
			return
		}
		req.HeightM = height
	}

	response, err := h.reductionUC.GeoVector(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetBodies handles GET /v1/bodies.
func (h *Handler) GetBodies(c *gin.Context) {
	bodies := h.reductionUC.ListBodies()

	c.JSON(http.StatusOK, gin.H{
		"bodies": bodies,
		"count":  len(bodies),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
