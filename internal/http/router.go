package http

import (
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go.ngs.io/ephemeris-api/internal/metrics"
	"go.ngs.io/ephemeris-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(reductionUC *usecase.ReductionUseCase) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))
	router.Use(metrics.Middleware())

	// Optional per-IP rate limiting.
	if rpsStr := os.Getenv("RATE_LIMIT_RPS"); rpsStr != "" {
		if rps, err := strconv.ParseFloat(rpsStr, 64); err == nil && rps > 0 {
			router.Use(RateLimitMiddleware(rps, int(rps*2)))
		}
	}

	// Create handler.
	handler := NewHandler(reductionUC)

	// API v1 routes.
	v1 := router.Group("/v1")
	v1.GET("/time", handler.GetTime)
	v1.GET("/bodies", handler.GetBodies)

	earth := v1.Group("/earth")
	earth.GET("/orientation", handler.GetOrientation)

	observer := v1.Group("/observer")
	observer.GET("/geovector", handler.GetGeoVector)

	// Health check and metrics.
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}
