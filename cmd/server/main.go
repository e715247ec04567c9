// Package main provides the ephemeris API HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	httpHandler "go.ngs.io/ephemeris-api/internal/http"
	"go.ngs.io/ephemeris-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("ephemeris-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")

	log.Printf("Starting Ephemeris API server...")
	log.Printf("Port: %s", port)
	if rps := os.Getenv("RATE_LIMIT_RPS"); rps != "" {
		log.Printf("Rate limit: %s requests/second per client", rps)
	}

	// Initialize use case. All reduction data is compiled in, so there
	// are no stores to wire.
	reductionUC := usecase.NewReductionUseCase()

	// Setup router.
	router := httpHandler.SetupRouter(reductionUC)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/time")
	log.Printf("  - GET /v1/earth/orientation")
	log.Printf("  - GET /v1/observer/geovector")
	log.Printf("  - GET /v1/bodies")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Ephemeris API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  ephemeris-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println("  RATE_LIMIT_RPS          Per-IP request rate limit (default: disabled)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  ephemeris-api")
	fmt.Println()
	fmt.Println("  # Start server on custom port")
	fmt.Println("  PORT=3000 ephemeris-api")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                    Health check")
	fmt.Println("  GET /metrics                   Prometheus metrics")
	fmt.Println("  GET /v1/time                   Convert between universal and terrestrial time")
	fmt.Println("  GET /v1/earth/orientation      Nutation, obliquity, and sidereal time")
	fmt.Println("  GET /v1/observer/geovector     Observer position in the J2000 frame")
	fmt.Println("  GET /v1/bodies                 Body catalog with orbital and synodic periods")
	fmt.Println()
}
