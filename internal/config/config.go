package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the client reads from the environment.
type Config struct {
	// APIBaseURL is the booking platform's REST API root.
	APIBaseURL string
	// RoutingAPIURL and RoutingAPIKey configure the optional
	// distance-to-cinema lookup. An empty key disables it.
	RoutingAPIURL string
	RoutingAPIKey string
	// HomeLat/HomeLon are the user's coordinates for the distance
	// lookup. Both zero means unknown and distances are skipped.
	HomeLat float64
	HomeLon float64
	// DataDir is where the local session store lives.
	DataDir string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; plain env vars are fine.
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		APIBaseURL:    getEnv("CINEDESK_API_URL", "http://localhost:8080"),
		RoutingAPIURL: getEnv("CINEDESK_ROUTING_API_URL", "https://api.openrouteservice.org"),
		RoutingAPIKey: os.Getenv("CINEDESK_ROUTING_API_KEY"),
		HomeLat:       getEnvFloat("CINEDESK_HOME_LAT"),
		HomeLon:       getEnvFloat("CINEDESK_HOME_LON"),
	}

	dataDir := os.Getenv("CINEDESK_DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".cinedesk")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	cfg.DataDir = dataDir

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string) float64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Ignoring invalid %s value %q", key, v)
		return 0
	}
	return f
}
