package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// APIURL is the Emissions API instance to download from.
	APIURL string

	// HTTPTimeout bounds the single outbound request per day of data.
	HTTPTimeout time.Duration

	// Download cache settings.
	CacheDir      string
	CacheDisabled bool

	// GeocoderAPIKey is a Google Maps key, only needed for --focus.
	GeocoderAPIKey string

	// Default output dimensions in pixels; overridable per run.
	MapWidth  int
	MapHeight int
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.APIURL = getenvDefault("EMISSIONS_API_URL", "https://api.v2.emissions-api.org")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.CacheDir = getenvDefault("CACHE_DIR", ".worldmap-cache")
	cfg.CacheDisabled = getenvBool("CACHE_DISABLED", false)

	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.MapWidth = getenvInt("MAP_WIDTH", 2000)
	cfg.MapHeight = getenvInt("MAP_HEIGHT", 1000)
	if cfg.MapWidth <= 0 || cfg.MapHeight <= 0 {
		return nil, fmt.Errorf("MAP_WIDTH and MAP_HEIGHT must be positive")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
