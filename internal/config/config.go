// Package config handles platform configuration
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string

	// Capture
	CaptureInterval   time.Duration
	CaptureCommand    string // override for the platform screenshot tool
	MaxCaptureHeight  int    // 0 disables downscaling
	ClassifyThreshold float64

	// OCR
	OCRBackend string // "grpc" or "tesseract"
	OCRAddr    string
	OCRTimeout time.Duration
	OCRWorkers int

	// Normalizer
	MatchThreshold float64

	// Price resolver
	PriceAPIURL   string
	PriceTTL      time.Duration
	PriceTimeout  time.Duration
	CacheCapacity int
	WarmCache     bool

	Debug bool
}

func Load() *Config {
	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		CaptureInterval:   getEnvDuration("CAPTURE_INTERVAL", 3*time.Second),
		CaptureCommand:    getEnv("CAPTURE_COMMAND", ""),
		MaxCaptureHeight:  getEnvInt("MAX_CAPTURE_HEIGHT", 1080),
		ClassifyThreshold: getEnvFloat("CLASSIFY_THRESHOLD", 0.86),

		OCRBackend: getEnv("OCR_BACKEND", "grpc"),
		OCRAddr:    getEnv("OCR_ADDR", "localhost:50051"),
		OCRTimeout: getEnvDuration("OCR_TIMEOUT", 2*time.Second),
		OCRWorkers: getEnvInt("OCR_WORKERS", 4),

		MatchThreshold: getEnvFloat("MATCH_THRESHOLD", 0.75),

		PriceAPIURL:   getEnv("PRICE_API_URL", "https://api.warframe.market"),
		PriceTTL:      getEnvDuration("PRICE_TTL", 5*time.Minute),
		PriceTimeout:  getEnvDuration("PRICE_TIMEOUT", 5*time.Second),
		CacheCapacity: getEnvInt("CACHE_CAPACITY", 512),
		WarmCache:     getEnvBool("WARM_CACHE", false),

		Debug: getEnvBool("DEBUG", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1"
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
