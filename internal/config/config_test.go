package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clear environment
	envVars := []string{
		"HTTP_ADDR", "CAPTURE_INTERVAL", "CAPTURE_COMMAND", "MAX_CAPTURE_HEIGHT",
		"CLASSIFY_THRESHOLD", "OCR_BACKEND", "OCR_ADDR", "OCR_TIMEOUT", "OCR_WORKERS",
		"MATCH_THRESHOLD", "PRICE_API_URL", "PRICE_TTL", "PRICE_TIMEOUT",
		"CACHE_CAPACITY", "WARM_CACHE", "DEBUG",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg := Load()

	// Check defaults
	if cfg.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8000")
	}
	if cfg.CaptureInterval != 3*time.Second {
		t.Errorf("CaptureInterval = %v, want %v", cfg.CaptureInterval, 3*time.Second)
	}
	if cfg.MaxCaptureHeight != 1080 {
		t.Errorf("MaxCaptureHeight = %d, want %d", cfg.MaxCaptureHeight, 1080)
	}
	if cfg.ClassifyThreshold != 0.86 {
		t.Errorf("ClassifyThreshold = %f, want %f", cfg.ClassifyThreshold, 0.86)
	}
	if cfg.OCRBackend != "grpc" {
		t.Errorf("OCRBackend = %q, want %q", cfg.OCRBackend, "grpc")
	}
	if cfg.OCRAddr != "localhost:50051" {
		t.Errorf("OCRAddr = %q, want %q", cfg.OCRAddr, "localhost:50051")
	}
	if cfg.OCRTimeout != 2*time.Second {
		t.Errorf("OCRTimeout = %v, want %v", cfg.OCRTimeout, 2*time.Second)
	}
	if cfg.OCRWorkers != 4 {
		t.Errorf("OCRWorkers = %d, want %d", cfg.OCRWorkers, 4)
	}
	if cfg.MatchThreshold != 0.75 {
		t.Errorf("MatchThreshold = %f, want %f", cfg.MatchThreshold, 0.75)
	}
	if cfg.PriceTTL != 5*time.Minute {
		t.Errorf("PriceTTL = %v, want %v", cfg.PriceTTL, 5*time.Minute)
	}
	if cfg.CacheCapacity != 512 {
		t.Errorf("CacheCapacity = %d, want %d", cfg.CacheCapacity, 512)
	}
	if cfg.WarmCache {
		t.Error("WarmCache should default to false")
	}
}

func TestLoadWithEnv(t *testing.T) {
	os.Setenv("HTTP_ADDR", ":9000")
	os.Setenv("CAPTURE_INTERVAL", "1500ms")
	os.Setenv("MAX_CAPTURE_HEIGHT", "720")
	os.Setenv("OCR_BACKEND", "tesseract")
	os.Setenv("OCR_WORKERS", "2")
	os.Setenv("MATCH_THRESHOLD", "0.9")
	os.Setenv("PRICE_TTL", "30s")
	os.Setenv("WARM_CACHE", "true")
	defer func() {
		for _, v := range []string{
			"HTTP_ADDR", "CAPTURE_INTERVAL", "MAX_CAPTURE_HEIGHT", "OCR_BACKEND",
			"OCR_WORKERS", "MATCH_THRESHOLD", "PRICE_TTL", "WARM_CACHE",
		} {
			os.Unsetenv(v)
		}
	}()

	cfg := Load()

	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9000")
	}
	if cfg.CaptureInterval != 1500*time.Millisecond {
		t.Errorf("CaptureInterval = %v, want %v", cfg.CaptureInterval, 1500*time.Millisecond)
	}
	if cfg.MaxCaptureHeight != 720 {
		t.Errorf("MaxCaptureHeight = %d, want %d", cfg.MaxCaptureHeight, 720)
	}
	if cfg.OCRBackend != "tesseract" {
		t.Errorf("OCRBackend = %q, want %q", cfg.OCRBackend, "tesseract")
	}
	if cfg.OCRWorkers != 2 {
		t.Errorf("OCRWorkers = %d, want %d", cfg.OCRWorkers, 2)
	}
	if cfg.MatchThreshold != 0.9 {
		t.Errorf("MatchThreshold = %f, want %f", cfg.MatchThreshold, 0.9)
	}
	if cfg.PriceTTL != 30*time.Second {
		t.Errorf("PriceTTL = %v, want %v", cfg.PriceTTL, 30*time.Second)
	}
	if !cfg.WarmCache {
		t.Error("WarmCache should be true")
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	os.Setenv("CAPTURE_INTERVAL", "not-a-duration")
	os.Setenv("OCR_WORKERS", "many")
	os.Setenv("CLASSIFY_THRESHOLD", "high")
	defer func() {
		os.Unsetenv("CAPTURE_INTERVAL")
		os.Unsetenv("OCR_WORKERS")
		os.Unsetenv("CLASSIFY_THRESHOLD")
	}()

	cfg := Load()

	if cfg.CaptureInterval != 3*time.Second {
		t.Errorf("CaptureInterval = %v, want default %v", cfg.CaptureInterval, 3*time.Second)
	}
	if cfg.OCRWorkers != 4 {
		t.Errorf("OCRWorkers = %d, want default %d", cfg.OCRWorkers, 4)
	}
	if cfg.ClassifyThreshold != 0.86 {
		t.Errorf("ClassifyThreshold = %f, want default %f", cfg.ClassifyThreshold, 0.86)
	}
}
