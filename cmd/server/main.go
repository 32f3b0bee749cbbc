// Platform server - captures the game screen, recognizes relic rewards, and
// serves live valuations over HTTP and WebSocket
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/relicscope/platform/internal/capture"
	"github.com/relicscope/platform/internal/catalog"
	"github.com/relicscope/platform/internal/classify"
	"github.com/relicscope/platform/internal/config"
	"github.com/relicscope/platform/internal/match"
	"github.com/relicscope/platform/internal/ocr"
	"github.com/relicscope/platform/internal/orchestrator"
	"github.com/relicscope/platform/internal/orchestrator/selection"
	"github.com/relicscope/platform/internal/price"
	"github.com/relicscope/platform/internal/server"
)

func main() {
	cfg := config.Load()

	// Setup structured logging
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	recognizer, err := newRecognizer(cfg)
	if err != nil {
		slog.Error("failed to initialize OCR backend", "backend", cfg.OCRBackend, "error", err)
		os.Exit(1)
	}
	defer func() { _ = recognizer.Close() }()

	// Load the item catalog; fall back to the embedded list so the
	// pipeline still runs without network access.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	cat, err := catalog.NewClient(cfg.PriceAPIURL, cfg.PriceTimeout).Fetch(loadCtx)
	loadCancel()
	if err != nil {
		slog.Warn("catalog fetch failed, using embedded fallback", "error", err)
		cat, err = catalog.Embedded()
		if err != nil {
			slog.Error("embedded catalog unavailable", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("catalog loaded", "items", cat.Len())

	resolver := price.NewResolver(price.NewClient(cfg.PriceAPIURL, cat, cfg.PriceTimeout), cfg.PriceTTL, cfg.CacheCapacity)

	orch := orchestrator.New(orchestrator.Deps{
		Capturer:   capture.New(cfg.CaptureCommand, cfg.MaxCaptureHeight),
		Classifier: classify.New(cfg.ClassifyThreshold, classify.DefaultSignatures()),
		Recognizer: recognizer,
		Dictionary: match.NewDictionary(cat.Names(), cfg.MatchThreshold),
		Resolver:   resolver,
		Selector:   selection.NewDetector(selection.DefaultHighlight),
	}, orchestrator.Config{
		Interval:   cfg.CaptureInterval,
		OCRTimeout: cfg.OCRTimeout,
		OCRWorkers: cfg.OCRWorkers,
	})

	srv := server.New(orch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.WarmCache {
		go resolver.Warm(ctx, cat.Names())
	}

	go func() {
		if err := orch.Start(ctx); err != nil {
			slog.Error("orchestrator error", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      srv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("platform server starting", "http", cfg.HTTPAddr, "ocr", cfg.OCRBackend, "interval", cfg.CaptureInterval)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	slog.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}

	orch.Stop()
	slog.Info("shutdown complete")
}

func newRecognizer(cfg *config.Config) (ocr.Recognizer, error) {
	switch cfg.OCRBackend {
	case "tesseract":
		return ocr.NewTesseract()
	default:
		return ocr.NewGRPC(cfg.OCRAddr)
	}
}
