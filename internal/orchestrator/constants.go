// Package orchestrator drives the capture-to-valuation pipeline
package orchestrator

import "time"

// Pipeline configuration constants
const (
	// Valuation history and event buffering
	HistoryMaxEntries    = 30
	ValuationEventBuffer = 100

	// OCR worker pool default
	DefaultOCRWorkers = 4

	// Shutdown grace period for in-flight passes
	DefaultGracePeriod = 5 * time.Second

	// Selection re-capture fires this many seconds before the reward
	// timer expires.
	SelectionLeadSeconds = 2
)
