// Package server provides HTTP and WebSocket handlers
package server

import "time"

// Server configuration constants
const (
	// Per-connection message rate limiting
	RateLimitMessages = 10
	RateLimitWindow   = time.Second

	// Slow clients miss a broadcast after this long
	BroadcastTimeout = 2 * time.Second

	// History pagination bounds
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)
