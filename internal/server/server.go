// Package server provides HTTP and WebSocket handlers
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/relicscope/platform/internal/orchestrator"
	"github.com/relicscope/platform/internal/trace"
)

// Orchestrator is the pipeline surface the API exposes.
type Orchestrator interface {
	Events() <-chan orchestrator.Valuation
	Latest() (orchestrator.Valuation, bool)
	Recent(n int) []orchestrator.Valuation
	LatestFrame() []byte
	Picks() map[string]int
	ResetPicks()
	CheckNow(ctx context.Context)
}

// Message types.
type Message struct {
	Type string `json:"type"`
}

type ValuationMessage struct {
	Type         string                       `json:"type"`
	Seq          uint64                       `json:"seq"`
	CapturedAt   time.Time                    `json:"captured_at"`
	Screen       string                       `json:"screen"`
	TimerSeconds int                          `json:"timer_seconds"`
	Items        []orchestrator.ValuationItem `json:"items"`
}

type StatusMessage struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

type RateLimitedMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// rateLimiter tracks message timestamps using a sliding window.
type rateLimiter struct {
	timestamps []time.Time
	mu         sync.Mutex
}

// allow checks if a message is allowed and records the timestamp if so.
func (r *rateLimiter) allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-RateLimitWindow)

	valid := r.timestamps[:0]
	for _, t := range r.timestamps {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	r.timestamps = valid

	if len(r.timestamps) >= RateLimitMessages {
		return false
	}

	r.timestamps = append(r.timestamps, now)
	return true
}

// Server handles HTTP and WebSocket connections.
type Server struct {
	orch       Orchestrator
	mu         sync.RWMutex
	conns      map[*websocket.Conn]struct{}
	rateLimits map[*websocket.Conn]*rateLimiter
}

// New creates a new server and starts the valuation broadcaster.
func New(orch Orchestrator) *Server {
	s := &Server{
		orch:       orch,
		conns:      make(map[*websocket.Conn]struct{}),
		rateLimits: make(map[*websocket.Conn]*rateLimiter),
	}

	go s.broadcastValuations()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", s.handleWebSocket)

	// REST API
	mux.HandleFunc("GET /api/valuation", s.handleValuation)
	mux.HandleFunc("GET /api/valuations", s.handleValuations)
	mux.HandleFunc("GET /api/capture", s.handleCapture)
	mux.HandleFunc("POST /api/check", s.handleCheck)
	mux.HandleFunc("GET /api/picks", s.handlePicks)
	mux.HandleFunc("DELETE /api/picks", s.handlePicksReset)

	// Apply middleware: trace -> CORS
	return corsMiddleware(trace.Middleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("websocket accept error", "error", err)
		return
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.rateLimits[conn] = &rateLimiter{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		delete(s.rateLimits, conn)
		s.mu.Unlock()
	}()

	baseCtx := r.Context()
	log := trace.Logger(baseCtx)
	log.Info("websocket connected", "remote", r.RemoteAddr)

	// Send the latest valuation so new clients don't wait a full cycle.
	if v, ok := s.orch.Latest(); ok {
		_ = wsjson.Write(baseCtx, conn, valuationMessage(v))
	}

	for {
		var msg json.RawMessage
		if err := wsjson.Read(baseCtx, conn, &msg); err != nil {
			log.Debug("websocket read error", "error", err)
			return
		}

		s.mu.RLock()
		rl := s.rateLimits[conn]
		s.mu.RUnlock()

		if !rl.allow() {
			log.Warn("rate limit exceeded", "remote", r.RemoteAddr)
			_ = wsjson.Write(baseCtx, conn, RateLimitedMessage{
				Type:    "error",
				Message: "rate limit exceeded",
			})
			continue
		}

		var base Message
		if err := json.Unmarshal(msg, &base); err != nil {
			continue
		}

		switch base.Type {
		case "check":
			ctx, _ := trace.EnsureContext(baseCtx)
			s.orch.CheckNow(ctx)
			_ = wsjson.Write(baseCtx, conn, StatusMessage{Type: "status", Status: "check_queued"})
		}
	}
}

func valuationMessage(v orchestrator.Valuation) ValuationMessage {
	return ValuationMessage{
		Type:         "valuation",
		Seq:          v.Seq,
		CapturedAt:   v.CapturedAt,
		Screen:       v.Screen,
		TimerSeconds: v.TimerSeconds,
		Items:        v.Items,
	}
}

// broadcastValuations fans pipeline results out to connected clients. Each
// write carries a timeout; a client that cannot keep up misses the update
// rather than stalling the pipeline. Writes to one connection are not
// ordered across broadcasts; clients order messages by seq.
func (s *Server) broadcastValuations() {
	for v := range s.orch.Events() {
		msg := valuationMessage(v)

		s.mu.RLock()
		for conn := range s.conns {
			go func(c *websocket.Conn) {
				ctx, cancel := context.WithTimeout(context.Background(), BroadcastTimeout)
				defer cancel()
				if err := wsjson.Write(ctx, c, msg); err != nil {
					slog.Debug("broadcast write failed", "error", err)
				}
			}(conn)
		}
		s.mu.RUnlock()
	}
}

func (s *Server) handleValuation(w http.ResponseWriter, r *http.Request) {
	v, ok := s.orch.Latest()
	if !ok {
		http.Error(w, "no valuation yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleValuations(w http.ResponseWriter, r *http.Request) {
	limit := DefaultHistoryLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, MaxHistoryLimit)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.orch.Recent(limit))
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	frame := s.orch.LatestFrame()
	if len(frame) == 0 {
		http.Error(w, "no capture yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(frame)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	s.orch.CheckNow(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "check_queued"})
}

func (s *Server) handlePicks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.orch.Picks())
}

func (s *Server) handlePicksReset(w http.ResponseWriter, r *http.Request) {
	s.orch.ResetPicks()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "picks_reset"})
}
