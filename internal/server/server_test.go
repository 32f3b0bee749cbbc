package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/relicscope/platform/internal/orchestrator"
)

type fakeOrch struct {
	events     chan orchestrator.Valuation
	latest     orchestrator.Valuation
	hasLatest  bool
	frame      []byte
	picks      map[string]int
	checkCalls atomic.Int32
	resetCalls atomic.Int32
}

func newFakeOrch() *fakeOrch {
	return &fakeOrch{
		events: make(chan orchestrator.Valuation, 10),
		picks:  map[string]int{},
	}
}

func (f *fakeOrch) Events() <-chan orchestrator.Valuation { return f.events }

func (f *fakeOrch) Latest() (orchestrator.Valuation, bool) { return f.latest, f.hasLatest }

func (f *fakeOrch) Recent(n int) []orchestrator.Valuation {
	if !f.hasLatest {
		return nil
	}
	return []orchestrator.Valuation{f.latest}
}

func (f *fakeOrch) LatestFrame() []byte { return f.frame }

func (f *fakeOrch) Picks() map[string]int { return f.picks }

func (f *fakeOrch) ResetPicks() { f.resetCalls.Add(1) }

func (f *fakeOrch) CheckNow(ctx context.Context) { f.checkCalls.Add(1) }

func testValuation() orchestrator.Valuation {
	return orchestrator.Valuation{
		Seq:          7,
		CapturedAt:   time.Now(),
		Screen:       "relic_reward",
		TimerSeconds: 4,
		Items: []orchestrator.ValuationItem{
			{Slot: 0, Name: "Forma Blueprint", Quantity: 1},
			{Slot: 1, Name: "Neo Prime Systems", Quantity: 1, Platinum: 4.5, Ducats: 45},
		},
	}
}

func TestValuationEndpoint(t *testing.T) {
	orch := newFakeOrch()
	srv := httptest.NewServer(New(orch).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/valuation")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("empty status = %d, want 404", resp.StatusCode)
	}

	orch.latest = testValuation()
	orch.hasLatest = true

	resp, err = http.Get(srv.URL + "/api/valuation")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var v orchestrator.Valuation
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Seq != 7 || len(v.Items) != 2 {
		t.Errorf("valuation = %+v", v)
	}
}

func TestValuationsLimit(t *testing.T) {
	orch := newFakeOrch()
	orch.latest = testValuation()
	orch.hasLatest = true
	srv := httptest.NewServer(New(orch).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/valuations?limit=0")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("limit=0 status = %d, want 400", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/valuations")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var vs []orchestrator.Valuation
	if err := json.NewDecoder(resp.Body).Decode(&vs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(vs) != 1 {
		t.Errorf("got %d valuations", len(vs))
	}
}

func TestCaptureEndpoint(t *testing.T) {
	orch := newFakeOrch()
	orch.frame = []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(New(orch).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/capture")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
}

func TestCheckEndpoint(t *testing.T) {
	orch := newFakeOrch()
	srv := httptest.NewServer(New(orch).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/check", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if orch.checkCalls.Load() != 1 {
		t.Errorf("check calls = %d, want 1", orch.checkCalls.Load())
	}
}

func TestPicksEndpoints(t *testing.T) {
	orch := newFakeOrch()
	orch.picks = map[string]int{"Forma Blueprint": 3}
	srv := httptest.NewServer(New(orch).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/picks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var picks map[string]int
	json.NewDecoder(resp.Body).Decode(&picks)
	resp.Body.Close()
	if picks["Forma Blueprint"] != 3 {
		t.Errorf("picks = %v", picks)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/picks", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()
	if orch.resetCalls.Load() != 1 {
		t.Errorf("reset calls = %d, want 1", orch.resetCalls.Load())
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := httptest.NewServer(New(newFakeOrch()).Handler())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/valuation", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("preflight status = %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}

func TestWebSocketBroadcast(t *testing.T) {
	orch := newFakeOrch()
	srv := httptest.NewServer(New(orch).Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	// connection registration races the broadcast; give it a moment
	time.Sleep(50 * time.Millisecond)
	orch.events <- testValuation()

	var msg ValuationMessage
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != "valuation" || msg.Seq != 7 || len(msg.Items) != 2 {
		t.Errorf("message = %+v", msg)
	}
}

func TestWebSocketCheck(t *testing.T) {
	orch := newFakeOrch()
	srv := httptest.NewServer(New(orch).Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := wsjson.Write(ctx, conn, Message{Type: "check"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var status StatusMessage
	if err := wsjson.Read(ctx, conn, &status); err != nil {
		t.Fatalf("read: %v", err)
	}
	if status.Status != "check_queued" {
		t.Errorf("status = %+v", status)
	}
	if orch.checkCalls.Load() != 1 {
		t.Errorf("check calls = %d", orch.checkCalls.Load())
	}
}

func TestRateLimiter(t *testing.T) {
	rl := &rateLimiter{}
	for i := 0; i < RateLimitMessages; i++ {
		if !rl.allow() {
			t.Fatalf("message %d rejected under the limit", i)
		}
	}
	if rl.allow() {
		t.Error("message over the limit allowed")
	}
}
