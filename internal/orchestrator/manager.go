// Package orchestrator drives the capture-to-valuation pipeline
package orchestrator

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/relicscope/platform/internal/capture"
	"github.com/relicscope/platform/internal/classify"
	"github.com/relicscope/platform/internal/match"
	"github.com/relicscope/platform/internal/ocr"
	"github.com/relicscope/platform/internal/orchestrator/history"
	"github.com/relicscope/platform/internal/orchestrator/selection"
	"github.com/relicscope/platform/internal/price"
	"github.com/relicscope/platform/internal/region"
	"github.com/relicscope/platform/internal/syncx"
	"github.com/relicscope/platform/internal/trace"
)

// Valuation re-exported for the API layer.
type Valuation = history.Valuation

// ValuationItem re-exported for the API layer.
type ValuationItem = history.Item

// Resolver resolves an item name to a price entry.
type Resolver interface {
	Resolve(ctx context.Context, item string) (price.Entry, error)
}

// Config holds pipeline timing parameters.
type Config struct {
	Interval    time.Duration
	OCRTimeout  time.Duration
	OCRWorkers  int
	GracePeriod time.Duration
}

// Deps are the pipeline stages the manager coordinates.
type Deps struct {
	Capturer   capture.Capturer
	Classifier *classify.Classifier
	Recognizer ocr.Recognizer
	Dictionary *match.Dictionary
	Resolver   Resolver
	Selector   *selection.Detector
}

// Manager runs the periodic capture pipeline and fans results out to the
// history store, pick tracker, and event consumers.
type Manager struct {
	deps Deps
	cfg  Config

	valuations *history.Store
	picks      *selection.Tracker

	latestFrame *syncx.RWGuard[[]byte]

	// Capture backends are not reentrant (the exec backends share a temp
	// file), so every Capture call goes through this mutex.
	capMu sync.Mutex

	seq        atomic.Uint64
	inFlight   atomic.Bool
	pending    atomic.Bool
	selPending atomic.Bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a manager. Start must be called before ticks run.
func New(deps Deps, cfg Config) *Manager {
	if cfg.OCRWorkers <= 0 {
		cfg.OCRWorkers = DefaultOCRWorkers
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}
	return &Manager{
		deps:        deps,
		cfg:         cfg,
		valuations:  history.NewStore(HistoryMaxEntries, ValuationEventBuffer),
		picks:       selection.NewTracker(),
		latestFrame: syncx.NewGuard[[]byte](nil),
		stopCh:      make(chan struct{}),
	}
}

// Start begins the tick loop.
func (m *Manager) Start(ctx context.Context) error {
	m.wg.Add(1)
	go m.loop(ctx)
	return nil
}

// Stop halts the tick loop and waits for in-flight work up to the grace
// period, after which it is abandoned.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(m.cfg.GracePeriod):
		trace.Logger(context.Background()).Warn("abandoning in-flight pipeline work")
	}
	m.deps.Capturer.Close()
}

// Events returns the channel of completed valuations, in tick order.
func (m *Manager) Events() <-chan Valuation {
	return m.valuations.Events()
}

// Latest returns the most recent valuation.
func (m *Manager) Latest() (Valuation, bool) {
	return m.valuations.Latest()
}

// Recent returns up to n recent valuations, newest first.
func (m *Manager) Recent(n int) []Valuation {
	return m.valuations.Recent(n)
}

// LatestFrame returns the raw bytes of the last captured frame.
func (m *Manager) LatestFrame() []byte {
	return m.latestFrame.Get()
}

// Picks returns the aggregated selections for this session.
func (m *Manager) Picks() map[string]int {
	return m.picks.Counts()
}

// ResetPicks clears the aggregated selections.
func (m *Manager) ResetPicks() {
	m.picks.Reset()
}

// CheckNow requests one pipeline pass outside the ticker. It follows the
// same single-in-flight rule as ticks: when a pass is already running the
// request is deferred, not run concurrently. The pass outlives the caller:
// cancellation of ctx (an HTTP request context, typically) must not abort
// OCR or price fetches already underway, so only its values are kept.
func (m *Manager) CheckNow(ctx context.Context) {
	m.runTick(context.WithoutCancel(ctx))
}

func (m *Manager) loop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.runTick(ctx)
		}
	}
}

// runTick starts a pipeline pass unless one is in flight, in which case
// the tick is deferred and runs immediately after the current pass.
func (m *Manager) runTick(ctx context.Context) {
	if !m.inFlight.CompareAndSwap(false, true) {
		m.pending.Store(true)
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		for {
			m.pass(ctx)
			if m.pending.CompareAndSwap(true, false) {
				continue
			}
			m.inFlight.Store(false)
			// A tick may have slipped in between the checks above.
			if m.pending.CompareAndSwap(true, false) && m.inFlight.CompareAndSwap(false, true) {
				continue
			}
			return
		}
	}()
}

// pass runs one capture-to-valuation cycle.
func (m *Manager) pass(ctx context.Context) {
	seq := m.seq.Add(1)
	ctx = trace.WithContext(ctx, trace.New())
	ctx, span := trace.StartSpan(ctx, "pipeline_pass")
	defer span.End()
	span.SetAttr("seq", seq)

	log := trace.Logger(ctx)

	frame, err := m.capture()
	if err != nil {
		log.Warn("capture failed", "error", err)
		return
	}
	m.latestFrame.Set(frame.Data)

	kind, conf := m.deps.Classifier.Classify(frame.Img)
	span.SetAttr("screen", kind.String())
	span.SetAttr("confidence", conf)
	if kind == classify.KindNone {
		return
	}

	regions := region.Extract(frame.Img, kind)
	if len(regions) == 0 {
		return
	}
	texts := m.recognizeAll(ctx, regions)

	v := m.assemble(ctx, seq, frame.At, kind, regions, texts)
	if len(v.Items) == 0 {
		return
	}

	m.valuations.Add(v)
	m.valuations.Emit(v)
	log.Info("valuation complete", "seq", seq, "screen", kind.String(), "items", len(v.Items))

	if kind == classify.KindRelicReward && v.TimerSeconds > SelectionLeadSeconds {
		m.scheduleSelectionCheck(ctx, v)
	}
}

// recognizeAll OCRs every region with a bounded worker pool. Results stay
// in region order; a failed or timed-out region yields an empty string.
func (m *Manager) recognizeAll(ctx context.Context, regions []region.TextRegion) []string {
	out := make([]string, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.cfg.OCRWorkers)
	for i, r := range regions {
		g.Go(func() error {
			log := trace.Logger(gctx)
			data, err := ocr.EncodePNG(r.Img)
			if err != nil {
				log.Debug("region encode failed", "tag", r.Tag, "error", err)
				return nil
			}

			rctx, cancel := context.WithTimeout(gctx, m.cfg.OCRTimeout)
			defer cancel()
			text, _, err := m.deps.Recognizer.Recognize(rctx, data)
			if err != nil {
				log.Debug("region recognition failed", "tag", r.Tag, "error", err)
				return nil
			}
			out[i] = text
			return nil
		})
	}
	g.Wait()
	return out
}

// assemble joins per-region readings into a valuation: item names are
// normalized against the dictionary and priced, owned counts and the
// countdown timer attach to their slots.
func (m *Manager) assemble(ctx context.Context, seq uint64, at time.Time, kind classify.ScreenKind, regions []region.TextRegion, texts []string) Valuation {
	log := trace.Logger(ctx)

	v := Valuation{
		Seq:        seq,
		CapturedAt: at,
		Screen:     kind.String(),
	}

	owned := map[int]int{}

	for i, r := range regions {
		switch {
		case strings.HasPrefix(r.Tag, "item-slot-"):
			mt, ok := m.deps.Dictionary.Resolve(texts[i])
			if !ok {
				if texts[i] != "" {
					log.Debug("unmatched reading", "tag", r.Tag, "text", texts[i])
				}
				continue
			}
			v.Items = append(v.Items, ValuationItem{
				Slot:       slotIndex(r.Tag),
				Name:       mt.Name,
				Quantity:   mt.Quantity,
				Similarity: mt.Similarity,
			})
		case strings.HasPrefix(r.Tag, "owned-slot-"):
			if n, ok := match.ParseOwned(texts[i]); ok {
				owned[slotIndex(r.Tag)] = n
			}
		case r.Tag == "timer":
			v.TimerSeconds = parseTimer(texts[i])
		}
	}

	for i := range v.Items {
		v.Items[i].Owned = owned[v.Items[i].Slot]

		entry, err := m.deps.Resolver.Resolve(ctx, v.Items[i].Name)
		if err != nil {
			log.Warn("price resolution failed", "item", v.Items[i].Name, "error", err)
			continue
		}
		v.Items[i].Platinum = entry.Platinum
		v.Items[i].Ducats = entry.Ducats
		v.Items[i].Vaulted = entry.Vaulted
		v.Items[i].Stale = entry.Stale
	}
	return v
}

// scheduleSelectionCheck re-captures shortly before the reward timer runs
// out to see which slot the player highlighted. At most one check is
// pending at a time.
func (m *Manager) scheduleSelectionCheck(ctx context.Context, v Valuation) {
	if m.deps.Selector == nil {
		return
	}
	if !m.selPending.CompareAndSwap(false, true) {
		return
	}

	delay := time.Duration(v.TimerSeconds-SelectionLeadSeconds) * time.Second
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.selPending.Store(false)

		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-timer.C:
		}

		log := trace.Logger(ctx)
		frame, err := m.capture()
		if err != nil {
			log.Debug("selection capture failed", "error", err)
			return
		}
		idx, ok := m.deps.Selector.Selected(frame.Img)
		if !ok {
			return
		}
		for _, it := range v.Items {
			if it.Slot == idx {
				m.picks.Record(it.Name, it.Quantity)
				log.Info("selection recorded", "item", it.Name, "quantity", it.Quantity)
				return
			}
		}
	}()
}

// capture grabs one frame while holding the capture mutex.
func (m *Manager) capture() (*capture.Frame, error) {
	m.capMu.Lock()
	defer m.capMu.Unlock()
	return m.deps.Capturer.Capture()
}

// slotIndex parses the trailing 1-based slot number of a region tag.
func slotIndex(tag string) int {
	n, err := strconv.Atoi(tag[strings.LastIndexByte(tag, '-')+1:])
	if err != nil {
		return 0
	}
	return n - 1
}

// parseTimer pulls the countdown seconds out of a noisy timer reading.
func parseTimer(text string) int {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
