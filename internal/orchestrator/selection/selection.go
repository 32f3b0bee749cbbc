// Package selection detects which reward slot the player picked and
// aggregates picks across a session.
package selection

import (
	"image"
	"image/color"
	"sync"

	"github.com/relicscope/platform/internal/region"
)

// Badge geometry relative to a 235px slot: a small highlight square sits
// near the top-right corner of the selected slot.
const (
	badgeFrac    = 12.0 / 235.0
	padRightFrac = 5.0 / 235.0
	padTopFrac   = 4.0 / 235.0

	// Mean per-channel deviation ceiling for a positive match.
	maxDeviation = 12.0
)

// DefaultHighlight approximates the stock UI theme accent color.
var DefaultHighlight = color.RGBA{R: 0xbc, G: 0xaa, B: 0x67, A: 0xff}

// Detector locates the highlighted slot by comparing each slot's corner
// badge against the theme highlight color.
type Detector struct {
	highlight color.RGBA
}

// NewDetector builds a detector for the given theme highlight color.
func NewDetector(highlight color.RGBA) *Detector {
	return &Detector{highlight: highlight}
}

// Selected returns the zero-based index of the highlighted slot. The second
// return is false when no slot is close enough to the highlight color.
func (d *Detector) Selected(img image.Image) (int, bool) {
	slots := region.SlotRects(img.Bounds())
	best := -1
	var bestDev float64

	for i, slot := range slots {
		size := max(int(float64(slot.Dx())*badgeFrac), 6)
		padR := max(int(float64(slot.Dx())*padRightFrac), 1)
		padT := max(int(float64(slot.Dy())*padTopFrac), 1)

		badge := image.Rect(
			slot.Max.X-padR-size,
			slot.Min.Y+padT,
			slot.Max.X-padR,
			slot.Min.Y+padT+size,
		).Intersect(img.Bounds())
		if badge.Empty() {
			continue
		}

		dev := deviation(averageColor(img, badge), d.highlight)
		if best == -1 || dev < bestDev {
			best = i
			bestDev = dev
		}
	}

	if best == -1 || bestDev >= maxDeviation {
		return 0, false
	}
	return best, true
}

func averageColor(img image.Image, rect image.Rectangle) color.RGBA {
	var r, g, b, n uint64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 0xff}
}

// deviation is the mean absolute per-channel difference.
func deviation(a, b color.RGBA) float64 {
	d := func(x, y uint8) float64 {
		if x > y {
			return float64(x - y)
		}
		return float64(y - x)
	}
	return (d(a.R, b.R) + d(a.G, b.G) + d(a.B, b.B)) / 3
}

// Tracker aggregates picked items across reward cycles.
type Tracker struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[string]int)}
}

// Record adds qty picks of item.
func (t *Tracker) Record(item string, qty int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[item] += qty
}

// Counts returns a copy of the aggregated picks.
func (t *Tracker) Counts() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// Reset clears all aggregated picks.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts = make(map[string]int)
}
