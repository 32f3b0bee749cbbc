// Package region maps classified screens to the sub-areas that carry text
package region

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/relicscope/platform/internal/classify"
)

// TextRegion is a tagged, OCR-ready crop of a frame.
type TextRegion struct {
	Tag  string
	Rect image.Rectangle
	Img  image.Image
}

// relRect is a rectangle in fractions of the frame size, derived from the
// 1920x1080 reference layout the game renders at default UI scale.
type relRect struct {
	x, y, w, h float64
}

func (r relRect) at(w, h int) image.Rectangle {
	fw, fh := float64(w), float64(h)
	x0 := int(r.x * fw)
	y0 := int(r.y * fh)
	x1 := x0 + max(int(r.w*fw), 1)
	y1 := y0 + max(int(r.h*fh), 1)
	return image.Rect(x0, y0, x1, y1)
}

const (
	slotCount = 4

	// Reference geometry: four 235px square slots with 10px gaps,
	// centered horizontally, row top at 380px of 1080.
	slotW    = 235.0 / 1920.0
	slotH    = 235.0 / 1080.0
	slotGap  = 10.0 / 1920.0
	slotTop  = 380.0 / 1080.0
	slotLeft = (1920.0 - 4*235.0 - 3*10.0) / 2.0 / 1920.0

	// Name strip occupies the bottom 30% of a slot with a 5% margin.
	nameMargin = 0.05 * 235.0 / 1920.0
	nameTop    = 0.70 * 235.0 / 1080.0
	nameH      = 0.30 * 235.0 / 1080.0

	// Owned count renders near the top of a slot.
	ownedH = 0.14 * 235.0 / 1080.0

	// Countdown timer above the slot row.
	timerSize   = 64.0 / 1920.0
	timerSizeV  = 64.0 / 1080.0
	timerOffset = 90.0 / 1080.0
)

// slotRect returns the bounding box of reward slot i (0-based) in fractions.
func slotRect(i int) relRect {
	return relRect{
		x: slotLeft + float64(i)*(slotW+slotGap),
		y: slotTop,
		w: slotW,
		h: slotH,
	}
}

// SlotRects returns the absolute bounding boxes of the reward slots within
// a frame of the given bounds, left to right.
func SlotRects(bounds image.Rectangle) []image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]image.Rectangle, slotCount)
	for i := range out {
		out[i] = slotRect(i).at(w, h).Add(bounds.Min)
	}
	return out
}

// layout returns the ordered region table for a screen kind. Item name
// regions come first so downstream ordering matches slot order.
func layout(kind classify.ScreenKind) []struct {
	tag string
	r   relRect
} {
	type entry = struct {
		tag string
		r   relRect
	}
	switch kind {
	case classify.KindRelicReward:
		out := make([]entry, 0, 2*slotCount+1)
		for i := 0; i < slotCount; i++ {
			s := slotRect(i)
			out = append(out, entry{
				tag: fmt.Sprintf("item-slot-%d", i+1),
				r:   relRect{x: s.x + nameMargin, y: s.y + nameTop, w: s.w - 2*nameMargin, h: nameH},
			})
		}
		for i := 0; i < slotCount; i++ {
			s := slotRect(i)
			out = append(out, entry{
				tag: fmt.Sprintf("owned-slot-%d", i+1),
				r:   relRect{x: s.x + nameMargin, y: s.y, w: s.w - 2*nameMargin, h: ownedH},
			})
		}
		center := slotLeft + (4*slotW+3*slotGap)/2
		out = append(out, entry{
			tag: "timer",
			r:   relRect{x: center - timerSize/2, y: slotTop - timerOffset, w: timerSize, h: timerSizeV},
		})
		return out
	default:
		return nil
	}
}

// Extract returns the ordered OCR regions for a classified frame. The
// sequence is empty for KindNone.
func Extract(img image.Image, kind classify.ScreenKind) []TextRegion {
	entries := layout(kind)
	if len(entries) == 0 {
		return nil
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	regions := make([]TextRegion, 0, len(entries))
	for _, e := range entries {
		rect := e.r.at(w, h).Add(bounds.Min).Intersect(bounds)
		if rect.Empty() {
			continue
		}
		crop := imaging.Crop(img, rect)
		regions = append(regions, TextRegion{
			Tag:  e.tag,
			Rect: rect,
			Img:  prepare(crop),
		})
	}
	return regions
}

// prepare preprocesses a crop for OCR: grayscale, contrast stretch, and a
// 2x upscale when the strip is too short for reliable recognition.
func prepare(img *image.NRGBA) image.Image {
	out := imaging.AdjustContrast(imaging.Grayscale(img), 25)
	if out.Bounds().Dy() < 32 {
		out = imaging.Resize(out, out.Bounds().Dx()*2, out.Bounds().Dy()*2, imaging.Lanczos)
	}
	return imaging.Sharpen(out, 0.6)
}
