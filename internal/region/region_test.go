package region

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/relicscope/platform/internal/classify"
)

func frameImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 64, 255})
		}
	}
	return img
}

func TestExtractNoneIsEmpty(t *testing.T) {
	regions := Extract(frameImage(1920, 1080), classify.KindNone)
	if len(regions) != 0 {
		t.Errorf("regions for KindNone = %d, want 0", len(regions))
	}
}

func TestExtractRelicRewardOrder(t *testing.T) {
	regions := Extract(frameImage(1920, 1080), classify.KindRelicReward)

	wantFirst := []string{"item-slot-1", "item-slot-2", "item-slot-3", "item-slot-4"}
	if len(regions) < len(wantFirst) {
		t.Fatalf("regions = %d, want at least %d", len(regions), len(wantFirst))
	}
	for i, tag := range wantFirst {
		if regions[i].Tag != tag {
			t.Errorf("regions[%d].Tag = %q, want %q", i, regions[i].Tag, tag)
		}
	}
	if regions[len(regions)-1].Tag != "timer" {
		t.Errorf("last region = %q, want timer", regions[len(regions)-1].Tag)
	}
}

func TestExtractSlotsLeftToRight(t *testing.T) {
	regions := Extract(frameImage(1920, 1080), classify.KindRelicReward)

	var lastX int = -1
	for _, r := range regions {
		if !strings.HasPrefix(r.Tag, "item-slot-") {
			continue
		}
		if r.Rect.Min.X <= lastX {
			t.Errorf("slot %s at x=%d not right of previous x=%d", r.Tag, r.Rect.Min.X, lastX)
		}
		lastX = r.Rect.Min.X
	}
}

func TestExtractScalesWithResolution(t *testing.T) {
	hi := Extract(frameImage(1920, 1080), classify.KindRelicReward)
	lo := Extract(frameImage(1280, 720), classify.KindRelicReward)

	if len(hi) != len(lo) {
		t.Fatalf("region counts differ: %d vs %d", len(hi), len(lo))
	}
	for i := range hi {
		hw := hi[i].Rect.Dx()
		lw := lo[i].Rect.Dx()
		// 1280/1920 scale, allow rounding slack
		ratio := float64(lw) / float64(hw)
		if ratio < 0.6 || ratio > 0.74 {
			t.Errorf("%s width ratio = %f, want ~0.667", hi[i].Tag, ratio)
		}
	}
}

func TestExtractCropsWithinBounds(t *testing.T) {
	img := frameImage(800, 450)
	bounds := img.Bounds()
	for _, r := range Extract(img, classify.KindRelicReward) {
		if !r.Rect.In(bounds) {
			t.Errorf("%s rect %v outside frame bounds %v", r.Tag, r.Rect, bounds)
		}
		if r.Img == nil {
			t.Errorf("%s has nil crop", r.Tag)
		}
	}
}

func TestExtractMissionProgressHasNoLayout(t *testing.T) {
	regions := Extract(frameImage(1920, 1080), classify.KindMissionProgress)
	if len(regions) != 0 {
		t.Errorf("regions = %d, want 0 (no layout registered yet)", len(regions))
	}
}
