// Package capture provides platform-agnostic screen capture
package capture

import (
	"bytes"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"time"

	"github.com/nfnt/resize"

	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/pkg/pb"
)

// Frame is a single captured screen image. It is owned by the pipeline tick
// that received it and must not be retained across ticks.
type Frame struct {
	Data []byte      // encoded bytes as produced by the backend
	Img  image.Image // decoded pixels
	At   time.Time   // capture timestamp
}

// decodeFrame decodes raw capture bytes into a Frame, downscaling to
// maxHeight when the capture is taller (0 disables downscaling).
func decodeFrame(data []byte, maxHeight int, at time.Time) (*Frame, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_CAPTURE_FAILED, "decode capture")
	}

	if maxHeight > 0 && img.Bounds().Dy() > maxHeight {
		img = resize.Resize(0, uint(maxHeight), img, resize.Bilinear)
	}

	return &Frame{Data: data, Img: img, At: at}, nil
}

// Width returns the decoded frame width in pixels.
func (f *Frame) Width() int { return f.Img.Bounds().Dx() }

// Height returns the decoded frame height in pixels.
func (f *Frame) Height() int { return f.Img.Bounds().Dy() }
