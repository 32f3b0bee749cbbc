// Package ocr provides text recognition behind a backend-neutral contract
package ocr

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/pkg/pb"
)

// Recognizer extracts text from an encoded image region. Implementations may
// be slow (hundreds of milliseconds); callers bound them with a context
// deadline.
type Recognizer interface {
	Recognize(ctx context.Context, imageData []byte) (text string, confidence float64, err error)
	Close() error
}

// EncodePNG renders a region crop to PNG bytes for a Recognizer.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_OCR_INVALID_IMAGE, "encode region")
	}
	return buf.Bytes(), nil
}
