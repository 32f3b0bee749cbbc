package ocr

import (
	"context"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/pkg/pb"
)

// Tesseract runs recognition in-process through a local tesseract install.
// The underlying client is not safe for concurrent use, so calls serialize
// on a mutex; run one Tesseract per worker when throughput matters.
type Tesseract struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseract initializes a local recognizer tuned for short item labels.
func NewTesseract() (*Tesseract, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, errors.Wrap(err, pb.ErrorCode_OCR_INIT_FAILED, "set language")
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, errors.Wrap(err, pb.ErrorCode_OCR_INIT_FAILED, "set page seg mode")
	}
	return &Tesseract{client: client}, nil
}

// Recognize extracts text from PNG bytes. Confidence is the mean word
// confidence reported by tesseract, scaled to [0,1].
func (t *Tesseract) Recognize(ctx context.Context, imageData []byte) (string, float64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, errors.Wrap(err, pb.ErrorCode_TIMEOUT, "recognize canceled")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.SetImageFromBytes(imageData); err != nil {
		return "", 0, errors.Wrap(err, pb.ErrorCode_OCR_INVALID_IMAGE, "set image")
	}
	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return "", 0, errors.Wrap(err, pb.ErrorCode_OCR_EXTRACT_FAILED, "extract text")
	}

	var (
		words []string
		total float64
	)
	for _, b := range boxes {
		word := strings.TrimSpace(b.Word)
		if word == "" {
			continue
		}
		words = append(words, word)
		total += b.Confidence
	}
	if len(words) == 0 {
		return "", 0, nil
	}
	return strings.Join(words, " "), total / float64(len(words)) / 100, nil
}

// Close releases the tesseract client.
func (t *Tesseract) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.client.Close()
}
