package capture

import (
	"os"
	"time"
)

// Capturer captures screenshots of the primary display.
type Capturer interface {
	Capture() (*Frame, error)
	Close()
}

// backend implements platform-specific raw capture
type backend interface {
	captureRaw() ([]byte, error)
	cleanup()
}

// baseCapturer decodes and downscales what the backend produces.
type baseCapturer struct {
	backend
	maxHeight int
	tempDir   string
}

func newBase(b backend, tempDir string, maxHeight int) *baseCapturer {
	return &baseCapturer{backend: b, tempDir: tempDir, maxHeight: maxHeight}
}

func (c *baseCapturer) Capture() (*Frame, error) {
	at := time.Now()
	data, err := c.captureRaw()
	if err != nil {
		return nil, err
	}
	return decodeFrame(data, c.maxHeight, at)
}

func (c *baseCapturer) Close() {
	c.cleanup()
	if c.tempDir != "" {
		os.RemoveAll(c.tempDir)
	}
}
