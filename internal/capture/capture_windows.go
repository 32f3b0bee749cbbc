//go:build windows

package capture

import (
	"log/slog"
	"os"

	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/pkg/pb"
)

type windowsBackend struct{ tempDir string }

func (w *windowsBackend) captureRaw() ([]byte, error) {
	// TODO: implement using Windows GDI or DXGI
	return nil, errors.New(pb.ErrorCode_CAPTURE_FAILED, "windows screen capture not yet implemented")
}

func (w *windowsBackend) cleanup() {}

// New creates a platform-specific screen capturer
func New(command string, maxHeight int) Capturer {
	tmpDir, err := os.MkdirTemp("", "relicscope-screen-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&windowsBackend{tempDir: tmpDir}, tmpDir, maxHeight)
}
