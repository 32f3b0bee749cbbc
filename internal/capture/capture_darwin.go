//go:build darwin

package capture

import (
	"bytes"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/pkg/pb"
)

type darwinBackend struct {
	tempDir string
	command string
}

func (d *darwinBackend) captureRaw() ([]byte, error) {
	tmpFile := filepath.Join(d.tempDir, "screenshot.jpg")
	tool := d.command
	if tool == "" {
		tool = "screencapture"
	}
	cmd := exec.Command(tool, "-x", "-t", "jpg", "-m", tmpFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, pb.ErrorCode_CAPTURE_FAILED, "screencapture: %s", stderr.String())
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_CAPTURE_FAILED, "read screenshot")
	}
	os.Remove(tmpFile)
	return data, nil
}

func (d *darwinBackend) cleanup() {}

// New creates a platform-specific screen capturer
func New(command string, maxHeight int) Capturer {
	tmpDir, err := os.MkdirTemp("", "relicscope-screen-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&darwinBackend{tempDir: tmpDir, command: command}, tmpDir, maxHeight)
}
