//go:build linux

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

type linuxBackend struct {
	tempDir string
	command string
}

func (l *linuxBackend) captureRaw() ([]byte, error) {
	tmpFile := filepath.Join(l.tempDir, "screenshot.jpg")
	// Honor an explicit tool override, then gnome-screenshot, then scrot
	var cmd *exec.Cmd
	switch {
	case l.command != "":
		cmd = exec.Command(l.command, tmpFile)
	default:
		if _, err := exec.LookPath("gnome-screenshot"); err == nil {
			cmd = exec.Command("gnome-screenshot", "-f", tmpFile)
		} else if _, err := exec.LookPath("scrot"); err == nil {
			cmd = exec.Command("scrot", "-o", tmpFile)
		} else {
			return nil, errors.New(pb.ErrorCode_CAPTURE_FAILED, "no screenshot tool found (install gnome-screenshot or scrot)")
		}
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, pb.ErrorCode_CAPTURE_FAILED, "screenshot: %s", stderr.String())
	}
	data, err := os.ReadFile(tmpFile)
	if err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_CAPTURE_FAILED, "read screenshot")
	}
	os.Remove(tmpFile)
	return data, nil
}

func (l *linuxBackend) cleanup() {}

// New creates a platform-specific screen capturer
func New(command string, maxHeight int) Capturer {
	tmpDir, err := os.MkdirTemp("", "relicscope-screen-*")
	if err != nil {
		slog.Error("failed to create temp dir", "error", err)
		tmpDir = os.TempDir()
	}
	return newBase(&linuxBackend{tempDir: tmpDir, command: command}, tmpDir, maxHeight)
}
