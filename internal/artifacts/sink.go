// Package artifacts owns visual artifact capture. A Sink is constructed once
// per run and passed by reference to scenarios; there is no process-wide
// state. Capture is best effort by contract: a failed screenshot is logged
// and swallowed, and must never fail a test.
package artifacts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/errs"
	"github.com/kuitang/storefront-e2e/internal/obs"
)

// Sink persists screenshots under a per-run directory.
type Sink struct {
	dir string
	log *slog.Logger
}

// NewSink creates the run's artifact directory. An empty baseDir falls back
// to the system temp directory. The per-run subdirectory keeps parallel runs
// from interleaving their files.
func NewSink(baseDir string) (*Sink, error) {
	if baseDir == "" {
		baseDir = filepath.Join(os.TempDir(), "storefront-artifacts")
	}
	runDir := filepath.Join(baseDir, "run-"+uuid.NewString()[:8])
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact directory: %w", err)
	}
	return &Sink{
		dir: runDir,
		log: obs.Pkg("artifacts"),
	}, nil
}

// Dir returns the run's artifact directory.
func (s *Sink) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

// CaptureOnSuccess saves a snapshot of a passing scenario's final state.
func (s *Sink) CaptureOnSuccess(page playwright.Page, label string) {
	s.capture(page, label, "success")
}

// CaptureOnFailure saves a snapshot of a failing scenario's last rendered state.
func (s *Sink) CaptureOnFailure(page playwright.Page, label string) {
	s.capture(page, label, "failure")
}

// capture is shared by both modes; they differ only in filename suffix and
// call site.
func (s *Sink) capture(page playwright.Page, label, suffix string) {
	if s == nil {
		return
	}
	if page == nil {
		s.log.Warn("screenshot skipped, no page handle", "label", label, "mode", suffix)
		return
	}

	path := filepath.Join(s.dir, sanitizeLabel(label)+"-"+suffix+".png")
	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		capErr := errs.Wrap(errs.ScreenshotCapture, "screenshot capture failed", err)
		s.log.Warn("screenshot capture failed",
			"label", label,
			"mode", suffix,
			"path", path,
			"error", capErr.Error(),
		)
		return
	}
	s.log.Debug("screenshot captured", "label", label, "mode", suffix, "path", path)
}

// sanitizeLabel makes a label safe as a filename component.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unnamed"
	}
	var b strings.Builder
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
