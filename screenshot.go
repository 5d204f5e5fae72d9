package blit

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Screenshot queues a labeled screenshot of the surface. It is captured after
// the current tick's commit and written to ScreenshotDir as a timestamped PNG.
func (p *Pipeline) Screenshot(label string) {
	p.screenshotQueue = append(p.screenshotQueue, label)
}

// flushScreenshots writes every queued label. Failures are logged; like a
// failed commit they never stop the loop.
func (p *Pipeline) flushScreenshots() {
	if len(p.screenshotQueue) == 0 {
		return
	}
	defer func() { p.screenshotQueue = p.screenshotQueue[:0] }()

	if err := os.MkdirAll(p.ScreenshotDir, 0o755); err != nil {
		p.log.Warn("screenshot", zap.String("dir", p.ScreenshotDir), zap.Error(err))
		return
	}

	img := p.surface.Image()
	stamp := time.Now().Format("20060102_150405")

	for _, label := range p.screenshotQueue {
		path := filepath.Join(p.ScreenshotDir, fmt.Sprintf("%s_%06d_%s.png", stamp, p.ticks, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			p.log.Warn("screenshot", zap.Error(err))
			continue
		}
		p.log.Debug("screenshot written", zap.String("path", path))
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
