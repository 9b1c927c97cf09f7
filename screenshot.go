package lockerroom

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labelled capture of the next drawn frame. Files land in
// Config.ScreenshotDir as <timestamp>_<mode>_<label>.png.
func (s *Session) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

func (s *Session) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = s.screenshotQueue[:0]

	dir := s.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", dir).Msg("creating screenshot dir")
		return
	}

	b := screen.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(frame.Pix)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(dir, screenshotName(stamp, s.Mode(), label))
		if err := savePNG(path, frame); err != nil {
			s.log.Error().Err(err).Msg("saving screenshot")
			continue
		}
		s.log.Info().Str("path", path).Str("mode", s.Mode().String()).Msg("screenshot saved")
	}
}

func screenshotName(stamp string, mode Mode, label string) string {
	return fmt.Sprintf("%s_%s_%s.png", stamp, mode, fileSafe(label))
}

// savePNG writes img to path. Ebitengine pixels are premultiplied, which is
// what image.RGBA holds, so the encoder converts them itself.
func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// fileSafe keeps letters, digits, '-' and '.'; anything else becomes '_'.
func fileSafe(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
}
