package lockerroom

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSafe(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"about", "about"},
		{"after-select", "after-select"},
		{"frame.01", "frame.01"},
		{"work locker", "work_locker"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := fileSafe(tt.in); got != tt.want {
				t.Errorf("fileSafe(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScreenshotName(t *testing.T) {
	got := screenshotName("20260101_120000", ModeFocused, "about panel")
	if want := "20260101_120000_focused_about_panel.png"; got != want {
		t.Errorf("screenshotName = %q, want %q", got, want)
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := newTestSession(t)
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
	if s.Config().ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", s.Config().ScreenshotDir)
	}
}

func TestSavePNGPremultiplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 128, G: 64, A: 128})
	src.SetRGBA(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if err := savePNG(path, src); err != nil {
		t.Fatalf("savePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	half := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if half.A != 128 || half.R != 255 {
		t.Errorf("half-transparent pixel = %+v, want straight alpha R=255 A=128", half)
	}
	opaque := color.NRGBAModel.Convert(img.At(1, 0)).(color.NRGBA)
	if opaque != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("opaque pixel = %+v", opaque)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := savePNG(path, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
