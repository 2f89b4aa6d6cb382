package folio

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
		{"hello", "hello"},
		{"after-scroll", "after-scroll"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"", "shot"},
		{"   ", "shot"},
		{"Über", "_ber"},
	}
	for _, tt := range tests {
		if got := fileSafe(tt.in); got != tt.want {
			t.Errorf("fileSafe(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotRecordsPageState(t *testing.T) {
	s, _ := newTestScene(t)
	s.Screenshot("top")
	s.Viewport().JumpTo(700)
	s.Screenshot("about me")
	s.Screenshot("")
	if len(s.shots) != 3 {
		t.Fatalf("pending = %d, want 3", len(s.shots))
	}

	tests := []struct {
		shot pendingShot
		want string
	}{
		{s.shots[0], "home-0000px-top-stamp.png"},
		{s.shots[1], "home-0700px-about_me-stamp.png"},
		{s.shots[2], "home-0700px-shot-stamp.png"},
	}
	for _, tt := range tests {
		if got := tt.shot.fileName("stamp"); got != tt.want {
			t.Errorf("fileName = %q, want %q", got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	src := []byte{
		100, 50, 0, 200,
		0, 0, 0, 0, // transparent
		255, 255, 255, 255,
	}
	dst := make([]byte, len(src))
	unpremultiply(dst, src)
	if dst[0] != 127 || dst[1] != 63 || dst[2] != 0 || dst[3] != 200 {
		t.Errorf("pixel 0 = %v", dst[0:4])
	}
	for i := 4; i < 8; i++ {
		if dst[i] != 0 {
			t.Errorf("transparent pixel = %v", dst[4:8])
			break
		}
	}
	if dst[8] != 255 || dst[11] != 255 {
		t.Errorf("opaque pixel = %v", dst[8:12])
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.NRGBA{R: 145, G: 30, B: 33, A: 255})
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v", b)
	}
	r, _, _, a := got.At(1, 1).RGBA()
	if r>>8 != 145 || a>>8 != 255 {
		t.Errorf("pixel = %v", got.At(1, 1))
	}
}
