package folio

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

// pendingShot is a screenshot request with the page state it was taken in.
type pendingShot struct {
	label   string
	route   Route
	scrollY float64
}

// fileName returns "<route>-<scroll>px-<label>-<stamp>.png".
func (p pendingShot) fileName(stamp string) string {
	return fmt.Sprintf("%s-%04.0fpx-%s-%s.png", p.route, p.scrollY, fileSafe(p.label), stamp)
}

// Screenshot asks for the next drawn frame to be saved as a PNG under
// ScreenshotDir. The route and scroll offset at the time of the call are
// part of the file name.
func (s *Scene) Screenshot(label string) {
	s.shots = append(s.shots, pendingShot{label: label, route: s.page.Route(), scrollY: s.viewport.ScrollY()})
}

// saveShots writes screen once for every pending request.
func (s *Scene) saveShots(screen *ebiten.Image) {
	if len(s.shots) == 0 {
		return
	}
	defer func() { s.shots = s.shots[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.logf("screenshot: %v", err)
		return
	}
	frame := readImage(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, shot := range s.shots {
		if err := writePNG(filepath.Join(s.ScreenshotDir, shot.fileName(stamp)), frame); err != nil {
			s.logf("screenshot %q: %v", shot.label, err)
		}
	}
}

// readImage copies img's pixels into straight-alpha NRGBA.
func readImage(img *ebiten.Image) *image.NRGBA {
	b := img.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	img.ReadPixels(pixels)
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	unpremultiply(out.Pix, pixels)
	return out
}

// unpremultiply converts premultiplied RGBA bytes in src to straight alpha.
func unpremultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
	}
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// fileSafe keeps letters, digits, '-' and '.', mapping everything else to
// '_'. An empty label becomes "shot".
func fileSafe(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "shot"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
