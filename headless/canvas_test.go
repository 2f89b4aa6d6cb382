package headless

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/folio"
)

func seededConfig(count int) folio.FieldConfig {
	cfg := folio.DefaultFieldConfig()
	cfg.Count = count
	cfg.Rand = rand.New(rand.NewPCG(3, 4))
	return cfg
}

func TestCanvasSetSize(t *testing.T) {
	c := NewCanvas()
	if c.Image() != nil {
		t.Error("Image before SetSize should be nil")
	}
	c.SetSize(200, 100, 2)
	b := c.Image().Bounds()
	if b.Dx() != 400 || b.Dy() != 200 {
		t.Errorf("backing = %dx%d, want 400x200", b.Dx(), b.Dy())
	}
	if c.Scale() != 2 {
		t.Errorf("Scale = %v, want 2", c.Scale())
	}
}

func TestCanvasWithoutSize(t *testing.T) {
	c := NewCanvas()
	c.Clear()
	c.StrokeLine(0, 0, 10, 10, 1, folio.ColorWhite)
	if c.Lines() != 0 {
		t.Error("unsized canvas should ignore strokes")
	}
	err := c.SavePNG(filepath.Join(t.TempDir(), "x.png"))
	if !errors.Is(err, folio.ErrNoRenderingContext) {
		t.Errorf("SavePNG err = %v", err)
	}
}

func TestCanvasStrokeLine(t *testing.T) {
	c := NewCanvas()
	c.SetSize(20, 20, 1)
	c.StrokeLine(2, 10, 18, 10, 4, folio.Color{R: 1, A: 1})
	if c.Lines() != 1 {
		t.Errorf("Lines = %d, want 1", c.Lines())
	}
	r, _, _, a := c.Image().At(10, 10).RGBA()
	if r == 0 || a == 0 {
		t.Error("stroke did not reach the backing image")
	}
	c.Clear()
	if c.Lines() != 0 {
		t.Error("Clear should reset the line count")
	}
	if _, _, _, a := c.Image().At(10, 10).RGBA(); a != 0 {
		t.Error("Clear should erase to transparent")
	}
}

func TestRenderField(t *testing.T) {
	ptr := folio.Vec2{X: 100, Y: 80}
	c, err := RenderField(seededConfig(40), FieldOptions{Width: 320, Height: 200, Frames: 10, Pointer: &ptr})
	if err != nil {
		t.Fatalf("RenderField: %v", err)
	}
	if c.Lines() != 40 {
		t.Errorf("Lines = %d, want 40", c.Lines())
	}
	b := c.Image().Bounds()
	if b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("size = %dx%d", b.Dx(), b.Dy())
	}

	path := filepath.Join(t.TempDir(), "field.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	scene, err := folio.NewScene(folio.DefaultSceneConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer scene.Close()
	scene.LogOutput = nil
	canvas := NewCanvas()
	scene.SetCanvasFactory(func() folio.Canvas { return canvas })
	scene.Step(1.0 / 60)
	if canvas.Lines() == 0 {
		t.Fatal("particle field did not draw into the headless canvas")
	}

	v := scene.Viewport()
	v.JumpTo(v.MaxScroll())
	scene.Evaluate()

	img, err := Snapshot(scene)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 1280 || b.Dy() != 800 {
		t.Errorf("snapshot = %dx%d, want 1280x800", b.Dx(), b.Dy())
	}
	// The progress bar spans the full width at the bottom of the page.
	r, g, _, _ := img.At(b.Dx()-5, int(scene.Config().NavHeight)+1).RGBA()
	if r>>8 < 140 || r>>8 > 150 || g>>8 > 40 {
		t.Errorf("progress bar pixel = %v", img.At(b.Dx()-5, int(scene.Config().NavHeight)+1))
	}

	path := filepath.Join(t.TempDir(), "snap.png")
	if err := SaveSnapshot(scene, path); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}
