// Package headless renders folio scenes and particle fields without a window,
// using gg for rasterization. It backs the snapshot command and image tests.
package headless

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/phanxgames/folio"
)

// Canvas is a folio.Canvas backed by a gg context. Coordinates are logical
// pixels; the backing image is scaled by the device pixel ratio.
type Canvas struct {
	dc    *gg.Context
	scale float64
	lines int
}

// NewCanvas creates a canvas with no backing image. SetSize allocates it.
func NewCanvas() *Canvas {
	return &Canvas{scale: 1}
}

// SetSize implements folio.Canvas.
func (c *Canvas) SetSize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	w := max(1, int(math.Ceil(width*scale)))
	h := max(1, int(math.Ceil(height*scale)))
	c.scale = scale
	if c.dc != nil && c.dc.Width() == w && c.dc.Height() == h {
		return
	}
	c.dc = gg.NewContext(w, h)
}

// Clear implements folio.Canvas.
func (c *Canvas) Clear() {
	if c.dc == nil {
		return
	}
	c.dc.SetRGBA(0, 0, 0, 0)
	c.dc.Clear()
	c.lines = 0
}

// StrokeLine implements folio.Canvas.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col folio.Color) {
	if c.dc == nil {
		return
	}
	s := c.scale
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width * s)
	c.dc.SetLineCapRound()
	c.dc.DrawLine(x0*s, y0*s, x1*s, y1*s)
	c.dc.Stroke()
	c.lines++
}

// Lines returns the number of segments stroked since the last Clear.
func (c *Canvas) Lines() int {
	return c.lines
}

// Scale returns the device pixel ratio of the backing image.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Image returns the backing image, or nil before SetSize.
func (c *Canvas) Image() image.Image {
	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}

// SavePNG writes the backing image to path.
func (c *Canvas) SavePNG(path string) error {
	if c.dc == nil {
		return fmt.Errorf("save %s: %w", path, folio.ErrNoRenderingContext)
	}
	return c.dc.SavePNG(path)
}

// FieldOptions controls RenderField.
type FieldOptions struct {
	Width, Height float64
	Scale         float64
	// Frames is how many frames to advance before returning.
	Frames int
	// Pointer, when set, is the pointer position for every frame.
	Pointer *folio.Vec2
}

// RenderField runs a particle field for opts.Frames frames on a fresh canvas
// and returns the canvas holding the last frame.
func RenderField(cfg folio.FieldConfig, opts FieldOptions) (*Canvas, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	canvas := NewCanvas()
	loop := folio.NewFrameLoop()
	field := folio.NewParticleField(cfg)
	if err := field.Attach(canvas, loop, opts.Width, opts.Height, opts.Scale); err != nil {
		return nil, err
	}
	defer field.Detach()
	if opts.Pointer != nil {
		field.SetPointer(opts.Pointer.X, opts.Pointer.Y)
	}
	loop.Advance(max(1, opts.Frames), 1.0/60)
	return canvas, nil
}
