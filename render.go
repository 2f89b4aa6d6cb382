package folio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Theme holds the colors used to draw the page.
type Theme struct {
	Background Color
	Surface    Color
	Primary    Color
	Muted      Color
	Text       Color
}

// DefaultTheme is the light theme with the red accent.
var DefaultTheme = Theme{
	Background: Color{R: 0.97, G: 0.97, B: 0.96, A: 1},
	Surface:    Color{R: 1, G: 1, B: 1, A: 1},
	Primary:    Color{R: 145.0 / 255, G: 30.0 / 255, B: 33.0 / 255, A: 1},
	Muted:      Color{R: 0.55, G: 0.55, B: 0.55, A: 1},
	Text:       Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
}

// whitePixel is a 1x1 white image scaled and tinted to draw solid rects.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.RGBA())
	}
	return whitePixel
}

// fillRect draws a solid rectangle.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	dst.DrawImage(pixel(), &op)
}

// debugGlyphW and debugGlyphH are the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// textWidth returns the width of s in the debug font.
func textWidth(s string) float64 {
	return float64(len([]rune(s)) * debugGlyphW)
}

// ImageCanvas is a Canvas backed by an offscreen ebiten image. Drawing uses
// logical coordinates; the backing image is scaled by the device pixel ratio
// and allocated on first use.
type ImageCanvas struct {
	img   *ebiten.Image
	w, h  int
	scale float64
}

// NewImageCanvas creates a canvas with no backing image.
func NewImageCanvas() *ImageCanvas {
	return &ImageCanvas{scale: 1}
}

// SetSize implements Canvas.
func (c *ImageCanvas) SetSize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.scale = scale
	c.w = max(1, int(math.Ceil(width*scale)))
	c.h = max(1, int(math.Ceil(height*scale)))
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() != c.w || b.Dy() != c.h {
			c.img.Deallocate()
			c.img = nil
		}
	}
}

func (c *ImageCanvas) ensure() *ebiten.Image {
	if c.img == nil && c.w > 0 && c.h > 0 {
		c.img = ebiten.NewImage(c.w, c.h)
	}
	return c.img
}

// Clear implements Canvas.
func (c *ImageCanvas) Clear() {
	if img := c.ensure(); img != nil {
		img.Clear()
	}
}

// StrokeLine implements Canvas.
func (c *ImageCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	img := c.ensure()
	if img == nil {
		return
	}
	s := c.scale
	vector.StrokeLine(img,
		float32(x0*s), float32(y0*s), float32(x1*s), float32(y1*s),
		float32(width*s), col.RGBA(), true)
}

// Size returns the backing size in device pixels.
func (c *ImageCanvas) Size() (width, height int) {
	return c.w, c.h
}

// Image returns the backing image, or nil before SetSize.
func (c *ImageCanvas) Image() *ebiten.Image {
	return c.ensure()
}

// DrawTo draws the canvas onto dst with its top-left corner at (x, y) in
// logical pixels.
func (c *ImageCanvas) DrawTo(dst *ebiten.Image, x, y float64) {
	if c.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(1/c.scale, 1/c.scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(c.img, &op)
}
