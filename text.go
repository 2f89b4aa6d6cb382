package folio

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font measures text for layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TTFFont is a TrueType face rendered through Ebitengine's text/v2.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64
}

// LoadTTFFont parses TrueType data at the given pixel size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("folio: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, size: size, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// debugFont measures ebitenutil's built-in debug font.
type debugFont struct{}

func (debugFont) MeasureString(s string) (float64, float64) {
	return textWidth(s), debugGlyphH
}

func (debugFont) LineHeight() float64 { return debugGlyphH }

// Typeface holds the faces used by the page.
type Typeface struct {
	Title Font
	Body  Font
	Label Font
}

// DefaultTypeface loads the Go fonts. Any face that fails to load falls back
// to the debug font.
func DefaultTypeface() (Typeface, error) {
	var firstErr error
	load := func(data []byte, size float64) Font {
		f, err := LoadTTFFont(data, size)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return debugFont{}
		}
		return f
	}
	tf := Typeface{
		Title: load(gobold.TTF, 32),
		Body:  load(goregular.TTF, 16),
		Label: load(goregular.TTF, 14),
	}
	return tf, firstErr
}

// DebugTypeface uses the debug font for everything.
func DebugTypeface() Typeface {
	return Typeface{Title: debugFont{}, Body: debugFont{}, Label: debugFont{}}
}

// drawText draws s with its top-left corner at (x, y). The debug font only
// prints white, so c becomes a plate behind the text instead.
func drawText(dst *ebiten.Image, s string, x, y float64, f Font, c Color) {
	ttf, ok := f.(*TTFFont)
	if !ok {
		fillRect(dst, Rect{X: x - 2, Y: y, Width: textWidth(s) + 4, Height: debugGlyphH}, c)
		ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.LineSpacing = ttf.lh
	text.Draw(dst, s, ttf.face, op)
}

func measure(f Font, s string) float64 {
	w, _ := f.MeasureString(s)
	return w
}
