package headless

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/phanxgames/folio"
)

const (
	titleSize = 24.0
	bodySize  = 13.0
	padX      = 48.0
	padY      = 48.0
)

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error
)

func loadFace(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = truetype.Parse(gomono.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("parse font: %w", fontErr)
	}
	return truetype.NewFace(fontTTF, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Snapshot rasterizes the scene's current state: visible sections with their
// focus opacity, the particle field, the navigation chrome and the progress
// bar. The particle field is included when the scene's canvas is a *Canvas.
func Snapshot(scene *folio.Scene) (image.Image, error) {
	vp := scene.Viewport()
	w, h := int(vp.Width), int(vp.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("snapshot: empty viewport %dx%d", w, h)
	}
	title, err := loadFace(titleSize)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	body, err := loadFace(bodySize)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	theme := scene.Theme
	dc := gg.NewContext(w, h)
	setColor(dc, scene.ClearColor)
	dc.Clear()

	view := folio.Rect{Width: vp.Width, Height: vp.Height}
	home := scene.Page().Route() == folio.RouteHome
	for i, sec := range scene.Page().Visible() {
		r, ok := vp.Bounds(sec.ID)
		if !ok || !r.Intersects(view) {
			continue
		}
		bg := theme.Background
		if i%2 == 1 {
			bg = theme.Surface
		}
		fillRect(dc, r, bg)

		if sec.ID == scene.Config().HeroID {
			if c, ok := scene.FieldCanvas().(*Canvas); ok && c.dc != nil {
				dc.Push()
				dc.Translate(r.X, r.Y)
				dc.Scale(1/c.scale, 1/c.scale)
				dc.DrawImage(c.dc.Image(), 0, 0)
				dc.Pop()
			}
		}

		alpha := 1.0
		if home {
			alpha = scene.FocusAlpha(sec.ID)
		}
		ink := theme.Text.WithAlpha(alpha)
		y := r.Y + padY
		if !home {
			y += scene.Config().NavHeight + padY
		}
		dc.SetFontFace(title)
		setColor(dc, ink)
		dc.DrawStringAnchored(sec.Label, r.X+padX, y, 0, 1)
		y += titleSize * 2
		dc.SetFontFace(body)
		setColor(dc, ink.WithAlpha(0.7))
		for _, line := range sec.Body {
			dc.DrawStringAnchored(line, r.X+padX, y, 0, 1)
			y += bodySize * 1.6
		}
		for _, it := range sec.Items {
			ir, ok := vp.Bounds(it.ID)
			if !ok {
				continue
			}
			card := folio.Rect{X: ir.X + padX, Y: ir.Y, Width: ir.Width - 2*padX, Height: ir.Height}
			fillRect(dc, card, theme.Muted.WithAlpha(0.15*alpha))
			setColor(dc, ink)
			dc.DrawStringAnchored(it.Label, card.X+24, card.Y+24, 0, 1)
		}
	}

	if r, ok := vp.Bounds("footer"); ok && r.Intersects(view) {
		fillRect(dc, r, theme.Text)
	}

	if scene.Scrolled() {
		fillRect(dc, folio.Rect{Width: vp.Width, Height: scene.Config().NavHeight}, theme.Surface.WithAlpha(0.92))
	}
	if scene.SubNavVisible() {
		fillRect(dc, folio.Rect{Y: scene.Config().NavHeight, Width: vp.Width, Height: scene.Config().SubNavHeight}, theme.Surface.WithAlpha(0.95))
	}
	dc.SetFontFace(body)
	var timeline []folio.Target
	for _, t := range scene.Chrome() {
		if t.Kind == folio.TargetTimeline {
			timeline = append(timeline, t)
			continue
		}
		col := theme.Text.WithAlpha(0.75)
		if t.Active || t.Kind == folio.TargetLogo || t.Kind == folio.TargetRoute {
			col = theme.Primary
		}
		if t.Active {
			fillRect(dc, folio.Rect{X: t.Rect.X + 4, Y: t.Rect.Bottom() - 3, Width: t.Rect.Width - 8, Height: 3}, theme.Primary)
		}
		setColor(dc, col)
		dc.DrawStringAnchored(t.Label, t.Rect.X+t.Rect.Width/2, t.Rect.Y+t.Rect.Height/2, 0.5, 0.5)
	}
	drawTimeline(dc, timeline, theme)

	p := scene.Progress().Current()
	fillRect(dc, folio.Rect{Y: scene.Config().NavHeight, Width: vp.Width * p.Progress / 100, Height: 3}, theme.Primary)
	return dc.Image(), nil
}

// SaveSnapshot renders the scene and writes it to path as PNG.
func SaveSnapshot(scene *folio.Scene, path string) error {
	img, err := Snapshot(scene)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

func drawTimeline(dc *gg.Context, nodes []folio.Target, theme folio.Theme) {
	if len(nodes) == 0 {
		return
	}
	first, last := nodes[0].Rect, nodes[len(nodes)-1].Rect
	cx := first.X + first.Width/2
	setColor(dc, theme.Muted.WithAlpha(0.5))
	dc.SetLineWidth(2)
	dc.DrawLine(cx, first.Y+first.Height/2, cx, last.Y+last.Height/2)
	dc.Stroke()
	for _, n := range nodes {
		col, radius := theme.Muted, n.Rect.Width/3
		switch {
		case n.Active:
			col, radius = theme.Primary, n.Rect.Width/2
		case n.Past:
			col = theme.Primary.WithAlpha(0.6)
		}
		setColor(dc, col)
		dc.DrawCircle(cx, n.Rect.Y+n.Rect.Height/2, radius)
		dc.Fill()
	}
}

func fillRect(dc *gg.Context, r folio.Rect, c folio.Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	setColor(dc, c)
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.Fill()
}

func setColor(dc *gg.Context, c folio.Color) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
