package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	sectionPadX  = 48.0
	sectionPadY  = 48.0
	lineSpacing  = 22.0
	progressBarH = 3.0
)

// Draw renders the page and its chrome. Queued screenshots are written
// after everything else is drawn.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.RGBA())
	view := Rect{Width: s.viewport.Width, Height: s.viewport.Height}

	for i, sec := range s.page.Visible() {
		r, ok := s.viewport.Bounds(sec.ID)
		if !ok || !r.Intersects(view) {
			continue
		}
		s.drawSection(screen, sec, r, i)
	}
	if r, ok := s.viewport.Bounds(footerID); ok && r.Intersects(view) {
		fillRect(screen, r, s.Theme.Text)
		drawText(screen, "(c) Paul Angeles Chaquire", r.X+sectionPadX, r.Y+sectionPadY, s.Typeface.Body, s.Theme.Surface)
	}

	s.drawChrome(screen)
	if s.debug {
		s.drawDebug(screen)
	}
	s.saveShots(screen)
}

func (s *Scene) drawSection(dst *ebiten.Image, sec *Section, r Rect, i int) {
	alpha := 1.0
	if s.page.Route() == RouteHome {
		alpha = s.FocusAlpha(sec.ID)
	}
	bg := s.Theme.Background
	if i%2 == 1 {
		bg = s.Theme.Surface
	}
	fillRect(dst, r, bg)

	if sec.ID == s.config.HeroID {
		if c, ok := s.fieldCanvas.(*ImageCanvas); ok && s.field.State() == FieldRunning {
			c.DrawTo(dst, r.X, r.Y)
		}
	}

	ink := s.Theme.Text.WithAlpha(alpha)
	y := r.Y + sectionPadY
	if s.page.Route() != RouteHome {
		y += s.config.NavHeight + linkHeight + sectionPadY
	}
	if sec.Header > 0 || len(sec.Items) == 0 {
		drawText(dst, sec.Label, r.X+sectionPadX, y, s.Typeface.Title, ink)
		y += s.Typeface.Title.LineHeight() + lineSpacing
	}
	for _, line := range sec.Body {
		drawText(dst, line, r.X+sectionPadX, y, s.Typeface.Body, ink.WithAlpha(0.7))
		y += s.Typeface.Body.LineHeight() + 6
	}

	for _, it := range sec.Items {
		ir, ok := s.viewport.Bounds(it.ID)
		if !ok {
			continue
		}
		card := Rect{X: ir.X + sectionPadX, Y: ir.Y, Width: ir.Width - 2*sectionPadX, Height: ir.Height}
		fillRect(dst, card, s.Theme.Muted.WithAlpha(0.15*alpha))
		col := s.Theme.Muted
		if s.subnav != nil && s.subnav.Active() == it.ID {
			col = s.Theme.Primary
		}
		fillRect(dst, Rect{X: card.X, Y: card.Y, Width: 4, Height: card.Height}, col.WithAlpha(alpha))
		drawText(dst, it.Label, card.X+24, card.Y+24, s.Typeface.Body, ink)
	}
}

func (s *Scene) drawChrome(dst *ebiten.Image) {
	vw := s.viewport.Width
	bar := Rect{Width: vw, Height: s.config.NavHeight}
	if s.scrolled {
		fillRect(dst, bar, s.Theme.Surface.WithAlpha(0.92))
		fillRect(dst, Rect{Y: bar.Bottom() - 1, Width: vw, Height: 1}, s.Theme.Muted.WithAlpha(0.4))
	}
	if s.subnavVisible {
		fillRect(dst, Rect{Y: s.config.NavHeight, Width: vw, Height: s.config.SubNavHeight}, s.Theme.Surface.WithAlpha(0.95))
	}

	var timeline []Target
	for _, t := range s.chrome() {
		switch t.Kind {
		case TargetNav, TargetTool:
			s.drawTab(dst, t)
		case TargetLogo, TargetRoute:
			s.drawCentered(dst, t, s.Theme.Primary)
		case TargetTimeline:
			timeline = append(timeline, t)
		}
	}
	s.drawTimeline(dst, timeline)
	s.drawProgress(dst)
}

func (s *Scene) drawTab(dst *ebiten.Image, t Target) {
	ink := s.Theme.Text.WithAlpha(0.75)
	if t.Active {
		ink = s.Theme.Primary
		fillRect(dst, Rect{X: t.Rect.X + 4, Y: t.Rect.Bottom() - 3, Width: t.Rect.Width - 8, Height: 3}, s.Theme.Primary)
	}
	s.drawCentered(dst, t, ink)
}

// drawCentered draws a target's label centered in its rectangle.
func (s *Scene) drawCentered(dst *ebiten.Image, t Target, c Color) {
	f := s.Typeface.Label
	w, h := f.MeasureString(t.Label)
	drawText(dst, t.Label, t.Rect.X+(t.Rect.Width-w)/2, t.Rect.Y+(t.Rect.Height-h)/2, f, c)
}

func (s *Scene) drawTimeline(dst *ebiten.Image, nodes []Target) {
	if len(nodes) == 0 {
		return
	}
	first, last := nodes[0].Rect, nodes[len(nodes)-1].Rect
	cx := float32(first.X + first.Width/2)
	vector.StrokeLine(dst, cx, float32(first.Y+first.Height/2), cx, float32(last.Y+last.Height/2),
		2, s.Theme.Muted.WithAlpha(0.5).RGBA(), true)
	for _, n := range nodes {
		col := s.Theme.Muted
		radius := float32(n.Rect.Width / 3)
		switch {
		case n.Active:
			col = s.Theme.Primary
			radius = float32(n.Rect.Width / 2)
		case n.Past:
			col = s.Theme.Primary.WithAlpha(0.6)
		}
		vector.DrawFilledCircle(dst, cx, float32(n.Rect.Y+n.Rect.Height/2), radius, col.RGBA(), true)
	}
}

// drawProgress draws the reading progress bar under the nav bar.
func (s *Scene) drawProgress(dst *ebiten.Image) {
	p := s.progress.Current()
	w := float32(s.viewport.Width * p.Progress / 100)
	vector.DrawFilledRect(dst, 0, float32(s.config.NavHeight), w, progressBarH, s.Theme.Primary.RGBA(), false)
}
