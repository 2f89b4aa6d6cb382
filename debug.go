package folio

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugLines describes the scroll state, one fact per line.
func (s *Scene) debugLines() []string {
	p := s.progress.Current()
	lines := []string{
		fmt.Sprintf("route: %s  scrollY: %.0f/%.0f", s.page.Route(), s.viewport.Y, s.viewport.MaxScroll()),
		fmt.Sprintf("nav: %s  timeline: %s  focus: %s", s.nav.Active(), s.timeline.Active(), s.focus.Active()),
		fmt.Sprintf("progress: %.1f%%  offset: %.0f", p.Progress, p.Offset),
		fmt.Sprintf("particles: %d (%s)  frames: %d", s.field.Len(), s.field.State(), s.loop.Frames()),
	}
	if s.subnav != nil {
		lines = append(lines, fmt.Sprintf("subnav: %s  visible: %t", s.subnav.Active(), s.subnavVisible))
	}
	if target, ok := s.navigator.Pending(); ok {
		lines = append(lines, "pending: "+target)
	}
	return lines
}

func (s *Scene) drawDebug(dst *ebiten.Image) {
	lines := append([]string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}, s.debugLines()...)
	text := strings.Join(lines, "\n")
	w := 0.0
	for _, l := range lines {
		w = max(w, textWidth(l))
	}
	y := s.viewport.Height - float64(len(lines)*debugGlyphH) - 8
	fillRect(dst, Rect{X: 4, Y: y - 4, Width: w + 8, Height: float64(len(lines)*debugGlyphH) + 8}, Color{A: 0.6})
	ebitenutil.DebugPrintAt(dst, text, 8, int(y))
}
