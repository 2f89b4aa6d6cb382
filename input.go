package folio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// clickDeadZone is how far the pointer may travel between press and release
// and still count as a click.
const clickDeadZone = 4.0

type pointerState struct {
	x, y           float64
	down           bool
	startX, startY float64
	seen           bool
	hover          *Target
}

// processInput drains one injected event per frame. Real devices are only
// polled when the scene runs inside Run and no injected event was consumed.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.liveInput {
		return
	}
	mx, my := ebiten.CursorPosition()
	s.handlePointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		s.handlePointer(float64(tx), float64(ty), true)
	} else if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		s.handlePointer(s.pointer.x, s.pointer.y, false)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		s.handleWheel(-wy * s.config.WheelStep)
	}
	s.processKeys()
}

func (s *Scene) processKeys() {
	step := s.config.WheelStep
	page := s.viewport.Height * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.handleWheel(step)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.handleWheel(-step)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.handleWheel(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.handleWheel(-page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.viewport.JumpTo(0)
		s.needsEval = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.viewport.JumpTo(s.viewport.MaxScroll())
		s.needsEval = true
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		s.debug = !s.debug
	}
}

// handleWheel scrolls immediately by dy, cancelling any smooth scroll.
func (s *Scene) handleWheel(dy float64) {
	if dy == 0 {
		return
	}
	s.viewport.ScrollBy(dy)
	s.needsEval = true
}

// handlePointer feeds one pointer sample in screen coordinates.
func (s *Scene) handlePointer(x, y float64, pressed bool) {
	p := &s.pointer
	moved := !p.seen || x != p.x || y != p.y
	p.x, p.y, p.seen = x, y, true

	if moved {
		// Canvas-local, so a pointer outside the hero still releases
		// particles once it is out of reach.
		if hero, ok := s.viewport.Bounds(s.config.HeroID); ok {
			s.field.SetPointer(x-hero.X, y-hero.Y)
		}
		p.hover = s.hitTest(x, y)
	}

	switch {
	case pressed && !p.down:
		p.down = true
		p.startX, p.startY = x, y
	case !pressed && p.down:
		p.down = false
		if math.Hypot(x-p.startX, y-p.startY) <= clickDeadZone {
			s.click(x, y)
		}
	}
}

// click activates the chrome element under (x, y), if any.
func (s *Scene) click(x, y float64) {
	t := s.hitTest(x, y)
	if t == nil {
		return
	}
	if s.debug {
		s.logf("click: %s %q", t.Kind, t.ID)
	}
	var err error
	switch t.Kind {
	case TargetNav:
		if sec := s.page.Section(t.ID); sec != nil && sec.Route != RouteHome {
			s.router.Navigate(sec.Route)
			return
		}
		err = s.navigator.NavigateTo(t.ID)
	case TargetLogo, TargetTimeline:
		err = s.navigator.NavigateTo(t.ID)
	case TargetTool:
		err = s.navigator.NavigateWith(t.ID, s.config.ToolOffsets)
		if err == nil && s.subnav != nil {
			err = s.subnav.Force(t.ID)
		}
	case TargetRoute:
		var r Route
		r, err = ParseRoute(t.ID)
		if err == nil {
			s.router.Navigate(r)
		}
	}
	if err != nil {
		s.logf("click %q: %v", t.ID, err)
	}
}

// hitTest returns the topmost chrome element under (x, y).
func (s *Scene) hitTest(x, y float64) *Target {
	targets := s.chrome()
	for i := len(targets) - 1; i >= 0; i-- {
		if targets[i].Rect.Contains(x, y) {
			t := targets[i]
			return &t
		}
	}
	return nil
}

// Hovered returns the id of the chrome element under the pointer.
func (s *Scene) Hovered() (string, bool) {
	if s.pointer.hover == nil {
		return "", false
	}
	return s.pointer.hover.ID, true
}
