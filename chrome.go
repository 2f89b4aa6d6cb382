package folio

import "math"

// TargetKind says what clicking a Target does.
type TargetKind int

const (
	TargetNav TargetKind = iota
	TargetLogo
	TargetTool
	TargetTimeline
	TargetRoute
)

func (k TargetKind) String() string {
	switch k {
	case TargetNav:
		return "nav"
	case TargetLogo:
		return "logo"
	case TargetTool:
		return "tool"
	case TargetTimeline:
		return "timeline"
	case TargetRoute:
		return "route"
	}
	return "unknown"
}

// Target is a clickable element in screen coordinates.
type Target struct {
	Rect  Rect
	Kind  TargetKind
	ID    string
	Label string
	// Active marks the highlighted entry of its group.
	Active bool
	// Past marks timeline nodes above the active one.
	Past bool
}

const (
	logoLabel      = "PAC"
	chromePad      = 24.0
	navItemPad     = 24.0
	timelineGap    = 28.0
	timelineNode   = 14.0
	timelineMargin = 32.0
	linkHeight     = 24.0
)

// Chrome lists every clickable element, bottom-most first.
func (s *Scene) Chrome() []Target {
	return s.chrome()
}

// chrome is shared by Draw and hit testing so what is drawn is what responds
// to clicks.
func (s *Scene) chrome() []Target {
	var out []Target
	vw := s.viewport.Width

	if footer, ok := s.viewport.Bounds(footerID); ok && s.page.Route() == RouteHome {
		label := RouteImpressum.String()
		out = append(out, Target{
			Rect:  Rect{X: footer.X + chromePad, Y: footer.Bottom() - chromePad - linkHeight, Width: s.labelWidth(label) + 16, Height: linkHeight},
			Kind:  TargetRoute,
			ID:    RouteImpressum.String(),
			Label: label,
		})
	}
	if s.page.Route() != RouteHome {
		for _, sec := range s.page.Visible() {
			r, ok := s.viewport.Bounds(sec.ID)
			if !ok {
				continue
			}
			label := "< Back"
			out = append(out, Target{
				Rect:  Rect{X: r.X + chromePad, Y: r.Y + s.config.NavHeight + chromePad, Width: s.labelWidth(label) + 16, Height: linkHeight},
				Kind:  TargetRoute,
				ID:    RouteHome.String(),
				Label: label,
			})
			break
		}
	}

	if s.page.Route() == RouteHome {
		anchors := s.timeline.Anchors()
		state := s.timeline.State()
		n := anchors.Len()
		// The last node sits the ramp offset above the bottom edge, so the
		// timeline lifts clear of the footer near the end of the page.
		bottom := s.viewport.Height - s.progress.Current().Offset - timelineNode/2
		top := bottom - float64(n-1)*timelineGap
		for i := 0; i < n; i++ {
			a := anchors.At(i)
			cy := top + float64(i)*timelineGap
			out = append(out, Target{
				Rect:   Rect{X: vw - timelineMargin - timelineNode/2, Y: cy - timelineNode/2, Width: timelineNode, Height: timelineNode},
				Kind:   TargetTimeline,
				ID:     a.ID,
				Label:  a.Label,
				Active: i == state.ActiveIndex(),
				Past:   state.IsPast(i),
			})
		}
	}

	if s.subnavVisible && s.page.Route() == RouteHome {
		for i, it := range s.strip.Items {
			r := s.strip.ItemRect(i, s.config.SubNavHeight).Offset(0, s.config.NavHeight)
			if r.X+r.Width < 0 || r.X > vw {
				continue
			}
			out = append(out, Target{Rect: r, Kind: TargetTool, ID: it.ID, Label: it.Label, Active: s.subnav.Active() == it.ID})
		}
	}

	out = append(out, Target{
		Rect:  Rect{X: chromePad, Y: 0, Width: s.labelWidth(logoLabel) + 16, Height: s.config.NavHeight},
		Kind:  TargetLogo,
		ID:    s.config.HeroID,
		Label: logoLabel,
	})
	x := vw - chromePad
	nav := s.nav.Anchors()
	items := make([]Target, nav.Len())
	for i := nav.Len() - 1; i >= 0; i-- {
		a := nav.At(i)
		w := math.Ceil(s.labelWidth(a.Label) + navItemPad)
		x -= w
		items[i] = Target{
			Rect:   Rect{X: x, Y: 0, Width: w, Height: s.config.NavHeight},
			Kind:   TargetNav,
			ID:     a.ID,
			Label:  a.Label,
			Active: s.nav.Active() == a.ID,
		}
	}
	return append(out, items...)
}

func (s *Scene) labelWidth(label string) float64 {
	return math.Ceil(measure(s.Typeface.Label, label))
}
