package folio

import (
	"math"

	"github.com/tanema/gween/ease"
)

// StripItem is one entry of a horizontal Strip.
type StripItem struct {
	ID    string
	Label string
	Width float64
}

// Strip is a horizontally scrollable row of items, used for the tools
// sub-navigation. When the active item changes the strip scrolls so that item
// is left-aligned, clamped to the scrollable range.
type Strip struct {
	Items []StripItem
	Gap   float64
	// ViewWidth is the visible width of the strip.
	ViewWidth float64
	// X is the horizontal scroll offset.
	X float64

	Duration float32
	Ease     ease.TweenFunc

	lefts  []float64
	total  float64
	scroll *FloatTween
}

// NewStrip creates a strip and computes its layout.
func NewStrip(items []StripItem, gap, viewWidth float64) *Strip {
	s := &Strip{Items: items, Gap: gap, ViewWidth: viewWidth, Duration: 0.3, Ease: ease.OutCubic}
	s.layout()
	return s
}

func (s *Strip) layout() {
	s.lefts = s.lefts[:0]
	x := 0.0
	for i, it := range s.Items {
		if i > 0 {
			x += s.Gap
		}
		s.lefts = append(s.lefts, x)
		x += it.Width
	}
	s.total = x
}

// Resize changes the visible width and re-clamps the offset.
func (s *Strip) Resize(viewWidth float64) {
	s.ViewWidth = viewWidth
	s.X = clamp(s.X, 0, s.MaxScroll())
}

// MaxScroll returns the largest valid horizontal offset.
func (s *Strip) MaxScroll() float64 {
	return math.Max(0, s.total-s.ViewWidth)
}

// ItemRect returns item i's rectangle relative to the strip's visible left
// edge (scroll offset applied), with the given row height.
func (s *Strip) ItemRect(i int, height float64) Rect {
	return Rect{X: s.lefts[i] - s.X, Y: 0, Width: s.Items[i].Width, Height: height}
}

// Focus scrolls so the item with the given id is left-aligned.
func (s *Strip) Focus(id string) bool {
	for i, it := range s.Items {
		if it.ID == id {
			s.scroll = TweenFloat(&s.X, clamp(s.lefts[i], 0, s.MaxScroll()), s.Duration, s.Ease)
			return true
		}
	}
	return false
}

// ItemAt returns the id of the item under the strip-local x coordinate.
func (s *Strip) ItemAt(x float64) (string, bool) {
	for i, it := range s.Items {
		left := s.lefts[i] - s.X
		if x >= left && x <= left+it.Width {
			return it.ID, true
		}
	}
	return "", false
}

func (s *Strip) update(dt float32) {
	if s.scroll == nil {
		return
	}
	s.scroll.Update(dt)
	if s.scroll.Done {
		s.scroll = nil
	}
}

// SubNavVisible reports whether the sub-navigation should be shown: the
// section's top has reached navHeight+reveal and its bottom has not yet passed
// under the navigation bar.
func SubNavVisible(doc Document, sectionID string, navHeight, reveal float64) bool {
	r, ok := doc.Bounds(sectionID)
	if !ok {
		return false
	}
	return r.Y <= navHeight+reveal && r.Bottom() >= navHeight
}
