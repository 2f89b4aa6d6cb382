package folio

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Viewport is the visible window onto a Page. It owns the scroll offset and
// implements Document, reporting element bounds relative to its top edge.
type Viewport struct {
	// Y is the document offset of the viewport's top edge (the scroll offset).
	Y float64
	// Width and Height are the viewport size in logical pixels.
	Width, Height float64

	page   *Page
	scroll *FloatTween
	target float64
}

// NewViewport creates a viewport of the given size onto page.
func NewViewport(page *Page, width, height float64) *Viewport {
	return &Viewport{page: page, Width: width, Height: height}
}

// Page returns the page the viewport looks at.
func (v *Viewport) Page() *Page {
	return v.page
}

// ScrollY implements Document.
func (v *Viewport) ScrollY() float64 {
	return v.Y
}

// ViewportHeight implements Document.
func (v *Viewport) ViewportHeight() float64 {
	return v.Height
}

// ContentHeight implements Document.
func (v *Viewport) ContentHeight() float64 {
	return v.page.ContentHeight()
}

// Bounds implements Document.
func (v *Viewport) Bounds(id string) (Rect, bool) {
	r, ok := v.page.Rect(id)
	if !ok {
		return Rect{}, false
	}
	return r.Offset(0, -v.Y), true
}

// MaxScroll returns the largest valid scroll offset.
func (v *Viewport) MaxScroll() float64 {
	return math.Max(0, v.page.ContentHeight()-v.Height)
}

// ScrollTo animates the scroll offset to y over duration seconds. A call
// while a scroll is running replaces it; scroll animations never queue.
func (v *Viewport) ScrollTo(y float64, duration float32, fn ease.TweenFunc) {
	y = clamp(y, 0, v.MaxScroll())
	v.target = y
	v.scroll = TweenFloat(&v.Y, y, duration, fn)
}

// JumpTo sets the scroll offset immediately, cancelling any animation.
func (v *Viewport) JumpTo(y float64) {
	v.scroll = nil
	v.Y = clamp(y, 0, v.MaxScroll())
}

// ScrollBy moves the scroll offset by dy immediately, as a wheel or key
// does. Any running animation is cancelled.
func (v *Viewport) ScrollBy(dy float64) {
	v.JumpTo(v.Y + dy)
}

// Scrolling reports whether a smooth scroll is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scroll != nil
}

// Target returns the destination of the running smooth scroll, or the
// current offset when idle.
func (v *Viewport) Target() float64 {
	if v.scroll == nil {
		return v.Y
	}
	return v.target
}

// Resize changes the viewport size and re-clamps the offset.
func (v *Viewport) Resize(width, height float64) {
	v.Width, v.Height = width, height
	v.Y = clamp(v.Y, 0, v.MaxScroll())
}

// update advances the scroll animation. Returns true if Y changed.
func (v *Viewport) update(dt float32) bool {
	prev := v.Y
	if v.scroll != nil {
		v.scroll.Update(dt)
		if v.scroll.Done {
			v.scroll = nil
		}
	}
	v.Y = clamp(v.Y, 0, v.MaxScroll())
	return v.Y != prev
}
