package folio

import (
	"io"
	"math"
	"testing"
)

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// fakeDoc is a Document with fixed document-space rects.
type fakeDoc struct {
	scrollY float64
	height  float64
	content float64
	rects   map[string]Rect
}

func (d *fakeDoc) ScrollY() float64        { return d.scrollY }
func (d *fakeDoc) ViewportHeight() float64 { return d.height }
func (d *fakeDoc) ContentHeight() float64  { return d.content }

func (d *fakeDoc) Bounds(id string) (Rect, bool) {
	r, ok := d.rects[id]
	if !ok {
		return Rect{}, false
	}
	return r.Offset(0, -d.scrollY), true
}

// stackDoc lays out ids top to bottom with the given heights.
func stackDoc(viewport float64, ids []string, heights []float64) *fakeDoc {
	d := &fakeDoc{height: viewport, rects: make(map[string]Rect)}
	y := 0.0
	for i, id := range ids {
		d.rects[id] = Rect{Y: y, Width: 1000, Height: heights[i]}
		y += heights[i]
	}
	d.content = y
	return d
}

// recordingCanvas counts Canvas calls.
type recordingCanvas struct {
	width, height, scale float64
	sizes                int
	clears               int
	lines                int
}

func (c *recordingCanvas) SetSize(width, height, scale float64) {
	c.width, c.height, c.scale = width, height, scale
	c.sizes++
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.lines = 0
}

func (c *recordingCanvas) StrokeLine(_, _, _, _, _ float64, _ Color) {
	c.lines++
}

// recordingSink collects forwarded events.
type recordingSink struct {
	events []Event
}

func (r *recordingSink) EmitEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recordingSink) ofType(typ EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// newTestScene builds the default site with a recording particle canvas and
// logging disabled.
func newTestScene(t *testing.T) (*Scene, *recordingCanvas) {
	t.Helper()
	s, err := NewScene(DefaultSceneConfig())
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	s.LogOutput = io.Discard
	canvas := &recordingCanvas{}
	s.SetCanvasFactory(func() Canvas { return canvas })
	t.Cleanup(s.Close)
	return s, canvas
}

// anchorsOf builds an anchor sequence from ids.
func anchorsOf(t *testing.T, ids ...string) Anchors {
	t.Helper()
	list := make([]Anchor, len(ids))
	for i, id := range ids {
		list[i] = Anchor{ID: id, Label: id}
	}
	a, err := NewAnchors(list...)
	if err != nil {
		t.Fatalf("NewAnchors: %v", err)
	}
	return a
}
