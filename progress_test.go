package folio

import "testing"

func TestScrollProgress(t *testing.T) {
	tests := []struct {
		name                       string
		scrollY, content, viewport float64
		want                       float64
	}{
		{"top", 0, 2000, 800, 0},
		{"half", 600, 2000, 800, 50},
		{"bottom", 1200, 2000, 800, 100},
		{"overscroll", 1500, 2000, 800, 100},
		{"negative", -40, 2000, 800, 0},
		{"fits", 0, 600, 800, 0},
		{"exact fit", 10, 800, 800, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "progress", ScrollProgress(tt.scrollY, tt.content, tt.viewport), tt.want)
		})
	}
}

func TestScrollProgressMonotonic(t *testing.T) {
	prev := -1.0
	for y := 0.0; y <= 1400; y += 35 {
		p := ScrollProgress(y, 2000, 800)
		if p < prev {
			t.Fatalf("progress decreased at %v: %v < %v", y, p, prev)
		}
		prev = p
	}
}

func TestScrolled(t *testing.T) {
	if Scrolled(20, 20) {
		t.Error("Scrolled(20, 20) should be false")
	}
	if !Scrolled(21, 20) {
		t.Error("Scrolled(21, 20) should be true")
	}
}

func TestProgressRampOffset(t *testing.T) {
	r := DefaultProgressRamp()
	assertNear(t, "offset(0)", r.Offset(0), 40)
	assertNear(t, "offset(80)", r.Offset(80), 40)
	assertNear(t, "offset(90)", r.Offset(90), 130)
	assertNear(t, "offset(100)", r.Offset(100), 220)
	assertNear(t, "offset(120)", r.Offset(120), 220)

	flat := ProgressRamp{Threshold: 100, Base: 10, Extra: 50}
	assertNear(t, "flat offset", flat.Offset(100), 10)
}

func TestProgressTracker(t *testing.T) {
	doc := stackDoc(800, []string{"a"}, []float64{2000})
	tr := NewProgressTracker(DefaultProgressRamp())
	assertNear(t, "initial offset", tr.Current().Offset, 40)

	var samples []ProgressSample
	h := tr.OnProgress(func(s ProgressSample) { samples = append(samples, s) })

	doc.scrollY = 1080
	got := tr.Update(doc)
	assertNear(t, "progress", got.Progress, 90)
	assertNear(t, "offset", got.Offset, 130)

	// Every update notifies, even without a change.
	tr.Update(doc)
	if len(samples) != 2 {
		t.Errorf("samples = %d, want 2", len(samples))
	}
	h.Remove()
	tr.Update(doc)
	if len(samples) != 2 {
		t.Errorf("removed handler still called")
	}
	if tr.Current() != got {
		t.Errorf("Current = %+v, want %+v", tr.Current(), got)
	}
}
