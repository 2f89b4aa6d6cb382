package folio

import (
	"errors"
	"testing"
)

func TestResolveActiveTopOffset(t *testing.T) {
	// Viewport-relative tops: A=400, B=100, C=250. Scanning backward, C is
	// below the line and B is the last anchor past it.
	g := Geometry{
		ScrollY:        500,
		ViewportHeight: 800,
		Anchors: []AnchorGeometry{
			{ID: "a", Rect: Rect{Y: 400, Height: 100}, Present: true},
			{ID: "b", Rect: Rect{Y: 100, Height: 100}, Present: true},
			{ID: "c", Rect: Rect{Y: 250, Height: 100}, Present: true},
		},
	}
	if got := ResolveActive(g, DefaultTriggerPolicy(), ""); got != "b" {
		t.Errorf("ResolveActive = %q, want b", got)
	}
}

func TestResolveActiveTopGuard(t *testing.T) {
	g := Geometry{
		ScrollY: 50,
		Anchors: []AnchorGeometry{
			{ID: "a", Rect: Rect{Y: -50, Height: 100}, Present: true},
			{ID: "b", Rect: Rect{Y: 0, Height: 100}, Present: true},
		},
	}
	if got := ResolveActive(g, DefaultTriggerPolicy(), "b"); got != "a" {
		t.Errorf("ResolveActive under guard = %q, want a", got)
	}
	p := TriggerPolicy{Mode: TriggerCenterLine, TopGuard: 100}
	if got := ResolveActive(g, p, "b"); got != "a" {
		t.Errorf("center-line under guard = %q, want a", got)
	}
}

func TestResolveActiveFallsBackToFirst(t *testing.T) {
	g := Geometry{
		ScrollY: 500,
		Anchors: []AnchorGeometry{
			{ID: "a", Rect: Rect{Y: 300}, Present: true},
			{ID: "b", Rect: Rect{Y: 600}, Present: true},
		},
	}
	if got := ResolveActive(g, DefaultTriggerPolicy(), "b"); got != "a" {
		t.Errorf("ResolveActive = %q, want a", got)
	}
}

func TestResolveActiveSkipsAbsent(t *testing.T) {
	g := Geometry{
		ScrollY: 500,
		Anchors: []AnchorGeometry{
			{ID: "a", Rect: Rect{Y: -400}, Present: true},
			{ID: "b", Present: false},
		},
	}
	if got := ResolveActive(g, DefaultTriggerPolicy(), ""); got != "a" {
		t.Errorf("ResolveActive = %q, want a", got)
	}
}

func TestResolveActiveOverride(t *testing.T) {
	g := Geometry{
		ScrollY: 500,
		Anchors: []AnchorGeometry{
			{ID: "a", Rect: Rect{Y: -400}, Present: true},
			{ID: "b", Rect: Rect{Y: 220}, Present: true},
		},
	}
	p := DefaultTriggerPolicy()
	if got := ResolveActive(g, p, ""); got != "a" {
		t.Errorf("without override = %q, want a", got)
	}
	p.Overrides = map[string]float64{"b": 250}
	if got := ResolveActive(g, p, ""); got != "b" {
		t.Errorf("with override = %q, want b", got)
	}
}

func TestResolveActiveCenterLine(t *testing.T) {
	p := TriggerPolicy{Mode: TriggerCenterLine}
	g := Geometry{
		ScrollY:        1000,
		ViewportHeight: 800,
		Anchors: []AnchorGeometry{
			{ID: "a", Rect: Rect{Y: -300, Height: 200}, Present: true},
			{ID: "b", Rect: Rect{Y: 300, Height: 300}, Present: true},
			{ID: "c", Rect: Rect{Y: 600, Height: 300}, Present: true},
		},
	}
	if got := ResolveActive(g, p, "a"); got != "b" {
		t.Errorf("midpoint 400 = %q, want b", got)
	}

	// A gap around the midpoint keeps the previous anchor.
	g.Anchors[1].Rect = Rect{Y: 100, Height: 200}
	if got := ResolveActive(g, p, "c"); got != "c" {
		t.Errorf("no match = %q, want retained c", got)
	}
	if got := ResolveActive(g, p, ""); got != "a" {
		t.Errorf("no match without current = %q, want a", got)
	}
}

func TestPastFlags(t *testing.T) {
	flags := PastFlags(4, 2)
	want := []bool{true, true, false, false}
	for i := range want {
		if flags[i] != want[i] {
			t.Fatalf("PastFlags(4, 2) = %v, want %v", flags, want)
		}
	}
	for _, f := range PastFlags(3, 0) {
		if f {
			t.Fatal("PastFlags(3, 0) should be all false")
		}
	}
}

func TestParseTriggerMode(t *testing.T) {
	tests := []struct {
		in      string
		want    TriggerMode
		wantErr bool
	}{
		{"top-offset", TriggerTopOffset, false},
		{"", TriggerTopOffset, false},
		{"center-line", TriggerCenterLine, false},
		{"middle", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTriggerMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTriggerMode(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTriggerMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestResolverInitialState(t *testing.T) {
	r := NewResolver(ResolverConfig{Name: "nav", Anchors: anchorsOf(t, "a", "b"), Policy: DefaultTriggerPolicy()})
	if r.Active() != "a" || r.State().ActiveIndex() != 0 {
		t.Errorf("initial = %q/%d, want a/0", r.Active(), r.State().ActiveIndex())
	}
	if r.State().Past() != nil {
		t.Error("Past should be nil without TrackPast")
	}
}

func TestResolverEvaluateEmitsOnlyOnChange(t *testing.T) {
	doc := stackDoc(800, []string{"a", "b", "c"}, []float64{600, 600, 600})
	r := NewResolver(ResolverConfig{Name: "nav", Anchors: anchorsOf(t, "a", "b", "c"), Policy: DefaultTriggerPolicy()})
	var changes []ActivationChange
	r.OnChange(func(c ActivationChange) { changes = append(changes, c) })

	if r.Evaluate(doc) {
		t.Error("Evaluate at top should not change")
	}
	doc.scrollY = 500 // b at 100
	if !r.Evaluate(doc) {
		t.Error("Evaluate at 500 should change")
	}
	doc.scrollY = 520
	r.Evaluate(doc)

	if len(changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(changes))
	}
	c := changes[0]
	if c.Resolver != "nav" || c.ID != "b" || c.Previous != "a" || c.Index != 1 {
		t.Errorf("change = %+v", c)
	}
}

func TestResolverTracksPast(t *testing.T) {
	doc := stackDoc(800, []string{"a", "b", "c"}, []float64{600, 600, 600})
	r := NewResolver(ResolverConfig{Name: "timeline", Anchors: anchorsOf(t, "a", "b", "c"), Policy: DefaultTriggerPolicy(), TrackPast: true})
	var got []bool
	r.OnChange(func(c ActivationChange) { got = c.Past })

	doc.content = 2400
	doc.scrollY = 1100 // c at 100
	r.Evaluate(doc)
	st := r.State()
	if st.Active() != "c" {
		t.Fatalf("Active = %q, want c", st.Active())
	}
	if !st.IsPast(0) || !st.IsPast(1) || st.IsPast(2) {
		t.Errorf("past = %v", st.Past())
	}
	if len(got) != 3 || !got[0] || !got[1] || got[2] {
		t.Errorf("change past = %v", got)
	}
	if st.IsPast(-1) || st.IsPast(3) {
		t.Error("IsPast out of range should be false")
	}
}

func TestResolverStateSnapshotIsolated(t *testing.T) {
	r := NewResolver(ResolverConfig{Anchors: anchorsOf(t, "a", "b"), TrackPast: true})
	if err := r.Force("b"); err != nil {
		t.Fatal(err)
	}
	st := r.State()
	p := st.Past()
	p[0] = false
	if !r.State().IsPast(0) {
		t.Error("mutating Past() copy changed resolver state")
	}
	if err := r.Force("a"); err != nil {
		t.Fatal(err)
	}
	if st.Active() != "b" || !st.IsPast(0) {
		t.Error("earlier snapshot changed after Force")
	}
}

func TestResolverForce(t *testing.T) {
	r := NewResolver(ResolverConfig{Name: "subnav", Anchors: anchorsOf(t, "a", "b")})
	calls := 0
	r.OnChange(func(ActivationChange) { calls++ })

	if err := r.Force("b"); err != nil {
		t.Fatalf("Force: %v", err)
	}
	if err := r.Force("b"); err != nil {
		t.Fatalf("Force: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if err := r.Force("zzz"); !errors.Is(err, ErrAnchorNotFound) {
		t.Errorf("Force unknown err = %v", err)
	}
	r.Reset()
	if r.Active() != "a" || calls != 1 {
		t.Errorf("Reset: active %q calls %d", r.Active(), calls)
	}
}

func TestResolverHandleRemove(t *testing.T) {
	r := NewResolver(ResolverConfig{Anchors: anchorsOf(t, "a", "b")})
	calls := 0
	h := r.OnChange(func(ActivationChange) { calls++ })
	h.Remove()
	h.Remove()
	_ = r.Force("b")
	if calls != 0 {
		t.Errorf("removed handler called %d times", calls)
	}
}

func TestResolverEmptyAnchors(t *testing.T) {
	r := NewResolver(ResolverConfig{})
	if r.Evaluate(&fakeDoc{}) {
		t.Error("empty resolver should never change")
	}
	if r.Active() != "" {
		t.Errorf("Active = %q, want empty", r.Active())
	}
}

func TestSampleGeometry(t *testing.T) {
	doc := stackDoc(800, []string{"a", "b"}, []float64{500, 500})
	doc.scrollY = 200
	g := SampleGeometry(doc, anchorsOf(t, "a", "b", "missing"))
	if g.ScrollY != 200 || g.ViewportHeight != 800 || g.ContentHeight != 1000 {
		t.Errorf("scalars = %+v", g)
	}
	if len(g.Anchors) != 3 {
		t.Fatalf("anchors = %d, want 3", len(g.Anchors))
	}
	assertNear(t, "b.Y", g.Anchors[1].Rect.Y, 300)
	if g.Anchors[2].Present {
		t.Error("missing anchor should not be present")
	}
}
