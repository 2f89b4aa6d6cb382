package folio

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFrameLoopStep(t *testing.T) {
	l := NewFrameLoop()
	var got []float64
	h := l.OnFrame(func(dt float64) { got = append(got, dt) })
	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}

	l.Advance(3, 0.5)
	if len(got) != 3 || got[2] != 0.5 {
		t.Errorf("frames = %v", got)
	}
	if l.Frames() != 3 {
		t.Errorf("Frames = %d, want 3", l.Frames())
	}

	h.Remove()
	h.Remove()
	l.Step(1)
	if len(got) != 3 {
		t.Error("removed callback still called")
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d, want 0", l.Len())
	}
}

func TestFrameLoopRemoveDuringStep(t *testing.T) {
	l := NewFrameLoop()
	var a, b int
	var hb FrameHandle
	l.OnFrame(func(float64) {
		a++
		hb.Remove()
	})
	hb = l.OnFrame(func(float64) { b++ })

	l.Step(0)
	l.Step(0)
	if a != 2 {
		t.Errorf("a = %d, want 2", a)
	}
	// Removal inside an emit takes effect on the next one.
	if b != 1 {
		t.Errorf("b = %d, want 1", b)
	}
}

func TestZeroHandles(t *testing.T) {
	var h CallbackHandle
	h.Remove()
	var fh FrameHandle
	fh.Remove()
}

func TestFloatTween(t *testing.T) {
	v := 0.0
	tw := TweenFloat(&v, 100, 1, ease.Linear)
	tw.Update(0.5)
	assertNear(t, "half", v, 50)
	if tw.Done {
		t.Error("tween done too early")
	}
	tw.Update(0.6)
	assertNear(t, "end", v, 100)
	if !tw.Done {
		t.Error("tween should be done")
	}
	tw.Update(1)
	assertNear(t, "after done", v, 100)
}

func TestFloatTweenZeroDuration(t *testing.T) {
	v := 10.0
	tw := TweenFloat(&v, 20, 0, nil)
	tw.Update(1.0 / 60)
	assertNear(t, "snap", v, 20)
	if !tw.Done {
		t.Error("zero-duration tween should finish on first update")
	}
	var nilTween *FloatTween
	nilTween.Update(1)
}
