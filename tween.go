package folio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultScrollDuration is the smooth-scroll duration in seconds.
const DefaultScrollDuration float32 = 0.6

// DefaultScrollEase is the easing used for smooth scrolling.
var DefaultScrollEase ease.TweenFunc = ease.InOutCubic

// FloatTween animates a single float64 field. Call Update(dt) each frame;
// the field is written on every update until Done.
//
// There is no global animation manager; owners update their own tweens.
type FloatTween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// TweenFloat creates a tween moving *field from its current value to `to`
// over duration seconds. A nil fn uses DefaultScrollEase; a non-positive
// duration snaps on the first Update.
func TweenFloat(field *float64, to float64, duration float32, fn ease.TweenFunc) *FloatTween {
	if fn == nil {
		fn = DefaultScrollEase
	}
	if duration <= 0 {
		duration = 1e-6
	}
	return &FloatTween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the value to the field.
func (t *FloatTween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}
