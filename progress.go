package folio

// ScrollProgress returns how far the document is scrolled as a percentage in
// [0, 100]. When the content fits in the viewport the result is exactly 0.
func ScrollProgress(scrollY, contentHeight, viewportHeight float64) float64 {
	scrollable := contentHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return clamp(scrollY/scrollable*100, 0, 100)
}

// Scrolled reports whether the page has left its resting position, used for
// the navigation bar's raised style.
func Scrolled(scrollY, threshold float64) bool {
	return scrollY > threshold
}

// ProgressRamp maps scroll progress to a decorative offset. Below Threshold
// the offset is Base; above it the offset grows linearly to Base+Extra at 100.
type ProgressRamp struct {
	Threshold float64
	Base      float64
	Extra     float64
}

// DefaultProgressRamp lifts the timeline by up to 180px over the last 20% of
// the page so it clears the footer.
func DefaultProgressRamp() ProgressRamp {
	return ProgressRamp{Threshold: 80, Base: 40, Extra: 180}
}

// Offset returns the decorative offset for progress p.
func (r ProgressRamp) Offset(p float64) float64 {
	if p <= r.Threshold || r.Threshold >= 100 {
		return r.Base
	}
	t := (clamp(p, 0, 100) - r.Threshold) / (100 - r.Threshold)
	return r.Base + t*r.Extra
}

// ProgressSample is delivered to OnProgress callbacks on every update.
type ProgressSample struct {
	Progress float64
	Offset   float64
}

// ProgressTracker recomputes scroll progress on every scroll tick.
type ProgressTracker struct {
	Ramp ProgressRamp

	current  ProgressSample
	handlers handlerList[ProgressSample]
}

// NewProgressTracker creates a tracker using the given ramp.
func NewProgressTracker(ramp ProgressRamp) *ProgressTracker {
	return &ProgressTracker{Ramp: ramp, current: ProgressSample{Offset: ramp.Base}}
}

// Update recomputes progress from doc and notifies every listener.
func (t *ProgressTracker) Update(doc Document) ProgressSample {
	p := ScrollProgress(doc.ScrollY(), doc.ContentHeight(), doc.ViewportHeight())
	t.current = ProgressSample{Progress: p, Offset: t.Ramp.Offset(p)}
	t.handlers.emit(t.current)
	return t.current
}

// Current returns the most recent sample.
func (t *ProgressTracker) Current() ProgressSample {
	return t.current
}

// OnProgress registers a callback fired on every Update.
func (t *ProgressTracker) OnProgress(fn func(ProgressSample)) CallbackHandle {
	return newHandle(&t.handlers, fn)
}
