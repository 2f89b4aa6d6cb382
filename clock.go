package folio

// FrameFunc is invoked once per displayed frame with the elapsed time in
// seconds.
type FrameFunc func(dt float64)

// FrameClock schedules per-frame callbacks.
type FrameClock interface {
	OnFrame(fn FrameFunc) FrameHandle
}

// FrameHandle detaches a frame callback. Remove is safe to call repeatedly;
// only the first call has an effect.
type FrameHandle struct {
	h CallbackHandle
}

// Remove stops the callback from receiving further frames.
func (h FrameHandle) Remove() {
	h.h.Remove()
}

// FrameLoop is a FrameClock driven explicitly by its owner. Scene.Update
// steps it once per tick; tests step it directly to advance N frames.
type FrameLoop struct {
	handlers handlerList[float64]
	frames   uint64
}

// NewFrameLoop creates an empty frame loop.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// OnFrame registers fn to run on every Step.
func (l *FrameLoop) OnFrame(fn FrameFunc) FrameHandle {
	return FrameHandle{h: newHandle(&l.handlers, func(dt float64) { fn(dt) })}
}

// Step runs every registered callback once.
func (l *FrameLoop) Step(dt float64) {
	l.frames++
	l.handlers.emit(dt)
}

// Advance runs n frames of dt seconds each.
func (l *FrameLoop) Advance(n int, dt float64) {
	for i := 0; i < n; i++ {
		l.Step(dt)
	}
}

// Len returns the number of registered callbacks.
func (l *FrameLoop) Len() int {
	return l.handlers.len()
}

// Frames returns the number of frames stepped so far.
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}
