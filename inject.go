package folio

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticPress
	syntheticRelease
	syntheticWheel
)

// syntheticEvent is a single injected input event in screen coordinates.
type syntheticEvent struct {
	kind   syntheticKind
	x, y   float64
	scroll float64
}

// InjectMove queues a pointer move to (x, y). The button state is unchanged.
// Events are consumed one per frame by Update.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectPress queues a left-button press at (x, y).
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPress, x: x, y: y})
}

// InjectRelease queues a left-button release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticRelease, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectWheel queues an immediate scroll by dy pixels. Positive values
// scroll down.
func (s *Scene) InjectWheel(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticWheel, scroll: dy})
}

// Injected returns the number of queued events not yet consumed.
func (s *Scene) Injected() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the queue and feeds it through
// the same paths as real input. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		s.handlePointer(evt.x, evt.y, s.pointer.down)
	case syntheticPress:
		s.handlePointer(evt.x, evt.y, true)
	case syntheticRelease:
		s.handlePointer(evt.x, evt.y, false)
	case syntheticWheel:
		s.handleWheel(evt.scroll)
	}
	return true
}
