package lockerroom

import "time"

// syntheticEvent is a single injected input event. Pointer events use
// screen coordinates, exactly like real mouse input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	key     Key
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Update.
func (s *Session) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Session) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a pointer move with the button up.
func (s *Session) InjectHover(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Session) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Session) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2.
func (s *Session) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectKey queues a keyboard command.
func (s *Session) InjectKey(k Key) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{key: k})
}

// injecting reports whether synthetic input owns this frame.
func (s *Session) injecting() bool {
	return len(s.injectQueue) > 0 || (s.testRunner != nil && !s.testRunner.Done())
}

// processInjectedInput pops one event from the queue and feeds it through
// the same paths as real input. Returns true if an event was consumed.
func (s *Session) processInjectedInput(now time.Time) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.key != 0 {
		s.processKey(evt.key, now)
		return true
	}
	s.processPointer(evt.x, evt.y, evt.pressed, now)
	return true
}
