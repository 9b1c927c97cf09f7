package lockerroom

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const defaultDragDeadZone = 4.0 // pixels

// Key is a keyboard command understood by the session.
type Key uint8

const (
	KeyStart  Key = iota + 1 // Enter or Space: start the experience
	KeyEscape                // Escape: release focus and close panels
)

// pointerState tracks the single mouse pointer between frames.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
	// overPanel is set when the press landed on a panel; such a press never
	// turns into a look drag.
	overPanel bool
	seen      bool
}

// processPointer runs the pointer state machine for one frame. A press and
// release without leaving the drag dead zone is a click; moving further
// while pressed is a look drag.
func (s *Session) processPointer(x, y float64, pressed bool, now time.Time) {
	ps := &s.pointer
	moved := !ps.seen || x != ps.lastX || y != ps.lastY
	ps.seen = true

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		ps.overPanel = s.panels.Contains(x, y)

	case !pressed && ps.down:
		if !ps.dragging {
			if !s.started {
				s.Start(now)
			} else {
				s.Click(x, y, now)
			}
		}
		ps.down = false
		ps.dragging = false
		ps.overPanel = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if moved {
			if !ps.dragging {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.cfg.Interaction.DragDeadZone {
					ps.dragging = true
				}
			}
			if ps.dragging && !ps.overPanel {
				s.Look(x-ps.lastX, y-ps.lastY)
			}
			s.PointerMove(x, y)
		}
		ps.lastX, ps.lastY = x, y

	default:
		if moved {
			s.PointerMove(x, y)
			ps.lastX, ps.lastY = x, y
		}
	}
}

// processKey applies a keyboard command.
func (s *Session) processKey(k Key, now time.Time) {
	switch k {
	case KeyStart:
		s.Start(now)
	case KeyEscape:
		s.Escape(now)
	}
}

// pollInput reads the mouse and keyboard from Ebiten. Real input is skipped
// while synthetic input is pending so scripted runs are deterministic.
func (s *Session) pollInput(now time.Time) {
	if s.injecting() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.processKey(KeyEscape, now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.processKey(KeyStart, now)
	}
	mx, my := ebiten.CursorPosition()
	s.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), now)
}
