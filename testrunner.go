package lockerroom

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Ms     int     `json:"ms,omitempty"`
}

// scriptActions maps each script action to what it does to the session.
var scriptActions = map[string]func(r *TestRunner, s *Session, st testStep, now time.Time){
	"start":  func(_ *TestRunner, s *Session, _ testStep, _ time.Time) { s.InjectKey(KeyStart) },
	"escape": func(_ *TestRunner, s *Session, _ testStep, _ time.Time) { s.InjectKey(KeyEscape) },
	"click":  func(_ *TestRunner, s *Session, st testStep, _ time.Time) { s.InjectClick(st.X, st.Y) },
	"move":   func(_ *TestRunner, s *Session, st testStep, _ time.Time) { s.InjectHover(st.X, st.Y) },
	"drag": func(_ *TestRunner, s *Session, st testStep, _ time.Time) {
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
	"screenshot": func(_ *TestRunner, s *Session, st testStep, _ time.Time) { s.Screenshot(st.Label) },
	"wait": func(r *TestRunner, _ *Session, st testStep, now time.Time) {
		// The frame that runs the step counts as the first waited frame.
		if st.Frames > 0 {
			r.waitFrames = st.Frames - 1
		}
		if st.Ms > 0 {
			r.waitUntil = now.Add(time.Duration(st.Ms) * time.Millisecond)
		}
	},
}

var errNoSteps = errors.New("script has no steps")

// TestRunner plays a scripted sequence of input, waits and screenshots, one
// step per frame. Attach it with Session.SetTestRunner.
type TestRunner struct {
	steps      []testStep
	next       int
	waitFrames int
	waitUntil  time.Time
	done       bool
}

// LoadTestScript parses a JSON script of the form {"steps": [...]}. Actions
// are start, click, move, drag, escape, wait and screenshot. A wait needs
// frames or ms. A start step waits for the session to be ready.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script struct {
		Steps []testStep `json:"steps"`
	}
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parsing test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parsing test script: %w", errNoSteps)
	}
	for i, st := range script.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("parsing test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "wait" && st.Frames <= 0 && st.Ms <= 0 {
			return nil, fmt.Errorf("parsing test script: step %d: wait needs frames or ms", i)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches r; it advances at the start of every Update.
func (s *Session) SetTestRunner(r *TestRunner) {
	s.testRunner = r
}

// Done reports whether every step has run and its input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) blocked(s *Session, now time.Time) bool {
	if len(s.injectQueue) > 0 {
		return true
	}
	if r.waitFrames > 0 {
		r.waitFrames--
		return true
	}
	if now.Before(r.waitUntil) {
		return true
	}
	// A start step holds until loading finishes so it is not refused.
	return r.next < len(r.steps) && r.steps[r.next].Action == "start" && !s.Ready()
}

func (r *TestRunner) step(s *Session, now time.Time) {
	if r.done || r.blocked(s, now) {
		return
	}
	if r.next == len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	if act, ok := scriptActions[st.Action]; ok {
		act(r, s, st, now)
	}

	if r.next == len(r.steps) && r.waitFrames == 0 && r.waitUntil.IsZero() && len(s.injectQueue) == 0 {
		r.done = true
	}
}
