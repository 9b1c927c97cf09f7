package lockerroom

import (
	"testing"
	"time"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "start"},
			{"action": "screenshot", "label": "room"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "wait", "ms": 1300},
			{"action": "escape"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "screenshot" || runner.steps[1].Label != "room" {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].X != 100 || runner.steps[2].Y != 200 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Frames != 3 || runner.steps[4].Ms != 1300 {
		t.Error("wait steps mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "jump"}]}`},
		{"bare wait", `{"steps": [{"action": "wait"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStartAndClick(t *testing.T) {
	s := newTestSession(t)
	x, y := screenPos(t, s, "about")
	runner := &TestRunner{steps: []testStep{
		{Action: "start"},
		{Action: "click", X: x, Y: y},
	}}
	s.SetTestRunner(runner)

	frame := 0
	next := func() time.Time {
		frame++
		return testEpoch.Add(time.Duration(frame) * 16 * time.Millisecond)
	}

	s.Update(next())
	if !s.Started() {
		t.Fatal("start step did not start")
	}
	s.Update(next()) // click queued, press consumed
	if runner.Done() {
		t.Fatal("runner done while input is pending")
	}
	s.Update(next()) // release consumed
	if s.Selected() == nil || s.Selected().ID() != "about" {
		t.Fatalf("selected = %v, want about", s.Selected())
	}
	s.Update(next())
	if !runner.Done() {
		t.Error("runner not done after all steps drained")
	}
}

func TestRunnerWaitMs(t *testing.T) {
	s := newTestSession(t)
	runner := &TestRunner{steps: []testStep{
		{Action: "wait", Ms: 100},
		{Action: "start"},
	}}
	s.SetTestRunner(runner)

	s.Update(testEpoch)
	s.Update(testEpoch.Add(50 * time.Millisecond))
	if s.Started() {
		t.Fatal("started before the wait elapsed")
	}
	s.Update(testEpoch.Add(100 * time.Millisecond))
	if !s.Started() {
		t.Error("not started after the wait")
	}
}

func TestRunnerWaitFrames(t *testing.T) {
	s := newTestSession(t)
	runner := &TestRunner{steps: []testStep{
		{Action: "wait", Frames: 3},
		{Action: "start"},
	}}
	s.SetTestRunner(runner)

	for i := 0; i < 3; i++ {
		s.Update(testEpoch.Add(time.Duration(i) * time.Millisecond))
		if s.Started() {
			t.Fatalf("started on frame %d", i)
		}
	}
	s.Update(testEpoch.Add(3 * time.Millisecond))
	if !s.Started() {
		t.Error("not started after three frames")
	}
}

func TestRunnerScreenshotQueues(t *testing.T) {
	s := newTestSession(t)
	s.SetTestRunner(&TestRunner{steps: []testStep{{Action: "screenshot", Label: "x"}}})
	s.Update(testEpoch)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "x" {
		t.Errorf("queue = %v", s.screenshotQueue)
	}
}

func TestRunnerStartWaitsForLoader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Particles.Count = 0
	s, err := NewSession(cfg, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	x, y := screenPos(t, s, "about")
	runner := &TestRunner{steps: []testStep{
		{Action: "start"},
		{Action: "click", X: x, Y: y},
	}}
	s.SetTestRunner(runner)

	s.Update(testEpoch)
	if s.Started() {
		t.Fatal("started before loading finished")
	}
	for frame := 1; frame <= 2000 && !runner.Done(); frame++ {
		s.Update(testEpoch.Add(time.Duration(frame) * 16 * time.Millisecond))
	}
	if !runner.Done() {
		t.Fatalf("runner not done, progress %v", s.LoadProgress())
	}
	if !s.Started() {
		t.Fatal("session never started")
	}
	if s.Selected() == nil || s.Selected().ID() != "about" {
		t.Errorf("selected = %v, want about; the click must select, not start", s.Selected())
	}
}
