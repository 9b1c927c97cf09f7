package lockerroom

import (
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultTransitionDuration is how long a camera move takes.
const DefaultTransitionDuration = 1200 * time.Millisecond

// Transition interpolates the camera between two poses over wall-clock time.
// It is a poll-driven future: the frame loop calls Step each tick, and Step
// reports completion exactly once.
//
// There is no global animation manager. The Controller owns at most one
// Transition and polls it from Update.
type Transition struct {
	from, to Pose
	start    time.Time
	duration time.Duration
	easeFn   ease.TweenFunc

	progress  float64
	done      bool
	cancelled bool
}

// NewTransition starts a transition at now. A nil easing function selects
// ease.OutCubic.
func NewTransition(from, to Pose, now time.Time, duration time.Duration, fn ease.TweenFunc) *Transition {
	if fn == nil {
		fn = ease.OutCubic
	}
	return &Transition{
		from:     from,
		to:       to,
		start:    now,
		duration: duration,
		easeFn:   fn,
	}
}

// From returns the pose the transition started at.
func (t *Transition) From() Pose { return t.from }

// To returns the pose the transition ends at.
func (t *Transition) To() Pose { return t.to }

// Progress returns the normalized progress in [0, 1]. It never decreases.
func (t *Transition) Progress() float64 { return t.progress }

// Done reports whether the transition has completed.
func (t *Transition) Done() bool { return t.done }

// Cancelled reports whether Cancel was called before completion.
func (t *Transition) Cancelled() bool { return t.cancelled }

// Cancel stops the transition where it is. A cancelled transition never
// completes.
func (t *Transition) Cancel() {
	if t.done {
		return
	}
	t.cancelled = true
}

// Step samples the transition at now and returns the pose to apply and
// whether this call completed the transition. completed is true on exactly
// one call. After completion or cancellation Step keeps returning the last
// pose with completed false.
func (t *Transition) Step(now time.Time) (pose Pose, completed bool) {
	if t.done {
		return t.to, false
	}
	if t.cancelled {
		return t.poseAt(t.progress), false
	}

	p := 1.0
	if t.duration > 0 {
		p = float64(now.Sub(t.start)) / float64(t.duration)
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	// Clocks that step backwards must not rewind the camera.
	if p < t.progress {
		p = t.progress
	}
	t.progress = p

	if p >= 1 {
		t.done = true
		return t.to, true
	}
	return t.poseAt(p), false
}

// poseAt interpolates position and rotation independently by the eased
// progress. Progress 1 yields the exact target pose.
func (t *Transition) poseAt(p float64) Pose {
	if p >= 1 {
		return t.to
	}
	e := Ease(t.easeFn, p)
	if e == 0 {
		return t.from
	}
	return Pose{
		Position: t.from.Position.Add(t.to.Position.Sub(t.from.Position).Mul(e)),
		Rotation: Rotation{
			X: lerp(t.from.Rotation.X, t.to.Rotation.X, e),
			Y: lerp(t.from.Rotation.Y, t.to.Rotation.Y, e),
		},
	}
}

// Ease evaluates a gween easing function on normalized progress p in [0, 1].
func Ease(fn ease.TweenFunc, p float64) float64 {
	return float64(fn(float32(p), 0, 1, 1))
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
