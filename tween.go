package lockerroom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a single float64 toward a target over a gween tween. The
// zero value rests at 0. Call Update(dt) each frame; there is no global
// animation manager.
type Fade struct {
	tween  *gween.Tween
	value  float64
	target float64
}

// NewFade returns a fade resting at value.
func NewFade(value float64) Fade {
	return Fade{value: value, target: value}
}

// To starts easing from the current value to target over seconds. A fade
// already resting at target is left alone.
func (f *Fade) To(target float64, seconds float32, fn ease.TweenFunc) {
	if f.tween == nil && f.value == target {
		return
	}
	f.target = target
	f.tween = gween.New(float32(f.value), float32(target), seconds, fn)
}

// Set jumps to v and stops any running tween.
func (f *Fade) Set(v float64) {
	f.value, f.target, f.tween = v, v, nil
}

// Update advances the tween by dt seconds. On completion the value lands
// exactly on the target.
func (f *Fade) Update(dt float32) {
	if f.tween == nil {
		return
	}
	v, finished := f.tween.Update(dt)
	f.value = float64(v)
	if finished {
		f.value = f.target
		f.tween = nil
	}
}

// Value returns the current value.
func (f *Fade) Value() float64 { return f.value }

// Target returns the value the fade is heading to.
func (f *Fade) Target() float64 { return f.target }

// Done reports whether no tween is running.
func (f *Fade) Done() bool { return f.tween == nil }
