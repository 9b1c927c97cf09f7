package lockerroom

import (
	"math/rand/v2"
	"time"
)

// ReadySource reports whether the scene's assets are ready. Start is refused
// until Ready returns true.
type ReadySource interface {
	Ready() bool
}

// ReadyFunc adapts a function to ReadySource.
type ReadyFunc func() bool

// Ready calls f.
func (f ReadyFunc) Ready() bool { return f() }

// AlwaysReady is a ReadySource that is ready immediately.
var AlwaysReady ReadySource = ReadyFunc(func() bool { return true })

const (
	loaderInterval = 80 * time.Millisecond
	loaderMaxStep  = 12.0
)

// Loader simulates asset loading: every 80ms progress grows by a random
// amount in [0, 12) until it reaches 100.
type Loader struct {
	rng      *rand.Rand
	progress float64
	last     time.Time
	started  bool
}

// NewLoader creates a loader at zero progress.
func NewLoader(rng *rand.Rand) *Loader {
	return &Loader{rng: rng}
}

// Update advances the loader to now. The first call only records the start
// time. Missed ticks are caught up.
func (l *Loader) Update(now time.Time) {
	if l.Ready() {
		return
	}
	if !l.started {
		l.started = true
		l.last = now
		return
	}
	for !l.Ready() && now.Sub(l.last) >= loaderInterval {
		l.last = l.last.Add(loaderInterval)
		l.progress += l.rng.Float64() * loaderMaxStep
		if l.progress >= 100 {
			l.progress = 100
		}
	}
}

// Progress returns the load percentage in [0, 100].
func (l *Loader) Progress() float64 { return l.progress }

// Ready reports whether loading has finished.
func (l *Loader) Ready() bool { return l.progress >= 100 }
