package lockerroom

import (
	"time"

	"github.com/tanema/gween/ease"
)

const (
	titleFadeSeconds = 0.8
	hintFadeSeconds  = 0.4
)

// HUD holds the overlay state: the title and the navigation hint. Both
// appear a short delay after the session starts; the hint hides while a
// zone is selected.
type HUD struct {
	title Fade
	hint  Fade

	hintVisible  bool
	introAt      time.Time
	introPending bool
	introHint    bool
	last         time.Time
}

// Start schedules the intro fade-in delay after now.
func (h *HUD) Start(now time.Time, delay time.Duration) {
	h.introAt = now.Add(delay)
	h.introPending = true
	h.introHint = true
	h.last = now
}

// ShowHint makes the hint visible.
func (h *HUD) ShowHint() {
	h.hintVisible = true
	h.hint.To(1, hintFadeSeconds, ease.OutQuad)
}

// HideHint hides the hint, including one still pending from the intro.
func (h *HUD) HideHint() {
	h.introHint = false
	h.hintVisible = false
	h.hint.To(0, hintFadeSeconds, ease.OutQuad)
}

// Update advances the fades to now.
func (h *HUD) Update(now time.Time) {
	if h.last.IsZero() {
		h.last = now
	}
	dt := float32(now.Sub(h.last).Seconds())
	if dt < 0 {
		dt = 0
	}
	h.last = now

	if h.introPending && !now.Before(h.introAt) {
		h.introPending = false
		h.title.To(1, titleFadeSeconds, ease.OutQuad)
		if h.introHint {
			h.ShowHint()
		}
	}
	h.title.Update(dt)
	h.hint.Update(dt)
}

// TitleVisible reports whether the title has started to appear.
func (h *HUD) TitleVisible() bool { return h.title.Target() > 0 }

// TitleAlpha returns the title opacity in [0, 1].
func (h *HUD) TitleAlpha() float64 { return h.title.Value() }

// HintVisible reports whether the hint is shown.
func (h *HUD) HintVisible() bool { return h.hintVisible }

// HintAlpha returns the hint opacity in [0, 1].
func (h *HUD) HintAlpha() float64 { return h.hint.Value() }
