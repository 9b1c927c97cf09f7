// Package tabsite holds the state of the flat tabbed portfolio: which tab is
// active, which section's content is displayed, the content fade, and the
// persisted light/dark theme.
package tabsite

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/lockerroom"
)

// HomeSection is shown on Escape.
const HomeSection = "home"

// SwapDelay is the time between starting a fade-out and swapping content.
const SwapDelay = 300 * time.Millisecond

// Tab is a navigation tab. Section is the section it shows.
type Tab struct {
	Section string
	Title   string
}

type pendingSwap struct {
	section string
	at      time.Time
}

// Site is the tab and content state machine. Show activates a tab at once;
// the displayed content fades out and is replaced SwapDelay later. Every
// Show with content schedules its own swap, so rapid clicks apply in order.
type Site struct {
	tabs      []Tab
	templates map[string][]string
	log       zerolog.Logger

	active  string
	shown   string
	content []string

	fade    lockerroom.Fade
	pending []pendingSwap
	last    time.Time
}

// NewSite creates a site with the given tabs and section templates. Nothing
// is shown until the first Show.
func NewSite(tabs []Tab, templates map[string][]string, log zerolog.Logger) *Site {
	return &Site{
		tabs:      tabs,
		templates: templates,
		log:       log,
		fade:      lockerroom.NewFade(1),
	}
}

// Show activates the tab for section and, when the section has content,
// starts the fade and schedules the swap. It reports whether a swap was
// scheduled. A section without a tab leaves no tab active.
func (s *Site) Show(section string, now time.Time) bool {
	s.active = ""
	for _, t := range s.tabs {
		if t.Section == section {
			s.active = section
			break
		}
	}

	if _, ok := s.templates[section]; !ok {
		s.log.Debug().Str("section", section).Msg("no content for section")
		return false
	}
	s.touch(now)
	s.fade.To(0, float32(SwapDelay.Seconds()), ease.Linear)
	s.pending = append(s.pending, pendingSwap{section: section, at: now.Add(SwapDelay)})
	return true
}

// Escape shows the home section.
func (s *Site) Escape(now time.Time) bool {
	return s.Show(HomeSection, now)
}

// Update advances the fade and applies every swap that is due.
func (s *Site) Update(now time.Time) {
	dt := s.touch(now)

	for len(s.pending) > 0 && !now.Before(s.pending[0].at) {
		p := s.pending[0]
		s.pending = s.pending[1:]
		s.shown = p.section
		s.content = s.templates[p.section]
		s.fade.Set(1)
		s.log.Debug().Str("section", p.section).Msg("content swapped")
	}

	s.fade.Update(dt)
}

// ActiveTab returns the section of the active tab, or "".
func (s *Site) ActiveTab() string { return s.active }

// Tabs returns the navigation tabs.
func (s *Site) Tabs() []Tab { return s.tabs }

// Section returns the section whose content is displayed, or "".
func (s *Site) Section() string { return s.shown }

// Content returns the displayed content lines.
func (s *Site) Content() []string { return s.content }

// Opacity returns the content opacity in [0, 1].
func (s *Site) Opacity() float64 { return s.fade.Value() }

// Pending reports whether a content swap is scheduled.
func (s *Site) Pending() bool { return len(s.pending) > 0 }

func (s *Site) touch(now time.Time) float32 {
	if s.last.IsZero() || now.Before(s.last) {
		s.last = now
		return 0
	}
	dt := float32(now.Sub(s.last).Seconds())
	s.last = now
	return dt
}
