package lockerroom

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrEmptyPanelID is returned when registering a panel without an ID.
	ErrEmptyPanelID = errors.New("lockerroom: panel id is empty")
	// ErrDuplicatePanel is returned when two panels share an ID.
	ErrDuplicatePanel = errors.New("lockerroom: duplicate panel id")
)

const (
	panelMaxWidth   = 480
	panelWidthRatio = 0.4
	panelMargin     = 24
	closeButtonSize = 32
)

// Panel is a content panel bound to a zone by ID ("<zoneID>Panel").
type Panel struct {
	ID     string
	Title  string
	Number string
	Body   []string
	Accent colorful.Color
	// Bounds is the panel's screen rectangle, set by Layout.
	Bounds Rect

	active bool
}

// Active reports whether the panel is shown.
func (p *Panel) Active() bool { return p.active }

// CloseButton returns the screen rectangle of the panel's close button.
func (p *Panel) CloseButton() Rect {
	b := p.Bounds
	return Rect{
		X:      b.X + b.Width - closeButtonSize - 8,
		Y:      b.Y + 8,
		Width:  closeButtonSize,
		Height: closeButtonSize,
	}
}

// PanelPresenter shows at most one panel at a time.
type PanelPresenter struct {
	panels []*Panel
	index  map[string]*Panel

	// OnClose is called by CloseAll so the owner can release a selected
	// zone. Nil is allowed.
	OnClose func()
}

// NewPanelPresenter creates an empty presenter.
func NewPanelPresenter() *PanelPresenter {
	return &PanelPresenter{index: make(map[string]*Panel)}
}

// Register adds a panel. IDs must be non-empty and unique.
func (pp *PanelPresenter) Register(p *Panel) error {
	if p.ID == "" {
		return ErrEmptyPanelID
	}
	if _, dup := pp.index[p.ID]; dup {
		return fmt.Errorf("panel %q: %w", p.ID, ErrDuplicatePanel)
	}
	p.active = false
	pp.index[p.ID] = p
	pp.panels = append(pp.panels, p)
	return nil
}

// Panels returns every registered panel in registration order.
func (pp *PanelPresenter) Panels() []*Panel { return pp.panels }

// Panel returns the panel with the given ID, or nil.
func (pp *PanelPresenter) Panel(id string) *Panel { return pp.index[id] }

// Show deactivates every panel, then activates the panel bound to zoneID.
// A zone without a panel leaves every panel inactive and returns false.
func (pp *PanelPresenter) Show(zoneID string) bool {
	pp.deactivateAll()
	p, ok := pp.index[PanelID(zoneID)]
	if !ok {
		return false
	}
	p.active = true
	return true
}

// CloseAll deactivates every panel and notifies OnClose.
func (pp *PanelPresenter) CloseAll() {
	pp.deactivateAll()
	if pp.OnClose != nil {
		pp.OnClose()
	}
}

// Active returns the shown panel, or nil.
func (pp *PanelPresenter) Active() *Panel {
	for _, p := range pp.panels {
		if p.active {
			return p
		}
	}
	return nil
}

// Contains reports whether (x, y) lies over the shown panel.
func (pp *PanelPresenter) Contains(x, y float64) bool {
	p := pp.Active()
	return p != nil && p.Bounds.Contains(x, y)
}

// Layout docks every panel to the right edge of a w×h screen.
func (pp *PanelPresenter) Layout(w, h float64) {
	pw := min(panelMaxWidth, w*panelWidthRatio)
	r := Rect{
		X:      w - pw - panelMargin,
		Y:      panelMargin,
		Width:  pw,
		Height: max(0, h-2*panelMargin),
	}
	for _, p := range pp.panels {
		p.Bounds = r
	}
}

func (pp *PanelPresenter) deactivateAll() {
	for _, p := range pp.panels {
		p.active = false
	}
}
