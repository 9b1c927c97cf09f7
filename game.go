package lockerroom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Session to ebiten.Game. Input is polled at the start of
// Update and fed into the session before the controller and ambient steps.
type Game struct {
	session  *Session
	renderer *renderer
	cursor   CursorShape
	clock    func() time.Time
	stats    frameStats
}

// NewGame wraps a session.
func NewGame(s *Session) *Game {
	return &Game{session: s, clock: time.Now}
}

// Session returns the wrapped session.
func (g *Game) Session() *Session { return g.session }

// Update implements ebiten.Game. It ends the run once an attached test
// script has finished.
func (g *Game) Update() error {
	if r := g.session.testRunner; r != nil && r.Done() {
		return ebiten.Termination
	}
	start := time.Now()
	now := g.clock()

	g.session.pollInput(now)
	g.session.Update(now)

	if c := g.session.Cursor(); c != g.cursor {
		g.cursor = c
		if c == CursorPointer {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
	g.stats.updateTime = time.Since(start)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		g.renderer = newRenderer()
	}
	start := time.Now()
	g.stats.faceCount, g.stats.moteCount = g.renderer.draw(screen, g.session)
	g.stats.drawTime = time.Since(start)
	g.session.flushScreenshots(screen)
	g.session.debugLog(g.stats)
}

// Layout implements ebiten.Game. The camera and panels follow the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window sized from the session config and blocks
// until it is closed.
func Run(s *Session) error {
	return RunGame(s, NewGame(s))
}

// RunGame is Run with a caller-supplied game, typically one embedding *Game.
func RunGame(s *Session, g ebiten.Game) error {
	cfg := s.Config()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	s.log.Info().Int("width", cfg.Window.Width).Int("height", cfg.Window.Height).Msg("window opened")
	return ebiten.RunGame(g)
}
