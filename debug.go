package lockerroom

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// frameStats holds per-frame timing and draw metrics. Only populated when
// the session is in debug mode.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	faceCount  int
	moteCount  int
}

// debugLog writes frame stats at debug level.
func (s *Session) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	s.log.Debug().
		Dur("update", stats.updateTime).
		Dur("draw", stats.drawTime).
		Dur("total", stats.updateTime+stats.drawTime).
		Int("faces", stats.faceCount).
		Int("motes", stats.moteCount).
		Msg("frame")
}

const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// debugCheckTree walks the scene and warns about trees that are suspiciously
// deep or wide.
func (s *Session) debugCheckTree() {
	if !s.debug {
		return
	}
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if depth > debugMaxTreeDepth {
			s.log.Warn().Str("node", n.Name).Int("depth", depth).Msg("tree depth exceeds threshold")
			return
		}
		if n.NumChildren() > debugMaxChildCount {
			s.log.Warn().Str("node", n.Name).Int("children", n.NumChildren()).Msg("child count exceeds threshold")
		}
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(s.root, 1)
}

// fpsText returns the frame rate overlay line.
func fpsText() string {
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}
