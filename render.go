package lockerroom

import (
	"image/color"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// boxFaces lists the corner indices of each box face (see Node.WorldCorners:
// bit 0 is +X, bit 1 is +Y, bit 2 is +Z).
var boxFaces = [6][4]int{
	{0, 2, 6, 4}, // -X
	{1, 5, 7, 3}, // +X
	{0, 4, 5, 1}, // -Y
	{2, 3, 7, 6}, // +Y
	{0, 1, 3, 2}, // -Z
	{4, 6, 7, 5}, // +Z
}

// lightDir is the direction toward the key light used for flat shading.
var lightDir = mgl64.Vec3{0.3, 1, 0.5}.Normalize()

var (
	backgroundColor = colorful.Color{R: 0.05, G: 0.04, B: 0.03}
	dustColor       = colorful.Color{R: 1, G: 0.933, B: 0.867}
	panelColor      = colorful.Color{R: 0.08, G: 0.07, B: 0.06}
)

const (
	maxFacesPerBatch = 65535 / 4
	textDebugWidth   = 6
	textDebugHeight  = 16
)

// face is one projected, shaded quad ready for painter-order drawing.
type face struct {
	pts   [4]Vec2
	depth float64
	layer uint8
	color colorful.Color
	alpha float64
}

// collectFaces projects every visible face of every visible box under root
// and returns them in draw order: ascending layer, then far to near. Faces
// that cross the near plane or face away from the camera are dropped.
func collectFaces(cam *Camera, root *Node, buf []face) []face {
	vp := cam.ViewProjection()
	view := cam.ViewMatrix()
	eye := cam.Position

	root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if !n.IsBox() || n.Opacity <= 0 {
			return true
		}
		corners := n.WorldCorners()
		var centre mgl64.Vec3
		for _, c := range corners {
			centre = centre.Add(c)
		}
		centre = centre.Mul(1.0 / 8)

	faces:
		for _, idx := range boxFaces {
			var fc mgl64.Vec3
			for _, i := range idx {
				fc = fc.Add(corners[i])
			}
			fc = fc.Mul(0.25)
			normal := fc.Sub(centre)
			if normal.Len() == 0 {
				continue
			}
			normal = normal.Normalize()
			if normal.Dot(fc.Sub(eye)) >= 0 {
				continue
			}

			f := face{
				depth: cam.depth(view, fc),
				layer: n.Layer,
				color: shade(n.Color, normal),
				alpha: n.Opacity,
			}
			for k, i := range idx {
				x, y, ok := cam.project(vp, corners[i])
				if !ok {
					continue faces
				}
				f.pts[k] = Vec2{X: x, Y: y}
			}
			buf = append(buf, f)
		}
		return true
	})

	sort.SliceStable(buf, func(i, j int) bool {
		if buf[i].layer != buf[j].layer {
			return buf[i].layer < buf[j].layer
		}
		return buf[i].depth > buf[j].depth
	})
	return buf
}

// shade darkens c by how far normal turns away from the key light.
func shade(c colorful.Color, normal mgl64.Vec3) colorful.Color {
	k := 0.45 + 0.55*max(0, normal.Dot(lightDir))
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}

// nrgba converts a colour and opacity to an image colour.
func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(max(0, min(1, alpha)) * 255)}
}

// renderer draws a session. It caches text images and reuses vertex
// buffers across frames.
type renderer struct {
	white     *ebiten.Image
	faces     []face
	vertices  []ebiten.Vertex
	indices   []uint16
	textCache map[string]*ebiten.Image
}

func newRenderer() *renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &renderer{
		white:     white,
		textCache: make(map[string]*ebiten.Image),
	}
}

// draw renders the full frame and returns the face and mote counts.
func (r *renderer) draw(screen *ebiten.Image, s *Session) (faces, motes int) {
	screen.Fill(nrgba(backgroundColor, 1))

	r.faces = collectFaces(s.camera, s.root, r.faces[:0])
	r.drawFaces(screen)
	motes = r.drawDust(screen, s)

	if !s.Started() {
		r.drawLoading(screen, s)
		return len(r.faces), motes
	}
	r.drawHUD(screen, s)
	if p := s.ActivePanel(); p != nil {
		r.drawPanel(screen, p)
	}
	if s.debug {
		ebitenutil.DebugPrintAt(screen, fpsText(), 8, screen.Bounds().Dy()-textDebugHeight-4)
	}
	return len(r.faces), motes
}

func (r *renderer) drawFaces(screen *ebiten.Image) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, f := range r.faces {
		if len(r.indices)/6 >= maxFacesPerBatch {
			r.flush(screen)
		}
		base := uint16(len(r.vertices))
		cr, cg, cb := float32(f.color.R), float32(f.color.G), float32(f.color.B)
		ca := float32(f.alpha)
		for _, p := range f.pts {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1.5, SrcY: 1.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
	}
	r.flush(screen)
}

func (r *renderer) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

func (r *renderer) drawDust(screen *ebiten.Image, s *Session) int {
	vp := s.camera.ViewProjection()
	clr := nrgba(dustColor, 0.4)
	n := 0
	for _, p := range s.dust.Particles {
		x, y, ok := s.camera.project(vp, p.Pos)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), 1.5, 1.5, clr, false)
		n++
	}
	return n
}

func (r *renderer) drawLoading(screen *ebiten.Image, s *Session) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	barW := w * 0.3
	x := (w - barW) / 2
	y := h / 2
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(barW), 4, 1, color.NRGBA{R: 212, G: 175, B: 55, A: 255}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW*s.LoadProgress()/100), 4,
		color.NRGBA{R: 212, G: 175, B: 55, A: 255}, false)

	msg := "LOADING"
	if s.Ready() {
		msg = "CLICK OR PRESS ENTER TO START"
	}
	r.drawText(screen, msg, x, y+16, 1)
}

func (r *renderer) drawHUD(screen *ebiten.Image, s *Session) {
	if a := s.TitleAlpha(); a > 0 {
		r.drawText(screen, s.cfg.Window.Title, 24, 24, a)
	}
	if a := s.HintAlpha(); a > 0 {
		h := float64(screen.Bounds().Dy())
		r.drawText(screen, "DRAG TO LOOK AROUND - CLICK A LOCKER", 24, h-40, a)
	}
	if l := s.Label(); l.Visible {
		w := float64(len(l.Text)*textDebugWidth + 16)
		vector.DrawFilledRect(screen, float32(l.X), float32(l.Y), float32(w), 24, color.NRGBA{A: 180}, false)
		r.drawText(screen, l.Text, l.X+8, l.Y+4, 1)
	}
}

func (r *renderer) drawPanel(screen *ebiten.Image, p *Panel) {
	b := p.Bounds
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), nrgba(panelColor, 0.92), false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 2, nrgba(p.Accent, 1), false)

	cb := p.CloseButton()
	vector.StrokeRect(screen, float32(cb.X), float32(cb.Y), float32(cb.Width), float32(cb.Height), 1, nrgba(p.Accent, 1), false)
	r.drawText(screen, "X", cb.X+cb.Width/2-3, cb.Y+cb.Height/2-8, 1)

	x, y := b.X+24, b.Y+24
	if p.Number != "" {
		r.drawText(screen, p.Number, x, y, 0.6)
		y += 24
	}
	r.drawText(screen, strings.ToUpper(p.Title), x, y, 1)
	y += 40
	for _, line := range p.Body {
		r.drawText(screen, line, x, y, 0.85)
		y += 20
	}
}

// drawText draws a single line of debug-font text with the given opacity.
func (r *renderer) drawText(dst *ebiten.Image, text string, x, y, alpha float64) {
	if text == "" {
		return
	}
	img, ok := r.textCache[text]
	if !ok {
		img = ebiten.NewImage(len(text)*textDebugWidth+2, textDebugHeight)
		ebitenutil.DebugPrint(img, text)
		r.textCache[text] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, op)
}
