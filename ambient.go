package lockerroom

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// DustConfig controls how the dust field is seeded.
type DustConfig struct {
	// Count is the number of particles.
	Count int
	// Radius bounds |x| and |z|; Height bounds y.
	Radius, Height float64
	// Horizontal and Vertical are the ranges of the constant per-frame
	// velocity components.
	Horizontal, Vertical Range
}

// DefaultDustConfig returns the stock dust field for a room of the given
// radius and height.
func DefaultDustConfig(radius, height float64) DustConfig {
	return DustConfig{
		Count:      500,
		Radius:     radius,
		Height:     height,
		Horizontal: Range{Min: -0.005, Max: 0.005},
		Vertical:   Range{Min: -0.0025, Max: 0.0025},
	}
}

// DustParticle is one floating mote.
type DustParticle struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3
}

// DustField is a fixed pool of motes drifting inside the room. Positions
// always satisfy |x| <= Radius, |z| <= Radius and 0 <= y <= Height.
type DustField struct {
	Particles []DustParticle
	Radius    float64
	Height    float64
}

// NewDustField seeds cfg.Count particles uniformly over the room's floor
// disc and height.
func NewDustField(cfg DustConfig, rng *rand.Rand) *DustField {
	d := &DustField{
		Particles: make([]DustParticle, cfg.Count),
		Radius:    cfg.Radius,
		Height:    cfg.Height,
	}
	for i := range d.Particles {
		angle := rng.Float64() * 2 * math.Pi
		r := rng.Float64() * cfg.Radius
		sin, cos := math.Sincos(angle)
		d.Particles[i] = DustParticle{
			Pos: mgl64.Vec3{cos * r, rng.Float64() * cfg.Height, sin * r},
			Vel: mgl64.Vec3{
				cfg.Horizontal.Random(rng),
				cfg.Vertical.Random(rng),
				cfg.Horizontal.Random(rng),
			},
		}
	}
	return d
}

// Step advances every particle by one frame at scene time t in seconds.
func (d *DustField) Step(t float64) {
	for i := range d.Particles {
		p := &d.Particles[i]
		fi := float64(i)
		p.Pos[0] += p.Vel[0] + math.Sin(t+fi)*0.002
		p.Pos[1] += p.Vel[1] + math.Sin(t*0.5+fi)*0.001
		p.Pos[2] += p.Vel[2] + math.Cos(t+fi)*0.002

		p.Pos[0] = wrapHorizontal(p.Pos[0], d.Radius)
		p.Pos[2] = wrapHorizontal(p.Pos[2], d.Radius)
		if p.Pos[1] > d.Height {
			p.Pos[1] = 0
		}
		if p.Pos[1] < 0 {
			p.Pos[1] = d.Height
		}
	}
}

// wrapHorizontal reflects a coordinate that left [-r, r] back inside,
// damped by 0.9.
func wrapHorizontal(v, r float64) float64 {
	if math.Abs(v) <= r {
		return v
	}
	v *= -0.9
	return max(-r, min(r, v))
}

// AmbientAnimator runs the per-frame ambient motion: dust drift, zone
// breathing and light beam pulsing. It runs in every mode.
type AmbientAnimator struct {
	Dust    *DustField
	Objects []*InteractiveObject
	Beams   []*Node
}

// NewAmbientAnimator creates an animator over the given parts. Any of them
// may be empty.
func NewAmbientAnimator(dust *DustField, objects []*InteractiveObject, beams []*Node) *AmbientAnimator {
	return &AmbientAnimator{Dust: dust, Objects: objects, Beams: beams}
}

// Update animates everything at scene time t in seconds. The selected object
// is left at its current height so the focused camera framing is stable.
func (a *AmbientAnimator) Update(t float64, selected *InteractiveObject) {
	if a.Dust != nil {
		a.Dust.Step(t)
	}
	for _, obj := range a.Objects {
		if obj == selected {
			continue
		}
		obj.Root.Position[1] = BreathingOffset(obj.RestY, t, obj.Phase)
	}
	for i, b := range a.Beams {
		b.Opacity = BeamOpacity(t, i)
	}
}

// BreathingOffset returns the height of a zone object with the given phase
// at time t.
func BreathingOffset(restY, t, phase float64) float64 {
	return restY + math.Sin(t*0.3+phase)*0.008
}

// BeamOpacity returns the opacity of the i-th light beam at time t.
func BeamOpacity(t float64, i int) float64 {
	return 0.02 + math.Sin(t*0.5+float64(i))*0.01
}

// NewBeams builds one light shaft per zone, hung below the ceiling between
// the zone and the room centre. Beams are scenery and never picked.
func NewBeams(zones []Zone, radius, height float64) []*Node {
	beams := make([]*Node, 0, len(zones))
	shaft := colorFromHex("#fff8f0")
	for _, z := range zones {
		p := z.Placement((radius - 2) * 0.8)
		b := NewBox("beam-"+z.ID, mgl64.Vec3{1.5, 6, 1.5}, shaft)
		b.Position = mgl64.Vec3{p.X(), height - 3, p.Z()}
		b.Opacity = 0.03
		b.Layer = 3
		beams = append(beams, b)
	}
	return beams
}
