package lockerroom

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

// InteractionState is the tagged interaction state of a session. Object is
// set in every mode except ModeFreeLook and names the zone the camera is
// moving toward, parked at, or leaving.
type InteractionState struct {
	Mode   Mode
	Object *InteractiveObject
}

// ControllerConfig tunes camera moves and the selection affordance.
type ControllerConfig struct {
	// Duration of one camera move.
	Duration time.Duration
	// Standoff is how far in front of a zone the camera parks.
	Standoff float64
	// EyeHeight is the camera height while focused.
	EyeHeight float64
	// SelectedIntensity is the glow opacity of the selected zone.
	SelectedIntensity float64
	// Smoothing is the free-look smoothing factor applied per frame.
	Smoothing float64
	// Ease shapes transition progress. Nil selects ease.OutCubic.
	Ease ease.TweenFunc
}

// DefaultControllerConfig returns the stock camera tuning.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		Duration:          DefaultTransitionDuration,
		Standoff:          3,
		EyeHeight:         3.5,
		SelectedIntensity: 0.2,
		Smoothing:         0.06,
		Ease:              ease.OutCubic,
	}
}

// Controller owns the interaction state machine and drives the camera.
//
//	FreeLook --Select--> TransitioningIn --done--> Focused
//	Focused --Release--> TransitioningOut --done--> FreeLook
//
// Requests on any other edge are ignored. While a transition runs the
// controller is the only writer of the camera pose; otherwise Update smooths
// CameraState.Current toward Target.
type Controller struct {
	camera *Camera
	cam    *CameraState
	cfg    ControllerConfig
	log    zerolog.Logger

	state  InteractionState
	active *Transition
	saved  Pose

	// OnFocus is called once when the camera arrives at a selected zone.
	OnFocus func(obj *InteractiveObject)
	// OnFreeLook is called once when the camera is back at the saved pose.
	OnFreeLook func(obj *InteractiveObject)
}

// NewController creates a controller in free-look mode.
func NewController(camera *Camera, state *CameraState, cfg ControllerConfig, log zerolog.Logger) *Controller {
	if cfg.Ease == nil {
		cfg.Ease = ease.OutCubic
	}
	return &Controller{
		camera: camera,
		cam:    state,
		cfg:    cfg,
		log:    log,
	}
}

// State returns the current interaction state.
func (c *Controller) State() InteractionState { return c.state }

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.state.Mode }

// Config returns the controller tuning.
func (c *Controller) Config() ControllerConfig { return c.cfg }

// Selected returns the selected zone object, or nil. A zone counts as
// selected while the camera moves toward it and while it is focused.
func (c *Controller) Selected() *InteractiveObject {
	switch c.state.Mode {
	case ModeTransitioningIn, ModeFocused:
		return c.state.Object
	}
	return nil
}

// Transitioning reports whether a camera move is in flight.
func (c *Controller) Transitioning() bool {
	return c.active != nil
}

// Transition returns the active transition, or nil.
func (c *Controller) Transition() *Transition {
	return c.active
}

// SavedPose returns the pose captured when the current selection began.
func (c *Controller) SavedPose() Pose {
	return c.saved
}

// FocusPose returns the pose the camera takes when focused on obj: pulled
// from the zone toward the room centre by the standoff, at eye height,
// facing the zone level.
func (c *Controller) FocusPose(obj *InteractiveObject) Pose {
	p := obj.Root.WorldPosition()
	flat := mgl64.Vec3{p.X(), 0, p.Z()}
	dir := mgl64.Vec3{0, 0, 1}
	if l := flat.Len(); l > 0 {
		dir = flat.Mul(1 / l)
	}
	eye := flat.Sub(dir.Mul(c.cfg.Standoff))
	eye[1] = c.cfg.EyeHeight
	return Pose{
		Position: eye,
		Rotation: Rotation{X: 0, Y: math.Atan2(-p.X(), -p.Z())},
	}
}

// Select starts moving the camera toward obj. It returns false and changes
// nothing unless the controller is in free-look mode.
func (c *Controller) Select(obj *InteractiveObject, now time.Time) bool {
	if obj == nil || c.state.Mode != ModeFreeLook || c.active != nil {
		c.log.Debug().Str("mode", c.state.Mode.String()).Msg("select ignored")
		return false
	}
	c.saved = Pose{Position: c.camera.Position, Rotation: c.cam.Current}
	c.state = InteractionState{Mode: ModeTransitioningIn, Object: obj}
	obj.SetGlow(c.cfg.SelectedIntensity)
	c.active = NewTransition(c.saved, c.FocusPose(obj), now, c.cfg.Duration, c.cfg.Ease)
	c.log.Debug().Str("zone", obj.ID()).Msg("transition in")
	return true
}

// Release starts returning the camera to the pose saved at selection. It
// returns false and changes nothing unless a zone is focused.
func (c *Controller) Release(now time.Time) bool {
	if c.state.Mode != ModeFocused || c.active != nil {
		c.log.Debug().Str("mode", c.state.Mode.String()).Msg("release ignored")
		return false
	}
	obj := c.state.Object
	c.state = InteractionState{Mode: ModeTransitioningOut, Object: obj}
	obj.SetGlow(0)
	from := Pose{Position: c.camera.Position, Rotation: c.cam.Current}
	c.active = NewTransition(from, c.saved, now, c.cfg.Duration, c.cfg.Ease)
	c.log.Debug().Str("zone", obj.ID()).Msg("transition out")
	return true
}

// Update advances the active transition or, in free look, smooths the
// camera toward its target rotation. The applied rotation is copied to the
// camera last.
func (c *Controller) Update(now time.Time) {
	if c.active != nil {
		pose, completed := c.active.Step(now)
		c.camera.Position = pose.Position
		c.cam.Current = pose.Rotation
		c.cam.Target = pose.Rotation
		if completed {
			c.finish()
		}
	} else if c.state.Mode == ModeFreeLook {
		c.cam.Smooth(c.cfg.Smoothing)
	}
	c.camera.Rotation = c.cam.Current
}

// Look nudges the free-look target by a pointer delta in pixels. Pitch is
// clamped to ±maxPitch. Ignored outside free look.
func (c *Controller) Look(dx, dy, sensitivity, maxPitch float64) {
	if c.state.Mode != ModeFreeLook || c.active != nil {
		return
	}
	c.cam.Target.Y -= dx * sensitivity
	c.cam.Target.X -= dy * sensitivity
	c.cam.Target.X = max(-maxPitch, min(maxPitch, c.cam.Target.X))
}

func (c *Controller) finish() {
	obj := c.state.Object
	c.active = nil
	switch c.state.Mode {
	case ModeTransitioningIn:
		c.state.Mode = ModeFocused
		c.log.Debug().Str("zone", obj.ID()).Msg("focused")
		if c.OnFocus != nil {
			c.OnFocus(obj)
		}
	case ModeTransitioningOut:
		c.state = InteractionState{Mode: ModeFreeLook}
		c.log.Debug().Str("zone", obj.ID()).Msg("free look")
		if c.OnFreeLook != nil {
			c.OnFreeLook(obj)
		}
	}
}
