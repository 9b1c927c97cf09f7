package lockerroom

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

// lockerInset is how far the zone ring sits inside the room wall.
const lockerInset = 1.5

// floorTiles is the number of floor tiles along each axis. Tiling keeps
// most tiles fully in front of the near plane so they survive projection.
const floorTiles = 12

// newFloor builds a checkered floor covering the room's bounding square.
func newFloor(radius float64) *Node {
	floor := NewGroup("floor")
	size := radius * 2 / floorTiles
	light, dark := colorFromHex("#8b6914"), colorFromHex("#5c4a0f")
	for i := 0; i < floorTiles; i++ {
		for j := 0; j < floorTiles; j++ {
			c := light
			if (i+j)%2 == 1 {
				c = dark
			}
			t := NewBox(fmt.Sprintf("floor-%d-%d", i, j), mgl64.Vec3{size, 0.02, size}, c)
			t.Position = mgl64.Vec3{
				-radius + size*(float64(i)+0.5),
				-0.01,
				-radius + size*(float64(j)+0.5),
			}
			t.Layer = 0
			floor.AddChild(t)
		}
	}
	return floor
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	log     zerolog.Logger
	ready   ReadySource
	store   EntityStore
	meter   metric.Meter
	seed    uint64
	hasSeed bool
}

// WithLogger sets the session logger. The default discards everything.
func WithLogger(log zerolog.Logger) SessionOption {
	return func(o *sessionOptions) { o.log = log }
}

// WithReadySource replaces the simulated loader with an external readiness
// signal.
func WithReadySource(r ReadySource) SessionOption {
	return func(o *sessionOptions) { o.ready = r }
}

// WithEntityStore forwards session events to an ECS.
func WithEntityStore(store EntityStore) SessionOption {
	return func(o *sessionOptions) { o.store = store }
}

// WithMeterProvider records interaction metrics on mp instead of the global
// provider.
func WithMeterProvider(mp metric.MeterProvider) SessionOption {
	return func(o *sessionOptions) { o.meter = mp.Meter(instrumentationName) }
}

// WithSeed fixes the random seed used for the dust field and the loader.
func WithSeed(seed uint64) SessionOption {
	return func(o *sessionOptions) {
		o.seed = seed
		o.hasSeed = true
	}
}

// Session is the explicit owner of all interaction state: the zone registry,
// camera, hover, selection, panels and ambient animation. It is single
// threaded; every method must be called from the frame loop.
type Session struct {
	cfg   *Config
	log   zerolog.Logger
	store EntityStore
	debug bool

	registry *Registry
	root     *Node
	beams    []*Node

	camera     *Camera
	camState   CameraState
	picker     *Picker
	hover      *HoverTracker
	controller *Controller
	panels     *PanelPresenter
	ambient    *AmbientAnimator
	dust       *DustField
	loader     *Loader
	ready      ReadySource
	hud        HUD
	metrics    *sessionMetrics

	started bool
	epoch   time.Time
	now     time.Time
	px, py  float64

	pointer     pointerState
	injectQueue []syntheticEvent
	testRunner  *TestRunner

	screenshotQueue []string
}

// NewSession builds the room described by cfg. A nil cfg selects
// DefaultConfig.
func NewSession(cfg *Config, opts ...SessionOption) (*Session, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.meter == nil {
		o.meter = meter()
	}
	seed := cfg.Particles.Seed
	if o.hasSeed {
		seed = o.seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	registry, err := NewRegistry(cfg.Zones())
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		log:      o.log,
		store:    o.store,
		debug:    cfg.Debug,
		registry: registry,
		root:     NewGroup("root"),
	}

	s.root.AddChild(newFloor(cfg.Room.Radius))

	registry.Build(s.root, cfg.Room.Radius-lockerInset)
	s.beams = NewBeams(registry.Zones(), cfg.Room.Radius, cfg.Room.Height)
	for _, b := range s.beams {
		s.root.AddChild(b)
	}

	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	s.camera = NewCamera(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, Rect{Width: w, Height: h})
	s.camera.Position = mgl64.Vec3{0, cfg.Camera.Height, 0}

	s.controller = NewController(s.camera, &s.camState, ControllerConfig{
		Duration:          cfg.Camera.Transition,
		Standoff:          cfg.Camera.Standoff,
		EyeHeight:         cfg.Camera.EyeHeight,
		SelectedIntensity: cfg.Interaction.SelectedIntensity,
		Smoothing:         cfg.Camera.Smoothing,
	}, o.log)
	s.controller.OnFocus = s.onFocus
	s.controller.OnFreeLook = s.onFreeLook

	s.picker = NewPicker(registry)
	s.hover = NewHoverTracker(s.picker, s.camera, cfg.Interaction.HoverIntensity, s.controller.Selected)
	s.hover.OnChange = s.onHoverChange

	s.panels = NewPanelPresenter()
	for _, p := range cfg.Panels() {
		if err := s.panels.Register(p); err != nil {
			return nil, fmt.Errorf("registering panels: %w", err)
		}
	}
	s.panels.Layout(w, h)
	s.panels.OnClose = func() { s.release(s.now) }

	s.dust = NewDustField(DustConfig{
		Count:      cfg.Particles.Count,
		Radius:     cfg.Room.Radius,
		Height:     cfg.Room.Height,
		Horizontal: Range{Min: -0.005, Max: 0.005},
		Vertical:   Range{Min: -0.0025, Max: 0.0025},
	}, rng)
	s.ambient = NewAmbientAnimator(s.dust, registry.Objects(), s.beams)

	if o.ready != nil {
		s.ready = o.ready
	} else {
		s.loader = NewLoader(rng)
		s.ready = s.loader
	}

	s.metrics, err = newSessionMetrics(o.meter, s.controller.Mode)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	s.debugCheckTree()
	s.log.Info().
		Int("zones", registry.Len()).
		Int("particles", len(s.dust.Particles)).
		Uint64("seed", seed).
		Msg("session created")
	return s, nil
}

// Close releases the session's metric registrations.
func (s *Session) Close() error {
	return s.metrics.close()
}

// --- Commands ---

// Start begins the experience. It is refused until the ready source reports
// ready, and only the first successful call has an effect.
func (s *Session) Start(now time.Time) bool {
	if s.started {
		return false
	}
	if !s.ready.Ready() {
		s.log.Debug().Msg("start refused: not ready")
		return false
	}
	s.started = true
	s.touch(now)
	s.hud.Start(now, s.cfg.Interaction.IntroDelay)
	s.log.Info().Msg("experience started")
	s.emit(EventStart, nil, s.px, s.py)
	return true
}

// PointerMove updates hover from the pointer at (x, y) in screen pixels.
// Hover only runs once started and in free look.
func (s *Session) PointerMove(x, y float64) {
	s.px, s.py = x, y
	if !s.hoverEnabled() {
		return
	}
	s.hover.Update(x, y)
}

// Look turns the free-look target by a pointer drag delta in pixels.
func (s *Session) Look(dx, dy float64) {
	if !s.started {
		return
	}
	s.controller.Look(dx, dy, s.cfg.Camera.LookSensitivity, s.cfg.Camera.MaxPitch)
}

// Click handles a pointer click at (x, y). A click on the active panel's
// close button closes it; any other click over a panel is swallowed.
// Otherwise, in free look, the zone under the pointer is selected. Click
// reports whether a selection started.
func (s *Session) Click(x, y float64, now time.Time) bool {
	s.touch(now)
	s.px, s.py = x, y
	if p := s.panels.Active(); p != nil {
		if p.CloseButton().Contains(x, y) {
			s.closePanels()
			return false
		}
		if p.Bounds.Contains(x, y) {
			return false
		}
	}
	if !s.hoverEnabled() {
		return false
	}
	obj := s.hover.Update(x, y)
	if obj == nil {
		return false
	}
	if !s.controller.Select(obj, now) {
		return false
	}
	s.hover.Clear()
	s.hud.HideHint()
	s.metrics.selected(obj.ID())
	s.log.Info().Str("zone", obj.ID()).Msg("zone selected")
	s.emit(EventSelect, obj, x, y)
	return true
}

// Escape releases the focused zone and closes every panel.
func (s *Session) Escape(now time.Time) {
	s.touch(now)
	s.release(now)
	s.closePanels()
}

// Resize follows a window size change.
func (s *Session) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if s.camera.Viewport.Width == w && s.camera.Viewport.Height == h {
		return
	}
	s.camera.SetViewportSize(w, h)
	s.panels.Layout(w, h)
	s.log.Debug().Float64("width", w).Float64("height", h).Msg("resized")
}

// Update advances the session by one frame: scripted and injected input,
// then the loader, the camera controller, ambient motion and the HUD.
func (s *Session) Update(now time.Time) {
	s.touch(now)
	if s.testRunner != nil {
		s.testRunner.step(s, now)
	}
	s.processInjectedInput(now)

	if s.loader != nil {
		s.loader.Update(now)
	}
	s.controller.Update(now)
	s.ambient.Update(s.SceneTime(), s.controller.Selected())
	s.hud.Update(now)
}

// --- Queries ---

// Config returns the session configuration.
func (s *Session) Config() *Config { return s.cfg }

// Logger returns the session logger.
func (s *Session) Logger() zerolog.Logger { return s.log }

// Registry returns the zone registry.
func (s *Session) Registry() *Registry { return s.registry }

// Root returns the scene root.
func (s *Session) Root() *Node { return s.root }

// Camera returns the scene camera.
func (s *Session) Camera() *Camera { return s.camera }

// CameraState returns the free-look rotation state.
func (s *Session) CameraState() CameraState { return s.camState }

// Controller returns the selection controller.
func (s *Session) Controller() *Controller { return s.controller }

// Panels returns the panel presenter.
func (s *Session) Panels() *PanelPresenter { return s.panels }

// Dust returns the dust field.
func (s *Session) Dust() *DustField { return s.dust }

// Beams returns the light beam nodes.
func (s *Session) Beams() []*Node { return s.beams }

// Started reports whether Start succeeded.
func (s *Session) Started() bool { return s.started }

// Ready reports whether the scene may be started.
func (s *Session) Ready() bool { return s.ready.Ready() }

// LoadProgress returns the simulated load percentage, or 100 when an
// external ready source is used and reports ready.
func (s *Session) LoadProgress() float64 {
	if s.loader != nil {
		return s.loader.Progress()
	}
	if s.ready.Ready() {
		return 100
	}
	return 0
}

// State returns the interaction state.
func (s *Session) State() InteractionState { return s.controller.State() }

// Mode returns the interaction mode.
func (s *Session) Mode() Mode { return s.controller.Mode() }

// Selected returns the selected zone object, or nil.
func (s *Session) Selected() *InteractiveObject { return s.controller.Selected() }

// Hovered returns the hovered zone object, or nil.
func (s *Session) Hovered() *InteractiveObject { return s.hover.Hovered() }

// ActivePanel returns the shown panel, or nil.
func (s *Session) ActivePanel() *Panel { return s.panels.Active() }

// Cursor returns the cursor hint for the host window.
func (s *Session) Cursor() CursorShape { return s.hover.Cursor() }

// Label returns the floating zone label.
func (s *Session) Label() Label { return s.hover.Label() }

// HintVisible reports whether the navigation hint is shown.
func (s *Session) HintVisible() bool { return s.hud.HintVisible() }

// TitleAlpha returns the title opacity.
func (s *Session) TitleAlpha() float64 { return s.hud.TitleAlpha() }

// HintAlpha returns the hint opacity.
func (s *Session) HintAlpha() float64 { return s.hud.HintAlpha() }

// SceneTime returns seconds since the first frame.
func (s *Session) SceneTime() float64 {
	if s.epoch.IsZero() {
		return 0
	}
	return s.now.Sub(s.epoch).Seconds()
}

// SetDebug enables per-frame debug logging.
func (s *Session) SetDebug(enabled bool) {
	s.debug = enabled
	s.debugCheckTree()
}

// --- Internals ---

func (s *Session) touch(now time.Time) {
	if s.epoch.IsZero() {
		s.epoch = now
	}
	if now.After(s.now) {
		s.now = now
	}
}

func (s *Session) hoverEnabled() bool {
	return s.started && s.controller.Mode() == ModeFreeLook
}

func (s *Session) release(now time.Time) {
	obj := s.controller.State().Object
	if s.controller.Release(now) {
		s.log.Info().Str("zone", obj.ID()).Msg("zone released")
		s.emit(EventRelease, obj, s.px, s.py)
	}
}

func (s *Session) closePanels() {
	s.panels.CloseAll()
	s.emit(EventPanelsClosed, nil, s.px, s.py)
}

func (s *Session) onFocus(obj *InteractiveObject) {
	s.metrics.transitionDone("in")
	s.emit(EventFocus, obj, s.px, s.py)
	if s.panels.Show(obj.ID()) {
		s.emit(EventPanelShow, obj, s.px, s.py)
	} else {
		s.log.Debug().Str("zone", obj.ID()).Msg("no panel for zone")
	}
}

func (s *Session) onFreeLook(obj *InteractiveObject) {
	s.metrics.transitionDone("out")
	s.hud.ShowHint()
	s.emit(EventFreeLook, obj, s.px, s.py)
}

func (s *Session) onHoverChange(prev, next *InteractiveObject) {
	s.metrics.hoverChanged()
	if prev != nil {
		s.emit(EventHoverLeave, prev, s.px, s.py)
	}
	if next != nil {
		s.emit(EventHoverEnter, next, s.px, s.py)
	}
}

// emit forwards an event to the entity store, if any.
func (s *Session) emit(t EventType, obj *InteractiveObject, x, y float64) {
	if s.store == nil {
		return
	}
	ev := InteractionEvent{Type: t, Mode: s.controller.Mode(), X: x, Y: y}
	if obj != nil {
		ud := obj.UserData()
		ev.ZoneID = ud.ID
		ev.Label = ud.Label
		ev.PanelID = PanelID(ud.ID)
	}
	s.store.EmitEvent(ev)
}
