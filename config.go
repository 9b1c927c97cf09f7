package lockerroom

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config
// keys, e.g. LOCKERROOM_ROOM_RADIUS.
const EnvPrefix = "LOCKERROOM"

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("lockerroom: invalid config")

// WindowConfig holds host window settings.
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// CameraConfig holds projection, free-look and transition settings.
type CameraConfig struct {
	FOV             float64       `mapstructure:"fov"`
	Near            float64       `mapstructure:"near"`
	Far             float64       `mapstructure:"far"`
	Height          float64       `mapstructure:"height"`
	LookSensitivity float64       `mapstructure:"lookSensitivity"`
	Smoothing       float64       `mapstructure:"smoothing"`
	MaxPitch        float64       `mapstructure:"maxPitch"`
	Transition      time.Duration `mapstructure:"transition"`
	Standoff        float64       `mapstructure:"standoff"`
	EyeHeight       float64       `mapstructure:"eyeHeight"`
}

// RoomConfig holds the room dimensions.
type RoomConfig struct {
	Radius float64 `mapstructure:"radius"`
	Height float64 `mapstructure:"height"`
}

// InteractionConfig holds affordance and input settings.
type InteractionConfig struct {
	HoverIntensity    float64       `mapstructure:"hoverIntensity"`
	SelectedIntensity float64       `mapstructure:"selectedIntensity"`
	DragDeadZone      float64       `mapstructure:"dragDeadZone"`
	IntroDelay        time.Duration `mapstructure:"introDelay"`
}

// ParticlesConfig holds dust field settings. A zero Seed picks a random one.
type ParticlesConfig struct {
	Count int    `mapstructure:"count"`
	Seed  uint64 `mapstructure:"seed"`
}

// LockerConfig describes one zone and its panel. Angle is in degrees and
// Color is a hex string.
type LockerConfig struct {
	ID     string   `mapstructure:"id"`
	Label  string   `mapstructure:"label"`
	Number string   `mapstructure:"number"`
	Angle  float64  `mapstructure:"angle"`
	Color  string   `mapstructure:"color"`
	Title  string   `mapstructure:"title"`
	Body   []string `mapstructure:"body"`
}

// Config is the full locker room configuration.
type Config struct {
	LogLevel      string            `mapstructure:"logLevel"`
	Debug         bool              `mapstructure:"debug"`
	ScreenshotDir string            `mapstructure:"screenshotDir"`
	Window        WindowConfig      `mapstructure:"window"`
	Camera        CameraConfig      `mapstructure:"camera"`
	Room          RoomConfig        `mapstructure:"room"`
	Interaction   InteractionConfig `mapstructure:"interaction"`
	Particles     ParticlesConfig   `mapstructure:"particles"`
	Lockers       []LockerConfig    `mapstructure:"lockers"`
}

// DefaultConfig returns the stock four-locker room.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		ScreenshotDir: "screenshots",
		Window:        WindowConfig{Title: "Locker Room", Width: 1280, Height: 720},
		Camera: CameraConfig{
			FOV:             45,
			Near:            0.1,
			Far:             100,
			Height:          3.5,
			LookSensitivity: 0.002,
			Smoothing:       0.06,
			MaxPitch:        math.Pi / 4,
			Transition:      DefaultTransitionDuration,
			Standoff:        3,
			EyeHeight:       3.5,
		},
		Room: RoomConfig{Radius: 12, Height: 9},
		Interaction: InteractionConfig{
			HoverIntensity:    DefaultHoverIntensity,
			SelectedIntensity: 0.2,
			DragDeadZone:      defaultDragDeadZone,
			IntroDelay:        500 * time.Millisecond,
		},
		Particles: ParticlesConfig{Count: 500},
		Lockers:   DefaultLockers(),
	}
}

// DefaultLockers returns the four stock zones.
func DefaultLockers() []LockerConfig {
	return []LockerConfig{
		{
			ID: "about", Label: "ABOUT", Number: "01", Angle: -45, Color: "#4a90d9",
			Title: "About Me",
			Body: []string{
				"Developer and lifelong athlete.",
				"I build things for the web and for games.",
			},
		},
		{
			ID: "interests", Label: "INTERESTS", Number: "02", Angle: 45, Color: "#50c878",
			Title: "Interests",
			Body: []string{
				"Basketball, graphics programming,",
				"procedural generation and good coffee.",
			},
		},
		{
			ID: "work", Label: "WORK", Number: "03", Angle: 135, Color: "#d4a574",
			Title: "Work",
			Body: []string{
				"Selected projects and case studies.",
				"Real-time 3D, tooling and interactive sites.",
			},
		},
		{
			ID: "contact", Label: "CONNECT", Number: "04", Angle: 225, Color: "#9b6dff",
			Title: "Connect",
			Body: []string{
				"Say hello. I answer every message.",
			},
		},
	}
}

// setDefaults registers every default value on v so environment overrides
// resolve for all keys.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("screenshotDir", d.ScreenshotDir)

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)

	v.SetDefault("camera.fov", d.Camera.FOV)
	v.SetDefault("camera.near", d.Camera.Near)
	v.SetDefault("camera.far", d.Camera.Far)
	v.SetDefault("camera.height", d.Camera.Height)
	v.SetDefault("camera.lookSensitivity", d.Camera.LookSensitivity)
	v.SetDefault("camera.smoothing", d.Camera.Smoothing)
	v.SetDefault("camera.maxPitch", d.Camera.MaxPitch)
	v.SetDefault("camera.transition", d.Camera.Transition)
	v.SetDefault("camera.standoff", d.Camera.Standoff)
	v.SetDefault("camera.eyeHeight", d.Camera.EyeHeight)

	v.SetDefault("room.radius", d.Room.Radius)
	v.SetDefault("room.height", d.Room.Height)

	v.SetDefault("interaction.hoverIntensity", d.Interaction.HoverIntensity)
	v.SetDefault("interaction.selectedIntensity", d.Interaction.SelectedIntensity)
	v.SetDefault("interaction.dragDeadZone", d.Interaction.DragDeadZone)
	v.SetDefault("interaction.introDelay", d.Interaction.IntroDelay)

	v.SetDefault("particles.count", d.Particles.Count)
	v.SetDefault("particles.seed", d.Particles.Seed)
}

// LoadConfig reads configuration from path (any format viper supports) on
// top of the defaults, applies LOCKERROOM_* environment overrides and
// validates the result. An empty path loads defaults and environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if len(cfg.Lockers) == 0 {
		cfg.Lockers = DefaultLockers()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and parses every locker colour.
func (c *Config) Validate() error {
	switch {
	case c.Room.Radius <= 0 || c.Room.Height <= 0:
		return fmt.Errorf("%w: room must have positive radius and height", ErrInvalidConfig)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v out of range", ErrInvalidConfig, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip planes %v..%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Camera.Transition < 0:
		return fmt.Errorf("%w: negative transition duration", ErrInvalidConfig)
	case c.Particles.Count < 0:
		return fmt.Errorf("%w: negative particle count", ErrInvalidConfig)
	}
	for _, l := range c.Lockers {
		if _, err := colorful.Hex(l.Color); err != nil {
			return fmt.Errorf("%w: locker %q color %q: %v", ErrInvalidConfig, l.ID, l.Color, err)
		}
	}
	return nil
}

// Zones converts the locker entries to zones. Colours must already be
// validated; an unparsable colour becomes white.
func (c *Config) Zones() []Zone {
	zones := make([]Zone, 0, len(c.Lockers))
	for _, l := range c.Lockers {
		zones = append(zones, Zone{
			ID:     l.ID,
			Label:  l.Label,
			Number: l.Number,
			Angle:  l.Angle * math.Pi / 180,
			Accent: colorFromHex(l.Color),
		})
	}
	return zones
}

// Panels builds one panel per locker.
func (c *Config) Panels() []*Panel {
	panels := make([]*Panel, 0, len(c.Lockers))
	for _, l := range c.Lockers {
		title := l.Title
		if title == "" {
			title = l.Label
		}
		panels = append(panels, &Panel{
			ID:     PanelID(l.ID),
			Title:  title,
			Number: l.Number,
			Body:   l.Body,
			Accent: colorFromHex(l.Color),
		})
	}
	return panels
}

// colorFromHex parses a "#rrggbb" colour, returning white on error.
func colorFromHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}
