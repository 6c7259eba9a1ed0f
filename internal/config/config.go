// Package config provides YAML-based configuration for the rocket game:
// window, physics tuning, timer rates, asset locations, the fire trail and
// HUD text.
package config

// RocketConfig contains all configuration for the game.
type RocketConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Rocket  RocketSize    `yaml:"rocket"`
	Timers  TimerConfig   `yaml:"timers"`
	Assets  AssetsConfig  `yaml:"assets"`
	Fire    FireConfig    `yaml:"fire"`
	HUD     HUDConfig     `yaml:"hud"`
}

// WindowConfig defines the initial window for the graphical frontend.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig defines per-frame physics parameters.
// Velocities are in pixels per frame, so tuning depends on the frame rate.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`     // Added to velocity.y every playing frame
	Thrust     float64 `yaml:"thrust"`      // Velocity change per held arrow key
	DecayStep  float64 `yaml:"decay_step"`  // Horizontal damping per decay tick
	DecayDelay float64 `yaml:"decay_delay"` // Seconds without steering before damping starts
	SpawnLift  float64 `yaml:"spawn_lift"`  // Initial distance of the rocket base above the bottom edge
}

// RocketSize is the on-screen size of the rocket sprite in pixels.
type RocketSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimerConfig defines the periodic timer rates.
type TimerConfig struct {
	HUDHz   float64 `yaml:"hud_hz"`   // FPS sample refresh rate
	DecayHz float64 `yaml:"decay_hz"` // Input decay tick rate
}

// AssetsConfig locates the sprite files.
type AssetsConfig struct {
	Dir    string `yaml:"dir"`
	Rocket string `yaml:"rocket"`
	Fire   string `yaml:"fire"`
}

// FireConfig defines the fire trail particle emitter.
type FireConfig struct {
	Lifetime           float64     `yaml:"lifetime"`            // Seconds a particle lives
	LifetimeRandomness float64     `yaml:"lifetime_randomness"` // Fraction of lifetime randomly removed
	Amount             int         `yaml:"amount"`              // Particles alive per lifetime
	DirectionSpread    float64     `yaml:"direction_spread"`    // Radians around straight down
	InitialVelocity    float64     `yaml:"initial_velocity"`    // Pixels per second
	Size               float64     `yaml:"size"`                // Particle size in pixels
	AnchorOffset       float64     `yaml:"anchor_offset"`       // Emitter distance above the rocket base
	Atlas              AtlasConfig `yaml:"atlas"`
	Colors             ColorCurve  `yaml:"colors"`
}

// AtlasConfig describes the fire sprite sheet layout and the frame range
// played over a particle's life.
type AtlasConfig struct {
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`
	Start int `yaml:"start"`
	End   int `yaml:"end"` // Exclusive
}

// ColorCurve is the particle tint over its life, as hex colors.
type ColorCurve struct {
	Start string `yaml:"start"`
	Mid   string `yaml:"mid"`
	End   string `yaml:"end"`
}

// HUDConfig holds the fixed on-screen text.
type HUDConfig struct {
	Help         string `yaml:"help"`
	PlayPrompt   string `yaml:"play_prompt"`
	ResumePrompt string `yaml:"resume_prompt"`
}
