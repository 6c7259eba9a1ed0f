// Package game implements the rocket game: a lifecycle state machine, the
// per-frame physics and input step, and the drawing commands issued to a
// frontend Renderer.
//
// The package has no toolkit dependencies. A frontend calls Step once per
// rendered frame with the current time, screen size and held actions, then
// Draw with its own Renderer.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/uju/internal/config"
	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/particles"
)

// Frame is the toolkit input for one step.
type Frame struct {
	Now        time.Time
	ScreenSize core.Vec2
	Input      core.InputFrame
}

// App owns all mutable game data.
type App struct {
	cfg    config.RocketConfig
	logger *log.Logger

	state      State
	position   core.Vec2 // Rocket base, left edge
	velocity   core.Vec2 // Pixels per frame
	screenSize core.Vec2
	rocketSize core.Vec2

	startTime          time.Time
	lastPlayTime       time.Time // End of the previous step; zero before the first
	lastKeyPressedTime time.Time // Zero until the first key is handled

	timer1Hz  *core.PeriodicTimer
	timer10Hz *core.PeriodicTimer
	frames    int // Frames since the last FPS sample
	fps       int

	emitter  *particles.Emitter
	drawFire bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// New creates the game in the Init state with the rocket resting near the
// bottom centre of screen. The seed drives the fire trail jitter.
func New(cfg config.RocketConfig, screen core.Vec2, seed int64, opts ...Option) (*App, error) {
	emitter, err := particles.NewEmitter(cfg.Fire, seed)
	if err != nil {
		return nil, err
	}

	rocket := core.V(cfg.Rocket.Width, cfg.Rocket.Height)
	a := &App{
		cfg:        cfg,
		logger:     log.New(io.Discard),
		state:      StateInit,
		position:   core.V(screen.X/2-rocket.X/2, screen.Y-cfg.Physics.SpawnLift),
		screenSize: screen,
		rocketSize: rocket,
		timer1Hz:   core.NewPeriodicTimerHz(cfg.Timers.HUDHz),
		timer10Hz:  core.NewPeriodicTimerHz(cfg.Timers.DecayHz),
		emitter:    emitter,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.logger.Info("created app instance", "screen", screen, "rocket", rocket)
	return a, nil
}

// State returns the current lifecycle phase.
func (a *App) State() State {
	return a.state
}

// Position returns the rocket base position.
func (a *App) Position() core.Vec2 {
	return a.position
}

// Velocity returns the rocket velocity in pixels per frame.
func (a *App) Velocity() core.Vec2 {
	return a.velocity
}

// FPS returns the most recent frames-per-second sample.
func (a *App) FPS() int {
	return a.fps
}

// Dispatch runs one full frame: Step followed by Draw.
func (a *App) Dispatch(f Frame, r Renderer) {
	a.Step(f)
	a.Draw(r)
}

// Step advances timers and performs a single state machine step.
func (a *App) Step(f Frame) {
	a.screenSize = f.ScreenSize
	if a.startTime.IsZero() {
		a.startTime = f.Now
	}

	var dt time.Duration
	if !a.lastPlayTime.IsZero() {
		dt = max(f.Now.Sub(a.lastPlayTime), 0)
	}

	a.timer1Hz.Update(dt)
	a.timer10Hz.Update(dt)

	a.frames++
	if a.timer1Hz.Triggered() {
		a.fps = a.frames
		a.frames = 0
	}

	switch a.state {
	case StateInit:
		a.setState(StateIdle)

	case StateIdle:
		if f.Input.Has(core.ActionPlay) {
			a.setState(StatePlaying)
			a.lastKeyPressedTime = f.Now
		}

	case StatePlaying:
		a.stepPlaying(f.Now, f.Input)

	case StatePaused:
		if f.Input.Has(core.ActionPlay) {
			a.setState(StatePlaying)
			a.lastKeyPressedTime = f.Now
		}
	}

	a.drawFire = a.state == StatePlaying
	if a.drawFire {
		a.emitter.Update(dt.Seconds(), a.fireAnchor())
	}

	a.lastPlayTime = f.Now
}

// stepPlaying applies input, gravity, decay, integration and clamping.
func (a *App) stepPlaying(now time.Time, in core.InputFrame) {
	phys := a.cfg.Physics

	if in.Has(core.ActionPause) {
		a.setState(StatePaused)
		a.lastKeyPressedTime = now
	}

	a.velocity.Y += phys.Gravity

	steered := false
	if in.Has(core.ActionUp) {
		a.velocity.Y -= phys.Thrust
		steered = true
	}
	if in.Has(core.ActionDown) {
		a.velocity.Y += phys.Thrust
		steered = true
	}
	if in.Has(core.ActionLeft) {
		a.velocity.X -= phys.Thrust
		steered = true
	}
	if in.Has(core.ActionRight) {
		a.velocity.X += phys.Thrust
		steered = true
	}
	if steered {
		a.lastKeyPressedTime = now
	}

	if a.timer10Hz.Triggered() && a.steeringIdle(now) {
		a.velocity.X = decayTowardZero(a.velocity.X, phys.DecayStep)
	}

	a.position = a.position.Add(a.velocity)
	a.clampToScreen()
}

// steeringIdle reports whether more than the decay delay has passed since
// the last handled key.
func (a *App) steeringIdle(now time.Time) bool {
	if a.lastKeyPressedTime.IsZero() {
		return true
	}
	delay := time.Duration(a.cfg.Physics.DecayDelay * float64(time.Second))
	return now.Sub(a.lastKeyPressedTime) > delay
}

// decayTowardZero moves v toward zero by step without crossing it.
func decayTowardZero(v, step float64) float64 {
	switch {
	case v > step:
		return v - step
	case v < -step:
		return v + step
	default:
		return 0
	}
}

// clampToScreen keeps the rocket inside the viewport. The position is the
// sprite's bottom-left corner, so y is bounded by the rocket height at the
// top and by the screen height at the bottom.
func (a *App) clampToScreen() {
	maxX := a.screenSize.X - a.rocketSize.X
	if a.position.X < 0 {
		a.position.X = 0
		a.velocity.X = 0
	}
	if a.position.X > maxX {
		a.position.X = maxX
		a.velocity.X = 0
	}

	if a.position.Y < a.rocketSize.Y {
		a.position.Y = a.rocketSize.Y
		a.velocity.Y = 0
	}
	if a.position.Y > a.screenSize.Y {
		a.position.Y = a.screenSize.Y
		a.velocity.Y = 0
	}
}

// fireAnchor is the point under the rocket nozzle where particles spawn.
func (a *App) fireAnchor() core.Vec2 {
	return core.V(a.position.X+a.rocketSize.X/2, a.position.Y-a.cfg.Fire.AnchorOffset)
}

func (a *App) setState(s State) {
	if s == a.state {
		return
	}
	a.logger.Debug("state changed", "from", a.state, "to", s)
	a.state = s
}
