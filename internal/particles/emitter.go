// Package particles implements the fire trail drawn under the rocket.
//
// The emitter is pure simulation: it spawns, ages and moves particles and
// computes each particle's tint and atlas frame. Frontends decide how a
// particle looks on screen.
package particles

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/uju/internal/config"
	"github.com/vovakirdan/uju/internal/core"
)

// Particle is a single fire trail sprite.
type Particle struct {
	Pos      core.Vec2 // Center, in virtual pixels
	Vel      core.Vec2 // Pixels per second
	Age      float64   // Seconds since spawn
	Lifetime float64   // Seconds until retirement
	Size     float64
	Frame    int // Atlas cell index
	Color    color.RGBA
}

// Progress returns how far through its life the particle is, in [0, 1].
func (p Particle) Progress() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	return core.ClampF(p.Age/p.Lifetime, 0, 1)
}

// Emitter spawns particles at a steady rate at a moving anchor.
type Emitter struct {
	cfg       config.FireConfig
	rng       *rand.Rand
	curve     [3]colorful.Color
	particles []Particle
	spawnDebt float64 // Fractional particles owed from previous updates
}

// NewEmitter creates an emitter. The seed makes spawn jitter reproducible.
func NewEmitter(cfg config.FireConfig, seed int64) (*Emitter, error) {
	var curve [3]colorful.Color
	for i, hex := range []string{cfg.Colors.Start, cfg.Colors.Mid, cfg.Colors.End} {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("fire color %q: %w", hex, err)
		}
		curve[i] = c
	}

	return &Emitter{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
		curve: curve,
	}, nil
}

// Update ages and moves live particles by dt seconds, retires the expired
// ones and spawns new particles at anchor.
func (e *Emitter) Update(dt float64, anchor core.Vec2) {
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		e.shade(&p)
		alive = append(alive, p)
	}
	e.particles = alive

	if e.cfg.Amount <= 0 || e.cfg.Lifetime <= 0 {
		return
	}
	// A long stall never owes more than one full trail.
	e.spawnDebt = min(e.spawnDebt+dt*float64(e.cfg.Amount)/e.cfg.Lifetime, float64(e.cfg.Amount))
	for e.spawnDebt >= 1 {
		e.spawnDebt--
		e.particles = append(e.particles, e.spawn(anchor))
	}
}

// spawn creates a particle heading down within the configured spread.
func (e *Emitter) spawn(anchor core.Vec2) Particle {
	angle := (e.rng.Float64() - 0.5) * e.cfg.DirectionSpread
	dir := core.V(math.Sin(angle), math.Cos(angle))
	lifetime := e.cfg.Lifetime * (1 - e.rng.Float64()*e.cfg.LifetimeRandomness)

	p := Particle{
		Pos:      anchor,
		Vel:      dir.Scale(e.cfg.InitialVelocity),
		Lifetime: lifetime,
		Size:     e.cfg.Size,
	}
	e.shade(&p)
	return p
}

// shade sets the tint and atlas frame from the particle's progress.
func (e *Emitter) shade(p *Particle) {
	t := p.Progress()

	var c colorful.Color
	if t < 0.5 {
		c = e.curve[0].BlendRgb(e.curve[1], t*2)
	} else {
		c = e.curve[1].BlendRgb(e.curve[2], (t-0.5)*2)
	}
	r, g, b := c.Clamped().RGB255()
	p.Color = color.RGBA{R: r, G: g, B: b, A: 255}

	atlas := e.cfg.Atlas
	frames := atlas.End - atlas.Start
	if frames <= 0 {
		p.Frame = atlas.Start
		return
	}
	p.Frame = atlas.Start + core.Min(int(t*float64(frames)), frames-1)
}

// Particles returns the live particles. The slice is reused by the next
// Update and must not be retained.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Len returns the number of live particles.
func (e *Emitter) Len() int {
	return len(e.particles)
}
