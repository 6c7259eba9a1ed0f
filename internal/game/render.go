package game

import (
	"fmt"

	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/particles"
)

// HUD layout in virtual pixels.
const (
	hudX          = 10.0
	hudFirstLineY = 20.0
	hudLineHeight = 20.0
)

// promptSize is the modal box shown in Idle and Paused.
var promptSize = core.V(250, 50)

// Renderer is the drawing surface a frontend provides. Coordinates are in
// virtual pixels, the same space as the Frame screen size.
type Renderer interface {
	// Clear fills the frame with the background.
	Clear()
	// DrawText draws one HUD line with its baseline at y.
	DrawText(text string, x, y float64)
	// DrawPrompt draws a modal box at pos with a label inside.
	DrawPrompt(text string, pos, size core.Vec2)
	// DrawRocket draws the rocket sprite with its top-left corner at pos.
	DrawRocket(pos, size core.Vec2)
	// DrawParticles draws the fire trail.
	DrawParticles(ps []particles.Particle)
}

// HUDLines returns the HUD text in display order.
func (a *App) HUDLines() []string {
	uptime := a.lastPlayTime.Sub(a.startTime).Seconds()
	return []string{
		"state: " + a.state.String(),
		fmt.Sprintf("uptime: %.2fs", uptime),
		fmt.Sprintf("fps: %d", a.fps),
		a.cfg.HUD.Help,
	}
}

// Draw issues the rendering commands for the current state.
func (a *App) Draw(r Renderer) {
	r.Clear()

	for i, line := range a.HUDLines() {
		r.DrawText(line, hudX, hudFirstLineY+float64(i)*hudLineHeight)
	}

	// Position is the rocket base; the sprite hangs above it.
	r.DrawRocket(core.V(a.position.X, a.position.Y-a.rocketSize.Y), a.rocketSize)

	if a.drawFire {
		r.DrawParticles(a.emitter.Particles())
	}

	switch a.state {
	case StateIdle:
		r.DrawPrompt(a.cfg.HUD.PlayPrompt, a.promptPos(), promptSize)
	case StatePaused:
		r.DrawPrompt(a.cfg.HUD.ResumePrompt, a.promptPos(), promptSize)
	}
}

// promptPos centres the prompt box on screen.
func (a *App) promptPos() core.Vec2 {
	return a.screenSize.Half().Sub(promptSize.Half())
}
