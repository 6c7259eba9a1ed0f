package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/uju/internal/assets"
	"github.com/vovakirdan/uju/internal/config"
	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/particles"
)

var (
	backgroundColor   = color.RGBA{0, 0, 0, 255}
	textColor         = color.RGBA{255, 255, 255, 255}
	promptFillColor   = color.RGBA{40, 40, 48, 230}
	promptBorderColor = color.RGBA{200, 200, 200, 255}
)

const promptBorderWidth = 2

// Renderer draws game commands onto an ebiten image.
type Renderer struct {
	target     *ebiten.Image
	face       text.Face
	rocket     *ebiten.Image
	fireFrames []*ebiten.Image
	atlasStart int
}

// NewRenderer uploads the sprites and slices the fire atlas.
func NewRenderer(sprites *assets.Sprites, atlas config.AtlasConfig) (*Renderer, error) {
	fire := ebiten.NewImageFromImage(sprites.Fire)
	cells, err := assets.Frames(fire, atlas)
	if err != nil {
		return nil, fmt.Errorf("failed to slice fire atlas: %w", err)
	}

	frames := make([]*ebiten.Image, 0, len(cells))
	for _, c := range cells {
		img, ok := c.(*ebiten.Image)
		if !ok {
			return nil, fmt.Errorf("unexpected atlas frame type %T", c)
		}
		frames = append(frames, img)
	}

	return &Renderer{
		face:       text.NewGoXFace(basicfont.Face7x13),
		rocket:     ebiten.NewImageFromImage(sprites.Rocket),
		fireFrames: frames,
		atlasStart: atlas.Start,
	}, nil
}

// SetTarget selects the image the next commands draw on.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Clear fills the frame with the background.
func (r *Renderer) Clear() {
	r.target.Fill(backgroundColor)
}

// DrawText draws one HUD line with its baseline at y.
func (r *Renderer) DrawText(s string, x, y float64) {
	r.drawLabel(s, baselineOrigin(r.face, x, y))
}

// DrawPrompt draws a filled box with the label centred inside.
func (r *Renderer) DrawPrompt(s string, pos, size core.Vec2) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(size.X), float32(size.Y)
	vector.DrawFilledRect(r.target, x, y, w, h, promptFillColor, false)
	vector.StrokeRect(r.target, x, y, w, h, promptBorderWidth, promptBorderColor, false)

	r.drawLabel(s, centredOrigin(r.face, s, pos, size))
}

// drawLabel draws s with its layout box's top-left corner at origin.
func (r *Renderer) drawLabel(s string, origin core.Vec2) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(origin.X, origin.Y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(r.target, s, r.face, op)
}

// baselineOrigin converts a baseline position to the top-left origin
// text.Draw expects.
func baselineOrigin(face text.Face, x, y float64) core.Vec2 {
	return core.V(x, y-face.Metrics().HAscent)
}

// centredOrigin places s in the middle of the box at pos.
func centredOrigin(face text.Face, s string, pos, size core.Vec2) core.Vec2 {
	w, h := text.Measure(s, face, 0)
	return core.V(pos.X+(size.X-w)/2, pos.Y+(size.Y-h)/2)
}

// DrawRocket draws the sprite stretched over size with its top-left at pos.
func (r *Renderer) DrawRocket(pos, size core.Vec2) {
	b := r.rocket.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X/float64(b.Dx()), size.Y/float64(b.Dy()))
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(r.rocket, op)
}

// DrawParticles draws each particle centred on its position with additive
// blending so overlapping sprites glow.
func (r *Renderer) DrawParticles(ps []particles.Particle) {
	for _, p := range ps {
		i := p.Frame - r.atlasStart
		if i < 0 || i >= len(r.fireFrames) {
			continue
		}
		frame := r.fireFrames[i]
		b := frame.Bounds()
		fw, fh := float64(b.Dx()), float64(b.Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-fw/2, -fh/2)
		op.GeoM.Scale(p.Size/fw, p.Size/fh)
		op.GeoM.Translate(p.Pos.X, p.Pos.Y)
		op.ColorScale.ScaleWithColor(p.Color)
		op.Blend = ebiten.BlendLighter
		r.target.DrawImage(frame, op)
	}
}
