package tui

import (
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/particles"
)

// Size of one terminal cell in virtual pixels.
const (
	CellW = 8
	CellH = 16
)

// Glyphs used for the scene.
const (
	rocketGlyph   = '█'
	fallbackGlyph = '#'
)

// fireGlyphs fade from dense to sparse over a particle's life.
var fireGlyphs = []rune{'@', '*', '+', '.'}

// palette holds the on-screen RGB value of each terminal color, used to pick
// the closest cell color for sprite and particle pixels.
var palette = []struct {
	color core.Color
	rgb   colorful.Color
}{
	{core.ColorRed, mustHex("#cd0000")},
	{core.ColorYellow, mustHex("#cdcd00")},
	{core.ColorBlue, mustHex("#0000ee")},
	{core.ColorMagenta, mustHex("#cd00cd")},
	{core.ColorCyan, mustHex("#00cdcd")},
	{core.ColorWhite, mustHex("#e5e5e5")},
	{core.ColorBrightWhite, mustHex("#ffffff")},
	{core.ColorOrange, mustHex("#ff8700")},
	{core.ColorGray, mustHex("#8a8a8a")},
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ScreenRenderer draws game commands into a character grid. Virtual pixel
// coordinates are divided by the cell size.
type ScreenRenderer struct {
	screen *core.Screen
	rocket image.Image

	// Downsampled rocket, rebuilt when the cell footprint changes.
	rocketCells *image.RGBA
}

// NewScreenRenderer creates a renderer over screen. rocket may be nil, in
// which case the rocket is drawn as a solid block.
func NewScreenRenderer(screen *core.Screen, rocket image.Image) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, rocket: rocket}
}

// VirtualSize returns the pixel size the game sees for a cols x rows grid.
func VirtualSize(cols, rows int) core.Vec2 {
	return core.V(float64(cols*CellW), float64(rows*CellH))
}

// cellOf maps a virtual pixel to the cell containing it.
func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellW)), int(math.Floor(y / CellH))
}

// Clear blanks the grid.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
}

// DrawText writes a HUD line on the row holding its baseline.
func (r *ScreenRenderer) DrawText(text string, x, y float64) {
	col := int(math.Floor(x / CellW))
	row := max(int(math.Ceil(y/CellH))-1, 0)
	r.screen.DrawTextColored(col, row, text, core.ColorWhite)
}

// DrawPrompt draws a bordered box with the label centred inside.
func (r *ScreenRenderer) DrawPrompt(text string, pos, size core.Vec2) {
	textW := utf8.RuneCountInString(text)
	w := max(int(math.Ceil(size.X/CellW)), textW+4)
	h := max(int(math.Ceil(size.Y/CellH)), 3)

	// Keep the box centred on the same point when it grows to fit the label.
	cx, cy := cellOf(pos.X+size.X/2, pos.Y+size.Y/2)
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	r.screen.DrawRect(box, ' ')
	r.screen.DrawBox(box)
	r.screen.DrawTextColored(box.X+(w-textW)/2, box.Y+h/2, text, core.ColorBrightWhite)
}

// DrawRocket draws the sprite downsampled to its cell footprint.
func (r *ScreenRenderer) DrawRocket(pos, size core.Vec2) {
	col, row := cellOf(pos.X, pos.Y)
	w := max(int(math.Round(size.X/CellW)), 1)
	h := max(int(math.Round(size.Y/CellH)), 1)

	if r.rocket == nil {
		r.screen.DrawRect(core.NewRect(col, row, w, h), fallbackGlyph)
		return
	}

	cells := r.rocketGrid(w, h)
	for y := range h {
		for x := range w {
			c, ok := cellColor(cells.At(x, y))
			if !ok {
				continue
			}
			r.screen.SetColored(col+x, row+y, rocketGlyph, c)
		}
	}
}

// rocketGrid scales the sprite to one pixel per cell.
func (r *ScreenRenderer) rocketGrid(w, h int) *image.RGBA {
	if r.rocketCells != nil && r.rocketCells.Bounds().Dx() == w && r.rocketCells.Bounds().Dy() == h {
		return r.rocketCells
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), r.rocket, r.rocket.Bounds(), draw.Src, nil)
	r.rocketCells = dst
	return dst
}

// DrawParticles draws each particle as one glyph, thinning with age.
func (r *ScreenRenderer) DrawParticles(ps []particles.Particle) {
	for _, p := range ps {
		col, row := cellOf(p.Pos.X, p.Pos.Y)
		idx := min(int(p.Progress()*float64(len(fireGlyphs))), len(fireGlyphs)-1)
		c, ok := cellColor(p.Color)
		if !ok {
			continue
		}
		r.screen.SetColored(col, row, fireGlyphs[idx], c)
	}
}

// cellColor picks the closest palette entry. Mostly transparent pixels
// report false.
func cellColor(c color.Color) (core.Color, bool) {
	if _, _, _, a := c.RGBA(); a < 0x8000 {
		return core.ColorDefault, false
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return core.ColorDefault, false
	}

	best := core.ColorDefault
	bestDist := math.Inf(1)
	for _, p := range palette {
		if d := cc.DistanceLab(p.rgb); d < bestDist {
			best, bestDist = p.color, d
		}
	}
	return best, true
}
