package core

// Color is a foreground color for a screen cell. The terminal platform maps
// each value to an ANSI 256-color code.
type Color uint8

// Palette used by the scene: HUD text, prompt boxes, the rocket sprite and
// the fire trail gradient.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)
