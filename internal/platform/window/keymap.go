package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/uju/internal/core"
)

// keyBindings maps physical keys to game actions. All keys are sampled as
// held, once per frame.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeySpace, core.ActionPlay},
	{ebiten.KeyEnter, core.ActionPause},
	{ebiten.KeyNumpadEnter, core.ActionPause},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// pollInput builds the frame's input from a key state query, normally
// ebiten.IsKeyPressed.
func pollInput(pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range keyBindings {
		if pressed(b.key) {
			frame.Set(b.action)
		}
	}
	return frame
}
