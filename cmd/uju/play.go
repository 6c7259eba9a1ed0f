package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/platform/window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly in a desktop window",
	Long: `Open a window and start the game.

Controls:
  Arrows     - Fire thrusters
  Space      - Play / resume
  Enter      - Pause
  Esc/Q      - Quit

Examples:
  uju play
  uju play --assets ./assets
  uju play --config ./my-rocket.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	s, err := newSession(rc, core.Vec2{}, logger)
	if err != nil {
		return err
	}

	logger.Info("starting window", "width", s.cfg.Window.Width, "height", s.cfg.Window.Height, "fps", rc.TickRate)
	return window.Run(s.app, s.sprites, s.cfg, rc.TickRate, logger)
}
