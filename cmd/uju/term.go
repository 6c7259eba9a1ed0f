package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Fly in the terminal",
	Long: `Run the game inside the terminal. Each character cell stands for an
8x16 pixel block, so a bigger terminal gives a bigger play area.

Controls:
  Arrows     - Fire thrusters
  Space      - Play / resume
  Enter      - Pause
  Q/Esc      - Quit

Logs are discarded unless --log-file is set, since the game owns the screen.

Examples:
  uju term
  uju term --fps 30 --log-file uju.log`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func runTerm(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early so the rocket spawns inside the screen
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	s, err := newSession(cfg, tui.VirtualSize(cfg.ScreenW, cfg.ScreenH-1), logger)
	if err != nil {
		return err
	}

	logger.Info("starting terminal", "cols", cfg.ScreenW, "rows", cfg.ScreenH, "fps", cfg.TickRate)
	if err := tui.Run(s.app, s.sprites.Rocket, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
