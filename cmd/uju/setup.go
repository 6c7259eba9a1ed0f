package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/uju/internal/assets"
	"github.com/vovakirdan/uju/internal/config"
	"github.com/vovakirdan/uju/internal/core"
	"github.com/vovakirdan/uju/internal/game"
)

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "uju",
		Level:           level,
	})
	return logger, closeFn, nil
}

// session is everything a frontend needs to run.
type session struct {
	cfg     config.RocketConfig
	sprites *assets.Sprites
	app     *game.App
}

// resolveSeed returns seed, or a seed derived from now when seed is 0.
func resolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}

// newSession loads config and assets and creates the game for a screen of
// the given size in pixels. The fire trail is seeded from rc.Seed.
func newSession(rc core.RuntimeConfig, screen core.Vec2, logger *log.Logger) (*session, error) {
	cfg, err := config.LoadRocket(flagConfig)
	if err != nil {
		return nil, err
	}

	sprites, err := assets.Load(flagAssets, cfg.Assets)
	if err != nil {
		return nil, err
	}

	seed := resolveSeed(rc.Seed, time.Now())
	if screen == (core.Vec2{}) {
		screen = core.V(float64(cfg.Window.Width), float64(cfg.Window.Height))
	}

	app, err := game.New(cfg, screen, seed, game.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	logger.Debug("session ready", "seed", seed, "screen", screen)
	return &session{cfg: cfg, sprites: sprites, app: app}, nil
}
