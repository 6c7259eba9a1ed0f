package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "rocket.yaml"

// LoadRocket loads the game configuration.
// Search order: customPath -> ~/.uju/rocket.yaml -> ./configs/rocket.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or invalid.
func LoadRocket(customPath string) (RocketConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRocketYAML)
	if err != nil {
		return DefaultRocketConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (RocketConfig, error) {
	cfg := DefaultRocketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RocketConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RocketConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RocketConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".uju", filename)
}

// periodOf converts a rate to the timer period the game will use.
func periodOf(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}

// Validate reports every value that would break the simulation or the
// renderers, joined into one error.
func (c RocketConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Rocket.Width <= 0 || c.Rocket.Height <= 0 {
		errs = append(errs, fmt.Errorf("rocket size must be positive, got %gx%g", c.Rocket.Width, c.Rocket.Height))
	}
	if c.Timers.HUDHz <= 0 || c.Timers.DecayHz <= 0 {
		errs = append(errs, fmt.Errorf("timer rates must be positive, got hud_hz=%g decay_hz=%g", c.Timers.HUDHz, c.Timers.DecayHz))
	} else if periodOf(c.Timers.HUDHz) <= 0 || periodOf(c.Timers.DecayHz) <= 0 {
		errs = append(errs, fmt.Errorf("timer rates must leave a period of at least 1ns, got hud_hz=%g decay_hz=%g", c.Timers.HUDHz, c.Timers.DecayHz))
	}
	if c.Physics.DecayStep < 0 || c.Physics.DecayDelay < 0 {
		errs = append(errs, errors.New("decay_step and decay_delay must not be negative"))
	}
	if c.Assets.Rocket == "" || c.Assets.Fire == "" {
		errs = append(errs, errors.New("assets.rocket and assets.fire are required"))
	}

	fire := c.Fire
	if fire.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("fire.lifetime must be positive, got %g", fire.Lifetime))
	}
	if fire.LifetimeRandomness < 0 || fire.LifetimeRandomness >= 1 {
		errs = append(errs, fmt.Errorf("fire.lifetime_randomness must be in [0, 1), got %g", fire.LifetimeRandomness))
	}
	if fire.Amount < 0 {
		errs = append(errs, fmt.Errorf("fire.amount must not be negative, got %d", fire.Amount))
	}
	atlas := fire.Atlas
	if atlas.Cols <= 0 || atlas.Rows <= 0 {
		errs = append(errs, fmt.Errorf("fire.atlas grid must be positive, got %dx%d", atlas.Cols, atlas.Rows))
	} else if atlas.Start < 0 || atlas.End <= atlas.Start || atlas.End > atlas.Cols*atlas.Rows {
		errs = append(errs, fmt.Errorf("fire.atlas frames [%d, %d) out of range for %d cells", atlas.Start, atlas.End, atlas.Cols*atlas.Rows))
	}
	for name, hex := range map[string]string{
		"start": fire.Colors.Start,
		"mid":   fire.Colors.Mid,
		"end":   fire.Colors.End,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("fire.colors.%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
