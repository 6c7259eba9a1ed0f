package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRocketYAML
}

// DefaultRocketConfig returns the built-in configuration. It mirrors
// defaults/rocket.yaml and is used when the embedded file cannot be parsed.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Window: WindowConfig{
			Width:  400,
			Height: 600,
			Title:  "uju",
		},
		Physics: PhysicsConfig{
			Gravity:    0.05,
			Thrust:     0.2,
			DecayStep:  0.1,
			DecayDelay: 1.0,
			SpawnLift:  50,
		},
		Rocket: RocketSize{
			Width:  100,
			Height: 200,
		},
		Timers: TimerConfig{
			HUDHz:   1,
			DecayHz: 10,
		},
		Assets: AssetsConfig{
			Dir:    "assets",
			Rocket: "rocket.png",
			Fire:   "smoke_fire.png",
		},
		Fire: FireConfig{
			Lifetime:           0.4,
			LifetimeRandomness: 0.1,
			Amount:             10,
			DirectionSpread:    0.5,
			InitialVelocity:    300,
			Size:               30,
			AnchorOffset:       10,
			Atlas: AtlasConfig{
				Cols:  4,
				Rows:  4,
				Start: 8,
				End:   16,
			},
			Colors: ColorCurve{
				Start: "#ff00ff",
				Mid:   "#ffa500",
				End:   "#ffffff",
			},
		},
		HUD: HUDConfig{
			Help:         "arrows: thrust  space: play  enter: pause  esc: quit",
			PlayPrompt:   "Press [space] to play!",
			ResumePrompt: "Press [space] to resume.",
		},
	}
}
