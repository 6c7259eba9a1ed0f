package core

// RuntimeConfig contains frontend settings passed in from the command line.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontend)
	ScreenH  int   // Screen height in characters (terminal frontend)
	TickRate int   // Frames per second requested from the toolkit
	Seed     int64 // RNG seed for the fire trail; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
