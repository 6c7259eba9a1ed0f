package game

// State is a lifecycle phase of the game.
type State int

const (
	StateInit    State = iota // Bootstrap, left on the first step
	StateIdle                 // Waiting for the player to start
	StatePlaying              // Physics running
	StatePaused               // Physics frozen
)

// String returns the lowercase name shown on the HUD.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
