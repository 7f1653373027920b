package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time in the platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible state of the game, returned after
// every tick so the platform can react without reaching into the simulation.
type GameState struct {
	InMenu      bool   // True while the difficulty menu is showing
	Difficulty  string // Active difficulty ID, empty in the menu
	PlayerScore int
	CPUScore    int
}

// SessionResult summarizes one finished play session (difficulty selection
// to return-to-menu). Emitted exactly once per session for persistence.
type SessionResult struct {
	Difficulty  string
	PlayerScore int
	CPUScore    int
	Ticks       int // Session length in simulation ticks
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	State GameState

	// Session is non-nil on the tick a play session ended.
	Session *SessionResult

	// OpenScores is set when the player asked for the session history view.
	OpenScores bool

	// Quit is set when the player asked to exit from the menu.
	Quit bool
}
