package core

// RuntimeConfig contains configuration passed to the simulation at reset.
// The simulation uses this to adapt to screen size and for deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// OverCause identifies why a run ended.
type OverCause string

const (
	CauseNone            OverCause = ""
	CauseHealthExhausted OverCause = "health-exhausted"
	CauseBossBreach      OverCause = "boss-breach"
	CauseUserQuit        OverCause = "user-quit"
)

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int       // Current score
	Health   int       // Ship health, 0..6
	Kills    int       // Enemies destroyed this run
	GameOver bool      // Whether the run has ended
	Cause    OverCause // Why the run ended, empty while running
	Paused   bool      // Whether the simulation is paused
}

// CueKind distinguishes one-shot cues from looping cues that must be
// explicitly stopped.
type CueKind int

const (
	CueOneShot CueKind = iota
	CueLoopStart
	CueLoopStop
)

// Cue is a named audio/feedback event emitted by the simulation.
// The platform decides what, if anything, to do with it.
type Cue struct {
	Name string
	Kind CueKind
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
