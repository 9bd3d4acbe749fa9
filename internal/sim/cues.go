package sim

import "github.com/vovakirdan/babaam/internal/core"

// Cue names emitted by the simulation. The platform maps these to sounds
// or ignores them; the simulation only reports what happened.
const (
	CueShoot        = "shoot"
	CueSpreadShoot  = "spread-shoot"
	CueBeamCharging = "beam-charging"
	CueBeamDying    = "beam-dying"
	CueBeamSides    = "beam-side-activate"
	CueBlocked      = "blocked"
	CueExplosion    = "explosion"
	CueBossHit      = "boss-hit"
	CueBoss         = "boss"
	CueBossFire     = "boss-fire"
	CueDamage       = "damage"
	CuePowerup      = "powerup"
	CueNuke         = "nuke"
	CueRicochet     = "ricochet"
	CueDroneShoot   = "drone-shoot"
	CueGameStart    = "game-start"

	CueEngineIdle     = "engine-idle"
	CueEngineLeft     = "engine-left"
	CueEngineRight    = "engine-right"
	CueEngineVertical = "engine-vertical"

	CueClockNormal  = "clock-tick-normal"
	CueClockIntense = "clock-tick-intense"
)

// CueTracker collects one-shot cues and manages the looping channels
// (engine and power-up clock), emitting start/stop pairs on change.
type CueTracker struct {
	cues   []core.Cue
	engine string
	clock  string
}

// NewCueTracker creates an empty tracker.
func NewCueTracker() *CueTracker {
	return &CueTracker{}
}

// Play queues a one-shot cue.
func (c *CueTracker) Play(name string) {
	c.cues = append(c.cues, core.Cue{Name: name, Kind: core.CueOneShot})
}

// SetEngine switches the looping engine channel. An empty name stops it.
func (c *CueTracker) SetEngine(name string) {
	c.setLoop(&c.engine, name)
}

// SetClock switches the looping power-up clock channel.
func (c *CueTracker) SetClock(name string) {
	c.setLoop(&c.clock, name)
}

func (c *CueTracker) setLoop(slot *string, name string) {
	if *slot == name {
		return
	}
	if *slot != "" {
		c.cues = append(c.cues, core.Cue{Name: *slot, Kind: core.CueLoopStop})
	}
	*slot = name
	if name != "" {
		c.cues = append(c.cues, core.Cue{Name: name, Kind: core.CueLoopStart})
	}
}

// Drain returns this tick's cues and clears the queue.
func (c *CueTracker) Drain() []core.Cue {
	if len(c.cues) == 0 {
		return nil
	}
	out := c.cues
	c.cues = nil
	return out
}

// Reset stops all loops and clears pending cues.
func (c *CueTracker) Reset() {
	c.cues = nil
	c.engine = ""
	c.clock = ""
}
