package sim

import "github.com/vovakirdan/babaam/internal/core"

// PickupType represents the power-up item classes.
type PickupType uint8

const (
	PickupRapidFire PickupType = iota
	PickupShield
	PickupHealth
	PickupSpread
	PickupBeam
	PickupNuke
	PickupDrone
	pickupCount
)

// Glyph returns the display character for the pickup.
func (p PickupType) Glyph() rune {
	switch p {
	case PickupRapidFire:
		return 'R'
	case PickupShield:
		return 'S'
	case PickupHealth:
		return '+'
	case PickupSpread:
		return 'W'
	case PickupBeam:
		return 'E'
	case PickupNuke:
		return 'N'
	case PickupDrone:
		return 'D'
	default:
		return '?'
	}
}

// String returns the pickup name.
func (p PickupType) String() string {
	switch p {
	case PickupRapidFire:
		return "RapidFire"
	case PickupShield:
		return "Shield"
	case PickupHealth:
		return "Health"
	case PickupSpread:
		return "Spread"
	case PickupBeam:
		return "Beam"
	case PickupNuke:
		return "Nuke"
	case PickupDrone:
		return "Drone"
	default:
		return "?"
	}
}

// EffectType represents timed effects on the ship.
type EffectType uint8

const (
	EffectRapidFire EffectType = iota
	EffectShield
	effectCount
)

// Effect is an active timed effect.
type Effect struct {
	Type      EffectType
	UntilTick int
}

// PowerUpTuning holds drop and duration configuration.
type PowerUpTuning struct {
	DropChance   int // Percent chance per destroyed enemy
	NukeChance   int // Percent chance of the rare nuke drop
	NukeMinScore int // Nuke drops require at least this score
	RapidTicks   int // Rapid Fire duration
	ShieldTicks  int // Shield duration
	DriftSpeed   int // Leftward drift in milli-cells per tick
}

// DefaultPowerUpTuning returns the stock drop parameters.
func DefaultPowerUpTuning() PowerUpTuning {
	return PowerUpTuning{
		DropChance:   12,
		NukeChance:   5,
		NukeMinScore: 500,
		RapidTicks:   300,
		ShieldTicks:  360,
		DriftSpeed:   200,
	}
}

// DropContext carries the run state that shapes the drop table.
type DropContext struct {
	Score          int
	SpreadUnlocked bool
	BeamUnlocked   bool
	BossesDefeated int
}

// PowerUpManager rolls drops on enemy destruction and tracks timed
// effects. It owns no entities; the game spawns pickup entities from the
// rolled types.
type PowerUpManager struct {
	Tuning  PowerUpTuning
	Effects []*Effect
	rng     *SimpleRNG
}

// NewPowerUpManager creates a manager sharing the simulation RNG.
func NewPowerUpManager(tuning PowerUpTuning, rng *SimpleRNG) *PowerUpManager {
	return &PowerUpManager{
		Tuning:  tuning,
		Effects: make([]*Effect, 0, effectCount),
		rng:     rng,
	}
}

// Roll decides whether a destroyed enemy drops a pickup and which one.
// The rare nuke roll happens first and is gated on score and on the first
// boss having fallen; otherwise a weighted regular table applies.
func (pm *PowerUpManager) Roll(ctx DropContext) (PickupType, bool) {
	if ctx.Score >= pm.Tuning.NukeMinScore && ctx.BossesDefeated >= 1 &&
		pm.rng.Intn(100) < pm.Tuning.NukeChance {
		return PickupNuke, true
	}

	if pm.rng.Intn(100) >= pm.Tuning.DropChance {
		return 0, false
	}

	// Shield plus spread is too strong together, so shields get 10x rarer
	// once spread is unlocked.
	weights := make([]int, pickupCount)
	if ctx.SpreadUnlocked {
		weights[PickupRapidFire] = 4
		weights[PickupHealth] = 5
		weights[PickupShield] = 1
	} else {
		weights[PickupRapidFire] = 1
		weights[PickupHealth] = 1
		weights[PickupShield] = 1
	}
	if !ctx.SpreadUnlocked {
		weights[PickupSpread] = 1
	}
	if !ctx.BeamUnlocked {
		weights[PickupBeam] = 1
	}
	if ctx.BossesDefeated >= 2 {
		weights[PickupDrone] = 1
	}

	idx := pm.rng.Pick(weights)
	if idx < 0 {
		return 0, false
	}
	return PickupType(idx), true
}

// RollForced always yields a pickup from the regular weighted table,
// skipping the drop-chance and nuke gates. Used for boss payouts.
func (pm *PowerUpManager) RollForced(ctx DropContext) PickupType {
	weights := make([]int, pickupCount)
	if ctx.SpreadUnlocked {
		weights[PickupRapidFire] = 4
		weights[PickupHealth] = 5
		weights[PickupShield] = 1
	} else {
		weights[PickupRapidFire] = 1
		weights[PickupHealth] = 1
		weights[PickupShield] = 1
		weights[PickupSpread] = 1
	}
	if !ctx.BeamUnlocked {
		weights[PickupBeam] = 1
	}
	if ctx.BossesDefeated >= 2 {
		weights[PickupDrone] = 1
	}
	idx := pm.rng.Pick(weights)
	if idx < 0 {
		return PickupHealth
	}
	return PickupType(idx)
}

// NewPickup builds the drifting pickup entity for a rolled type.
func (pm *PowerUpManager) NewPickup(t PickupType, x, y Fixed) *Entity {
	return &Entity{
		Kind:   KindPickup,
		Pickup: t,
		X:      x,
		Y:      y,
		VX:     -Fixed(pm.Tuning.DriftSpeed),
		W:      1,
		H:      1,
		Glyph:  t.Glyph(),
		Color:  core.ColorBrightCyan,
	}
}

// AddEffect starts or extends a timed effect. Picking up an active effect
// adds the full duration on top of the remaining time.
func (pm *PowerUpManager) AddEffect(t EffectType, currentTick, duration int) {
	for _, e := range pm.Effects {
		if e.Type == t {
			e.UntilTick += duration
			return
		}
	}
	pm.Effects = append(pm.Effects, &Effect{Type: t, UntilTick: currentTick + duration})
}

// ExpireEffects removes effects whose timer has run out and returns the
// expired types, so expiry can be acted on exactly once.
func (pm *PowerUpManager) ExpireEffects(currentTick int) []EffectType {
	var expired []EffectType
	active := pm.Effects[:0]
	for _, e := range pm.Effects {
		if e.UntilTick <= currentTick {
			expired = append(expired, e.Type)
		} else {
			active = append(active, e)
		}
	}
	pm.Effects = active
	return expired
}

// HasEffect reports whether the effect is currently active.
func (pm *PowerUpManager) HasEffect(t EffectType) bool {
	for _, e := range pm.Effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// EffectRemaining returns ticks left for an effect, or 0 if inactive.
func (pm *PowerUpManager) EffectRemaining(t EffectType, currentTick int) int {
	for _, e := range pm.Effects {
		if e.Type == t {
			remaining := e.UntilTick - currentTick
			if remaining < 0 {
				return 0
			}
			return remaining
		}
	}
	return 0
}

// Reset clears all effects.
func (pm *PowerUpManager) Reset() {
	pm.Effects = pm.Effects[:0]
}
